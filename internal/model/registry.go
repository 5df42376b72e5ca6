package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Registry is the full in-memory collection of folders and their notes.
// Folders are kept in insertion order and keyed by name; the persisted form
// is a JSON object mapping folder name to folder record, and the custom
// codec keeps the order stable across save/load.
type Registry struct {
	order []*Folder
	index map[string]*Folder
}

// NewRegistry returns an empty registry. An empty registry is a valid
// state: first run starts with no folders at all.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Folder)}
}

// Len returns the number of folders.
func (r *Registry) Len() int { return len(r.order) }

// Get returns the folder with the given name, or nil if absent. Lookup is
// exact-match and case-sensitive.
func (r *Registry) Get(name string) *Folder {
	return r.index[name]
}

// Folders returns the folders in insertion order. The slice is shared;
// callers must not modify it.
func (r *Registry) Folders() []*Folder { return r.order }

// Add inserts a folder. It reports false without modifying the registry
// when a folder with the same name already exists.
func (r *Registry) Add(f *Folder) bool {
	if _, exists := r.index[f.Name]; exists {
		return false
	}
	if r.index == nil {
		r.index = make(map[string]*Folder)
	}
	r.order = append(r.order, f)
	r.index[f.Name] = f
	return true
}

// Remove deletes the named folder and, with it, every note it owns.
// It reports whether the folder existed.
func (r *Registry) Remove(name string) bool {
	f, exists := r.index[name]
	if !exists {
		return false
	}
	delete(r.index, name)
	for i, e := range r.order {
		if e == f {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// MarshalJSON writes the registry as a JSON object keyed by folder name,
// in insertion order.
func (r Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("marshaling folder name %q: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("marshaling folder %q: %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the keyed-object form back, preserving folder order.
// A folder record that does not decode is skipped rather than failing the
// whole registry.
func (r *Registry) UnmarshalJSON(data []byte) error {
	*r = Registry{index: make(map[string]*Folder)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading registry object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading folder name: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("registry: non-string key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("reading folder %q: %w", key, err)
		}

		var f Folder
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}
		f.Name = key
		r.Add(&f)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("closing registry object: %w", err)
	}
	return nil
}
