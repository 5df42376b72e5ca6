package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Note is a single note within a folder. The title doubles as the map key
// in the persisted form, so renames must go through NoteSet.Rename to keep
// the two in sync.
type Note struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Created  time.Time      `json:"created"`
	Modified time.Time      `json:"modified"`
	Font     FontDescriptor `json:"font"`
}

// Touch sets the modified timestamp, keeping the modified >= created
// invariant even on clocks with coarse resolution.
func (n *Note) Touch() {
	now := time.Now()
	if now.Before(n.Created) {
		now = n.Created
	}
	n.Modified = now
}

// normalize repairs a note record loaded from disk. The persisted key is
// authoritative for the title.
func (n *Note) normalize(key string) {
	n.Title = key
	n.Font = n.Font.Normalize()
	if n.Created.IsZero() {
		n.Created = n.Modified
	}
	if n.Modified.Before(n.Created) {
		n.Modified = n.Created
	}
}

// NoteSet is an insertion-ordered collection of notes keyed by title.
// It persists as a JSON object mapping title to note record; the custom
// codec preserves insertion order across save/load, which a plain
// map[string]Note cannot.
type NoteSet struct {
	order []*Note
	index map[string]*Note
}

// Len returns the number of notes in the set.
func (s *NoteSet) Len() int { return len(s.order) }

// Get returns the note with the given title, or nil if absent.
func (s *NoteSet) Get(title string) *Note {
	return s.index[title]
}

// All returns the notes in insertion order. The slice is shared; callers
// must not modify it.
func (s *NoteSet) All() []*Note { return s.order }

// Add appends a note. It reports false without modifying the set when a
// note with the same title already exists.
func (s *NoteSet) Add(n *Note) bool {
	if _, exists := s.index[n.Title]; exists {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]*Note)
	}
	s.order = append(s.order, n)
	s.index[n.Title] = n
	return true
}

// Put inserts a note, replacing any existing note with the same title in
// place so the collection order is stable under re-import.
func (s *NoteSet) Put(n *Note) {
	if old, exists := s.index[n.Title]; exists {
		for i, e := range s.order {
			if e == old {
				s.order[i] = n
				break
			}
		}
		s.index[n.Title] = n
		return
	}
	s.Add(n)
}

// Remove deletes the note with the given title, reporting whether it existed.
func (s *NoteSet) Remove(title string) bool {
	n, exists := s.index[title]
	if !exists {
		return false
	}
	delete(s.index, title)
	for i, e := range s.order {
		if e == n {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Rename changes a note's title, keeping its position in the collection.
// It fails when the old title is absent or the new title is already taken.
func (s *NoteSet) Rename(oldTitle, newTitle string) error {
	n, exists := s.index[oldTitle]
	if !exists {
		return fmt.Errorf("note %q not found", oldTitle)
	}
	if oldTitle == newTitle {
		return nil
	}
	if _, taken := s.index[newTitle]; taken {
		return fmt.Errorf("note %q already exists", newTitle)
	}
	delete(s.index, oldTitle)
	n.Title = newTitle
	s.index[newTitle] = n
	return nil
}

// MarshalJSON writes the set as a JSON object keyed by title, in insertion
// order.
func (s NoteSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n.Title)
		if err != nil {
			return nil, fmt.Errorf("marshaling note title %q: %w", n.Title, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(n)
		if err != nil {
			return nil, fmt.Errorf("marshaling note %q: %w", n.Title, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the keyed-object form back, preserving key order.
// Records that do not decode are skipped rather than failing the whole set.
func (s *NoteSet) UnmarshalJSON(data []byte) error {
	*s = NoteSet{index: make(map[string]*Note)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading notes object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("notes: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading note title: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("notes: non-string key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("reading note %q: %w", key, err)
		}

		var n Note
		if err := json.Unmarshal(raw, &n); err != nil {
			// Malformed record; drop it and keep the rest.
			continue
		}
		n.normalize(key)
		s.Add(&n)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("closing notes object: %w", err)
	}
	return nil
}
