package model

import "time"

// Folder groups notes under a user-chosen name and display color. The name
// is the registry key and is immutable once created; the folder exclusively
// owns its notes, so removing a folder removes them with it.
type Folder struct {
	Name    string    `json:"-"`
	Color   string    `json:"color"`
	Created time.Time `json:"created"`
	Notes   NoteSet   `json:"notes"`
}

// NewFolder creates an empty folder stamped with the current time.
func NewFolder(name, color string) *Folder {
	return &Folder{
		Name:    name,
		Color:   color,
		Created: time.Now(),
	}
}
