package notebook

// Session is the ephemeral selection state of one editing session: which
// folder and which note are current. It is never persisted; a fresh
// process starts with nothing selected unless the registry is non-empty,
// in which case the first folder is auto-selected.
type Session struct {
	folder string
	note   string
}

// NewSession returns a session with nothing selected.
func NewSession() *Session {
	return &Session{}
}

// Folder returns the name of the current folder, or "" when none.
func (s *Session) Folder() string { return s.folder }

// Note returns the title of the current note, or "" when none.
func (s *Session) Note() string { return s.note }

// HasFolder reports whether a folder is selected.
func (s *Session) HasFolder() bool { return s.folder != "" }

// HasNote reports whether a note is selected.
func (s *Session) HasNote() bool { return s.note != "" }

// selectFolder makes the named folder current and clears the note
// selection, since the old note belongs to the old folder.
func (s *Session) selectFolder(name string) {
	s.folder = name
	s.note = ""
}

// selectNote makes the titled note current within the current folder.
func (s *Session) selectNote(title string) {
	s.note = title
}

// clearNote drops only the note selection.
func (s *Session) clearNote() {
	s.note = ""
}

// clear drops both selections.
func (s *Session) clear() {
	s.folder = ""
	s.note = ""
}
