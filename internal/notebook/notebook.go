package notebook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"notetaker/internal/model"
	"notetaker/internal/store"
)

// Notebook owns the in-memory registry, the active session, and the
// process-wide font preference, and routes every mutation through the
// store. All operations run on the single Bubble Tea event loop, so no
// locking is needed; every mutating method flushes the full registry to
// disk before returning.
type Notebook struct {
	reg   *model.Registry
	store store.Store
	sess  *Session
	cfg   *model.AppConfig
	log   zerolog.Logger

	saveErr error
}

// Open loads the registry and preferences from the store and returns a
// ready notebook. When the registry is non-empty the first folder is
// auto-selected, matching the behavior at application startup.
func Open(s store.Store, log zerolog.Logger) *Notebook {
	nb := &Notebook{
		reg:   s.LoadRegistry(),
		store: s,
		sess:  NewSession(),
		cfg:   s.LoadConfig(),
		log:   log,
	}

	if folders := nb.reg.Folders(); len(folders) > 0 {
		nb.sess.selectFolder(folders[0].Name)
	}

	return nb
}

// Registry exposes the in-memory registry for read-only traversal.
func (nb *Notebook) Registry() *model.Registry { return nb.reg }

// Session exposes the current selection state.
func (nb *Notebook) Session() *Session { return nb.sess }

// CurrentFont returns the process-wide font preference that seeds new
// notes.
func (nb *Notebook) CurrentFont() model.FontDescriptor {
	return nb.cfg.CurrentFont
}

// LastSaveError returns the error of the most recent registry save, or
// nil when it succeeded. Save failures never roll back in-memory edits;
// the UI surfaces this in the status bar instead.
func (nb *Notebook) LastSaveError() error { return nb.saveErr }

// CreateFolder adds a folder with the given display color. Empty or
// whitespace-only names are rejected, as are names already registered
// (exact, case-sensitive match).
func (nb *Notebook) CreateFolder(name, color string) (*model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("folder: %w", ErrEmptyName)
	}

	f := model.NewFolder(name, color)
	if !nb.reg.Add(f) {
		return nil, fmt.Errorf("folder %q: %w", name, ErrDuplicateName)
	}

	nb.persist()
	return f, nil
}

// Folders returns all folders in insertion order.
func (nb *Notebook) Folders() []*model.Folder { return nb.reg.Folders() }

// Folder returns the named folder, or nil if absent.
func (nb *Notebook) Folder(name string) *model.Folder { return nb.reg.Get(name) }

// DeleteFolder removes a folder and every note it owns.
func (nb *Notebook) DeleteFolder(name string) error {
	if !nb.reg.Remove(name) {
		return fmt.Errorf("folder %q: %w", name, ErrNotFound)
	}

	if nb.sess.Folder() == name {
		nb.sess.clear()
	}

	nb.persist()
	return nil
}

// CreateNote adds a new empty note to the named folder, titled
// "Untitled Note {n+1}" where n is the folder's current note count. The
// note's font snapshots the current preference. If the generated title
// collides with a survivor of earlier deletions, the existing note is
// replaced; single-session counters make this a deliberate simplification.
func (nb *Notebook) CreateNote(folderName string) (*model.Note, error) {
	f := nb.reg.Get(folderName)
	if f == nil {
		return nil, fmt.Errorf("folder %q: %w", folderName, ErrNotFound)
	}

	n := &model.Note{
		Title: fmt.Sprintf("Untitled Note %d", f.Notes.Len()+1),
		Font:  nb.cfg.CurrentFont,
	}
	n.Created = time.Now()
	n.Modified = n.Created

	f.Notes.Put(n)
	nb.persist()
	return n, nil
}

// Note returns the titled note in the named folder, or nil if either is
// absent.
func (nb *Notebook) Note(folderName, title string) *model.Note {
	f := nb.reg.Get(folderName)
	if f == nil {
		return nil
	}
	return f.Notes.Get(title)
}

// NoteUpdate carries the fields UpdateNote should change; nil fields are
// left untouched.
type NoteUpdate struct {
	Content *string
	Font    *model.FontDescriptor
}

// UpdateNote applies upd to the titled note and bumps its modified
// timestamp.
func (nb *Notebook) UpdateNote(folderName, title string, upd NoteUpdate) error {
	n := nb.Note(folderName, title)
	if n == nil {
		return fmt.Errorf("note %q in folder %q: %w", title, folderName, ErrNotFound)
	}

	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Font != nil {
		n.Font = upd.Font.Normalize()
	}
	n.Touch()

	nb.persist()
	return nil
}

// RenameNote retitles a note, keeping its position in the folder. The new
// title must be non-empty and unused within the folder.
func (nb *Notebook) RenameNote(folderName, oldTitle, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return fmt.Errorf("note title: %w", ErrEmptyName)
	}
	if newTitle == oldTitle {
		return nil
	}

	f := nb.reg.Get(folderName)
	if f == nil {
		return fmt.Errorf("folder %q: %w", folderName, ErrNotFound)
	}
	n := f.Notes.Get(oldTitle)
	if n == nil {
		return fmt.Errorf("note %q: %w", oldTitle, ErrNotFound)
	}
	if f.Notes.Get(newTitle) != nil {
		return fmt.Errorf("note %q: %w", newTitle, ErrDuplicateTitle)
	}

	if err := f.Notes.Rename(oldTitle, newTitle); err != nil {
		return fmt.Errorf("renaming note: %w", err)
	}
	n.Touch()

	if nb.sess.Folder() == folderName && nb.sess.Note() == oldTitle {
		nb.sess.selectNote(newTitle)
	}

	nb.persist()
	return nil
}

// DeleteNote removes the titled note from the named folder.
func (nb *Notebook) DeleteNote(folderName, title string) error {
	f := nb.reg.Get(folderName)
	if f == nil {
		return fmt.Errorf("folder %q: %w", folderName, ErrNotFound)
	}
	if !f.Notes.Remove(title) {
		return fmt.Errorf("note %q: %w", title, ErrNotFound)
	}

	if nb.sess.Folder() == folderName && nb.sess.Note() == title {
		nb.sess.clearNote()
	}

	nb.persist()
	return nil
}

// ImportNote creates a note with the given title and content in the named
// folder. An existing note with the same title is replaced in place;
// import is a deliberate overwrite, unlike folder creation.
func (nb *Notebook) ImportNote(folderName, title, content string) (*model.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("note title: %w", ErrEmptyName)
	}

	f := nb.reg.Get(folderName)
	if f == nil {
		return nil, fmt.Errorf("folder %q: %w", folderName, ErrNotFound)
	}

	n := &model.Note{
		Title:   title,
		Content: content,
		Font:    nb.cfg.CurrentFont,
	}
	n.Created = time.Now()
	n.Modified = n.Created

	f.Notes.Put(n)
	nb.persist()
	return n, nil
}

// ImportNoteFile reads a text file and imports it into the named folder,
// deriving the note title from the file's base name without extension.
func (nb *Notebook) ImportNoteFile(folderName, path string) (*model.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	return nb.ImportNote(folderName, title, string(data))
}

// ExportNote writes the note's content, trimmed of surrounding
// whitespace, as plain text to path. A path without extension gets ".txt".
func (nb *Notebook) ExportNote(folderName, title, path string) error {
	n := nb.Note(folderName, title)
	if n == nil {
		return fmt.Errorf("note %q in folder %q: %w", title, folderName, ErrNotFound)
	}

	if filepath.Ext(path) == "" {
		path += ".txt"
	}

	content := strings.TrimSpace(n.Content)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("exporting note to %s: %w", path, err)
	}
	return nil
}

// Search runs a stateless substring query over the whole registry.
func (nb *Notebook) Search(query string) []SearchResult {
	return Search(nb.reg, query)
}

// SelectFolder makes the named folder current and clears any note
// selection.
func (nb *Notebook) SelectFolder(name string) error {
	if nb.reg.Get(name) == nil {
		return fmt.Errorf("folder %q: %w", name, ErrNotFound)
	}
	nb.sess.selectFolder(name)
	return nil
}

// SelectNote makes the titled note current; it must live in the current
// folder.
func (nb *Notebook) SelectNote(title string) error {
	f, err := nb.CurrentFolder()
	if err != nil {
		return err
	}
	if f.Notes.Get(title) == nil {
		return fmt.Errorf("note %q: %w", title, ErrNotFound)
	}
	nb.sess.selectNote(title)
	return nil
}

// CurrentFolder returns the selected folder, or ErrNoSelection.
func (nb *Notebook) CurrentFolder() (*model.Folder, error) {
	if !nb.sess.HasFolder() {
		return nil, fmt.Errorf("folder: %w", ErrNoSelection)
	}
	f := nb.reg.Get(nb.sess.Folder())
	if f == nil {
		return nil, fmt.Errorf("folder %q: %w", nb.sess.Folder(), ErrNotFound)
	}
	return f, nil
}

// CurrentNote returns the selected note, or ErrNoSelection.
func (nb *Notebook) CurrentNote() (*model.Note, error) {
	f, err := nb.CurrentFolder()
	if err != nil {
		return nil, err
	}
	if !nb.sess.HasNote() {
		return nil, fmt.Errorf("note: %w", ErrNoSelection)
	}
	n := f.Notes.Get(nb.sess.Note())
	if n == nil {
		return nil, fmt.Errorf("note %q: %w", nb.sess.Note(), ErrNotFound)
	}
	return n, nil
}

// SetCurrentFont updates the process-wide font preference. When a note is
// selected the new font is applied to it as well, bumping its modified
// timestamp, the same as any other edit.
func (nb *Notebook) SetCurrentFont(fd model.FontDescriptor) {
	nb.cfg.CurrentFont = fd.Normalize()

	if n, err := nb.CurrentNote(); err == nil {
		n.Font = nb.cfg.CurrentFont
		n.Touch()
		nb.persist()
	}

	if err := nb.store.SaveConfig(nb.cfg); err != nil {
		nb.log.Warn().Err(err).Msg("could not save config")
	}
}

// SetWindowSize records the terminal geometry in the preference record.
// It is flushed with the rest of the config on exit.
func (nb *Notebook) SetWindowSize(width, height int) {
	nb.cfg.WindowSize = fmt.Sprintf("%dx%d", width, height)
}

// FlushConfig writes the preference record to disk. Called on shutdown.
func (nb *Notebook) FlushConfig() {
	if err := nb.store.SaveConfig(nb.cfg); err != nil {
		nb.log.Warn().Err(err).Msg("could not save config")
	}
}

// persist flushes the full registry after a mutation. A failure is logged
// and remembered for the status bar but never propagated: the in-memory
// state stays authoritative and the user keeps editing.
func (nb *Notebook) persist() {
	err := nb.store.SaveRegistry(nb.reg)
	nb.saveErr = err
	if err != nil {
		nb.log.Warn().Err(err).Msg("could not save registry")
	}
}
