package notebook_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notetaker/internal/model"
	"notetaker/internal/notebook"
	"notetaker/tests/testutil"
)

func newNotebook(t *testing.T) *notebook.Notebook {
	t.Helper()
	return notebook.Open(testutil.NewTestStore(t), zerolog.Nop())
}

func TestCreateFolder(t *testing.T) {
	nb := newNotebook(t)

	f, err := nb.CreateFolder("Work", "#ff6b6b")
	require.NoError(t, err)
	assert.Equal(t, "Work", f.Name)
	assert.Equal(t, "#ff6b6b", f.Color)
	assert.False(t, f.Created.IsZero())
	assert.NoError(t, nb.LastSaveError())
}

func TestCreateFolderRejectsEmptyName(t *testing.T) {
	nb := newNotebook(t)

	_, err := nb.CreateFolder("   ", "#ff6b6b")
	assert.ErrorIs(t, err, notebook.ErrEmptyName)
	assert.Equal(t, 0, nb.Registry().Len())
}

func TestCreateFolderRejectsDuplicateUnchanged(t *testing.T) {
	nb := newNotebook(t)

	f, err := nb.CreateFolder("Work", "#ff6b6b")
	require.NoError(t, err)
	_, err = nb.CreateNote(f.Name)
	require.NoError(t, err)

	_, err = nb.CreateFolder("Work", "#4ecdc4")
	assert.ErrorIs(t, err, notebook.ErrDuplicateName)

	// The original folder and its contents are untouched.
	got := nb.Folder("Work")
	assert.Equal(t, "#ff6b6b", got.Color)
	assert.Equal(t, 1, got.Notes.Len())
}

func TestDeleteFolderCascades(t *testing.T) {
	nb := newNotebook(t)

	f, _ := nb.CreateFolder("Work", "#ff6b6b")
	n, _ := nb.CreateNote(f.Name)
	require.NoError(t, nb.SelectFolder("Work"))
	require.NoError(t, nb.SelectNote(n.Title))

	require.NoError(t, nb.DeleteFolder("Work"))

	assert.Nil(t, nb.Folder("Work"))
	assert.False(t, nb.Session().HasFolder())
	assert.False(t, nb.Session().HasNote())

	assert.ErrorIs(t, nb.DeleteFolder("Work"), notebook.ErrNotFound)
}

func TestCreateNoteAutoTitles(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")

	n1, err := nb.CreateNote("Work")
	require.NoError(t, err)
	n2, err := nb.CreateNote("Work")
	require.NoError(t, err)
	n3, err := nb.CreateNote("Work")
	require.NoError(t, err)

	assert.Equal(t, "Untitled Note 1", n1.Title)
	assert.Equal(t, "Untitled Note 2", n2.Title)
	assert.Equal(t, "Untitled Note 3", n3.Title)
}

func TestCreateNoteSnapshotsCurrentFont(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")

	bold := model.FontDescriptor{
		Family: "Georgia", Size: 14,
		Weight: model.WeightBold, Slant: model.SlantRoman,
	}
	nb.SetCurrentFont(bold)

	n, err := nb.CreateNote("Work")
	require.NoError(t, err)
	assert.Equal(t, bold, n.Font)
	assert.Equal(t, n.Created, n.Modified)
}

func TestCreateNoteMissingFolder(t *testing.T) {
	nb := newNotebook(t)

	_, err := nb.CreateNote("nope")
	assert.ErrorIs(t, err, notebook.ErrNotFound)
}

func TestUpdateNoteBumpsModifiedOnly(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")
	n, _ := nb.CreateNote("Work")
	created := n.Created

	time.Sleep(5 * time.Millisecond)
	content := "Buy milk"
	require.NoError(t, nb.UpdateNote("Work", n.Title, notebook.NoteUpdate{Content: &content}))

	assert.Equal(t, "Buy milk", n.Content)
	assert.Equal(t, created, n.Created)
	assert.True(t, n.Modified.After(created))
}

func TestUpdateNoteNotFound(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")

	content := "x"
	err := nb.UpdateNote("Work", "nope", notebook.NoteUpdate{Content: &content})
	assert.ErrorIs(t, err, notebook.ErrNotFound)
}

func TestRenameNote(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")
	n, _ := nb.CreateNote("Work")
	nb.SelectFolder("Work")
	nb.SelectNote(n.Title)

	require.NoError(t, nb.RenameNote("Work", n.Title, "Groceries"))

	assert.Equal(t, "Groceries", n.Title)
	assert.NotNil(t, nb.Note("Work", "Groceries"))
	assert.Nil(t, nb.Note("Work", "Untitled Note 1"))
	assert.Equal(t, "Groceries", nb.Session().Note())
}

func TestRenameNoteRejectsDuplicateAndEmpty(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")
	n1, _ := nb.CreateNote("Work")
	n2, _ := nb.CreateNote("Work")

	assert.ErrorIs(t, nb.RenameNote("Work", n1.Title, n2.Title), notebook.ErrDuplicateTitle)
	assert.ErrorIs(t, nb.RenameNote("Work", n1.Title, "  "), notebook.ErrEmptyName)
	assert.NoError(t, nb.RenameNote("Work", n1.Title, n1.Title))
}

func TestDeleteNoteClearsSelection(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")
	n, _ := nb.CreateNote("Work")
	nb.SelectFolder("Work")
	nb.SelectNote(n.Title)

	require.NoError(t, nb.DeleteNote("Work", n.Title))

	assert.Nil(t, nb.Note("Work", n.Title))
	assert.True(t, nb.Session().HasFolder())
	assert.False(t, nb.Session().HasNote())

	assert.ErrorIs(t, nb.DeleteNote("Work", n.Title), notebook.ErrNotFound)
}

func TestSelectFolderClearsNote(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")
	nb.CreateFolder("Personal", "#4ecdc4")
	n, _ := nb.CreateNote("Work")
	nb.SelectFolder("Work")
	require.NoError(t, nb.SelectNote(n.Title))

	require.NoError(t, nb.SelectFolder("Personal"))

	assert.Equal(t, "Personal", nb.Session().Folder())
	assert.False(t, nb.Session().HasNote())
}

func TestSelectNoteRequiresFolderAndExistence(t *testing.T) {
	nb := newNotebook(t)

	assert.ErrorIs(t, nb.SelectNote("x"), notebook.ErrNoSelection)

	nb.CreateFolder("Work", "#ff6b6b")
	require.NoError(t, nb.SelectFolder("Work"))
	assert.ErrorIs(t, nb.SelectNote("x"), notebook.ErrNotFound)
}

func TestCurrentNoteNoSelection(t *testing.T) {
	nb := newNotebook(t)

	_, err := nb.CurrentFolder()
	assert.ErrorIs(t, err, notebook.ErrNoSelection)

	nb.CreateFolder("Work", "#ff6b6b")
	require.NoError(t, nb.SelectFolder("Work"))
	_, err = nb.CurrentNote()
	assert.ErrorIs(t, err, notebook.ErrNoSelection)
}

func TestOpenAutoSelectsFirstFolder(t *testing.T) {
	s := testutil.NewTestStore(t)

	nb := notebook.Open(s, zerolog.Nop())
	assert.False(t, nb.Session().HasFolder())
	nb.CreateFolder("Work", "#ff6b6b")
	nb.CreateFolder("Personal", "#4ecdc4")

	reopened := notebook.Open(s, zerolog.Nop())
	assert.Equal(t, "Work", reopened.Session().Folder())
	assert.False(t, reopened.Session().HasNote())
}

func TestSetCurrentFontAppliesToSelectedNote(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")
	n, _ := nb.CreateNote("Work")
	nb.SelectFolder("Work")
	nb.SelectNote(n.Title)
	before := n.Modified

	time.Sleep(5 * time.Millisecond)
	fd := model.FontDescriptor{
		Family: "Menlo", Size: 10,
		Weight: model.WeightNormal, Slant: model.SlantItalic,
	}
	nb.SetCurrentFont(fd)

	assert.Equal(t, fd, nb.CurrentFont())
	assert.Equal(t, fd, n.Font)
	assert.True(t, n.Modified.After(before))
}

func TestSetCurrentFontNormalizes(t *testing.T) {
	nb := newNotebook(t)

	nb.SetCurrentFont(model.FontDescriptor{Family: "", Size: -1})
	assert.Equal(t, model.DefaultFont(), nb.CurrentFont())
}

func TestImportNoteOverwritesDuplicate(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")

	_, err := nb.ImportNote("Work", "Plan", "v1")
	require.NoError(t, err)
	_, err = nb.ImportNote("Work", "Plan", "v2")
	require.NoError(t, err)

	f := nb.Folder("Work")
	assert.Equal(t, 1, f.Notes.Len())
	assert.Equal(t, "v2", f.Notes.Get("Plan").Content)
}

func TestImportNoteFile(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")

	path := filepath.Join(t.TempDir(), "Meeting Notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("agenda"), 0o644))

	n, err := nb.ImportNoteFile("Work", path)
	require.NoError(t, err)
	assert.Equal(t, "Meeting Notes", n.Title)
	assert.Equal(t, "agenda", n.Content)

	_, err = nb.ImportNoteFile("Work", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExportNoteTrimsAndAddsExtension(t *testing.T) {
	nb := newNotebook(t)
	nb.CreateFolder("Work", "#ff6b6b")
	n, _ := nb.CreateNote("Work")
	content := "\n  hello world \n\n"
	require.NoError(t, nb.UpdateNote("Work", n.Title, notebook.NoteUpdate{Content: &content}))

	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, nb.ExportNote("Work", n.Title, path))

	data, err := os.ReadFile(path + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	assert.ErrorIs(t, nb.ExportNote("Work", "nope", path), notebook.ErrNotFound)
}

// Mirrors the first-run walkthrough: create a folder, add a note, edit it,
// and find it again after a reload.
func TestFirstRunScenario(t *testing.T) {
	s := testutil.NewTestStore(t)
	nb := notebook.Open(s, zerolog.Nop())

	f, err := nb.CreateFolder("Work", "#ff6b6b")
	require.NoError(t, err)
	require.NoError(t, nb.SelectFolder(f.Name))

	n, err := nb.CreateNote(f.Name)
	require.NoError(t, err)
	assert.Equal(t, "Untitled Note 1", n.Title)

	content := "Buy milk"
	require.NoError(t, nb.UpdateNote(f.Name, n.Title, notebook.NoteUpdate{Content: &content}))

	results := nb.Search("milk")
	require.Len(t, results, 1)
	assert.Equal(t, "Work", results[0].Folder)
	assert.Equal(t, "Untitled Note 1", results[0].Title)

	reopened := notebook.Open(s, zerolog.Nop())
	got := reopened.Note("Work", "Untitled Note 1")
	require.NotNil(t, got)
	assert.Equal(t, "Buy milk", got.Content)
	assert.Equal(t, "Work", reopened.Session().Folder())
}
