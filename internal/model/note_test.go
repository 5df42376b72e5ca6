package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNote(title string) *Note {
	n := &Note{
		Title:   title,
		Content: "content of " + title,
		Font:    DefaultFont(),
	}
	n.Created = time.Now()
	n.Modified = n.Created
	return n
}

func TestNoteSetAddRejectsDuplicate(t *testing.T) {
	var s NoteSet

	require.True(t, s.Add(newNote("a")))
	assert.False(t, s.Add(newNote("a")))
	assert.Equal(t, 1, s.Len())
}

func TestNoteSetPutReplacesInPlace(t *testing.T) {
	var s NoteSet
	s.Add(newNote("a"))
	s.Add(newNote("b"))
	s.Add(newNote("c"))

	repl := newNote("b")
	repl.Content = "replaced"
	s.Put(repl)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, "replaced", s.Get("b").Content)

	titles := make([]string, 0, 3)
	for _, n := range s.All() {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"a", "b", "c"}, titles)
}

func TestNoteSetRemove(t *testing.T) {
	var s NoteSet
	s.Add(newNote("a"))
	s.Add(newNote("b"))

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Nil(t, s.Get("a"))
	assert.Equal(t, 1, s.Len())
}

func TestNoteSetRenameKeepsPosition(t *testing.T) {
	var s NoteSet
	s.Add(newNote("a"))
	s.Add(newNote("b"))
	s.Add(newNote("c"))

	require.NoError(t, s.Rename("b", "renamed"))

	assert.Nil(t, s.Get("b"))
	require.NotNil(t, s.Get("renamed"))
	assert.Equal(t, "renamed", s.All()[1].Title)
}

func TestNoteSetRenameRejectsTakenTitle(t *testing.T) {
	var s NoteSet
	s.Add(newNote("a"))
	s.Add(newNote("b"))

	assert.Error(t, s.Rename("a", "b"))
	assert.Error(t, s.Rename("missing", "x"))
	assert.NoError(t, s.Rename("a", "a"))
}

func TestNoteSetJSONRoundTripPreservesOrder(t *testing.T) {
	var s NoteSet
	for _, title := range []string{"zebra", "apple", "Middle"} {
		s.Add(newNote(title))
	}

	data, err := json.Marshal(&s)
	require.NoError(t, err)

	var got NoteSet
	require.NoError(t, json.Unmarshal(data, &got))

	require.Equal(t, 3, got.Len())
	titles := make([]string, 0, 3)
	for _, n := range got.All() {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"zebra", "apple", "Middle"}, titles)
	assert.Equal(t, "content of apple", got.Get("apple").Content)
}

func TestNoteSetUnmarshalSkipsMalformedRecords(t *testing.T) {
	data := []byte(`{
		"good": {"title": "good", "content": "ok", "created": "2024-01-02T03:04:05Z", "modified": "2024-01-02T03:04:05Z", "font": {"family": "Arial", "size": 12, "weight": "normal", "slant": "roman"}},
		"bad": "not an object",
		"also good": {"title": "also good", "content": "fine"}
	}`)

	var s NoteSet
	require.NoError(t, json.Unmarshal(data, &s))

	assert.Equal(t, 2, s.Len())
	assert.NotNil(t, s.Get("good"))
	assert.NotNil(t, s.Get("also good"))
	assert.Nil(t, s.Get("bad"))
}

func TestNoteSetUnmarshalKeyWinsOverTitleField(t *testing.T) {
	data := []byte(`{"Key Title": {"title": "Stale Title", "content": "x"}}`)

	var s NoteSet
	require.NoError(t, json.Unmarshal(data, &s))

	n := s.Get("Key Title")
	require.NotNil(t, n)
	assert.Equal(t, "Key Title", n.Title)
}

func TestNoteSetUnmarshalNormalizesFont(t *testing.T) {
	data := []byte(`{"n": {"title": "n", "font": {"family": "", "size": -1, "weight": "x", "slant": ""}}}`)

	var s NoteSet
	require.NoError(t, json.Unmarshal(data, &s))

	require.NotNil(t, s.Get("n"))
	assert.Equal(t, DefaultFont(), s.Get("n").Font)
}

func TestNoteTouchKeepsModifiedAfterCreated(t *testing.T) {
	n := newNote("a")
	created := n.Created

	n.Touch()

	assert.Equal(t, created, n.Created)
	assert.False(t, n.Modified.Before(n.Created))
}

func TestNoteTouchWithFutureCreated(t *testing.T) {
	n := &Note{Title: "a", Created: time.Now().Add(time.Hour)}

	n.Touch()

	assert.False(t, n.Modified.Before(n.Created))
}
