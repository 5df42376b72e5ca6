package testutil

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"notetaker/internal/store"
)

// NewTestStore creates a FileStore rooted in a fresh temporary directory.
// The directory is removed when the test completes.
func NewTestStore(t *testing.T) *store.FileStore {
	t.Helper()

	dir := t.TempDir()
	s, err := store.NewFileStore(
		filepath.Join(dir, "notes_data"),
		filepath.Join(dir, "app_config.json"),
		zerolog.Nop(),
	)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	return s
}
