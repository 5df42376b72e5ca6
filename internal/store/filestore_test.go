package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notetaker/internal/model"
	"notetaker/internal/store"
	"notetaker/tests/testutil"
)

func TestLoadRegistryAbsentFile(t *testing.T) {
	s := testutil.NewTestStore(t)

	reg := s.LoadRegistry()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryRoundTripPreservesOrder(t *testing.T) {
	s := testutil.NewTestStore(t)

	reg := model.NewRegistry()
	for _, name := range []string{"Work", "Personal", "Archive"} {
		f := model.NewFolder(name, "#ff6b6b")
		n := &model.Note{Title: "first", Content: "hello", Font: model.DefaultFont()}
		n.Touch()
		f.Notes.Add(n)
		reg.Add(f)
	}

	require.NoError(t, s.SaveRegistry(reg))

	got := s.LoadRegistry()
	require.Equal(t, 3, got.Len())

	names := make([]string, 0, 3)
	for _, f := range got.Folders() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Work", "Personal", "Archive"}, names)
	assert.Equal(t, "hello", got.Get("Personal").Notes.Get("first").Content)
}

func TestLoadRegistryCorruptFile(t *testing.T) {
	s := testutil.NewTestStore(t)

	require.NoError(t, os.WriteFile(s.RegistryPath(), []byte("{not json"), 0o644))

	reg := s.LoadRegistry()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Len())

	// A save after the corrupt load replaces the bad file and loads back.
	f := model.NewFolder("Fresh", "#4ecdc4")
	reg.Add(f)
	require.NoError(t, s.SaveRegistry(reg))

	got := s.LoadRegistry()
	require.Equal(t, 1, got.Len())
	assert.NotNil(t, got.Get("Fresh"))
}

func TestSaveRegistryWritesIndentedObject(t *testing.T) {
	s := testutil.NewTestStore(t)

	reg := model.NewRegistry()
	reg.Add(model.NewFolder("Work", "#ff6b6b"))
	require.NoError(t, s.SaveRegistry(reg))

	data, err := os.ReadFile(s.RegistryPath())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "Work")
}

func TestLoadConfigAbsentFile(t *testing.T) {
	s := testutil.NewTestStore(t)

	cfg := s.LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, model.DefaultFont(), cfg.CurrentFont)
	assert.Equal(t, "1200x800", cfg.WindowSize)
}

func TestConfigRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)

	cfg := &model.AppConfig{
		CurrentFont: model.FontDescriptor{
			Family: "Consolas",
			Size:   16,
			Weight: model.WeightBold,
			Slant:  model.SlantItalic,
		},
		WindowSize: "100x40",
	}
	require.NoError(t, s.SaveConfig(cfg))

	got := s.LoadConfig()
	assert.Equal(t, cfg.CurrentFont, got.CurrentFont)
	assert.Equal(t, "100x40", got.WindowSize)
}

func TestLoadConfigCorruptFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app_config.json")
	s, err := store.NewFileStore(filepath.Join(dir, "notes_data"), configPath, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(configPath, []byte("{{{{"), 0o644))

	cfg := s.LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, model.DefaultFont(), cfg.CurrentFont)
}

func TestLoadConfigNormalizesBadFont(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app_config.json")
	s, err := store.NewFileStore(filepath.Join(dir, "notes_data"), configPath, zerolog.Nop())
	require.NoError(t, err)

	bad := `{"current_font": {"family": "", "size": -2, "weight": "x", "slant": "y"}, "window_size": ""}`
	require.NoError(t, os.WriteFile(configPath, []byte(bad), 0o644))

	cfg := s.LoadConfig()
	assert.Equal(t, model.DefaultFont(), cfg.CurrentFont)
	assert.Equal(t, "1200x800", cfg.WindowSize)
}

func TestSaveRegistryLeavesNoTempFiles(t *testing.T) {
	s := testutil.NewTestStore(t)

	reg := model.NewRegistry()
	reg.Add(model.NewFolder("Work", "#ff6b6b"))
	require.NoError(t, s.SaveRegistry(reg))

	entries, err := os.ReadDir(filepath.Dir(s.RegistryPath()))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
