package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"notetaker/internal/model"
)

// registryFile is the name of the serialized registry inside the data
// directory.
const registryFile = "folders.json"

// FileStore implements the Store interface on top of two JSON files: the
// registry under the data directory and the preference file next to it.
// Every save rewrites the whole file; the data volume of a personal note
// set is small enough that this buys partial-write correctness for free.
type FileStore struct {
	dataDir    string
	configPath string
	log        zerolog.Logger
}

// NewFileStore creates a store rooted at dataDir, creating the directory
// if needed. configPath locates the preference file.
func NewFileStore(dataDir, configPath string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dataDir, err)
	}

	return &FileStore{
		dataDir:    dataDir,
		configPath: configPath,
		log:        log,
	}, nil
}

// RegistryPath returns the full path of the registry file.
func (s *FileStore) RegistryPath() string {
	return filepath.Join(s.dataDir, registryFile)
}

// LoadRegistry reads the registry file. A missing file is a normal first
// run and yields an empty registry; a file that fails to parse is logged
// and discarded for the session, also yielding an empty registry.
func (s *FileStore) LoadRegistry() *model.Registry {
	path := s.RegistryPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", path).Msg("could not read registry file")
		}
		return model.NewRegistry()
	}

	reg := model.NewRegistry()
	if err := json.Unmarshal(data, reg); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("registry file is corrupt, starting empty")
		return model.NewRegistry()
	}

	return reg
}

// SaveRegistry serializes the registry and replaces the registry file
// atomically via a same-directory temp file and rename.
func (s *FileStore) SaveRegistry(r *model.Registry) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling registry: %w", err)
	}

	if err := writeFileAtomic(s.RegistryPath(), data); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}

// LoadConfig reads the preference file. Absent or corrupt files fall back
// to the default configuration; corruption is logged.
func (s *FileStore) LoadConfig() *model.AppConfig {
	v := viper.New()
	v.SetConfigFile(s.configPath)
	v.SetConfigType("json")

	def := model.DefaultAppConfig()
	v.SetDefault("current_font.family", def.CurrentFont.Family)
	v.SetDefault("current_font.size", def.CurrentFont.Size)
	v.SetDefault("current_font.weight", def.CurrentFont.Weight)
	v.SetDefault("current_font.slant", def.CurrentFont.Slant)
	v.SetDefault("window_size", def.WindowSize)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			s.log.Warn().Err(err).Str("path", s.configPath).Msg("config file is corrupt, using defaults")
		}
		return model.DefaultAppConfig()
	}

	cfg := model.DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		s.log.Warn().Err(err).Str("path", s.configPath).Msg("could not parse config, using defaults")
		return model.DefaultAppConfig()
	}

	cfg.CurrentFont = cfg.CurrentFont.Normalize()
	if cfg.WindowSize == "" {
		cfg.WindowSize = def.WindowSize
	}
	return cfg
}

// SaveConfig writes the preference file, creating parent directories if
// needed.
func (s *FileStore) SaveConfig(cfg *model.AppConfig) error {
	dir := filepath.Dir(s.configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(s.configPath)
	v.SetConfigType("json")

	v.Set("current_font", cfg.CurrentFont)
	v.Set("window_size", cfg.WindowSize)

	if err := v.WriteConfigAs(s.configPath); err != nil {
		return fmt.Errorf("writing config to %s: %w", s.configPath, err)
	}
	return nil
}

// writeFileAtomic writes data to a uniquely named temp file in the target
// directory and renames it over path, so readers only ever see a complete
// file.
func writeFileAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
