package store

import "notetaker/internal/model"

// Store defines the persistence interface for the folder registry and the
// application preferences.
//
// Load methods never fail: a missing file yields the empty/default value,
// and a corrupt file is reported through the log and then treated the same
// way. The in-memory state stays authoritative; see the Save methods for
// the write-side contract.
type Store interface {
	// LoadRegistry reads the full folder/note structure from disk.
	LoadRegistry() *model.Registry

	// SaveRegistry rewrites the full registry atomically: a partially
	// written file is never visible to a subsequent LoadRegistry.
	SaveRegistry(r *model.Registry) error

	// LoadConfig reads the application preferences, falling back to
	// defaults when the file is absent or unreadable.
	LoadConfig() *model.AppConfig

	// SaveConfig writes the application preferences.
	SaveConfig(cfg *model.AppConfig) error
}
