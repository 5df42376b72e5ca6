package notebook

import "errors"

// Sentinel errors surfaced to the UI layer as user-visible warnings.
// None of them are fatal; callers match with errors.Is.
var (
	// ErrEmptyName rejects folder names and note titles that are empty
	// or whitespace-only.
	ErrEmptyName = errors.New("name is empty")

	// ErrDuplicateName rejects a folder name already present in the
	// registry. Matching is exact and case-sensitive.
	ErrDuplicateName = errors.New("folder already exists")

	// ErrDuplicateTitle rejects a note title already present in the
	// target folder.
	ErrDuplicateTitle = errors.New("note already exists")

	// ErrNotFound reports a lookup of a folder or note that does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrNoSelection reports an action that needs a current folder or
	// note while none is selected.
	ErrNoSelection = errors.New("nothing selected")
)
