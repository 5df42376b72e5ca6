package notebook

import (
	"strings"

	"notetaker/internal/model"
)

// SearchResult identifies one matching note by its folder name and title.
type SearchResult struct {
	Folder string
	Title  string
}

// Search returns the notes whose title or content contains query,
// case-insensitively. The empty query matches nothing. Results follow
// folder insertion order, then note insertion order within each folder;
// there is no ranking. The registry is never mutated.
func Search(reg *model.Registry, query string) []SearchResult {
	if query == "" {
		return nil
	}

	q := strings.ToLower(query)
	var results []SearchResult
	for _, f := range reg.Folders() {
		for _, n := range f.Notes.All() {
			if strings.Contains(strings.ToLower(n.Title), q) ||
				strings.Contains(strings.ToLower(n.Content), q) {
				results = append(results, SearchResult{Folder: f.Name, Title: n.Title})
			}
		}
	}
	return results
}
