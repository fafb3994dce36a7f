// Package search narrows a view by repository name.
package search

import (
	"strings"

	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
)

// Search returns the records of view whose name contains query,
// case-insensitively, in view order. An empty query returns the view
// unchanged. Records without a name never match a non-empty query.
func Search(view model.View, query string) model.View {
	if query == "" {
		return view
	}

	needle := strings.ToLower(query)
	out := make([]model.Record, 0)
	for _, r := range view.Records {
		if matchLower(r.Name, needle) {
			out = append(out, r)
		}
	}

	log.Trace("search", "query", query, "in", view.Len(), "out", len(out))
	return model.View{Records: out, Columns: view.Columns}
}

// Match reports whether name contains query, ignoring case. An empty
// query matches everything.
func Match(name, query string) bool {
	if query == "" {
		return true
	}
	return matchLower(name, strings.ToLower(query))
}

// Locate returns the byte offsets of the first case-insensitive
// occurrence of query in name, or -1, -1. Used to highlight matches.
func Locate(name, query string) (int, int) {
	if query == "" || name == "" {
		return -1, -1
	}
	lower := strings.ToLower(name)
	needle := strings.ToLower(query)
	// ToLower can change byte length for some runes; only highlight when
	// it did not.
	if len(lower) != len(name) {
		return -1, -1
	}
	i := strings.Index(lower, needle)
	if i < 0 {
		return -1, -1
	}
	return i, i + len(needle)
}

func matchLower(name, needle string) bool {
	if name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), needle)
}
