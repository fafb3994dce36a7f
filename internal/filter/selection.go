// Package filter applies the sidebar selection (languages and star range)
// to a dataset.
package filter

import (
	"sort"

	"github.com/spiffcs/repodash/internal/model"
)

// Selection is the user-controlled filter state: a set of languages and a
// closed star interval. A Selection is a value; every method that changes
// it returns a new one.
type Selection struct {
	languages map[string]bool
	MinStars  int
	MaxStars  int
}

// New creates a Selection. Inverted bounds are swapped.
func New(languages []string, minStars, maxStars int) Selection {
	s := Selection{languages: make(map[string]bool, len(languages))}
	for _, l := range languages {
		s.languages[l] = true
	}
	return s.WithRange(minStars, maxStars)
}

// Default returns the initial selection for a dataset: every known
// language and the full observed star range.
func Default(ds *model.Dataset) Selection {
	lo, hi := ds.StarBounds()
	return New(ds.Languages(), lo, hi)
}

// Has reports whether a language is selected.
func (s Selection) Has(lang string) bool {
	return s.languages[lang]
}

// Languages returns the selected languages sorted.
func (s Selection) Languages() []string {
	out := make([]string, 0, len(s.languages))
	for l := range s.languages {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Count returns how many languages are selected.
func (s Selection) Count() int {
	return len(s.languages)
}

// Toggle flips the membership of one language.
func (s Selection) Toggle(lang string) Selection {
	out := s.clone()
	if out.languages[lang] {
		delete(out.languages, lang)
	} else {
		out.languages[lang] = true
	}
	return out
}

// WithLanguages replaces the language set.
func (s Selection) WithLanguages(languages []string) Selection {
	return New(languages, s.MinStars, s.MaxStars)
}

// WithRange replaces the star interval, swapping inverted bounds.
func (s Selection) WithRange(minStars, maxStars int) Selection {
	out := s.clone()
	if minStars > maxStars {
		minStars, maxStars = maxStars, minStars
	}
	out.MinStars, out.MaxStars = minStars, maxStars
	return out
}

// Clamp limits the star interval to [lo, hi].
func (s Selection) Clamp(lo, hi int) Selection {
	return s.WithRange(
		min(max(s.MinStars, lo), hi),
		max(min(s.MaxStars, hi), lo),
	)
}

// InRange reports whether stars falls in the closed interval.
func (s Selection) InRange(stars int) bool {
	return s.MinStars <= stars && stars <= s.MaxStars
}

// Narrower reports whether s admits no record that other rejects: its
// languages are a subset of other's and its interval lies inside other's.
func (s Selection) Narrower(other Selection) bool {
	for l := range s.languages {
		if !other.languages[l] {
			return false
		}
	}
	return s.MinStars >= other.MinStars && s.MaxStars <= other.MaxStars
}

// Equal reports whether two selections are identical.
func (s Selection) Equal(other Selection) bool {
	return s.Narrower(other) && other.Narrower(s)
}

func (s Selection) clone() Selection {
	out := Selection{
		languages: make(map[string]bool, len(s.languages)),
		MinStars:  s.MinStars,
		MaxStars:  s.MaxStars,
	}
	for l := range s.languages {
		out.languages[l] = true
	}
	return out
}
