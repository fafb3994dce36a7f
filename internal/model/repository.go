// Package model contains the domain types shared by the loader, the
// filter and aggregation engines and the presentation layers.
package model

import "strings"

// Column names one of the expected columns of the input file.
type Column string

const (
	ColumnName     Column = "repositories"
	ColumnLanguage Column = "language"
	ColumnStars    Column = "stars_count"
	ColumnForks    Column = "forks_count"
	ColumnIssues   Column = "issues_count"
)

// AllColumns lists the expected columns in file order.
var AllColumns = []Column{
	ColumnName,
	ColumnLanguage,
	ColumnStars,
	ColumnForks,
	ColumnIssues,
}

// ParseColumn maps a raw header cell to a known column.
// Headers are matched after trimming, lowercasing and snake-casing so
// "Stars Count" and "stars-count" both resolve to ColumnStars.
func ParseColumn(header string) (Column, bool) {
	key := strings.ToLower(strings.TrimSpace(header))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	for _, c := range AllColumns {
		if string(c) == key {
			return c, true
		}
	}
	return "", false
}

// ColumnSet records which expected columns were present in the input.
type ColumnSet map[Column]bool

// NewColumnSet builds a set from the given columns.
func NewColumnSet(cols ...Column) ColumnSet {
	s := make(ColumnSet, len(cols))
	for _, c := range cols {
		s[c] = true
	}
	return s
}

// Has reports whether the column was present.
func (s ColumnSet) Has(c Column) bool {
	return s[c]
}

// Missing returns the expected columns that are absent, in file order.
func (s ColumnSet) Missing() []Column {
	var missing []Column
	for _, c := range AllColumns {
		if !s[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Record is one repository row. Empty Name or Language means the cell
// was absent in the input.
type Record struct {
	Name     string `json:"repositories"`
	Language string `json:"language"`
	Stars    int    `json:"stars_count"`
	Forks    int    `json:"forks_count"`
	Issues   int    `json:"issues_count"`
}

// HasName reports whether the record carries a repository name.
func (r Record) HasName() bool {
	return r.Name != ""
}

// LanguageLabel returns the display label for the record's language.
func (r Record) LanguageLabel() string {
	return LanguageLabel(r.Language)
}

// UnknownLanguage is the display label used for records without a language.
const UnknownLanguage = "Unknown"

// LanguageLabel returns the display label for a language value.
func LanguageLabel(lang string) string {
	if lang == "" {
		return UnknownLanguage
	}
	return lang
}
