package aggregate

import (
	"sort"

	"github.com/spiffcs/repodash/internal/model"
)

// LanguageCount is one slice of the language distribution.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// Label returns the display label, "Unknown" for records without a
// language.
func (l LanguageCount) Label() string {
	return model.LanguageLabel(l.Language)
}

// Languages counts records per language, ordered by descending count with
// ties kept in first-encountered order. Records without a language are
// counted under "" so the counts always add up to the view length.
// Returns nil when the language column is absent.
func Languages(view model.View) []LanguageCount {
	if !view.HasColumn(model.ColumnLanguage) {
		return nil
	}

	index := make(map[string]int)
	counts := make([]LanguageCount, 0)
	for _, r := range view.Records {
		i, ok := index[r.Language]
		if !ok {
			i = len(counts)
			index[r.Language] = i
			counts = append(counts, LanguageCount{Language: r.Language})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Share returns count as a fraction of total, 0 when total is 0.
func Share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total)
}
