package filter

import (
	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
)

// Apply returns the records of ds that satisfy both the language and the
// star predicate. A predicate whose column is absent from the dataset
// passes every record. The result is always freshly allocated and keeps
// dataset order.
func Apply(ds *model.Dataset, sel Selection) model.View {
	byLanguage := ds.HasColumn(model.ColumnLanguage)
	byStars := ds.HasColumn(model.ColumnStars)

	records := make([]model.Record, 0, ds.Len())
	ds.Each(func(r model.Record) {
		if byLanguage && !sel.Has(r.Language) {
			return
		}
		if byStars && !sel.InRange(r.Stars) {
			return
		}
		records = append(records, r)
	})

	log.Debug("filter applied",
		"languages", sel.Count(),
		"minStars", sel.MinStars,
		"maxStars", sel.MaxStars,
		"matched", len(records),
		"total", ds.Len())

	return model.View{Records: records, Columns: ds.Columns()}
}
