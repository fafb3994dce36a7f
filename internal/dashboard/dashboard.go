// Package dashboard runs the per-interaction recomputation: filter the
// dataset with the current selection, then aggregate the result.
package dashboard

import (
	"github.com/spiffcs/repodash/internal/aggregate"
	"github.com/spiffcs/repodash/internal/filter"
	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
	"github.com/spiffcs/repodash/internal/search"
)

// Snapshot is everything the presentation layer renders for one
// selection.
type Snapshot struct {
	Selection    filter.Selection       `json:"-"`
	View         model.View             `json:"-"`
	Metrics      aggregate.Metrics      `json:"metrics"`
	Distribution aggregate.Distribution `json:"distribution"`
	Points       []aggregate.Point      `json:"-"`
	PointsOK     bool                   `json:"-"`
	DatasetRows  int                    `json:"datasetRows"`
}

// Compute filters ds with sel and aggregates the filtered view. It is pure
// with respect to ds.
func Compute(ds *model.Dataset, sel filter.Selection) Snapshot {
	view := filter.Apply(ds, sel)
	points, ok := aggregate.Points(view)

	snap := Snapshot{
		Selection:    sel,
		View:         view,
		Metrics:      aggregate.Summarize(view),
		Distribution: aggregate.Distribute(view),
		Points:       points,
		PointsOK:     ok,
		DatasetRows:  ds.Len(),
	}

	log.Debug("snapshot computed",
		"rows", snap.Metrics.Total,
		"dataset", snap.DatasetRows,
		"languages", len(snap.Distribution.Languages))
	return snap
}

// Search narrows the snapshot's filtered view by name.
func (s Snapshot) Search(query string) model.View {
	return search.Search(s.View, query)
}

// Head returns at most n rows of the filtered view.
func (s Snapshot) Head(n int) []model.Record {
	return s.View.Head(n)
}
