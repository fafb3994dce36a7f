package dashboard

import (
	"github.com/spiffcs/repodash/internal/filter"
	"github.com/spiffcs/repodash/internal/model"
)

// Report is a Snapshot prepared for the non-interactive renderers.
type Report struct {
	Snapshot Snapshot

	// Query is the search query, empty when none was given.
	Query   string
	Results model.View

	// Rows caps how many filtered rows are rendered. Zero means all.
	Rows int
}

// ReportOption configures a Report.
type ReportOption func(*Report)

// WithQuery runs a search over the snapshot and attaches the results.
func WithQuery(query string) ReportOption {
	return func(r *Report) {
		r.Query = query
	}
}

// WithRows limits the number of rows rendered.
func WithRows(n int) ReportOption {
	return func(r *Report) {
		r.Rows = n
	}
}

// NewReport computes a snapshot for sel and applies opts.
func NewReport(ds *model.Dataset, sel filter.Selection, opts ...ReportOption) *Report {
	r := &Report{Snapshot: Compute(ds, sel)}
	for _, opt := range opts {
		opt(r)
	}
	if r.Query != "" {
		r.Results = r.Snapshot.Search(r.Query)
	}
	return r
}

// HasQuery reports whether a search was requested.
func (r *Report) HasQuery() bool {
	return r.Query != ""
}

// TableRows returns the filtered rows to render, honouring the row cap.
func (r *Report) TableRows() []model.Record {
	if r.Rows <= 0 {
		return r.Snapshot.View.Records
	}
	return r.Snapshot.Head(r.Rows)
}

// Truncated reports whether TableRows dropped rows.
func (r *Report) Truncated() bool {
	return r.Rows > 0 && r.Snapshot.View.Len() > r.Rows
}
