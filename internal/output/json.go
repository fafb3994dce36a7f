package output

import (
	"encoding/json"
	"io"

	"github.com/spiffcs/repodash/internal/aggregate"
	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/model"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// JSONOutput is the document written by JSONFormatter.
type JSONOutput struct {
	DatasetRows  int                    `json:"datasetRows"`
	Selection    JSONSelection          `json:"selection"`
	Metrics      aggregate.Metrics      `json:"metrics"`
	Distribution aggregate.Distribution `json:"distribution"`
	Rows         []model.Record         `json:"rows"`
	Truncated    bool                   `json:"truncated"`
	Search       *JSONSearch            `json:"search,omitempty"`
}

// JSONSearch holds the results of a name search.
type JSONSearch struct {
	Query   string         `json:"query"`
	Matches int            `json:"matches"`
	Results []model.Record `json:"results"`
}

// JSONSelection describes the filters that produced the report.
type JSONSelection struct {
	Languages []string `json:"languages"`
	MinStars  int      `json:"minStars"`
	MaxStars  int      `json:"maxStars"`
}

// Format writes the report as a single JSON document.
func (f *JSONFormatter) Format(r *dashboard.Report, w io.Writer) error {
	snap := r.Snapshot
	out := JSONOutput{
		DatasetRows: snap.DatasetRows,
		Selection: JSONSelection{
			Languages: snap.Selection.Languages(),
			MinStars:  snap.Selection.MinStars,
			MaxStars:  snap.Selection.MaxStars,
		},
		Metrics:      snap.Metrics,
		Distribution: snap.Distribution,
		Rows:         r.TableRows(),
		Truncated:    r.Truncated(),
	}
	if out.Rows == nil {
		out.Rows = []model.Record{}
	}
	if r.HasQuery() {
		out.Search = newJSONSearch(r)
	}

	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}
