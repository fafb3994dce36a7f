package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/model"
)

// FormatSearch writes only the search results of a report. It backs the
// search command, which skips the metrics and charts.
func FormatSearch(f Format, r *dashboard.Report, w io.Writer) error {
	switch f {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(newJSONSearch(r))
	case FormatMarkdown:
		fmt.Fprintf(w, "## Search: `%s`\n\n", r.Query)
		if r.Results.Len() == 0 {
			fmt.Fprintln(w, "No matches.")
			return nil
		}
		writeMarkdownTable(r.Results.Records, r.Results.Columns, w)
		return nil
	default:
		fmt.Fprintf(w, "%s %q: %s of %s\n",
			color.New(color.Bold).Sprint("Search"),
			r.Query,
			matchCount(r.Results.Len()),
			repoCount(r.Snapshot.View.Len()))
		if r.Results.Len() > 0 {
			fmt.Fprintln(w)
			printRecords(r.Results.Records, r.Results.Columns, r.Query, w)
		}
		return nil
	}
}

func newJSONSearch(r *dashboard.Report) *JSONSearch {
	results := r.Results.Records
	if results == nil {
		results = []model.Record{}
	}
	return &JSONSearch{
		Query:   r.Query,
		Matches: len(results),
		Results: results,
	}
}
