package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/spiffcs/repodash/internal/aggregate"
	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/format"
	"github.com/spiffcs/repodash/internal/model"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct{}

// Format writes the report as a Markdown document.
func (f *MarkdownFormatter) Format(r *dashboard.Report, w io.Writer) error {
	snap := r.Snapshot
	m := snap.Metrics

	fmt.Fprintln(w, "# Repository Dashboard")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "*%s*\n\n", describeSelection(snap))

	fmt.Fprintln(w, "## Key Metrics")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- **Repositories:** %s\n", format.Thousands(m.Total))
	if m.HasStars {
		fmt.Fprintf(w, "- **Total Stars:** %s\n", format.Thousands(m.TotalStars))
	}
	if m.HasForks {
		fmt.Fprintf(w, "- **Average Forks:** %s\n", m.AvgForksString())
	}

	if langs := snap.Distribution.Languages; len(langs) > 0 {
		fmt.Fprintln(w, "\n## Languages")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Language | Repositories | Share |")
		fmt.Fprintln(w, "|----------|-------------:|------:|")
		for _, lc := range langs {
			fmt.Fprintf(w, "| %s | %d | %s |\n",
				escapeCell(lc.Label()), lc.Count, format.Percent(aggregate.Share(lc.Count, m.Total)))
		}
	}

	if h := snap.Distribution.Stars; h.Available() {
		fmt.Fprintln(w, "\n## Stars")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Stars | Repositories |")
		fmt.Fprintln(w, "|-------|-------------:|")
		for _, b := range h.Bins {
			fmt.Fprintf(w, "| %s | %d |\n", b.Label, b.Count)
		}
		if h.Overflow > 0 {
			fmt.Fprintf(w, "\nNot binned (1000+ stars): %s.\n", repoCount(h.Overflow))
		}
	}

	fmt.Fprintln(w, "\n## Repositories")
	fmt.Fprintln(w)
	if m.Empty {
		fmt.Fprintln(w, "No repositories match the current filters.")
	} else {
		writeMarkdownTable(r.TableRows(), snap.View.Columns, w)
		if r.Truncated() {
			fmt.Fprintf(w, "\n*Showing %d of %s.*\n", r.Rows, format.Thousands(m.Total))
		}
	}

	if r.HasQuery() {
		fmt.Fprintf(w, "\n## Search: `%s`\n\n", r.Query)
		if r.Results.Len() == 0 {
			fmt.Fprintln(w, "No matches.")
		} else {
			writeMarkdownTable(r.Results.Records, r.Results.Columns, w)
		}
	}

	return nil
}

func describeSelection(snap dashboard.Snapshot) string {
	sel := snap.Selection
	labels := make([]string, 0, sel.Count())
	for _, l := range sel.Languages() {
		labels = append(labels, model.LanguageLabel(l))
	}
	langs := "none"
	if len(labels) > 0 {
		langs = strings.Join(labels, ", ")
	}
	return fmt.Sprintf("Languages: %s. Stars: %d to %d.", langs, sel.MinStars, sel.MaxStars)
}

func writeMarkdownTable(records []model.Record, cols model.ColumnSet, w io.Writer) {
	var titles, aligns []string
	add := func(c model.Column, title, align string) {
		if cols.Has(c) {
			titles = append(titles, title)
			aligns = append(aligns, align)
		}
	}
	add(model.ColumnName, "Repository", "---")
	add(model.ColumnLanguage, "Language", "---")
	add(model.ColumnStars, "Stars", "---:")
	add(model.ColumnForks, "Forks", "---:")
	add(model.ColumnIssues, "Issues", "---:")
	if len(titles) == 0 {
		return
	}

	fmt.Fprintf(w, "| %s |\n", strings.Join(titles, " | "))
	fmt.Fprintf(w, "|%s|\n", strings.Join(aligns, "|"))
	for _, r := range records {
		var cells []string
		if cols.Has(model.ColumnName) {
			cells = append(cells, escapeCell(r.Name))
		}
		if cols.Has(model.ColumnLanguage) {
			cells = append(cells, escapeCell(r.LanguageLabel()))
		}
		if cols.Has(model.ColumnStars) {
			cells = append(cells, fmt.Sprint(r.Stars))
		}
		if cols.Has(model.ColumnForks) {
			cells = append(cells, fmt.Sprint(r.Forks))
		}
		if cols.Has(model.ColumnIssues) {
			cells = append(cells, fmt.Sprint(r.Issues))
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
