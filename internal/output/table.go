package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/spiffcs/repodash/internal/aggregate"
	"github.com/spiffcs/repodash/internal/constants"
	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/format"
	"github.com/spiffcs/repodash/internal/model"
	"github.com/spiffcs/repodash/internal/search"
)

// barWidth is the width of a full-scale bar in the text charts.
const barWidth = 30

// TableFormatter formats output as a terminal table
type TableFormatter struct {
	// TopLanguages caps the language distribution. Zero means
	// constants.DefaultTopLanguages.
	TopLanguages int
}

// Format writes the metrics, distributions and filtered rows.
func (f *TableFormatter) Format(r *dashboard.Report, w io.Writer) error {
	snap := r.Snapshot

	f.printMetrics(snap, w)

	if langs := snap.Distribution.Languages; langs != nil {
		fmt.Fprintln(w)
		f.printLanguages(langs, snap.Metrics.Total, w)
	}

	if h := snap.Distribution.Stars; h.Available() {
		fmt.Fprintln(w)
		printHistogram(h, w)
	}

	fmt.Fprintln(w)
	if snap.Metrics.Empty {
		fmt.Fprintln(w, "No repositories match the current filters.")
	} else {
		printRecords(r.TableRows(), snap.View.Columns, "", w)
		if r.Truncated() {
			fmt.Fprintf(w, "  ... and %s more\n", format.Thousands(snap.View.Len()-r.Rows))
		}
	}

	if r.HasQuery() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %q: %s\n",
			color.New(color.Bold).Sprint("Search"),
			r.Query,
			matchCount(r.Results.Len()))
		if r.Results.Len() > 0 {
			printRecords(r.Results.Records, r.Results.Columns, r.Query, w)
		}
	}

	return nil
}

func (f *TableFormatter) printMetrics(snap dashboard.Snapshot, w io.Writer) {
	m := snap.Metrics
	label := func(s string) string { return format.PadRight(s, 16) }

	fmt.Fprintf(w, "%s%s of %s\n", label("Repositories"),
		color.CyanString(format.Thousands(m.Total)),
		format.Thousands(snap.DatasetRows))
	if m.HasStars {
		fmt.Fprintf(w, "%s%s\n", label("Total stars"), color.YellowString(format.Thousands(m.TotalStars)))
	}
	if m.HasForks {
		fmt.Fprintf(w, "%s%s\n", label("Average forks"), color.GreenString(m.AvgForksString()))
	}
}

func (f *TableFormatter) printLanguages(langs []aggregate.LanguageCount, total int, w io.Writer) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Languages"))
	if len(langs) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}

	top := f.TopLanguages
	if top <= 0 {
		top = constants.DefaultTopLanguages
	}

	maxCount := langs[0].Count
	for i, lc := range langs {
		if i == top {
			rest := 0
			for _, other := range langs[i:] {
				rest += other.Count
			}
			fmt.Fprintf(w, "  %s %s\n",
				format.PadRight(fmt.Sprintf("+%d more", len(langs)-i), constants.ColWidthLanguage),
				format.PadLeft(format.Thousands(rest), constants.ColWidthCount))
			break
		}
		fmt.Fprintf(w, "  %s %s %s %s\n",
			format.Cell(lc.Label(), constants.ColWidthLanguage, false),
			format.PadLeft(format.Thousands(lc.Count), constants.ColWidthCount),
			format.PadLeft(format.Percent(aggregate.Share(lc.Count, total)), 6),
			color.CyanString(bar(lc.Count, maxCount)))
	}
}

func printHistogram(h aggregate.Histogram, w io.Writer) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Stars"))
	peak := h.Max()
	for _, b := range h.Bins {
		fmt.Fprintf(w, "  %s %s %s\n",
			format.PadRight(b.Label, constants.ColWidthBinLabel),
			format.PadLeft(format.Thousands(b.Count), constants.ColWidthCount),
			color.YellowString(bar(b.Count, peak)))
	}
	if h.Overflow > 0 {
		fmt.Fprintf(w, "  (%s with 1000+ stars not binned)\n", repoCount(h.Overflow))
	}
	if h.Underflow > 0 {
		fmt.Fprintf(w, "  (%s with negative stars not binned)\n", repoCount(h.Underflow))
	}
}

// printRecords writes a row table. Columns absent from the dataset are
// left out. Name matches of query are highlighted.
func printRecords(records []model.Record, cols model.ColumnSet, query string, w io.Writer) {
	type column struct {
		col     model.Column
		title   string
		width   int
		numeric bool
		value   func(model.Record) string
	}
	all := []column{
		{model.ColumnName, "Repository", constants.ColWidthName, false, func(r model.Record) string { return r.Name }},
		{model.ColumnLanguage, "Language", constants.ColWidthLanguage, false, func(r model.Record) string { return r.LanguageLabel() }},
		{model.ColumnStars, "Stars", constants.ColWidthStars, true, func(r model.Record) string { return format.Thousands(r.Stars) }},
		{model.ColumnForks, "Forks", constants.ColWidthForks, true, func(r model.Record) string { return format.Thousands(r.Forks) }},
		{model.ColumnIssues, "Issues", constants.ColWidthIssues, true, func(r model.Record) string { return format.Thousands(r.Issues) }},
	}

	var shown []column
	for _, c := range all {
		if cols.Has(c.col) {
			shown = append(shown, c)
		}
	}
	if len(shown) == 0 {
		return
	}

	header := make([]string, len(shown))
	ruleWidth := 0
	for i, c := range shown {
		header[i] = format.Cell(c.title, c.width, c.numeric)
		ruleWidth += c.width + 2
	}
	fmt.Fprintln(w, strings.Join(header, "  "))
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth-2))

	for _, r := range records {
		cells := make([]string, len(shown))
		for i, c := range shown {
			cell := format.Cell(c.value(r), c.width, c.numeric)
			if c.col == model.ColumnName && query != "" {
				cell = highlight(cell, query)
			}
			cells[i] = cell
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
}

// highlight colours the first match of query inside an already padded cell.
func highlight(cell, query string) string {
	start, end := search.Locate(cell, query)
	if start < 0 {
		return cell
	}
	return cell[:start] + color.New(color.Bold, color.FgMagenta).Sprint(cell[start:end]) + cell[end:]
}

// bar scales n against peak into a run of block characters.
func bar(n, peak int) string {
	if n <= 0 || peak <= 0 {
		return ""
	}
	width := n * barWidth / peak
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func matchCount(n int) string {
	if n == 1 {
		return "1 match"
	}
	return format.Thousands(n) + " matches"
}

func repoCount(n int) string {
	if n == 1 {
		return "1 repository"
	}
	return format.Thousands(n) + " repositories"
}
