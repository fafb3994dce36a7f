package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/filter"
	"github.com/spiffcs/repodash/internal/model"
)

func testDataset() *model.Dataset {
	return model.NewDataset([]model.Record{
		{Name: "alpha", Language: "Go", Stars: 3, Forks: 1, Issues: 0},
		{Name: "beta", Language: "Go", Stars: 120, Forks: 40, Issues: 5},
		{Name: "gamma", Language: "Rust", Stars: 15, Forks: 2, Issues: 1},
		{Name: "delta", Language: "", Stars: 2500, Forks: 300, Issues: 40},
	}, model.NewColumnSet(model.AllColumns...))
}

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func render(t *testing.T, f Formatter, r *dashboard.Report) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Format(r, &buf))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &MarkdownFormatter{}, NewFormatter(FormatMarkdown))
	assert.IsType(t, &TableFormatter{}, NewFormatter("bogus"), "unknown format falls back to table")
}

func TestTableFormatter(t *testing.T) {
	disableColor(t)
	ds := testDataset()
	r := dashboard.NewReport(ds, filter.Default(ds), dashboard.WithRows(2), dashboard.WithQuery("TA"))

	out := render(t, &TableFormatter{}, r)

	for _, want := range []string{
		"Repositories    4 of 4",
		"Total stars     2,638",
		"Average forks   85.75",
		"Languages",
		"Unknown",
		"0-5",
		"501-1000",
		"(1 repository with 1000+ stars not binned)",
		"alpha",
		"beta",
		"... and 2 more",
		`Search "TA": 2 matches`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "gamma  ", "table output should stop after 2 rows")
}

func TestTableFormatterEmptyView(t *testing.T) {
	disableColor(t)
	ds := testDataset()
	r := dashboard.NewReport(ds, filter.New(nil, 0, 10))

	out := render(t, &TableFormatter{}, r)

	assert.Contains(t, out, "Repositories    0 of 4")
	assert.Contains(t, out, "Average forks   0.00")
	assert.Contains(t, out, "No repositories match the current filters.")
}

func TestTableFormatterMissingColumns(t *testing.T) {
	disableColor(t)
	ds := model.NewDataset([]model.Record{
		{Name: "alpha", Language: "Go"},
	}, model.NewColumnSet(model.ColumnName, model.ColumnLanguage))

	out := render(t, &TableFormatter{}, dashboard.NewReport(ds, filter.Default(ds)))

	for _, absent := range []string{"Total stars", "Average forks", "Stars\n", "Forks"} {
		assert.NotContains(t, out, absent)
	}
	assert.Contains(t, out, "alpha")
}

func TestTableFormatterTopLanguages(t *testing.T) {
	disableColor(t)
	ds := testDataset()

	out := render(t, &TableFormatter{TopLanguages: 1}, dashboard.NewReport(ds, filter.Default(ds)))

	assert.Contains(t, out, "+2 more")
}

func TestJSONFormatter(t *testing.T) {
	ds := testDataset()
	r := dashboard.NewReport(ds, filter.New([]string{"Go", "Rust"}, 0, 1000), dashboard.WithQuery("a"))

	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(r, &buf))

	var got JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got), buf.String())

	assert.Equal(t, 3, got.Metrics.Total)
	assert.Equal(t, 138, got.Metrics.TotalStars)
	assert.Equal(t, 14.33, got.Metrics.AvgForks)
	assert.Equal(t, 4, got.DatasetRows)
	assert.Len(t, got.Rows, 3)
	require.NotNil(t, got.Search)
	assert.Equal(t, 3, got.Search.Matches)
	assert.Len(t, got.Distribution.Stars.Bins, 8)
}

func TestJSONFormatterEmptyArrays(t *testing.T) {
	ds := testDataset()
	r := dashboard.NewReport(ds, filter.New(nil, 0, 0), dashboard.WithQuery("zzz"))

	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(r, &buf))

	out := buf.String()
	for _, want := range []string{`"rows":[]`, `"results":[]`, `"empty":true`} {
		assert.Contains(t, out, want)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	ds := testDataset()
	r := dashboard.NewReport(ds, filter.Default(ds), dashboard.WithQuery("zzz"))

	out := render(t, &MarkdownFormatter{}, r)

	for _, want := range []string{
		"# Repository Dashboard",
		"- **Repositories:** 4",
		"- **Average Forks:** 85.75",
		"| Go | 2 | 50.0% |",
		"| Unknown | 1 | 25.0% |",
		"| 0-5 | 1 |",
		"Not binned (1000+ stars): 1 repository.",
		"| alpha | Go | 3 | 1 | 0 |",
		"## Search: `zzz`",
		"No matches.",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFormatSearch(t *testing.T) {
	disableColor(t)
	ds := testDataset()
	report := dashboard.NewReport(ds, filter.Default(ds), dashboard.WithQuery("TA"))

	tests := []struct {
		format Format
		want   []string
	}{
		{FormatTable, []string{`Search "TA": 2 matches of 4 repositories`, "beta", "delta"}},
		{FormatMarkdown, []string{"## Search: `TA`", "| beta | Go |", "| delta | Unknown |"}},
		{FormatJSON, []string{`"query": "TA"`, `"matches": 2`}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, FormatSearch(tt.format, report, &buf))

			out := buf.String()
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			assert.NotContains(t, out, "alpha")
			assert.NotContains(t, out, "Key Metrics")
		})
	}
}

func TestFormatSearchNoMatches(t *testing.T) {
	disableColor(t)
	ds := testDataset()
	report := dashboard.NewReport(ds, filter.Default(ds), dashboard.WithQuery("zzz"))

	var buf bytes.Buffer
	require.NoError(t, FormatSearch(FormatMarkdown, report, &buf))
	assert.Contains(t, buf.String(), "No matches.")

	buf.Reset()
	require.NoError(t, FormatSearch(FormatJSON, report, &buf))

	var doc JSONSearch
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 0, doc.Matches)
	assert.NotNil(t, doc.Results, "empty result list should encode as []")
}
