package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiffcs/repodash/internal/model"
)

const sampleCSV = `repositories,stars_count,forks_count,issues_count,pull_requests,contributors,language
alpha,3,1,0,0,1,Go
beta,120,40,5,2,7,Go
gamma,15,2,1,0,2,Rust
delta,0,0,0,0,1,
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "github_dataset.csv", sampleCSV)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Len())
	for _, c := range model.AllColumns {
		assert.True(t, ds.HasColumn(c), "column %s", c)
	}

	records := ds.All().Records
	assert.Equal(t, model.Record{Name: "beta", Language: "Go", Stars: 120, Forks: 40, Issues: 5}, records[1])
	assert.Equal(t, "", records[3].Language)
	assert.Equal(t, []string{"Go", "Rust", ""}, ds.Languages())

	lo, hi := ds.StarBounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 120, hi)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestLoadTSVByExtension(t *testing.T) {
	path := writeFile(t, "repos.tsv", "repositories\tlanguage\tstars_count\nalpha\tGo\t3\n")

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Go", ds.All().Records[0].Language)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantSub  string
	}{
		{
			name:     "empty input",
			input:    "",
			wantLine: 1,
			wantSub:  "empty file",
		},
		{
			name:     "no known columns",
			input:    "foo,bar\n1,2\n",
			wantLine: 1,
			wantSub:  ErrNoColumns.Error(),
		},
		{
			name:     "non integer stars",
			input:    "repositories,stars_count\nalpha,lots\n",
			wantLine: 2,
			wantSub:  "stars_count",
		},
		{
			name:     "fractional forks",
			input:    "repositories,forks_count\nalpha,1.5\n",
			wantLine: 2,
			wantSub:  "forks_count",
		},
		{
			name:     "stars beyond int range",
			input:    "repositories,stars_count\nalpha,1\nbeta,99999999999999999999\n",
			wantLine: 3,
			wantSub:  "out of range",
		},
		{
			name:     "exponent beyond int range",
			input:    "repositories,forks_count\nalpha,1e19\n",
			wantLine: 2,
			wantSub:  "out of range",
		},
		{
			name:     "huge exponent issues",
			input:    "repositories,issues_count\nalpha,1e300\n",
			wantLine: 2,
			wantSub:  "issues_count",
		},
		{
			name:     "ragged row",
			input:    "repositories,stars_count\nalpha,1\nbeta,2,3\n",
			wantLine: 3,
			wantSub:  "wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.wantLine, loadErr.Line)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestParseMissingColumnsDegrade(t *testing.T) {
	ds, err := Parse(strings.NewReader("Repositories,Forks Count\nalpha,4\nbeta,\n"))
	require.NoError(t, err)

	assert.True(t, ds.HasColumn(model.ColumnName))
	assert.True(t, ds.HasColumn(model.ColumnForks))
	assert.False(t, ds.HasColumn(model.ColumnLanguage))
	assert.False(t, ds.HasColumn(model.ColumnStars))
	assert.False(t, ds.HasColumn(model.ColumnIssues))

	records := ds.All().Records
	assert.Equal(t, 4, records[0].Forks)
	assert.Equal(t, 0, records[1].Forks)
}

func TestParseAcceptsIntegralFloatsAndBOM(t *testing.T) {
	ds, err := Parse(strings.NewReader("\ufeffrepositories,stars_count\nalpha,12.0\n"))
	require.NoError(t, err)
	require.True(t, ds.HasColumn(model.ColumnName))
	assert.Equal(t, 12, ds.All().Records[0].Stars)
}

func TestParseCustomDelimiter(t *testing.T) {
	ds, err := Parse(strings.NewReader("repositories;language\nalpha;Go\n"), WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, "alpha", ds.All().Records[0].Name)
}

func TestDelimiterFor(t *testing.T) {
	assert.Equal(t, ',', DelimiterFor("data.csv"))
	assert.Equal(t, '\t', DelimiterFor("data.TSV"))
	assert.Equal(t, ',', DelimiterFor("data"))
}
