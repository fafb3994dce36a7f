package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		header string
		want   Column
		ok     bool
	}{
		{"repositories", ColumnName, true},
		{" Language ", ColumnLanguage, true},
		{"Stars Count", ColumnStars, true},
		{"forks-count", ColumnForks, true},
		{"ISSUES_COUNT", ColumnIssues, true},
		{"pull_requests", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := ParseColumn(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDatasetDerivesLanguagesAndBounds(t *testing.T) {
	records := []Record{
		{Name: "a", Language: "Go", Stars: 40},
		{Name: "b", Language: "", Stars: 3},
		{Name: "c", Language: "Rust", Stars: 900},
		{Name: "d", Language: "Go", Stars: 12},
	}
	ds := NewDataset(records, NewColumnSet(AllColumns...))

	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, []string{"Go", "", "Rust"}, ds.Languages())

	lo, hi := ds.StarBounds()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 900, hi)
}

func TestNewDatasetMissingColumns(t *testing.T) {
	ds := NewDataset([]Record{{Name: "a", Stars: 5}}, NewColumnSet(ColumnName, ColumnForks))

	assert.False(t, ds.HasColumn(ColumnLanguage))
	assert.False(t, ds.HasColumn(ColumnStars))
	assert.True(t, ds.HasColumn(ColumnForks))
	assert.Nil(t, ds.Languages())

	lo, hi := ds.StarBounds()
	assert.Equal(t, DefaultMinStars, lo)
	assert.Equal(t, DefaultMaxStars, hi)

	assert.Equal(t, []Column{ColumnLanguage, ColumnStars, ColumnIssues}, ds.Columns().Missing())
}

func TestDatasetIsNotMutatedThroughViews(t *testing.T) {
	records := []Record{{Name: "a", Language: "Go", Stars: 1}}
	ds := NewDataset(records, NewColumnSet(AllColumns...))

	records[0].Name = "changed"
	v := ds.All()
	require.Equal(t, 1, v.Len())
	assert.Equal(t, "a", v.Records[0].Name)

	v.Records[0].Name = "mutated"
	assert.Equal(t, "a", ds.All().Records[0].Name)

	langs := ds.Languages()
	langs[0] = "Python"
	assert.Equal(t, []string{"Go"}, ds.Languages())
}

func TestViewHead(t *testing.T) {
	v := NewView([]Record{{Name: "a"}, {Name: "b"}, {Name: "c"}}, nil)

	assert.Len(t, v.Head(2), 2)
	assert.Len(t, v.Head(0), 3)
	assert.Len(t, v.Head(10), 3)
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, UnknownLanguage, Record{}.LanguageLabel())
	assert.Equal(t, "Go", LanguageLabel("Go"))
}
