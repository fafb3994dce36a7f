package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiffcs/repodash/internal/model"
)

func scenarioDataset() *model.Dataset {
	return model.NewDataset([]model.Record{
		{Name: "alpha", Language: "Go", Stars: 3, Forks: 1, Issues: 0},
		{Name: "beta", Language: "Go", Stars: 120, Forks: 40, Issues: 5},
		{Name: "gamma", Language: "Rust", Stars: 15, Forks: 2, Issues: 1},
	}, model.NewColumnSet(model.AllColumns...))
}

func names(v model.View) []string {
	out := make([]string, 0, v.Len())
	for _, r := range v.Records {
		out = append(out, r.Name)
	}
	return out
}

func TestDefaultSelection(t *testing.T) {
	ds := scenarioDataset()
	sel := Default(ds)

	assert.Equal(t, []string{"Go", "Rust"}, sel.Languages())
	assert.Equal(t, 3, sel.MinStars)
	assert.Equal(t, 120, sel.MaxStars)
	assert.Equal(t, 3, Apply(ds, sel).Len())
}

func TestApplyScenarios(t *testing.T) {
	ds := scenarioDataset()

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{
			name: "all languages, stars 0-1000",
			sel:  New([]string{"Go", "Rust"}, 0, 1000),
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "exclude Rust",
			sel:  New([]string{"Go"}, 0, 1000),
			want: []string{"alpha", "beta"},
		},
		{
			name: "stars 0-10",
			sel:  New([]string{"Go", "Rust"}, 0, 10),
			want: []string{"alpha"},
		},
		{
			name: "bounds are inclusive",
			sel:  New([]string{"Go", "Rust"}, 15, 120),
			want: []string{"beta", "gamma"},
		},
		{
			name: "no languages selected",
			sel:  New(nil, 0, 1000),
			want: []string{},
		},
		{
			name: "inverted bounds are swapped",
			sel:  New([]string{"Go", "Rust"}, 10, 0),
			want: []string{"alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Apply(ds, tt.sel)))
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	ds := scenarioDataset()
	sel := New([]string{"Go"}, 0, 100)

	first := Apply(ds, sel)
	second := Apply(ds, sel)
	assert.Equal(t, first, second)

	first.Records[0].Name = "mutated"
	assert.Equal(t, "alpha", Apply(ds, sel).Records[0].Name)
}

func TestApplyMonotonic(t *testing.T) {
	ds := model.NewDataset([]model.Record{
		{Name: "a", Language: "Go", Stars: 0},
		{Name: "b", Language: "Go", Stars: 7},
		{Name: "c", Language: "Rust", Stars: 50},
		{Name: "d", Language: "Python", Stars: 500},
		{Name: "e", Language: "", Stars: 999},
		{Name: "f", Language: "Rust", Stars: 2000},
	}, model.NewColumnSet(model.AllColumns...))

	chain := []Selection{
		Default(ds),
		New([]string{"Go", "Rust", "Python"}, 0, 2000),
		New([]string{"Go", "Rust"}, 0, 2000),
		New([]string{"Go", "Rust"}, 5, 100),
		New([]string{"Rust"}, 5, 100),
		New([]string{"Rust"}, 60, 100),
	}

	prev := Apply(ds, chain[0]).Len()
	for i := 1; i < len(chain); i++ {
		require.True(t, chain[i].Narrower(chain[i-1]), "step %d should narrow", i)
		got := Apply(ds, chain[i]).Len()
		assert.LessOrEqual(t, got, prev, "step %d", i)
		prev = got
	}
}

func TestApplyNullLanguageIsSelectable(t *testing.T) {
	ds := model.NewDataset([]model.Record{
		{Name: "a", Language: "Go", Stars: 1},
		{Name: "b", Language: "", Stars: 2},
	}, model.NewColumnSet(model.AllColumns...))

	sel := Default(ds)
	assert.True(t, sel.Has(""))
	assert.Equal(t, []string{"a", "b"}, names(Apply(ds, sel)))

	sel = sel.Toggle("")
	assert.Equal(t, []string{"a"}, names(Apply(ds, sel)))
}

func TestApplyMissingColumns(t *testing.T) {
	t.Run("no language column", func(t *testing.T) {
		ds := model.NewDataset([]model.Record{
			{Name: "a", Stars: 1},
			{Name: "b", Stars: 50},
		}, model.NewColumnSet(model.ColumnName, model.ColumnStars))

		// an empty language set must not filter anything out
		got := Apply(ds, New(nil, 0, 10))
		assert.Equal(t, []string{"a"}, names(got))
	})

	t.Run("no stars column", func(t *testing.T) {
		ds := model.NewDataset([]model.Record{
			{Name: "a", Language: "Go"},
			{Name: "b", Language: "Rust"},
		}, model.NewColumnSet(model.ColumnName, model.ColumnLanguage))

		sel := Default(ds)
		assert.Equal(t, model.DefaultMinStars, sel.MinStars)
		assert.Equal(t, model.DefaultMaxStars, sel.MaxStars)

		got := Apply(ds, sel.WithRange(500, 600))
		assert.Equal(t, []string{"a", "b"}, names(got))
	})
}

func TestApplyEmptyDataset(t *testing.T) {
	ds := model.NewDataset(nil, model.NewColumnSet(model.AllColumns...))
	v := Apply(ds, Default(ds))
	assert.Equal(t, 0, v.Len())
	assert.NotNil(t, v.Records)
}
