package aggregate

import "github.com/spiffcs/repodash/internal/model"

// Distribution groups the per-view charts.
type Distribution struct {
	Languages []LanguageCount `json:"languages"`
	Stars     Histogram       `json:"stars"`
}

// Distribute computes the language distribution and star histogram.
func Distribute(view model.View) Distribution {
	return Distribution{
		Languages: Languages(view),
		Stars:     Stars(view),
	}
}

// Point is one record projected onto the stars/forks/issues axes.
type Point struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Stars    int    `json:"stars"`
	Forks    int    `json:"forks"`
	Issues   int    `json:"issues"`
}

// Points returns the scatter series. The bool is false when any of the
// three numeric columns is missing.
func Points(view model.View) ([]Point, bool) {
	for _, c := range []model.Column{model.ColumnStars, model.ColumnForks, model.ColumnIssues} {
		if !view.HasColumn(c) {
			return nil, false
		}
	}

	points := make([]Point, len(view.Records))
	for i, r := range view.Records {
		points[i] = Point{
			Name:     r.Name,
			Language: r.Language,
			Stars:    r.Stars,
			Forks:    r.Forks,
			Issues:   r.Issues,
		}
	}
	return points, true
}
