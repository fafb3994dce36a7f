// Package aggregate computes the summary metrics and grouped
// distributions shown for a filtered view.
package aggregate

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
)

// Metrics are the three headline numbers of the dashboard.
//
// An empty view has Total 0, TotalStars 0 and AvgForks 0 with Empty set;
// the average is reported as "0.00" rather than left undefined.
type Metrics struct {
	Total      int     `json:"total"`
	TotalStars int     `json:"totalStars"`
	AvgForks   float64 `json:"avgForks"`
	Empty      bool    `json:"empty"`

	// HasStars and HasForks are false when the column is missing and the
	// corresponding metric should not be shown.
	HasStars bool `json:"-"`
	HasForks bool `json:"-"`
}

// AvgForksString formats the average to two decimal places.
func (m Metrics) AvgForksString() string {
	return fmt.Sprintf("%.2f", m.AvgForks)
}

// Summarize computes Metrics over a view.
func Summarize(view model.View) Metrics {
	m := Metrics{
		Total:    view.Len(),
		Empty:    view.Len() == 0,
		HasStars: view.HasColumn(model.ColumnStars),
		HasForks: view.HasColumn(model.ColumnForks),
	}
	if m.Empty {
		return m
	}

	stars := make([]int, len(view.Records))
	forks := make([]int, len(view.Records))
	for i, r := range view.Records {
		stars[i] = r.Stars
		forks[i] = r.Forks
	}

	if m.HasStars {
		sum, err := stats.Sum(stats.LoadRawData(stars))
		if err != nil {
			log.Debug("sum stars", "error", err)
		}
		m.TotalStars = int(sum)
	}

	if m.HasForks {
		mean, err := stats.Mean(stats.LoadRawData(forks))
		if err != nil {
			log.Debug("mean forks", "error", err)
			mean = 0
		}
		rounded, err := stats.Round(mean, 2)
		if err != nil {
			rounded = mean
		}
		m.AvgForks = rounded
	}

	return m
}
