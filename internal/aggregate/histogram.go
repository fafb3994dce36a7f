package aggregate

import "github.com/spiffcs/repodash/internal/model"

// Bin is a half-open star interval [Low, High).
type Bin struct {
	Label string `json:"label"`
	Low   int    `json:"low"`
	High  int    `json:"high"`
}

// Contains reports whether stars falls in [Low, High).
func (b Bin) Contains(stars int) bool {
	return b.Low <= stars && stars < b.High
}

// StarBins is the fixed partition used for the star histogram. There is
// no catch-all bin: stars >= 1000 fall outside every bin.
var StarBins = []Bin{
	{"0-5", 0, 5},
	{"6-10", 5, 10},
	{"11-20", 10, 20},
	{"21-50", 20, 50},
	{"51-100", 50, 100},
	{"101-200", 100, 200},
	{"201-500", 200, 500},
	{"501-1000", 500, 1000},
}

// BinCount is a bin with the number of records that fell in it.
type BinCount struct {
	Bin
	Count int `json:"count"`
}

// Histogram is the star distribution of a view. Bins is nil when the
// stars column is absent. Records above the last bin are counted in
// Overflow and negative counts in Underflow; neither is part of Bins.
type Histogram struct {
	Bins      []BinCount `json:"bins"`
	Overflow  int        `json:"overflow"`
	Underflow int        `json:"underflow"`
}

// Available reports whether the histogram could be computed.
func (h Histogram) Available() bool {
	return h.Bins != nil
}

// Binned returns the number of records inside the bins.
func (h Histogram) Binned() int {
	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	return total
}

// Max returns the largest bin count.
func (h Histogram) Max() int {
	m := 0
	for _, b := range h.Bins {
		m = max(m, b.Count)
	}
	return m
}

// Stars bins the view's star counts.
func Stars(view model.View) Histogram {
	if !view.HasColumn(model.ColumnStars) {
		return Histogram{}
	}

	h := Histogram{Bins: make([]BinCount, len(StarBins))}
	for i, b := range StarBins {
		h.Bins[i] = BinCount{Bin: b}
	}

	last := StarBins[len(StarBins)-1]
	for _, r := range view.Records {
		switch {
		case r.Stars < StarBins[0].Low:
			h.Underflow++
		case r.Stars >= last.High:
			h.Overflow++
		default:
			h.Bins[binIndex(r.Stars)].Count++
		}
	}
	return h
}

// binIndex returns the bin for an in-range star count.
func binIndex(stars int) int {
	for i, b := range StarBins {
		if b.Contains(stars) {
			return i
		}
	}
	return len(StarBins) - 1
}
