package model

// Default star bounds used when the input has no stars_count column.
const (
	DefaultMinStars = 0
	DefaultMaxStars = 100
)

// Dataset is the full table loaded at startup. It is never mutated after
// construction; accessors hand out copies.
type Dataset struct {
	records   []Record
	columns   ColumnSet
	languages []string
	minStars  int
	maxStars  int
}

// NewDataset builds a Dataset and derives the load-time facts (distinct
// languages and star bounds) from the records.
func NewDataset(records []Record, columns ColumnSet) *Dataset {
	rs := make([]Record, len(records))
	copy(rs, records)

	cols := make(ColumnSet, len(columns))
	for c, ok := range columns {
		cols[c] = ok
	}

	ds := &Dataset{
		records:  rs,
		columns:  cols,
		minStars: DefaultMinStars,
		maxStars: DefaultMaxStars,
	}

	if cols.Has(ColumnLanguage) {
		seen := make(map[string]bool)
		for _, r := range rs {
			if !seen[r.Language] {
				seen[r.Language] = true
				ds.languages = append(ds.languages, r.Language)
			}
		}
	}

	if cols.Has(ColumnStars) && len(rs) > 0 {
		ds.minStars, ds.maxStars = rs[0].Stars, rs[0].Stars
		for _, r := range rs[1:] {
			ds.minStars = min(ds.minStars, r.Stars)
			ds.maxStars = max(ds.maxStars, r.Stars)
		}
	}

	return ds
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// HasColumn reports whether the input file had the given column.
func (d *Dataset) HasColumn(c Column) bool {
	return d.columns.Has(c)
}

// Columns returns a copy of the column set.
func (d *Dataset) Columns() ColumnSet {
	cols := make(ColumnSet, len(d.columns))
	for c, ok := range d.columns {
		cols[c] = ok
	}
	return cols
}

// Languages returns the distinct language values in first-encountered
// order. The empty string stands for records without a language.
// Nil when the language column is absent.
func (d *Dataset) Languages() []string {
	if d.languages == nil {
		return nil
	}
	out := make([]string, len(d.languages))
	copy(out, d.languages)
	return out
}

// StarBounds returns the min and max stars_count over the whole dataset,
// or the 0/100 defaults when the column is absent.
func (d *Dataset) StarBounds() (int, int) {
	return d.minStars, d.maxStars
}

// All returns every record as a fresh View.
func (d *Dataset) All() View {
	return NewView(d.records, d.columns)
}

// Each calls fn for every record in order.
func (d *Dataset) Each(fn func(Record)) {
	for _, r := range d.records {
		fn(r)
	}
}

// View is a derived, freshly allocated sequence of records together with
// the columns of the dataset it came from.
type View struct {
	Records []Record  `json:"records"`
	Columns ColumnSet `json:"-"`
}

// NewView copies records into a new View.
func NewView(records []Record, columns ColumnSet) View {
	rs := make([]Record, len(records))
	copy(rs, records)
	return View{Records: rs, Columns: columns}
}

// Len returns the number of records in the view.
func (v View) Len() int {
	return len(v.Records)
}

// HasColumn reports whether the underlying dataset had the column.
func (v View) HasColumn(c Column) bool {
	return v.Columns.Has(c)
}

// Head returns the first n records (all of them when n <= 0 or n exceeds
// the view length).
func (v View) Head(n int) []Record {
	if n <= 0 || n >= len(v.Records) {
		return v.Records
	}
	return v.Records[:n]
}
