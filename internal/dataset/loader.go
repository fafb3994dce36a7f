// Package dataset reads the repository table from a delimited file.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
)

// Option configures the loader.
type Option func(*options)

type options struct {
	delimiter rune
	path      string
}

// WithDelimiter sets the field delimiter. Zero keeps the default.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.delimiter = r
		}
	}
}

// DelimiterFor returns the default delimiter for a file path:
// tab for .tsv/.tab files, comma otherwise.
func DelimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	default:
		return ','
	}
}

// Load opens path and parses it into a Dataset.
func Load(path string, opts ...Option) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	opts = append([]Option{WithDelimiter(DelimiterFor(path))}, opts...)
	opts = append(opts, func(o *options) { o.path = path })

	ds, err := Parse(f, opts...)
	if err != nil {
		return nil, err
	}

	log.Info("dataset loaded", "path", path, "rows", ds.Len(), "missing", ds.Columns().Missing())
	return ds, nil
}

// Parse reads a delimited table from r. The first row is the header.
func Parse(r io.Reader, opts ...Option) (*model.Dataset, error) {
	o := options{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.delimiter
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Path: o.path, Line: 1, Err: errors.New("empty file")}
		}
		return nil, &LoadError{Path: o.path, Line: 1, Err: err}
	}

	index := make(map[model.Column]int)
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		col, ok := model.ParseColumn(h)
		if !ok {
			log.Trace("ignoring column", "header", h)
			continue
		}
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	if len(index) == 0 {
		return nil, &LoadError{Path: o.path, Line: 1, Err: ErrNoColumns}
	}

	columns := make(model.ColumnSet, len(index))
	for c := range index {
		columns[c] = true
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var line int
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, &LoadError{Path: o.path, Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)

		rec, err := parseRecord(row, index)
		if err != nil {
			return nil, &LoadError{Path: o.path, Line: line, Err: err}
		}
		records = append(records, rec)
	}

	log.Debug("parsed rows", "count", len(records), "columns", len(columns))
	return model.NewDataset(records, columns), nil
}

// parseRecord converts one row using the header index.
func parseRecord(row []string, index map[model.Column]int) (model.Record, error) {
	var rec model.Record
	cell := func(c model.Column) (string, bool) {
		i, ok := index[c]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	if v, ok := cell(model.ColumnName); ok {
		rec.Name = v
	}
	if v, ok := cell(model.ColumnLanguage); ok {
		rec.Language = v
	}

	ints := []struct {
		col model.Column
		dst *int
	}{
		{model.ColumnStars, &rec.Stars},
		{model.ColumnForks, &rec.Forks},
		{model.ColumnIssues, &rec.Issues},
	}
	for _, f := range ints {
		v, ok := cell(f.col)
		if !ok {
			continue
		}
		n, err := parseCount(v)
		if err != nil {
			return model.Record{}, fmt.Errorf("column %s: %w", f.col, err)
		}
		*f.dst = n
	}

	return rec, nil
}

// parseCount parses an integer cell. Blank cells are 0 and integral
// floats such as "12.0" are accepted.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid integer %q: out of range", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	// MinInt is an exact power of two in float64; MaxInt is not.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, fmt.Errorf("invalid integer %q: out of range", s)
	}
	return int(f), nil
}
