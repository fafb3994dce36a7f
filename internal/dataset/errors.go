package dataset

import (
	"errors"
	"fmt"
)

// ErrNoColumns is returned when the header contains none of the expected
// columns.
var ErrNoColumns = errors.New("no expected columns in header")

// LoadError reports why a dataset could not be loaded. Line is the 1-based
// line of the input that failed, or 0 when the failure is not tied to a
// line (missing file, read error).
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
