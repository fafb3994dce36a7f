package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/spiffcs/repodash/internal/dashboard"
)

// Format represents the output format
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted values of --output.
var Formats = []Format{FormatTable, FormatJSON, FormatMarkdown}

// Formatter renders a dashboard report.
type Formatter interface {
	Format(report *dashboard.Report, w io.Writer) error
}

// ParseFormat validates a user supplied format name. An empty name selects
// the table format.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatTable, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	if f == "md" {
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or markdown)", s)
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}
