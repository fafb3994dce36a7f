package cmd

import (
	"fmt"
	"strings"

	"github.com/spiffcs/repodash/internal/output"
	"github.com/spiffcs/repodash/internal/tui"
)

// tuiFlag implements pflag.Value for the tri-state --tui flag.
type tuiFlag struct {
	opts *Options
}

func newTUIFlag(opts *Options) *tuiFlag {
	return &tuiFlag{opts: opts}
}

func (f *tuiFlag) String() string {
	switch {
	case f.opts.TUI == nil:
		return "auto"
	case *f.opts.TUI:
		return "true"
	default:
		return "false"
	}
}

func (f *tuiFlag) Set(s string) error {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		v := true
		f.opts.TUI = &v
	case "false", "0", "no", "off":
		v := false
		f.opts.TUI = &v
	case "auto", "":
		f.opts.TUI = nil
	default:
		return fmt.Errorf("invalid value %q: use true, false, or auto", s)
	}
	return nil
}

func (f *tuiFlag) Type() string {
	return "bool"
}

func (f *tuiFlag) IsBoolFlag() bool {
	return true
}

// shouldUseTUI decides between the interactive dashboard and a printed
// report. format is the resolved output format name.
func shouldUseTUI(opts *Options, format string) bool {
	// json and markdown are always printed, even with --tui
	if f, err := output.ParseFormat(format); err != nil || f != output.FormatTable {
		return false
	}
	// Verbose logging goes to stderr, which the dashboard would cover
	if opts.Verbosity > 0 {
		return false
	}
	if opts.TUI != nil {
		return *opts.TUI
	}
	return tui.ShouldUseTUI()
}
