package cmd

// Options holds the shared command-line options for the repodash CLI.
type Options struct {
	Data      string   // Dataset path; empty falls back to env, config, then the default
	Languages []string // Languages to select; empty selects every language
	MinStars  *int     // nil = dataset or configured minimum
	MaxStars  *int     // nil = dataset or configured maximum
	Search    string
	Rows      int // Table rows in text output; zero uses the configured value
	Format    string
	Verbosity int
	TUI       *bool // nil = auto-detect, true = force TUI, false = disable TUI

	// Profiling options
	CPUProfile string // Write CPU profile to file
	MemProfile string // Write memory profile to file
	Trace      string // Write execution trace to file
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithData sets the dataset path.
func WithData(path string) Option {
	return func(o *Options) {
		o.Data = path
	}
}

// WithLanguages sets the initial language selection.
func WithLanguages(languages ...string) Option {
	return func(o *Options) {
		o.Languages = languages
	}
}

// WithStarRange sets both star bounds.
func WithStarRange(minStars, maxStars int) Option {
	return func(o *Options) {
		o.MinStars = &minStars
		o.MaxStars = &maxStars
	}
}

// WithSearch sets the repository name query.
func WithSearch(query string) Option {
	return func(o *Options) {
		o.Search = query
	}
}

// WithRows sets how many table rows the text output prints.
func WithRows(rows int) Option {
	return func(o *Options) {
		o.Rows = rows
	}
}

// WithFormat sets the output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithTUI controls TUI mode (nil = auto-detect, true = force, false = disable).
func WithTUI(tui *bool) Option {
	return func(o *Options) {
		o.TUI = tui
	}
}

// WithCPUProfile sets the CPU profile output file.
func WithCPUProfile(path string) Option {
	return func(o *Options) {
		o.CPUProfile = path
	}
}

// WithMemProfile sets the memory profile output file.
func WithMemProfile(path string) Option {
	return func(o *Options) {
		o.MemProfile = path
	}
}

// WithTrace sets the execution trace output file.
func WithTrace(path string) Option {
	return func(o *Options) {
		o.Trace = path
	}
}
