package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spiffcs/repodash/config"
	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/dataset"
	"github.com/spiffcs/repodash/internal/filter"
	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
	"github.com/spiffcs/repodash/internal/output"
	"github.com/spiffcs/repodash/internal/tui"
)

// session bundles the loaded configuration and dataset for one command run.
type session struct {
	cfg      *config.Config
	settings config.Settings
	path     string
	ds       *model.Dataset
}

// NewCmdShow creates the show command.
func NewCmdShow(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the repository dashboard (same as root repodash)",
		Long: `Loads the repository dataset, applies the language and star filters,
and shows the dashboard. In an interactive terminal the dashboard is a
full screen UI; otherwise a text report is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, opts)
		},
	}

	addShowFlags(cmd, opts)
	return cmd
}

// addFilterFlags adds the dataset and selection flags shared by every
// command that reads the dataset.
func addFilterFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "Dataset file (default: $REPODASH_DATASET, config, or github_dataset.csv)")
	cmd.Flags().StringSliceVarP(&opts.Languages, "language", "l", nil, "Select only these languages (repeatable, \"Unknown\" for none)")
	cmd.Flags().Var(newOptionalIntFlag(&opts.MinStars), "min-stars", "Lower star bound (default: dataset minimum)")
	cmd.Flags().Var(newOptionalIntFlag(&opts.MaxStars), "max-stars", "Upper star bound (default: dataset maximum)")
	cmd.Flags().IntVarP(&opts.Rows, "rows", "n", 0, "Table rows to print (default: display.table_rows)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
}

// addShowFlags adds the show-specific flags to a command.
func addShowFlags(cmd *cobra.Command, opts *Options) {
	addFilterFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Search repository names (case-insensitive)")

	// TUI flag with tri-state: nil = auto, true = force, false = disable
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Enable/disable the interactive dashboard (default: auto-detect)")
	cmd.Flags().Lookup("tui").NoOptDefVal = "true"

	// Profiling flags
	cmd.Flags().StringVar(&opts.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	cmd.Flags().StringVar(&opts.MemProfile, "memprofile", "", "Write memory profile to file")
	cmd.Flags().StringVar(&opts.Trace, "trace", "", "Write execution trace to file")
}

func runShow(cmd *cobra.Command, opts *Options) error {
	log.Initialize(opts.Verbosity, os.Stderr)

	profiler := NewProfiler(opts.CPUProfile, opts.MemProfile, opts.Trace)
	if profiler.Enabled() {
		if err := profiler.Start(); err != nil {
			return err
		}
		defer profiler.Stop()
	}

	s, err := loadSession(opts)
	if err != nil {
		return err
	}

	sel, err := buildSelection(s.ds, s.cfg, opts)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = s.cfg.DefaultFormat
	}
	if shouldUseTUI(opts, format) {
		return tui.RunDashboard(s.ds, sel,
			tui.WithDefaults(sel),
			tui.WithQuery(opts.Search),
			tui.WithStarStep(s.settings.StarStep),
			tui.WithTopLanguages(s.settings.TopLanguages),
			tui.WithIssueThresholds(s.settings.IssueThresholds),
		)
	}

	return renderReport(cmd.OutOrStdout(), s, sel, format, opts)
}

// loadSession loads the merged config and the dataset it points at.
func loadSession(opts *Options) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	settings, err := cfg.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	path := cfg.ResolveDatasetPath(opts.Data)
	var loadOpts []dataset.Option
	if settings.Delimiter != 0 {
		loadOpts = append(loadOpts, dataset.WithDelimiter(settings.Delimiter))
	}

	log.Info("loading dataset", "path", path)
	ds, err := dataset.Load(path, loadOpts...)
	if err != nil {
		return nil, err
	}
	lo, hi := ds.StarBounds()
	log.Debug("dataset loaded",
		"rows", ds.Len(),
		"languages", len(ds.Languages()),
		"minStars", lo,
		"maxStars", hi)

	return &session{cfg: cfg, settings: settings, path: path, ds: ds}, nil
}

// buildSelection starts from the dataset default and applies config
// filters, then command-line flags. Flags win over config.
func buildSelection(ds *model.Dataset, cfg *config.Config, opts *Options) (filter.Selection, error) {
	sel := filter.Default(ds)
	minStars, maxStars := sel.MinStars, sel.MaxStars
	languages := []string(nil)

	if f := cfg.Filters; f != nil {
		if len(f.Languages) > 0 {
			languages = f.Languages
		}
		if f.MinStars != nil {
			minStars = *f.MinStars
		}
		if f.MaxStars != nil {
			maxStars = *f.MaxStars
		}
	}

	if len(opts.Languages) > 0 {
		languages = opts.Languages
	}
	if opts.MinStars != nil {
		minStars = *opts.MinStars
	}
	if opts.MaxStars != nil {
		maxStars = *opts.MaxStars
	}

	if languages != nil {
		resolved, err := resolveLanguages(ds, languages)
		if err != nil {
			return sel, err
		}
		sel = sel.WithLanguages(resolved)
	}
	if minStars > maxStars {
		log.Warn("star bounds inverted, swapping", "min", minStars, "max", maxStars)
	}
	sel = sel.WithRange(minStars, maxStars)

	log.Debug("selection built",
		"languages", sel.Count(),
		"minStars", sel.MinStars,
		"maxStars", sel.MaxStars)
	return sel, nil
}

// resolveLanguages maps user supplied names onto the dataset's spelling.
// Matching is case-insensitive and "Unknown" selects records without a
// language. A name shared by several languages, such as a literal
// "Unknown" next to records without a language, selects all of them.
// Names the dataset does not contain are kept and logged.
func resolveLanguages(ds *model.Dataset, names []string) ([]string, error) {
	known := make(map[string][]string, len(ds.Languages()))
	for _, l := range ds.Languages() {
		key := strings.ToLower(model.LanguageLabel(l))
		known[key] = append(known[key], l)
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if langs, ok := known[strings.ToLower(n)]; ok {
			if len(langs) > 1 {
				log.Warn("languages share a name, selecting all of them", "name", n, "count", len(langs))
			}
			out = append(out, langs...)
			continue
		}
		if !ds.HasColumn(model.ColumnLanguage) {
			return nil, fmt.Errorf("cannot filter by language %q: dataset has no %s column", n, model.ColumnLanguage)
		}
		log.Warn("language not in dataset", "language", n)
		out = append(out, n)
	}
	return out, nil
}

// renderReport prints the non-interactive report in the requested format.
func renderReport(w io.Writer, s *session, sel filter.Selection, name string, opts *Options) error {
	format, err := output.ParseFormat(name)
	if err != nil {
		return err
	}

	rows := opts.Rows
	if rows <= 0 {
		rows = s.settings.TableRows
	}

	report := dashboard.NewReport(s.ds, sel,
		dashboard.WithQuery(opts.Search),
		dashboard.WithRows(rows),
	)

	formatter := output.NewFormatter(format)
	if tf, ok := formatter.(*output.TableFormatter); ok {
		tf.TopLanguages = s.settings.TopLanguages
	}
	return formatter.Format(report, w)
}
