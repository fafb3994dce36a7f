package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/output"
)

// NewCmdSearch creates the search command.
func NewCmdSearch() *cobra.Command {
	opts := NewOptions()

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search repository names in the filtered dataset",
		Long: `Prints the repositories whose name contains the query, ignoring case.
The language and star filters are applied first, so only repositories in
the current selection are searched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Search = strings.Join(args, " ")
			return runSearch(cmd, opts)
		},
	}

	addFilterFlags(cmd, opts)
	return cmd
}

func runSearch(cmd *cobra.Command, opts *Options) error {
	log.Initialize(opts.Verbosity, os.Stderr)

	s, err := loadSession(opts)
	if err != nil {
		return err
	}

	sel, err := buildSelection(s.ds, s.cfg, opts)
	if err != nil {
		return err
	}

	name := opts.Format
	if name == "" {
		name = s.cfg.DefaultFormat
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return err
	}

	report := dashboard.NewReport(s.ds, sel, dashboard.WithQuery(opts.Search))
	log.Info("search complete", "query", opts.Search, "matches", report.Results.Len())
	return output.FormatSearch(format, report, cmd.OutOrStdout())
}
