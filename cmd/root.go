package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := NewOptions()

	rootCmd := &cobra.Command{
		Use:   "repodash",
		Short: "Interactive dashboard for repository metadata",
		Long: `A terminal dashboard over a CSV of repository metadata. Filter by
language and star range to see key metrics, the language distribution,
a star histogram, a stars/forks scatter and a searchable table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add show flags to root command so `repodash` and `repodash show` work identically
	addShowFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdShow(opts))
	rootCmd.AddCommand(NewCmdSearch())
	rootCmd.AddCommand(NewCmdInspect())
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
