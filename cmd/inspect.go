package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spiffcs/repodash/internal/format"
	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
)

// datasetInfo is what inspect reports about a loaded dataset.
type datasetInfo struct {
	Path      string          `json:"path"`
	Rows      int             `json:"rows"`
	Columns   map[string]bool `json:"columns"`
	MinStars  int             `json:"minStars"`
	MaxStars  int             `json:"maxStars"`
	Languages []string        `json:"languages"`
}

// NewCmdInspect creates the inspect command.
func NewCmdInspect() *cobra.Command {
	opts := NewOptions()
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe the dataset file",
		Long: `Loads the dataset and prints its path, row count, which of the expected
columns are present, the star bounds used by the range filter, and the
distinct languages in the order they first appear.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.Initialize(opts.Verbosity, os.Stderr)
			s, err := loadSession(opts)
			if err != nil {
				return err
			}
			return writeDatasetInfo(cmd.OutOrStdout(), newDatasetInfo(s.path, s.ds), outputFormat)
		},
	}

	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "Dataset file (default: $REPODASH_DATASET, config, or github_dataset.csv)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	return cmd
}

func newDatasetInfo(path string, ds *model.Dataset) datasetInfo {
	info := datasetInfo{
		Path:      path,
		Rows:      ds.Len(),
		Columns:   make(map[string]bool, len(model.AllColumns)),
		Languages: make([]string, 0, len(ds.Languages())),
	}
	for _, c := range model.AllColumns {
		info.Columns[string(c)] = ds.HasColumn(c)
	}
	info.MinStars, info.MaxStars = ds.StarBounds()
	for _, l := range ds.Languages() {
		info.Languages = append(info.Languages, model.LanguageLabel(l))
	}
	return info
}

func writeDatasetInfo(w io.Writer, info datasetInfo, outputFormat string) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal dataset info to JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "text", "":
		fmt.Fprintf(w, "Dataset:    %s\n", info.Path)
		fmt.Fprintf(w, "Rows:       %s\n", format.Thousands(info.Rows))
		fmt.Fprintf(w, "Star range: %s to %s\n", format.Thousands(info.MinStars), format.Thousands(info.MaxStars))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Columns:")
		for _, c := range model.AllColumns {
			status := "missing"
			if info.Columns[string(c)] {
				status = "present"
			}
			fmt.Fprintf(w, "  %s %s\n", format.PadRight(string(c), 14), status)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Languages (%d):\n", len(info.Languages))
		for _, l := range info.Languages {
			fmt.Fprintf(w, "  %s\n", l)
		}
	default:
		return fmt.Errorf("invalid format: %s (must be text or json)", outputFormat)
	}
	return nil
}
