// Package constants provides a centralized location for layout values and
// defaults used throughout repodash.
package constants

// Dataset defaults
const (
	// DefaultDatasetPath is the file loaded when no path is configured.
	DefaultDatasetPath = "github_dataset.csv"

	// DatasetEnvVar overrides the configured dataset path.
	DatasetEnvVar = "REPODASH_DATASET"
)

// Display defaults
const (
	// DefaultTableRows is how many filtered rows the text report prints.
	DefaultTableRows = 20

	// DefaultTopLanguages caps the language distribution in the text report.
	DefaultTopLanguages = 10

	// DefaultStarStep is how far one key press moves a star bound in the TUI.
	DefaultStarStep = 10
)

// Table column widths
const (
	ColWidthName     = 32
	ColWidthLanguage = 14
	ColWidthStars    = 9
	ColWidthForks    = 8
	ColWidthIssues   = 8
	ColWidthBinLabel = 9
	ColWidthCount    = 7
)

// TUI layout
const (
	// HeaderLines is the number of lines used for the tab bar.
	HeaderLines = 2

	// FooterLines is the number of lines used for the help footer.
	FooterLines = 2

	// SidebarWidth is the width of the filter sidebar including its border.
	SidebarWidth = 28

	// MaxBarWidth caps chart bars so they stay readable on wide terminals.
	MaxBarWidth = 50

	// MinScatterWidth and MinScatterHeight are the smallest plot area drawn.
	MinScatterWidth  = 20
	MinScatterHeight = 6
)
