package tui

import "github.com/charmbracelet/lipgloss"

// Dashboard palette - balanced, readable on dark terminals
var (
	// Neutral UI
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CBD5E1"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#475569"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#334155")).
			Foreground(lipgloss.Color("#F1F5F9")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F1F5F9"))

	// Tab bar
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6B7280"))

	// Sidebar
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("#475569")).
			PaddingRight(1)

	sidebarFocusedStyle = sidebarStyle.
				BorderForeground(lipgloss.Color("#60A5FA"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	uncheckedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// Metrics
	metricLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9CA3AF"))

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#F1F5F9"))

	metricCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(0, 2)

	// Charts
	histogramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	// Table cells
	starsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))

	forksStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	issuesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E879F9")).
			Bold(true)
)

// languagePalette colours languages in the scatter plot and legend. Colours
// are assigned by the language's position in the dataset and wrap around.
var languagePalette = []lipgloss.Color{
	"#60A5FA",
	"#F59E0B",
	"#22C55E",
	"#EF4444",
	"#A78BFA",
	"#2DD4BF",
	"#F472B6",
	"#FBBF24",
	"#94A3B8",
	"#FB923C",
}

// languageStyle returns the style for the language at index i.
func languageStyle(i int) lipgloss.Style {
	if i < 0 {
		return dimStyle
	}
	return lipgloss.NewStyle().Foreground(languagePalette[i%len(languagePalette)])
}

// applyStyle renders text with s unless the row is selected, in which case
// the selection style takes over.
func applyStyle(s lipgloss.Style, text string, selected bool) string {
	if selected {
		return text
	}
	return s.Render(text)
}
