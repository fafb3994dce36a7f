package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spiffcs/repodash/internal/constants"
	"github.com/spiffcs/repodash/internal/format"
	"github.com/spiffcs/repodash/internal/model"
)

// renderDashboard lays out the tab bar, the sidebar next to the active
// pane, and the help footer.
func renderDashboard(m DashboardModel) string {
	height := m.bodyHeight()

	var body []string
	switch m.activePane {
	case paneTable:
		body = renderTablePane(m, height)
	case paneScatter:
		body = renderScatterPane(m, height)
	case paneSearch:
		body = renderSearchPane(m, height)
	default:
		body = renderOverviewPane(m, height)
	}
	if len(body) > height {
		body = body[:height]
	}

	main := lipgloss.NewStyle().
		Width(m.mainWidth()).
		PaddingLeft(1).
		Render(strings.Join(body, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		renderTabBar(m),
		lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(m, height), main),
		renderFooter(m),
	)
}

// renderTabBar renders the pane tabs with the filtered row count.
func renderTabBar(m DashboardModel) string {
	tabs := make([]string, 0, paneCount)
	for p := pane(0); p < paneCount; p++ {
		label := fmt.Sprintf("[ %d: %s ]", p+1, paneNames[p])
		if p == m.activePane {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}

	counts := dimStyle.Render(fmt.Sprintf("%s of %s repositories",
		format.Thousands(m.snap.Metrics.Total),
		format.Thousands(m.snap.DatasetRows)))

	return titleStyle.Render("repodash") + "  " + strings.Join(tabs, "  ") + "  " + counts + "\n"
}

// renderSidebar renders the language multiselect and the star range.
func renderSidebar(m DashboardModel, height int) string {
	width := constants.SidebarWidth - 2
	var lines []string

	lines = append(lines, headerStyle.Render(fmt.Sprintf("Languages (%d/%d)", m.sel.Count(), len(m.languages))))
	if !m.ds.HasColumn(model.ColumnLanguage) {
		lines = append(lines, emptyStyle.Render("no language column"))
	}

	// Star section and key hints take 6 lines below the list.
	listHeight := max(1, height-8)
	start, end := calculateScrollWindow(m.langCursor, len(m.languages), listHeight)
	for i := start; i < end; i++ {
		lang := m.languages[i]
		selected := m.focus == focusSidebar && i == m.langCursor

		check := uncheckedStyle.Render("[ ]")
		if m.sel.Has(lang) {
			check = checkedStyle.Render("[x]")
		}
		cursor := "  "
		if selected {
			cursor = cursorStyle.Render("> ")
		}
		label := format.Truncate(model.LanguageLabel(lang), width-6)
		if selected {
			label = selectedStyle.Render(label)
		} else {
			label = languageStyle(i).Render(label)
		}
		lines = append(lines, cursor+check+" "+label)
	}

	lo, hi := m.ds.StarBounds()
	lines = append(lines,
		"",
		headerStyle.Render("Stars"),
		fmt.Sprintf("%s - %s", format.Thousands(m.sel.MinStars), format.Thousands(m.sel.MaxStars)),
		dimStyle.Render(fmt.Sprintf("range %s - %s", format.Compact(lo), format.Compact(hi))),
		helpStyle.Render("[ ] min  { } max"),
	)
	if !m.ds.HasColumn(model.ColumnStars) {
		lines = append(lines, emptyStyle.Render("no stars column"))
	}

	style := sidebarStyle
	if m.focus == focusSidebar {
		style = sidebarFocusedStyle
	}
	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderFooter renders the status message or the key help.
func renderFooter(m DashboardModel) string {
	if m.statusMsg != "" {
		return "\n" + statusStyle.Render(m.statusMsg)
	}

	var help string
	switch m.activePane {
	case paneSearch:
		help = "type to search  ↑/↓ move  tab next pane  esc back  ctrl+c quit"
	case paneTable:
		help = "j/k move  s sort  S reverse  h/l focus  space toggle  a/n all/none  r reset  tab pane  q quit"
	case paneScatter:
		help = "L log scale  h/l focus  space toggle  a/n all/none  [ ] { } stars  r reset  tab pane  q quit"
	default:
		help = "h/l focus  j/k move  space toggle  a/n all/none  [ ] { } stars  r reset  / search  tab pane  q quit"
	}
	return "\n" + helpStyle.Render(help)
}

// calculateScrollWindow returns the [start, end) slice of a list of total
// entries that keeps cursor visible in viewHeight lines.
func calculateScrollWindow(cursor, total, viewHeight int) (start, end int) {
	if total <= viewHeight {
		return 0, total
	}

	start = max(0, cursor-viewHeight/2)
	end = start + viewHeight
	if end > total {
		end = total
		start = max(0, end-viewHeight)
	}
	return start, end
}
