package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spiffcs/repodash/internal/constants"
	"github.com/spiffcs/repodash/internal/format"
	"github.com/spiffcs/repodash/internal/model"
	"github.com/spiffcs/repodash/internal/search"
)

// tableColumn describes one column of the record table.
type tableColumn struct {
	col     model.Column
	title   string
	width   int
	numeric bool
}

var tableColumns = []tableColumn{
	{model.ColumnName, "Repository", constants.ColWidthName, false},
	{model.ColumnLanguage, "Language", constants.ColWidthLanguage, false},
	{model.ColumnStars, "Stars", constants.ColWidthStars, true},
	{model.ColumnForks, "Forks", constants.ColWidthForks, true},
	{model.ColumnIssues, "Issues", constants.ColWidthIssues, true},
}

// visibleColumns returns the table columns present in cols.
func visibleColumns(cols model.ColumnSet) []tableColumn {
	var out []tableColumn
	for _, c := range tableColumns {
		if cols.Has(c.col) {
			out = append(out, c)
		}
	}
	return out
}

// renderTablePane renders the filtered rows with a scrolling cursor.
func renderTablePane(m DashboardModel, height int) []string {
	if m.snap.Metrics.Empty {
		return []string{emptyStyle.Render("No repositories match the current filters.")}
	}

	cols := visibleColumns(m.snap.View.Columns)
	lines := []string{
		renderTableHeader(cols, m.sortCol, m.sortDesc),
		renderSeparator(cols),
	}

	viewHeight := max(1, height-len(lines)-1)
	start, end := calculateScrollWindow(m.tableCursor, len(m.tableRows), viewHeight)
	for i := start; i < end; i++ {
		selected := m.focus == focusMain && i == m.tableCursor
		lines = append(lines, renderRow(m.tableRows[i], cols, m.langIndex, "", selected))
	}

	lines = append(lines, dimStyle.Render(fmt.Sprintf("  row %s of %s",
		format.Thousands(m.tableCursor+1), format.Thousands(len(m.tableRows)))))
	return lines
}

// renderSearchPane renders the search box and the matching rows.
func renderSearchPane(m DashboardModel, height int) []string {
	lines := []string{m.search.View(), ""}

	query := m.search.Value()
	switch {
	case query == "":
		lines = append(lines, dimStyle.Render(fmt.Sprintf("Showing all %s filtered repositories",
			format.Thousands(m.results.Len()))))
	case m.results.Len() == 1:
		lines = append(lines, statusStyle.Render("1 match"))
	default:
		lines = append(lines, statusStyle.Render(format.Thousands(m.results.Len())+" matches"))
	}

	if m.results.Len() == 0 {
		return append(lines, "", emptyStyle.Render("No repositories match the search."))
	}

	cols := visibleColumns(m.results.Columns)
	lines = append(lines, renderTableHeader(cols, "", false), renderSeparator(cols))

	viewHeight := max(1, height-len(lines))
	start, end := calculateScrollWindow(m.searchCursor, m.results.Len(), viewHeight)
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(m.results.Records[i], cols, m.langIndex, query, i == m.searchCursor))
	}
	return lines
}

// renderTableHeader renders the table header, marking the sort column.
func renderTableHeader(cols []tableColumn, sortCol model.Column, desc bool) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		title := c.title
		if c.col == sortCol {
			if desc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		cells[i] = format.Cell(title, c.width, c.numeric)
	}
	return headerStyle.Render("  " + strings.Join(cells, "  "))
}

// tableWidth returns the total width of the given columns.
func tableWidth(cols []tableColumn) int {
	w := 2
	for i, c := range cols {
		if i > 0 {
			w += 2
		}
		w += c.width
	}
	return w
}

// renderSeparator renders a horizontal rule under the header.
func renderSeparator(cols []tableColumn) string {
	return separatorStyle.Render(strings.Repeat("─", tableWidth(cols)))
}

// renderRow renders a single record. Name matches of query are highlighted.
func renderRow(r model.Record, cols []tableColumn, langIndex map[string]int, query string, selected bool) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		var text string
		var style lipgloss.Style
		switch c.col {
		case model.ColumnName:
			text = format.Cell(r.Name, c.width, false)
			if query != "" && !selected {
				cells[i] = highlightMatch(text, query)
				continue
			}
			style = lipgloss.NewStyle()
		case model.ColumnLanguage:
			text = format.Cell(r.LanguageLabel(), c.width, false)
			idx, ok := langIndex[r.Language]
			if !ok {
				idx = -1
			}
			style = languageStyle(idx)
		case model.ColumnStars:
			text = format.Cell(format.Thousands(r.Stars), c.width, true)
			style = starsStyle
		case model.ColumnForks:
			text = format.Cell(format.Thousands(r.Forks), c.width, true)
			style = forksStyle
		case model.ColumnIssues:
			text = format.Cell(format.Thousands(r.Issues), c.width, true)
			style = issuesStyle
		}
		cells[i] = applyStyle(style, text, selected)
	}

	line := strings.Join(cells, "  ")
	if selected {
		return cursorStyle.Render("> ") + selectedStyle.Render(line)
	}
	return "  " + line
}

// highlightMatch styles the first match of query in a padded cell.
func highlightMatch(cell, query string) string {
	start, end := search.Locate(cell, query)
	if start < 0 {
		return cell
	}
	return cell[:start] + matchStyle.Render(cell[start:end]) + cell[end:]
}
