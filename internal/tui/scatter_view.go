package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/spiffcs/repodash/internal/aggregate"
	"github.com/spiffcs/repodash/internal/constants"
	"github.com/spiffcs/repodash/internal/format"
	"github.com/spiffcs/repodash/internal/model"
)

// yAxisWidth is the width of the y-axis labels plus the axis line.
const yAxisWidth = 7

// scatterCell is one character cell of the plot. When several points land
// in the same cell the one with the most issues is drawn.
type scatterCell struct {
	set    bool
	issues int
	lang   string
}

// plotGrid places points on a width x height grid with stars on the x
// axis and forks on the y axis. Row 0 is the top of the plot.
func plotGrid(points []aggregate.Point, width, height int, logScale bool) [][]scatterCell {
	grid := make([][]scatterCell, height)
	for i := range grid {
		grid[i] = make([]scatterCell, width)
	}

	maxStars, maxForks := axisMax(points)
	for _, p := range points {
		x := scaleToCell(p.Stars, maxStars, width, logScale)
		y := height - 1 - scaleToCell(p.Forks, maxForks, height, logScale)
		c := &grid[y][x]
		if !c.set || p.Issues > c.issues {
			*c = scatterCell{set: true, issues: p.Issues, lang: p.Language}
		}
	}
	return grid
}

// axisMax returns the largest stars and forks values, at least 1.
func axisMax(points []aggregate.Point) (int, int) {
	maxStars, maxForks := 1, 1
	for _, p := range points {
		maxStars = max(maxStars, p.Stars)
		maxForks = max(maxForks, p.Forks)
	}
	return maxStars, maxForks
}

// scaleToCell maps v in [0, maxV] to a cell index in [0, cells).
func scaleToCell(v, maxV, cells int, logScale bool) int {
	if v <= 0 || maxV <= 0 || cells <= 1 {
		return 0
	}
	var frac float64
	if logScale {
		frac = math.Log1p(float64(v)) / math.Log1p(float64(maxV))
	} else {
		frac = float64(v) / float64(maxV)
	}
	return min(int(math.Round(frac*float64(cells-1))), cells-1)
}

// renderScatterPane renders the stars x forks plot of the filtered view.
// Glyphs encode the issue count and colours the language.
func renderScatterPane(m DashboardModel, height int) []string {
	if !m.snap.PointsOK {
		return []string{emptyStyle.Render("Scatter needs stars_count, forks_count and issues_count columns.")}
	}
	if len(m.snap.Points) == 0 {
		return []string{emptyStyle.Render("No repositories match the current filters.")}
	}

	scale := "linear"
	if m.logScale {
		scale = "log"
	}
	lines := []string{headerStyle.Render("Forks by stars") + dimStyle.Render(" ("+scale+" scale)")}

	// title, x axis, x labels, legend
	plotHeight := max(constants.MinScatterHeight, height-5)
	plotWidth := max(constants.MinScatterWidth, m.mainWidth()-yAxisWidth-2)

	grid := plotGrid(m.snap.Points, plotWidth, plotHeight, m.logScale)
	maxStars, maxForks := axisMax(m.snap.Points)

	for y, row := range grid {
		label := ""
		switch y {
		case 0:
			label = format.Compact(maxForks)
		case len(grid) - 1:
			label = "0"
		}
		var b strings.Builder
		b.WriteString(format.PadLeft(label, yAxisWidth-2))
		b.WriteString(separatorStyle.Render(" │"))
		for _, c := range row {
			if !c.set {
				b.WriteByte(' ')
				continue
			}
			glyph := format.ClassifyIssues(c.issues, m.issueThresholds).Glyph()
			idx, ok := m.langIndex[c.lang]
			if !ok {
				idx = -1
			}
			b.WriteString(languageStyle(idx).Render(glyph))
		}
		lines = append(lines, b.String())
	}

	lines = append(lines,
		strings.Repeat(" ", yAxisWidth-1)+separatorStyle.Render("└"+strings.Repeat("─", plotWidth)),
		strings.Repeat(" ", yAxisWidth)+"0"+
			format.PadLeft(format.Compact(maxStars)+" stars", plotWidth-1),
		renderLegend(m),
	)
	return lines
}

// renderLegend lists the glyphs and the colours of the languages in view.
func renderLegend(m DashboardModel) string {
	t := m.issueThresholds
	parts := []string{
		dimStyle.Render("issues:"),
		format.IssueLoadNone.Glyph() + " ≤" + format.Thousands(t.None),
		format.IssueLoadLow.Glyph() + " ≤" + format.Thousands(t.Low),
		format.IssueLoadMedium.Glyph() + " ≤" + format.Thousands(t.Medium),
		format.IssueLoadHigh.Glyph() + " more",
		dimStyle.Render(" "),
	}

	langs := make([]string, 0, len(m.snap.Distribution.Languages))
	for _, lc := range m.snap.Distribution.Languages {
		langs = append(langs, lc.Language)
	}
	sort.SliceStable(langs, func(i, j int) bool {
		return m.langIndex[langs[i]] < m.langIndex[langs[j]]
	})

	width := format.DisplayWidth(strings.Join(parts, " "))
	for _, l := range langs {
		idx, ok := m.langIndex[l]
		if !ok {
			idx = -1
		}
		label := languageStyle(idx).Render("■ " + model.LanguageLabel(l))
		if width+format.DisplayWidth(label)+1 > m.mainWidth() {
			parts = append(parts, dimStyle.Render("…"))
			break
		}
		parts = append(parts, label)
		width += format.DisplayWidth(label) + 1
	}
	return strings.Join(parts, " ")
}
