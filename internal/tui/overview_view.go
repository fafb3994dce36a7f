package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spiffcs/repodash/internal/aggregate"
	"github.com/spiffcs/repodash/internal/constants"
	"github.com/spiffcs/repodash/internal/format"
)

// barEntry represents a single bar of a horizontal bar chart.
type barEntry struct {
	Label string
	Count int
	Style lipgloss.Style
}

// Partial block characters for sub-character resolution (1/8 to 8/8).
var partialBlocks = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// renderOverviewPane renders the metric cards, language shares and the
// star histogram.
func renderOverviewPane(m DashboardModel, height int) []string {
	var lines []string
	lines = append(lines, strings.Split(renderMetricCards(m.snap.Metrics), "\n")...)

	if langs := m.snap.Distribution.Languages; langs != nil {
		lines = append(lines, "", headerStyle.Render("Languages"))
		lines = append(lines, renderLanguageShares(m, langs)...)
	}

	if h := m.snap.Distribution.Stars; h.Available() {
		lines = append(lines, "", headerStyle.Render("Stars"))
		lines = append(lines, renderHistogram(h, m.mainWidth()-constants.ColWidthBinLabel-16)...)
	}

	if m.snap.Metrics.Empty {
		lines = append(lines, "", emptyStyle.Render("No repositories match the current filters."))
	}

	return lines
}

// renderMetricCards renders the three headline metrics side by side.
// Metrics whose column is missing are left out.
func renderMetricCards(metrics aggregate.Metrics) string {
	card := func(label, value string) string {
		return metricCardStyle.Render(metricLabelStyle.Render(label) + "\n" + metricValueStyle.Render(value))
	}

	cards := []string{card("Repositories", format.Thousands(metrics.Total))}
	if metrics.HasStars {
		cards = append(cards, card("Total Stars", format.Thousands(metrics.TotalStars)))
	}
	if metrics.HasForks {
		cards = append(cards, card("Avg Forks", metrics.AvgForksString()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderLanguageShares renders one progress bar per language showing its
// share of the filtered view. Languages past the cap are folded into one
// line.
func renderLanguageShares(m DashboardModel, langs []aggregate.LanguageCount) []string {
	if len(langs) == 0 {
		return []string{dimStyle.Render("  ─")}
	}

	total := m.snap.Metrics.Total
	labelWidth := 0
	shown := langs[:min(len(langs), m.topLanguages)]
	for _, lc := range shown {
		labelWidth = max(labelWidth, format.DisplayWidth(lc.Label()))
	}
	labelWidth = min(labelWidth, constants.ColWidthLanguage)

	var lines []string
	for _, lc := range shown {
		idx, ok := m.langIndex[lc.Language]
		if !ok {
			idx = -1
		}
		share := aggregate.Share(lc.Count, total)
		lines = append(lines, fmt.Sprintf("  %s  %s  %s %s",
			languageStyle(idx).Render(format.Cell(lc.Label(), labelWidth, false)),
			m.shareBar.ViewAs(share),
			format.PadLeft(format.Percent(share), 6),
			dimStyle.Render("("+format.Thousands(lc.Count)+")")))
	}

	if rest := langs[len(shown):]; len(rest) > 0 {
		count := 0
		for _, lc := range rest {
			count += lc.Count
		}
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  +%d more languages (%s repositories)",
			len(rest), format.Thousands(count))))
	}
	return lines
}

// renderHistogram renders the star bins as bars, with a note for records
// outside every bin.
func renderHistogram(h aggregate.Histogram, barWidth int) []string {
	entries := make([]barEntry, len(h.Bins))
	for i, b := range h.Bins {
		entries[i] = barEntry{Label: b.Label, Count: b.Count, Style: histogramStyle}
	}

	lines := renderBars(entries, barWidth)
	if h.Overflow > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("    %s with 1000+ stars not binned", format.Thousands(h.Overflow))))
	}
	if h.Underflow > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("    %s with negative stars not binned", format.Thousands(h.Underflow))))
	}
	return lines
}

// renderBars renders a vertical list of bars (one entry per line).
// Each bar is scaled proportionally to the max count in the group,
// with all bars starting at the same column for easy comparison.
// Zero-count entries keep their line so bins stay aligned.
//
// Format per line:
//
//	{label padded}  {colored bar}  {count}
func renderBars(entries []barEntry, barWidth int) []string {
	if len(entries) == 0 {
		return []string{dimStyle.Render("  ─")}
	}

	maxCount := 0
	maxLabel := 0
	for _, e := range entries {
		maxCount = max(maxCount, e.Count)
		maxLabel = max(maxLabel, format.DisplayWidth(e.Label))
	}

	bw := min(max(barWidth, 4), constants.MaxBarWidth)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		bar := ""
		if maxCount > 0 && e.Count > 0 {
			frac := float64(e.Count) / float64(maxCount) * float64(bw)
			full := int(frac)
			bar = strings.Repeat("█", full)
			if rem := frac - float64(full); rem >= 0.125 {
				bar += partialBlocks[min(int(rem*8), 7)]
			}
			if bar == "" {
				bar = partialBlocks[0]
			}
		}

		lines = append(lines, fmt.Sprintf("    %s  %s  %s",
			format.PadRight(e.Label, maxLabel),
			format.PadRight(e.Style.Render(bar), bw),
			format.Thousands(e.Count)))
	}
	return lines
}
