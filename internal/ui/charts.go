package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lapscan/lapscan/internal/analyzer"
)

const defaultBarWidth = 28

// renderBar returns a horizontal bar scaled against maxValue.
func renderBar(value, maxValue float64, width int) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	n := int(value / maxValue * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

// renderGroupChart renders mean prices per group as a labelled bar chart.
func renderGroupChart(groups []analyzer.GroupStat, barColor lipgloss.AdaptiveColor, currency string) string {
	if len(groups) == 0 {
		return "No data for the current filters"
	}

	maxPrice := 0.0
	for _, g := range groups {
		if g.MeanPrice > maxPrice {
			maxPrice = g.MeanPrice
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(barColor)

	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		name := g.Name
		if len(name) > 16 {
			name = name[:13] + "..."
		}
		lines = append(lines, fmt.Sprintf("%-16s %s %s (%d)",
			name,
			barStyle.Render(renderBar(g.MeanPrice, maxPrice, defaultBarWidth)),
			formatMoney(currency, g.MeanPrice),
			g.Count))
	}
	return strings.Join(lines, "\n")
}

// renderShareChart renders each group's share of total listings as a bar chart.
func renderShareChart(groups []analyzer.GroupStat, barColor lipgloss.AdaptiveColor) string {
	if len(groups) == 0 {
		return "No data for the current filters"
	}

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	if total == 0 {
		return "No data for the current filters"
	}

	barStyle := lipgloss.NewStyle().Foreground(barColor)

	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		name := g.Name
		if len(name) > 16 {
			name = name[:13] + "..."
		}
		share := float64(g.Count) / float64(total) * 100
		lines = append(lines, fmt.Sprintf("%-16s %s %.1f%% (%d)",
			name,
			barStyle.Render(renderBar(share, 100, defaultBarWidth)),
			share,
			g.Count))
	}
	return strings.Join(lines, "\n")
}

// renderCurveChart renders mean price per spec size as a bar chart.
func renderCurveChart(points []analyzer.CurvePoint, barColor lipgloss.AdaptiveColor, currency, unit string) string {
	if len(points) == 0 {
		return "No data for the current filters"
	}

	maxPrice := 0.0
	for _, p := range points {
		if p.MeanPrice > maxPrice {
			maxPrice = p.MeanPrice
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(barColor)

	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%7s %s %s",
			formatSpecSize(p.Size)+unit,
			barStyle.Render(renderBar(p.MeanPrice, maxPrice, defaultBarWidth)),
			formatMoney(currency, p.MeanPrice)))
	}
	return strings.Join(lines, "\n")
}

// formatMoney formats a price with the currency symbol and thousands separators.
func formatMoney(currency string, v float64) string {
	s := fmt.Sprintf("%.0f", v)
	if len(s) > 3 {
		var b strings.Builder
		rem := len(s) % 3
		if rem > 0 {
			b.WriteString(s[:rem])
		}
		for i := rem; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteString(",")
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	return currency + s
}

// formatSpecSize formats a RAM/storage size dropping a trailing .0.
func formatSpecSize(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
