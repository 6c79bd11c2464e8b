package formatter

import (
	"fmt"
	"strings"

	"github.com/lapscan/lapscan/internal/analyzer"
	"github.com/yildizm/go-termfmt"
)

const chartWidth = 30

// terminalFormatter renders a summary as plain text for terminal display
// using go-termfmt.
type terminalFormatter struct {
	opts     *termfmt.TerminalOptions
	currency string
}

// NewTerminal creates a terminal formatter with optional color support.
func NewTerminal(color bool, currency string) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	if currency == "" {
		currency = "₹"
	}
	return &terminalFormatter{opts: opts, currency: currency}
}

func (f *terminalFormatter) Format(summary *analyzer.Summary) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)

	if summary.TotalListings == 0 {
		b.WriteString("No laptops match the current filters.\n")
		b.WriteString("Relax a constraint and try again.\n")
		return []byte(b.String()), nil
	}

	f.writeOverview(&b, summary)
	f.writeBestDeals(&b, summary)
	f.writeGroupChart(&b, "Average Price by Brand", summary.Brands)
	f.writeGroupChart(&b, "Average Price by Platform", summary.Platforms)
	f.writeSpecCurves(&b, summary)
	f.writeBestValue(&b, summary)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Laptop Market Summary"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeOverview writes headline statistics with tree-style formatting.
func (f *terminalFormatter) writeOverview(b *strings.Builder, summary *analyzer.Summary) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Overview\n")

	items := []termfmt.TreeItem{
		{Label: "Total Laptops", Value: formatNumber(summary.TotalListings)},
		{Label: "Average Price", Value: formatPrice(f.currency, summary.Price.Mean)},
		{Label: "Price Range", Value: fmt.Sprintf("%s - %s",
			formatPrice(f.currency, summary.Price.Min),
			formatPrice(f.currency, summary.Price.Max))},
		{Label: "Brands", Value: formatNumber(summary.BrandCount)},
		{Label: "Platforms", Value: formatNumber(summary.PlatformCount), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeBestDeals highlights the two cheapest platforms by mean price.
func (f *terminalFormatter) writeBestDeals(b *strings.Builder, summary *analyzer.Summary) {
	if len(summary.CheapestPlatforms) == 0 {
		return
	}

	symbol := termfmt.GetEmoji("recommendations", f.opts)
	b.WriteString(symbol + " Best Deals\n")

	limit := 2
	if len(summary.CheapestPlatforms) < limit {
		limit = len(summary.CheapestPlatforms)
	}
	for i := 0; i < limit; i++ {
		p := summary.CheapestPlatforms[i]
		prefix := "├─"
		if i == limit-1 {
			prefix = "└─"
		}
		fmt.Fprintf(b, "%s %d. %s (avg %s, %d laptops)\n",
			prefix, i+1, p.Name, formatPrice(f.currency, p.MeanPrice), p.Count)
	}
	b.WriteString("\n")
}

// writeGroupChart renders a horizontal bar chart of mean prices per group.
func (f *terminalFormatter) writeGroupChart(b *strings.Builder, title string, groups []analyzer.GroupStat) {
	if len(groups) == 0 {
		return
	}

	b.WriteString(title + "\n")

	maxPrice := 0.0
	for _, g := range groups {
		if g.MeanPrice > maxPrice {
			maxPrice = g.MeanPrice
		}
	}

	for _, g := range groups {
		fmt.Fprintf(b, "  %-18s %s %s (%d)\n",
			truncate(g.Name, 18),
			bar(g.MeanPrice, maxPrice, chartWidth),
			formatPrice(f.currency, g.MeanPrice),
			g.Count)
	}
	b.WriteString("\n")
}

// writeSpecCurves renders mean price per RAM and storage size.
func (f *terminalFormatter) writeSpecCurves(b *strings.Builder, summary *analyzer.Summary) {
	f.writeCurve(b, "Average Price by RAM (GB)", summary.RAMCurve)
	f.writeCurve(b, "Average Price by Storage (GB)", summary.StorageCurve)
}

func (f *terminalFormatter) writeCurve(b *strings.Builder, title string, points []analyzer.CurvePoint) {
	if len(points) == 0 {
		return
	}

	b.WriteString(title + "\n")

	maxPrice := 0.0
	for _, p := range points {
		if p.MeanPrice > maxPrice {
			maxPrice = p.MeanPrice
		}
	}

	for _, p := range points {
		fmt.Fprintf(b, "  %6s %s %s\n",
			formatSize(p.Size),
			bar(p.MeanPrice, maxPrice, chartWidth),
			formatPrice(f.currency, p.MeanPrice))
	}
	b.WriteString("\n")
}

// writeBestValue lists the top value-for-money listings.
func (f *terminalFormatter) writeBestValue(b *strings.Builder, summary *analyzer.Summary) {
	if len(summary.BestValue) == 0 {
		return
	}

	symbol := termfmt.GetEmoji("insights", f.opts)
	b.WriteString(symbol + " Best Value (price per RAM GB)\n")

	for i, l := range summary.BestValue {
		prefix := "├─"
		if i == len(summary.BestValue)-1 {
			prefix = "└─"
		}
		fmt.Fprintf(b, "%s %s %sGB RAM at %s (%s/GB)\n",
			prefix, l.Brand, formatSize(l.RAMGB),
			formatPrice(f.currency, l.Price),
			formatPrice(f.currency, l.PricePerRAMGB))
	}
	b.WriteString("\n")
}
