package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/lapscan/lapscan/internal/analyzer"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	currency string
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown(currency string) Formatter {
	if currency == "" {
		currency = "₹"
	}
	return &markdownFormatter{currency: currency}
}

func (f *markdownFormatter) Format(summary *analyzer.Summary) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Laptop Market Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	if summary.TotalListings == 0 {
		b.WriteString("No laptops match the current filters.\n")
		return []byte(b.String()), nil
	}

	f.writeSummaryTable(&b, summary)
	f.writeGroupTable(&b, "Brands", summary.Brands)
	f.writeGroupTable(&b, "Platforms", summary.Platforms)
	f.writeDistributionTable(&b, summary)
	f.writeBestValue(&b, summary)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, summary *analyzer.Summary) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Total Laptops | %s |\n", formatNumber(summary.TotalListings))
	fmt.Fprintf(b, "| Average Price | %s |\n", formatPrice(f.currency, summary.Price.Mean))
	fmt.Fprintf(b, "| Price Range | %s - %s |\n",
		formatPrice(f.currency, summary.Price.Min),
		formatPrice(f.currency, summary.Price.Max))
	fmt.Fprintf(b, "| Brands | %d |\n", summary.BrandCount)
	fmt.Fprintf(b, "| Platforms | %d |\n\n", summary.PlatformCount)
}

func (f *markdownFormatter) writeGroupTable(b *strings.Builder, title string, groups []analyzer.GroupStat) {
	if len(groups) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", title)
	b.WriteString("| Name | Count | Mean Price | Min | Max |\n")
	b.WriteString("|------|-------|-----------|-----|-----|\n")
	for _, g := range groups {
		fmt.Fprintf(b, "| %s | %d | %s | %s | %s |\n",
			g.Name, g.Count,
			formatPrice(f.currency, g.MeanPrice),
			formatPrice(f.currency, g.MinPrice),
			formatPrice(f.currency, g.MaxPrice))
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeDistributionTable(b *strings.Builder, summary *analyzer.Summary) {
	b.WriteString("## Distributions\n\n")
	b.WriteString("| Field | Count | Min | Max | Mean | StdDev |\n")
	b.WriteString("|-------|-------|-----|-----|------|--------|\n")

	rows := []struct {
		name  string
		stats analyzer.FieldStats
	}{
		{"Price", summary.Price},
		{"Rating", summary.Rating},
		{"RAM (GB)", summary.RAM},
		{"Storage (GB)", summary.Storage},
		{"CPU (GHz)", summary.CPU},
		{"Screen (in)", summary.Screen},
	}
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %d | %.2f | %.2f | %.2f | %.2f |\n",
			r.name, r.stats.Count, r.stats.Min, r.stats.Max, r.stats.Mean, r.stats.StdDev)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeBestValue(b *strings.Builder, summary *analyzer.Summary) {
	if len(summary.BestValue) == 0 {
		return
	}

	b.WriteString("## Best Value\n\n")
	for i, l := range summary.BestValue {
		fmt.Fprintf(b, "%d. **%s**: %sGB RAM at %s (%s per GB)\n",
			i+1, l.Brand, formatSize(l.RAMGB),
			formatPrice(f.currency, l.Price),
			formatPrice(f.currency, l.PricePerRAMGB))
	}
	b.WriteString("\n")
}
