package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lapscan/lapscan/internal/analyzer"
	"github.com/lapscan/lapscan/internal/dataset"
)

func sampleSummary() *analyzer.Summary {
	return &analyzer.Summary{
		TotalListings: 3,
		BrandCount:    2,
		PlatformCount: 2,
		Brands: []analyzer.GroupStat{
			{Name: "Acme", Count: 2, MeanPrice: 850, MinPrice: 800, MaxPrice: 900},
			{Name: "Zeta", Count: 1, MeanPrice: 1000, MinPrice: 1000, MaxPrice: 1000},
		},
		Platforms: []analyzer.GroupStat{
			{Name: "Amazon", Count: 2, MeanPrice: 900, MinPrice: 800, MaxPrice: 1000},
			{Name: "Flipkart", Count: 1, MeanPrice: 900, MinPrice: 900, MaxPrice: 900},
		},
		CheapestPlatforms: []analyzer.GroupStat{
			{Name: "Amazon", Count: 2, MeanPrice: 900},
			{Name: "Flipkart", Count: 1, MeanPrice: 900},
		},
		Price:  analyzer.FieldStats{Count: 3, Min: 800, Max: 1000, Mean: 900, StdDev: 81.65},
		Rating: analyzer.FieldStats{Count: 3, Min: 3.8, Max: 4.5, Mean: 4.1, StdDev: 0.29},
		RAMCurve: []analyzer.CurvePoint{
			{Size: 8, MeanPrice: 900, Count: 2},
			{Size: 16, MeanPrice: 900, Count: 1},
		},
		BestValue: []dataset.Listing{
			{Brand: "Acme", Price: 900, RAMGB: 16, PricePerRAMGB: 56.25},
		},
	}
}

func TestTerminalFormatter(t *testing.T) {
	f := NewTerminal(false, "₹")

	output, err := f.Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	text := string(output)
	wantParts := []string{
		"Laptop Market Summary",
		"Total Laptops",
		"Average Price by Brand",
		"Acme",
		"Best Value",
	}
	for _, part := range wantParts {
		if !strings.Contains(text, part) {
			t.Errorf("Expected output to contain %q", part)
		}
	}
}

func TestTerminalFormatterEmptySummary(t *testing.T) {
	f := NewTerminal(false, "₹")

	output, err := f.Format(&analyzer.Summary{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(string(output), "No laptops match the current filters") {
		t.Error("Expected empty-result placeholder text")
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSON()

	output, err := f.Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded struct {
		Summary struct {
			TotalListings int `json:"total_listings"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(output, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Summary.TotalListings != 3 {
		t.Errorf("Expected total_listings 3, got %d", decoded.Summary.TotalListings)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	f := NewMarkdown("₹")

	output, err := f.Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	text := string(output)
	if !strings.Contains(text, "# Laptop Market Report") {
		t.Error("Expected Markdown title")
	}
	if !strings.Contains(text, "| Metric | Value |") {
		t.Error("Expected summary table header")
	}
	if !strings.Contains(text, "## Brands") {
		t.Error("Expected brands section")
	}
	if !strings.Contains(text, "1. **Acme**: 16GB RAM at ₹900") {
		t.Error("Expected plain ASCII best-value line")
	}
}

func TestCSVFormatter(t *testing.T) {
	f := NewCSV()

	output, err := f.Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if lines[0] != "Dimension,Name,Count,Mean Price,Min Price,Max Price" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	// 2 brand rows + 2 platform rows after the header.
	if len(lines) != 5 {
		t.Errorf("Expected 5 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "brand,Acme,2,850.00") {
		t.Errorf("Unexpected first brand row: %q", lines[1])
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatNumber(1234567); got != "1,234,567" {
		t.Errorf("formatNumber: got %q", got)
	}
	if got := formatSize(8.0); got != "8" {
		t.Errorf("formatSize(8.0): got %q", got)
	}
	if got := formatSize(15.6); got != "15.6" {
		t.Errorf("formatSize(15.6): got %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "ab..." {
		t.Errorf("truncate: got %q", got)
	}
	if got := bar(50, 100, 10); got != strings.Repeat("█", 5) {
		t.Errorf("bar: got %q", got)
	}
}
