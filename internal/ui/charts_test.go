package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lapscan/lapscan/internal/analyzer"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   float64
		width int
		cells int
	}{
		{"full", 100, 100, 10, 10},
		{"half", 50, 100, 10, 5},
		{"tiny value still visible", 1, 1000, 10, 1},
		{"zero value", 0, 100, 10, 0},
		{"zero max", 50, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderBar(tt.value, tt.max, tt.width)
			if count := strings.Count(got, "█"); count != tt.cells {
				t.Errorf("Expected %d cells, got %d", tt.cells, count)
			}
		})
	}
}

func TestRenderGroupChart(t *testing.T) {
	groups := []analyzer.GroupStat{
		{Name: "Acme", Count: 2, MeanPrice: 850},
		{Name: "Zeta", Count: 1, MeanPrice: 1000},
	}

	color := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	chart := renderGroupChart(groups, color, "₹")

	if !strings.Contains(chart, "Acme") {
		t.Error("Expected chart to name Acme")
	}
	if !strings.Contains(chart, "₹850") {
		t.Error("Expected chart to show the mean price")
	}
	if !strings.Contains(chart, "(2)") {
		t.Error("Expected chart to show the group count")
	}
}

func TestRenderGroupChartEmpty(t *testing.T) {
	color := lipgloss.AdaptiveColor{}
	if got := renderGroupChart(nil, color, "₹"); !strings.Contains(got, "No data") {
		t.Errorf("Expected placeholder for empty groups, got %q", got)
	}
}

func TestRenderShareChart(t *testing.T) {
	groups := []analyzer.GroupStat{
		{Name: "Amazon", Count: 3, MeanPrice: 850},
		{Name: "Flipkart", Count: 1, MeanPrice: 1000},
	}

	color := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	chart := renderShareChart(groups, color)

	if !strings.Contains(chart, "75.0%") {
		t.Error("Expected Amazon share of 75.0%")
	}
	if !strings.Contains(chart, "25.0%") {
		t.Error("Expected Flipkart share of 25.0%")
	}
	if !strings.Contains(chart, "(3)") {
		t.Error("Expected chart to show the group count")
	}
}

func TestRenderShareChartEmpty(t *testing.T) {
	color := lipgloss.AdaptiveColor{}
	if got := renderShareChart(nil, color); !strings.Contains(got, "No data") {
		t.Errorf("Expected placeholder for empty groups, got %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{45000, "₹45,000"},
		{1234567, "₹1,234,567"},
	}

	for _, tt := range tests {
		if got := formatMoney("₹", tt.value); got != tt.want {
			t.Errorf("formatMoney(%v): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestFormatSpecSize(t *testing.T) {
	if got := formatSpecSize(8.0); got != "8" {
		t.Errorf("Expected 8, got %q", got)
	}
	if got := formatSpecSize(15.6); got != "15.6" {
		t.Errorf("Expected 15.6, got %q", got)
	}
}

func TestDistinctBrands(t *testing.T) {
	model := NewDashboardModel(sampleTestListings(), nil, analyzer.NewEngine(), Options{})

	if len(model.allBrands) != 2 {
		t.Fatalf("Expected 2 distinct brands, got %d", len(model.allBrands))
	}
	if model.allBrands[0] != "Acme" || model.allBrands[1] != "Zeta" {
		t.Errorf("Expected sorted brands [Acme Zeta], got %v", model.allBrands)
	}
}
