package analyzer

import (
	"context"
	"testing"

	"github.com/lapscan/lapscan/internal/dataset"
	"github.com/lapscan/lapscan/internal/filter"
)

func marketListings() []dataset.Listing {
	return []dataset.Listing{
		{Brand: "Acme", Platform: "Amazon", Price: 800, Rating: 4.0, RAMGB: 8, StorageGB: 256, PricePerRAMGB: 100},
		{Brand: "Acme", Platform: "Flipkart", Price: 900, Rating: 4.5, RAMGB: 16, StorageGB: 512, PricePerRAMGB: 56.25},
		{Brand: "Zeta", Platform: "Amazon", Price: 1000, Rating: 3.8, RAMGB: 8, StorageGB: 512, PricePerRAMGB: 125},
	}
}

func TestSummarizeBrandMeans(t *testing.T) {
	filtered := filter.Apply(marketListings(), filter.Selection{Brands: []string{"Acme"}})

	summary, err := NewEngine().Summarize(context.Background(), filtered)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.TotalListings != 2 {
		t.Fatalf("Expected 2 listings, got %d", summary.TotalListings)
	}
	if len(summary.Brands) != 1 {
		t.Fatalf("Expected 1 brand group, got %d", len(summary.Brands))
	}

	acme := summary.Brands[0]
	if acme.Name != "Acme" {
		t.Errorf("Expected group Acme, got %q", acme.Name)
	}
	if acme.MeanPrice != 850 {
		t.Errorf("Expected mean price 850, got %v", acme.MeanPrice)
	}
	if acme.MinPrice != 800 || acme.MaxPrice != 900 {
		t.Errorf("Expected price range [800, 900], got [%v, %v]", acme.MinPrice, acme.MaxPrice)
	}
}

func TestSummarizeZeroRows(t *testing.T) {
	summary, err := NewEngine().Summarize(context.Background(), nil)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.TotalListings != 0 {
		t.Errorf("Expected 0 listings, got %d", summary.TotalListings)
	}
	if len(summary.Brands) != 0 || len(summary.Platforms) != 0 {
		t.Error("Expected empty group lists for zero rows")
	}
	if summary.Price.Count != 0 || summary.Price.Mean != 0 {
		t.Errorf("Expected zero price stats, got %+v", summary.Price)
	}
}

func TestSummarizeGroupOrdering(t *testing.T) {
	listings := []dataset.Listing{
		{Brand: "Solo", Platform: "A", Price: 100},
		{Brand: "Duo", Platform: "A", Price: 200},
		{Brand: "Duo", Platform: "B", Price: 300},
	}

	summary, err := NewEngine().Summarize(context.Background(), listings)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Brands[0].Name != "Duo" {
		t.Errorf("Expected most common brand first, got %q", summary.Brands[0].Name)
	}
	if summary.Brands[1].Name != "Solo" {
		t.Errorf("Expected Solo second, got %q", summary.Brands[1].Name)
	}
}

func TestSummarizeTopGroupsCap(t *testing.T) {
	listings := []dataset.Listing{
		{Brand: "A", Platform: "P", Price: 100},
		{Brand: "B", Platform: "P", Price: 100},
		{Brand: "C", Platform: "P", Price: 100},
	}

	summary, err := NewEngine().WithTopGroups(2).Summarize(context.Background(), listings)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if len(summary.Brands) != 2 {
		t.Errorf("Expected brand groups capped at 2, got %d", len(summary.Brands))
	}
}

func TestCheapestPlatformsRankedBeforeCap(t *testing.T) {
	listings := []dataset.Listing{
		{Brand: "A", Platform: "Amazon", Price: 1000},
		{Brand: "A", Platform: "Amazon", Price: 1200},
		{Brand: "A", Platform: "Flipkart", Price: 400},
	}

	summary, err := NewEngine().WithTopGroups(1).Summarize(context.Background(), listings)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	// Flipkart falls outside the capped group list but is the cheapest.
	if len(summary.Platforms) != 1 || summary.Platforms[0].Name != "Amazon" {
		t.Fatalf("Expected capped platform list with Amazon, got %v", summary.Platforms)
	}
	if len(summary.CheapestPlatforms) != 2 || summary.CheapestPlatforms[0].Name != "Flipkart" {
		t.Errorf("Expected Flipkart ranked cheapest, got %v", summary.CheapestPlatforms)
	}
	if summary.PlatformCount != 2 {
		t.Errorf("Expected platform count over all groups, got %d", summary.PlatformCount)
	}
}

func TestSummarizeCheapestPlatforms(t *testing.T) {
	summary, err := NewEngine().Summarize(context.Background(), marketListings())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if len(summary.CheapestPlatforms) != 2 {
		t.Fatalf("Expected 2 platforms, got %d", len(summary.CheapestPlatforms))
	}

	first := summary.CheapestPlatforms[0].MeanPrice
	second := summary.CheapestPlatforms[1].MeanPrice
	if first > second {
		t.Errorf("Expected ascending mean prices, got %v then %v", first, second)
	}
}

func TestFieldStatsIgnoreMissingValues(t *testing.T) {
	listings := []dataset.Listing{
		{Brand: "A", Price: 100, Rating: 4.0},
		{Brand: "B", Price: 200, Rating: 0}, // rating absent
	}

	summary, err := NewEngine().Summarize(context.Background(), listings)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Rating.Count != 1 {
		t.Errorf("Expected 1 rated listing, got %d", summary.Rating.Count)
	}
	if summary.Rating.Mean != 4.0 {
		t.Errorf("Expected rating mean 4.0, got %v", summary.Rating.Mean)
	}
	if summary.Price.Count != 2 {
		t.Errorf("Expected 2 priced listings, got %d", summary.Price.Count)
	}
}

func TestFieldStatsStdDev(t *testing.T) {
	listings := []dataset.Listing{
		{Brand: "A", Price: 100},
		{Brand: "B", Price: 300},
	}

	summary, err := NewEngine().Summarize(context.Background(), listings)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Price.Mean != 200 {
		t.Errorf("Expected mean 200, got %v", summary.Price.Mean)
	}
	// Population stddev of {100, 300} is 100.
	if summary.Price.StdDev != 100 {
		t.Errorf("Expected stddev 100, got %v", summary.Price.StdDev)
	}
}

func TestSpecCurvesSortedBySize(t *testing.T) {
	summary, err := NewEngine().Summarize(context.Background(), marketListings())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if len(summary.RAMCurve) != 2 {
		t.Fatalf("Expected 2 RAM sizes, got %d", len(summary.RAMCurve))
	}
	if summary.RAMCurve[0].Size != 8 || summary.RAMCurve[1].Size != 16 {
		t.Errorf("Expected sizes [8, 16], got [%v, %v]",
			summary.RAMCurve[0].Size, summary.RAMCurve[1].Size)
	}

	// 8GB group holds the 800 and 1000 rows.
	if summary.RAMCurve[0].MeanPrice != 900 {
		t.Errorf("Expected 8GB mean 900, got %v", summary.RAMCurve[0].MeanPrice)
	}
	if summary.RAMCurve[0].Count != 2 {
		t.Errorf("Expected 2 laptops at 8GB, got %d", summary.RAMCurve[0].Count)
	}
}

func TestBestValueRanking(t *testing.T) {
	summary, err := NewEngine().WithBestValueCount(2).Summarize(context.Background(), marketListings())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if len(summary.BestValue) != 2 {
		t.Fatalf("Expected 2 best-value listings, got %d", len(summary.BestValue))
	}
	if summary.BestValue[0].PricePerRAMGB != 56.25 {
		t.Errorf("Expected lowest price per GB first, got %v", summary.BestValue[0].PricePerRAMGB)
	}
}

func TestSummarizeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine().Summarize(ctx, marketListings())
	if err == nil {
		t.Error("Expected error from canceled context")
	}
}
