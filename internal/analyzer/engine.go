package analyzer

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/lapscan/lapscan/internal/dataset"
)

// Engine computes Summaries from filtered listings. It holds only tuning
// knobs, no data, so a single engine can serve every interaction.
type Engine struct {
	topGroups      int
	bestValueCount int
}

// NewEngine returns an engine with default limits.
func NewEngine() *Engine {
	return &Engine{
		topGroups:      10,
		bestValueCount: 5,
	}
}

// WithTopGroups caps how many brand/platform groups a summary carries.
func (e *Engine) WithTopGroups(n int) *Engine {
	if n > 0 {
		e.topGroups = n
	}
	return e
}

// WithBestValueCount sets how many value-for-money listings to surface.
func (e *Engine) WithBestValueCount(n int) *Engine {
	if n > 0 {
		e.bestValueCount = n
	}
	return e
}

// Summarize computes the aggregated summary for the given listings. A zero-row
// input yields a well-formed zero-valued summary, not an error. The input is
// never mutated.
func (e *Engine) Summarize(ctx context.Context, listings []dataset.Listing) (*Summary, error) {
	summary := &Summary{
		Brands:    []GroupStat{},
		Platforms: []GroupStat{},
	}
	if len(listings) == 0 {
		return summary, nil
	}

	summary.TotalListings = len(listings)

	brands := groupStats(listings, func(l dataset.Listing) string { return l.Brand })
	platforms := groupStats(listings, func(l dataset.Listing) string { return l.Platform })
	summary.BrandCount = len(brands)
	summary.PlatformCount = len(platforms)

	// Rank before capping so a cheap platform outside the top groups by
	// count still surfaces as a deal.
	summary.CheapestPlatforms = cheapest(platforms)
	summary.Brands = e.capGroups(brands)
	summary.Platforms = e.capGroups(platforms)

	if err := checkContext(ctx); err != nil {
		return summary, err
	}

	summary.Price = fieldStats(listings, func(l dataset.Listing) float64 { return l.Price })
	summary.Rating = fieldStats(listings, func(l dataset.Listing) float64 { return l.Rating })
	summary.RAM = fieldStats(listings, func(l dataset.Listing) float64 { return l.RAMGB })
	summary.Storage = fieldStats(listings, func(l dataset.Listing) float64 { return l.StorageGB })
	summary.CPU = fieldStats(listings, func(l dataset.Listing) float64 { return l.CPUGHz })
	summary.Screen = fieldStats(listings, func(l dataset.Listing) float64 { return l.ScreenIn })

	if err := checkContext(ctx); err != nil {
		return summary, err
	}

	summary.RAMCurve = specCurve(listings, func(l dataset.Listing) float64 { return l.RAMGB })
	summary.StorageCurve = specCurve(listings, func(l dataset.Listing) float64 { return l.StorageGB })
	summary.BestValue = e.bestValue(listings)

	return summary, nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// groupStats computes per-group price statistics, sorted by descending count
// with name as tiebreaker.
func groupStats(listings []dataset.Listing, key func(dataset.Listing) string) []GroupStat {
	type acc struct {
		count    int
		sum      float64
		min, max float64
	}

	groups := make(map[string]*acc)
	for _, l := range listings {
		name := key(l)
		if name == "" {
			continue
		}
		a, ok := groups[name]
		if !ok {
			a = &acc{min: l.Price, max: l.Price}
			groups[name] = a
		}
		a.count++
		a.sum += l.Price
		if l.Price < a.min {
			a.min = l.Price
		}
		if l.Price > a.max {
			a.max = l.Price
		}
	}

	stats := make([]GroupStat, 0, len(groups))
	for name, a := range groups {
		stats = append(stats, GroupStat{
			Name:      name,
			Count:     a.count,
			MeanPrice: round2(a.sum / float64(a.count)),
			MinPrice:  a.min,
			MaxPrice:  a.max,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return strings.ToLower(stats[i].Name) < strings.ToLower(stats[j].Name)
	})

	return stats
}

// capGroups trims a group list to the configured limit.
func (e *Engine) capGroups(stats []GroupStat) []GroupStat {
	if len(stats) > e.topGroups {
		stats = stats[:e.topGroups]
	}
	return stats
}

// cheapest returns the groups re-ranked by ascending mean price.
func cheapest(groups []GroupStat) []GroupStat {
	ranked := make([]GroupStat, len(groups))
	copy(ranked, groups)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].MeanPrice < ranked[j].MeanPrice
	})
	return ranked
}

// fieldStats computes min/max/mean/stddev over the non-zero values of one
// numeric column. Zero means the value was absent in the source.
func fieldStats(listings []dataset.Listing, value func(dataset.Listing) float64) FieldStats {
	var stats FieldStats
	var sum float64

	for _, l := range listings {
		v := value(l)
		if v == 0 {
			continue
		}
		if stats.Count == 0 {
			stats.Min = v
			stats.Max = v
		}
		stats.Count++
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}

	if stats.Count == 0 {
		return stats
	}

	stats.Mean = sum / float64(stats.Count)

	var sqDiff float64
	for _, l := range listings {
		v := value(l)
		if v == 0 {
			continue
		}
		d := v - stats.Mean
		sqDiff += d * d
	}
	stats.StdDev = round2(math.Sqrt(sqDiff / float64(stats.Count)))
	stats.Mean = round2(stats.Mean)

	return stats
}

// specCurve computes mean price per distinct spec size, ascending by size.
func specCurve(listings []dataset.Listing, size func(dataset.Listing) float64) []CurvePoint {
	type acc struct {
		count int
		sum   float64
	}

	bySize := make(map[float64]*acc)
	for _, l := range listings {
		s := size(l)
		if s <= 0 {
			continue
		}
		a, ok := bySize[s]
		if !ok {
			a = &acc{}
			bySize[s] = a
		}
		a.count++
		a.sum += l.Price
	}

	points := make([]CurvePoint, 0, len(bySize))
	for s, a := range bySize {
		points = append(points, CurvePoint{
			Size:      s,
			MeanPrice: round2(a.sum / float64(a.count)),
			Count:     a.count,
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Size < points[j].Size })
	return points
}

// bestValue surfaces the listings with the lowest price per RAM GB.
func (e *Engine) bestValue(listings []dataset.Listing) []dataset.Listing {
	candidates := make([]dataset.Listing, 0, len(listings))
	for _, l := range listings {
		if l.PricePerRAMGB > 0 {
			candidates = append(candidates, l)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].PricePerRAMGB < candidates[j].PricePerRAMGB
	})

	if len(candidates) > e.bestValueCount {
		candidates = candidates[:e.bestValueCount]
	}
	return candidates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
