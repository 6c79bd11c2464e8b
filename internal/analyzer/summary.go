package analyzer

import "github.com/lapscan/lapscan/internal/dataset"

// Summary is the aggregated view computed from a filtered set of listings.
// It is recomputed from scratch on every interaction and never mutated.
type Summary struct {
	TotalListings int `json:"total_listings"`
	BrandCount    int `json:"brand_count"`
	PlatformCount int `json:"platform_count"`

	Brands    []GroupStat `json:"brands"`
	Platforms []GroupStat `json:"platforms"`

	// CheapestPlatforms ranks platforms by ascending mean price.
	CheapestPlatforms []GroupStat `json:"cheapest_platforms,omitempty"`

	Price   FieldStats `json:"price"`
	Rating  FieldStats `json:"rating"`
	RAM     FieldStats `json:"ram"`
	Storage FieldStats `json:"storage"`
	CPU     FieldStats `json:"cpu"`
	Screen  FieldStats `json:"screen"`

	// Mean price for each distinct RAM / storage size, ascending by size.
	RAMCurve     []CurvePoint `json:"ram_curve,omitempty"`
	StorageCurve []CurvePoint `json:"storage_curve,omitempty"`

	// BestValue lists the listings with the lowest price per RAM GB.
	BestValue []dataset.Listing `json:"best_value,omitempty"`
}

// GroupStat holds per-group price statistics.
type GroupStat struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	MeanPrice float64 `json:"mean_price"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
}

// FieldStats describes the distribution of one numeric column.
type FieldStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// CurvePoint is one point on a spec-vs-price curve.
type CurvePoint struct {
	Size      float64 `json:"size"`
	MeanPrice float64 `json:"mean_price"`
	Count     int     `json:"count"`
}
