package filter

import (
	"strings"

	"github.com/lapscan/lapscan/internal/dataset"
)

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Valid reports whether the interval is not inverted.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Selection holds the constraints chosen for one interaction. Dimensions are
// AND-combined; values within a dimension are OR-combined. An empty dimension
// means no constraint on it. Selections are transient: built per invocation
// and discarded afterwards.
type Selection struct {
	Brands    []string
	Platforms []string
	Cities    []string
	RAMGB     []float64
	StorageGB []float64
	Price     *Range
	MinRating float64
}

// IsEmpty reports whether the selection constrains nothing.
func (s Selection) IsEmpty() bool {
	return len(s.Brands) == 0 &&
		len(s.Platforms) == 0 &&
		len(s.Cities) == 0 &&
		len(s.RAMGB) == 0 &&
		len(s.StorageGB) == 0 &&
		s.Price == nil &&
		s.MinRating <= 0
}

// Apply returns the listings satisfying every active constraint. The input is
// never mutated; the result is a fresh slice and may be empty, which is a
// valid outcome rather than an error. Categorical matching is
// case-insensitive.
func Apply(listings []dataset.Listing, sel Selection) []dataset.Listing {
	result := make([]dataset.Listing, 0, len(listings))
	if sel.IsEmpty() {
		return append(result, listings...)
	}

	brands := toLowerSet(sel.Brands)
	platforms := toLowerSet(sel.Platforms)
	cities := toLowerSet(sel.Cities)
	rams := toFloatSet(sel.RAMGB)
	storages := toFloatSet(sel.StorageGB)

	for _, l := range listings {
		if brands != nil && !brands[strings.ToLower(l.Brand)] {
			continue
		}
		if platforms != nil && !platforms[strings.ToLower(l.Platform)] {
			continue
		}
		if cities != nil && !cities[strings.ToLower(l.City)] {
			continue
		}
		if rams != nil && !rams[l.RAMGB] {
			continue
		}
		if storages != nil && !storages[l.StorageGB] {
			continue
		}
		if sel.Price != nil && !sel.Price.Contains(l.Price) {
			continue
		}
		if sel.MinRating > 0 && l.Rating < sel.MinRating {
			continue
		}
		result = append(result, l)
	}

	return result
}

// toLowerSet builds a lowercase lookup set; nil means no constraint.
func toLowerSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return set
}

func toFloatSet(values []float64) map[float64]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[float64]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
