package cli

import (
	"fmt"

	"github.com/lapscan/lapscan/internal/filter"
	"github.com/spf13/cobra"
)

// filterFlags collects the listing filter flags shared by the explore and
// report commands.
type filterFlags struct {
	brands    []string
	platforms []string
	cities    []string
	rams      []float64
	storages  []float64
	minPrice  float64
	maxPrice  float64
	minRating float64
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.brands, "brand", nil, "only include these brands (repeatable)")
	cmd.Flags().StringSliceVar(&f.platforms, "platform", nil, "only include these platforms (repeatable)")
	cmd.Flags().StringSliceVar(&f.cities, "city", nil, "only include these cities (repeatable)")
	cmd.Flags().Float64SliceVar(&f.rams, "ram", nil, "only include these RAM sizes in GB (repeatable)")
	cmd.Flags().Float64SliceVar(&f.storages, "storage", nil, "only include these storage sizes in GB (repeatable)")
	cmd.Flags().Float64Var(&f.minPrice, "min-price", 0, "minimum price (inclusive)")
	cmd.Flags().Float64Var(&f.maxPrice, "max-price", 0, "maximum price (inclusive)")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "minimum rating")
}

// buildSelection turns the flags into a filter selection. An inverted price
// range is rejected here, before any data is loaded.
func (f *filterFlags) buildSelection(cmd *cobra.Command) (*filter.Selection, error) {
	sel := &filter.Selection{
		Brands:    f.brands,
		Platforms: f.platforms,
		Cities:    f.cities,
		RAMGB:     f.rams,
		StorageGB: f.storages,
		MinRating: f.minRating,
	}

	minSet := cmd.Flag("min-price").Changed
	maxSet := cmd.Flag("max-price").Changed
	if minSet || maxSet {
		r := &filter.Range{Min: f.minPrice, Max: f.maxPrice}
		if !maxSet {
			r.Max = maxPriceCeiling
		}
		if !r.Valid() {
			return nil, fmt.Errorf("invalid price range: min %.2f exceeds max %.2f", r.Min, r.Max)
		}
		sel.Price = r
	}

	return sel, nil
}

// maxPriceCeiling stands in for "no upper bound" when only --min-price is set.
const maxPriceCeiling = 1e12
