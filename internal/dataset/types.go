package dataset

// Listing is one laptop offer after type coercion. Numeric fields that were
// absent or unparseable in the source hold zero; the cleaner decides whether
// that makes the row unusable.
type Listing struct {
	Brand     string  `json:"brand"`
	Platform  string  `json:"platform,omitempty"`
	City      string  `json:"city,omitempty"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating,omitempty"`
	RAMGB     float64 `json:"ram_gb,omitempty"`
	StorageGB float64 `json:"storage_gb,omitempty"`
	CPUGHz    float64 `json:"cpu_ghz,omitempty"`
	ScreenIn  float64 `json:"screen_inches,omitempty"`
	WeightKG  float64 `json:"weight_kg,omitempty"`

	// Derived columns, computed by Clean.
	PricePerRAMGB     float64 `json:"price_per_ram_gb,omitempty"`
	PricePerStorageGB float64 `json:"price_per_storage_gb,omitempty"`
}

// Dataset is an immutable snapshot of a loaded source file. Once built it is
// never modified; every downstream stage works on derived copies.
type Dataset struct {
	path     string
	listings []Listing
}

// Path returns the source file the dataset was loaded from.
func (d *Dataset) Path() string {
	return d.path
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.listings)
}

// Listings returns a copy of the rows so callers cannot mutate the snapshot.
func (d *Dataset) Listings() []Listing {
	out := make([]Listing, len(d.listings))
	copy(out, d.listings)
	return out
}
