package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// enrichSeed drives the deterministic synthetic marketplace columns so that
// repeated loads of the same file always produce the same dataset.
const enrichSeed = 42

var (
	syntheticPlatforms = []string{"Amazon", "Flipkart", "Reliance Digital", "Croma", "Vijay Sales"}
	syntheticCities    = []string{"Bhopal", "Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Pune", "Hyderabad"}
)

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*Dataset)
)

// Load reads the CSV dataset at path into an immutable Dataset. The result is
// memoized per cleaned path: repeated calls return the cached snapshot instead
// of re-reading storage.
func Load(path string) (*Dataset, error) {
	cleanPath := filepath.Clean(path)

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if ds, ok := cache[cleanPath]; ok {
		return ds, nil
	}

	ds, err := loadFile(cleanPath)
	if err != nil {
		return nil, err
	}

	cache[cleanPath] = ds
	return ds, nil
}

// Reload drops the cached snapshot for path and loads it again. Used by the
// watch command when the source file changes on disk.
func Reload(path string) (*Dataset, error) {
	cleanPath := filepath.Clean(path)

	cacheMu.Lock()
	delete(cache, cleanPath)
	cacheMu.Unlock()

	return Load(path)
}

func loadFile(path string) (*Dataset, error) {
	// #nosec G304 - path comes from a CLI argument or config value
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	listings, err := parseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	return &Dataset{path: path, listings: listings}, nil
}

// columnIndex maps known header names (and their common aliases) to Listing
// fields. Matching is case-insensitive and ignores spaces.
type columnIndex struct {
	brand, platform, city		int
	price, rating, ram, storage	int
	cpu, screen, weight		int
	hasPlatform, hasCity, hasRating	bool
}

func resolveColumns(header []string) (*columnIndex, error) {
	idx := &columnIndex{
		brand: -1, platform: -1, city: -1, price: -1, rating: -1,
		ram: -1, storage: -1, cpu: -1, screen: -1, weight: -1,
	}

	for i, name := range header {
		switch normalizeHeader(name) {
		case "brand", "manufacturer":
			idx.brand = i
		case "platform", "store", "seller":
			idx.platform = i
			idx.hasPlatform = true
		case "city", "location":
			idx.city = i
			idx.hasCity = true
		case "price", "price_inr":
			idx.price = i
		case "rating":
			idx.rating = i
			idx.hasRating = true
		case "ram_size", "ram", "ram_gb":
			idx.ram = i
		case "storage_capacity", "storage", "storage_gb":
			idx.storage = i
		case "processor_speed", "cpu_ghz":
			idx.cpu = i
		case "screen_size", "screen_inches":
			idx.screen = i
		case "weight", "weight_kg":
			idx.weight = i
		}
	}

	if idx.brand == -1 {
		return nil, fmt.Errorf("missing required column: brand")
	}
	if idx.price == -1 {
		return nil, fmt.Errorf("missing required column: price")
	}

	return idx, nil
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

func parseCSV(r io.Reader) ([]Listing, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var listings []Listing
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		listings = append(listings, Listing{
			Brand:     field(record, idx.brand),
			Platform:  field(record, idx.platform),
			City:      field(record, idx.city),
			Price:     numericField(record, idx.price),
			Rating:    numericField(record, idx.rating),
			RAMGB:     numericField(record, idx.ram),
			StorageGB: numericField(record, idx.storage),
			CPUGHz:    numericField(record, idx.cpu),
			ScreenIn:  numericField(record, idx.screen),
			WeightKG:  numericField(record, idx.weight),
		})
	}

	if len(listings) == 0 {
		return nil, fmt.Errorf("dataset has no data rows")
	}

	enrich(listings, idx)
	return listings, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// numericField coerces a cell to float64, tolerating currency symbols and
// thousands separators. Unparseable cells become 0.
func numericField(record []string, i int) float64 {
	raw := field(record, i)
	if raw == "" {
		return 0
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, raw)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// enrich assigns deterministic synthetic platform, city, and rating values
// when the source file does not carry those columns, so the marketplace views
// still have something to group by. The fixed seed keeps loads reproducible.
func enrich(listings []Listing, idx *columnIndex) {
	if idx.hasPlatform && idx.hasCity && idx.hasRating {
		return
	}

	rng := rand.New(rand.NewSource(enrichSeed))
	for i := range listings {
		if !idx.hasPlatform {
			listings[i].Platform = syntheticPlatforms[rng.Intn(len(syntheticPlatforms))]
		}
		if !idx.hasCity {
			listings[i].City = syntheticCities[rng.Intn(len(syntheticCities))]
		}
		if !idx.hasRating {
			listings[i].Rating = float64(int((3.0+rng.Float64()*2.0)*10)) / 10
		}
	}
}
