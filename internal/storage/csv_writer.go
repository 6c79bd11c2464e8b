package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/lapscan/lapscan/internal/dataset"
)

// CSVWriter writes cleaned listings to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{
		"brand", "platform", "city", "price", "rating",
		"ram_gb", "storage_gb", "cpu_ghz", "screen_in", "weight_kg",
		"price_per_ram_gb", "price_per_storage_gb",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends the given listings to the CSV file.
func (c *CSVWriter) Write(listings []dataset.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range listings {
		row := []string{
			l.Brand,
			l.Platform,
			l.City,
			formatFloat(l.Price),
			formatFloat(l.Rating),
			formatFloat(l.RAMGB),
			formatFloat(l.StorageGB),
			formatFloat(l.CPUGHz),
			formatFloat(l.ScreenIn),
			formatFloat(l.WeightKG),
			formatFloat(l.PricePerRAMGB),
			formatFloat(l.PricePerStorageGB),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
