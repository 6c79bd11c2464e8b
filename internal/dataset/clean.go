package dataset

import (
	"strings"
	"unicode"

	"github.com/lapscan/lapscan/internal/logger"
)

// Cleaner turns raw listings into validated rows ready for filtering and
// aggregation. Cleaning is deterministic and idempotent: running it over its
// own output changes nothing.
type Cleaner struct {
	log *logger.Logger
}

// NewCleaner creates a Cleaner that reports drop counts through log.
func NewCleaner(log *logger.Logger) *Cleaner {
	return &Cleaner{log: log}
}

// Clean applies the preprocessing policy:
//   - rows missing a brand or a positive price are dropped
//   - categorical values are trimmed, whitespace-collapsed, and title-cased
//   - exact duplicate rows are dropped
//   - derived value-for-money columns are computed
func (c *Cleaner) Clean(raw []Listing) []Listing {
	seen := make(map[Listing]struct{}, len(raw))
	result := make([]Listing, 0, len(raw))

	dropped := 0
	for _, l := range raw {
		l.Brand = canonical(l.Brand)
		l.Platform = canonical(l.Platform)
		l.City = canonical(l.City)

		if l.Brand == "" || l.Price <= 0 {
			dropped++
			continue
		}

		l.PricePerRAMGB = ratio(l.Price, l.RAMGB)
		l.PricePerStorageGB = ratio(l.Price, l.StorageGB)

		if _, dup := seen[l]; dup {
			dropped++
			continue
		}
		seen[l] = struct{}{}

		result = append(result, l)
	}

	if c.log != nil {
		c.log.Info("cleaned %d rows to %d (dropped %d)", len(raw), len(result), dropped)
	}
	return result
}

func ratio(price, unit float64) float64 {
	if unit <= 0 {
		return 0
	}
	return price / unit
}

// canonical trims, collapses internal whitespace, and title-cases each word.
func canonical(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	for i, f := range fields {
		fields[i] = titleWord(f)
	}
	return strings.Join(fields, " ")
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
