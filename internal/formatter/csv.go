package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/lapscan/lapscan/internal/analyzer"
)

// csvFormatter formats group statistics as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(summary *analyzer.Summary) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{"Dimension", "Name", "Count", "Mean Price", "Min Price", "Max Price"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	if err := writeGroupRows(writer, "brand", summary.Brands); err != nil {
		return nil, err
	}
	if err := writeGroupRows(writer, "platform", summary.Platforms); err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

func writeGroupRows(writer *csv.Writer, dimension string, groups []analyzer.GroupStat) error {
	for _, g := range groups {
		record := []string{
			dimension,
			g.Name,
			fmt.Sprintf("%d", g.Count),
			fmt.Sprintf("%.2f", g.MeanPrice),
			fmt.Sprintf("%.2f", g.MinPrice),
			fmt.Sprintf("%.2f", g.MaxPrice),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}
