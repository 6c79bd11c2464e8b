package formatter

import (
	"encoding/json"
	"time"

	"github.com/lapscan/lapscan/internal/analyzer"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(summary *analyzer.Summary) ([]byte, error) {
	output := &jsonOutput{
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
	}
	return json.MarshalIndent(output, "", "  ")
}

type jsonOutput struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     *analyzer.Summary `json:"summary"`
}
