package formatter

import "github.com/lapscan/lapscan/internal/analyzer"

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(summary *analyzer.Summary) ([]byte, error)
}
