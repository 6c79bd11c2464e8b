package config

import "fmt"

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Dataset  DatasetConfig  `yaml:"dataset" json:"dataset"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis"`
	Export   ExportConfig   `yaml:"export" json:"export"`
}

// DatasetConfig configures where the laptop data comes from
type DatasetConfig struct {
	Path string `yaml:"path" json:"path"` // default CSV path when no argument is given
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat  string `yaml:"default_format" json:"default_format"`   // text|json|markdown|csv
	ColorMode      string `yaml:"color_mode" json:"color_mode"`           // auto|always|never
	CurrencySymbol string `yaml:"currency_symbol" json:"currency_symbol"` // prefix for prices
	Verbose        bool   `yaml:"verbose" json:"verbose"`                 // default verbosity
}

// AnalysisConfig configures aggregation behavior
type AnalysisConfig struct {
	TopGroups      int `yaml:"top_groups" json:"top_groups"`             // max brand/platform groups in a summary
	BestValueCount int `yaml:"best_value_count" json:"best_value_count"` // value-for-money listings to surface
	TableRows      int `yaml:"table_rows" json:"table_rows"`             // listings shown in the dashboard table
}

// ExportConfig configures the export sinks
type ExportConfig struct {
	CSVPath  string         `yaml:"csv_path" json:"csv_path"` // default path for CSV export
	Postgres PostgresConfig `yaml:"postgres" json:"postgres"`
}

// PostgresConfig holds the Postgres sink connection settings
type PostgresConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     string `yaml:"port" json:"port"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"password" json:"password"`
	DBName   string `yaml:"db_name" json:"db_name"`
	SSLMode  string `yaml:"ssl_mode" json:"ssl_mode"`
}

// DSN returns the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return "host=" + p.Host +
		" port=" + p.Port +
		" user=" + p.User +
		" password=" + p.Password +
		" dbname=" + p.DBName +
		" sslmode=" + p.SSLMode
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Dataset: DatasetConfig{
			Path: "./laptops.csv",
		},
		Output: OutputConfig{
			DefaultFormat:  "text",
			ColorMode:      "auto",
			CurrencySymbol: "₹",
			Verbose:        false,
		},
		Analysis: AnalysisConfig{
			TopGroups:      10,
			BestValueCount: 5,
			TableRows:      20,
		},
		Export: ExportConfig{
			CSVPath: "./output/laptops_clean.csv",
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    "5432",
				User:    "lapscan",
				DBName:  "lapscan",
				SSLMode: "disable",
			},
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return c.validateAnalysisConfig()
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

func (c *Config) validateAnalysisConfig() error {
	if c.Analysis.TopGroups < 1 {
		return fmt.Errorf("top_groups must be greater than 0")
	}
	if c.Analysis.BestValueCount < 1 {
		return fmt.Errorf("best_value_count must be greater than 0")
	}
	if c.Analysis.TableRows < 1 {
		return fmt.Errorf("table_rows must be greater than 0")
	}
	return nil
}
