package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.lapscan.yaml",               // Project-specific config (highest priority)
	"~/.config/lapscan/config.yaml", // User config
	"/etc/lapscan/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (including a local .env file)
// 3. ./.lapscan.yaml
// 4. ~/.config/lapscan/config.yaml
// 5. /etc/lapscan/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order so that higher
		// priority files overwrite lower ones.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	// A local .env file feeds the same override mechanism as real env vars.
	_ = godotenv.Load()

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Dataset
		"LAPSCAN_DATASET_PATH": func(v string) error { config.Dataset.Path = v; return nil },

		// Output
		"LAPSCAN_OUTPUT_DEFAULT_FORMAT":  func(v string) error { config.Output.DefaultFormat = v; return nil },
		"LAPSCAN_OUTPUT_COLOR_MODE":      func(v string) error { config.Output.ColorMode = v; return nil },
		"LAPSCAN_OUTPUT_CURRENCY_SYMBOL": func(v string) error { config.Output.CurrencySymbol = v; return nil },
		"LAPSCAN_OUTPUT_VERBOSE":         func(v string) error { return parseBool(v, &config.Output.Verbose) },

		// Analysis
		"LAPSCAN_ANALYSIS_TOP_GROUPS":       func(v string) error { return parseInt(v, &config.Analysis.TopGroups) },
		"LAPSCAN_ANALYSIS_BEST_VALUE_COUNT": func(v string) error { return parseInt(v, &config.Analysis.BestValueCount) },
		"LAPSCAN_ANALYSIS_TABLE_ROWS":       func(v string) error { return parseInt(v, &config.Analysis.TableRows) },

		// Export
		"LAPSCAN_EXPORT_CSV_PATH":     func(v string) error { config.Export.CSVPath = v; return nil },
		"LAPSCAN_POSTGRES_HOST":       func(v string) error { config.Export.Postgres.Host = v; return nil },
		"LAPSCAN_POSTGRES_PORT":       func(v string) error { config.Export.Postgres.Port = v; return nil },
		"LAPSCAN_POSTGRES_USER":       func(v string) error { config.Export.Postgres.User = v; return nil },
		"LAPSCAN_POSTGRES_PASSWORD":   func(v string) error { config.Export.Postgres.Password = v; return nil },
		"LAPSCAN_POSTGRES_DB":         func(v string) error { config.Export.Postgres.DBName = v; return nil },
		"LAPSCAN_POSTGRES_SSLMODE":    func(v string) error { config.Export.Postgres.SSLMode = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}
	if src.Dataset.Path != "" {
		dst.Dataset.Path = src.Dataset.Path
	}

	mergeOutputConfig(&dst.Output, &src.Output)
	mergeAnalysisConfig(&dst.Analysis, &src.Analysis)
	mergeExportConfig(&dst.Export, &src.Export)
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.CurrencySymbol != "" {
		dst.CurrencySymbol = src.CurrencySymbol
	}
	if src.Verbose {
		dst.Verbose = src.Verbose
	}
}

func mergeAnalysisConfig(dst, src *AnalysisConfig) {
	if src.TopGroups != 0 {
		dst.TopGroups = src.TopGroups
	}
	if src.BestValueCount != 0 {
		dst.BestValueCount = src.BestValueCount
	}
	if src.TableRows != 0 {
		dst.TableRows = src.TableRows
	}
}

func mergeExportConfig(dst, src *ExportConfig) {
	if src.CSVPath != "" {
		dst.CSVPath = src.CSVPath
	}
	if src.Postgres.Host != "" {
		dst.Postgres.Host = src.Postgres.Host
	}
	if src.Postgres.Port != "" {
		dst.Postgres.Port = src.Postgres.Port
	}
	if src.Postgres.User != "" {
		dst.Postgres.User = src.Postgres.User
	}
	if src.Postgres.Password != "" {
		dst.Postgres.Password = src.Postgres.Password
	}
	if src.Postgres.DBName != "" {
		dst.Postgres.DBName = src.Postgres.DBName
	}
	if src.Postgres.SSLMode != "" {
		dst.Postgres.SSLMode = src.Postgres.SSLMode
	}
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
