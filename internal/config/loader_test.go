package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	loader := NewLoader()
	loader.configPaths = nil // no files on disk

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Dataset.Path != "./laptops.csv" {
		t.Errorf("Expected default dataset path, got %s", cfg.Dataset.Path)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected default format text, got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `version: "2.0"
dataset:
  path: "/data/laptops.csv"
output:
  default_format: "json"
analysis:
  top_groups: 3
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Version != "2.0" {
		t.Errorf("Expected version 2.0, got %s", cfg.Version)
	}
	if cfg.Dataset.Path != "/data/laptops.csv" {
		t.Errorf("Expected dataset path from file, got %s", cfg.Dataset.Path)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Expected format json, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Analysis.TopGroups != 3 {
		t.Errorf("Expected top groups 3, got %d", cfg.Analysis.TopGroups)
	}

	// Unset fields keep their defaults.
	if cfg.Analysis.BestValueCount != 5 {
		t.Errorf("Expected default best value count 5, got %d", cfg.Analysis.BestValueCount)
	}
	if cfg.Output.CurrencySymbol != "₹" {
		t.Errorf("Expected default currency, got %s", cfg.Output.CurrencySymbol)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	loader := NewLoader()
	if _, err := loader.LoadConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	content := `output:
  default_format: "bogus"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	loader := NewLoader()
	if _, err := loader.LoadConfig(path); err == nil {
		t.Error("Expected validation error for bogus format")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"config.yaml", false},
		{"config.yml", false},
		{"/etc/lapscan/config.yaml", false},
		{"config.json", true},
		{"../../../etc/passwd.yaml", true},
	}

	for _, tt := range tests {
		err := validateConfigPath(tt.path)
		if tt.wantErr && err == nil {
			t.Errorf("Expected error for path %q", tt.path)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Unexpected error for path %q: %v", tt.path, err)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LAPSCAN_DATASET_PATH", "/env/laptops.csv")
	t.Setenv("LAPSCAN_OUTPUT_DEFAULT_FORMAT", "markdown")
	t.Setenv("LAPSCAN_ANALYSIS_TOP_GROUPS", "7")
	t.Setenv("LAPSCAN_OUTPUT_VERBOSE", "true")
	t.Setenv("LAPSCAN_POSTGRES_PASSWORD", "hunter2")

	loader := NewLoader()
	loader.configPaths = nil

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Dataset.Path != "/env/laptops.csv" {
		t.Errorf("Expected env dataset path, got %s", cfg.Dataset.Path)
	}
	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("Expected env format markdown, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Analysis.TopGroups != 7 {
		t.Errorf("Expected env top groups 7, got %d", cfg.Analysis.TopGroups)
	}
	if !cfg.Output.Verbose {
		t.Error("Expected env verbose true")
	}
	if cfg.Export.Postgres.Password != "hunter2" {
		t.Errorf("Expected env postgres password, got %s", cfg.Export.Postgres.Password)
	}
}

func TestEnvOverrideInvalidInt(t *testing.T) {
	t.Setenv("LAPSCAN_ANALYSIS_TOP_GROUPS", "lots")

	loader := NewLoader()
	loader.configPaths = nil

	if _, err := loader.LoadConfig(""); err == nil {
		t.Error("Expected error for non-numeric env value")
	}
}

func TestSampleConfigsAreValidYAML(t *testing.T) {
	for _, sample := range []string{SampleConfig(), MinimalSampleConfig()} {
		path := filepath.Join(t.TempDir(), "sample.yaml")
		if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
			t.Fatalf("failed to write sample: %v", err)
		}

		loader := NewLoader()
		if _, err := loader.LoadConfig(path); err != nil {
			t.Errorf("Sample config failed to load: %v", err)
		}
	}
}
