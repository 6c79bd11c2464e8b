package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}

	if cfg.Dataset.Path != "./laptops.csv" {
		t.Errorf("Expected default dataset path ./laptops.csv, got %s", cfg.Dataset.Path)
	}

	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}

	if cfg.Analysis.TopGroups != 10 {
		t.Errorf("Expected top groups 10, got %d", cfg.Analysis.TopGroups)
	}

	if cfg.Export.Postgres.Port != "5432" {
		t.Errorf("Expected postgres port 5432, got %s", cfg.Export.Postgres.Port)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "invalid" },
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "invalid" },
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "zero top groups",
			mutate:  func(c *Config) { c.Analysis.TopGroups = 0 },
			wantErr: true,
			errMsg:  "top_groups must be greater than 0",
		},
		{
			name:    "zero best value count",
			mutate:  func(c *Config) { c.Analysis.BestValueCount = 0 },
			wantErr: true,
			errMsg:  "best_value_count must be greater than 0",
		},
		{
			name:    "zero table rows",
			mutate:  func(c *Config) { c.Analysis.TableRows = 0 },
			wantErr: true,
			errMsg:  "table_rows must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				if err.Error() != tt.errMsg {
					t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db.example.com",
		Port:     "5433",
		User:     "scanner",
		Password: "secret",
		DBName:   "laptops",
		SSLMode:  "require",
	}

	dsn := p.DSN()
	wantParts := []string{
		"host=db.example.com",
		"port=5433",
		"user=scanner",
		"password=secret",
		"dbname=laptops",
		"sslmode=require",
	}
	for _, part := range wantParts {
		if !strings.Contains(dsn, part) {
			t.Errorf("Expected DSN to contain %q, got %q", part, dsn)
		}
	}
}
