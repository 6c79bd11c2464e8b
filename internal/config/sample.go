package config

// SampleConfig returns a fully documented sample configuration file
func SampleConfig() string {
	return `# lapscan configuration file
# Place this file at ./.lapscan.yaml, ~/.config/lapscan/config.yaml,
# or /etc/lapscan/config.yaml. Higher paths take priority.
# Environment variables with the LAPSCAN_ prefix override file settings.

version: "1.0"

# Dataset source
dataset:
  # CSV file to load when no path argument is given on the command line.
  path: "./laptops.csv"

# Output formatting
output:
  # Default output format: text, json, markdown, csv
  default_format: "text"

  # Color mode: auto (detect terminal), always, never
  color_mode: "auto"

  # Symbol shown before prices in reports and the dashboard.
  currency_symbol: "₹"

  # Enable verbose diagnostic output on stderr.
  verbose: false

# Aggregation behavior
analysis:
  # Maximum number of brand/platform groups shown in a summary.
  top_groups: 10

  # Number of value-for-money listings to surface.
  best_value_count: 5

  # Listings shown per page in the dashboard table.
  table_rows: 20

# Export sinks for the cleaned dataset
export:
  # Default path for CSV export.
  csv_path: "./output/laptops_clean.csv"

  # PostgreSQL sink. The password is usually supplied via
  # LAPSCAN_POSTGRES_PASSWORD or a .env file rather than here.
  postgres:
    host: "localhost"
    port: "5432"
    user: "lapscan"
    db_name: "lapscan"
    ssl_mode: "disable"
`
}

// MinimalSampleConfig returns a minimal configuration with essential settings
func MinimalSampleConfig() string {
	return `# lapscan configuration (minimal)
version: "1.0"

dataset:
  path: "./laptops.csv"

output:
  default_format: "text"
  color_mode: "auto"

analysis:
  top_groups: 10
  best_value_count: 5
`
}
