package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/lapscan/lapscan/internal/dataset"
)

// PostgresWriter persists cleaned listings to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS laptops (
			id          SERIAL PRIMARY KEY,
			brand       VARCHAR(100) NOT NULL,
			platform    VARCHAR(50)  NOT NULL DEFAULT '',
			city        VARCHAR(100) NOT NULL DEFAULT '',
			price       NUMERIC(12,2) NOT NULL DEFAULT 0,
			rating      NUMERIC(4,2)  NOT NULL DEFAULT 0,
			ram_gb      NUMERIC(8,2)  NOT NULL DEFAULT 0,
			storage_gb  NUMERIC(10,2) NOT NULL DEFAULT 0,
			cpu_ghz     NUMERIC(6,2)  NOT NULL DEFAULT 0,
			screen_in   NUMERIC(6,2)  NOT NULL DEFAULT 0,
			weight_kg   NUMERIC(6,2)  NOT NULL DEFAULT 0,
			price_per_ram_gb     NUMERIC(12,2) NOT NULL DEFAULT 0,
			price_per_storage_gb NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_laptops_brand    ON laptops(brand);
		CREATE INDEX IF NOT EXISTS idx_laptops_platform ON laptops(platform);
		CREATE INDEX IF NOT EXISTS idx_laptops_price    ON laptops(price);
		CREATE INDEX IF NOT EXISTS idx_laptops_rating   ON laptops(rating);
	`)
	return err
}

// Clear deletes all existing laptops from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM laptops")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts all cleaned listings, clearing old data first.
func (pw *PostgresWriter) Write(listings []dataset.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		if err := pw.insertBatch(listings[i:end]); err != nil {
			return err
		}
	}
	return nil
}

const insertColumns = 12

func (pw *PostgresWriter) insertBatch(batch []dataset.Listing) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*insertColumns)

	for idx, l := range batch {
		base := idx * insertColumns
		placeholders := make([]string, insertColumns)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			l.Brand, l.Platform, l.City, l.Price, l.Rating,
			l.RAMGB, l.StorageGB, l.CPUGHz, l.ScreenIn, l.WeightKG,
			l.PricePerRAMGB, l.PricePerStorageGB)
	}

	query := fmt.Sprintf(`
		INSERT INTO laptops (brand, platform, city, price, rating,
			ram_gb, storage_gb, cpu_ghz, screen_in, weight_kg,
			price_per_ram_gb, price_per_storage_gb)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves all stored laptops ordered by insertion.
func (pw *PostgresWriter) FetchAll() ([]dataset.Listing, error) {
	rows, err := pw.db.Query(`
		SELECT brand, platform, city, price, rating,
			ram_gb, storage_gb, cpu_ghz, screen_in, weight_kg,
			price_per_ram_gb, price_per_storage_gb
		FROM laptops
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []dataset.Listing
	for rows.Next() {
		var l dataset.Listing
		if err := rows.Scan(
			&l.Brand, &l.Platform, &l.City, &l.Price, &l.Rating,
			&l.RAMGB, &l.StorageGB, &l.CPUGHz, &l.ScreenIn, &l.WeightKG,
			&l.PricePerRAMGB, &l.PricePerStorageGB,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
