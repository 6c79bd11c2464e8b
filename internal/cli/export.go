package cli

import (
	"fmt"

	"github.com/lapscan/lapscan/internal/dataset"
	"github.com/lapscan/lapscan/internal/filter"
	"github.com/lapscan/lapscan/internal/storage"
	"github.com/spf13/cobra"
)

// listingFetcher is implemented by sinks that can read back what they hold.
type listingFetcher interface {
	FetchAll() ([]dataset.Listing, error)
}

var (
	exportFilters filterFlags
	exportTo      string
	exportPath    string
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the cleaned dataset to CSV or PostgreSQL",
		Long: `Load a laptop dataset, run the cleaning pass, and write the result
to an export sink.

The CSV sink writes to --path or the configured export path. The postgres
sink connects using the configured connection settings; the password is
usually supplied via LAPSCAN_POSTGRES_PASSWORD or a .env file.

Filter flags narrow the dataset before it is written, so a subset can be
exported the same way it would be reported.

Examples:
  lapscan export laptops.csv
  lapscan export --to csv --path ./out/clean.csv laptops.csv
  lapscan export --brand hp --min-rating 4 --to postgres laptops.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	exportFilters.register(cmd)
	cmd.Flags().StringVar(&exportTo, "to", "csv", "export sink (csv, postgres)")
	cmd.Flags().StringVar(&exportPath, "path", "", "output path for the csv sink")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	sel, err := exportFilters.buildSelection(cmd)
	if err != nil {
		return err
	}

	listings, err := loadCleanListings(args)
	if err != nil {
		return err
	}
	listings = filter.Apply(listings, *sel)

	writer, err := createWriter(exportTo)
	if err != nil {
		return err
	}
	defer func() {
		if err := writer.Close(); err != nil && isVerbose() {
			fmt.Printf("Warning: failed to close writer: %v\n", err)
		}
	}()

	if err := writer.Write(listings); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	verified, err := verifyExport(writer, len(listings))
	if err != nil {
		return err
	}

	switch exportTo {
	case "csv":
		path := exportPath
		if path == "" {
			path = cfg.Export.CSVPath
		}
		fmt.Printf("Exported %d listings to %s\n", len(listings), path)
	default:
		suffix := ""
		if verified {
			suffix = " (verified)"
		}
		fmt.Printf("Exported %d listings to postgres database %s%s\n", len(listings), cfg.Export.Postgres.DBName, suffix)
	}

	return nil
}

// verifyExport reads the sink back when it supports that and checks the row
// count against what was written. Sinks without read-back are skipped.
func verifyExport(writer storage.ListingWriter, want int) (bool, error) {
	fetcher, ok := writer.(listingFetcher)
	if !ok {
		return false, nil
	}

	stored, err := fetcher.FetchAll()
	if err != nil {
		return true, fmt.Errorf("export verification failed: %w", err)
	}
	if len(stored) != want {
		return true, fmt.Errorf("export verification failed: wrote %d listings but sink holds %d", want, len(stored))
	}
	return true, nil
}

// createWriter builds the export sink named by --to.
func createWriter(sink string) (storage.ListingWriter, error) {
	cfg := GetGlobalConfig()

	switch sink {
	case "csv":
		path := exportPath
		if path == "" {
			path = cfg.Export.CSVPath
		}
		return storage.NewCSVWriter(path)
	case "postgres":
		return storage.NewPostgresWriter(cfg.Export.Postgres.DSN())
	default:
		return nil, fmt.Errorf("unsupported export sink: %s (use csv or postgres)", sink)
	}
}
