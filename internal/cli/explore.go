package cli

import (
	"fmt"

	"github.com/lapscan/lapscan/internal/analyzer"
	"github.com/lapscan/lapscan/internal/dataset"
	"github.com/lapscan/lapscan/internal/filter"
	"github.com/lapscan/lapscan/internal/logger"
	"github.com/lapscan/lapscan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	exploreFilters filterFlags
	exploreNoTUI   bool
)

func newExploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Explore a laptop dataset interactively",
		Long: `Open the interactive dashboard over a laptop pricing dataset.

The dataset is loaded, cleaned, and deduplicated before any aggregation.
Filter flags narrow the dataset before the dashboard opens; brands can be
toggled further inside it.

If no file is specified, the dataset path from the configuration is used.

Examples:
  lapscan explore laptops.csv
  lapscan explore --brand hp --brand dell laptops.csv
  lapscan explore --min-price 30000 --max-price 80000 laptops.csv
  lapscan explore --ram 8 --ram 16 --min-rating 4 laptops.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExplore,
	}

	exploreFilters.register(cmd)
	cmd.Flags().BoolVar(&exploreNoTUI, "no-tui", false, "disable the dashboard, print a text report instead")

	return cmd
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	sel, err := exploreFilters.buildSelection(cmd)
	if err != nil {
		return err
	}

	listings, err := loadCleanListings(args)
	if err != nil {
		return err
	}

	engine := analyzer.NewEngine().
		WithTopGroups(cfg.Analysis.TopGroups).
		WithBestValueCount(cfg.Analysis.BestValueCount)

	// A non-text output format cannot drive the dashboard; render a report.
	if exploreNoTUI || (getOutputFormat() != "" && getOutputFormat() != "text") {
		filtered := filter.Apply(listings, *sel)
		return renderSummary(cmd.Context(), engine, filtered)
	}

	return ui.Run(listings, sel, engine, ui.Options{
		Currency:  cfg.Output.CurrencySymbol,
		TableRows: cfg.Analysis.TableRows,
	})
}

// loadCleanListings loads the dataset named by args (or the configured
// default) and runs the cleaning pass over it.
func loadCleanListings(args []string) ([]dataset.Listing, error) {
	path := GetGlobalConfig().Dataset.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no dataset path given and none configured")
	}

	log := logger.New("dataset", isVerbose)

	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	log.Info("loaded %d rows from %s", ds.Len(), ds.Path())

	cleaner := dataset.NewCleaner(log)
	return cleaner.Clean(ds.Listings()), nil
}
