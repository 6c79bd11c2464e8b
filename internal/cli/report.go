package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lapscan/lapscan/internal/analyzer"
	"github.com/lapscan/lapscan/internal/dataset"
	"github.com/lapscan/lapscan/internal/filter"
	"github.com/lapscan/lapscan/internal/formatter"
	"github.com/spf13/cobra"
)

var (
	reportFilters    filterFlags
	reportOutputFile string
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Render a market summary to stdout or a file",
		Long: `Aggregate a laptop pricing dataset and render the summary.

The output format comes from the --output global flag or the configured
default. Filter flags narrow the dataset before aggregation.

Examples:
  lapscan report laptops.csv
  lapscan report --output json laptops.csv
  lapscan report --brand lenovo --output markdown laptops.csv
  lapscan report --output-file summary.md --output markdown laptops.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReport,
	}

	reportFilters.register(cmd)
	cmd.Flags().StringVar(&reportOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	sel, err := reportFilters.buildSelection(cmd)
	if err != nil {
		return err
	}

	listings, err := loadCleanListings(args)
	if err != nil {
		return err
	}

	filtered := filter.Apply(listings, *sel)

	engine := analyzer.NewEngine().
		WithTopGroups(cfg.Analysis.TopGroups).
		WithBestValueCount(cfg.Analysis.BestValueCount)

	return renderSummary(cmd.Context(), engine, filtered)
}

// renderSummary aggregates the listings and writes the formatted summary to
// the report output file, or stdout when none is set.
func renderSummary(ctx context.Context, engine *analyzer.Engine, listings []dataset.Listing) error {
	summary, err := engine.Summarize(ctx, listings)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	f, err := createFormatter(getOutputFormat())
	if err != nil {
		return err
	}

	output, err := f.Format(summary)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if reportOutputFile != "" {
		if err := os.WriteFile(reportOutputFile, output, 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", reportOutputFile)
		}
		return nil
	}

	_, err = os.Stdout.Write(output)
	return err
}

// createFormatter returns the formatter for the named output format.
func createFormatter(format string) (formatter.Formatter, error) {
	currency := GetGlobalConfig().Output.CurrencySymbol

	switch format {
	case "", "text":
		return formatter.NewTerminal(useColor(), currency), nil
	case "json":
		return formatter.NewJSON(), nil
	case "markdown":
		return formatter.NewMarkdown(currency), nil
	case "csv":
		return formatter.NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use text, json, markdown, or csv)", format)
	}
}
