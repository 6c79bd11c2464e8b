package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/lapscan/lapscan/internal/analyzer"
	"github.com/lapscan/lapscan/internal/dataset"
	"github.com/lapscan/lapscan/internal/emoji"
	"github.com/lapscan/lapscan/internal/logger"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Watch a dataset file and summarize on change",
		Long: `Monitor a laptop dataset file and recompute the summary when it changes.

Uses file system notifications to detect writes, reloads the dataset, and
prints a compact summary line. Press Ctrl+C to stop watching.

Examples:
  lapscan watch laptops.csv
  lapscan watch --verbose laptops.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	watcher, cleanup, err := setupDatasetWatcher(filename)
	if err != nil {
		return err
	}
	defer cleanup()

	// Print the initial state before waiting for changes.
	if err := summarizeDataset(filename, false); err != nil {
		return err
	}

	return runWatchLoop(watcher, filename)
}

// setupDatasetWatcher validates the path and creates the file watcher.
func setupDatasetWatcher(filename string) (*fsnotify.Watcher, func(), error) {
	if err := validateWatchFilePath(filename); err != nil {
		return nil, nil, fmt.Errorf("invalid file path: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		cleanupWatcher(watcher)
		return nil, nil, fmt.Errorf("failed to watch file: %w", err)
	}

	cleanup := func() {
		cleanupWatcher(watcher)
	}
	return watcher, cleanup, nil
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

// runWatchLoop runs the main watch loop with signal handling
func runWatchLoop(watcher *fsnotify.Watcher, filename string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, stopping...\n")
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				if err := summarizeDataset(filename, true); err != nil {
					if isVerbose() {
						fmt.Fprintf(os.Stderr, "Error reloading dataset: %v\n", err)
					}
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}
}

// summarizeDataset loads (or reloads) the dataset and prints one compact
// summary line.
func summarizeDataset(filename string, reload bool) error {
	cfg := GetGlobalConfig()

	var (
		ds  *dataset.Dataset
		err error
	)
	if reload {
		ds, err = dataset.Reload(filename)
	} else {
		ds, err = dataset.Load(filename)
	}
	if err != nil {
		return err
	}

	log := logger.New("watch", isVerbose)
	cleaner := dataset.NewCleaner(log)
	listings := cleaner.Clean(ds.Listings())

	engine := analyzer.NewEngine().
		WithTopGroups(cfg.Analysis.TopGroups).
		WithBestValueCount(cfg.Analysis.BestValueCount)

	summary, err := engine.Summarize(context.Background(), listings)
	if err != nil {
		return err
	}

	cheapest := "n/a"
	if len(summary.CheapestPlatforms) > 0 {
		cheapest = summary.CheapestPlatforms[0].Name
	}

	fmt.Printf("%s %d laptops • avg %s%.0f • %d brands • %d platforms • cheapest on %s\n",
		emoji.GetEmoji("statistics"),
		summary.TotalListings,
		cfg.Output.CurrencySymbol, summary.Price.Mean,
		summary.BrandCount,
		summary.PlatformCount,
		cheapest)

	return nil
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
