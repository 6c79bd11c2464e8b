package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/lapscan/lapscan/internal/config"
	"github.com/lapscan/lapscan/internal/emoji"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lapscan",
		Short: "Laptop Market Explorer",
		Long: `lapscan explores laptop pricing datasets from the command line.

It loads a CSV of laptop listings, cleans and deduplicates the rows, and
aggregates prices by brand, platform, and hardware spec. Results are shown
in an interactive dashboard or rendered as text, JSON, Markdown, or CSV.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			loadGlobalConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, markdown, csv)")

	// Add subcommands
	rootCmd.AddCommand(newExploreCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadGlobalConfig loads configuration once per invocation. Failures fall
// back to defaults with a warning so the CLI stays usable.
func loadGlobalConfig(cmd *cobra.Command) {
	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	// Flags beat config values.
	if !cmd.Flag("verbose").Changed {
		verbose = cfg.Output.Verbose
	}
	if outputFmt == "" {
		outputFmt = cfg.Output.DefaultFormat
	}
	if !cmd.Flag("no-color").Changed && cfg.Output.ColorMode == "never" {
		noColor = true
	}

	globalConfig = cfg
}

// GetGlobalConfig returns the loaded configuration, or defaults when no
// command has run yet.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("lapscan %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

func useColor() bool {
	if noColor {
		return false
	}
	return GetGlobalConfig().Output.ColorMode != "never"
}
