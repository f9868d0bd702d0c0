package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Persistent flags
	configPath string
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roadmapflow",
	Short: "Capability roadmap reports, flow diagrams, and schedules",
	Long: `roadmapflow reads a capability dependency table and a technology
readiness table (CSV, capability rows x mission columns), combines them
into one roadmap model, and turns that model into console reports,
Sankey and radar HTML pages, and optimized mission schedules.

Blank or unrecognized cells never abort a run: they are substituted with
documented defaults and summarized as warnings. Missing files or a
missing header row do abort.

Settings resolve in precedence order: flags, then ROADMAPFLOW_*
environment variables, then the yaml settings file, then defaults.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			config.Encoding = "console"
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging with console output")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sankeyCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
