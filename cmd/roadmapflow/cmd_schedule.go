package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadmapflow/schedule"
)

var (
	scheduleDependency string
	scheduleReadiness  string
	scheduleThreshold  float64
	scheduleRestarts   int
	scheduleSeed       int64
)

// scheduleCmd searches mission orders and prints the best one
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Search for a mission order minimizing readiness upgrade cost",
	Long: `Combines the two tables and searches mission permutations for the
order with the lowest cumulative readiness upgrade cost. Capabilities
whose dependency value reaches the threshold must reach operational
readiness before their mission flies; climbing rungs early is penalized.

The search is deterministic for a given seed.`,
	RunE: runSchedule,
}

func init() {
	f := scheduleCmd.Flags()
	f.StringVar(&scheduleDependency, "dependency", "", "dependency table (csv)")
	f.StringVar(&scheduleReadiness, "readiness", "", "readiness table (csv)")
	f.Float64Var(&scheduleThreshold, "threshold", schedule.DefaultOptions().Threshold,
		"dependency value forcing operational readiness, in [0.0, 1.0]")
	f.IntVar(&scheduleRestarts, "restarts", schedule.DefaultOptions().Restarts,
		"random-start descents beyond the roadmap-order descent")
	f.Int64Var(&scheduleSeed, "seed", 0, "restart RNG seed (0 selects the fixed default stream)")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dependency") {
		s.Dependency = scheduleDependency
	}
	if flags.Changed("readiness") {
		s.Readiness = scheduleReadiness
	}
	if flags.Changed("threshold") {
		s.Threshold = scheduleThreshold
	}
	if flags.Changed("restarts") {
		s.Restarts = scheduleRestarts
	}
	if flags.Changed("seed") {
		s.Seed = scheduleSeed
	}

	d, err := loadModel(s)
	if err != nil {
		return err
	}

	opts := schedule.DefaultOptions()
	opts.Threshold = s.Threshold
	opts.Restarts = s.Restarts
	opts.Seed = s.Seed

	res, err := schedule.Optimize(d, opts)
	if err != nil {
		return err
	}
	logger.Info("schedule optimized",
		zap.Float64("cost", res.Cost),
		zap.Int("missions", len(res.Missions)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Optimized mission order (cost %.1f):\n", res.Cost)
	for i, name := range res.Missions {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, name)
	}
	return nil
}
