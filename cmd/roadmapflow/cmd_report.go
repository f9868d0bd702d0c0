package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadmapflow/report"
	"github.com/katalvlaran/roadmapflow/roadmap"
)

var (
	reportDependency string
	reportReadiness  string
	reportMode       string
	reportMission    string
	reportAxis       string
)

// reportCmd renders one console report per invocation
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render console reports over the combined roadmap",
	Long: `Combines the two tables and renders one report to stdout.

Modes:
  sample        one mission with its capability entries
  full          every mission with its capability entries
  table         one mission as a fixed-width capability table
  summary       counts plus the mission and capability lists
  capabilities  per-capability usage census
  heatmap       capabilities x missions value grid for one axis`,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportDependency, "dependency", "", "dependency table (csv)")
	f.StringVar(&reportReadiness, "readiness", "", "readiness table (csv)")
	f.StringVar(&reportMode, "mode", "summary", "sample|full|table|summary|capabilities|heatmap")
	f.StringVar(&reportMission, "mission", "", "mission for sample and table modes (default first)")
	f.StringVar(&reportAxis, "heatmap-axis", string(roadmap.AxisDependency), "dependency|readiness")
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dependency") {
		s.Dependency = reportDependency
	}
	if flags.Changed("readiness") {
		s.Readiness = reportReadiness
	}

	d, err := loadModel(s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch reportMode {
	case "sample":
		return report.Sample(out, d, reportMission)
	case "full":
		return report.Full(out, d)
	case "table":
		return report.Table(out, d, reportMission)
	case "summary":
		return report.Summary(out, d)
	case "capabilities":
		return report.CapabilityAnalysis(out, d)
	case "heatmap":
		axis, err := roadmap.ParseAxis(reportAxis)
		if err != nil {
			return err
		}
		return report.Heatmap(out, d, axis)
	}
	return fmt.Errorf("unknown report mode %q (want sample, full, table, summary, capabilities, or heatmap)", reportMode)
}
