package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadmapflow/plotly"
	"github.com/katalvlaran/roadmapflow/sankey"
)

var (
	sankeyDependency  string
	sankeyReadiness   string
	sankeyFlow        string
	sankeyMinDep      float64
	sankeyMaxMissions int
	sankeyTitle       string
	sankeyOutputDir   string
)

// sankeyCmd writes flow diagram pages, one per selected projection
var sankeyCmd = &cobra.Command{
	Use:   "sankey",
	Short: "Write roadmap flow diagrams as HTML pages",
	Long: `Combines the two tables, builds the selected flow projection, and
writes it as a self-contained HTML page named
roadmap_sankey_<flow_type>.html. Written paths print to stdout.

Flow types:
  mission_to_capability    missions to capabilities, dependency-weighted
  capability_to_readiness  capabilities to readiness rungs, count-weighted
  mission_to_readiness     three stages, missions through to rungs
  dependency_flow          dependency bands through to rungs
  all                      each of the four once`,
	RunE: runSankey,
}

func init() {
	f := sankeyCmd.Flags()
	f.StringVar(&sankeyDependency, "dependency", "", "dependency table (csv)")
	f.StringVar(&sankeyReadiness, "readiness", "", "readiness table (csv)")
	f.StringVar(&sankeyFlow, "flow", string(sankey.FlowAll), "flow type, or all")
	f.Float64Var(&sankeyMinDep, "min-dependency", 0.0, "qualifying dependency threshold in [0.0, 1.0]")
	f.IntVar(&sankeyMaxMissions, "max-missions", sankey.AllMissions, "keep the first N missions (0 keeps all)")
	f.StringVar(&sankeyTitle, "title", "", "chart title override")
	f.StringVar(&sankeyOutputDir, "output-dir", "", "directory for the HTML pages")
}

func runSankey(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dependency") {
		s.Dependency = sankeyDependency
	}
	if flags.Changed("readiness") {
		s.Readiness = sankeyReadiness
	}
	if flags.Changed("min-dependency") {
		s.MinDependency = sankeyMinDep
	}
	if flags.Changed("max-missions") {
		s.MaxMissions = sankeyMaxMissions
	}
	if flags.Changed("title") {
		s.Title = sankeyTitle
	}
	if flags.Changed("output-dir") {
		s.OutputDir = sankeyOutputDir
	}

	typ, err := sankey.ParseFlowType(sankeyFlow)
	if err != nil {
		return err
	}

	d, err := loadModel(s)
	if err != nil {
		return err
	}

	opts := sankey.Options{
		MinDependency: s.MinDependency,
		MaxMissions:   s.MaxMissions,
		Title:         s.Title,
	}
	var flows []*sankey.FlowData
	if typ == sankey.FlowAll {
		if flows, err = sankey.BuildAll(d, opts); err != nil {
			return err
		}
	} else {
		f, err := sankey.Build(d, typ, opts)
		if err != nil {
			return err
		}
		flows = []*sankey.FlowData{f}
	}

	for _, f := range flows {
		path, err := plotly.SankeyFile(s.OutputDir, f, plotly.DefaultRenderOptions())
		if err != nil {
			return err
		}
		logger.Info("flow page written",
			zap.String("flow", string(f.Type)),
			zap.Int("nodes", len(f.Nodes)),
			zap.Int("links", len(f.Links)),
			zap.String("path", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
