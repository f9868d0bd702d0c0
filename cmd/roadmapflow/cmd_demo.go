package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadmapflow/plotly"
	"github.com/katalvlaran/roadmapflow/roadmap"
	"github.com/katalvlaran/roadmapflow/sampledata"
	"github.com/katalvlaran/roadmapflow/sankey"
)

var demoOutputDir string

// demoCmd writes the sample dataset plus every chart page built from it
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write the sample dataset and its chart pages",
	Long: `Writes the demo dependency and readiness tables as CSV files, then
builds all four flow diagrams and both radar pages from them. The CSVs
load back through the report, sankey, and schedule commands unchanged.

Written paths print to stdout.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoOutputDir, "output-dir", "", "directory for the demo files")
}

func runDemo(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output-dir") {
		s.OutputDir = demoOutputDir
	}

	out := cmd.OutOrStdout()
	depPath, readPath, err := sampledata.WriteCSVFiles(s.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, depPath)
	fmt.Fprintln(out, readPath)

	d := sampledata.Roadmap()
	flows, err := sankey.BuildAll(d, sankey.DefaultOptions())
	if err != nil {
		return err
	}
	for _, f := range flows {
		path, err := plotly.SankeyFile(s.OutputDir, f, plotly.DefaultRenderOptions())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
	}
	for _, axis := range []roadmap.Axis{roadmap.AxisDependency, roadmap.AxisReadiness} {
		opts := plotly.DefaultRadarOptions()
		opts.Axis = axis
		path, err := plotly.RadarFile(s.OutputDir, d, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
	}

	logger.Info("demo files written", zap.String("dir", s.OutputDir))
	return nil
}
