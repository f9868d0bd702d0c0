package plotly

import (
	"errors"

	"github.com/katalvlaran/roadmapflow/roadmap"
	"github.com/katalvlaran/roadmapflow/sankey"
)

var (
	// ErrNilFlow rejects a nil flow projection.
	ErrNilFlow = errors.New("plotly: flow data is nil")

	// ErrNilData rejects a nil roadmap model.
	ErrNilData = errors.New("plotly: roadmap data is nil")

	// ErrEmptyFlow reports a projection or model with nothing to draw.
	ErrEmptyFlow = errors.New("plotly: nothing to draw")
)

// defaultHeight is the chart height in pixels when none is configured.
const defaultHeight = 600

// defaultMissionsPerChart bounds how many radar traces share one chart.
const defaultMissionsPerChart = 6

// RenderOptions configures a sankey page.
//   - Title: page and chart title. Empty falls back to the projection's
//     own title, then to the per-flow-type default.
//   - Height: chart height in pixels; non-positive means the default.
type RenderOptions struct {
	Title  string
	Height int
}

// DefaultRenderOptions returns the standard page configuration.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Height: defaultHeight}
}

// RadarOptions configures a radar page.
//   - Axis: which value plane the traces read.
//   - MissionsPerChart: traces per chart before a new chart starts;
//     non-positive means the default of 6.
//   - Title: page title. Empty means the per-axis default.
type RadarOptions struct {
	Axis             roadmap.Axis
	MissionsPerChart int
	Title            string
}

// DefaultRadarOptions returns the standard radar configuration.
func DefaultRadarOptions() RadarOptions {
	return RadarOptions{Axis: roadmap.AxisDependency, MissionsPerChart: defaultMissionsPerChart}
}

// groupColors assigns each node stage its brand color.
var groupColors = map[sankey.NodeGroup]string{
	sankey.GroupMission:    "#b8d232",
	sankey.GroupCapability: "#7fb069",
	sankey.GroupReadiness:  "#4db6ac",
	sankey.GroupDependency: "#b8d232",
}

// tracePalette colors radar traces, cycling when a chart holds more
// missions than colors.
var tracePalette = []string{
	"#b8d232", "#4db6ac", "#e57373", "#ffd54f", "#ff8a65", "#29434e",
}

// flowTitles holds the default chart title per projection.
var flowTitles = map[sankey.FlowType]string{
	sankey.FlowMissionToCapability:   "Roadmap: Mission to Capability Flow",
	sankey.FlowCapabilityToReadiness: "Roadmap: Capability to Readiness Flow",
	sankey.FlowMissionToReadiness:    "Roadmap: Mission to Capability to Readiness Flow",
	sankey.FlowDependencyFlow:        "Roadmap: Dependency to Capability to Readiness Flow",
}

// resolveTitle picks the sankey page title: explicit option, then the
// projection's carried title, then the per-type default.
func resolveTitle(f *sankey.FlowData, opts RenderOptions) string {
	if opts.Title != "" {
		return opts.Title
	}
	if f.Title != "" {
		return f.Title
	}
	if t, ok := flowTitles[f.Type]; ok {
		return t
	}
	return "Roadmap: Data Flow"
}

// truncate clips s to at most limit runes, marking the cut with an
// ellipsis. A non-positive limit keeps s whole.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
