package plotly

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/roadmapflow/sankey"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Trace structures mirror the plotly.js schema; html/template encodes
// them as JSON inside the page's script block.
type sankeyPage struct {
	Title  string
	Data   []sankeyTrace
	Layout pageLayout
}

type sankeyTrace struct {
	Type string     `json:"type"`
	Node sankeyNode `json:"node"`
	Link sankeyLink `json:"link"`
}

type sankeyNode struct {
	Pad       int      `json:"pad"`
	Thickness int      `json:"thickness"`
	Line      lineSpec `json:"line"`
	Label     []string `json:"label"`
	Color     []string `json:"color"`
}

type sankeyLink struct {
	Source        []int     `json:"source"`
	Target        []int     `json:"target"`
	Value         []float64 `json:"value"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

type lineSpec struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type pageLayout struct {
	Title  titleSpec `json:"title"`
	Font   fontSpec  `json:"font"`
	Height int       `json:"height"`
}

type titleSpec struct {
	Text string   `json:"text"`
	X    float64  `json:"x"`
	Font fontSpec `json:"font"`
}

type fontSpec struct {
	Size int `json:"size"`
}

const hoverTemplate = "<b>%{source.label}</b> to <b>%{target.label}</b><br>" +
	"Value: %{value}<br><extra></extra>"

// Label length limits per stage. Two-stage layouts have room for longer
// labels than three-stage ones; capabilities stay whole in two-stage
// layouts.
const (
	missionLabelWide   = 30
	missionLabelNarrow = 25
	capabilityLabel    = 20
)

// WriteSankey renders one flow projection as a self-contained HTML page
// (plotly.js from CDN). Node labels get their stage prefix and length
// limit here; the projection itself stays presentation-free.
//
// Errors: ErrNilFlow; ErrEmptyFlow when the projection has no nodes or
// no links.
func WriteSankey(w io.Writer, f *sankey.FlowData, opts RenderOptions) error {
	if f == nil {
		return ErrNilFlow
	}
	if len(f.Nodes) == 0 || len(f.Links) == 0 {
		return fmt.Errorf("%w: %s flow is empty", ErrEmptyFlow, f.Type)
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}

	labels := make([]string, len(f.Nodes))
	colors := make([]string, len(f.Nodes))
	for i, n := range f.Nodes {
		labels[i] = nodeLabel(f.Type, n)
		colors[i] = groupColors[n.Group]
	}
	src := make([]int, len(f.Links))
	dst := make([]int, len(f.Links))
	val := make([]float64, len(f.Links))
	for i, l := range f.Links {
		src[i], dst[i], val[i] = l.Source, l.Target, l.Value
	}

	title := resolveTitle(f, opts)
	page := sankeyPage{
		Title: title,
		Data: []sankeyTrace{{
			Type: "sankey",
			Node: sankeyNode{
				Pad:       15,
				Thickness: 20,
				Line:      lineSpec{Color: "black", Width: 0.5},
				Label:     labels,
				Color:     colors,
			},
			Link: sankeyLink{
				Source:        src,
				Target:        dst,
				Value:         val,
				HoverTemplate: hoverTemplate,
			},
		}},
		Layout: pageLayout{
			Title:  titleSpec{Text: title, X: 0.5, Font: fontSpec{Size: 16}},
			Font:   fontSpec{Size: 10},
			Height: height,
		},
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "sankey.html", page); err != nil {
		return fmt.Errorf("plotly: render sankey page: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// SankeyFile writes the projection to roadmap_sankey_<flow_type>.html
// under dir, creating the directory if needed. An empty dir means the
// working directory. Returns the written path.
func SankeyFile(dir string, f *sankey.FlowData, opts RenderOptions) (string, error) {
	if f == nil {
		return "", ErrNilFlow
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("plotly: create output dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("roadmap_sankey_%s.html", f.Type))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("plotly: create page file: %w", err)
	}
	if err := WriteSankey(file, f, opts); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("plotly: close page file: %w", err)
	}
	return path, nil
}

// nodeLabel prefixes a node with its stage name and clips long mission
// and capability names to the per-layout limits.
func nodeLabel(typ sankey.FlowType, n sankey.Node) string {
	threeStage := typ == sankey.FlowMissionToReadiness || typ == sankey.FlowDependencyFlow
	switch n.Group {
	case sankey.GroupMission:
		limit := missionLabelWide
		if threeStage {
			limit = missionLabelNarrow
		}
		return "Mission: " + truncate(n.Label, limit)
	case sankey.GroupCapability:
		if threeStage {
			return "Capability: " + truncate(n.Label, capabilityLabel)
		}
		return "Capability: " + n.Label
	case sankey.GroupReadiness:
		return "Readiness: " + n.Label
	case sankey.GroupDependency:
		return "Dependency: " + n.Label
	}
	return n.Label
}
