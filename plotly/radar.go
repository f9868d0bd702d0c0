package plotly

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/roadmapflow/levels"
	"github.com/katalvlaran/roadmapflow/roadmap"
)

type radarPage struct {
	Title  string
	Charts []radarChart
}

type radarChart struct {
	DivID  string
	Data   []radarTrace
	Layout radarLayout
}

type radarTrace struct {
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	R         []float64 `json:"r"`
	Theta     []string  `json:"theta"`
	Fill      string    `json:"fill"`
	FillColor string    `json:"fillcolor"`
	Line      lineSpec  `json:"line"`
}

type radarLayout struct {
	Title  titleSpec `json:"title"`
	Polar  polarSpec `json:"polar"`
	Height int       `json:"height"`
}

type polarSpec struct {
	RadialAxis radialAxis `json:"radialaxis"`
}

type radialAxis struct {
	Range          []float64 `json:"range"`
	ShowTickLabels bool      `json:"showticklabels"`
}

// WriteRadar renders the model as polar charts, one trace per mission
// over the capability union, chunked into a new chart every
// MissionsPerChart missions. All charts share one self-contained page.
//
// Errors: ErrNilData; roadmap.ErrUnknownAxis; ErrEmptyFlow when the
// model has no missions or no capabilities.
func WriteRadar(w io.Writer, d *roadmap.RoadmapData, opts RadarOptions) error {
	if d == nil {
		return ErrNilData
	}
	if _, err := roadmap.ParseAxis(string(opts.Axis)); err != nil {
		return err
	}
	caps := d.Capabilities()
	if d.MissionCount() == 0 || len(caps) == 0 {
		return fmt.Errorf("%w: model has no missions or capabilities", ErrEmptyFlow)
	}
	perChart := opts.MissionsPerChart
	if perChart <= 0 {
		perChart = defaultMissionsPerChart
	}

	theta := make([]string, 0, len(caps)+1)
	for _, capName := range caps {
		theta = append(theta, truncate(capName, capabilityLabel))
	}
	theta = append(theta, theta[0]) // close the trace loop

	missions := d.Missions()
	charts := make([]radarChart, 0, (len(missions)+perChart-1)/perChart)
	for start := 0; start < len(missions); start += perChart {
		end := start + perChart
		if end > len(missions) {
			end = len(missions)
		}
		traces := make([]radarTrace, 0, end-start)
		for i, m := range missions[start:end] {
			color := tracePalette[(start+i)%len(tracePalette)]
			traces = append(traces, radarTrace{
				Type:      "scatterpolar",
				Name:      m.Name(),
				R:         radialValues(m, caps, opts.Axis),
				Theta:     theta,
				Fill:      "toself",
				FillColor: color + "2e",
				Line:      lineSpec{Color: color, Width: 2},
			})
		}
		charts = append(charts, radarChart{
			DivID: fmt.Sprintf("radar-%d", len(charts)+1),
			Data:  traces,
			Layout: radarLayout{
				Title: titleSpec{
					Text: fmt.Sprintf("Roadmap %s Radar Chart (%d-%d)", axisName(opts.Axis), start+1, end),
					X:    0.5,
					Font: fontSpec{Size: 16},
				},
				Polar:  polarSpec{RadialAxis: radialAxis{Range: axisRange(opts.Axis), ShowTickLabels: false}},
				Height: defaultHeight,
			},
		})
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("Roadmap %s Radar", axisName(opts.Axis))
	}
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "radar.html", radarPage{Title: title, Charts: charts}); err != nil {
		return fmt.Errorf("plotly: render radar page: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// RadarFile writes the radar page to roadmap_<axis>_radar.html under
// dir, creating the directory if needed. An empty dir means the working
// directory. Returns the written path.
func RadarFile(dir string, d *roadmap.RoadmapData, opts RadarOptions) (string, error) {
	if d == nil {
		return "", ErrNilData
	}
	if _, err := roadmap.ParseAxis(string(opts.Axis)); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("plotly: create output dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("roadmap_%s_radar.html", opts.Axis))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("plotly: create page file: %w", err)
	}
	if err := WriteRadar(file, d, opts); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("plotly: close page file: %w", err)
	}
	return path, nil
}

// radialValues reads one mission's values over the capability union,
// repeating the first value to close the trace loop. Capabilities the
// mission does not carry read as 0.
func radialValues(m *roadmap.Mission, caps []string, axis roadmap.Axis) []float64 {
	out := make([]float64, 0, len(caps)+1)
	for _, capName := range caps {
		var v float64
		if e, ok := m.Entry(capName); ok {
			if axis == roadmap.AxisDependency {
				v = e.Dependency.Value()
			} else {
				v = float64(e.Readiness.Value())
			}
		}
		out = append(out, v)
	}
	return append(out, out[0])
}

func axisName(axis roadmap.Axis) string {
	if axis == roadmap.AxisDependency {
		return "Dependency"
	}
	return "Readiness"
}

// axisRange fixes the radial scale per axis so traces are comparable
// across charts; the small negative floor keeps zero-valued traces
// visible off the center point.
func axisRange(axis roadmap.Axis) []float64 {
	if axis == roadmap.AxisDependency {
		return []float64{-0.1, 1}
	}
	return []float64{-0.1, float64(levels.MaxReadiness)}
}
