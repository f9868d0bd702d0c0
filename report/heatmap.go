package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/roadmapflow/levels"
	"github.com/katalvlaran/roadmapflow/roadmap"
)

// minHeatColumn keeps mission columns wide enough for the widest cell
// text ("0.75", "N/A").
const minHeatColumn = 4

// Gradient endpoints of the roadmap brand ramp, blended in RGB space.
var (
	heatLow  = mustHex("#B8D232")
	heatHigh = mustHex("#231F20")
)

// Heatmap writes one capability-by-mission grid for the chosen axis.
// Rows are capabilities in first-seen order, columns are missions in
// header order. Cells show the raw level value on a background blended
// along the gradient; cells that carry only a substituted default, and
// pairs with no entry at all, show a muted "N/A".
//
// Errors: roadmap.ErrUnknownAxis; ErrNilData.
func Heatmap(w io.Writer, d *roadmap.RoadmapData, axis roadmap.Axis) error {
	if _, err := roadmap.ParseAxis(string(axis)); err != nil {
		return err
	}
	if d == nil {
		return ErrNilData
	}
	if d.MissionCount() == 0 {
		return writeNotice(w)
	}

	missions := d.Missions()
	caps := d.Capabilities()

	capWidth := 0
	for _, capName := range caps {
		if n := lipgloss.Width(capName); n > capWidth {
			capWidth = n
		}
	}
	colWidths := make([]int, len(missions))
	for i, m := range missions {
		colWidths[i] = lipgloss.Width(m.Name())
		if colWidths[i] < minHeatColumn {
			colWidths[i] = minHeatColumn
		}
	}

	var b strings.Builder
	writeHeader(&b, tableWidth, axisTitle(axis))
	b.WriteString(strings.Repeat(" ", capWidth))
	for i, m := range missions {
		b.WriteString(" " + missionStyle.Render(pad(m.Name(), colWidths[i])))
	}
	b.WriteByte('\n')
	for _, capName := range caps {
		b.WriteString(pad(capName, capWidth))
		for i, m := range missions {
			b.WriteString(" " + heatCell(m, capName, axis, colWidths[i]))
		}
		b.WriteByte('\n')
	}
	writeFooter(&b, tableWidth)
	_, err := io.WriteString(w, b.String())
	return err
}

func axisTitle(axis roadmap.Axis) string {
	if axis == roadmap.AxisDependency {
		return "Roadmap Dependency Heatmap"
	}
	return "Roadmap Readiness Heatmap"
}

// heatCell renders one grid cell: the level value over its gradient
// color. Absent entries and substituted defaults ("Not Applicable"
// dependencies, "Unknown" readiness) have no rateable value and render
// as "N/A".
func heatCell(m *roadmap.Mission, capability string, axis roadmap.Axis, width int) string {
	e, ok := m.Entry(capability)
	if !ok {
		return naCell(width)
	}
	var text string
	var t float64
	if axis == roadmap.AxisDependency {
		if e.Dependency.Band() == levels.BandNotApplicable {
			return naCell(width)
		}
		// The numeric half of the canonical "value - label" cell form.
		text, _, _ = strings.Cut(e.Dependency.String(), " - ")
		t = e.Dependency.Value()
	} else {
		if !e.Readiness.Known() {
			return naCell(width)
		}
		text = strconv.Itoa(e.Readiness.Value())
		t = float64(e.Readiness.Value()) / float64(levels.MaxReadiness)
	}
	cell := lipgloss.NewStyle().Background(heatColor(t)).Foreground(heatInk(t))
	return cell.Render(pad(text, width))
}

func naCell(width int) string {
	return labelStyle.Render(pad("N/A", width))
}

// heatColor blends the gradient at position t in [0, 1].
func heatColor(t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lipgloss.Color(heatLow.BlendRgb(heatHigh, t).Hex())
}

// heatInk keeps cell text readable: dark ink on the light half of the
// ramp, light ink on the dark half.
func heatInk(t float64) lipgloss.Color {
	if t < 0.5 {
		return colorInk
	}
	return lipgloss.Color("#EEEEEE")
}

// pad left-aligns s within width display cells.
func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
