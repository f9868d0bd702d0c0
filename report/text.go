package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadmapflow/roadmap"
)

// Sample writes one mission's capability entries between banners. An empty
// mission name selects the first mission in header order.
//
// Errors: ErrNilData; roadmap.ErrMissionNotFound for an unknown name.
func Sample(w io.Writer, d *roadmap.RoadmapData, mission string) error {
	m, err := resolveMission(w, d, mission)
	if err != nil || m == nil {
		return err
	}

	var b strings.Builder
	writeHeader(&b, sampleWidth, "ROADMAP SAMPLE")
	b.WriteByte('\n')
	b.WriteString(missionStyle.Render("Mission: "+m.Name()) + "\n")
	b.WriteString(dash(sampleWidth) + "\n")
	for _, capName := range m.Capabilities() {
		e, _ := m.Entry(capName)
		writeEntry(&b, "", e)
	}
	writeFooter(&b, sampleWidth)
	_, err = io.WriteString(w, b.String())
	return err
}

// Full writes every mission and every capability entry, numbered in header
// order.
//
// Errors: ErrNilData.
func Full(w io.Writer, d *roadmap.RoadmapData) error {
	if d == nil {
		return ErrNilData
	}
	if d.MissionCount() == 0 {
		return writeNotice(w)
	}

	var b strings.Builder
	writeHeader(&b, fullWidth, "FULL ROADMAP")
	for i, m := range d.Missions() {
		b.WriteByte('\n')
		b.WriteString(missionStyle.Render(fmt.Sprintf("Mission %d: %s", i+1, m.Name())) + "\n")
		b.WriteString(dash(fullWidth) + "\n")
		for _, capName := range m.Capabilities() {
			e, _ := m.Entry(capName)
			writeEntry(&b, "  ", e)
		}
	}
	writeFooter(&b, fullWidth)
	_, err := io.WriteString(w, b.String())
	return err
}

// Table writes one mission as a fixed-width three column table. An empty
// mission name selects the first mission in header order. Level strings
// longer than the level columns are clipped.
//
// Errors: ErrNilData; roadmap.ErrMissionNotFound for an unknown name.
func Table(w io.Writer, d *roadmap.RoadmapData, mission string) error {
	m, err := resolveMission(w, d, mission)
	if err != nil || m == nil {
		return err
	}

	var b strings.Builder
	writeHeader(&b, tableWidth, "ROADMAP TABLE: "+m.Name())
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s %-*s %-*s",
		capabilityColumn, "CAPABILITY", levelColumn, "DEPENDENCY", levelColumn, "READINESS")) + "\n")
	b.WriteString(dash(tableWidth) + "\n")
	for _, capName := range m.Capabilities() {
		e, _ := m.Entry(capName)
		b.WriteString(fmt.Sprintf("%-*s %-*s %-*s\n",
			capabilityColumn, capName,
			levelColumn, clip(e.Dependency.String(), levelClip),
			levelColumn, clip(e.Readiness.String(), levelClip)))
	}
	b.WriteString(rule(tableWidth) + "\n")
	_, err = io.WriteString(w, b.String())
	return err
}

// Summary writes mission and capability counts plus both name lists.
//
// Errors: ErrNilData.
func Summary(w io.Writer, d *roadmap.RoadmapData) error {
	if d == nil {
		return ErrNilData
	}
	if d.MissionCount() == 0 {
		return writeNotice(w)
	}

	caps := d.Capabilities()
	var b strings.Builder
	writeHeader(&b, sampleWidth, "ROADMAP SUMMARY")
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Missions: %d   Capabilities: %d   Entries: %d   Avg per mission: %.1f\n",
		d.MissionCount(), len(caps), d.TotalEntries(), d.AverageEntriesPerMission())

	b.WriteString("\n" + labelStyle.Render("Missions:") + "\n")
	for i, m := range d.Missions() {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, m.Name())
		fmt.Fprintf(&b, "      └─ Capabilities: %d\n", m.EntryCount())
	}

	b.WriteString("\n" + labelStyle.Render(fmt.Sprintf("Capabilities (%d total):", len(caps))) + "\n")
	for i, capName := range caps {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, capName)
	}
	writeFooter(&b, sampleWidth)
	_, err := io.WriteString(w, b.String())
	return err
}

// CapabilityAnalysis writes the distinct capability list with each
// capability's mission usage count.
//
// Errors: ErrNilData.
func CapabilityAnalysis(w io.Writer, d *roadmap.RoadmapData) error {
	if d == nil {
		return ErrNilData
	}
	if d.MissionCount() == 0 {
		return writeNotice(w)
	}

	stats := d.UsageStats()
	var b strings.Builder
	writeHeader(&b, fullWidth, "CAPABILITY ANALYSIS")
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Distinct capabilities: %d\n", len(stats))
	b.WriteByte('\n')
	for i, s := range stats {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, s.Capability)
		fmt.Fprintf(&b, "      └─ Used in %d of %d mission(s)\n",
			len(d.MissionsUsing(s.Capability)), s.Missions)
	}
	writeFooter(&b, fullWidth)
	_, err := io.WriteString(w, b.String())
	return err
}

// resolveMission validates d, resolves the mission selector and, for an
// empty model, writes the notice. A nil mission with a nil error means the
// notice was written and the caller has nothing left to do.
func resolveMission(w io.Writer, d *roadmap.RoadmapData, mission string) (*roadmap.Mission, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if d.MissionCount() == 0 {
		return nil, writeNotice(w)
	}
	if mission == "" {
		mission = d.MissionNames()[0]
	}
	return d.MissionByName(mission)
}

func writeHeader(b *strings.Builder, width int, title string) {
	b.WriteString(rule(width) + "\n")
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(rule(width) + "\n")
}

func writeFooter(b *strings.Builder, width int) {
	b.WriteByte('\n')
	b.WriteString(rule(width) + "\n")
}

// writeEntry renders one capability block with its two level sub-lines.
func writeEntry(b *strings.Builder, indent string, e roadmap.CapabilityEntry) {
	b.WriteByte('\n')
	b.WriteString(indent + capStyle.Render(e.Capability) + "\n")
	b.WriteString(indent + "   " + labelStyle.Render("└─ Dependency:") + "  " + e.Dependency.String() + "\n")
	b.WriteString(indent + "   " + labelStyle.Render("└─ Readiness:") + "   " + e.Readiness.String() + "\n")
}

func writeNotice(w io.Writer) error {
	_, err := io.WriteString(w, noticeStyle.Render("no roadmap data to display")+"\n")
	return err
}

// clip truncates s to at most max bytes. Level strings are ASCII, so byte
// truncation never splits a rune.
func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
