package roadmap

import (
	"fmt"

	"github.com/katalvlaran/roadmapflow/levels"
)

// Name returns the mission's name.
func (m *Mission) Name() string { return m.name }

// Capabilities returns the mission's capability names in source row order.
func (m *Mission) Capabilities() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Entry returns the capability's entry and whether it exists.
func (m *Mission) Entry(capability string) (CapabilityEntry, bool) {
	e, ok := m.entries[capability]
	return e, ok
}

// EntryCount reports the number of capability entries.
func (m *Mission) EntryCount() int { return len(m.order) }

// CriticalCapabilities returns, in row order, the capabilities whose
// dependency band is "Mission Critical".
func (m *Mission) CriticalCapabilities() []string {
	return m.selectCapabilities(func(e CapabilityEntry) bool {
		return e.Dependency.Band() == levels.BandMissionCritical
	})
}

// UnusedCapabilities returns, in row order, the capabilities this mission
// does not actually use ("Not Used" cells and defaulted blanks).
func (m *Mission) UnusedCapabilities() []string {
	return m.selectCapabilities(func(e CapabilityEntry) bool {
		return !e.Dependency.Used()
	})
}

func (m *Mission) selectCapabilities(keep func(CapabilityEntry) bool) []string {
	var out []string
	for _, capName := range m.order {
		if keep(m.entries[capName]) {
			out = append(out, capName)
		}
	}
	return out
}

// MissionCount reports the number of missions.
func (d *RoadmapData) MissionCount() int { return len(d.order) }

// MissionNames returns the mission names in header order.
func (d *RoadmapData) MissionNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Missions returns the missions in header order.
func (d *RoadmapData) Missions() []*Mission {
	out := make([]*Mission, len(d.order))
	for i, name := range d.order {
		out[i] = d.missions[name]
	}
	return out
}

// MissionByName looks a mission up by its exact name.
//
// Errors: ErrMissionNotFound when no mission carries that name.
func (d *RoadmapData) MissionByName(name string) (*Mission, error) {
	m, ok := d.missions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissionNotFound, name)
	}
	return m, nil
}

// Capabilities returns the distinct capability union across all missions,
// in first-seen order.
func (d *RoadmapData) Capabilities() []string {
	out := make([]string, len(d.caps))
	copy(out, d.caps)
	return out
}

// UsageCount reports how many missions carry an entry for the capability,
// whatever its dependency level.
func (d *RoadmapData) UsageCount(capability string) int {
	n := 0
	for _, name := range d.order {
		if _, ok := d.missions[name].entries[capability]; ok {
			n++
		}
	}
	return n
}

// MissionsUsing returns, in header order, the missions that actually use
// the capability, i.e. whose entry sits above "Not Used".
func (d *RoadmapData) MissionsUsing(capability string) []string {
	var out []string
	for _, name := range d.order {
		if e, ok := d.missions[name].entries[capability]; ok && e.Dependency.Used() {
			out = append(out, name)
		}
	}
	return out
}

// CapabilityUsage pairs a capability with the number of missions carrying
// an entry for it.
type CapabilityUsage struct {
	Capability string
	Missions   int
}

// UsageStats returns one CapabilityUsage per distinct capability, in
// first-seen order.
func (d *RoadmapData) UsageStats() []CapabilityUsage {
	out := make([]CapabilityUsage, len(d.caps))
	for i, capName := range d.caps {
		out[i] = CapabilityUsage{Capability: capName, Missions: d.UsageCount(capName)}
	}
	return out
}

// TotalEntries reports the capability-entry count summed over all missions.
func (d *RoadmapData) TotalEntries() int {
	n := 0
	for _, name := range d.order {
		n += d.missions[name].EntryCount()
	}
	return n
}

// AverageEntriesPerMission reports TotalEntries over MissionCount, or 0
// for an empty model.
func (d *RoadmapData) AverageEntriesPerMission() float64 {
	if len(d.order) == 0 {
		return 0
	}
	return float64(d.TotalEntries()) / float64(len(d.order))
}
