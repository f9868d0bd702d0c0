package roadmap

import (
	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/levels"
)

// Combine joins a dependency grid and a readiness grid into one
// RoadmapData.
//
// Rules:
//   - The dependency grid is authoritative: its header row fixes the
//     mission set and order, its rows fix each mission's capability set
//     and order. Readiness-only missions or capabilities are dropped.
//   - Each (mission, capability) cell parses through the levels package;
//     blank, absent, or unrecognized cells become the documented defaults
//     and raise one DefaultingEvent on the configured observers.
//   - Duplicate capability rows (or duplicate header names) keep their
//     first position and their last value.
//
// The result is fully built or not at all; Combine never returns a
// partially populated model.
func Combine(dep, read *csvgrid.Grid, opts ...Option) (*RoadmapData, error) {
	if dep == nil || read == nil {
		return nil, ErrNilGrid
	}
	var cfg combineOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	readiness := indexCells(read)

	data := &RoadmapData{missions: make(map[string]*Mission)}
	depRows := dep.Rows()
	for col, name := range dep.Header() {
		m := &Mission{
			name:    name,
			entries: make(map[string]CapabilityEntry, len(depRows)),
		}
		for _, row := range depRows {
			var rawDep string
			if col < len(row.Values) {
				rawDep = row.Values[col]
			}
			dl, ok := levels.ParseDependency(rawDep)
			if !ok {
				cfg.emit(DefaultingEvent{
					Kind: DefaultedDependency, Mission: name, Capability: row.Label, Raw: rawDep,
				})
			}

			rawRead := readiness[name][row.Label]
			rl, ok := levels.ParseReadiness(rawRead)
			if !ok {
				cfg.emit(DefaultingEvent{
					Kind: DefaultedReadiness, Mission: name, Capability: row.Label, Raw: rawRead,
				})
			}

			if _, seen := m.entries[row.Label]; !seen {
				m.order = append(m.order, row.Label)
			}
			m.entries[row.Label] = CapabilityEntry{
				Capability: row.Label,
				Dependency: dl,
				Readiness:  rl,
			}
		}
		if _, seen := data.missions[name]; !seen {
			data.order = append(data.order, name)
		}
		data.missions[name] = m
	}

	data.caps = distinctCapabilities(data)
	return data, nil
}

// indexCells flattens a grid into mission→capability→raw-cell lookups.
// Cells beyond a row's width simply stay absent.
func indexCells(g *csvgrid.Grid) map[string]map[string]string {
	missions := g.Header()
	out := make(map[string]map[string]string, len(missions))
	for _, name := range missions {
		out[name] = make(map[string]string)
	}
	for _, row := range g.Rows() {
		for col, name := range missions {
			if col >= len(row.Values) {
				break
			}
			out[name][row.Label] = row.Values[col]
		}
	}
	return out
}

// distinctCapabilities walks missions in order and collects the capability
// union, keeping each name at its first appearance.
func distinctCapabilities(d *RoadmapData) []string {
	seen := make(map[string]struct{})
	var union []string
	for _, name := range d.order {
		for _, capName := range d.missions[name].order {
			if _, dup := seen[capName]; dup {
				continue
			}
			seen[capName] = struct{}{}
			union = append(union, capName)
		}
	}
	return union
}
