package sankey

import "github.com/katalvlaran/roadmapflow/roadmap"

// buildMissionToCapability projects missions onto the capabilities they
// depend on: one link per qualifying entry, weighted by the dependency
// value itself.
//
// Stages:
//   - missions: the window, in header order, links or not;
//   - capabilities: the full distinct union, so renders stay column-stable
//     across filter settings.
func buildMissionToCapability(d *roadmap.RoadmapData, opts Options) *FlowData {
	missions := missionWindow(d, opts.MaxMissions)

	mStage := newStage(GroupMission)
	for _, m := range missions {
		mStage.add(m.Name())
	}
	cStage := newStage(GroupCapability)
	for _, capName := range d.Capabilities() {
		cStage.add(capName)
	}

	flows := newLinkCounter()
	for _, m := range missions {
		src := mStage.pos[m.Name()]
		for _, capName := range m.Capabilities() {
			e, _ := m.Entry(capName)
			if !qualifies(e, opts.MinDependency) {
				continue
			}
			flows.add(src, cStage.pos[capName], e.Dependency.Value())
		}
	}

	f, off := assemble(FlowMissionToCapability, opts.Title, mStage, cStage)
	f.Links = flows.links(off[0], off[1])
	return f
}
