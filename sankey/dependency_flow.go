package sankey

import "github.com/katalvlaran/roadmapflow/roadmap"

// buildDependencyFlow groups entries by dependency band rather than by
// mission: bands, then capabilities, then readiness rungs, every weight an
// entry count. The band stage collapses values sharing a band ("0.8" and
// "0.9") into one categorical node.
func buildDependencyFlow(d *roadmap.RoadmapData, opts Options) *FlowData {
	missions := missionWindow(d, opts.MaxMissions)

	dStage := newStage(GroupDependency)
	cStage := newStage(GroupCapability)
	for _, capName := range d.Capabilities() {
		cStage.add(capName)
	}
	rStage := newStage(GroupReadiness)

	bandCounts := newLinkCounter()
	rungCounts := newLinkCounter()
	for _, m := range missions {
		for _, capName := range m.Capabilities() {
			e, _ := m.Entry(capName)
			if !qualifies(e, opts.MinDependency) {
				continue
			}
			capPos := cStage.pos[capName]
			bandCounts.add(dStage.add(e.Dependency.Label()), capPos, 1)
			if e.Readiness.Known() {
				rungCounts.add(capPos, rStage.add(e.Readiness.Label()), 1)
			}
		}
	}

	f, off := assemble(FlowDependencyFlow, opts.Title, dStage, cStage, rStage)
	f.Links = append(bandCounts.links(off[0], off[1]), rungCounts.links(off[1], off[2])...)
	return f
}
