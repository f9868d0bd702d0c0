package sankey

import "github.com/katalvlaran/roadmapflow/roadmap"

// buildMissionToReadiness composes the mission→capability and
// capability→readiness projections over one shared mission window into a
// three-stage layout. The first block of links carries dependency values,
// the second block carries rung counts.
func buildMissionToReadiness(d *roadmap.RoadmapData, opts Options) *FlowData {
	missions := missionWindow(d, opts.MaxMissions)

	mStage := newStage(GroupMission)
	for _, m := range missions {
		mStage.add(m.Name())
	}
	cStage := newStage(GroupCapability)
	for _, capName := range d.Capabilities() {
		cStage.add(capName)
	}
	rStage := newStage(GroupReadiness)

	depFlows := newLinkCounter()
	rungCounts := newLinkCounter()
	for _, m := range missions {
		src := mStage.pos[m.Name()]
		for _, capName := range m.Capabilities() {
			e, _ := m.Entry(capName)
			if !qualifies(e, opts.MinDependency) {
				continue
			}
			capPos := cStage.pos[capName]
			depFlows.add(src, capPos, e.Dependency.Value())
			if e.Readiness.Known() {
				rungCounts.add(capPos, rStage.add(e.Readiness.Label()), 1)
			}
		}
	}

	f, off := assemble(FlowMissionToReadiness, opts.Title, mStage, cStage, rStage)
	f.Links = append(depFlows.links(off[0], off[1]), rungCounts.links(off[1], off[2])...)
	return f
}
