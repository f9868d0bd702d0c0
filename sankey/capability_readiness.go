package sankey

import "github.com/katalvlaran/roadmapflow/roadmap"

// buildCapabilityToReadiness aggregates, per capability, how many mission
// entries inside the window sit on each readiness rung. Weight is that
// count.
//
// Rungs appear as nodes only when some qualifying entry carries them, in
// first-seen order of the walk; entries with unknown readiness contribute
// nothing.
func buildCapabilityToReadiness(d *roadmap.RoadmapData, opts Options) *FlowData {
	missions := missionWindow(d, opts.MaxMissions)

	cStage := newStage(GroupCapability)
	for _, capName := range d.Capabilities() {
		cStage.add(capName)
	}
	rStage := newStage(GroupReadiness)

	counts := newLinkCounter()
	for _, m := range missions {
		for _, capName := range m.Capabilities() {
			e, _ := m.Entry(capName)
			if !qualifies(e, opts.MinDependency) || !e.Readiness.Known() {
				continue
			}
			counts.add(cStage.pos[capName], rStage.add(e.Readiness.Label()), 1)
		}
	}

	f, off := assemble(FlowCapabilityToReadiness, opts.Title, cStage, rStage)
	f.Links = counts.links(off[0], off[1])
	return f
}
