package sankey

import (
	"github.com/katalvlaran/roadmapflow/levels"
	"github.com/katalvlaran/roadmapflow/roadmap"
)

// stage accumulates one diagram column: labels in first-seen order plus
// each label's position within the column.
type stage struct {
	group  NodeGroup
	labels []string
	pos    map[string]int
}

func newStage(group NodeGroup) *stage {
	return &stage{group: group, pos: make(map[string]int)}
}

// add records label at its first appearance and returns its column
// position; repeated labels keep their original position.
func (s *stage) add(label string) int {
	if p, ok := s.pos[label]; ok {
		return p
	}
	p := len(s.labels)
	s.labels = append(s.labels, label)
	s.pos[label] = p
	return p
}

func (s *stage) size() int { return len(s.labels) }

// linkCounter accumulates weights per (source, target) position pair,
// remembering the order in which pairs first appeared.
type linkCounter struct {
	order  [][2]int
	weight map[[2]int]float64
}

func newLinkCounter() *linkCounter {
	return &linkCounter{weight: make(map[[2]int]float64)}
}

// add folds w into the (src, dst) pair.
func (c *linkCounter) add(src, dst int, w float64) {
	k := [2]int{src, dst}
	if _, ok := c.weight[k]; !ok {
		c.order = append(c.order, k)
	}
	c.weight[k] += w
}

// links materializes the pairs in first-seen order, shifting stage
// positions into global node indices. Zero-weight pairs are dropped.
func (c *linkCounter) links(srcOffset, dstOffset int) []Link {
	out := make([]Link, 0, len(c.order))
	for _, k := range c.order {
		w := c.weight[k]
		if w <= 0 {
			continue
		}
		out = append(out, Link{Source: srcOffset + k[0], Target: dstOffset + k[1], Value: w})
	}
	return out
}

// assemble lays the stages out left to right into one FlowData and returns
// each stage's global index offset.
func assemble(typ FlowType, title string, stages ...*stage) (*FlowData, []int) {
	total := 0
	offsets := make([]int, len(stages))
	for i, s := range stages {
		offsets[i] = total
		total += s.size()
	}
	f := &FlowData{Type: typ, Title: title, Nodes: make([]Node, 0, total)}
	for _, s := range stages {
		for _, label := range s.labels {
			f.Nodes = append(f.Nodes, Node{Label: label, Group: s.group})
		}
	}
	return f, offsets
}

// missionWindow keeps the first max missions in header order; AllMissions
// keeps every mission.
func missionWindow(d *roadmap.RoadmapData, max int) []*roadmap.Mission {
	missions := d.Missions()
	if max != AllMissions && max < len(missions) {
		missions = missions[:max]
	}
	return missions
}

// qualifies reports whether an entry participates in a projection: its
// dependency must be an actual rating (not the "Not Applicable" default)
// and at least threshold. Explicit "Not Used" zeros do qualify at
// threshold 0; count-weighted flows show them, value-weighted flows drop
// them with the other zero weights.
func qualifies(e roadmap.CapabilityEntry, threshold float64) bool {
	return e.Dependency.Band() != levels.BandNotApplicable &&
		e.Dependency.Value() >= threshold
}
