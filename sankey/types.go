package sankey

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFlowType rejects selectors outside the four projections.
	ErrUnknownFlowType = errors.New("sankey: unknown flow type")

	// ErrInvalidFilter rejects out-of-domain filter values.
	ErrInvalidFilter = errors.New("sankey: invalid filter")

	// ErrNilData rejects a nil roadmap model.
	ErrNilData = errors.New("sankey: nil roadmap data")
)

// FlowType selects one of the four flow projections.
type FlowType string

const (
	// FlowMissionToCapability links missions to the capabilities they
	// depend on, weighted by dependency value.
	FlowMissionToCapability FlowType = "mission_to_capability"

	// FlowCapabilityToReadiness links capabilities to readiness rungs,
	// weighted by mission counts.
	FlowCapabilityToReadiness FlowType = "capability_to_readiness"

	// FlowMissionToReadiness composes the two projections above into a
	// three-stage layout.
	FlowMissionToReadiness FlowType = "mission_to_readiness"

	// FlowDependencyFlow links dependency bands to capabilities to
	// readiness rungs, weighted by entry counts.
	FlowDependencyFlow FlowType = "dependency_flow"

	// FlowAll is the selector meaning "each projection once". It is valid
	// for ParseFlowType and BuildAll, never for Build.
	FlowAll FlowType = "all"
)

// FlowTypes lists the four buildable projections in their fixed order.
func FlowTypes() []FlowType {
	return []FlowType{
		FlowMissionToCapability,
		FlowCapabilityToReadiness,
		FlowMissionToReadiness,
		FlowDependencyFlow,
	}
}

// ParseFlowType resolves a selector string to a FlowType, accepting the
// four projections plus FlowAll.
//
// Errors: ErrUnknownFlowType for anything else.
func ParseFlowType(s string) (FlowType, error) {
	switch FlowType(s) {
	case FlowMissionToCapability, FlowCapabilityToReadiness,
		FlowMissionToReadiness, FlowDependencyFlow, FlowAll:
		return FlowType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFlowType, s)
}

// NodeGroup tags which stage vocabulary a node belongs to.
type NodeGroup uint8

const (
	// GroupMission nodes carry mission names.
	GroupMission NodeGroup = iota
	// GroupCapability nodes carry capability names.
	GroupCapability
	// GroupReadiness nodes carry readiness rung labels.
	GroupReadiness
	// GroupDependency nodes carry dependency band labels.
	GroupDependency
)

// groupNames is indexed by NodeGroup.
var groupNames = [...]string{
	GroupMission:    "mission",
	GroupCapability: "capability",
	GroupReadiness:  "readiness",
	GroupDependency: "dependency",
}

// String names the group for logs and renderer traces.
func (g NodeGroup) String() string {
	if int(g) >= len(groupNames) {
		return "unknown"
	}
	return groupNames[g]
}

// Node is one labelled box of the diagram.
type Node struct {
	Label string
	Group NodeGroup
}

// Link is one weighted ribbon between two nodes, addressed by their
// indices into FlowData.Nodes. Value is always positive.
type Link struct {
	Source int
	Target int
	Value  float64
}

// FlowData is the complete projection result: nodes stage by stage, then
// every link. It is safe to render concurrently; nothing mutates it after
// Build returns.
type FlowData struct {
	Type  FlowType
	Title string
	Nodes []Node
	Links []Link
}

// NodesInGroup returns the labels of one stage, preserving node order.
func (f *FlowData) NodesInGroup(g NodeGroup) []string {
	var out []string
	for _, n := range f.Nodes {
		if n.Group == g {
			out = append(out, n.Label)
		}
	}
	return out
}

// AllMissions leaves the mission window unbounded.
const AllMissions = 0

// Options configures a projection build.
//   - MinDependency: qualifying threshold on dependency values, in
//     [0.0, 1.0].
//   - MaxMissions: keep the first N missions in header order; AllMissions
//     keeps every mission. Negative values are invalid.
//   - Title: opaque text for renderers, copied into FlowData.
type Options struct {
	MinDependency float64
	MaxMissions   int
	Title         string
}

// DefaultOptions returns the unfiltered configuration.
func DefaultOptions() Options {
	return Options{MinDependency: 0.0, MaxMissions: AllMissions}
}
