// Package sankey projects a roadmap model into staged node/link lists
// ready for Sankey-diagram rendering.
//
// # What
//
// Four flow projections, selected by FlowType:
//
//   - FlowMissionToCapability ("mission_to_capability"): missions on the
//     left, capabilities on the right; one link per capability entry whose
//     dependency value passes the threshold, weighted by that value.
//   - FlowCapabilityToReadiness ("capability_to_readiness"): capabilities
//     to readiness rungs; link weight counts the missions whose entry for
//     the capability carries that rung.
//   - FlowMissionToReadiness ("mission_to_readiness"): the two projections
//     above composed over the same mission window, giving a three-stage
//     layout missions → capabilities → readiness.
//   - FlowDependencyFlow ("dependency_flow"): dependency bands →
//     capabilities → readiness rungs, all weights entry counts.
//
// The selector FlowAll ("all") is accepted by ParseFlowType and expands to
// the four projections via BuildAll; Build itself refuses it.
//
// # Determinism
//
// Node order within each stage is first-seen order from walking the model
// in its natural order (missions in header order, capabilities in row
// order), never alphabetical. Two builds over the same model yield
// identical FlowData. Links with zero weight are never emitted.
//
// # Filters
//
//   - Options.MinDependency: qualifying threshold on the dependency value,
//     in [0.0, 1.0], default 0.0.
//   - Options.MaxMissions: keep only the first N missions in header order;
//     AllMissions (0) keeps every mission.
//   - Options.Title: opaque text carried into FlowData for renderers.
//
// # Errors
//
//   - ErrUnknownFlowType: the selector is not one of the four projections
//     (Build also rejects FlowAll this way).
//   - ErrInvalidFilter: MinDependency outside [0.0, 1.0] or negative
//     MaxMissions.
//   - ErrNilData: no model was supplied.
//
// All errors are wrapped sentinels; test with errors.Is. On error no
// partial FlowData is returned.
//
// # Complexity
//
// Every projection is one or two passes over the model: O(M×C) time,
// O(M+C+R) memory for M missions, C capabilities, R distinct rungs.
package sankey
