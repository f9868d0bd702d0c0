// Package report renders roadmap models as styled console text.
//
// # What
//
// Six writers, all deterministic over the model's insertion order:
//
//   - Sample: one mission (the first, or a named one) with each
//     capability's dependency and readiness levels.
//   - Full: every mission in the Sample layout.
//   - Table: one mission as an aligned capability/dependency/readiness
//     table.
//   - Summary: the mission list and the capability census.
//   - CapabilityAnalysis: the capability union with per-capability
//     mission usage counts.
//   - Heatmap: the capabilities x missions value matrix for one axis
//     (dependency or readiness), cells graded along a color ramp, "N/A"
//     where a cell carries only a substituted default.
//
// Styling uses lipgloss; on terminals without color support the output
// degrades to the same text unstyled, so content and alignment never
// depend on the color profile.
//
// # Errors
//
//   - ErrNilData: no model was supplied.
//   - roadmap.ErrMissionNotFound: a named mission is absent (propagated
//     from the lookup, so errors.Is matches).
//   - roadmap.ErrUnknownAxis: a heatmap axis other than
//     dependency/readiness.
//
// An empty model is not an error: every writer emits a short notice and
// returns nil, matching the query surface's tolerance of empty input.
//
// # Complexity
//
// Every writer is a single pass over the model: O(M*C) time, output
// proportional to the rendered text.
package report
