// Package levels defines the two closed rating scales of the roadmap
// workbooks: capability dependency (how critical a capability is to a
// mission, on [0.0, 1.0]) and technology readiness (maturity of the
// capability itself, on an integer ladder from 1 to 13).
//
// What:
//
//   - DependencyLevel pairs a numeric value with its DependencyBand, a
//     closed vocabulary of five rating bands from "Not Used" to "Mission
//     Critical" plus the "Not Applicable" default.
//   - ReadinessLevel pairs an integer rung with its canonical label, from
//     "Basic Principles" (1) up to "Sustainable System" (13).
//   - ParseDependency / ParseReadiness turn raw workbook cells into levels.
//     Cells arrive either as "value - label" ("0.8 - High") or as a bare
//     number; dependency cells may also hold the bare "Not Used" category.
//   - DefaultDependency / DefaultReadiness are the documented substitutes
//     for blank or unrecognized cells: (0.0, "Not Applicable") and
//     (0, "Unknown").
//
// Why:
//
//   - Workbook cells are free text; funnelling them through one parser with
//     one closed vocabulary makes "what counts as High" a table, not a
//     scattering of string comparisons.
//   - The numeric value decides the band. Label text inside a cell is
//     informative only, so "0.9 - Critical-ish" still lands in "High".
//
// Complexity: every operation is O(1); the vocabularies are fixed arrays.
//
// Errors: none. Parsing never fails; an unrecognized cell resolves to the
// default level with ok=false so callers can observe the substitution.
package levels
