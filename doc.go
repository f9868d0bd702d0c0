// Package roadmapflow reads capability roadmap workbooks and turns them
// into reports, flow diagrams, and mission schedules.
//
// 🚀 What is roadmapflow?
//
//	A small, deterministic toolkit that brings together:
//		• CSV grids: workbook-convention loading (header at row 2, labels in column 0)
//		• Levels: the closed dependency-band and readiness-rung vocabularies
//		• Roadmap: two tables combined into one immutable, ordered model
//		• Reports: sample, full, table, summary, capability census, heatmap
//		• Sankey: four weighted flow projections over the model
//		• Plotly: self-contained HTML pages for flow and radar charts
//		• Schedule: permutation search for cheap mission orderings
//
// ✨ Why choose roadmapflow?
//
//   - Deterministic by construction: same tables in, same bytes out
//   - Forgiving input: blank or odd cells become documented defaults, never crashes
//   - Observable: every substituted cell can be captured as an event
//   - Small surface: plain structs, explicit errors, no global state
//
// Under the hood, everything is organized under flat subpackages:
//
//	csvgrid/    workbook-convention CSV loading
//	levels/     dependency bands & readiness rungs
//	roadmap/    the combined model + query surface
//	sankey/     flow projections (staged nodes, weighted links)
//	plotly/     HTML chart pages for flows and radars
//	report/     console renderers
//	schedule/   mission-order optimization
//	sampledata/ deterministic demo dataset
//	cmd/        the roadmapflow CLI
//
// Quick ASCII example:
//
//	Mission A ──▶ Inspection ──▶ 13 - Sustainable System
//	          ╲─▶ Docking    ──▶  9 - System Qualification
//
//	one mission flowing through its capabilities to their readiness rungs.
//
//	go get github.com/katalvlaran/roadmapflow
package roadmapflow
