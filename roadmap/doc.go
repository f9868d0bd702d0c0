// Package roadmap joins the two roadmap grids (capability dependency,
// technology readiness) into one immutable in-memory model and exposes the
// query surface the renderers read from.
//
// What:
//
//   - Combine builds a RoadmapData from a dependency grid and a readiness
//     grid, matching cells on the exact (mission, capability) pair.
//   - RoadmapData owns the missions in header order; each Mission owns its
//     capability entries in row order. Everything is read-only after
//     Combine returns, and every accessor hands out fresh copies.
//   - Queries: mission and entry counts, the distinct capability union,
//     per-capability usage, and exact-name mission lookup.
//   - Axis names the two value planes (dependency, readiness) for the
//     exports and renderers that read one plane at a time.
//
// Why:
//
//   - The dependency grid defines the universe. Missions or capabilities
//     that appear only in the readiness grid are dropped, because
//     dependency is the planning axis the roadmap is built around.
//   - Cells that fail to parse degrade to the documented defaults
//     ((0.0, "Not Applicable") and (0, "Unknown")) instead of aborting;
//     each substitution is reported to the configured observer, so a run
//     is never silently lossy.
//   - Names join on exact string equality after trimming. Spelling drift
//     between the two files is a data problem this package surfaces (via
//     defaults), not one it papers over with fuzzy matching.
//
// Complexity:
//
//   - Combine: O(M×C) for M missions and C capability rows.
//   - Queries: O(1) to O(M×C); the capability union is memoized at
//     construction since every renderer asks for it.
//
// Options:
//
//   - WithDefaultObserver(fn): receive one DefaultingEvent per substituted
//     cell. Observers may be stacked; events arrive in cell order.
//
// Errors:
//
//   - ErrNilGrid: Combine was handed a nil grid.
//   - ErrMissionNotFound: MissionByName miss; check with errors.Is.
//   - ErrUnknownAxis: ParseAxis rejected the selector.
//
// See the sankey package for the flow projections built on this model.
package roadmap
