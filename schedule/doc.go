// Package schedule searches for a mission order that minimizes the
// cumulative cost of bringing capabilities up to flight readiness.
//
// # Cost model
//
// Missions are flown in some order. Each capability carries an attained
// readiness rung that starts at 0 and only ever rises. Flying a mission
// raises every capability it references to at least the entry's baseline
// readiness; capabilities whose dependency value reaches
// Options.Threshold must additionally reach Options.OperationalLevel.
// Each rung climbed costs one unit.
//
// Climbing early is not free: every mission also pays
// Options.PenaltyWeight per rung already attained across all
// capabilities when it launches. Deferring an upgrade until the mission
// that needs it therefore beats front-loading it, while the total rung
// sum itself is order-independent. With PenaltyWeight 0 every order
// costs the same and Cost degenerates to that constant rung sum.
//
// Cost is pure: same model, order, and options give the same float64.
//
// # Search
//
// Optimize runs deterministic first-improvement local search over mission
// permutations, swapping order positions pairwise and restarting the scan
// after every accepted move. The descent starts from the roadmap's own
// mission order; Options.Restarts additional descents start from seeded
// random permutations, each on an independent stream derived from
// Options.Seed (seed 0 selects a fixed default stream). The best order
// across all descents wins; ties keep the earlier start.
//
// # Errors
//
//   - ErrNilData: no model was supplied.
//   - ErrNoMissions: the model holds no missions to order.
//   - ErrBadThreshold: an Options field is outside its valid range.
//   - ErrBadPermutation: the order passed to Cost does not permute
//     0..MissionCount-1.
//
// All errors are wrapped sentinels; test with errors.Is.
//
// # Complexity
//
// One cost evaluation is O(n+E) for n missions and E total capability
// entries. A descent checks O(n^2) candidate swaps per accepted move,
// each a full evaluation, so Optimize runs in O(restarts*moves*n^2*(n+E))
// time and O(n+C) memory for C distinct capabilities. Roadmaps hold tens
// of missions, so exhaustive swap neighborhoods stay cheap.
package schedule
