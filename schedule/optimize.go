// Package schedule - mission-order search engine.
//
// Optimize runs deterministic first-improvement local search over the
// pairwise-swap neighborhood of a mission permutation:
//   - Candidate move: swap positions (i,j), 0 <= i < j < n.
//   - Acceptance: strict improvement beyond improveEps; the scan restarts
//     from (0,1) after every accepted move.
//   - Candidate pricing is a full re-evaluation: attained rungs accumulate
//     across the whole order, so a swap has no closed-form delta. One
//     evaluation is O(n+E) on the compiled model, cheap at roadmap scale.
//
// Multi-start: descent 0 begins at the roadmap's own mission order, then
// Options.Restarts descents begin at seeded random permutations, one
// independent RNG stream per restart. Ties keep the earlier descent, so
// results are stable under restart-count growth.
//
// Complexity: O(n^2) candidate checks per accepted move, each O(n+E);
// O(n+C) extra space beyond the compiled model.
package schedule

import "github.com/katalvlaran/roadmapflow/roadmap"

// improveEps is the strict-improvement tolerance. Acceptance requires
// cost to drop by more than this, which keeps float noise from cycling
// the search.
const improveEps = 1e-9

// Optimize searches for the cheapest mission order under the
// readiness-progression model and returns it with its cost.
//
// Errors: ErrNilData, ErrNoMissions, ErrBadThreshold.
//
// Complexity: O(Restarts * moves * n^2 * (n+E)) worst case; mission
// counts are small, so descents converge in a handful of moves.
func Optimize(d *roadmap.RoadmapData, opts Options) (Result, error) {
	// Stages 1-2 of validateAll; orders are generated, never supplied.
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	n, err := validateData(d)
	if err != nil {
		return Result{}, err
	}

	cm := compile(d, opts)

	// Descent 0: the roadmap's own mission order.
	best, bestCost := descend(cm, identityOrder(n), opts.MaxIters)

	// Seeded restarts, each on an independent derived stream.
	var (
		base  = rngFromSeed(opts.Seed)
		r     int
		order []int
		cost  float64
	)
	for r = 1; r <= opts.Restarts; r++ {
		order, cost = descend(cm, randomOrder(n, streamRNG(base, uint64(r))), opts.MaxIters)
		if cost < bestCost-improveEps {
			best, bestCost = order, cost
		}
	}

	// Resolve indices into names for the caller.
	var (
		names = d.MissionNames()
		visit = make([]string, n)
		i     int
		idx   int
	)
	for i, idx = range best {
		visit[i] = names[idx]
	}

	return Result{Order: best, Missions: visit, Cost: roundCost(bestCost)}, nil
}

// identityOrder returns the permutation 0..n-1.
//
// Complexity: O(n).
func identityOrder(n int) []int {
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// descend runs first-improvement pairwise-swap local search from start
// until a local optimum or the accepted-move cap. It owns start and
// returns it improved in place together with its final cost.
// maxIters 0 means unlimited.
func descend(cm *costModel, start []int, maxIters int) ([]int, float64) {
	var (
		cur      = start
		cost     = cm.evaluate(cur)
		n        = len(cur)
		accepted int
	)

	for {
		improved := false

		var (
			i    int
			j    int
			cand float64
		)
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				// Probe the swap, price it, keep or revert.
				cur[i], cur[j] = cur[j], cur[i]
				cand = cm.evaluate(cur)
				if cand < cost-improveEps {
					cost = cand
					accepted++
					improved = true

					if maxIters > 0 && accepted >= maxIters {
						return cur, cost
					}

					// First-improvement policy: restart the scan.
					break
				}
				cur[i], cur[j] = cur[j], cur[i]
			}
			if improved {
				break
			}
		}

		if !improved {
			// Local optimum under the swap neighborhood.
			return cur, cost
		}
	}
}
