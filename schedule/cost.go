// Package schedule - readiness-progression cost model.
//
// The model for one mission order:
//
//	attained[cap] starts at 0 for every capability.
//	Flying mission m:
//	  1. pays PenaltyWeight * sum(attained), the carrying price of every
//	     rung climbed before this launch;
//	  2. raises attained[cap] to the entry's required rung for every
//	     capability m references, paying one unit per rung climbed.
//
// The required rung of an entry is its baseline readiness, lifted to
// OperationalLevel when the dependency value reaches Threshold. Rungs
// never drop, so the upgrade total is the same for every order and only
// the launch penalties separate good orders from bad ones.
//
// The roadmap is compiled once into dense index/rung slices so that the
// optimizer can evaluate thousands of candidate orders without touching
// maps or re-parsing entries.
package schedule

import (
	"math"

	"github.com/katalvlaran/roadmapflow/roadmap"
)

// costScale stabilizes returned costs to 1e-9, keeping results identical
// across platforms when PenaltyWeight is fractional.
const costScale = 1e9

// costModel is a roadmap flattened for fast order evaluation.
// It is single-goroutine state: evaluate reuses the attained scratch.
type costModel struct {
	penalty  float64 // PenaltyWeight copied out of Options
	capOf    [][]int // per mission, capability index of each entry
	required [][]int // per mission, rung each entry demands
	attained []int   // per capability, scratch reset by evaluate
}

// compile flattens d into a costModel under the given options.
// Capability indices follow d.Capabilities() first-seen order.
//
// Complexity: O(n+E) time and space for n missions, E entries.
func compile(d *roadmap.RoadmapData, opts Options) *costModel {
	var (
		missions = d.Missions()
		caps     = d.Capabilities()
		capIndex = make(map[string]int, len(caps))
		cm       = &costModel{
			penalty:  opts.PenaltyWeight,
			capOf:    make([][]int, len(missions)),
			required: make([][]int, len(missions)),
			attained: make([]int, len(caps)),
		}
	)
	for i, name := range caps {
		capIndex[name] = i
	}

	var (
		pos  int
		m    *roadmap.Mission
		name string
		e    roadmap.CapabilityEntry
		req  int
	)
	for pos, m = range missions {
		names := m.Capabilities()
		cm.capOf[pos] = make([]int, 0, len(names))
		cm.required[pos] = make([]int, 0, len(names))
		for _, name = range names {
			e, _ = m.Entry(name)
			req = e.Readiness.Value()
			if e.Dependency.Value() >= opts.Threshold && opts.OperationalLevel > req {
				req = opts.OperationalLevel
			}
			cm.capOf[pos] = append(cm.capOf[pos], capIndex[name])
			cm.required[pos] = append(cm.required[pos], req)
		}
	}

	return cm
}

// evaluate prices one mission order. order must already be a valid
// permutation; evaluate itself performs no checks.
//
// Complexity: O(n+E) time, zero allocations.
func (cm *costModel) evaluate(order []int) float64 {
	var i int
	for i = range cm.attained {
		cm.attained[i] = 0
	}

	var (
		total   float64
		carried int // rungs attained so far, the launch-penalty base
		pos     int
		t       int
		ci      int
		climb   int
	)
	for _, pos = range order {
		total += cm.penalty * float64(carried)
		for t = range cm.capOf[pos] {
			ci = cm.capOf[pos][t]
			climb = cm.required[pos][t] - cm.attained[ci]
			if climb > 0 {
				total += float64(climb)
				carried += climb
				cm.attained[ci] = cm.required[pos][t]
			}
		}
	}

	return total
}

// Cost prices one mission order under the readiness-progression model.
// order[i] indexes the i-th mission to fly within d's header order and
// must permute 0..MissionCount-1.
//
// Errors: ErrNilData, ErrNoMissions, ErrBadThreshold, ErrBadPermutation.
//
// Complexity: O(n+E).
func Cost(d *roadmap.RoadmapData, order []int, opts Options) (float64, error) {
	if _, err := validateAll(d, order, opts); err != nil {
		return 0, err
	}

	return roundCost(compile(d, opts).evaluate(order)), nil
}

// roundCost returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func roundCost(x float64) float64 {
	return math.Round(x*costScale) / costScale
}
