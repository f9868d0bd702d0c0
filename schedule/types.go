package schedule

import "errors"

// Sentinel errors returned by the scheduler. Call sites wrap them with
// fmt.Errorf("%w: ...") detail; match with errors.Is.
var (
	// ErrNilData reports a nil roadmap model.
	ErrNilData = errors.New("schedule: roadmap data is nil")

	// ErrNoMissions reports a model with no missions to order.
	ErrNoMissions = errors.New("schedule: roadmap has no missions")

	// ErrBadThreshold reports an Options field outside its valid range:
	// a dependency threshold outside [0,1], an operational level off the
	// readiness ladder, a negative or non-finite penalty weight, or a
	// negative restart/iteration budget.
	ErrBadThreshold = errors.New("schedule: option value outside its valid range")

	// ErrBadPermutation reports an order that is not a permutation of the
	// model's mission indices.
	ErrBadPermutation = errors.New("schedule: order is not a mission permutation")
)

// OperationalReadiness is the readiness rung a mission-critical capability
// must reach before the mission that needs it can fly. Rung 9 is "System
// Qualification" on the readiness ladder.
const OperationalReadiness = 9

// Options configures the cost model and the permutation search.
// Zero values are NOT substituted; build on DefaultOptions and override.
type Options struct {
	Threshold        float64 // Dependency value at or above which a capability is forced up; in [0,1]
	OperationalLevel int     // Readiness floor for forced capabilities; in [0, levels.MaxReadiness]
	PenaltyWeight    float64 // Cost per already-attained rung paid at every launch; >= 0, 0 disables
	Restarts         int     // Random-start descents beyond the roadmap-order descent; >= 0
	Seed             int64   // RNG seed for restart permutations; 0 selects the fixed default stream
	MaxIters         int     // Accepted-move cap per descent; 0 means unlimited
}

// DefaultOptions returns the canonical scheduler configuration: force
// capabilities at dependency 0.9 and above to OperationalReadiness, pay
// one unit per attained rung per launch, and run four seeded restarts.
func DefaultOptions() Options {
	return Options{
		Threshold:        0.9,
		OperationalLevel: OperationalReadiness,
		PenaltyWeight:    1,
		Restarts:         4,
		Seed:             0,
		MaxIters:         0,
	}
}

// Result is the outcome of Optimize.
type Result struct {
	// Order is the best permutation found; Order[i] indexes the i-th
	// mission to fly within RoadmapData's header order.
	Order []int

	// Missions lists the mission names in visit order.
	Missions []string

	// Cost is the total of the best order, stabilized to 1e-9.
	Cost float64
}
