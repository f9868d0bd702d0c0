package schedule_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/roadmap"
	"github.com/katalvlaran/roadmapflow/schedule"
)

// mustCombine joins two record sets into a model or fails the test.
func mustCombine(t *testing.T, dep, read [][]string) *roadmap.RoadmapData {
	t.Helper()
	dg, err := csvgrid.New(dep, csvgrid.DefaultOptions())
	if err != nil {
		t.Fatalf("csvgrid.New(dep) error: %v", err)
	}
	rg, err := csvgrid.New(read, csvgrid.DefaultOptions())
	if err != nil {
		t.Fatalf("csvgrid.New(read) error: %v", err)
	}
	d, err := roadmap.Combine(dg, rg)
	if err != nil {
		t.Fatalf("Combine error: %v", err)
	}
	return d
}

// mustData combines the shared three-mission fixture.
//
// Required rungs under Threshold 0.9, OperationalLevel 9:
//
//	           A   B  C
//	Inspection 13  7  4
//	Sampling    9  6  9
//	Docking    11  9  2
//
// Every order climbs 33 rungs in total; launch penalties split the orders.
func mustData(t *testing.T) *roadmap.RoadmapData {
	t.Helper()
	dep := [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B", "Mission C"},
		{"Inspection", "1.0 - Mission Critical", "0.5 - Medium", "0.2 - Low"},
		{"Sampling", "0.8 - High", "", "1.0 - Mission Critical"},
		{"Docking", "Not Used", "0.9 - High", ""},
	}
	read := [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B", "Mission C"},
		{"Inspection", "13 - Sustainable System", "7 - System Demonstration", "4"},
		{"Sampling", "9 - System Qualification", "6 - System Integration", "8 - System Validation"},
		{"Docking", "11 - System Operation", "5 - Component Validation", "2 - Concept Formulation"},
	}
	return mustCombine(t, dep, read)
}

//----------------------------------------------------------------------------//
// Cost Model Tests
//----------------------------------------------------------------------------//

// TestCost_HandComputedOrders pins the cost of every order of the shared
// fixture under the default model (Threshold 0.9, OperationalLevel 9,
// PenaltyWeight 1).
func TestCost_HandComputedOrders(t *testing.T) {
	d := mustData(t)
	opts := schedule.DefaultOptions()

	cases := []struct {
		name  string
		order []int
		want  float64
	}{
		{"ABC", []int{0, 1, 2}, 99},
		{"ACB", []int{0, 2, 1}, 99},
		{"BAC", []int{1, 0, 2}, 88},
		{"BCA", []int{1, 2, 0}, 80},
		{"CAB", []int{2, 0, 1}, 81},
		{"CBA", []int{2, 1, 0}, 73},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schedule.Cost(d, tc.order, opts)
			if err != nil {
				t.Fatalf("Cost(%v) error: %v", tc.order, err)
			}
			if got != tc.want {
				t.Fatalf("Cost(%v) = %v; want %v", tc.order, got, tc.want)
			}
		})
	}
}

// TestCost_OrderIndependentWithoutPenalty verifies that PenaltyWeight 0
// collapses every order to the constant rung sum.
func TestCost_OrderIndependentWithoutPenalty(t *testing.T) {
	d := mustData(t)
	opts := schedule.DefaultOptions()
	opts.PenaltyWeight = 0

	orders := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, order := range orders {
		got, err := schedule.Cost(d, order, opts)
		if err != nil {
			t.Fatalf("Cost(%v) error: %v", order, err)
		}
		if got != 33 {
			t.Fatalf("Cost(%v) = %v; want the constant 33", order, got)
		}
	}
}

// TestCost_ThresholdForcesFloor verifies the operational floor: entries at
// or above the threshold are lifted, entries below keep their baseline,
// and a floor under the baseline changes nothing.
func TestCost_ThresholdForcesFloor(t *testing.T) {
	d := mustCombine(t,
		[][]string{
			{"p"}, {"p"},
			{"", "", "Mission X"},
			{"Relay", "0.5 - Medium"},
		},
		[][]string{
			{"p"}, {"p"},
			{"", "", "Mission X"},
			{"Relay", "3 - Proof of Concept"},
		})

	cases := []struct {
		name string
		tune func(*schedule.Options)
		want float64
	}{
		{"BelowThresholdKeepsBaseline", func(o *schedule.Options) { o.Threshold = 0.9 }, 3},
		{"AtThresholdForced", func(o *schedule.Options) { o.Threshold = 0.5 }, 9},
		{"CustomOperationalLevel", func(o *schedule.Options) { o.Threshold = 0.5; o.OperationalLevel = 12 }, 12},
		{"FloorBelowBaselineInert", func(o *schedule.Options) { o.Threshold = 0.5; o.OperationalLevel = 2 }, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := schedule.DefaultOptions()
			tc.tune(&opts)
			got, err := schedule.Cost(d, []int{0}, opts)
			if err != nil {
				t.Fatalf("Cost error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Cost = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestCost_PenaltyRewardsDeferral verifies that postponing the mission
// that forces a big climb is cheaper than flying it first.
func TestCost_PenaltyRewardsDeferral(t *testing.T) {
	d := mustCombine(t,
		[][]string{
			{"p"}, {"p"},
			{"", "", "Mission X", "Mission Y"},
			{"Relay", "1.0", "0.2"},
		},
		[][]string{
			{"p"}, {"p"},
			{"", "", "Mission X", "Mission Y"},
			{"Relay", "0", "3"},
		})

	opts := schedule.DefaultOptions()
	opts.PenaltyWeight = 2

	// X forces Relay to 9; flying X first carries 9 rungs into Y.
	early, err := schedule.Cost(d, []int{0, 1}, opts)
	if err != nil {
		t.Fatalf("Cost(X,Y) error: %v", err)
	}
	late, err := schedule.Cost(d, []int{1, 0}, opts)
	if err != nil {
		t.Fatalf("Cost(Y,X) error: %v", err)
	}
	if early != 27 {
		t.Fatalf("Cost(X,Y) = %v; want 27", early)
	}
	if late != 15 {
		t.Fatalf("Cost(Y,X) = %v; want 15", late)
	}
	if late >= early {
		t.Fatalf("deferred climb should be cheaper: early=%v late=%v", early, late)
	}
}

// TestCost_FractionalPenaltyStabilized verifies 1e-9 stabilization with a
// fractional penalty weight.
func TestCost_FractionalPenaltyStabilized(t *testing.T) {
	d := mustData(t)
	opts := schedule.DefaultOptions()
	opts.PenaltyWeight = 0.1

	// 33 rungs + 0.1*(33+33) carried over the last two launches.
	got, err := schedule.Cost(d, []int{0, 1, 2}, opts)
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if got != 39.6 {
		t.Fatalf("Cost = %v; want 39.6", got)
	}
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestCost_Validation walks the error taxonomy: nil model, empty model,
// broken permutations, and out-of-range options.
func TestCost_Validation(t *testing.T) {
	d := mustData(t)
	empty := mustCombine(t,
		[][]string{{"p"}, {"p"}, {"", ""}},
		[][]string{{"p"}, {"p"}, {"", ""}})

	cases := []struct {
		name  string
		data  *roadmap.RoadmapData
		order []int
		tune  func(*schedule.Options)
		want  error
	}{
		{"NilData", nil, []int{0, 1, 2}, nil, schedule.ErrNilData},
		{"EmptyModel", empty, []int{}, nil, schedule.ErrNoMissions},
		{"NilOrder", d, nil, nil, schedule.ErrBadPermutation},
		{"ShortOrder", d, []int{0, 1}, nil, schedule.ErrBadPermutation},
		{"DuplicateIndex", d, []int{0, 0, 2}, nil, schedule.ErrBadPermutation},
		{"IndexOutOfRange", d, []int{0, 1, 5}, nil, schedule.ErrBadPermutation},
		{"NegativeIndex", d, []int{0, -1, 2}, nil, schedule.ErrBadPermutation},
		{"ThresholdBelowZero", d, []int{0, 1, 2}, func(o *schedule.Options) { o.Threshold = -0.1 }, schedule.ErrBadThreshold},
		{"ThresholdAboveOne", d, []int{0, 1, 2}, func(o *schedule.Options) { o.Threshold = 1.5 }, schedule.ErrBadThreshold},
		{"ThresholdNaN", d, []int{0, 1, 2}, func(o *schedule.Options) { o.Threshold = math.NaN() }, schedule.ErrBadThreshold},
		{"NegativeOperationalLevel", d, []int{0, 1, 2}, func(o *schedule.Options) { o.OperationalLevel = -1 }, schedule.ErrBadThreshold},
		{"OperationalLevelOffLadder", d, []int{0, 1, 2}, func(o *schedule.Options) { o.OperationalLevel = 14 }, schedule.ErrBadThreshold},
		{"NegativePenalty", d, []int{0, 1, 2}, func(o *schedule.Options) { o.PenaltyWeight = -1 }, schedule.ErrBadThreshold},
		{"InfinitePenalty", d, []int{0, 1, 2}, func(o *schedule.Options) { o.PenaltyWeight = math.Inf(1) }, schedule.ErrBadThreshold},
		{"NegativeRestarts", d, []int{0, 1, 2}, func(o *schedule.Options) { o.Restarts = -1 }, schedule.ErrBadThreshold},
		{"NegativeMaxIters", d, []int{0, 1, 2}, func(o *schedule.Options) { o.MaxIters = -1 }, schedule.ErrBadThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := schedule.DefaultOptions()
			if tc.tune != nil {
				tc.tune(&opts)
			}
			_, err := schedule.Cost(tc.data, tc.order, opts)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Cost error = %v; want %v", err, tc.want)
			}
		})
	}
}
