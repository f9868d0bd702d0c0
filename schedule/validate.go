// Package schedule - validation shared by Cost and Optimize.
//
// Deterministic, side-effect free checks. Only sentinel errors from
// types.go, wrapped with the offending value; no logging, no panics.
package schedule

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmapflow/levels"
	"github.com/katalvlaran/roadmapflow/roadmap"
)

// validateAll verifies options, model, and order in that sequence and
// returns the mission count on success. Optimize, which generates its
// own orders, runs the first two stages directly.
//
// Complexity: O(n) time, O(n) space for the permutation check.
func validateAll(d *roadmap.RoadmapData, order []int, opts Options) (int, error) {
	var (
		n   int
		err error
	)

	// Stage 1: options-only sanity.
	if err = validateOptions(opts); err != nil {
		return 0, err
	}

	// Stage 2: the model itself.
	n, err = validateData(d)
	if err != nil {
		return 0, err
	}

	// Stage 3: the caller-supplied order.
	if err = validateOrder(order, n); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptions checks every Options field against its documented range.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if math.IsNaN(opts.Threshold) || opts.Threshold < 0 || opts.Threshold > 1 {
		return fmt.Errorf("%w: dependency threshold %v outside [0,1]", ErrBadThreshold, opts.Threshold)
	}
	if opts.OperationalLevel < 0 || opts.OperationalLevel > levels.MaxReadiness {
		return fmt.Errorf("%w: operational level %d outside [0,%d]",
			ErrBadThreshold, opts.OperationalLevel, levels.MaxReadiness)
	}
	if math.IsNaN(opts.PenaltyWeight) || math.IsInf(opts.PenaltyWeight, 0) || opts.PenaltyWeight < 0 {
		return fmt.Errorf("%w: penalty weight %v must be finite and non-negative",
			ErrBadThreshold, opts.PenaltyWeight)
	}
	if opts.Restarts < 0 {
		return fmt.Errorf("%w: restarts %d must be non-negative", ErrBadThreshold, opts.Restarts)
	}
	if opts.MaxIters < 0 {
		return fmt.Errorf("%w: max iterations %d must be non-negative", ErrBadThreshold, opts.MaxIters)
	}

	return nil
}

// validateData rejects nil and empty models and returns the mission count.
//
// Complexity: O(1).
func validateData(d *roadmap.RoadmapData) (int, error) {
	if d == nil {
		return 0, ErrNilData
	}
	n := d.MissionCount()
	if n == 0 {
		return 0, ErrNoMissions
	}

	return n, nil
}

// validateOrder enforces that order is a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func validateOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d positions for %d missions", ErrBadPermutation, len(order), n)
	}

	var (
		seen = make([]bool, n)
		pos  int
		idx  int
	)
	for pos, idx = range order {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: index %d at position %d outside [0,%d)", ErrBadPermutation, idx, pos, n)
		}
		if seen[idx] {
			return fmt.Errorf("%w: index %d repeats at position %d", ErrBadPermutation, idx, pos)
		}
		seen[idx] = true
	}

	return nil
}
