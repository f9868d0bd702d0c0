package sankey

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmapflow/roadmap"
)

// Build runs one projection over the model.
//
// Errors:
//   - ErrNilData for a nil model;
//   - ErrInvalidFilter for out-of-domain Options;
//   - ErrUnknownFlowType for selectors outside the four projections,
//     including the FlowAll selector (that one belongs to BuildAll).
//
// On error no FlowData is returned, partial or otherwise.
func Build(d *roadmap.RoadmapData, typ FlowType, opts Options) (*FlowData, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	switch typ {
	case FlowMissionToCapability:
		return buildMissionToCapability(d, opts), nil
	case FlowCapabilityToReadiness:
		return buildCapabilityToReadiness(d, opts), nil
	case FlowMissionToReadiness:
		return buildMissionToReadiness(d, opts), nil
	case FlowDependencyFlow:
		return buildDependencyFlow(d, opts), nil
	case FlowAll:
		return nil, fmt.Errorf("%w: %q selects every projection, use BuildAll", ErrUnknownFlowType, typ)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFlowType, typ)
}

// BuildAll runs the four projections in FlowTypes order over one shared
// Options value.
func BuildAll(d *roadmap.RoadmapData, opts Options) ([]*FlowData, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	types := FlowTypes()
	out := make([]*FlowData, 0, len(types))
	for _, typ := range types {
		f, err := Build(d, typ, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// validateOptions checks the filter domains shared by Build and BuildAll.
func validateOptions(opts Options) error {
	if math.IsNaN(opts.MinDependency) || opts.MinDependency < 0 || opts.MinDependency > 1 {
		return fmt.Errorf("%w: min dependency %v outside [0.0, 1.0]", ErrInvalidFilter, opts.MinDependency)
	}
	if opts.MaxMissions < 0 {
		return fmt.Errorf("%w: max missions %d is negative", ErrInvalidFilter, opts.MaxMissions)
	}
	return nil
}
