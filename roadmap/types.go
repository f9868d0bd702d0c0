package roadmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadmapflow/levels"
)

var (
	// ErrNilGrid signals that Combine received a nil dependency or
	// readiness grid.
	ErrNilGrid = errors.New("roadmap: nil grid")

	// ErrMissionNotFound signals an exact-name mission lookup miss.
	ErrMissionNotFound = errors.New("roadmap: mission not found")

	// ErrUnknownAxis signals an axis selector outside the closed pair.
	ErrUnknownAxis = errors.New("roadmap: unknown axis")
)

// Axis selects which of the two value planes an export or renderer reads.
type Axis string

// The two selectable planes.
const (
	AxisDependency Axis = "dependency"
	AxisReadiness  Axis = "readiness"
)

// ParseAxis maps raw text to an Axis.
//
// Errors: ErrUnknownAxis (wrapped with the raw text).
func ParseAxis(raw string) (Axis, error) {
	switch Axis(raw) {
	case AxisDependency, AxisReadiness:
		return Axis(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAxis, raw)
	}
}

// DefaultKind tags which side of a capability entry was substituted.
type DefaultKind uint8

const (
	// DefaultedDependency marks a dependency cell that fell back to
	// (0.0, "Not Applicable").
	DefaultedDependency DefaultKind = iota
	// DefaultedReadiness marks a readiness cell that fell back to
	// (0, "Unknown").
	DefaultedReadiness
)

// String names the kind for logs.
func (k DefaultKind) String() string {
	if k == DefaultedDependency {
		return "dependency"
	}
	return "readiness"
}

// DefaultingEvent describes one cell that could not be parsed and was
// replaced by its documented default. Raw holds the offending cell text,
// empty when the cell was blank or absent.
type DefaultingEvent struct {
	Kind       DefaultKind
	Mission    string
	Capability string
	Raw        string
}

// Option adjusts how Combine behaves.
type Option func(*combineOptions)

type combineOptions struct {
	observers []func(DefaultingEvent)
}

// WithDefaultObserver registers fn to receive every DefaultingEvent raised
// during Combine. Repeated use stacks observers; a nil fn is ignored.
func WithDefaultObserver(fn func(DefaultingEvent)) Option {
	return func(o *combineOptions) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

func (o *combineOptions) emit(ev DefaultingEvent) {
	for _, fn := range o.observers {
		fn(ev)
	}
}

// CapabilityEntry is the atomic roadmap fact: one capability's dependency
// and readiness ratings within one mission.
type CapabilityEntry struct {
	Capability string
	Dependency levels.DependencyLevel
	Readiness  levels.ReadinessLevel
}

// Mission is one planning scenario and its capability entries, keyed by
// capability name, in the row order of the dependency grid.
type Mission struct {
	name    string
	order   []string
	entries map[string]CapabilityEntry
}

// RoadmapData is the root aggregate: all missions in the header order of
// the dependency grid. Immutable once Combine returns.
type RoadmapData struct {
	order    []string
	missions map[string]*Mission
	caps     []string // distinct capability union, first-seen order
}
