package levels

import "strconv"

// DependencyBand is the closed categorical vocabulary for dependency
// values. Bands are ordered by criticality, so bands compare with <.
type DependencyBand uint8

const (
	// BandNotApplicable marks the default for blank or unrecognized cells.
	BandNotApplicable DependencyBand = iota
	// BandNotUsed marks an explicit zero: the mission does not use the
	// capability at all.
	BandNotUsed
	// BandLow covers values in (0.0, 0.5).
	BandLow
	// BandMedium covers values in [0.5, 0.8).
	BandMedium
	// BandHigh covers values in [0.8, 1.0).
	BandHigh
	// BandMissionCritical covers exactly 1.0.
	BandMissionCritical
)

// bandLabels is indexed by DependencyBand.
var bandLabels = [...]string{
	BandNotApplicable:   "Not Applicable",
	BandNotUsed:         "Not Used",
	BandLow:             "Low",
	BandMedium:          "Medium",
	BandHigh:            "High",
	BandMissionCritical: "Mission Critical",
}

// bandValues holds the canonical numeric representative of each band, used
// when a cell names a category without a number.
var bandValues = [...]float64{
	BandNotApplicable:   0.0,
	BandNotUsed:         0.0,
	BandLow:             0.2,
	BandMedium:          0.5,
	BandHigh:            0.8,
	BandMissionCritical: 1.0,
}

// Label returns the canonical label of the band.
func (b DependencyBand) Label() string {
	if int(b) >= len(bandLabels) {
		return bandLabels[BandNotApplicable]
	}
	return bandLabels[b]
}

// DependencyLevel is one capability-to-mission dependency rating: a value
// in [0.0, 1.0] plus the band that value falls into. The zero value equals
// DefaultDependency().
type DependencyLevel struct {
	value float64
	band  DependencyBand
}

// Value returns the numeric dependency in [0.0, 1.0].
func (l DependencyLevel) Value() float64 { return l.value }

// Band returns the categorical band the value falls into.
func (l DependencyLevel) Band() DependencyBand { return l.band }

// Label returns the band's canonical label.
func (l DependencyLevel) Label() string { return l.band.Label() }

// Used reports whether the mission actually uses the capability, i.e. the
// level is above both "Not Used" and the "Not Applicable" default.
func (l DependencyLevel) Used() bool { return l.band > BandNotUsed }

// String renders the level the way workbook cells spell it: "0.8 - High".
func (l DependencyLevel) String() string {
	return formatValue(l.value) + " - " + l.Label()
}

// ReadinessLevel is one technology readiness rating: an integer rung on
// the closed 1..13 ladder, or 0 for the "Unknown" default. The zero value
// equals DefaultReadiness().
type ReadinessLevel struct {
	value int
}

// readinessLabels is indexed by rung value.
var readinessLabels = [...]string{
	0:  "Unknown",
	1:  "Basic Principles",
	2:  "Concept Formulation",
	3:  "Proof of Concept",
	4:  "Component Testing",
	5:  "Component Validation",
	6:  "System Integration",
	7:  "System Demonstration",
	8:  "System Validation",
	9:  "System Qualification",
	10: "System Test",
	11: "System Operation",
	12: "System Proven",
	13: "Sustainable System",
}

// MaxReadiness is the top rung of the readiness ladder.
const MaxReadiness = len(readinessLabels) - 1

// Value returns the rung in [0, MaxReadiness]; 0 means unknown.
func (l ReadinessLevel) Value() int { return l.value }

// Label returns the rung's canonical label.
func (l ReadinessLevel) Label() string { return readinessLabels[l.value] }

// Known reports whether the level carries an actual rating rather than the
// "Unknown" default.
func (l ReadinessLevel) Known() bool { return l.value > 0 }

// String renders the level the way workbook cells spell it:
// "13 - Sustainable System".
func (l ReadinessLevel) String() string {
	return strconv.Itoa(l.value) + " - " + l.Label()
}

// DefaultDependency returns the documented substitute for blank or
// unrecognized dependency cells: (0.0, "Not Applicable").
func DefaultDependency() DependencyLevel {
	return DependencyLevel{value: 0, band: BandNotApplicable}
}

// DefaultReadiness returns the documented substitute for blank or
// unrecognized readiness cells: (0, "Unknown").
func DefaultReadiness() ReadinessLevel {
	return ReadinessLevel{value: 0}
}

// DependencyBands enumerates the closed band vocabulary in ascending
// criticality order.
func DependencyBands() []DependencyBand {
	return []DependencyBand{
		BandNotApplicable,
		BandNotUsed,
		BandLow,
		BandMedium,
		BandHigh,
		BandMissionCritical,
	}
}

// ReadinessScale enumerates the ladder rungs 1..MaxReadiness in ascending
// order, excluding the "Unknown" default.
func ReadinessScale() []ReadinessLevel {
	out := make([]ReadinessLevel, 0, MaxReadiness)
	for v := 1; v <= MaxReadiness; v++ {
		out = append(out, ReadinessLevel{value: v})
	}
	return out
}
