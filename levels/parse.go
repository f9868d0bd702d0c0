package levels

import (
	"math"
	"strconv"
	"strings"
)

// cellSeparator splits workbook cells of the form "value - label".
const cellSeparator = " - "

// ParseDependency interprets one raw dependency cell. It accepts
// "value - label" cells, bare numbers, and the bare "Not Used" category
// (case-insensitively); the numeric part wins whenever present and in
// range, with the band derived from it. Anything else returns
// DefaultDependency() and ok=false.
func ParseDependency(raw string) (DependencyLevel, bool) {
	num, label, hasNum := splitCell(raw)
	if hasNum {
		if l, ok := DependencyFromValue(num); ok {
			return l, true
		}
		return DefaultDependency(), false
	}
	if strings.EqualFold(label, bandLabels[BandNotUsed]) {
		return DependencyLevel{value: bandValues[BandNotUsed], band: BandNotUsed}, true
	}
	return DefaultDependency(), false
}

// ParseReadiness interprets one raw readiness cell: "value - label" or a
// bare rung number. Readiness has no bare textual category; anything
// non-numeric returns DefaultReadiness() and ok=false.
func ParseReadiness(raw string) (ReadinessLevel, bool) {
	num, _, hasNum := splitCell(raw)
	if !hasNum {
		return DefaultReadiness(), false
	}
	rung := int(num)
	if float64(rung) != num {
		return DefaultReadiness(), false
	}
	if l, ok := ReadinessFromValue(rung); ok {
		return l, true
	}
	return DefaultReadiness(), false
}

// DependencyFromValue builds a level from a bare numeric value, deriving
// the band. ok is false when the value is NaN or outside [0.0, 1.0].
func DependencyFromValue(v float64) (DependencyLevel, bool) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return DefaultDependency(), false
	}
	return DependencyLevel{value: v, band: bandOf(v)}, true
}

// ReadinessFromValue builds a level from a bare rung value. ok is false
// outside [0, MaxReadiness]; 0 is accepted and means an explicit unknown.
func ReadinessFromValue(v int) (ReadinessLevel, bool) {
	if v < 0 || v > MaxReadiness {
		return DefaultReadiness(), false
	}
	return ReadinessLevel{value: v}, true
}

// bandOf maps a value in [0.0, 1.0] onto the band vocabulary.
func bandOf(v float64) DependencyBand {
	switch {
	case v == 1.0:
		return BandMissionCritical
	case v >= 0.8:
		return BandHigh
	case v >= 0.5:
		return BandMedium
	case v > 0:
		return BandLow
	default:
		return BandNotUsed
	}
}

// splitCell trims raw and separates an optional leading numeric token from
// the label remainder. hasNum reports whether the token parsed as a float;
// label carries the rest of the cell (or the whole cell when no number).
func splitCell(raw string) (num float64, label string, hasNum bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, "", false
	}
	token, rest := s, ""
	if i := strings.Index(s, cellSeparator); i >= 0 {
		token = strings.TrimSpace(s[:i])
		rest = strings.TrimSpace(s[i+len(cellSeparator):])
	}
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return v, rest, true
	}
	return 0, s, false
}

// formatValue renders a dependency value with one decimal when exact
// ("1.0", "0.5") and with full precision otherwise ("0.75").
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if back, err := strconv.ParseFloat(s, 64); err == nil && back == v {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
