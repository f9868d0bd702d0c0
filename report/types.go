package report

import "errors"

// ErrNilData reports a nil roadmap model.
var ErrNilData = errors.New("report: roadmap data is nil")

// Banner widths per layout.
const (
	sampleWidth = 80  // Sample and Summary
	fullWidth   = 100 // Full and CapabilityAnalysis
	tableWidth  = 120 // Table and Heatmap
)

// Table column layout: capability column, one column per level, and the
// clip applied to level cells so rows never overflow the banner.
const (
	capabilityColumn = 45
	levelColumn      = 35
	levelClip        = 33
)
