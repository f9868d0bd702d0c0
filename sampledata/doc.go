// Package sampledata ships the deterministic demo dataset: four space
// servicing missions rated over a fifteen-capability union.
//
// # What
//
//   - DependencyCSV / ReadinessCSV: the demo tables as grid-convention
//     records (two preamble rows, mission header at row 2, capability
//     labels in column 0), ready for csvgrid.New.
//   - Roadmap: the tables combined into a model. Every call rebuilds the
//     same value.
//   - WriteCSVFiles: the tables on disk, loadable back through
//     csvgrid.Load into exactly Roadmap().
//   - SimplifiedCSV: a transposed export of one value plane, missions as
//     rows and capabilities as columns, blanks where a cell carries only
//     a substituted default.
//
// The dataset is intentionally sparse: each mission rates four
// capabilities and leaves the rest blank, so demos exercise the
// defaulting path, N/A report cells, and zero-valued chart traces the
// same way real roadmap exports do.
//
// # Errors
//
//   - ErrNilData: SimplifiedCSV was handed a nil model.
//   - roadmap.ErrUnknownAxis: SimplifiedCSV was handed an unknown axis.
//   - WriteCSVFiles wraps filesystem errors with the failing file name.
//
// Roadmap panics only if the embedded tables themselves are broken,
// which the package tests pin.
package sampledata
