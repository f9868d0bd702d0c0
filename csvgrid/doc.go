// Package csvgrid tokenizes roadmap spreadsheets exported as CSV into
// immutable cell grids, applying the fixed sheet convention used by the
// roadmap workbooks: two preamble rows, the header row third, and row
// labels in the first column.
//
// What:
//
//   - Grid wraps the raw records of one CSV file after convention checks.
//   - Header() lists the mission names found on the header row, in column
//     order, trimmed, with blank cells skipped.
//   - Rows() lists the data rows below the header that carry a non-blank
//     label; each Row pairs the trimmed label with its value cells.
//   - Load reads a file; New accepts in-memory records (tests, generators).
//
// Why:
//
//   - The "header on row 3, labels in column 1" contract is positional and
//     easy to get wrong; naming it once (HeaderRow, LabelColumn) keeps it
//     visible and testable instead of buried in parsing loops.
//   - Downstream joins need stable column/row order; Grid preserves source
//     order exactly and never reorders.
//
// Complexity:
//
//   - Load / New: O(R×C) time and memory for an R-row, C-column file.
//   - All accessors: O(n) in the size of the returned slice.
//
// Options:
//
//   - Options.Comma: cell delimiter (default ',').
//
// Errors:
//
//   - ErrNotFound: the file is missing or its bytes cannot be read as CSV.
//   - ErrMissingHeader: the header row is absent or has fewer than two
//     columns.
//
// No cell content is interpreted here; values stay raw for the level
// parsers. See the levels and roadmap packages for the next stages.
package csvgrid
