package csvgrid

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// New builds a Grid from in-memory records.
//
// Validation:
//   - records must extend past HeaderRow, and the header row must hold at
//     least two columns; otherwise ErrMissingHeader.
//
// The input is deep-copied; callers may reuse records afterwards.
func New(records [][]string, opts Options) (*Grid, error) {
	if len(records) <= HeaderRow {
		return nil, fmt.Errorf("%w: got %d rows, need more than %d", ErrMissingHeader, len(records), HeaderRow)
	}
	if len(records[HeaderRow]) < 2 {
		return nil, fmt.Errorf("%w: got %d columns", ErrMissingHeader, len(records[HeaderRow]))
	}

	g := &Grid{}

	// Header cells become mission names: trimmed, blanks skipped, column
	// order preserved. The label column itself is usually blank here.
	for _, cell := range records[HeaderRow] {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		g.header = append(g.header, name)
	}

	// Data rows: everything below the header with a non-blank label.
	// Value cells stay raw; interpretation belongs to the level parsers.
	for i := HeaderRow + 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) <= LabelColumn {
			continue
		}
		label := strings.TrimSpace(rec[LabelColumn])
		if label == "" {
			continue
		}
		values := make([]string, len(rec)-LabelColumn-1)
		copy(values, rec[LabelColumn+1:])
		g.rows = append(g.rows, Row{Label: label, Values: values})
	}

	return g, nil
}

// Load reads path as CSV and builds a Grid from its records.
//
// Errors:
//   - ErrNotFound when the file cannot be opened or its bytes do not
//     tokenize as CSV (the underlying cause is attached);
//   - ErrMissingHeader via New when the sheet convention is violated.
func Load(path string, opts Options) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // roadmap exports have ragged rows
	r.TrimLeadingSpace = true
	if opts.Comma != 0 {
		r.Comma = opts.Comma
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return New(records, opts)
}

// Header returns the mission names from the header row, in column order.
func (g *Grid) Header() []string {
	out := make([]string, len(g.header))
	copy(out, g.header)
	return out
}

// Rows returns the labelled data rows in source order.
func (g *Grid) Rows() []Row {
	out := make([]Row, len(g.rows))
	for i, r := range g.rows {
		values := make([]string, len(r.Values))
		copy(values, r.Values)
		out[i] = Row{Label: r.Label, Values: values}
	}
	return out
}

// NumRows reports the number of labelled data rows.
func (g *Grid) NumRows() int { return len(g.rows) }
