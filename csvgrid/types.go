package csvgrid

import "errors"

// Sheet convention: indices are 0-based positions in the raw CSV records.
const (
	// HeaderRow is the index of the row holding mission names. The two
	// rows above it are free-form preamble and are never inspected.
	HeaderRow = 2

	// LabelColumn is the index of the column holding row labels
	// (capability names). Value cells start immediately to its right.
	LabelColumn = 0
)

var (
	// ErrNotFound signals that the source file is missing or unreadable.
	ErrNotFound = errors.New("csvgrid: file not found or unreadable")

	// ErrMissingHeader signals that the grid ends before HeaderRow or that
	// the header row has fewer than two columns.
	ErrMissingHeader = errors.New("csvgrid: header row missing or narrower than two columns")
)

// Options configures CSV tokenization.
type Options struct {
	// Comma is the cell delimiter. Zero means ','.
	Comma rune
}

// DefaultOptions returns the standard configuration for roadmap exports.
func DefaultOptions() Options {
	return Options{Comma: ','}
}

// Row is one data row below the header: a trimmed label plus its raw value
// cells. Values[k] belongs to the k-th header entry; a row shorter than the
// header simply has fewer values, and surplus cells carry no meaning.
type Row struct {
	Label  string
	Values []string
}

// Grid is an immutable snapshot of one roadmap CSV file. All slices handed
// out by its methods are fresh copies; mutating them never affects the Grid.
type Grid struct {
	header []string // non-blank header cells, trimmed, in column order
	rows   []Row    // labelled data rows below the header, in source order
}
