package design

import "fmt"

// MissingColumnError reports a required column absent from the table header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("design table has no %q column", e.Column)
}

// DuplicateColumnError reports a header naming the same column twice. First
// and Index are 1-based field positions.
type DuplicateColumnError struct {
	Column string
	First  int
	Index  int
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("design header repeats column %q (fields %d and %d)", e.Column, e.First, e.Index)
}

// MissingValueError reports an empty cell in a required column. Row is 1-based
// and does not count the header.
type MissingValueError struct {
	Row      int
	Column   string
	SampleID string
}

func (e *MissingValueError) Error() string {
	if e.SampleID != "" {
		return fmt.Sprintf("design row %d (sample %q): empty %s", e.Row, e.SampleID, e.Column)
	}
	return fmt.Sprintf("design row %d: empty %s", e.Row, e.Column)
}

// PairingAmbiguityError reports a paired-end table where some sample has no
// downstream file.
type PairingAmbiguityError struct {
	Row      int
	SampleID string
}

func (e *PairingAmbiguityError) Error() string {
	return fmt.Sprintf("design row %d (sample %q): %s column is present but empty; mixed single/paired designs are not supported",
		e.Row, e.SampleID, ColumnDownstream)
}

// DuplicateCanonicalNameError reports two rows mapping to the same staged file.
// Rows are 1-based.
type DuplicateCanonicalNameError struct {
	Name     string
	FirstRow int
	Row      int
}

func (e *DuplicateCanonicalNameError) Error() string {
	return fmt.Sprintf("staged file %q is claimed by design rows %d and %d", e.Name, e.FirstRow, e.Row)
}
