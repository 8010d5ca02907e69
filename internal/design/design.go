// Package design reads sample design tables and maps their raw read files onto
// the canonical names the cleaning pipeline stages them under.
//
// Pairing mode is a property of the whole table: a table carrying a
// Downstream_file column is paired-end, any other table is single-ended.
package design

// Recognized design table columns. Names are case-sensitive.
const (
	ColumnSampleID   = "Sample_id"
	ColumnUpstream   = "Upstream_file"
	ColumnDownstream = "Downstream_file"
)

// Pairing describes how many read files each sample of a table carries.
type Pairing int

const (
	SingleEnd Pairing = iota
	PairedEnd
)

// String returns the pairing mode name.
func (p Pairing) String() string {
	if p == PairedEnd {
		return "paired"
	}
	return "single"
}

// Record is one row of a design table.
type Record struct {
	SampleID   string `csv:"Sample_id"`
	Upstream   string `csv:"Upstream_file"`
	Downstream string `csv:"Downstream_file"`
}

// Table is an ordered sample design. Column presence is tracked separately from
// the row values so an absent column and an empty cell stay distinguishable.
type Table struct {
	columns map[string]struct{}
	order   []string
	rows    []Record
}

// NewTable builds a table from a header and rows. Values of columns missing
// from the header are ignored.
func NewTable(columns []string, rows []Record) *Table {
	t := &Table{
		columns: make(map[string]struct{}, len(columns)),
		rows:    make([]Record, len(rows)),
	}
	for _, c := range columns {
		if _, dup := t.columns[c]; dup {
			continue
		}
		t.columns[c] = struct{}{}
		t.order = append(t.order, c)
	}
	copy(t.rows, rows)
	if !t.HasColumn(ColumnDownstream) {
		for i := range t.rows {
			t.rows[i].Downstream = ""
		}
	}
	return t
}

// HasColumn reports whether the header declared the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Rows returns a copy of the table rows in file order.
func (t *Table) Rows() []Record {
	out := make([]Record, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of samples.
func (t *Table) Len() int { return len(t.rows) }

// Pairing inspects the column set once and reports the table's pairing mode.
func (t *Table) Pairing() Pairing {
	if t.HasColumn(ColumnDownstream) {
		return PairedEnd
	}
	return SingleEnd
}

// validate checks the required columns, sample ids, and the consistency of the
// pairing signal across rows.
func (t *Table) validate() error {
	for _, c := range []string{ColumnSampleID, ColumnUpstream} {
		if !t.HasColumn(c) {
			return &MissingColumnError{Column: c}
		}
	}
	paired := t.Pairing() == PairedEnd
	for i, r := range t.rows {
		if r.SampleID == "" {
			return &MissingValueError{Row: i + 1, Column: ColumnSampleID}
		}
		if r.Upstream == "" {
			return &MissingValueError{Row: i + 1, Column: ColumnUpstream, SampleID: r.SampleID}
		}
		if paired && r.Downstream == "" {
			return &PairingAmbiguityError{Row: i + 1, SampleID: r.SampleID}
		}
	}
	return nil
}
