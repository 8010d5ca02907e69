package design

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
	"github.com/shenwei356/xopen"
)

// ErrEmptyTable is returned for a design file without a header row.
var ErrEmptyTable = errors.New("design table is empty")

// utf8BOM is written at the start of tables exported by some spreadsheet tools.
const utf8BOM = "\ufeff"

// Separator selects the field delimiter of a design file.
type Separator string

const (
	SeparatorTab   Separator = "tab"
	SeparatorComma Separator = "comma"
	// SeparatorAuto guesses the delimiter from the file content.
	SeparatorAuto Separator = "auto"
)

// ParseSeparator accepts a separator name or the literal delimiter.
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(s) {
	case "", "tab", `\t`, "\t", "tsv":
		return SeparatorTab, nil
	case "comma", ",", "csv":
		return SeparatorComma, nil
	case "auto":
		return SeparatorAuto, nil
	}
	return "", fmt.Errorf("unknown design separator %q (want tab, comma or auto)", s)
}

// LoadOptions configures Load.
type LoadOptions struct {
	Separator Separator
}

// Load reads a design table. Gzipped files are decompressed transparently and
// "-" reads standard input.
func Load(path string, opts LoadOptions) (*Table, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open design %s: %w", path, err)
	}
	defer fh.Close()

	data, err := io.ReadAll(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read design %s: %w", path, err)
	}

	t, err := Parse(data, opts.Separator.delimiter(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse design %s: %w", path, err)
	}
	return t, nil
}

func (s Separator) delimiter(data []byte) rune {
	switch s {
	case SeparatorComma:
		return ','
	case SeparatorAuto:
		return detectDelimiter(data)
	}
	return '\t'
}

func detectDelimiter(data []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(data), '"')
	if len(delimiters) > 0 && delimiters[0] != "" {
		return rune(delimiters[0][0])
	}
	return '\t'
}

// Parse decodes a header-first delimited table.
func Parse(data []byte, delimiter rune) (*Table, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiter
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	seen := make(map[string]int, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if header[i] == "" {
			continue
		}
		if first, dup := seen[header[i]]; dup {
			return nil, &DuplicateColumnError{Column: header[i], First: first + 1, Index: i + 1}
		}
		seen[header[i]] = i
	}

	var rows []*Record
	if err := gocsv.UnmarshalCSV(&recordReader{records: records}, &rows); err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return NewTable(header, out), nil
}

// recordReader replays already split records to gocsv.
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}
