package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

const (
	// ColumnOriginatingSystemID is the column holding the external identifier
	// used to query Alma.
	ColumnOriginatingSystemID = "originating_system_id"
	// ColumnMMSID is the column holding the Alma MMS ID written back by a run.
	ColumnMMSID = "mms_id"
)

// Record is a view over a single row of a Dataset. Values are addressed by
// column name; identity within the dataset is positional.
type Record struct {
	index  map[string]int
	values []string
}

// Get returns the value of the named column, or "" if the column is unknown.
func (r Record) Get(column string) string {
	i, ok := r.index[column]
	if !ok {
		return ""
	}
	return r.values[i]
}

// Set overwrites the value of the named column. Unknown columns are ignored:
// the column set is fixed by the header for the lifetime of the dataset.
func (r Record) Set(column, value string) {
	if i, ok := r.index[column]; ok {
		r.values[i] = value
	}
}

// Dataset is an ordered sequence of rows sharing one fixed column set,
// established from the header on load. Column set and order never change.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Columns returns the header in original order. Callers must not modify it.
func (d *Dataset) Columns() []string {
	return d.columns
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Row returns a Record view over row i. Mutations through the Record are
// visible in the dataset.
func (d *Dataset) Row(i int) Record {
	return Record{index: d.index, values: d.rows[i]}
}

// New builds a dataset from a header and rows, for exports produced by the
// application itself. Unlike Read, it does not demand the reconciliation
// schema; it only checks that every row matches the header width.
func New(columns []string, rows [][]string) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, header has %d columns", i+1, len(row), len(columns))
		}
	}

	return &Dataset{columns: columns, index: index, rows: rows}, nil
}

// Read parses a delimited UTF-8 source with a header row into a Dataset.
// It fails with *EncodingError on invalid UTF-8 and *SchemaError when a
// required column is absent, before any row is handed to callers.
func Read(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	if !utf8.Valid(raw) {
		return nil, &EncodingError{Offset: invalidOffset(raw)}
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1 // length is validated against the header below

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("source is empty: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	// Column names are exact-match, case-sensitive.
	for _, required := range []string{ColumnOriginatingSystemID, ColumnMMSID} {
		if _, ok := index[required]; !ok {
			return nil, &SchemaError{Column: required}
		}
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse row %d: %w", len(rows)+2, err)
		}
		// A row wider than the header carries cells no column name can
		// address; they would be lost on save, so the whole source is rejected.
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d values, header has %d columns", len(rows)+2, len(row), len(header))
		}
		// Pad short rows so every row carries the full column set.
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows = append(rows, row)
	}

	return &Dataset{columns: header, index: index, rows: rows}, nil
}

// Load reads the dataset from a file on disk.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Write serializes the dataset using the same header and column order as
// loaded. Schema never changes between Read and Write.
func Write(d *Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.columns); err != nil {
		return err
	}
	for _, row := range d.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the dataset to path, replacing any existing file atomically.
// The content is staged in a temporary file in the same directory and moved
// into place with a rename, so a failure partway through never leaves the
// destination in a mixed old/new state. Failures surface as *WriteError.
func Save(d *Dataset, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := Write(d, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
