package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"broker-commission/internal/types"
)

// tableReader feeds an already decoded table to gocsv, which would otherwise
// insist on encoding/csv quoting rules.
type tableReader struct {
	table types.Table
	pos   int
}

var _ gocsv.CSVReader = (*tableReader)(nil)

func (r *tableReader) Read() ([]string, error) {
	if r.pos >= len(r.table) {
		return nil, io.EOF
	}
	row := r.table[r.pos]
	r.pos++
	return append([]string(nil), row...), nil
}

func (r *tableReader) ReadAll() ([][]string, error) {
	var out [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
}

// Unmarshal binds the data rows of table to out, a pointer to a slice of
// csv-tagged structs. Columns are matched by header name.
func Unmarshal(table types.Table, out any) error {
	if len(table) == 0 {
		return &types.FormatError{Reason: "missing header row"}
	}
	err := gocsv.UnmarshalCSV(&tableReader{table: table}, out)
	if err == nil {
		return nil
	}

	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		fe := &types.FormatError{Line: parseErr.Line, Column: parseErr.Column, Err: parseErr.Err}
		if c := parseErr.Column - 1; c >= 0 && c < len(table[0]) {
			fe.Field = table[0][c]
		}
		return fe
	}
	return &types.FormatError{Reason: fmt.Sprintf("bind %T", out), Err: err}
}

// Require checks that every named column is present in the header.
func Require(table types.Table, columns ...string) error {
	if len(table) == 0 {
		return &types.FormatError{Reason: "missing header row"}
	}
	for _, col := range columns {
		if table.ColumnIndex(col) < 0 {
			return &types.FormatError{Line: 1, Field: col, Reason: "missing column"}
		}
	}
	return nil
}
