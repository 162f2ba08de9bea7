// Package csvtable converts between comma-delimited commission files and
// in-memory tables. The format has no quoting or escaping: a field may not
// contain a comma or a line terminator.
package csvtable

import (
	"fmt"
	"strings"

	"broker-commission/internal/types"
)

const (
	LineTerminator = "\r\n"
	Separator      = ","
)

// Decode splits text into lines and lines into fields. Every row must have
// the same number of fields as the header.
func Decode(text string) (types.Table, error) {
	lines := strings.Split(text, LineTerminator)
	table := make(types.Table, 0, len(lines))
	for i, line := range lines {
		row := types.Row(strings.Split(line, Separator))
		if i > 0 && len(row) != len(table[0]) {
			return nil, &types.FormatError{
				Line:   i + 1,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(table[0]), len(row)),
			}
		}
		table = append(table, row)
	}
	return table, nil
}

// Encode joins fields with commas and rows with CRLF. There is no terminator
// after the last row.
func Encode(table types.Table) string {
	var b strings.Builder
	for i, row := range table {
		if i > 0 {
			b.WriteString(LineTerminator)
		}
		b.WriteString(strings.Join(row, Separator))
	}
	return b.String()
}
