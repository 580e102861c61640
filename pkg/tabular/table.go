// Package tabular recovers a rectangular table from raw delimited text as
// exported by walk-forward optimization tools. Exports mix a delimited table
// with free-form footer text ("Number of profitable runs: ..."), so the
// extractor keeps only the leading rectangular run of rows.
package tabular

import (
	"strings"

	"github.com/quantfold/wfo-parser/internal/errors"
)

// Table is a recovered rectangular table. The header row is stored
// separately; every row has exactly len(Header) fields.
type Table struct {
	Header    []string
	Rows      [][]string
	Delimiter rune
}

// RowCount returns the number of data rows in the table.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the named header column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns all values of the named column in row order.
// The second return value is false if the column does not exist.
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// Extract recovers a Table from raw report text.
//
// The delimiter is detected from the header line alone: tab wins, then
// semicolon when no comma is present, then comma. Rows are accepted while
// their field count matches the header; the first mismatching line ends the
// table for good, which discards vendor footer text. This is a boundary
// policy, not a filter: once the rectangular run breaks it never resumes.
func Extract(raw string) (*Table, error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, errors.NewEmptyInputError("tabular")
	}

	header := lines[0]
	delim := detectDelimiter(header)
	expectedFields := strings.Count(header, string(delim)) + 1

	table := &Table{Delimiter: delim}
	for _, name := range strings.Split(header, string(delim)) {
		table.Header = append(table.Header, strings.TrimSpace(name))
	}

	for _, line := range lines[1:] {
		if strings.Count(line, string(delim))+1 != expectedFields {
			break
		}
		table.Rows = append(table.Rows, strings.Split(line, string(delim)))
	}

	if len(table.Rows) == 0 {
		return nil, errors.NewNoDataRowsError("tabular")
	}
	return table, nil
}

// detectDelimiter picks the field delimiter from the header line.
func detectDelimiter(header string) rune {
	switch {
	case strings.ContainsRune(header, '\t'):
		return '\t'
	case strings.ContainsRune(header, ';') && !strings.ContainsRune(header, ','):
		return ';'
	default:
		return ','
	}
}
