package domain

import "strings"

// Table is an ingested snapshot of a header row plus data rows. It is never
// mutated once loaded.
type Table struct {
	Columns []string     `json:"columns"`
	Rows    [][]RawValue `json:"rows"`
}

// NormalizeHeader is the form column names are compared in
func NormalizeHeader(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the column, matched
// case-insensitively, or -1
func (t Table) ColumnIndex(name string) int {
	want := NormalizeHeader(name)
	for i, c := range t.Columns {
		if NormalizeHeader(c) == want {
			return i
		}
	}
	return -1
}

// FindColumn returns the first alias present in the table
func (t Table) FindColumn(aliases []string) (int, bool) {
	for _, a := range aliases {
		if i := t.ColumnIndex(a); i >= 0 {
			return i, true
		}
	}
	return -1, false
}

// Cell is Missing for short rows
func (t Table) Cell(row, col int) RawValue {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return Missing()
	}
	r := t.Rows[row]
	if col >= len(r) {
		return Missing()
	}
	return r[col]
}

func (t Table) Column(col int) []RawValue {
	out := make([]RawValue, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Cell(i, col)
	}
	return out
}

// Sample returns every column's values keyed by column name
func (t Table) Sample() map[string][]RawValue {
	out := make(map[string][]RawValue, len(t.Columns))
	for i, c := range t.Columns {
		out[c] = t.Column(i)
	}
	return out
}
