// Package models defines the values exported to and read back from workbooks.
package models

// CellRow represents a single worksheet row with typed cell values.
type CellRow struct {
	// R is the row index (1-based).
	R int
	// C holds cell values from column A onwards. Empty cells are nil.
	C []any
}

// Cell returns the value at the 0-based column index, or nil when the row is shorter.
func (r CellRow) Cell(col int) any {
	if col < 0 || col >= len(r.C) {
		return nil
	}
	return r.C[col]
}
