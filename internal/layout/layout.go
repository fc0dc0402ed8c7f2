// Package layout decides how many columns the board uses and which column
// each card lands in.
package layout

// MaxColumns is the widest layout the board uses.
const MaxColumns = 3

// DefaultBreakpoints are the widths at which the board switches to two and
// then three columns.
var DefaultBreakpoints = []int{768, 1536}

// Columns maps a viewport width to a column count: below the first breakpoint
// one column, below the second two, otherwise three. Missing or malformed
// breakpoints fall back to DefaultBreakpoints.
func Columns(width int, breakpoints []int) int {
	if len(breakpoints) != 2 || breakpoints[1] <= breakpoints[0] {
		breakpoints = DefaultBreakpoints
	}

	switch {
	case width >= breakpoints[1]:
		return 3
	case width >= breakpoints[0]:
		return 2
	default:
		return 1
	}
}

// CellColumns converts a terminal width in cells to viewport units using
// cellWidth units per cell, then applies Columns.
func CellColumns(cells, cellWidth int, breakpoints []int) int {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	return Columns(cells*cellWidth, breakpoints)
}

// Distribute places item i in column i mod n. The result always has n
// columns, some possibly empty.
func Distribute[T any](items []T, n int) [][]T {
	if n < 1 {
		n = 1
	}

	cols := make([][]T, n)
	for i, item := range items {
		cols[i%n] = append(cols[i%n], item)
	}
	return cols
}

// Position returns the column and row item index i occupies in an n column
// layout.
func Position(i, n int) (col, row int) {
	if n < 1 {
		n = 1
	}
	return i % n, i / n
}

// Index is the inverse of Position. It returns -1 when the cell holds no item
// for a layout of total items.
func Index(col, row, n, total int) int {
	if n < 1 {
		n = 1
	}
	if col < 0 || col >= n || row < 0 {
		return -1
	}
	i := row*n + col
	if i >= total {
		return -1
	}
	return i
}
