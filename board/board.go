package board

import "strings"

const (
	// Rows is the height of the field
	Rows = 20
	// Cols is the width of the field
	Cols = 10
)

// Board holds the locked cells of the field. A zero cell is empty; anything else is the marker of
// the piece type that was locked there.
type Board struct {
	cells [Rows][Cols]int
}

func inField(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Occupied reports whether (x, y) lies in the field and holds a locked cell. Cells above the
// field (y < 0) are never occupied.
func (b *Board) Occupied(x, y int) bool {
	return inField(x, y) && b.cells[y][x] != 0
}

// Blocked reports whether a piece cell may not sit at (x, y): outside the walls, below the floor,
// or on a locked cell. Above the field only the walls apply.
func (b *Board) Blocked(x, y int) bool {
	if x < 0 || x >= Cols || y >= Rows {
		return true
	}
	return b.Occupied(x, y)
}

// Cell returns the marker at (x, y), or 0 outside the field.
func (b *Board) Cell(x, y int) int {
	if !inField(x, y) {
		return 0
	}
	return b.cells[y][x]
}

// Set writes a marker at (x, y). Writes outside the field are dropped.
func (b *Board) Set(x, y, v int) {
	if !inField(x, y) {
		return
	}
	b.cells[y][x] = v
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Cols; x++ {
		if b.cells[y][x] == 0 {
			return false
		}
	}
	return true
}

// removeRow shifts every row above y down by one and empties the top row.
func (b *Board) removeRow(y int) {
	for row := y; row > 0; row-- {
		b.cells[row] = b.cells[row-1]
	}
	b.cells[0] = [Cols]int{}
}

// ClearFullRows removes every full row and returns how many were removed. Rows are scanned from the
// bottom up and a row index is checked again after the rows above it drop into place.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := Rows - 1; y >= 0; {
		if b.rowFull(y) {
			b.removeRow(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}

func (b *Board) Reset() {
	b.cells = [Rows][Cols]int{}
}

// String renders the board one row per line, '.' for empty cells and the marker digit otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if v := b.cells[y][x]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + v%10))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
