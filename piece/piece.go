package piece

import (
	"github.com/deitrix/tetris-srs/board"
	"github.com/deitrix/tetris-srs/cell"
	"github.com/deitrix/tetris-srs/geom"
)

// Type identifies one of the seven tetrominoes. The order is significant: a locked cell stores
// the type's Marker, which is its index plus one.
type Type int

const (
	O Type = iota
	I
	L
	J
	S
	Z
	T
)

// NumTypes is the number of piece types.
const NumTypes = 7

var typeNames = [NumTypes]string{"O", "I", "L", "J", "S", "Z", "T"}

func (t Type) String() string {
	if !t.Valid() {
		return "?"
	}
	return typeNames[t]
}

func (t Type) Valid() bool {
	return t >= 0 && t < NumTypes
}

// Marker is the value written to the board when a piece of this type locks.
func (t Type) Marker() int {
	return int(t) + 1
}

// FromMarker returns the type that left the given board marker.
func FromMarker(v int) (Type, bool) {
	t := Type(v - 1)
	return t, t.Valid()
}

var tints = [NumTypes]cell.Tint{
	O: cell.Yellow,
	I: cell.Cyan,
	L: cell.Orange,
	J: cell.Blue,
	S: cell.Green,
	Z: cell.Red,
	T: cell.Purple,
}

func (t Type) Tint() cell.Tint {
	if !t.Valid() {
		return cell.None
	}
	return tints[t]
}

// shapes are the spawn footprints. The second block of every shape is its rotation pivot.
var shapes = [NumTypes][4]geom.Point{
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	I: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	L: {{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	J: {{0, 0}, {1, 0}, {2, 0}, {0, 1}},
	S: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	Z: {{0, 1}, {1, 1}, {1, 0}, {2, 0}},
	T: {{0, 0}, {1, 0}, {2, 0}, {1, 1}},
}

// Spawn is the anchor every new piece starts at.
var Spawn = geom.Point{X: board.Cols/2 - 2, Y: 0}

// Piece is a tetromino in play. Blocks are relative to Pos; Rotation counts clockwise quarter
// turns from the spawn orientation.
type Piece struct {
	Type     Type
	Blocks   [4]geom.Point
	Pos      geom.Point
	Rotation int
}

// New returns a piece of type t in its spawn orientation at the spawn point. It panics if t is not
// Valid.
func New(t Type) Piece {
	return Piece{
		Type:   t,
		Blocks: shapes[t],
		Pos:    Spawn,
	}
}

// Cells returns the board coordinates of the piece's blocks, shifted by offset.
func (p Piece) Cells(offset geom.Point) [4]geom.Point {
	var cells [4]geom.Point
	for i, b := range p.Blocks {
		cells[i] = b.Add(p.Pos).Add(offset)
	}
	return cells
}

func fits(cells [4]geom.Point, b *board.Board) bool {
	for _, c := range cells {
		if b.Blocked(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Move shifts the piece by d if every shifted block is free, and reports whether it did.
func (p *Piece) Move(d geom.Point, b *board.Board) bool {
	if !fits(p.Cells(d), b) {
		return false
	}
	p.Pos = p.Pos.Add(d)
	return true
}

// Legal reports whether the piece may occupy its current position.
func (p Piece) Legal(b *board.Board) bool {
	return fits(p.Cells(geom.Point{}), b)
}

var down = geom.Point{X: 0, Y: 1}

// Dropped returns a copy of the piece moved down as far as it will go.
func (p Piece) Dropped(b *board.Board) Piece {
	for p.Move(down, b) {
	}
	return p
}

// Bounds returns the smallest and largest relative block coordinates.
func (p Piece) Bounds() (lo, hi geom.Point) {
	lo, hi = p.Blocks[0], p.Blocks[0]
	for _, b := range p.Blocks[1:] {
		lo.X, lo.Y = min(lo.X, b.X), min(lo.Y, b.Y)
		hi.X, hi.Y = max(hi.X, b.X), max(hi.Y, b.Y)
	}
	return lo, hi
}

// Size returns the width and height of the piece's footprint in cells.
func (p Piece) Size() (w, h int) {
	lo, hi := p.Bounds()
	return hi.X - lo.X + 1, hi.Y - lo.Y + 1
}
