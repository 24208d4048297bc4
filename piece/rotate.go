package piece

import (
	"github.com/deitrix/tetris-srs/board"
	"github.com/deitrix/tetris-srs/geom"
	"github.com/kamstrup/intmap"
)

// kickCategory selects a kick table. The I piece has its own; J, L, S, T and Z share one.
type kickCategory uint32

const (
	kickJLSTZ kickCategory = iota
	kickLong
)

// kickTable holds five candidate offsets per (from, to) orientation pair.
type kickTable [4][4][5]geom.Point

var jlstzKicks = kickTable{
	{ // from 0
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
	{ // from 1
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	},
	{ // from 2
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	{ // from 3
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
}

var longKicks = kickTable{
	{ // from 0
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
	{ // from 1
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	{ // from 2
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	},
	{ // from 3
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	},
}

func kickKey(c kickCategory, from, to int) uint32 {
	return uint32(c)<<4 | uint32(from)<<2 | uint32(to)
}

var kicks = func() *intmap.Map[uint32, [5]geom.Point] {
	m := intmap.New[uint32, [5]geom.Point](32)
	for c, table := range map[kickCategory]*kickTable{kickJLSTZ: &jlstzKicks, kickLong: &longKicks} {
		for from := range table {
			for to := range table[from] {
				m.Put(kickKey(c, from, to), table[from][to])
			}
		}
	}
	return m
}()

func (t Type) kickCategory() kickCategory {
	if t == I {
		return kickLong
	}
	return kickJLSTZ
}

// Kicks returns the candidate offsets tried when a piece of type t turns clockwise out of
// orientation from. The O piece has none.
func Kicks(t Type, from int) [5]geom.Point {
	if t == O {
		return [5]geom.Point{}
	}
	from &= 3
	k, _ := kicks.Get(kickKey(t.kickCategory(), from, (from+1)%4))
	return k
}

// rotated returns the blocks turned a quarter clockwise about the second block.
func (p Piece) rotated() [4]geom.Point {
	pivot := p.Blocks[1]
	var out [4]geom.Point
	for i, b := range p.Blocks {
		dx, dy := b.X-pivot.X, b.Y-pivot.Y
		out[i] = geom.Point{X: pivot.X - dy, Y: pivot.Y + dx}
	}
	return out
}

// Rotate turns the piece clockwise, trying each kick offset in order until the turned piece
// fits. If none fits, or the piece is an O, nothing changes and Rotate returns false.
func (p *Piece) Rotate(b *board.Board) bool {
	if p.Type == O {
		return false
	}
	from := p.Rotation
	to := (from + 1) % 4
	turned := *p
	turned.Blocks = p.rotated()
	for _, k := range Kicks(p.Type, from) {
		if !fits(turned.Cells(k), b) {
			continue
		}
		p.Blocks = turned.Blocks
		p.Pos = p.Pos.Add(k)
		p.Rotation = to
		return true
	}
	return false
}
