package piece

import (
	"math/rand/v2"
	"testing"

	"github.com/deitrix/tetris-srs/board"
	"github.com/deitrix/tetris-srs/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKicks(t *testing.T) {
	tests := []struct {
		typ  Type
		from int
		want [5]geom.Point
	}{
		{typ: T, from: 0, want: [5]geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, -2), pt(1, -2)}},
		{typ: S, from: 1, want: [5]geom.Point{pt(0, 0), pt(-1, 0), pt(-1, -1), pt(0, 2), pt(-1, 2)}},
		{typ: J, from: 2, want: [5]geom.Point{pt(0, 0), pt(1, 0), pt(1, -1), pt(0, 2), pt(1, 2)}},
		{typ: Z, from: 3, want: [5]geom.Point{pt(0, 0), pt(-1, 0), pt(-1, -1), pt(0, 2), pt(-1, 2)}},
		{typ: I, from: 0, want: [5]geom.Point{pt(0, 0), pt(-1, 0), pt(2, 0), pt(-1, 2), pt(2, -1)}},
		{typ: I, from: 1, want: [5]geom.Point{pt(0, 0), pt(-2, 0), pt(1, 0), pt(-2, -1), pt(1, 2)}},
		{typ: I, from: 2, want: [5]geom.Point{pt(0, 0), pt(-2, 0), pt(1, 0), pt(-2, -1), pt(1, 2)}},
		{typ: I, from: 3, want: [5]geom.Point{pt(0, 0), pt(-1, 0), pt(2, 0), pt(-1, 2), pt(2, -1)}},
		{typ: O, from: 0, want: [5]geom.Point{}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Kicks(test.typ, test.from), "%s from %d", test.typ, test.from)
	}
	assert.Equal(t, 32, kicks.Len())
}

func TestPiece_RotateO(t *testing.T) {
	var b board.Board
	p := New(O)
	assert.False(t, p.Rotate(&b))
	assert.Equal(t, New(O), p)

	for x := 0; x < board.Cols; x++ {
		b.Set(x, 2, I.Marker())
	}
	assert.False(t, p.Rotate(&b))
	assert.Equal(t, New(O), p)
}

func TestPiece_Rotate(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		var b board.Board
		p := New(T)
		require.True(t, p.Rotate(&b))
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, pt(3, 0), p.Pos)
		assert.Equal(t, [4]geom.Point{pt(1, -1), pt(1, 0), pt(1, 1), pt(0, 0)}, p.Blocks)
	})

	t.Run("kicked", func(t *testing.T) {
		var b board.Board
		b.Set(4, 1, L.Marker())
		p := New(T)
		require.True(t, p.Rotate(&b))
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, pt(4, 0), p.Pos)
		assert.Equal(t, [4]geom.Point{pt(5, -1), pt(5, 0), pt(5, 1), pt(4, 0)}, p.Cells(geom.Point{}))
	})

	t.Run("kicked out of orientation 1", func(t *testing.T) {
		var b board.Board
		b.Set(6, 8, L.Marker())
		b.Set(3, 8, L.Marker())
		p := New(T)
		p.Pos = pt(4, 8)
		require.True(t, p.Rotate(&b))
		require.Equal(t, pt(4, 8), p.Pos)
		// (0,0) hits (6,8), (-1,0) hits (3,8), (-1,-1) fits.
		require.True(t, p.Rotate(&b))
		assert.Equal(t, 2, p.Rotation)
		assert.Equal(t, pt(3, 7), p.Pos)
		assert.Equal(t, [4]geom.Point{pt(2, 0), pt(1, 0), pt(0, 0), pt(1, -1)}, p.Blocks)
		assert.Equal(t, [4]geom.Point{pt(5, 7), pt(4, 7), pt(3, 7), pt(4, 6)}, p.Cells(geom.Point{}))
	})

	t.Run("I kicked", func(t *testing.T) {
		var b board.Board
		b.Set(4, 2, L.Marker())
		b.Set(3, 1, L.Marker())
		p := New(I)
		// (0,0) hits column 4, (-1,0) hits column 3, (2,0) fits.
		require.True(t, p.Rotate(&b))
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, pt(5, 0), p.Pos)
		assert.Equal(t, [4]geom.Point{pt(1, -1), pt(1, 0), pt(1, 1), pt(1, 2)}, p.Blocks)
		assert.Equal(t, [4]geom.Point{pt(6, -1), pt(6, 0), pt(6, 1), pt(6, 2)}, p.Cells(geom.Point{}))
	})

	t.Run("I kicked out of orientation 1", func(t *testing.T) {
		var b board.Board
		p := New(I)
		p.Pos = pt(3, 5)
		require.True(t, p.Rotate(&b))
		b.Set(5, 5, L.Marker())
		// (0,0) covers (5,5), (-2,0) fits.
		require.True(t, p.Rotate(&b))
		assert.Equal(t, 2, p.Rotation)
		assert.Equal(t, pt(1, 5), p.Pos)
		assert.Equal(t, [4]geom.Point{pt(2, 0), pt(1, 0), pt(0, 0), pt(-1, 0)}, p.Blocks)
		assert.Equal(t, [4]geom.Point{pt(3, 5), pt(2, 5), pt(1, 5), pt(0, 5)}, p.Cells(geom.Point{}))
	})

	t.Run("rejected against wall", func(t *testing.T) {
		var b board.Board
		p := New(I)
		require.True(t, p.Rotate(&b))
		for p.Move(pt(-1, 0), &b) {
		}
		require.Equal(t, pt(-1, 0), p.Pos)
		before := p
		assert.False(t, p.Rotate(&b))
		assert.Equal(t, before, p)
	})

	t.Run("rejected on floor", func(t *testing.T) {
		var b board.Board
		p := New(I).Dropped(&b)
		require.Equal(t, pt(3, board.Rows-1), p.Pos)
		before := p
		assert.False(t, p.Rotate(&b))
		assert.Equal(t, before, p)
	})

	t.Run("four turns", func(t *testing.T) {
		var b board.Board
		for ty := I; ty <= T; ty++ {
			p := New(ty)
			p.Pos = pt(4, 8)
			start := p
			for i := 0; i < 4; i++ {
				require.True(t, p.Rotate(&b), "%s turn %d", ty, i)
			}
			assert.Equal(t, start, p, ty.String())
		}
	})
}

// Rotation either lands on the first of the five candidates for the transition that fits, or
// leaves the piece exactly as it was when none does.
func TestPiece_RotateOutcome(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		var b board.Board
		for y := 4; y < board.Rows; y++ {
			for x := 0; x < board.Cols; x++ {
				if rng.IntN(3) == 0 {
					b.Set(x, y, rng.IntN(NumTypes)+1)
				}
			}
		}
		p := New(Type(rng.IntN(NumTypes)))
		for turns := rng.IntN(4); turns > 0; turns-- {
			p.Rotate(&b)
		}
		p.Pos = p.Pos.Add(pt(rng.IntN(7)-3, rng.IntN(board.Rows)))
		before := p
		boardBefore := b

		ok := p.Rotate(&b)
		require.Equal(t, boardBefore, b)

		k := Kicks(before.Type, before.Rotation)
		turned := before
		turned.Blocks = before.rotated()
		if !ok {
			require.Equal(t, before, p)
			if before.Type != O {
				for _, kick := range k {
					require.False(t, fits(turned.Cells(kick), &b), "%s rejected but %s fits", before.Type, kick)
				}
			}
			continue
		}
		require.NotEqual(t, O, p.Type)
		require.Equal(t, (before.Rotation+1)%4, p.Rotation)
		require.Equal(t, turned.Blocks, p.Blocks)
		delta := geom.Point{X: p.Pos.X - before.Pos.X, Y: p.Pos.Y - before.Pos.Y}
		accepted := -1
		for j, kick := range k {
			if kick == delta {
				accepted = j
				break
			}
		}
		require.NotEqual(t, -1, accepted, "%s kicked by %s", before.Type, delta)
		for j := 0; j < accepted; j++ {
			require.False(t, fits(turned.Cells(k[j]), &b), "%s skipped candidate %d (%s) that fits", before.Type, j, k[j])
		}
		require.True(t, p.Legal(&b))
	}
}
