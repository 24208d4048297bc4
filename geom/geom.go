package geom

import "fmt"

// Point is a cell coordinate. X grows to the right and Y grows downwards, so row 0 is the top of
// the field.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
