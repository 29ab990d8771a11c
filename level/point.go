package level

import "fmt"

type Coordinate = int

// Point is a grid coordinate.
//
// X is the column, counted from 1 at the left edge of the grid. Y is the row, counted from 1 at the
// bottom edge. Coordinates 0 and width+1 (or height+1) address the perimeter just outside the grid.
type Point struct {
	X, Y Coordinate
}

// P is a shorthand constructor for Point
func P(x, y Coordinate) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// IsAdjacent reports whether q is one of the four edge neighbours of p.
func (p Point) IsAdjacent(q Point) bool {
	return abs(p.X-q.X)+abs(p.Y-q.Y) == 1
}

var neighbourOffsets = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Adjacent returns the four edge neighbours of p. No bounds checks are done, callers must
// intersect the result with the cells of a Level.
func (p Point) Adjacent() [4]Point {
	var out [4]Point
	for i, o := range neighbourOffsets {
		out[i] = p.Add(o)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
