package level

// Level is a validated rectangular grid of cells with an entry and an exit on its perimeter.
//
// A Level can only be built through New (or Parse, which calls it), so every Level value is
// structurally valid. It may still be unsolvable. After construction only mirror orientations
// change, through Rotate.
type Level struct {
	// rows[0] is the top row, which is Y == height
	rows           [][]BlockType
	startingPoint  Point
	finishingPoint Point
}

// Cell is a grid position together with its block type
type Cell struct {
	Point Point
	Block BlockType
}

// New validates the grid and the two perimeter points. The grid is given top row first and is
// copied, so the caller may reuse it.
func New(grid [][]BlockType, startingPoint, finishingPoint Point) (*Level, error) {
	height := len(grid)
	if height == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyLevel
	}
	width := len(grid[0])

	for i, row := range grid {
		if len(row) != width {
			return nil, &GridWidthError{
				Expected: width,
				Actual:   len(row),
				Row:      i,
				Cells:    append([]BlockType(nil), row...),
			}
		}
	}

	if err := verifyPoint(height, width, startingPoint); err != nil {
		return nil, err
	}
	if err := verifyPoint(height, width, finishingPoint); err != nil {
		return nil, err
	}

	rows := make([][]BlockType, height)
	for i, row := range grid {
		rows[i] = append([]BlockType(nil), row...)
	}
	return &Level{
		rows:           rows,
		startingPoint:  startingPoint,
		finishingPoint: finishingPoint,
	}, nil
}

func verifyPoint(height, width int, p Point) error {
	xEdge := p.X == 0 || p.X == width+1
	yEdge := p.Y == 0 || p.Y == height+1
	xInside := p.X >= 1 && p.X <= width
	yInside := p.Y >= 1 && p.Y <= height

	if (xEdge && yInside) || (yEdge && xInside) {
		return nil
	}
	return &PointLocationError{Point: p, MaxY: height + 1, MaxX: width + 1}
}

func (l *Level) Height() int {
	return len(l.rows)
}

func (l *Level) Width() int {
	return len(l.rows[0])
}

func (l *Level) StartingPoint() Point {
	return l.startingPoint
}

func (l *Level) FinishingPoint() Point {
	return l.finishingPoint
}

// InBounds reports whether p addresses a cell inside the grid
func (l *Level) InBounds(p Point) bool {
	return p.X >= 1 && p.X <= l.Width() && p.Y >= 1 && p.Y <= l.Height()
}

func (l *Level) index(p Point) (row, col int) {
	return l.Height() - p.Y, p.X - 1
}

// At returns the block at p. The second result is false for points outside the grid.
func (l *Level) At(p Point) (BlockType, bool) {
	if !l.InBounds(p) {
		return BlockType{}, false
	}
	row, col := l.index(p)
	return l.rows[row][col], true
}

// Rows returns a copy of the grid, top row first
func (l *Level) Rows() [][]BlockType {
	rows := make([][]BlockType, len(l.rows))
	for i, row := range l.rows {
		rows[i] = append([]BlockType(nil), row...)
	}
	return rows
}

// Cells lists every cell of the grid, bottom row first and left to right within a row.
func (l *Level) Cells() []Cell {
	cells := make([]Cell, 0, l.Height()*l.Width())
	for y := 1; y <= l.Height(); y++ {
		for x := 1; x <= l.Width(); x++ {
			p := P(x, y)
			b, _ := l.At(p)
			cells = append(cells, Cell{Point: p, Block: b})
		}
	}
	return cells
}

// Mirrors lists the positions of all mirrors, in the order of Cells
func (l *Level) Mirrors() []Point {
	var mirrors []Point
	for _, c := range l.Cells() {
		if c.Block.IsMirror() {
			mirrors = append(mirrors, c.Point)
		}
	}
	return mirrors
}

// Clone returns a deep copy whose orientations can be changed independently
func (l *Level) Clone() *Level {
	return &Level{
		rows:           l.Rows(),
		startingPoint:  l.startingPoint,
		finishingPoint: l.finishingPoint,
	}
}

// inward is the unit step from a perimeter point into the grid
func (l *Level) inward(p Point) Point {
	switch {
	case p.X == 0:
		return P(1, 0)
	case p.X == l.Width()+1:
		return P(-1, 0)
	case p.Y == 0:
		return P(0, 1)
	default:
		return P(0, -1)
	}
}

// EntryDirection is the axis direction in which the beam enters the grid from the starting point
func (l *Level) EntryDirection() Point {
	return l.inward(l.startingPoint)
}

// ExitDirection is the axis direction a beam travels when it leaves the grid through the
// finishing point
func (l *Level) ExitDirection() Point {
	return l.inward(l.finishingPoint).Neg()
}
