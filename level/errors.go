package level

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyLevel  = errors.New("empty level")
	ErrNotMirror   = errors.New("cell is not a mirror")
	ErrOutOfBounds = errors.New("point is outside the grid")
)

// GridWidthError reports a row whose length disagrees with the first row
type GridWidthError struct {
	Expected int
	Actual   int
	// Index of the offending row, 0 being the top line of the grid
	Row   int
	Cells []BlockType
}

func (e *GridWidthError) Error() string {
	var b strings.Builder
	for _, c := range e.Cells {
		b.WriteRune(c.Rune())
	}
	return fmt.Sprintf("expected width %d, got %d on row %d %q", e.Expected, e.Actual, e.Row, b.String())
}

// PointLocationError reports a starting or finishing point that is not on the perimeter
type PointLocationError struct {
	Point Point
	// Height+1 and Width+1 of the grid the point was checked against
	MaxY, MaxX int
}

func (e *PointLocationError) Error() string {
	return fmt.Sprintf("point %v should be on the perimeter of the grid - exactly one of x in {0, %d} or y in {0, %d} must hold, the other coordinate inside the grid", e.Point, e.MaxX, e.MaxY)
}

// LineParseError reports a coordinate line that is not two integers
type LineParseError struct {
	Line string
	Err  error
}

func (e *LineParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("expected two integer elements, got %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("expected two integer elements, got %q", e.Line)
}

func (e *LineParseError) Unwrap() error {
	return e.Err
}

type HeightParseError struct {
	Line string
	Err  error
}

func (e *HeightParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("expected a non-negative height, got %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("expected a non-negative height, got %q", e.Line)
}

func (e *HeightParseError) Unwrap() error {
	return e.Err
}

type TruncatedInputError struct {
	Want, Got int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("input too short: expected at least %d lines, got %d", e.Want, e.Got)
}

// UnrecognizedBlockError is returned when a cell character is not part of the level alphabet.
// Row and Column are -1 when the character was decoded outside of a grid.
type UnrecognizedBlockError struct {
	Char        rune
	Row, Column int
}

func (e *UnrecognizedBlockError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("unrecognized block type character %q", e.Char)
	}
	return fmt.Sprintf("unrecognized block type character %q at row %d column %d", e.Char, e.Row, e.Column)
}
