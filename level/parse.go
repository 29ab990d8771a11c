package level

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// headerLines is the number of lines before the grid: height, starting point, finishing point
const headerLines = 3

// ReadFile reads a level file and parses it
//
// Example level:
//
//	4
//	0 1
//	6 4
//	o o o / o
//	o o o o o
//	o x x o o
//	o o o \ o
//
// The beam enters from the left on the bottom row and must leave on the right of the top row.
// Flipping the bottom mirror sends it up the fourth column into the top mirror and out.
func ReadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	l, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing level file %s: %w", path, err)
	}
	return l, nil
}

// Parse builds a Level from its textual description.
func Parse(text string) (*Level, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	// the newline ending the last row does not start another one
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) < headerLines {
		return nil, &TruncatedInputError{Want: headerLines, Got: len(lines)}
	}

	heightLine := strings.TrimSpace(lines[0])
	height, err := strconv.Atoi(heightLine)
	if err != nil {
		return nil, &HeightParseError{Line: lines[0], Err: err}
	}
	if height < 0 {
		return nil, &HeightParseError{Line: lines[0]}
	}

	start, err := parsePoint(lines[1])
	if err != nil {
		return nil, err
	}
	finish, err := parsePoint(lines[2])
	if err != nil {
		return nil, err
	}

	if height > len(lines)-headerLines {
		want := math.MaxInt
		if height <= math.MaxInt-headerLines {
			want = headerLines + height
		}
		return nil, &TruncatedInputError{Want: want, Got: len(lines)}
	}

	grid := make([][]BlockType, 0, height)
	for i := 0; i < height; i++ {
		row, err := parseRow(lines[headerLines+i], i)
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
	}

	return New(grid, start, finish)
}

func parsePoint(line string) (Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Point{}, &LineParseError{Line: line}
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, &LineParseError{Line: line, Err: err}
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Point{}, &LineParseError{Line: line, Err: err}
	}
	return P(x, y), nil
}

func parseRow(line string, row int) ([]BlockType, error) {
	var blocks []BlockType
	for _, c := range line {
		if unicode.IsSpace(c) {
			continue
		}
		b, err := ParseBlockType(c)
		if err != nil {
			return nil, &UnrecognizedBlockError{Char: c, Row: row, Column: len(blocks)}
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// MarshalText writes the level in the format read by Parse, cells separated by single spaces.
func (l *Level) MarshalText() ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", l.Height())
	fmt.Fprintf(&b, "%d %d\n", l.startingPoint.X, l.startingPoint.Y)
	fmt.Fprintf(&b, "%d %d\n", l.finishingPoint.X, l.finishingPoint.Y)
	for _, row := range l.rows {
		for i, c := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(c.Rune())
		}
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func (l *Level) String() string {
	text, _ := l.MarshalText()
	return string(text)
}
