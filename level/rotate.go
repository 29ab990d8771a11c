package level

import (
	"fmt"
	"strings"
)

// RotationMode selects what a click on a mirror rotates
type RotationMode int

const (
	// RotateSingle toggles only the clicked mirror
	RotateSingle RotationMode = iota
	// RotatePropagating also toggles every mirror among the clicked cell's four neighbours
	RotatePropagating
)

func (m RotationMode) String() string {
	switch m {
	case RotateSingle:
		return "single"
	case RotatePropagating:
		return "propagating"
	}
	return fmt.Sprintf("RotationMode(%d)", int(m))
}

func ParseRotationMode(s string) (RotationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return RotateSingle, nil
	case "propagating", "propagate":
		return RotatePropagating, nil
	}
	return RotateSingle, fmt.Errorf("unknown rotation mode %q", s)
}

// Rotate toggles the mirror at target, and in propagating mode its neighbouring mirrors too.
// It returns the points whose orientation changed, target first. Targets outside the grid or
// that are not mirrors are rejected without mutating anything.
func (l *Level) Rotate(target Point, mode RotationMode) ([]Point, error) {
	b, ok := l.At(target)
	if !ok {
		return nil, fmt.Errorf("rotating %v: %w", target, ErrOutOfBounds)
	}
	if !b.IsMirror() {
		return nil, fmt.Errorf("rotating %v: %w", target, ErrNotMirror)
	}

	rotated := []Point{target}
	if mode == RotatePropagating {
		for _, n := range target.Adjacent() {
			if nb, ok := l.At(n); ok && nb.IsMirror() {
				rotated = append(rotated, n)
			}
		}
	}
	for _, p := range rotated {
		l.toggle(p)
	}
	return rotated, nil
}

func (l *Level) toggle(p Point) {
	row, col := l.index(p)
	cell := &l.rows[row][col]
	cell.Mirror = cell.Mirror.Toggle()
}
