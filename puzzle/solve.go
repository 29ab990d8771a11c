package puzzle

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
)

// MaxSolverMirrors bounds the search space at 2^MaxSolverMirrors orientations
const MaxSolverMirrors = 20

var ErrTooManyMirrors = errors.New("too many mirrors to search")

// noClick marks the root of the search tree
const noClick = 0xff

// Solution is a shortest sequence of clicks that solves a level
type Solution struct {
	Clicks []level.Point
}

// Solve searches breadth first over mirror orientations for the fewest clicks that send the
// beam out through the finishing point. l is not modified.
func Solve(l *level.Level, mode level.RotationMode, params laser.TraceParams) (Solution, bool, error) {
	mirrors := l.Mirrors()
	if len(mirrors) > MaxSolverMirrors {
		return Solution{}, false, fmt.Errorf("%d mirrors: %w", len(mirrors), ErrTooManyMirrors)
	}

	index := make(map[level.Point]int, len(mirrors))
	for i, m := range mirrors {
		index[m] = i
	}
	// orientation bits flipped by each click
	clicks := make([]uint64, len(mirrors))
	for i, m := range mirrors {
		rotated, err := l.Clone().Rotate(m, mode)
		if err != nil {
			return Solution{}, false, err
		}
		for _, p := range rotated {
			clicks[i] |= 1 << index[p]
		}
	}

	solved := func(state uint64) bool {
		work := l.Clone()
		for i, m := range mirrors {
			if state&(1<<i) != 0 {
				if _, err := work.Rotate(m, level.RotateSingle); err != nil {
					return false
				}
			}
		}
		return laser.TraceLevel(work, params).Reaches(l.FinishingPoint())
	}

	// state -> parent<<8 | click
	visited := intmap.New[uint64, uint64](1 << min(len(mirrors), 16))
	visited.Put(0, noClick)
	queue := []uint64{0}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if solved(state) {
			return Solution{Clicks: path(visited, mirrors, state)}, true, nil
		}
		for i, mask := range clicks {
			next := state ^ mask
			if _, ok := visited.Get(next); ok {
				continue
			}
			visited.Put(next, state<<8|uint64(i))
			queue = append(queue, next)
		}
	}
	return Solution{}, false, nil
}

func path(visited *intmap.Map[uint64, uint64], mirrors []level.Point, state uint64) []level.Point {
	var clicks []level.Point
	for {
		v, _ := visited.Get(state)
		click := v & 0xff
		if click == noClick {
			break
		}
		clicks = append(clicks, mirrors[click])
		state = v >> 8
	}
	for i, j := 0, len(clicks)-1; i < j; i, j = i+1, j-1 {
		clicks[i], clicks[j] = clicks[j], clicks[i]
	}
	return clicks
}
