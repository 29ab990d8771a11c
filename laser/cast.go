package laser

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-laser-puzzle/level"
)

// Hit is the nearest obstacle struck by a ray
type Hit struct {
	// Grid cell of the struck obstacle
	Cell level.Point
	// Point of impact on the tracing plane
	Position r2.Vec
	// Unit normal of the struck face, pointing back against the incoming ray
	Normal r2.Vec
	// Distance travelled along the ray
	Distance float64
}

// Filter reports whether a cell may be struck. A nil Filter accepts every cell.
type Filter func(cell level.Point) bool

// Excluding returns a Filter rejecting a single cell
func Excluding(cell level.Point) Filter {
	return func(c level.Point) bool {
		return c != cell
	}
}

// Caster finds the nearest obstacle along a ray. Implementations only report obstacles at most
// maxDistance away and must skip cells rejected by filter.
type Caster interface {
	Cast(origin, direction r2.Vec, maxDistance float64, filter Filter) (Hit, bool)
}

// CasterFunc adapts a function to the Caster interface
type CasterFunc func(origin, direction r2.Vec, maxDistance float64, filter Filter) (Hit, bool)

func (f CasterFunc) Cast(origin, direction r2.Vec, maxDistance float64, filter Filter) (Hit, bool) {
	return f(origin, direction, maxDistance, filter)
}
