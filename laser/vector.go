package laser

import (
	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-laser-puzzle/level"
)

// V is a shorthand constructor for a point on the tracing plane
func V(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

// CellCenter maps a grid coordinate onto the tracing plane. Each cell is a unit square centred
// on its coordinate.
func CellCenter(p level.Point) r2.Vec {
	return V(float64(p.X), float64(p.Y))
}

// Dir converts an axis step such as level.Level.EntryDirection into a unit vector
func Dir(step level.Point) r2.Vec {
	return r2.Unit(V(float64(step.X), float64(step.Y)))
}

func toPT(v r2.Vec) pt.Vector {
	return pt.Vector{X: v.X, Y: v.Y, Z: 0}
}

func fromPT(v pt.Vector) r2.Vec {
	return V(v.X, v.Y)
}

// reflect mirrors direction d about a surface with unit normal n
func reflect(d, n r2.Vec) r2.Vec {
	return r2.Sub(d, r2.Scale(2*r2.Dot(n, d), n))
}
