package laser

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-laser-puzzle/level"
)

const (
	// MaxDistance is how far the final segment reaches once nothing is left to hit. It only has to
	// be far enough to leave any rendered grid.
	MaxDistance = 1000.0
	// MaxBounces bounds the number of reflections of a single trace
	MaxBounces = 64
)

// TraceParams contains parameters to guide tracing
type TraceParams struct {
	// Maximum number of reflections to simulate. Reaching it leaves the beam Trapped.
	MaxBounces int
	// Length of the final escape segment, and the furthest a single cast may reach
	MaxDistance float64
}

func DefaultTraceParams() TraceParams {
	return TraceParams{MaxBounces: MaxBounces, MaxDistance: MaxDistance}
}

func (p TraceParams) withDefaults() TraceParams {
	if p.MaxBounces < 0 {
		p.MaxBounces = MaxBounces
	}
	if p.MaxDistance <= 0 {
		p.MaxDistance = MaxDistance
	}
	return p
}

type Outcome int

const (
	// The beam left the grid; the last point lies MaxDistance along the exit direction
	Escaped Outcome = iota
	// The bounce cap was reached; the last point is the most recent hit
	Trapped
)

func (o Outcome) String() string {
	if o == Trapped {
		return "trapped"
	}
	return "escaped"
}

// Beam is the polyline travelled by a traced ray
type Beam struct {
	// Entry point, bounce points in traversal order, then the escape point or the last hit
	Points []r2.Vec
	// Cells struck, one per hit
	Struck  []level.Point
	Bounces int
	Outcome Outcome
	// Unit direction of travel along the last segment
	Direction r2.Vec
}

// Trace follows a ray through the obstacles reported by c, reflecting off every hit, until the ray
// escapes or params.MaxBounces reflections have happened. It never fails and has no side effects.
//
// The cell the beam just left is excluded from the following cast, so a reflection can never
// strike the surface it departed from.
func Trace(c Caster, origin, direction r2.Vec, params TraceParams) Beam {
	params = params.withDefaults()

	beam := Beam{Points: []r2.Vec{origin}}
	if r2.Norm(direction) == 0 || math.IsNaN(r2.Norm(direction)) {
		beam.Outcome = Trapped
		return beam
	}
	direction = r2.Unit(direction)

	var filter Filter
	for {
		hit, ok := c.Cast(origin, direction, params.MaxDistance, filter)
		if !ok {
			beam.Points = append(beam.Points, r2.Add(origin, r2.Scale(params.MaxDistance, direction)))
			beam.Direction = direction
			beam.Outcome = Escaped
			return beam
		}
		beam.Points = append(beam.Points, hit.Position)
		beam.Struck = append(beam.Struck, hit.Cell)

		if beam.Bounces >= params.MaxBounces {
			beam.Direction = direction
			beam.Outcome = Trapped
			return beam
		}

		reflected := reflect(direction, hit.Normal)
		verifyReflectionLaw(direction, hit.Normal, reflected)

		direction = r2.Unit(reflected)
		origin = hit.Position
		filter = Excluding(hit.Cell)
		beam.Bounces++
	}
}

// TraceLevel traces the beam entering l at its starting point
func TraceLevel(l *level.Level, params TraceParams) Beam {
	return Trace(NewGridCaster(l), CellCenter(l.StartingPoint()), Dir(l.EntryDirection()), params)
}

// Reaches reports whether the final segment of an escaped beam passes through the perimeter cell
// p, i.e. the beam leaves the grid there.
func (b Beam) Reaches(p level.Point) bool {
	if b.Outcome != Escaped || len(b.Points) < 2 {
		return false
	}
	from := b.Points[len(b.Points)-2]
	to := r2.Sub(CellCenter(p), from)
	along := r2.Dot(to, b.Direction)
	if along <= 0 {
		return false
	}
	return math.Abs(r2.Cross(b.Direction, to)) < 0.5
}

// Length is the distance travelled along the polyline
func (b Beam) Length() float64 {
	total := 0.0
	for i := 1; i < len(b.Points); i++ {
		total += r2.Norm(r2.Sub(b.Points[i], b.Points[i-1]))
	}
	return total
}

// CellsCrossed lists, in order and without repeats, the cells of the grid and its perimeter ring
// that the beam passes through. width and height are the grid dimensions.
func (b Beam) CellsCrossed(width, height int) []level.Point {
	const step = 0.25
	// any straight segment leaves the augmented grid within this distance
	limit := float64(2 * (width + height + 4))

	var cells []level.Point
	seen := map[level.Point]bool{}
	inside := func(p level.Point) bool {
		return p.X >= 0 && p.X <= width+1 && p.Y >= 0 && p.Y <= height+1
	}
	for i := 1; i < len(b.Points); i++ {
		from, to := b.Points[i-1], b.Points[i]
		seg := r2.Sub(to, from)
		length := math.Min(r2.Norm(seg), limit)
		if length == 0 {
			continue
		}
		dir := r2.Unit(seg)
		for d := 0.0; d <= length; d += step {
			at := r2.Add(from, r2.Scale(d, dir))
			p := level.P(int(math.Round(at.X)), int(math.Round(at.Y)))
			if inside(p) && !seen[p] {
				seen[p] = true
				cells = append(cells, p)
			}
		}
	}
	return cells
}
