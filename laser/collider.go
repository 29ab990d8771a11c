package laser

import (
	"math"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-laser-puzzle/level"
)

// Colliders are vertical slabs extruded from the tracing plane (z == 0). The slab is offset from
// the plane so that the seam between the two triangles of a face never crosses a cell centre line.
const (
	slabBottom = -1.0
	slabTop    = 0.5
)

type collider struct {
	cell      level.Point
	triangles []*pt.Triangle
}

// GridCaster is a Caster over the cells of a Level. Blocking cells collide on their four faces,
// mirrors on the diagonal they present. It is a snapshot: build a new GridCaster after rotating.
type GridCaster struct {
	colliders []collider
}

func NewGridCaster(l *level.Level) *GridCaster {
	g := &GridCaster{}
	for _, cell := range l.Cells() {
		var tris []*pt.Triangle
		switch cell.Block.Kind {
		case level.Blocking:
			tris = blockTriangles(CellCenter(cell.Point))
		case level.Mirror:
			tris = mirrorTriangles(CellCenter(cell.Point), cell.Block.Mirror)
		default:
			continue
		}
		g.colliders = append(g.colliders, collider{cell: cell.Point, triangles: tris})
	}
	return g
}

// Cast returns the nearest collider face along the ray.
func (g *GridCaster) Cast(origin, direction r2.Vec, maxDistance float64, filter Filter) (Hit, bool) {
	ray := pt.Ray{Origin: toPT(origin), Direction: toPT(direction).Normalize()}

	bestT := math.Inf(1)
	var bestTri *pt.Triangle
	var bestCell level.Point
	for _, c := range g.colliders {
		if filter != nil && !filter(c.cell) {
			continue
		}
		for _, tri := range c.triangles {
			hit := tri.Intersect(ray)
			if !hit.Ok() || hit.T > maxDistance || hit.T >= bestT {
				continue
			}
			bestT = hit.T
			bestTri = tri
			bestCell = c.cell
		}
	}
	if bestTri == nil {
		return Hit{}, false
	}

	normal := fromPT(bestTri.Normal())
	if r2.Dot(normal, fromPT(ray.Direction)) > 0 {
		normal = r2.Scale(-1, normal)
	}
	return Hit{
		Cell:     bestCell,
		Position: fromPT(ray.Position(bestT)),
		Normal:   r2.Unit(normal),
		Distance: bestT,
	}, true
}

// Mesh joins every collider into a single mesh, e.g. for SaveSTL
func (g *GridCaster) Mesh() *pt.Mesh {
	var tris []*pt.Triangle
	for _, c := range g.colliders {
		tris = append(tris, c.triangles...)
	}
	return pt.NewMesh(tris)
}

// wall builds the vertical quad standing on the segment a-b as two triangles
func wall(a, b r2.Vec) []*pt.Triangle {
	v1 := pt.Vector{X: a.X, Y: a.Y, Z: slabBottom}
	v2 := pt.Vector{X: b.X, Y: b.Y, Z: slabBottom}
	v3 := pt.Vector{X: b.X, Y: b.Y, Z: slabTop}
	v4 := pt.Vector{X: a.X, Y: a.Y, Z: slabTop}
	return []*pt.Triangle{
		buildTri(v1, v2, v3),
		buildTri(v1, v3, v4),
	}
}

func buildTri(v1, v2, v3 pt.Vector) *pt.Triangle {
	tri := pt.NewTriangle(v1, v2, v3, pt.Vector{}, pt.Vector{}, pt.Vector{}, pt.Material{})
	tri.FixNormals()
	return tri
}

func blockTriangles(center r2.Vec) []*pt.Triangle {
	bl := r2.Add(center, V(-0.5, -0.5))
	br := r2.Add(center, V(0.5, -0.5))
	tr := r2.Add(center, V(0.5, 0.5))
	tl := r2.Add(center, V(-0.5, 0.5))

	var tris []*pt.Triangle
	tris = append(tris, wall(bl, br)...)
	tris = append(tris, wall(br, tr)...)
	tris = append(tris, wall(tr, tl)...)
	tris = append(tris, wall(tl, bl)...)
	return tris
}

func mirrorTriangles(center r2.Vec, state level.MirrorState) []*pt.Triangle {
	if state == level.Flipped {
		// `\`
		return wall(r2.Add(center, V(-0.5, 0.5)), r2.Add(center, V(0.5, -0.5)))
	}
	// `/`
	return wall(r2.Add(center, V(-0.5, -0.5)), r2.Add(center, V(0.5, 0.5)))
}
