package laser

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-laser-puzzle/level"
)

const tolerance = 1e-9

func assertVec(t *testing.T, want, got r2.Vec, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tolerance, msgAndArgs...)
}

func mustParse(t *testing.T, text string) *level.Level {
	t.Helper()
	l, err := level.Parse(text)
	require.NoError(t, err)
	return l
}

func readLevel(t *testing.T, name string) *level.Level {
	t.Helper()
	l, err := level.ReadFile(filepath.Join("..", "testdata", "levels", name))
	require.NoError(t, err)
	return l
}

var nothing = CasterFunc(func(origin, direction r2.Vec, maxDistance float64, filter Filter) (Hit, bool) {
	return Hit{}, false
})

func TestTraceEmpty(t *testing.T) {
	beam := Trace(nothing, V(0, 0), V(1, 0), DefaultTraceParams())
	require.Len(t, beam.Points, 2)
	assertVec(t, V(0, 0), beam.Points[0])
	assertVec(t, V(MaxDistance, 0), beam.Points[1])
	assert.Equal(t, Escaped, beam.Outcome)
	assert.Equal(t, 0, beam.Bounces)

	// a grid with no obstacles behaves the same
	l := mustParse(t, "2\n0 1\n4 1\no o o\no o o\n")
	beam = Trace(NewGridCaster(l), V(0, 0), V(1, 0), DefaultTraceParams())
	require.Len(t, beam.Points, 2)
	assertVec(t, V(MaxDistance, 0), beam.Points[1])
}

func TestTraceNormalizesDirection(t *testing.T) {
	beam := Trace(nothing, V(1, 1), V(3, 4), DefaultTraceParams())
	assertVec(t, V(0.6, 0.8), beam.Direction)
	assertVec(t, V(1+0.6*MaxDistance, 1+0.8*MaxDistance), beam.Points[1])
}

func TestTraceBlockingCell(t *testing.T) {
	l := mustParse(t, "1\n0 1\n2 1\nx\n")
	beam := TraceLevel(l, DefaultTraceParams())

	require.Len(t, beam.Points, 3)
	assertVec(t, V(0, 1), beam.Points[0])
	// near face of the cell
	assertVec(t, V(0.5, 1), beam.Points[1])
	assertVec(t, V(0.5-MaxDistance, 1), beam.Points[2])
	assertVec(t, V(-1, 0), beam.Direction)
	assert.Equal(t, []level.Point{level.P(1, 1)}, beam.Struck)
	assert.Equal(t, 1, beam.Bounces)
	assert.Equal(t, Escaped, beam.Outcome)
}

func TestTraceBlockingCellFromAbove(t *testing.T) {
	l := mustParse(t, "2\n1 3\n3 1\nx o\no o\n")
	beam := TraceLevel(l, DefaultTraceParams())

	// the beam enters downwards in column 1 and the block at (1,2) sends it straight back
	require.Len(t, beam.Points, 3)
	assertVec(t, V(1, 2.5), beam.Points[1])
	assertVec(t, V(0, 1), beam.Direction)
}

func TestTraceMirror(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start r2.Vec
		dir   r2.Vec
		want  r2.Vec
	}{
		{"default_from_left", "1\n0 1\n2 1\n/\n", V(0, 1), V(1, 0), V(0, 1)},
		{"default_from_right", "1\n0 1\n2 1\n/\n", V(2, 1), V(-1, 0), V(0, -1)},
		{"default_from_below", "1\n0 1\n2 1\n/\n", V(1, 0), V(0, 1), V(1, 0)},
		{"flipped_from_left", "1\n0 1\n2 1\n\\\n", V(0, 1), V(1, 0), V(0, -1)},
		{"flipped_from_above", "1\n0 1\n2 1\n\\\n", V(1, 2), V(0, -1), V(1, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := mustParse(t, test.text)
			beam := Trace(NewGridCaster(l), test.start, test.dir, DefaultTraceParams())
			require.Len(t, beam.Points, 3)
			assertVec(t, V(1, 1), beam.Points[1])
			assertVec(t, test.want, beam.Direction)
			assertVec(t, r2.Add(V(1, 1), r2.Scale(MaxDistance, test.want)), beam.Points[2])
		})
	}
}

func TestRotatingMirrorSwapsNormal(t *testing.T) {
	l := mustParse(t, "1\n0 1\n2 1\n/\n")
	caster := NewGridCaster(l)
	hit, ok := caster.Cast(V(0, 1), V(1, 0), MaxDistance, nil)
	require.True(t, ok)
	assertVec(t, V(-math.Sqrt2/2, math.Sqrt2/2), hit.Normal)

	_, err := l.Rotate(level.P(1, 1), level.RotateSingle)
	require.NoError(t, err)
	caster = NewGridCaster(l)
	hit, ok = caster.Cast(V(0, 1), V(1, 0), MaxDistance, nil)
	require.True(t, ok)
	assertVec(t, V(-math.Sqrt2/2, -math.Sqrt2/2), hit.Normal)
}

func TestTraceIntro(t *testing.T) {
	l := readLevel(t, "intro.txt")

	beam := TraceLevel(l, DefaultTraceParams())
	require.Len(t, beam.Points, 3)
	assertVec(t, V(4, 1), beam.Points[1])
	assertVec(t, V(0, -1), beam.Direction)
	assert.False(t, beam.Reaches(l.FinishingPoint()))

	_, err := l.Rotate(level.P(4, 1), level.RotateSingle)
	require.NoError(t, err)

	beam = TraceLevel(l, DefaultTraceParams())
	require.Len(t, beam.Points, 4)
	assertVec(t, V(0, 1), beam.Points[0])
	assertVec(t, V(4, 1), beam.Points[1])
	assertVec(t, V(4, 4), beam.Points[2])
	assertVec(t, V(4+MaxDistance, 4), beam.Points[3])
	assert.Equal(t, []level.Point{level.P(4, 1), level.P(4, 4)}, beam.Struck)
	assert.True(t, beam.Reaches(l.FinishingPoint()))
	assert.False(t, beam.Reaches(level.P(6, 3)))
	assert.InDelta(t, 7+MaxDistance, beam.Length(), 1e-6)
}

func TestTraceZigzag(t *testing.T) {
	l := readLevel(t, "zigzag.txt")
	beam := TraceLevel(l, DefaultTraceParams())

	want := []r2.Vec{V(0, 1), V(1, 1), V(1, 2), V(2, 2), V(2, 2+MaxDistance)}
	require.Len(t, beam.Points, len(want))
	for i := range want {
		assertVec(t, want[i], beam.Points[i], fmt.Sprintf("point %d", i))
	}
	assert.Equal(t, 3, beam.Bounces)
}

func TestTraceIsIdempotent(t *testing.T) {
	l := readLevel(t, "chain.txt")
	first := TraceLevel(l, DefaultTraceParams())
	second := TraceLevel(l, DefaultTraceParams())
	assert.Equal(t, first, second)
}

// Two facing walls with nothing in between keep the beam bouncing forever
var corridor = CasterFunc(func(origin, direction r2.Vec, maxDistance float64, filter Filter) (Hit, bool) {
	if direction.X > 0 {
		return Hit{Cell: level.P(1, 0), Position: V(1, 0), Normal: V(-1, 0), Distance: 1 - origin.X}, true
	}
	return Hit{Cell: level.P(-1, 0), Position: V(-1, 0), Normal: V(1, 0), Distance: origin.X + 1}, true
})

func TestTraceBounceCap(t *testing.T) {
	for _, bounces := range []int{0, 1, 5, MaxBounces} {
		t.Run(fmt.Sprint(bounces), func(t *testing.T) {
			beam := Trace(corridor, V(0, 0), V(1, 0), TraceParams{MaxBounces: bounces, MaxDistance: MaxDistance})
			assert.Equal(t, Trapped, beam.Outcome)
			assert.Equal(t, bounces, beam.Bounces)
			// origin, then one hit per reflection plus the hit that ran into the cap
			require.Len(t, beam.Points, bounces+2)
			last := beam.Points[len(beam.Points)-1]
			assert.InDelta(t, 1, math.Abs(last.X), tolerance)
		})
	}
}

func TestTraceExcludesDepartedCell(t *testing.T) {
	var filters []Filter
	calls := 0
	caster := CasterFunc(func(origin, direction r2.Vec, maxDistance float64, filter Filter) (Hit, bool) {
		filters = append(filters, filter)
		calls++
		if calls > 2 {
			return Hit{}, false
		}
		return Hit{Cell: level.P(calls, 0), Position: V(float64(calls), 0), Normal: V(-1, 0)}, true
	})
	Trace(caster, V(0, 0), V(1, 0), DefaultTraceParams())

	require.Len(t, filters, 3)
	assert.Nil(t, filters[0])
	assert.False(t, filters[1](level.P(1, 0)))
	assert.True(t, filters[1](level.P(2, 0)))
	assert.False(t, filters[2](level.P(2, 0)))
	assert.True(t, filters[2](level.P(1, 0)))
}

func TestTraceZeroDirection(t *testing.T) {
	beam := Trace(corridor, V(3, 3), V(0, 0), DefaultTraceParams())
	assert.Equal(t, []r2.Vec{V(3, 3)}, beam.Points)
	assert.Equal(t, Trapped, beam.Outcome)
}

func TestReflectPreservesLength(t *testing.T) {
	normals := []r2.Vec{V(1, 0), V(0, 1), r2.Unit(V(1, 1)), r2.Unit(V(-1, 1)), r2.Unit(V(3, -7))}
	directions := []r2.Vec{V(1, 0), V(0.3, -2), V(-5, 5), V(1e-3, 7), V(2, 0)}
	for _, n := range normals {
		for _, d := range directions {
			r := reflect(d, n)
			assert.InDelta(t, r2.Norm(d), r2.Norm(r), tolerance, "reflect(%v, %v)", d, n)
			// the tangential component is kept, the normal component flips
			assert.InDelta(t, -r2.Dot(d, n), r2.Dot(r, n), tolerance)
			assert.InDelta(t, r2.Cross(n, d), r2.Cross(n, r), tolerance)
		}
	}
}

func TestGrazingMirror(t *testing.T) {
	// a ray along the mirror's own diagonal does not intersect its face
	l := mustParse(t, "1\n0 1\n2 1\n/\n")
	beam := Trace(NewGridCaster(l), V(0, 0), V(1, 1), DefaultTraceParams())
	assert.Equal(t, Escaped, beam.Outcome)
	assert.Len(t, beam.Points, 2)
}

func TestCastRespectsMaxDistance(t *testing.T) {
	l := mustParse(t, "1\n0 1\n2 1\nx\n")
	c := NewGridCaster(l)

	_, ok := c.Cast(V(0, 1), V(1, 0), 0.25, nil)
	assert.False(t, ok)

	hit, ok := c.Cast(V(0, 1), V(1, 0), 1, nil)
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.Distance, tolerance)

	_, ok = c.Cast(V(0, 1), V(1, 0), 1, Excluding(level.P(1, 1)))
	assert.False(t, ok)
}

func TestMesh(t *testing.T) {
	l := mustParse(t, "1\n0 1\n4 1\nx / o\n")
	m := NewGridCaster(l).Mesh()
	// four faces for the block, one for the mirror, two triangles each
	assert.Len(t, m.Triangles, 10)
}

func TestCellsCrossed(t *testing.T) {
	l := readLevel(t, "intro.txt")
	_, err := l.Rotate(level.P(4, 1), level.RotateSingle)
	require.NoError(t, err)

	cells := TraceLevel(l, DefaultTraceParams()).CellsCrossed(l.Width(), l.Height())
	want := []level.Point{
		level.P(0, 1), level.P(1, 1), level.P(2, 1), level.P(3, 1), level.P(4, 1),
		level.P(4, 2), level.P(4, 3), level.P(4, 4), level.P(5, 4), level.P(6, 4),
	}
	assert.Equal(t, want, cells)
}
