package scene

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
)

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	l, err := level.ReadFile(filepath.Join("..", "testdata", "levels", "intro.txt"))
	require.NoError(t, err)
	_, err = l.Rotate(level.P(4, 1), level.RotateSingle)
	require.NoError(t, err)

	s := Build(l, laser.TraceLevel(l, laser.DefaultTraceParams()))
	assert.Equal(5, s.Width)
	assert.Equal(4, s.Height)
	assert.Equal(PointJSON{X: 0, Y: 1, Name: "start"}, s.Start)
	assert.Equal(PointJSON{X: 6, Y: 4, Name: "finish"}, s.Finish)
	assert.True(s.Solved)

	// one triple per cell
	require.Len(t, s.Cells, 20)
	assert.Equal(CellJSON{X: 1, Y: 1, Type: "empty"}, s.Cells[0])
	byPoint := map[[2]int]CellJSON{}
	for _, c := range s.Cells {
		byPoint[[2]int{c.X, c.Y}] = c
	}
	assert.Equal("blocking", byPoint[[2]int{2, 2}].Type)
	assert.Equal("/", byPoint[[2]int{4, 1}].Orientation)
	assert.InDelta(math.Pi/4, byPoint[[2]int{4, 1}].Rotation, 1e-12)
	assert.Equal(`/`, byPoint[[2]int{4, 4}].Orientation)

	assert.Equal("escaped", s.Beam.Outcome)
	assert.Equal(2, s.Beam.Bounces)
	assert.Len(s.Beam.Points, 4)
}

func TestFlippedRotation(t *testing.T) {
	c := CellToJSON(level.Cell{Point: level.P(3, 2), Block: level.MirrorBlock(level.Flipped)})
	assert.Equal(t, `\`, c.Orientation)
	assert.InDelta(t, 3*math.Pi/4, c.Rotation, 1e-12)
	assert.Equal(t, "mirror", c.Type)
}

func TestSaveLoad(t *testing.T) {
	l, err := level.Parse("1\n0 1\n3 1\n/ x\n")
	require.NoError(t, err)
	s := Build(l, laser.TraceLevel(l, laser.DefaultTraceParams()))

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, Save(path, s))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
