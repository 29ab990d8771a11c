// Package scene exports a level and its beam as JSON for external viewers.
package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
)

// JSON schema types
type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name,omitempty"`
}

type CellJSON struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Type string `json:"type"`
	// Mirrors only. Orientation is "/" or "\", Rotation the angle of the mirror surface in radians
	// counterclockwise from the X axis.
	Orientation string  `json:"orientation,omitempty"`
	Rotation    float64 `json:"rotation,omitempty"`
}

type BeamJSON struct {
	Points    []PointJSON `json:"points"`
	Outcome   string      `json:"outcome"`
	Bounces   int         `json:"bounces"`
	Length    float64     `json:"length"`
	Color     string      `json:"color,omitempty"`
	Thickness float64     `json:"thickness,omitempty"`
}

type SceneJSON struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Start  PointJSON  `json:"start"`
	Finish PointJSON  `json:"finish"`
	Cells  []CellJSON `json:"cells"`
	Beam   BeamJSON   `json:"beam"`
	Solved bool       `json:"solved"`
}

func PointToJSON(v r2.Vec) PointJSON {
	return PointJSON{X: v.X, Y: v.Y}
}

func CellToJSON(c level.Cell) CellJSON {
	cell := CellJSON{X: c.Point.X, Y: c.Point.Y, Type: c.Block.Kind.String()}
	if c.Block.IsMirror() {
		cell.Orientation = string(c.Block.Rune())
		cell.Rotation = math.Pi / 4
		if c.Block.Mirror == level.Flipped {
			cell.Rotation = 3 * math.Pi / 4
		}
	}
	return cell
}

func BeamToJSON(b laser.Beam) BeamJSON {
	points := make([]PointJSON, len(b.Points))
	for i, p := range b.Points {
		points[i] = PointToJSON(p)
	}
	return BeamJSON{
		Points:  points,
		Outcome: b.Outcome.String(),
		Bounces: b.Bounces,
		Length:  b.Length(),
		Color:   "#FF0000",
	}
}

// Build materializes every cell of l together with beam
func Build(l *level.Level, beam laser.Beam) SceneJSON {
	s := SceneJSON{
		Width:  l.Width(),
		Height: l.Height(),
		Start:  PointToJSON(laser.CellCenter(l.StartingPoint())),
		Finish: PointToJSON(laser.CellCenter(l.FinishingPoint())),
		Cells:  make([]CellJSON, 0, l.Width()*l.Height()),
		Beam:   BeamToJSON(beam),
		Solved: beam.Reaches(l.FinishingPoint()),
	}
	s.Start.Name = "start"
	s.Finish.Name = "finish"
	for _, c := range l.Cells() {
		s.Cells = append(s.Cells, CellToJSON(c))
	}
	return s
}

// Save writes the scene to filename as indented JSON
func Save(filename string, s SceneJSON) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling scene: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

func Load(filename string) (SceneJSON, error) {
	var s SceneJSON
	data, err := os.ReadFile(filename)
	if err != nil {
		return s, fmt.Errorf("reading scene: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scene: %w", err)
	}
	return s, nil
}
