package view

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
)

func cellXYs(points []level.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.X)
		xys[i].Y = float64(p.Y)
	}
	return xys
}

// PlotBeam charts the beam over the level's mirrors and blocks in tracing plane coordinates
func PlotBeam(l *level.Level, beam laser.Beam, X, Y int) (image.Image, error) {
	p := plot.New()
	p.Title.Text = "Beam"
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"
	p.X.Min, p.X.Max = -0.5, float64(l.Width())+1.5
	p.Y.Min, p.Y.Max = -0.5, float64(l.Height())+1.5
	p.Add(plotter.NewGrid())

	var blocks []level.Point
	for _, c := range l.Cells() {
		if c.Block.Kind == level.Blocking {
			blocks = append(blocks, c.Point)
		}
	}

	if len(blocks) > 0 {
		s, err := plotter.NewScatter(cellXYs(blocks))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = vg.Points(6)
		p.Add(s)
		p.Legend.Add("block", s)
	}
	if mirrors := l.Mirrors(); len(mirrors) > 0 {
		s, err := plotter.NewScatter(cellXYs(mirrors))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.PyramidGlyph{}
		s.GlyphStyle.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add("mirror", s)
	}

	var path plotter.XYs
	for i, seg := range visibleSegments(beam, l.Width(), l.Height()) {
		if i == 0 {
			path = append(path, plotter.XY{X: seg[0].X, Y: seg[0].Y})
		}
		path = append(path, plotter.XY{X: seg[1].X, Y: seg[1].Y})
	}
	if len(path) > 1 {
		line, err := plotter.NewLine(path)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(beam.Outcome.String(), line)
	}

	tmpdir, err := os.MkdirTemp("", "laser")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpdir)

	out := filepath.Join(tmpdir, "beam.png")
	if err := p.Save(vg.Length(X), vg.Length(Y), out); err != nil {
		return nil, err
	}
	f, err := os.Open(out)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
