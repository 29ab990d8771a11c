package view

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
)

// frame maps tracing plane coordinates onto the canvas. The canvas shows the grid and its
// perimeter ring, with Y pointing down.
type frame struct {
	style  Style
	width  int
	height int
}

func (f frame) size() (int, int) {
	w := float64(f.width+2)*f.style.CellSize + 2*f.style.Margin
	h := float64(f.height+2)*f.style.CellSize + 2*f.style.Margin
	return int(math.Ceil(w)), int(math.Ceil(h))
}

func (f frame) toCanvas(v r2.Vec) (float64, float64) {
	x := f.style.Margin + (v.X+0.5)*f.style.CellSize
	y := f.style.Margin + (float64(f.height)+1.5-v.Y)*f.style.CellSize
	return x, y
}

func setColor(dc *gg.Context, s Style, name string, alpha float64) {
	r, g, b := s.Color(name).RGB255()
	dc.SetRGBA255(int(r), int(g), int(b), int(math.Round(alpha*255)))
}

// Render draws l with beam on top of it
func Render(l *level.Level, beam laser.Beam, style Style) image.Image {
	f := frame{style: style, width: l.Width(), height: l.Height()}
	w, h := f.size()
	dc := gg.NewContext(w, h)

	setColor(dc, style, "background", 1)
	dc.Clear()

	cell := style.CellSize
	for _, c := range l.Cells() {
		x, y := f.toCanvas(laser.CellCenter(c.Point))
		switch c.Block.Kind {
		case level.Blocking:
			setColor(dc, style, "block", 1)
			dc.DrawRectangle(x-cell/2, y-cell/2, cell, cell)
			dc.Fill()
		case level.Mirror:
			setColor(dc, style, "mirror", 1)
			dc.SetLineWidth(math.Max(1, cell/8))
			// canvas Y points down, so `/` runs from bottom left to top right
			if c.Block.Mirror == level.Flipped {
				dc.DrawLine(x-cell/2, y-cell/2, x+cell/2, y+cell/2)
			} else {
				dc.DrawLine(x-cell/2, y+cell/2, x+cell/2, y-cell/2)
			}
			dc.Stroke()
		}
	}

	setColor(dc, style, "grid", 1)
	dc.SetLineWidth(1)
	x0, y0 := f.toCanvas(r2.Vec{X: 0.5, Y: float64(l.Height()) + 0.5})
	x1, y1 := f.toCanvas(r2.Vec{X: float64(l.Width()) + 0.5, Y: 0.5})
	for i := 0; i <= l.Width(); i++ {
		x := x0 + float64(i)*cell
		dc.DrawLine(x, y0, x, y1)
	}
	for j := 0; j <= l.Height(); j++ {
		y := y0 + float64(j)*cell
		dc.DrawLine(x0, y, x1, y)
	}
	dc.Stroke()

	sx, sy := f.toCanvas(laser.CellCenter(l.StartingPoint()))
	setColor(dc, style, "start", 1)
	dc.DrawCircle(sx, sy, cell/4)
	dc.Fill()

	fx, fy := f.toCanvas(laser.CellCenter(l.FinishingPoint()))
	setColor(dc, style, "finish", 1)
	dc.SetLineWidth(math.Max(1, cell/12))
	dc.DrawCircle(fx, fy, cell/3)
	dc.Stroke()

	drawBeam(dc, f, beam)
	return dc.Image()
}

// drawBeam strokes the beam one cell length at a time so the falloff shows
func drawBeam(dc *gg.Context, f frame, beam laser.Beam) {
	dc.SetLineWidth(f.style.BeamWidth)
	dc.SetLineCap(gg.LineCapRound)

	travelled := 0.0
	for _, seg := range visibleSegments(beam, f.width, f.height) {
		from, to := seg[0], seg[1]
		length := r2.Norm(r2.Sub(to, from))
		for d := 0.0; d < length; d += 1 {
			a := r2.Add(from, r2.Scale(d/length, r2.Sub(to, from)))
			b := r2.Add(from, r2.Scale(math.Min(d+1, length)/length, r2.Sub(to, from)))
			setColor(dc, f.style, "beam", f.style.Brightness(travelled+d))
			ax, ay := f.toCanvas(a)
			bx, by := f.toCanvas(b)
			dc.DrawLine(ax, ay, bx, by)
			dc.Stroke()
		}
		travelled += length
	}
}

// visibleSegments splits the beam into segments, cutting the escape segment short once it is
// certainly outside the drawn area
func visibleSegments(beam laser.Beam, width, height int) [][2]r2.Vec {
	limit := float64(2 * (width + height + 4))
	var segs [][2]r2.Vec
	for i := 1; i < len(beam.Points); i++ {
		from, to := beam.Points[i-1], beam.Points[i]
		d := r2.Sub(to, from)
		if n := r2.Norm(d); n > limit {
			to = r2.Add(from, r2.Scale(limit/n, d))
		}
		segs = append(segs, [2]r2.Vec{from, to})
	}
	return segs
}

func SavePNG(path string, im image.Image) error {
	return gg.SavePNG(path, im)
}
