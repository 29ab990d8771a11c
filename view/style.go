// Package view draws levels and beams as images and plots.
package view

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	lin "github.com/sgreben/piecewiselinear"

	"github.com/jdginn/go-laser-puzzle/config"
)

var defaultPalette = map[string]string{
	"background": "#1d2021",
	"grid":       "#3c3836",
	"block":      "#7c6f64",
	"mirror":     "#83a598",
	"beam":       "#fb4934",
	"start":      "#b8bb26",
	"finish":     "#fabd2f",
}

// distance in cells -> brightness
var defaultFalloff = map[float64]float64{0: 1, 40: 0.35}

// Style holds everything that decides how a level is drawn
type Style struct {
	CellSize  float64
	Margin    float64
	BeamWidth float64
	Colors    map[string]colorful.Color
	// Beam brightness as a function of the distance travelled
	Falloff lin.Function
}

func DefaultStyle() Style {
	s, err := NewStyle(config.Default().Render)
	if err != nil {
		panic(err)
	}
	return s
}

// NewStyle builds a Style from the render section of a config. Palette entries override the
// built-in colors one element at a time.
func NewStyle(r config.Render) (Style, error) {
	s := Style{
		CellSize:  r.CellSize,
		Margin:    r.Margin,
		BeamWidth: r.BeamWidth,
		Colors:    make(map[string]colorful.Color, len(defaultPalette)),
	}
	for _, palette := range []map[string]string{defaultPalette, r.Palette.Inline} {
		for name, hex := range palette {
			c, err := parseHex(hex)
			if err != nil {
				return Style{}, fmt.Errorf("palette color %s: %w", name, err)
			}
			s.Colors[name] = c
		}
	}

	falloff := r.Falloff
	if len(falloff) == 0 {
		falloff = defaultFalloff
	}
	// piecewiselinear needs X in increasing order
	xs := make([]float64, 0, len(falloff))
	for x := range falloff {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = falloff[x]
	}
	s.Falloff = lin.Function{X: xs, Y: ys}
	return s, nil
}

func parseHex(hex string) (colorful.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return colorful.Hex(hex)
}

// Brightness of the beam after travelling distance cells. Beyond the falloff's domain the
// nearest endpoint value holds.
func (s Style) Brightness(distance float64) float64 {
	xs, ys := s.Falloff.X, s.Falloff.Y
	switch len(xs) {
	case 0:
		return 1
	case 1:
		return ys[0]
	}
	d := math.Max(xs[0], math.Min(distance, xs[len(xs)-1]))
	return math.Max(0, math.Min(1, s.Falloff.At(d)))
}

// Color returns the named palette color, black if the palette has none
func (s Style) Color(name string) colorful.Color {
	return s.Colors[name]
}
