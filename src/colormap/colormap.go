// Package colormap supplies the color mapping the chart uses to translate
// interval-containment values into bar fill colors.
package colormap

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Func maps a value in [0,1] to a color. Implementations define their own
// domain-extension behavior for inputs outside [0,1]; the chart calls the
// function as-is and never second-guesses it.
type Func func(p float64) color.Color

type stop struct {
	pos float64
	col colorful.Color
}

// Diverging returns a blue-white-red mapping in the spirit of the classic
// "seismic" palette: dark blue at 0, white at 0.5, dark red at 1, with
// adjacent keypoints blended in Lab space for perceptual evenness.
//
// Inputs outside [0,1] are clamped to the nearest endpoint; NaN maps to
// the neutral midpoint.
func Diverging() Func {
	stops := []stop{
		{0.00, mustHex("#00004c")},
		{0.25, mustHex("#0000ff")},
		{0.50, mustHex("#ffffff")},
		{0.75, mustHex("#ff0000")},
		{1.00, mustHex("#7f0000")},
	}
	return func(p float64) color.Color {
		if math.IsNaN(p) {
			p = 0.5
		}
		if p <= stops[0].pos {
			return stops[0].col
		}
		last := stops[len(stops)-1]
		if p >= last.pos {
			return last.col
		}
		for i := 1; i < len(stops); i++ {
			if p > stops[i].pos {
				continue
			}
			a, b := stops[i-1], stops[i]
			t := (p - a.pos) / (b.pos - a.pos)
			return a.col.BlendLab(b.col, t).Clamped()
		}
		return last.col
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
