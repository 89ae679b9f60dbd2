// Package barchart owns the interactive bar chart: bar geometry, current
// bar fill colors, the single active selection marker, and the color
// legend. It renders to a plain image.Image so the UI layer only has to
// display pixels and translate pointer events.
package barchart

import (
	"image"
	"image/color"
	"math"

	"github.com/gateaumon/InteractiveVisualization/src/colormap"
	"github.com/gateaumon/InteractiveVisualization/src/stats"
)

// Figure layout in image pixels. The legend strip sits below the plot, the
// way a matplotlib colorbar row would.
const (
	padTop         = 20
	padLeft        = 72
	padRight       = 24
	xLabelBand     = 28
	legendGap      = 16
	legendBarH     = 22
	legendLabelH   = 18
	legendCaptionH = 22

	defaultWidth      = 840
	defaultHeight     = 600
	defaultLegendBins = 11

	barWidthFraction = 0.8
	whiskerCapHalf   = 7
)

// Selection is the single active y-value marker. Creating a new selection
// replaces the previous one; at most one line and one annotation are ever
// visible.
type Selection struct {
	Y float64
}

// Chart holds all mutable render state. It is not safe for concurrent use;
// the UI event loop owns it exclusively.
type Chart struct {
	summaries []stats.Summary
	cmap      colormap.Func

	width      int
	height     int
	legendBins int

	yMin, yMax float64

	fills     []color.Color
	selection *Selection
}

// Option adjusts chart construction.
type Option func(*Chart)

// WithSize overrides the rendered figure size in pixels.
func WithSize(w, h int) Option {
	return func(c *Chart) {
		if w > 0 && h > 0 {
			c.width, c.height = w, h
		}
	}
}

// WithLegendBins overrides the number of discrete legend bins.
func WithLegendBins(n int) Option {
	return func(c *Chart) {
		if n >= 2 {
			c.legendBins = n
		}
	}
}

// New builds a chart over the given summaries. Bars start with a neutral
// white fill; cmap is only consulted once a selection exists and for the
// static legend strip.
func New(summaries []stats.Summary, cmap colormap.Func, opts ...Option) *Chart {
	c := &Chart{
		summaries:  summaries,
		cmap:       cmap,
		width:      defaultWidth,
		height:     defaultHeight,
		legendBins: defaultLegendBins,
		fills:      make([]color.Color, len(summaries)),
	}
	for i := range c.fills {
		c.fills[i] = color.White
	}
	for _, o := range opts {
		o(c)
	}
	c.computeYRange()
	return c
}

// Resize changes the figure size. Bar colors and the active selection are
// preserved; the next Render reflects the new geometry.
func (c *Chart) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.width, c.height = w, h
}

// Size returns the rendered figure size in pixels.
func (c *Chart) Size() (int, int) { return c.width, c.height }

// computeYRange fixes the data-space y-axis: baseline at 0 up to a nice
// rounded bound above the tallest whisker tip.
func (c *Chart) computeYRange() {
	maxTip := 0.0
	for _, s := range c.summaries {
		if math.IsNaN(s.Mean) {
			continue
		}
		if tip := s.Mean + s.Error; tip > maxTip {
			maxTip = tip
		}
	}
	if maxTip <= 0 {
		maxTip = 1
	}
	_, nMax := niceAxisBounds(0, maxTip)
	c.yMin, c.yMax = 0, nMax
}

// PlotRect is the main chart region (bars and whiskers) in image pixels.
func (c *Chart) PlotRect() image.Rectangle {
	bottom := c.height - (legendCaptionH + legendLabelH + legendBarH + legendGap + xLabelBand)
	return image.Rect(padLeft, padTop, c.width-padRight, bottom)
}

// legendStrip is the colored band of the legend in image pixels.
func (c *Chart) legendStrip() image.Rectangle {
	pr := c.PlotRect()
	y0 := pr.Max.Y + xLabelBand + legendGap
	return image.Rect(padLeft, y0, c.width-padRight, y0+legendBarH)
}

// barCenter returns the pixel x of group i's bar center and the bar width.
func (c *Chart) barCenter(i int) (center, width float64) {
	pr := c.PlotRect()
	slot := float64(pr.Dx()) / float64(len(c.summaries))
	return float64(pr.Min.X) + slot*(float64(i)+0.5), slot * barWidthFraction
}

// BarRect is the filled rectangle of group i's bar in image pixels. Bars
// with a NaN mean degenerate to an empty rectangle on the baseline.
func (c *Chart) BarRect(i int) image.Rectangle {
	pr := c.PlotRect()
	center, w := c.barCenter(i)
	base := pr.Max.Y
	top := base
	if m := c.summaries[i].Mean; !math.IsNaN(m) {
		top = int(math.Round(c.yToPixel(m)))
	}
	if top > base {
		top = base
	}
	return image.Rect(int(math.Round(center-w/2)), top, int(math.Round(center+w/2)), base)
}

func (c *Chart) yToPixel(v float64) float64 {
	pr := c.PlotRect()
	frac := (v - c.yMin) / (c.yMax - c.yMin)
	return float64(pr.Max.Y) - frac*float64(pr.Dy())
}

// ValueAt converts an image-space pixel position into the data-space
// y-value under it. It reports ok false for pixels outside the plot
// region, which callers must treat as "no valid coordinate".
func (c *Chart) ValueAt(x, y float64) (float64, bool) {
	pr := c.PlotRect()
	if x < float64(pr.Min.X) || x > float64(pr.Max.X) || y < float64(pr.Min.Y) || y > float64(pr.Max.Y) {
		return 0, false
	}
	frac := (float64(pr.Max.Y) - y) / float64(pr.Dy())
	return c.yMin + frac*(c.yMax-c.yMin), true
}

// Probability is the inverted fractional position of y inside group i's
// confidence interval: 1 at the lower bound (mean-error), 0 at the upper
// bound (mean+error), 0.5 at the mean, and outside [0,1] when y falls
// outside the interval. Domain extension is the color mapping's business.
//
// A zero-width interval degenerates to a step: 1 below the mean, 0 above
// it, 0.5 exactly at it.
func (c *Chart) Probability(i int, y float64) float64 {
	s := c.summaries[i]
	low := s.Mean - s.Error
	span := 2 * s.Error
	if span <= 0 {
		switch {
		case y < s.Mean:
			return 1
		case y > s.Mean:
			return 0
		}
		return 0.5
	}
	return 1 - (y-low)/span
}

// OnSelect records y as the active selection and recomputes every bar's
// fill color from its interval-containment value. The previous selection
// line and annotation are replaced, never accumulated. Calling it twice
// with the same value is idempotent. NaN is ignored.
func (c *Chart) OnSelect(y float64) {
	if math.IsNaN(y) {
		return
	}
	c.selection = &Selection{Y: y}
	for i := range c.summaries {
		c.fills[i] = c.cmap(c.Probability(i, y))
	}
}

// Selected returns the active selection y-value, if any.
func (c *Chart) Selected() (float64, bool) {
	if c.selection == nil {
		return 0, false
	}
	return c.selection.Y, true
}

// FillColor returns group i's current bar fill color.
func (c *Chart) FillColor(i int) color.Color { return c.fills[i] }

// LegendBoundaries returns the legend's bin edges: legendBins+1 evenly
// spaced values spanning [0,1].
func (c *Chart) LegendBoundaries() []float64 {
	n := c.legendBins
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = float64(i) / float64(n)
	}
	return out
}
