package barchart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gateaumon/InteractiveVisualization/src/logging"
)

const legendCaption = "Probability of a Distribution Containing the Given y-value"

// De-emphasized frame: black at 80% alpha, matching the softened spines
// and ticks of the figure.
var (
	frameColor     = drawing.Color{R: 0, G: 0, B: 0, A: 204}
	selectionColor = drawing.Color{R: 169, G: 169, B: 169, A: 255} // darkgrey
)

// Render draws the whole figure: bars with whiskers, the de-emphasized
// frame, the active selection marker (if any), and the legend strip. It can
// be called any number of times; every call is a total redraw.
//
// Render never fails loudly: if the rasterizer errors, a blank figure is
// returned and the error is logged, so the window always has pixels to
// show.
func (c *Chart) Render() image.Image {
	r, err := chart.PNG(c.width, c.height)
	if err != nil {
		logging.Errorf("chart renderer init: %v; showing blank fallback", err)
		return blank(c.width, c.height)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		logging.Errorf("chart font load: %v; showing blank fallback", err)
		return blank(c.width, c.height)
	}
	r.SetFont(font)
	r.SetFontColor(frameColor)
	r.SetFontSize(10)

	r.SetFillColor(drawing.ColorWhite)
	rectPath(r, 0, 0, c.width, c.height)
	r.Fill()

	c.drawBars(r)
	c.drawFrame(r)
	c.drawSelection(r)
	c.drawLegend(r)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		logging.Errorf("chart render: %v; showing blank fallback", err)
		return blank(c.width, c.height)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		logging.Errorf("chart decode: %v; showing blank fallback", err)
		return blank(c.width, c.height)
	}
	return img
}

func (c *Chart) drawBars(r chart.Renderer) {
	pr := c.PlotRect()
	for i, s := range c.summaries {
		if math.IsNaN(s.Mean) {
			continue
		}
		br := c.BarRect(i)
		r.SetFillColor(toDrawing(c.fills[i]))
		r.SetStrokeColor(frameColor)
		r.SetStrokeWidth(1)
		rectPath(r, br.Min.X, br.Min.Y, br.Max.X, br.Max.Y)
		r.FillStroke()

		if s.Error <= 0 {
			continue
		}
		center, _ := c.barCenter(i)
		cx := int(math.Round(center))
		yHi := int(math.Round(c.yToPixel(s.Mean + s.Error)))
		yLo := int(math.Round(c.yToPixel(s.Mean - s.Error)))
		yHi = clampInt(yHi, pr.Min.Y, pr.Max.Y)
		yLo = clampInt(yLo, pr.Min.Y, pr.Max.Y)
		r.SetStrokeColor(frameColor)
		r.SetStrokeWidth(1.5)
		r.MoveTo(cx, yHi)
		r.LineTo(cx, yLo)
		r.Stroke()
		for _, cy := range []int{yHi, yLo} {
			r.MoveTo(cx-whiskerCapHalf, cy)
			r.LineTo(cx+whiskerCapHalf, cy)
			r.Stroke()
		}
	}
}

// drawFrame draws the left and bottom spines, y tick marks and labels, and
// the group labels along the category axis. Top and right spines are
// deliberately absent.
func (c *Chart) drawFrame(r chart.Renderer) {
	pr := c.PlotRect()
	r.SetStrokeColor(frameColor)
	r.SetStrokeWidth(1)
	r.MoveTo(pr.Min.X, pr.Min.Y)
	r.LineTo(pr.Min.X, pr.Max.Y)
	r.Stroke()
	r.MoveTo(pr.Min.X, pr.Max.Y)
	r.LineTo(pr.Max.X, pr.Max.Y)
	r.Stroke()

	for _, t := range niceTicks(c.yMin, c.yMax, 6) {
		py := int(math.Round(c.yToPixel(t.value)))
		r.MoveTo(pr.Min.X-5, py)
		r.LineTo(pr.Min.X, py)
		r.Stroke()
		tb := r.MeasureText(t.label)
		r.Text(t.label, pr.Min.X-9-tb.Width(), py+tb.Height()/2)
	}

	for i, s := range c.summaries {
		center, _ := c.barCenter(i)
		cx := int(math.Round(center))
		r.MoveTo(cx, pr.Max.Y)
		r.LineTo(cx, pr.Max.Y+5)
		r.Stroke()
		tb := r.MeasureText(s.Label)
		r.Text(s.Label, cx-tb.Width()/2, pr.Max.Y+9+tb.Height())
	}
}

func (c *Chart) drawSelection(r chart.Renderer) {
	if c.selection == nil {
		return
	}
	y := c.selection.Y
	if y < c.yMin || y > c.yMax {
		return
	}
	pr := c.PlotRect()
	py := int(math.Round(c.yToPixel(y)))
	r.SetStrokeColor(selectionColor)
	r.SetStrokeWidth(1.5)
	r.MoveTo(pr.Min.X, py)
	r.LineTo(pr.Max.X, py)
	r.Stroke()

	label := fmt.Sprintf("y = %.2f", y)
	tb := r.MeasureText(label)
	tx := pr.Max.X - tb.Width() - 6
	ty := py - 6
	if ty < pr.Min.Y+tb.Height() {
		// keep the annotation inside the plot when the line is near the top
		ty = py + 6 + tb.Height()
	}
	r.Text(label, tx, ty)
}

func (c *Chart) drawLegend(r chart.Renderer) {
	strip := c.legendStrip()
	bounds := c.LegendBoundaries()
	binW := float64(strip.Dx()) / float64(c.legendBins)

	for i := 0; i < c.legendBins; i++ {
		mid := (bounds[i] + bounds[i+1]) / 2
		x0 := float64(strip.Min.X) + binW*float64(i)
		x1 := x0 + binW
		r.SetFillColor(toDrawing(c.cmap(mid)))
		rectPath(r, int(math.Round(x0)), strip.Min.Y, int(math.Round(x1)), strip.Max.Y)
		r.Fill()
	}
	r.SetStrokeColor(frameColor)
	r.SetStrokeWidth(1)
	rectPath(r, strip.Min.X, strip.Min.Y, strip.Max.X, strip.Max.Y)
	r.Stroke()

	for _, b := range bounds {
		bx := strip.Min.X + int(math.Round(float64(strip.Dx())*b))
		r.MoveTo(bx, strip.Max.Y)
		r.LineTo(bx, strip.Max.Y+4)
		r.Stroke()
		label := fmt.Sprintf("%.2f", b)
		tb := r.MeasureText(label)
		r.Text(label, bx-tb.Width()/2, strip.Max.Y+7+tb.Height())
	}

	tb := r.MeasureText(legendCaption)
	cx := strip.Min.X + strip.Dx()/2
	r.Text(legendCaption, cx-tb.Width()/2, strip.Max.Y+legendLabelH+6+tb.Height())
}

func rectPath(r chart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
}

func toDrawing(c color.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
