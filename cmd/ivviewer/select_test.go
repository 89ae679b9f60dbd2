package main

import (
	"math"
	"testing"

	fyne "fyne.io/fyne/v2"

	"github.com/gateaumon/InteractiveVisualization/src/barchart"
	"github.com/gateaumon/InteractiveVisualization/src/colormap"
	"github.com/gateaumon/InteractiveVisualization/src/stats"
)

func testBarChart() *barchart.Chart {
	return barchart.New([]stats.Summary{
		{Label: "1992", Mean: 32000, Error: 6500},
		{Label: "1993", Mean: 43000, Error: 3200},
	}, colormap.Diverging())
}

func TestValueAtViewPos_MatchesChartMapping(t *testing.T) {
	ch := testBarChart()
	imgW, imgH := ch.Size()
	// view equals image size: identity mapping
	view := fyne.NewSize(float32(imgW), float32(imgH))
	pr := ch.PlotRect()
	px := float32(pr.Min.X+pr.Max.X) / 2
	py := float32(pr.Min.Y+pr.Max.Y) / 2

	got, ok := valueAtViewPos(ch, fyne.NewPos(px, py), view)
	if !ok {
		t.Fatalf("in-plot position rejected")
	}
	want, ok2 := ch.ValueAt(float64(px), float64(py))
	if !ok2 {
		t.Fatalf("chart rejected the same pixel")
	}
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("overlay mapping %v disagrees with chart mapping %v", got, want)
	}
}

func TestValueAtViewPos_ScaledView(t *testing.T) {
	ch := testBarChart()
	imgW, imgH := ch.Size()
	// view at half scale, same aspect: positions scale by 0.5
	view := fyne.NewSize(float32(imgW)/2, float32(imgH)/2)
	pr := ch.PlotRect()
	px := float64(pr.Min.X+pr.Max.X) / 2
	py := float64(pr.Min.Y+pr.Max.Y) / 2

	got, ok := valueAtViewPos(ch, fyne.NewPos(float32(px/2), float32(py/2)), view)
	if !ok {
		t.Fatalf("scaled in-plot position rejected")
	}
	want, _ := ch.ValueAt(px, py)
	if math.Abs(got-want) > math.Abs(want)*1e-2+1e-6 {
		t.Fatalf("scaled mapping %v disagrees with %v", got, want)
	}
}

func TestValueAtViewPos_InvalidPositions(t *testing.T) {
	ch := testBarChart()
	imgW, imgH := ch.Size()
	view := fyne.NewSize(float32(imgW), float32(imgH))

	// corner pixel lies in the axis margin, outside the plot region
	if _, ok := valueAtViewPos(ch, fyne.NewPos(2, 2), view); ok {
		t.Fatalf("margin position should carry no data coordinate")
	}
	// letterbox band of a wider view
	wide := fyne.NewSize(float32(imgW)*2, float32(imgH))
	if _, ok := valueAtViewPos(ch, fyne.NewPos(4, float32(imgH)/2), wide); ok {
		t.Fatalf("letterbox position should carry no data coordinate")
	}
	if _, ok := valueAtViewPos(nil, fyne.NewPos(10, 10), view); ok {
		t.Fatalf("nil chart must be rejected")
	}
}
