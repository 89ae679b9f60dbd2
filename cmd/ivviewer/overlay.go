package main

import (
	"fmt"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gateaumon/InteractiveVisualization/cmd/ivviewer/uihelpers"
	"github.com/gateaumon/InteractiveVisualization/src/barchart"
	"github.com/gateaumon/InteractiveVisualization/src/logging"
)

// selectOverlay sits transparently on top of the chart image. A pointer
// press selects the y-value under the cursor; when the crosshair toggle is
// on it also tracks hover movement with a horizontal guide line and a
// small y readout.
type selectOverlay struct {
	widget.BaseWidget
	state    *uiState
	enabled  bool // crosshair guide on hover
	mouse    fyne.Position
	hovering bool
}

func newSelectOverlay(state *uiState) *selectOverlay {
	o := &selectOverlay{state: state, enabled: state != nil && state.crosshairEnabled}
	o.ExtendBaseWidget(o)
	return o
}

// valueAtViewPos maps an overlay-space position to the data-space y-value
// under it, going through the contain-fit image rectangle and the chart's
// plot region. ok is false when the position carries no valid data
// coordinate; such presses are ignored.
func valueAtViewPos(ch *barchart.Chart, pos fyne.Position, view fyne.Size) (float64, bool) {
	if ch == nil {
		return 0, false
	}
	imgW, imgH := ch.Size()
	px, py, ok := uihelpers.ViewToImage(pos.X, pos.Y, float32(imgW), float32(imgH), view.Width, view.Height)
	if !ok {
		return 0, false
	}
	return ch.ValueAt(float64(px), float64(py))
}

func (o *selectOverlay) Tapped(ev *fyne.PointEvent) {
	if o.state == nil || o.state.chart == nil {
		return
	}
	y, ok := valueAtViewPos(o.state.chart, ev.Position, o.Size())
	if !ok {
		logging.Debugf("press outside plotted area ignored")
		return
	}
	logging.Debugf("selected y=%.2f", y)
	o.state.chart.OnSelect(y)
	o.state.redraw()
}

func (o *selectOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background to keep the full area hoverable
	bg := canvas.NewRectangle(color.RGBA{})
	lineH := canvas.NewLine(color.RGBA{R: 120, G: 120, B: 120, A: 220})
	lineH.StrokeWidth = 1
	label := canvas.NewText("", color.RGBA{R: 32, G: 32, B: 32, A: 255})
	label.TextSize = 12
	labelBG := canvas.NewRectangle(color.RGBA{R: 255, G: 255, B: 255, A: 200})
	objs := []fyne.CanvasObject{bg, lineH, labelBG, label}
	return &selectOverlayRenderer{o: o, bg: bg, lineH: lineH, labelBG: labelBG, label: label, objs: objs}
}

type selectOverlayRenderer struct {
	o       *selectOverlay
	bg      *canvas.Rectangle
	lineH   *canvas.Line
	labelBG *canvas.Rectangle
	label   *canvas.Text
	objs    []fyne.CanvasObject
}

func (r *selectOverlayRenderer) Destroy()                  {}
func (r *selectOverlayRenderer) MinSize() fyne.Size        { return fyne.NewSize(10, 10) }
func (r *selectOverlayRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *selectOverlayRenderer) hide() {
	r.lineH.Position1 = fyne.NewPos(-10, -10)
	r.lineH.Position2 = fyne.NewPos(-10, -10)
	r.label.Move(fyne.NewPos(-1000, -1000))
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
}

func (r *selectOverlayRenderer) Layout(size fyne.Size) {
	if r.bg != nil {
		r.bg.Resize(size)
		r.bg.Move(fyne.NewPos(0, 0))
	}
	if r.o == nil || !r.o.enabled || !r.o.hovering || r.o.state == nil {
		r.hide()
		return
	}
	y, ok := valueAtViewPos(r.o.state.chart, r.o.mouse, size)
	if !ok {
		r.hide()
		return
	}
	my := r.o.mouse.Y
	r.lineH.Position1 = fyne.NewPos(0, my)
	r.lineH.Position2 = fyne.NewPos(size.Width, my)
	r.label.Text = fmt.Sprintf("y = %.2f", y)
	r.label.Refresh()
	pad := float32(4)
	ts := r.label.MinSize()
	tx, ty := r.o.mouse.X+10, my-ts.Height-8
	if tx+ts.Width+2*pad > size.Width {
		tx = size.Width - ts.Width - 2*pad
	}
	if ty < 0 {
		ty = my + 8
	}
	r.labelBG.Resize(fyne.NewSize(ts.Width+2*pad, ts.Height+2*pad))
	r.labelBG.Move(fyne.NewPos(tx-pad, ty-pad))
	r.label.Move(fyne.NewPos(tx, ty))
}

func (r *selectOverlayRenderer) Refresh() {
	r.Layout(r.o.Size())
	if r.bg != nil {
		r.bg.Refresh()
	}
	r.lineH.Refresh()
	if r.labelBG != nil {
		r.labelBG.Refresh()
	}
	r.label.Refresh()
}

// Implement hover tracking for the crosshair guide
func (o *selectOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if !o.enabled {
		return
	}
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}
func (o *selectOverlay) MouseIn(ev *desktop.MouseEvent) { o.hovering = true; o.Refresh() }
func (o *selectOverlay) MouseOut()                      { o.hovering = false; o.Refresh() }

var (
	_ fyne.Tappable     = (*selectOverlay)(nil)
	_ desktop.Hoverable = (*selectOverlay)(nil)
)
