package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gateaumon/InteractiveVisualization/cmd/ivviewer/uihelpers"
	"github.com/gateaumon/InteractiveVisualization/src/barchart"
	"github.com/gateaumon/InteractiveVisualization/src/colormap"
	"github.com/gateaumon/InteractiveVisualization/src/dataset"
	"github.com/gateaumon/InteractiveVisualization/src/logging"
	"github.com/gateaumon/InteractiveVisualization/src/stats"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	chart *barchart.Chart

	chartCanvas *canvas.Image
	overlay     *selectOverlay

	crosshairEnabled bool
	showHints        bool
}

// light theme wrapper so the white figure sits on a matching surface
type lightTheme struct{}

func (l *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (l *lightTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}
func (l *lightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (l *lightTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var (
		seedFlag       int64
		zFlag          float64
		logLevelFlag   string
		screenshotsDir string
	)
	flag.Int64Var(&seedFlag, "seed", dataset.DefaultSeed, "Seed for the generated sample dataset")
	flag.Float64Var(&zFlag, "z", stats.DefaultZ, "z multiplier for the confidence interval half-width")
	flag.StringVar(&logLevelFlag, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render chart PNGs into this directory and exit (headless)")
	flag.Parse()
	logging.SetLevel(logLevelFlag)

	start := time.Now()
	table := dataset.Sample(seedFlag)
	summaries := stats.Compute(table, zFlag)
	logging.TimeTrack(start, "dataset + summaries")
	logging.Infof("loaded %d groups (seed=%d, z=%.2f)", len(summaries), seedFlag, zFlag)
	if logging.GetLevel() == logging.LevelDebug {
		for _, s := range summaries {
			logging.Debugf("group %s: mean=%.2f error=%.2f", s.Label, s.Mean, s.Error)
		}
	}

	cmap := colormap.Diverging()

	if screenshotsDir != "" {
		if err := RunScreenshotsMode(screenshotsDir, summaries, cmap); err != nil {
			logging.Errorf("screenshots mode: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.iv.viewer")
	a.Settings().SetTheme(&lightTheme{})
	w := a.NewWindow("Interactive Visualization")
	w.Resize(fyne.NewSize(920, 760))

	state := &uiState{
		app:    a,
		window: w,
		chart:  barchart.New(summaries, cmap),
	}
	// Load toggles before creating the overlay so it reflects them on creation
	state.crosshairEnabled = a.Preferences().BoolWithFallback("crosshair", false)
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	state.chartCanvas = canvas.NewImageFromImage(state.chart.Render())
	state.chartCanvas.FillMode = canvas.ImageFillContain
	cw, chh := state.chart.Size()
	state.chartCanvas.SetMinSize(fyne.NewSize(float32(cw)*0.75, float32(chh)*0.75))
	state.overlay = newSelectOverlay(state)

	crosshairChk := widget.NewCheck("Crosshair", nil)
	crosshairChk.SetChecked(state.crosshairEnabled)
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)
	top := container.NewHBox(
		widget.NewLabel(fmt.Sprintf("Seed %d", seedFlag)),
		widget.NewLabel(fmt.Sprintf("z %.2f", zFlag)),
		crosshairChk,
		hintsChk,
	)

	content := container.NewBorder(top, nil, nil, nil,
		container.NewStack(state.chartCanvas, state.overlay))
	w.SetContent(content)

	// Callbacks only after the canvas exists, so toggling can redraw safely
	crosshairChk.OnChanged = func(b bool) {
		state.crosshairEnabled = b
		state.savePrefs()
		state.overlay.enabled = b
		state.overlay.Refresh()
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		state.savePrefs()
		state.redraw()
	}

	buildMenus(state)

	// Redraw on window resize so the figure scales with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			state.savePrefs()
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { state.redraw() })
					}
				}
			}
		}()
	}

	w.ShowAndRun()
}

// redraw re-renders the figure at a size derived from the window width and
// swaps it into the canvas. Called from the event loop only.
func (s *uiState) redraw() {
	if s.window != nil && s.window.Canvas() != nil {
		rawW := int(s.window.Canvas().Size().Width*0.95) - 12
		w, h := uihelpers.ComputeChartDimensions(rawW)
		s.chart.Resize(w, h)
	}
	img := s.chart.Render()
	if s.showHints {
		img = drawHint(img, "Hint: Click anywhere in the chart to compare a y-value against each group's interval.")
	}
	if s.chartCanvas != nil {
		s.chartCanvas.Image = img
		s.chartCanvas.Refresh()
	}
	if s.overlay != nil {
		s.overlay.Refresh()
	}
}

func (s *uiState) savePrefs() {
	if s == nil || s.app == nil {
		return
	}
	prefs := s.app.Preferences()
	prefs.SetBool("crosshair", s.crosshairEnabled)
	prefs.SetBool("showHints", s.showHints)
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Chart PNG…", func() { exportChartPNG(state, "barchart.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { exportChartPNG(state, "barchart.png") })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { exportChartPNG(state, "barchart.png") })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

func exportChartPNG(state *uiState, defaultName string) {
	if state == nil || state.window == nil || state.chartCanvas == nil || state.chartCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.chartCanvas.Image); err != nil {
			logging.Errorf("export chart: %v", err)
		}
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}
