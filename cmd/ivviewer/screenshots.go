package main

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/gateaumon/InteractiveVisualization/src/barchart"
	"github.com/gateaumon/InteractiveVisualization/src/colormap"
	"github.com/gateaumon/InteractiveVisualization/src/stats"
)

// RunScreenshotsMode renders the startup chart and a post-selection chart
// and writes them as PNGs under outDir. It runs headlessly without
// creating a UI window; used for documentation images.
func RunScreenshotsMode(outDir string, summaries []stats.Summary, cmap colormap.Func) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	ch := barchart.New(summaries, cmap)
	shots := []struct {
		name string
		prep func()
	}{
		{"barchart_initial.png", func() {}},
		{"barchart_selected.png", func() { ch.OnSelect(demoSelectionY(summaries)) }},
	}
	for _, s := range shots {
		s.prep()
		img := ch.Render()
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", s.name, err)
		}
		outPath := filepath.Join(outDir, s.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return nil
}

// demoSelectionY picks a y-value through the middle of the group means so
// the selected screenshot shows a mix of bar colors.
func demoSelectionY(summaries []stats.Summary) float64 {
	sum, n := 0.0, 0
	for _, s := range summaries {
		if math.IsNaN(s.Mean) {
			continue
		}
		sum += s.Mean
		n++
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}
