package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gateaumon/InteractiveVisualization/src/colormap"
	"github.com/gateaumon/InteractiveVisualization/src/stats"
)

func TestRunScreenshotsMode_WritesDecodablePNGs(t *testing.T) {
	dir := t.TempDir()
	summaries := []stats.Summary{
		{Label: "1992", Mean: 32000, Error: 6500},
		{Label: "1993", Mean: 43000, Error: 3200},
		{Label: "1994", Mean: 43500, Error: 4500},
		{Label: "1995", Mean: 48000, Error: 2300},
	}
	if err := RunScreenshotsMode(dir, summaries, colormap.Diverging()); err != nil {
		t.Fatalf("screenshots mode failed: %v", err)
	}
	for _, name := range []string{"barchart_initial.png", "barchart_selected.png"} {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("missing screenshot %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s is not a valid PNG: %v", name, err)
		}
		b := img.Bounds()
		if b.Dx() < 400 || b.Dy() < 300 {
			t.Fatalf("%s implausibly small: %v", name, b)
		}
	}
}

func TestDemoSelectionY(t *testing.T) {
	summaries := []stats.Summary{
		{Label: "a", Mean: 100},
		{Label: "b", Mean: 300},
	}
	if got := demoSelectionY(summaries); got != 200 {
		t.Fatalf("expected the mean of means, got %v", got)
	}
	if got := demoSelectionY(nil); got != 1 {
		t.Fatalf("empty input should fall back to 1, got %v", got)
	}
}
