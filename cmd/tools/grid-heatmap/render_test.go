package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/gridkit/geo"
)

func TestShadeCell(t *testing.T) {
	c, err := geo.NewCell(5, 5, 1, 1)
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}

	// At the field centre the shade is full brightness
	s, err := shadeCell(c, 5, 5, 10)
	if err != nil {
		t.Fatalf("shadeCell failed: %v", err)
	}
	if s.R != 255 || s.G != 255 || s.B != 127 {
		t.Errorf("centre shade = %+v, want (255, 255, 127)", s)
	}

	// At or beyond the falloff radius the shade bottoms out
	far, err := shadeCell(c, 5, 50, 10)
	if err != nil {
		t.Fatalf("shadeCell failed: %v", err)
	}
	if far.G != 0 || far.B != 0 {
		t.Errorf("far shade = %+v, want green/blue 0", far)
	}

	// Brightness decreases monotonically with distance
	near, _ := shadeCell(c, 6, 5, 10)
	mid, _ := shadeCell(c, 9, 5, 10)
	if !(near.G > mid.G && mid.G > far.G) {
		t.Errorf("shade not monotone: near=%d mid=%d far=%d", near.G, mid.G, far.G)
	}
}

func TestShadeGrid(t *testing.T) {
	g, err := geo.NewGrid(0, 0, 1, 1, 4, 4)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	samples, err := shadeGrid(g)
	if err != nil {
		t.Fatalf("shadeGrid failed: %v", err)
	}
	if len(samples) != 16 {
		t.Fatalf("got %d samples, want 16", len(samples))
	}

	// The four cells around the grid centre are brighter than the corners
	lg := newLumaGrid(g, samples)
	corner := lg.Z(0, 0)
	centre := lg.Z(1, 1)
	if centre <= corner {
		t.Errorf("centre luminance %v should exceed corner %v", centre, corner)
	}
}

func TestLumaGridMapping(t *testing.T) {
	g, err := geo.NewGrid(10, 20, 2, 4, 3, 5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	samples, err := shadeGrid(g)
	if err != nil {
		t.Fatalf("shadeGrid failed: %v", err)
	}
	lg := newLumaGrid(g, samples)

	cols, rows := lg.Dims()
	if cols != 5 || rows != 3 {
		t.Errorf("Dims() = (%d, %d), want (5, 3)", cols, rows)
	}

	// X/Y return cell centroids
	if got := lg.X(0); got != 11 {
		t.Errorf("X(0) = %v, want 11", got)
	}
	if got := lg.Y(2); got != 30 {
		t.Errorf("Y(2) = %v, want 30", got)
	}

	// Z follows the grid's flat indexing
	if got, want := lg.Z(4, 2), samples[g.Index(2, 4)].Luminance(); got != want {
		t.Errorf("Z(4, 2) = %v, want %v", got, want)
	}
}

func TestGrayRamp(t *testing.T) {
	ramp := grayRamp(10)
	if len(ramp) != 10 {
		t.Fatalf("got %d ramp entries, want 10", len(ramp))
	}
	if ramp[0] != "#000000" {
		t.Errorf("ramp[0] = %q, want #000000", ramp[0])
	}
	if ramp[9] != "#ffffff" {
		t.Errorf("ramp[9] = %q, want #ffffff", ramp[9])
	}
}

func TestGrayRampMinimumStops(t *testing.T) {
	for _, steps := range []int{-1, 0, 1} {
		ramp := grayRamp(steps)
		if len(ramp) != 2 {
			t.Fatalf("grayRamp(%d) returned %d entries, want 2", steps, len(ramp))
		}
		if ramp[0] != "#000000" || ramp[1] != "#ffffff" {
			t.Errorf("grayRamp(%d) = %v, want black-to-white", steps, ramp)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	g, err := geo.NewGrid(0, 0, 1, 1, 2, 2)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	samples, err := shadeGrid(g)
	if err != nil {
		t.Fatalf("shadeGrid failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "heatmap.html")
	if err := renderHTML(g, samples, path); err != nil {
		t.Fatalf("renderHTML failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(raw), "Grid Luminance") {
		t.Error("rendered page should contain the chart title")
	}
}
