// Command grid-heatmap renders a site grid shaded by per-cell luminance.
// Cells brighten towards the field centre, which makes it a quick visual
// check that grid indexing and luma conversion agree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/banshee-data/gridkit/geo"
)

func main() {
	rows := flag.Int("rows", 24, "grid rows")
	cols := flag.Int("cols", 24, "grid columns")
	cellSize := flag.Float64("cell", 0.5, "cell size in metres (square cells)")
	originX := flag.Float64("origin-x", 0, "grid origin X (south-west corner)")
	originY := flag.Float64("origin-y", 0, "grid origin Y (south-west corner)")
	format := flag.String("format", "png", "output format: png or html")
	outDir := flag.String("o", "plots", "base output directory")
	flag.Parse()

	g, err := geo.NewGrid(*originX, *originY, *cellSize, *cellSize, *rows, *cols)
	if err != nil {
		log.Fatalf("invalid grid: %v", err)
	}

	// Each render gets its own run directory, like analysis runs do.
	runDir := filepath.Join(*outDir, uuid.New().String())
	if err := os.MkdirAll(runDir, 0755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}

	samples, err := shadeGrid(g)
	if err != nil {
		log.Fatalf("failed to shade grid: %v", err)
	}

	var out string
	switch *format {
	case "png":
		out = filepath.Join(runDir, "heatmap.png")
		err = renderPNG(g, samples, out)
	case "html":
		out = filepath.Join(runDir, "heatmap.html")
		err = renderHTML(g, samples, out)
	default:
		log.Fatalf("unknown format %q (want png or html)", *format)
	}
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}

	b := g.Bounds()
	log.Printf("grid %dx%d covering %.1fm x %.1fm", *rows, *cols, b.Width, b.Height)
	log.Printf("✓ wrote %s", out)
	fmt.Println(out)
}
