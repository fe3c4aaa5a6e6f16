package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/gridkit/geo"
	"github.com/banshee-data/gridkit/luma"
)

// shadeCell returns the colour sample for a cell: a warm shade whose
// brightness falls off with the cell's distance from the field centre
// (fx, fy), normalised by maxDist.
func shadeCell(c geo.Cell, fx, fy, maxDist float64) (luma.Sample, error) {
	norm := 0.0
	if maxDist > 0 {
		norm = c.DistanceTo(fx, fy) / maxDist
	}
	if norm > 1 {
		norm = 1
	}
	v := int(math.Round(255 * (1 - norm)))
	return luma.New(255, v, v/2)
}

// shadeGrid shades every cell against the grid's own centre, with the
// half-diagonal of the bounds as the falloff radius. Samples are in cell
// index order.
func shadeGrid(g *geo.Grid) ([]luma.Sample, error) {
	b := g.Bounds()
	maxDist := math.Sqrt(b.Width*b.Width+b.Height*b.Height) / 2

	cells := g.Cells()
	samples := make([]luma.Sample, len(cells))
	for i, c := range cells {
		s, err := shadeCell(c, b.CenterX, b.CenterY, maxDist)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		samples[i] = s
	}
	return samples, nil
}

// lumaGrid adapts a shaded grid to plotter.GridXYZ so gonum/plot can
// render it as a heatmap. Z is the per-cell luminance.
type lumaGrid struct {
	g    *geo.Grid
	vals []float64 // len = Rows * Cols, cell index order
}

func newLumaGrid(g *geo.Grid, samples []luma.Sample) lumaGrid {
	vals := make([]float64, len(samples))
	for i, s := range samples {
		vals[i] = s.Luminance()
	}
	return lumaGrid{g: g, vals: vals}
}

func (lg lumaGrid) Dims() (c, r int) { return lg.g.Cols, lg.g.Rows }

func (lg lumaGrid) Z(c, r int) float64 { return lg.vals[lg.g.Index(r, c)] }

func (lg lumaGrid) X(c int) float64 { return lg.g.OriginX + (float64(c)+0.5)*lg.g.CellWidth }

func (lg lumaGrid) Y(r int) float64 { return lg.g.OriginY + (float64(r)+0.5)*lg.g.CellHeight }

// renderPNG writes a gonum/plot heatmap of per-cell luminance.
func renderPNG(g *geo.Grid, samples []luma.Sample, path string) error {
	p := plot.New()
	p.Title.Text = "Grid Luminance"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	hm := plotter.NewHeatMap(newLumaGrid(g, samples), palette.Heat(16, 1))
	p.Add(hm)

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

// grayRamp builds the visual-map colour ramp from actual grayscale
// samples, so the HTML shading uses the same luma weighting as the data.
// A ramp needs at least two stops; smaller requests get black-to-white.
func grayRamp(steps int) []string {
	if steps < 2 {
		steps = 2
	}
	ramp := make([]string, 0, steps)
	for i := 0; i < steps; i++ {
		v := uint8(i * 255 / (steps - 1))
		ramp = append(ramp, luma.Sample{R: v, G: v, B: v}.Hex())
	}
	return ramp
}

// renderHTML writes a go-echarts page with one point per cell centroid,
// coloured by luminance through the visual map.
func renderHTML(g *geo.Grid, samples []luma.Sample, path string) error {
	cells := g.Cells()
	data := make([]opts.ScatterData, 0, len(cells))
	for i, c := range cells {
		data = append(data, opts.ScatterData{Value: []interface{}{c.CenterX, c.CenterY, samples[i].Luminance()}})
	}

	b := g.Bounds()
	padX := b.Width * 0.05
	padY := b.Height * 0.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Grid Luminance", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Grid Luminance", Subtitle: fmt.Sprintf("cells=%d grid=%dx%d", len(cells), g.Rows, g.Cols)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: b.MinX() - padX, Max: b.MaxX() + padX, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: b.MinY() - padY, Max: b.MaxY() + padY, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        255,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: grayRamp(10)},
		}),
	)

	scatter.AddSeries("luminance", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return scatter.Render(f)
}
