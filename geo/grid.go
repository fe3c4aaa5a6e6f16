package geo

import "fmt"

// Grid partitions a rectangular region into rows × cols uniform cells.
// The origin is the region's minimum corner (south-west). Cells are stored
// in a flat slice indexed row*cols + col, row 0 at the southern edge.
//
// A Grid is read-only after construction and safe for concurrent readers.
type Grid struct {
	OriginX    float64
	OriginY    float64
	CellWidth  float64
	CellHeight float64
	Rows       int
	Cols       int

	cells []Cell // len = Rows * Cols
}

// NewGrid builds a grid of rows × cols cells of the given size, anchored at
// the origin corner. Cell dimensions must be strictly positive
// (ErrInvalidDimension otherwise); rows and cols must be >= 1.
func NewGrid(originX, originY, cellWidth, cellHeight float64, rows, cols int) (*Grid, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: cell width=%g height=%g", ErrInvalidDimension, cellWidth, cellHeight)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid must have at least one row and column, got %dx%d", rows, cols)
	}

	g := &Grid{
		OriginX:    originX,
		OriginY:    originY,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Rows:       rows,
		Cols:       cols,
		cells:      make([]Cell, rows*cols),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[g.Index(row, col)] = Cell{
				CenterX: originX + (float64(col)+0.5)*cellWidth,
				CenterY: originY + (float64(row)+0.5)*cellHeight,
				Width:   cellWidth,
				Height:  cellHeight,
			}
		}
	}
	return g, nil
}

// Index returns the flat cell index for (row, col): idx = row*Cols + col.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Cell returns the cell at (row, col). It panics on out-of-range indices,
// matching slice semantics; use CellAt for point queries with a bounds check.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		panic(fmt.Sprintf("geo: cell (%d,%d) out of range for %dx%d grid", row, col, g.Rows, g.Cols))
	}
	return g.cells[g.Index(row, col)]
}

// CellAt returns the cell containing the point (x, y), or false when the
// point lies outside the grid. Boundary handling matches Cell.Contains:
// points on the eastern/northern outer edge are outside. NaN coordinates
// are outside every cell.
func (g *Grid) CellAt(x, y float64) (Cell, bool) {
	col := int((x - g.OriginX) / g.CellWidth)
	row := int((y - g.OriginY) / g.CellHeight)
	// NaN and values beyond the int range both convert to a negative int,
	// so the row/col checks must cover both signs.
	if x < g.OriginX || y < g.OriginY ||
		row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return Cell{}, false
	}
	return g.cells[g.Index(row, col)], true
}

// Cells returns a copy of all cells in index order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Bounds returns the whole grid region as a single cell.
func (g *Grid) Bounds() Cell {
	w := g.CellWidth * float64(g.Cols)
	h := g.CellHeight * float64(g.Rows)
	return Cell{
		CenterX: g.OriginX + w/2,
		CenterY: g.OriginY + h/2,
		Width:   w,
		Height:  h,
	}
}
