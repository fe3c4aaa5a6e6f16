// Package geo provides the spatial primitives for site grid analysis:
// axis-aligned cells addressed by centroid and extent, and a uniform grid
// that partitions a rectangular region into such cells.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned when a cell or grid is constructed with a
// non-positive width or height.
var ErrInvalidDimension = errors.New("invalid dimension")

// Cell is an axis-aligned rectangular region addressed by its centroid.
// Cells are immutable values with no aliasing concerns; copy freely.
type Cell struct {
	CenterX float64 // Centroid X (m)
	CenterY float64 // Centroid Y (m)
	Width   float64 // Extent along X (m), always > 0
	Height  float64 // Extent along Y (m), always > 0
}

// NewCell validates the dimensions and returns the cell. Width and height
// must be strictly positive; centroid coordinates are unconstrained (a cell
// west or south of the site origin is fine).
func NewCell(centerX, centerY, width, height float64) (Cell, error) {
	if width <= 0 || height <= 0 {
		return Cell{}, fmt.Errorf("%w: width=%g height=%g", ErrInvalidDimension, width, height)
	}
	return Cell{
		CenterX: centerX,
		CenterY: centerY,
		Width:   width,
		Height:  height,
	}, nil
}

// Area returns the cell's area (width × height).
func (c Cell) Area() float64 {
	return c.Width * c.Height
}

// DistanceTo returns the Euclidean distance from the cell's centroid to the
// point (x, y). The result is always >= 0 and exactly 0 when the point
// coincides with the centroid.
func (c Cell) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-c.CenterX, y-c.CenterY)
}

// DistanceToOrigin returns the centroid's distance to (0, 0). It delegates
// to DistanceTo so the two are bit-identical for every cell.
func (c Cell) DistanceToOrigin() float64 {
	return c.DistanceTo(0, 0)
}

// MinX returns the cell's western edge.
func (c Cell) MinX() float64 { return c.CenterX - c.Width/2 }

// MaxX returns the cell's eastern edge.
func (c Cell) MaxX() float64 { return c.CenterX + c.Width/2 }

// MinY returns the cell's southern edge.
func (c Cell) MinY() float64 { return c.CenterY - c.Height/2 }

// MaxY returns the cell's northern edge.
func (c Cell) MaxY() float64 { return c.CenterY + c.Height/2 }

// Contains reports whether the point (x, y) falls inside the cell. Edges
// are half-open (min inclusive, max exclusive) so adjacent grid cells
// partition the plane without double-counting boundary points.
func (c Cell) Contains(x, y float64) bool {
	return x >= c.MinX() && x < c.MaxX() && y >= c.MinY() && y < c.MaxY()
}

// Intersects reports whether the two cells overlap with positive area.
// Cells that merely share an edge do not intersect, consistent with the
// half-open Contains semantics.
func (c Cell) Intersects(other Cell) bool {
	return c.MinX() < other.MaxX() && other.MinX() < c.MaxX() &&
		c.MinY() < other.MaxY() && other.MinY() < c.MaxY()
}
