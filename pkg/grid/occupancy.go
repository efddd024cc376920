package grid

// Occupancy is a boolean cell-occupancy index over a bounded grid.
// It is derived fresh from a layout before each query and discarded
// afterwards; nothing in this package persists one across calls.
//
// The zero value is not usable - use NewOccupancy.
type Occupancy struct {
	bounds Bounds
	cells  []bool
}

// NewOccupancy builds an occupancy index from the layout, marking every
// cell covered by a rect. Rects with the excluded ID are skipped, which
// lets a rect be tested against "everyone else". Pass an empty string to
// include all rects.
//
// Cells outside the bounds are silently clipped; this can only happen if
// an upstream invariant was already violated, and clipping keeps the index
// well defined regardless.
func NewOccupancy(b Bounds, l Layout, exclude string) *Occupancy {
	o := &Occupancy{
		bounds: b,
		cells:  make([]bool, b.Cols*b.MaxRows),
	}
	for _, r := range l {
		if r.ID != exclude {
			o.Mark(r.X, r.Y, r.W, r.H)
		}
	}
	return o
}

// Bounds returns the grid bounds the index was built for.
func (o *Occupancy) Bounds() Bounds { return o.bounds }

// Mark fills the rectangle (x, y, w, h) as occupied, clipping any part
// that falls outside the bounds.
func (o *Occupancy) Mark(x, y, w, h int) {
	for row := max(y, 0); row < min(y+h, o.bounds.MaxRows); row++ {
		for col := max(x, 0); col < min(x+w, o.bounds.Cols); col++ {
			o.cells[row*o.bounds.Cols+col] = true
		}
	}
}

// Occupied reports whether the cell (x, y) is covered by some rect.
// Out-of-bounds cells report false.
func (o *Occupancy) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= o.bounds.Cols || y >= o.bounds.MaxRows {
		return false
	}
	return o.cells[y*o.bounds.Cols+x]
}

// FreeCells returns the number of unoccupied cells in rows [0, row).
// The repack optimizer uses this as its compactness tie-breaker.
func (o *Occupancy) FreeCells(row int) int {
	row = min(row, o.bounds.MaxRows)
	var free int
	for i := 0; i < row*o.bounds.Cols; i++ {
		if !o.cells[i] {
			free++
		}
	}
	return free
}
