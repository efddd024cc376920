package grid

// CanFitAt reports whether a w×h rect placed at (x, y) lies fully inside
// the bounds with every covered cell unoccupied.
func (o *Occupancy) CanFitAt(x, y, w, h int) bool {
	if x < 0 || y < 0 || x+w > o.bounds.Cols || y+h > o.bounds.MaxRows {
		return false
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if o.cells[row*o.bounds.Cols+col] {
				return false
			}
		}
	}
	return true
}

// FirstFit scans rows top-to-bottom and columns left-to-right and returns
// the first position where a w×h rect fits. The scan order is the
// deterministic tie-break: smaller Y wins, then smaller X. Returns false
// if no position fits.
func (o *Occupancy) FirstFit(w, h int) (Pos, bool) {
	for y := 0; y+h <= o.bounds.MaxRows; y++ {
		for x := 0; x+w <= o.bounds.Cols; x++ {
			if o.CanFitAt(x, y, w, h) {
				return Pos{X: x, Y: y}, true
			}
		}
	}
	return Pos{}, false
}

// AllFits returns every position where a w×h rect fits, in the same
// row-major order as FirstFit. Used by callers to highlight drop zones.
func (o *Occupancy) AllFits(w, h int) []Pos {
	var fits []Pos
	for y := 0; y+h <= o.bounds.MaxRows; y++ {
		for x := 0; x+w <= o.bounds.Cols; x++ {
			if o.CanFitAt(x, y, w, h) {
				fits = append(fits, Pos{X: x, Y: y})
			}
		}
	}
	return fits
}

// BestNear searches for a fit close to the target position by expanding
// square rings of increasing Chebyshev radius around (tx, ty). The first
// fit found on the smallest radius wins; within one ring, positions are
// visited row-major for determinism. If no ring up to max(cols, maxRows)
// produces a fit, BestNear falls back to FirstFit.
func (o *Occupancy) BestNear(tx, ty, w, h int) (Pos, bool) {
	maxRadius := max(o.bounds.Cols, o.bounds.MaxRows)
	for radius := 0; radius <= maxRadius; radius++ {
		for y := ty - radius; y <= ty+radius; y++ {
			for x := tx - radius; x <= tx+radius; x++ {
				if max(abs(x-tx), abs(y-ty)) != radius {
					continue
				}
				if o.CanFitAt(x, y, w, h) {
					return Pos{X: x, Y: y}, true
				}
			}
		}
	}
	return o.FirstFit(w, h)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
