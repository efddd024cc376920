package grid

// maxShrinkSteps bounds the iterative shrink-and-repack phase so the
// controller always terminates, even when the precheck was optimistic.
const maxShrinkSteps = 40

// AdjustResult reports a successful auto-adjust insertion: the (possibly
// repacked and shrunk) layout without the new rect, the position chosen
// for the new rect, and the IDs of every rect whose size was reduced.
type AdjustResult struct {
	Layout Layout   `json:"layout"`
	Pos    Pos      `json:"pos"`
	Shrunk []string `json:"shrunk"`
}

// AutoAdjust finds room for a new w×h rect in the layout, escalating
// through four phases:
//
//  1. First fit on the layout as-is; success changes nothing.
//  2. First fit after a plain repack; success changes positions only.
//  3. Iteratively shrink one unit off the most elastic rect - the one
//     with the greatest excess over its shrink floor, larger rects first -
//     repacking and rechecking after every step, up to a fixed ceiling.
//  4. Shrink every rect to its floor simultaneously and try one final
//     optimized repack.
//
// Before any shrink phase a capacity precheck sums every rect's minimum
// area plus the new rect's area against the grid capacity; if even that
// exceeds the grid, AutoAdjust fails immediately with ErrNoSpace rather
// than searching. Phases one and two never shrink anything, so Shrunk is
// empty whenever they succeed.
func AutoAdjust(l Layout, b Bounds, w, h int, mins MinSizeTable) (*AdjustResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if w < 1 || h < 1 || w > b.Cols || h > b.MaxRows {
		return nil, ErrOutOfBounds
	}

	// Phase 1: the layout may already have room.
	if pos, ok := NewOccupancy(b, l, "").FirstFit(w, h); ok {
		return &AdjustResult{Layout: l.Clone(), Pos: pos}, nil
	}

	// Phase 2: repack without touching sizes.
	if repacked, err := Repack(l, b); err == nil {
		if pos, ok := NewOccupancy(b, repacked, "").FirstFit(w, h); ok {
			return &AdjustResult{Layout: repacked, Pos: pos}, nil
		}
	}

	// Cheap feasibility gate before any shrinking happens.
	minArea := w * h
	for _, r := range l {
		mw, mh := r.minSize(mins)
		minArea += mw * mh
	}
	if minArea > b.Area() {
		return nil, ErrNoSpace
	}

	// Phase 3: shave the most elastic rect one unit at a time.
	work := l.Clone()
	for step := 0; step < maxShrinkSteps; step++ {
		i := mostElastic(work, mins)
		if i < 0 {
			break
		}
		work[i] = shrinkOne(work[i], mins)

		repacked, err := Repack(work, b)
		if err != nil {
			continue
		}
		if pos, ok := NewOccupancy(b, repacked, "").FirstFit(w, h); ok {
			return &AdjustResult{Layout: repacked, Pos: pos, Shrunk: shrunkIDs(l, repacked)}, nil
		}
		work = repacked
	}

	// Phase 4: everything to its floor, one last optimized repack.
	floored := l.Clone()
	for i, r := range floored {
		mw, mh := r.minSize(mins)
		floored[i].W, floored[i].H = mw, mh
	}
	repacked, err := Repack(floored, b)
	if err != nil {
		return nil, ErrNoSpace
	}
	pos, ok := NewOccupancy(b, repacked, "").FirstFit(w, h)
	if !ok {
		return nil, ErrNoSpace
	}
	return &AdjustResult{Layout: repacked, Pos: pos, Shrunk: shrunkIDs(l, repacked)}, nil
}

// mostElastic returns the index of the rect with the greatest excess area
// over its shrink floor, preferring larger rects on ties. Returns -1 when
// nothing can shrink further.
func mostElastic(l Layout, mins MinSizeTable) int {
	best, bestExcess := -1, 0
	for i, r := range l {
		mw, mh := r.minSize(mins)
		excess := r.Area() - mw*mh
		if excess <= 0 {
			continue
		}
		if best < 0 || excess > bestExcess ||
			(excess == bestExcess && r.Area() > l[best].Area()) {
			best, bestExcess = i, excess
		}
	}
	return best
}

// shrinkOne removes a single unit from the axis with the most slack,
// never crossing the rect's shrink floor.
func shrinkOne(r Rect, mins MinSizeTable) Rect {
	mw, mh := r.minSize(mins)
	if r.W-mw >= r.H-mh && r.W > mw {
		r.W--
	} else if r.H > mh {
		r.H--
	}
	return r
}

// shrunkIDs lists the rects whose final size is smaller than in the
// original layout.
func shrunkIDs(original, final Layout) []string {
	var ids []string
	for _, r := range final {
		if o, ok := original.Find(r.ID); ok && (r.W < o.W || r.H < o.H) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
