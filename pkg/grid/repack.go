package grid

import (
	"cmp"
	"slices"
)

// orderFunc compares two rects to decide placement order for one repack
// trial. Comparators follow the standard three-way convention: negative
// means a packs before b.
type orderFunc func(a, b Rect) int

// byArea orders largest area first.
func byArea(a, b Rect) int { return cmp.Compare(b.Area(), a.Area()) }

// byWidth orders widest first, breaking ties by area.
func byWidth(a, b Rect) int {
	if c := cmp.Compare(b.W, a.W); c != 0 {
		return c
	}
	return byArea(a, b)
}

// byHeight orders tallest first, breaking ties by area.
func byHeight(a, b Rect) int {
	if c := cmp.Compare(b.H, a.H); c != 0 {
		return c
	}
	return byArea(a, b)
}

// byReadingOrder preserves the original top-to-bottom, left-to-right order.
func byReadingOrder(a, b Rect) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// byRowFill prefers widths that divide the column count evenly, so full
// rows can be tiled without slivers; equal remainders fall back to wider
// then larger rects.
func byRowFill(cols int) orderFunc {
	return func(a, b Rect) int {
		if c := cmp.Compare(cols%max(a.W, 1), cols%max(b.W, 1)); c != 0 {
			return c
		}
		return byWidth(a, b)
	}
}

// Repack re-derives the whole layout from empty occupancy, placing rects
// one at a time with FirstFit. Five ordering heuristics are tried -
// largest-area, widest, tallest, original reading order, and row-filling
// efficiency - each producing a full candidate layout. The candidate with
// the least vertical extent wins; ties are broken by the most unused cells
// in the rows above that extent. When the input layout is already valid it
// is scored as a baseline candidate too, so repacking never increases the
// vertical extent of a layout that was fine to begin with.
//
// The multi-trial search trades compute for packing quality, which is
// acceptable at dashboard widget counts. Returns ErrNoSpace if no ordering
// can place every rect inside the bounds.
//
// Rects keep their identity and size; only positions change. The returned
// layout lists rects in the same order as the input.
func Repack(l Layout, b Bounds) (Layout, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return Layout{}, nil
	}

	orders := []orderFunc{byArea, byWidth, byHeight, byReadingOrder, byRowFill(b.Cols)}

	var best Layout
	bestExtent, bestFree := -1, -1
	consider := func(candidate Layout) {
		extent := candidate.MaxY()
		free := NewOccupancy(b, candidate, "").FreeCells(extent)
		if bestExtent < 0 || extent < bestExtent || (extent == bestExtent && free > bestFree) {
			best, bestExtent, bestFree = candidate, extent, free
		}
	}

	for _, order := range orders {
		ordered := l.Clone()
		slices.SortStableFunc(ordered, order)
		if candidate, ok := packOrdered(ordered, b); ok {
			consider(restoreOrder(l, candidate))
		}
	}
	if l.Validate(b) == nil {
		consider(l.Clone())
	}

	if bestExtent < 0 {
		return nil, ErrNoSpace
	}
	return best, nil
}

// packOrdered places the rects in the given order onto an empty grid via
// first fit. Returns false if any rect cannot be placed.
func packOrdered(ordered Layout, b Bounds) (Layout, bool) {
	occ := &Occupancy{bounds: b, cells: make([]bool, b.Cols*b.MaxRows)}
	out := make(Layout, 0, len(ordered))
	for _, r := range ordered {
		pos, ok := occ.FirstFit(r.W, r.H)
		if !ok {
			return nil, false
		}
		placed := r.MoveTo(pos.X, pos.Y)
		occ.Mark(placed.X, placed.Y, placed.W, placed.H)
		out = append(out, placed)
	}
	return out, true
}

// restoreOrder re-lists a packed candidate in the original layout's order.
func restoreOrder(original, packed Layout) Layout {
	byID := make(map[string]Rect, len(packed))
	for _, r := range packed {
		byID[r.ID] = r
	}
	out := make(Layout, 0, len(original))
	for _, r := range original {
		out = append(out, byID[r.ID])
	}
	return out
}
