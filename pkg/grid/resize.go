package grid

import (
	"slices"
	"sort"
)

// ResizeResult reports a successful resize: the new layout plus the IDs of
// the rects that were relocated (Moved) or reduced in size (Shrunk) to
// make room. Callers use the ID lists for visual feedback.
type ResizeResult struct {
	Layout Layout   `json:"layout"`
	Moved  []string `json:"moved"`
	Shrunk []string `json:"shrunk"`
}

// Resize applies a new extent (x, y, w, h) to the rect with the given ID.
// Growth may extend any of the four edges; the new extent must stay inside
// the bounds and within the rect's own MaxW/MaxH caps.
//
// If the new extent overlaps nothing it is applied directly. Otherwise
// space is borrowed from the overlapped rects with move-first/shrink-second
// priority: phase one relocates each overlapped rect to free space
// elsewhere in the grid (the resizing rect's new extent counts as
// occupied); phase two shrinks any rect still unresolved, largest overlap
// first, trimming the overlapped edge nearest the resizing rect, never
// below the rect's shrink floor.
//
// The operation is all-or-nothing: a rect that can be neither moved nor
// legally shrunk enough aborts the whole resize with ErrCannotResize, and
// the input layout is unchanged.
func Resize(l Layout, b Bounds, id string, x, y, w, h int, mins MinSizeTable) (*ResizeResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	current, ok := l.Find(id)
	if !ok {
		return nil, ErrUnknownRect
	}

	target := current
	target.X, target.Y, target.W, target.H = x, y, w, h
	if w < 1 || h < 1 || !target.In(b) {
		return nil, ErrOutOfBounds
	}
	if (current.MaxW > 0 && w > current.MaxW) || (current.MaxH > 0 && h > current.MaxH) {
		return nil, ErrCannotResize
	}

	work := l.replace(target)
	overlapped := l.overlapping(target, id)
	if len(overlapped) == 0 {
		return &ResizeResult{Layout: work}, nil
	}

	var moved, shrunk []string

	// Phase 1: relocate whole rects into free space, nearest spot first.
	var unresolved []Rect
	for _, r := range overlapped {
		occ := NewOccupancy(b, work, r.ID)
		if pos, found := occ.BestNear(r.X, r.Y, r.W, r.H); found {
			work = work.replace(r.MoveTo(pos.X, pos.Y))
			moved = append(moved, r.ID)
			continue
		}
		unresolved = append(unresolved, r)
	}

	// Phase 2: shrink what could not be moved, largest overlap first.
	sort.SliceStable(unresolved, func(i, j int) bool {
		return overlapArea(unresolved[i], target) > overlapArea(unresolved[j], target)
	})
	for _, r := range unresolved {
		trimmed, ok := shrinkClear(r, target, mins)
		if !ok {
			return nil, ErrCannotResize
		}
		work = work.replace(trimmed)
		shrunk = append(shrunk, r.ID)
	}

	return &ResizeResult{Layout: work, Moved: moved, Shrunk: shrunk}, nil
}

// overlapArea returns the number of cells shared by a and b.
func overlapArea(a, b Rect) int {
	w := min(a.Right(), b.Right()) - max(a.X, b.X)
	h := min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// shrinkClear trims one edge of r so it no longer overlaps zone. All four
// trims that would clear the overlap are considered; among those that
// respect the shrink floor, the one removing the fewest cells wins - that
// is the overlapped edge closest to the resizing rect. Trimming only
// removes cells, so it can never introduce a new overlap elsewhere.
func shrinkClear(r, zone Rect, mins MinSizeTable) (Rect, bool) {
	minW, minH := r.minSize(mins)

	type trim struct {
		rect Rect
		cost int
	}
	var trims []trim

	// Trim the left edge: keep the part right of the zone.
	if zone.Right() > r.X && zone.Right() < r.Right() {
		t := r
		t.W = r.Right() - zone.Right()
		t.X = zone.Right()
		if t.W >= minW {
			trims = append(trims, trim{t, (t.X - r.X) * r.H})
		}
	}
	// Trim the right edge: keep the part left of the zone.
	if zone.X > r.X && zone.X < r.Right() {
		t := r
		t.W = zone.X - r.X
		if t.W >= minW {
			trims = append(trims, trim{t, (r.W - t.W) * r.H})
		}
	}
	// Trim the top edge: keep the part below the zone.
	if zone.Bottom() > r.Y && zone.Bottom() < r.Bottom() {
		t := r
		t.H = r.Bottom() - zone.Bottom()
		t.Y = zone.Bottom()
		if t.H >= minH {
			trims = append(trims, trim{t, (t.Y - r.Y) * r.W})
		}
	}
	// Trim the bottom edge: keep the part above the zone.
	if zone.Y > r.Y && zone.Y < r.Bottom() {
		t := r
		t.H = zone.Y - r.Y
		if t.H >= minH {
			trims = append(trims, trim{t, (r.H - t.H) * r.W})
		}
	}

	if len(trims) == 0 {
		return Rect{}, false
	}
	best := slices.MinFunc(trims, func(a, b trim) int { return a.cost - b.cost })
	return best.rect, true
}
