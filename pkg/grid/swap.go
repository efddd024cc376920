package grid

import "sort"

// Swap exchanges the positions of two rects while each retains its own
// size. The preferred target for each rect is the other's original slot.
// When the naive exchange would leave a rect overlapping or out of bounds,
// the nearest valid alternative is searched for with BestNear, anchored at
// the other rect's original position.
//
// The fallback is deliberately asymmetric: the first rect is settled
// before the second is placed against it, so swapping (a, b) may differ
// from swapping (b, a) when space is tight. Returns ErrCannotSwap when no
// valid non-overlapping pair of positions exists within bounds.
func Swap(l Layout, b Bounds, idA, idB string) (Layout, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	ra, ok := l.Find(idA)
	if !ok {
		return nil, ErrUnknownRect
	}
	rb, ok := l.Find(idB)
	if !ok {
		return nil, ErrUnknownRect
	}

	origA := Pos{X: ra.X, Y: ra.Y}
	origB := Pos{X: rb.X, Y: rb.Y}
	others := l.without(idA, idB)

	// Settle the first rect at (or near) the second's original slot.
	occ := NewOccupancy(b, others, "")
	posA, ok := placeAt(occ, origB.X, origB.Y, ra.W, ra.H)
	if !ok {
		return nil, ErrCannotSwap
	}
	newA := ra.MoveTo(posA.X, posA.Y)

	// Then the second at (or near) the first's original slot, checked
	// against everything including the settled first rect.
	occ = NewOccupancy(b, append(others.Clone(), newA), "")
	posB, ok := placeAt(occ, origA.X, origA.Y, rb.W, rb.H)
	if !ok {
		return nil, ErrCannotSwap
	}
	newB := rb.MoveTo(posB.X, posB.Y)

	out := l.replace(newA).replace(newB)
	if err := out.Validate(b); err != nil {
		return nil, ErrCannotSwap
	}
	return out, nil
}

// GroupSwapResult reports a successful group swap: the new layout and the
// IDs of the displaced rects in the order they were rehomed.
type GroupSwapResult struct {
	Layout    Layout   `json:"layout"`
	Displaced []string `json:"displaced"`
}

// GroupSwap positions one (typically large) source rect at the desired
// cell, clamped to bounds, and rehomes every smaller rect it lands on.
// Displaced rects are placed largest first, each searched near the
// source's original position and falling back to first-fit anywhere. The
// whole batch fails with ErrCannotSwap if any one displaced rect cannot be
// placed; on success the batch is reconciled against the bounds before
// being returned.
func GroupSwap(l Layout, b Bounds, sourceID string, x, y int) (*GroupSwapResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	src, ok := l.Find(sourceID)
	if !ok {
		return nil, ErrUnknownRect
	}
	if src.W > b.Cols || src.H > b.MaxRows {
		return nil, ErrOutOfBounds
	}

	origin := Pos{X: src.X, Y: src.Y}
	moved := src.MoveTo(clamp(x, 0, b.Cols-src.W), clamp(y, 0, b.MaxRows-src.H))

	displaced := l.overlapping(moved, sourceID)
	sort.SliceStable(displaced, func(i, j int) bool {
		return displaced[i].Area() > displaced[j].Area()
	})

	work := l.replace(moved)
	ids := make([]string, 0, len(displaced))
	for _, d := range displaced {
		occ := NewOccupancy(b, work, d.ID)
		pos, found := occ.BestNear(origin.X, origin.Y, d.W, d.H)
		if !found {
			return nil, ErrCannotSwap
		}
		work = work.replace(d.MoveTo(pos.X, pos.Y))
		ids = append(ids, d.ID)
	}

	work = clampLayout(work, b)
	if err := work.Validate(b); err != nil {
		return nil, ErrCannotSwap
	}
	return &GroupSwapResult{Layout: work, Displaced: ids}, nil
}

// placeAt settles a w×h rect at the preferred position if it fits, else at
// the nearest valid position found by ring search.
func placeAt(occ *Occupancy, px, py, w, h int) (Pos, bool) {
	preferred := Pos{X: clamp(px, 0, occ.bounds.Cols-w), Y: clamp(py, 0, occ.bounds.MaxRows-h)}
	if occ.CanFitAt(preferred.X, preferred.Y, w, h) {
		return preferred, true
	}
	return occ.BestNear(px, py, w, h)
}

// clampLayout snaps every rect back inside the bounds. Placement already
// checks bounds, so this is the final reconciliation pass for positions
// computed relative to a clamped anchor.
func clampLayout(l Layout, b Bounds) Layout {
	out := l.Clone()
	for i, r := range out {
		out[i].X = clamp(r.X, 0, max(b.Cols-r.W, 0))
		out[i].Y = clamp(r.Y, 0, max(b.MaxRows-r.H, 0))
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// without returns a copy of the layout with the named rects removed.
func (l Layout) without(ids ...string) Layout {
	out := make(Layout, 0, len(l))
	for _, r := range l {
		keep := true
		for _, id := range ids {
			if r.ID == id {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}
