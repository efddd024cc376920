package grid

import "slices"

// PushResult reports the outcome of a successful push: the new layout and
// the IDs of the rects that were relocated, in the order they were moved.
type PushResult struct {
	Layout Layout   `json:"layout"`
	Pushed []string `json:"pushed"`
}

// pushDirections is the fixed trial order for relocating an obstructing
// rect out of the desired zone.
var pushDirections = []string{"right", "down", "left", "up"}

// Push clears the desired zone by rigid translation of each rect that
// overlaps it, leaving non-overlapping rects untouched. The zone's ID (if
// any) names the rect being placed and is exempt from relocation.
//
// For every obstructing rect the four directions are tried in order:
// right, down, left, up. Each candidate position sits flush against the
// far edge of the zone, so the translation offset is whichever of the
// zone's or the rect's own extent clears the zone in that axis. A
// direction succeeds if the translated rect stays within bounds, does not
// re-enter the zone, and does not overlap any other rect - including
// obstructing rects already relocated earlier in the same call.
//
// The operation is all-or-nothing: if any obstructing rect has no legal
// direction, Push returns ErrCannotPush and the input layout is unchanged.
// Pushing into an already-free zone succeeds trivially with an empty
// Pushed list and an identical layout.
func Push(l Layout, b Bounds, zone Rect) (*PushResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !zone.In(b) {
		return nil, ErrOutOfBounds
	}

	work := l.Clone()
	var pushed []string

	for _, r := range l.overlapping(zone, zone.ID) {
		dest, ok := relocate(work, b, zone, r)
		if !ok {
			return nil, ErrCannotPush
		}
		work = work.replace(r.MoveTo(dest.X, dest.Y))
		pushed = append(pushed, r.ID)
	}

	return &PushResult{Layout: work, Pushed: pushed}, nil
}

// relocate finds the first legal translated position for r among the four
// trial directions, checked against the current working layout.
func relocate(work Layout, b Bounds, zone, r Rect) (Pos, bool) {
	for _, dir := range pushDirections {
		var moved Rect
		switch dir {
		case "right":
			moved = r.MoveTo(zone.Right(), r.Y)
		case "down":
			moved = r.MoveTo(r.X, zone.Bottom())
		case "left":
			moved = r.MoveTo(zone.X-r.W, r.Y)
		case "up":
			moved = r.MoveTo(r.X, zone.Y-r.H)
		}
		if !moved.In(b) || moved.Overlaps(zone) {
			continue
		}
		if clearOf(work, moved, r.ID, zone.ID) {
			return Pos{X: moved.X, Y: moved.Y}, true
		}
	}
	return Pos{}, false
}

// clearOf reports whether the candidate rect overlaps nothing in the
// layout apart from the rects with the skipped IDs. The zone's own rect
// (still at its pre-move position) must not count as an obstruction.
func clearOf(l Layout, candidate Rect, skip ...string) bool {
	for _, r := range l {
		if slices.Contains(skip, r.ID) {
			continue
		}
		if r.Overlaps(candidate) {
			return false
		}
	}
	return true
}
