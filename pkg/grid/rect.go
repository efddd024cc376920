package grid

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOutOfBounds is returned when a requested position or size does not
	// fit inside the grid bounds. The request is rejected before any
	// placement work is attempted.
	ErrOutOfBounds = errors.New("rect exceeds grid bounds")

	// ErrUnknownRect is returned when an operation references a rect ID that
	// is not present in the layout.
	ErrUnknownRect = errors.New("unknown rect ID")

	// ErrOverlap is returned by [Layout.Validate] when two rects occupy the
	// same cell. A layout in this state must never be returned by any
	// operation in this package.
	ErrOverlap = errors.New("rects overlap")

	// ErrNoSpace is returned when no arrangement of the layout can
	// accommodate a request, even after repacking and shrinking.
	ErrNoSpace = errors.New("no space available")

	// ErrCannotPush is returned by [Push] when at least one obstructing rect
	// has no legal relocation in any trial direction.
	ErrCannotPush = errors.New("cannot push obstructing rects")

	// ErrCannotResize is returned by [Resize] when an overlapped rect can
	// neither be relocated nor shrunk enough to clear the new extent.
	ErrCannotResize = errors.New("cannot free space for resize")

	// ErrCannotSwap is returned by [Swap] and [GroupSwap] when no valid
	// non-overlapping set of target positions exists within bounds.
	ErrCannotSwap = errors.New("cannot swap rects")
)

// Rect is a widget's rectangular footprint in grid-cell coordinates.
// X and Y address the top-left cell (origin top-left, Y increasing
// downward); W and H are extents measured in cells.
//
// MinW and MinH are the floor below which the rect may never shrink.
// MaxW and MaxH cap growth; zero means unbounded.
//
// Rects are plain values and are never mutated in place by this package:
// every operation copies the layout it is given and returns a new one.
type Rect struct {
	ID   string `json:"id"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
	MinW int    `json:"min_w,omitempty"`
	MinH int    `json:"min_h,omitempty"`
	MaxW int    `json:"max_w,omitempty"`
	MaxH int    `json:"max_h,omitempty"`
}

// Right returns the exclusive right edge (X+W).
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge (Y+H).
func (r Rect) Bottom() int { return r.Y + r.H }

// Area returns the number of cells the rect covers.
func (r Rect) Area() int { return r.W * r.H }

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// In reports whether the rect lies fully inside the bounds.
func (r Rect) In(b Bounds) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= b.Cols && r.Bottom() <= b.MaxRows
}

// MoveTo returns a copy of the rect positioned at (x, y) with the same size.
func (r Rect) MoveTo(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}

// minSize returns the effective shrink floor for the rect, consulting the
// table first and falling back to the rect's own MinW/MinH. A floor is never
// smaller than one cell in either axis.
func (r Rect) minSize(mins MinSizeTable) (w, h int) {
	w, h = r.MinW, r.MinH
	if m, ok := mins[r.ID]; ok {
		w, h = m.W, m.H
	}
	return max(w, 1), max(h, 1)
}

// Bounds is the immutable addressable area for one packing session.
// Cols is the fixed column count; MaxRows bounds the vertical extent.
// MaxRows is derived externally (typically from viewport height) and may
// differ between calls, but never changes within one.
type Bounds struct {
	Cols    int `json:"cols"`
	MaxRows int `json:"max_rows"`
}

// Area returns the total cell capacity of the grid.
func (b Bounds) Area() int { return b.Cols * b.MaxRows }

// Validate checks that the bounds describe a usable grid.
func (b Bounds) Validate() error {
	if b.Cols < 1 || b.MaxRows < 1 {
		return fmt.Errorf("%w: bounds %dx%d", ErrOutOfBounds, b.Cols, b.MaxRows)
	}
	return nil
}

// MinSize is a per-rect shrink floor.
type MinSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

// MinSizeTable maps rect IDs to their shrink floors. It is supplied by the
// caller (the widget catalog) and consulted whenever a rect may shrink.
// Entries override the rect's own MinW/MinH; absent IDs fall back to them.
type MinSizeTable map[string]MinSize

// Pos is a cell position inside the grid.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Layout is an ordered set of placed rects. The slice is owned by the
// caller; operations in this package never modify the layout they receive
// and always return fresh copies.
type Layout []Rect

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout { return slices.Clone(l) }

// Find returns the rect with the given ID and true, or a zero rect and
// false if no such rect exists.
func (l Layout) Find(id string) (Rect, bool) {
	if i := l.index(id); i >= 0 {
		return l[i], true
	}
	return Rect{}, false
}

// index returns the position of the rect with the given ID, or -1.
func (l Layout) index(id string) int {
	return slices.IndexFunc(l, func(r Rect) bool { return r.ID == id })
}

// MaxY returns the layout's vertical extent: the largest Y+H over all
// rects, or 0 for an empty layout.
func (l Layout) MaxY() int {
	var extent int
	for _, r := range l {
		extent = max(extent, r.Bottom())
	}
	return extent
}

// Area returns the total number of cells covered by the layout, assuming
// the no-overlap invariant holds.
func (l Layout) Area() int {
	var area int
	for _, r := range l {
		area += r.Area()
	}
	return area
}

// Validate checks the two global invariants every operation in this package
// must preserve: each rect lies fully inside the bounds, and no two rects
// share a cell. Returns ErrOutOfBounds or ErrOverlap (wrapped with the
// offending IDs) on violation.
func (l Layout) Validate(b Bounds) error {
	for i, r := range l {
		if !r.In(b) {
			return fmt.Errorf("%w: %s at (%d,%d) %dx%d in %dx%d grid",
				ErrOutOfBounds, r.ID, r.X, r.Y, r.W, r.H, b.Cols, b.MaxRows)
		}
		for _, o := range l[i+1:] {
			if r.Overlaps(o) {
				return fmt.Errorf("%w: %s and %s", ErrOverlap, r.ID, o.ID)
			}
		}
	}
	return nil
}

// overlapping returns the rects in the layout that share at least one cell
// with zone, skipping the rect with the excluded ID.
func (l Layout) overlapping(zone Rect, exclude string) []Rect {
	var hits []Rect
	for _, r := range l {
		if r.ID != exclude && r.Overlaps(zone) {
			hits = append(hits, r)
		}
	}
	return hits
}

// replace returns a copy of the layout with the rect of the same ID
// substituted. The original layout is left untouched.
func (l Layout) replace(r Rect) Layout {
	out := l.Clone()
	if i := out.index(r.ID); i >= 0 {
		out[i] = r
	}
	return out
}
