package grid

import (
	"errors"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{ID: "a", X: 2, Y: 2, W: 4, H: 4}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"contained", Rect{X: 3, Y: 3, W: 1, H: 1}, true},
		{"corner overlap", Rect{X: 5, Y: 5, W: 4, H: 4}, true},
		{"flush right", Rect{X: 6, Y: 2, W: 2, H: 2}, false},
		{"flush below", Rect{X: 2, Y: 6, W: 2, H: 2}, false},
		{"disjoint", Rect{X: 8, Y: 8, W: 2, H: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIn(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}

	if !(Rect{X: 0, Y: 0, W: 12, H: 10}).In(b) {
		t.Error("full-grid rect should be in bounds")
	}
	if (Rect{X: 11, Y: 0, W: 2, H: 1}).In(b) {
		t.Error("rect crossing the right edge should be out of bounds")
	}
	if (Rect{X: 0, Y: 9, W: 1, H: 2}).In(b) {
		t.Error("rect crossing the bottom edge should be out of bounds")
	}
	if (Rect{X: -1, Y: 0, W: 2, H: 2}).In(b) {
		t.Error("negative position should be out of bounds")
	}
}

func TestLayoutValidate(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}

	valid := Layout{
		{ID: "a", X: 0, Y: 0, W: 6, H: 6},
		{ID: "b", X: 6, Y: 0, W: 6, H: 6},
	}
	if err := valid.Validate(b); err != nil {
		t.Fatalf("valid layout rejected: %v", err)
	}

	overlapping := Layout{
		{ID: "a", X: 0, Y: 0, W: 6, H: 6},
		{ID: "b", X: 5, Y: 5, W: 4, H: 4},
	}
	if err := overlapping.Validate(b); !errors.Is(err, ErrOverlap) {
		t.Errorf("want ErrOverlap, got %v", err)
	}

	outOfBounds := Layout{{ID: "a", X: 8, Y: 0, W: 6, H: 6}}
	if err := outOfBounds.Validate(b); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("want ErrOutOfBounds, got %v", err)
	}
}

func TestLayoutCloneIsIndependent(t *testing.T) {
	l := Layout{{ID: "a", X: 1, Y: 1, W: 2, H: 2}}
	c := l.Clone()
	c[0].X = 9
	if l[0].X != 1 {
		t.Error("Clone should not share backing memory with the original")
	}
}

func TestLayoutMaxY(t *testing.T) {
	if got := (Layout{}).MaxY(); got != 0 {
		t.Errorf("empty layout MaxY = %d, want 0", got)
	}
	l := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 3},
		{ID: "b", X: 2, Y: 4, W: 2, H: 5},
	}
	if got := l.MaxY(); got != 9 {
		t.Errorf("MaxY = %d, want 9", got)
	}
}

func TestMinSizeTableOverridesRectFloor(t *testing.T) {
	r := Rect{ID: "a", W: 6, H: 6, MinW: 2, MinH: 2}

	w, h := r.minSize(nil)
	if w != 2 || h != 2 {
		t.Errorf("rect floor = %dx%d, want 2x2", w, h)
	}

	w, h = r.minSize(MinSizeTable{"a": {W: 4, H: 3}})
	if w != 4 || h != 3 {
		t.Errorf("table floor = %dx%d, want 4x3", w, h)
	}

	// A missing floor defaults to one cell.
	w, h = (Rect{ID: "b", W: 3, H: 3}).minSize(nil)
	if w != 1 || h != 1 {
		t.Errorf("default floor = %dx%d, want 1x1", w, h)
	}
}
