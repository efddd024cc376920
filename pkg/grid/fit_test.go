package grid

import "testing"

func TestCanFitAt(t *testing.T) {
	b := Bounds{Cols: 8, MaxRows: 6}
	l := Layout{{ID: "a", X: 2, Y: 2, W: 3, H: 2}}
	occ := NewOccupancy(b, l, "")

	tests := []struct {
		name       string
		x, y, w, h int
		want       bool
	}{
		{"free corner", 0, 0, 2, 2, true},
		{"flush against rect", 5, 2, 3, 2, true},
		{"overlapping rect", 1, 1, 3, 3, false},
		{"crosses right edge", 7, 0, 2, 1, false},
		{"crosses bottom edge", 0, 5, 1, 2, false},
		{"negative origin", -1, 0, 2, 2, false},
		{"whole free row", 0, 4, 8, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occ.CanFitAt(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("CanFitAt(%d,%d,%d,%d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestFirstFitScanOrder(t *testing.T) {
	b := Bounds{Cols: 6, MaxRows: 6}
	// Row 0 is blocked from x=0..4; the first 2x2 slot in row-major order
	// starts at (4,0).
	l := Layout{{ID: "a", X: 0, Y: 0, W: 4, H: 1}}
	occ := NewOccupancy(b, l, "")

	pos, ok := occ.FirstFit(2, 2)
	if !ok {
		t.Fatal("expected a fit")
	}
	if pos != (Pos{X: 4, Y: 0}) {
		t.Errorf("FirstFit = %+v, want (4,0)", pos)
	}
}

func TestFirstFitNoRoom(t *testing.T) {
	b := Bounds{Cols: 4, MaxRows: 4}
	l := Layout{{ID: "a", X: 0, Y: 0, W: 4, H: 4}}
	occ := NewOccupancy(b, l, "")

	if _, ok := occ.FirstFit(1, 1); ok {
		t.Error("full grid should have no fit")
	}
	if _, ok := NewOccupancy(b, nil, "").FirstFit(5, 1); ok {
		t.Error("rect wider than the grid should have no fit")
	}
}

func TestAllFits(t *testing.T) {
	b := Bounds{Cols: 3, MaxRows: 2}
	occ := NewOccupancy(b, Layout{{ID: "a", X: 0, Y: 0, W: 1, H: 2}}, "")

	fits := occ.AllFits(2, 1)
	want := []Pos{{X: 1, Y: 0}, {X: 1, Y: 1}}
	if len(fits) != len(want) {
		t.Fatalf("AllFits returned %d positions, want %d", len(fits), len(want))
	}
	for i := range want {
		if fits[i] != want[i] {
			t.Errorf("fits[%d] = %+v, want %+v", i, fits[i], want[i])
		}
	}
}

func TestBestNearPrefersSmallestRadius(t *testing.T) {
	b := Bounds{Cols: 10, MaxRows: 10}
	// The target cell itself is blocked; the nearest free slot is one ring out.
	l := Layout{{ID: "a", X: 4, Y: 4, W: 1, H: 1}}
	occ := NewOccupancy(b, l, "")

	pos, ok := occ.BestNear(4, 4, 1, 1)
	if !ok {
		t.Fatal("expected a fit")
	}
	if d := max(abs(pos.X-4), abs(pos.Y-4)); d != 1 {
		t.Errorf("BestNear landed at radius %d (pos %+v), want radius 1", d, pos)
	}
}

func TestBestNearExactTarget(t *testing.T) {
	occ := NewOccupancy(Bounds{Cols: 10, MaxRows: 10}, nil, "")
	pos, ok := occ.BestNear(3, 7, 2, 2)
	if !ok || pos != (Pos{X: 3, Y: 7}) {
		t.Errorf("BestNear on empty grid = %+v, %v; want (3,7), true", pos, ok)
	}
}

func TestBestNearFindsDistantFit(t *testing.T) {
	b := Bounds{Cols: 6, MaxRows: 6}
	// Only the top-left 2x2 corner is free; target far away.
	l := Layout{
		{ID: "a", X: 2, Y: 0, W: 4, H: 6},
		{ID: "b", X: 0, Y: 2, W: 2, H: 4},
	}
	occ := NewOccupancy(b, l, "")

	pos, ok := occ.BestNear(5, 5, 2, 2)
	if !ok {
		t.Fatal("expected a fit")
	}
	if pos != (Pos{X: 0, Y: 0}) {
		t.Errorf("distant fit = %+v, want (0,0)", pos)
	}
}

func TestBestNearNoRoom(t *testing.T) {
	b := Bounds{Cols: 4, MaxRows: 4}
	occ := NewOccupancy(b, Layout{{ID: "a", X: 0, Y: 0, W: 4, H: 4}}, "")
	if _, ok := occ.BestNear(1, 1, 1, 1); ok {
		t.Error("full grid should have no fit anywhere")
	}
}
