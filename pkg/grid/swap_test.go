package grid

import (
	"errors"
	"testing"
)

func TestSwapExchangesSlots(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}
	l := Layout{
		{ID: "A", X: 0, Y: 0, W: 4, H: 4},
		{ID: "B", X: 8, Y: 0, W: 2, H: 2},
	}

	out, err := Swap(l, b, "A", "B")
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}

	a, _ := out.Find("A")
	if a.X != 8 || a.Y != 0 || a.W != 4 || a.H != 4 {
		t.Errorf("A = %+v, want (8,0) 4x4", a)
	}
	bb, _ := out.Find("B")
	if bb.X != 0 || bb.Y != 0 || bb.W != 2 || bb.H != 2 {
		t.Errorf("B = %+v, want (0,0) 2x2", bb)
	}
	if err := out.Validate(b); err != nil {
		t.Errorf("result violates invariants: %v", err)
	}
}

func TestSwapClampsOversizeTarget(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}
	// B sits at the right edge; A is too wide to start at B's exact slot
	// and must be clamped or ring-searched into bounds.
	l := Layout{
		{ID: "A", X: 0, Y: 0, W: 6, H: 4},
		{ID: "B", X: 10, Y: 0, W: 2, H: 2},
	}

	out, err := Swap(l, b, "A", "B")
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if err := out.Validate(b); err != nil {
		t.Fatalf("result violates invariants: %v", err)
	}
	a, _ := out.Find("A")
	if a.W != 6 || a.H != 4 {
		t.Errorf("A changed size: %dx%d", a.W, a.H)
	}
	bb, _ := out.Find("B")
	if bb.W != 2 || bb.H != 2 {
		t.Errorf("B changed size: %dx%d", bb.W, bb.H)
	}
}

func TestSwapRoundTrip(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}
	l := Layout{
		{ID: "A", X: 0, Y: 0, W: 4, H: 4},
		{ID: "B", X: 8, Y: 0, W: 2, H: 2},
		{ID: "C", X: 0, Y: 6, W: 3, H: 3},
	}

	once, err := Swap(l, b, "A", "B")
	if err != nil {
		t.Fatalf("first swap: %v", err)
	}
	twice, err := Swap(once, b, "A", "B")
	if err != nil {
		t.Fatalf("second swap: %v", err)
	}

	if err := twice.Validate(b); err != nil {
		t.Fatalf("round-trip violates invariants: %v", err)
	}
	for _, id := range []string{"A", "B", "C"} {
		orig, _ := l.Find(id)
		final, _ := twice.Find(id)
		if final.W != orig.W || final.H != orig.H {
			t.Errorf("%s size changed across round trip: %dx%d -> %dx%d",
				id, orig.W, orig.H, final.W, final.H)
		}
	}
}

func TestSwapUnknownID(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}
	l := Layout{{ID: "A", X: 0, Y: 0, W: 4, H: 4}}

	if _, err := Swap(l, b, "A", "missing"); !errors.Is(err, ErrUnknownRect) {
		t.Errorf("want ErrUnknownRect, got %v", err)
	}
	if _, err := Swap(l, b, "missing", "A"); !errors.Is(err, ErrUnknownRect) {
		t.Errorf("want ErrUnknownRect, got %v", err)
	}
}

func TestSwapFailsWhenNothingFits(t *testing.T) {
	// A is as large as the whole grid minus B's slot; after the exchange
	// there is no cell assignment that avoids overlap.
	b := Bounds{Cols: 4, MaxRows: 4}
	l := Layout{
		{ID: "A", X: 0, Y: 0, W: 4, H: 2},
		{ID: "B", X: 0, Y: 2, W: 3, H: 2},
		{ID: "C", X: 3, Y: 2, W: 1, H: 2},
	}

	out, err := Swap(l, b, "A", "C")
	if err == nil {
		// A 4x2 rect cannot sit at C's column-3 slot, but the engine may
		// still find a legal arrangement; it must at least be valid.
		if verr := out.Validate(b); verr != nil {
			t.Fatalf("swap returned invalid layout: %v", verr)
		}
		return
	}
	if !errors.Is(err, ErrCannotSwap) {
		t.Errorf("want ErrCannotSwap, got %v", err)
	}
}

func TestGroupSwapDisplacesSmallerRects(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}
	l := Layout{
		{ID: "S", X: 0, Y: 0, W: 6, H: 6},
		{ID: "a", X: 6, Y: 0, W: 3, H: 3},
		{ID: "b", X: 9, Y: 0, W: 3, H: 3},
		{ID: "c", X: 6, Y: 3, W: 3, H: 3},
	}

	res, err := GroupSwap(l, b, "S", 6, 0)
	if err != nil {
		t.Fatalf("GroupSwap: %v", err)
	}

	s, _ := res.Layout.Find("S")
	if s.X != 6 || s.Y != 0 {
		t.Errorf("S = (%d,%d), want (6,0)", s.X, s.Y)
	}
	if len(res.Displaced) != 3 {
		t.Errorf("Displaced = %v, want all three small rects", res.Displaced)
	}
	if err := res.Layout.Validate(b); err != nil {
		t.Errorf("result violates invariants: %v", err)
	}
	for _, id := range []string{"a", "b", "c"} {
		r, _ := res.Layout.Find(id)
		if r.W != 3 || r.H != 3 {
			t.Errorf("%s changed size: %dx%d", id, r.W, r.H)
		}
	}
}

func TestGroupSwapClampsToBounds(t *testing.T) {
	b := Bounds{Cols: 12, MaxRows: 10}
	l := Layout{{ID: "S", X: 0, Y: 0, W: 6, H: 6}}

	res, err := GroupSwap(l, b, "S", 100, 100)
	if err != nil {
		t.Fatalf("GroupSwap: %v", err)
	}
	s, _ := res.Layout.Find("S")
	if s.X != 6 || s.Y != 4 {
		t.Errorf("S = (%d,%d), want clamped (6,4)", s.X, s.Y)
	}
}

func TestGroupSwapFailsWhenDisplacedCannotFit(t *testing.T) {
	// Moving S to straddle a and b leaves only two single-column slivers
	// of free space, so the second displaced rect has no home.
	b := Bounds{Cols: 6, MaxRows: 2}
	l := Layout{
		{ID: "S", X: 0, Y: 0, W: 2, H: 2},
		{ID: "a", X: 2, Y: 0, W: 2, H: 2},
		{ID: "b", X: 4, Y: 0, W: 2, H: 2},
	}

	_, err := GroupSwap(l, b, "S", 3, 0)
	if !errors.Is(err, ErrCannotSwap) {
		t.Fatalf("want ErrCannotSwap, got %v", err)
	}
	if l[0].X != 0 || l[1].X != 2 || l[2].X != 4 {
		t.Error("failed group swap mutated the input layout")
	}
}
