package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwertel/gridpack/pkg/grid"
)

// sizesByID captures each rect's extent for comparing across operations.
func sizesByID(l grid.Layout) map[string][2]int {
	out := make(map[string][2]int, len(l))
	for _, r := range l {
		out[r.ID] = [2]int{r.W, r.H}
	}
	return out
}

func TestOperationsPreserveInvariants(t *testing.T) {
	b := grid.Bounds{Cols: 12, MaxRows: 40}
	base := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 6, H: 4},
		{ID: "b", X: 6, Y: 0, W: 6, H: 4},
		{ID: "c", X: 0, Y: 4, W: 4, H: 4},
		{ID: "d", X: 4, Y: 4, W: 4, H: 4},
	}
	require.NoError(t, base.Validate(b))

	t.Run("push", func(t *testing.T) {
		res, err := grid.Push(base, b, grid.Rect{X: 0, Y: 0, W: 8, H: 6})
		require.NoError(t, err)
		assert.NoError(t, res.Layout.Validate(b))
		assert.Equal(t, sizesByID(base), sizesByID(res.Layout), "push must never change sizes")
		assert.Len(t, res.Layout, len(base))
	})

	t.Run("resize", func(t *testing.T) {
		res, err := grid.Resize(base, b, "a", 0, 0, 8, 6, nil)
		require.NoError(t, err)
		assert.NoError(t, res.Layout.Validate(b))

		a, ok := res.Layout.Find("a")
		require.True(t, ok)
		assert.Equal(t, 8, a.W)
		assert.Equal(t, 6, a.H)
	})

	t.Run("swap round trip", func(t *testing.T) {
		once, err := grid.Swap(base, b, "a", "c")
		require.NoError(t, err)
		assert.NoError(t, once.Validate(b))
		assert.Equal(t, sizesByID(base), sizesByID(once), "swap must never change sizes")
	})

	t.Run("group swap", func(t *testing.T) {
		res, err := grid.GroupSwap(base, b, "a", 4, 4)
		require.NoError(t, err)
		assert.NoError(t, res.Layout.Validate(b))
		assert.Equal(t, sizesByID(base), sizesByID(res.Layout))
	})

	t.Run("repack", func(t *testing.T) {
		sparse := grid.Layout{
			{ID: "a", X: 0, Y: 8, W: 6, H: 4},
			{ID: "b", X: 6, Y: 16, W: 6, H: 4},
		}
		require.NoError(t, sparse.Validate(b))

		packed, err := grid.Repack(sparse, b)
		require.NoError(t, err)
		assert.NoError(t, packed.Validate(b))
		assert.Equal(t, sizesByID(sparse), sizesByID(packed))
		assert.LessOrEqual(t, packed.MaxY(), sparse.MaxY(), "repack must never grow the extent")
	})

	t.Run("auto adjust honors floors", func(t *testing.T) {
		mins := grid.MinSizeTable{
			"a": {W: 4, H: 3}, "b": {W: 4, H: 3},
			"c": {W: 3, H: 3}, "d": {W: 3, H: 3},
		}
		tight := grid.Bounds{Cols: 12, MaxRows: 8}

		res, err := grid.AutoAdjust(base, tight, 6, 4, mins)
		require.NoError(t, err)
		assert.NoError(t, res.Layout.Validate(tight))

		for _, r := range res.Layout {
			m := mins[r.ID]
			assert.GreaterOrEqual(t, r.W, m.W, "%s width below floor", r.ID)
			assert.GreaterOrEqual(t, r.H, m.H, "%s height below floor", r.ID)
		}

		// The reported position must actually be free.
		occ := grid.NewOccupancy(tight, res.Layout, "")
		assert.True(t, occ.CanFitAt(res.Pos.X, res.Pos.Y, 6, 4), "reported position must fit the new rect")
	})
}

func TestOperationsLeaveInputUntouched(t *testing.T) {
	b := grid.Bounds{Cols: 12, MaxRows: 40}
	base := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 6, H: 4},
		{ID: "b", X: 6, Y: 0, W: 6, H: 4},
	}
	snapshot := base.Clone()

	_, err := grid.Push(base, b, grid.Rect{X: 0, Y: 0, W: 12, H: 2})
	require.NoError(t, err)
	_, err = grid.Swap(base, b, "a", "b")
	require.NoError(t, err)
	_, err = grid.Repack(base, b)
	require.NoError(t, err)
	_, err = grid.AutoAdjust(base, b, 3, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, snapshot, base, "operations must not mutate their input")
}
