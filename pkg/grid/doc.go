// Package grid implements the geometric packing and conflict-resolution
// engine behind gridpack: positioning rectangular widgets on a
// fixed-column, bounded-row grid so that no two widgets ever occupy the
// same cell.
//
// # Data model
//
// A [Layout] is a caller-owned slice of [Rect] values addressed in cell
// coordinates (origin top-left) within a [Bounds]. Every operation takes
// the current layout plus the bounds and returns a new layout or an
// error - no rect is ever mutated in place, and nothing is retained
// between calls. Occupancy indices are rebuilt fresh from the layout for
// each query.
//
// # Operations
//
// The engine exposes one operation per interaction:
//
//   - [Occupancy.FirstFit], [Occupancy.AllFits], [Occupancy.BestNear]:
//     placement queries for previews and drop-zone highlighting
//   - [Push]: relocate obstructing rects out of a desired zone on drop
//   - [Resize]: grow a rect, borrowing space move-first/shrink-second
//   - [Swap], [GroupSwap]: exchange positions while preserving sizes
//   - [Repack]: re-derive the whole layout with multi-heuristic packing
//   - [AutoAdjust]: find room for a new rect, shrinking others if needed
//
// # Invariants
//
// Every non-error result satisfies two global invariants: no two rects
// overlap, and every rect lies fully inside the bounds. Shrinking never
// reduces a rect below its floor (the rect's MinW/MinH, or the caller's
// [MinSizeTable] override). Operations that cannot satisfy these
// constraints return a sentinel error and leave the input untouched; the
// caller keeps its last known-good layout and discards the attempt.
//
// # Concurrency
//
// All operations are pure synchronous functions over their inputs.
// Concurrent reads of a shared layout are safe; concurrent logical writes
// must be serialized by the caller.
//
// # Example
//
//	layout := grid.Layout{
//	    {ID: "chart", X: 0, Y: 0, W: 6, H: 4, MinW: 3, MinH: 2},
//	    {ID: "table", X: 6, Y: 0, W: 6, H: 4, MinW: 4, MinH: 3},
//	}
//	bounds := grid.Bounds{Cols: 12, MaxRows: 10}
//
//	res, err := grid.AutoAdjust(layout, bounds, 4, 4, nil)
//	if err != nil {
//	    // no arrangement exists; keep the old layout
//	}
//	// res.Layout + a new rect at res.Pos is valid and overlap-free
package grid
