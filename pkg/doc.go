// Package pkg provides the core libraries for gridpack layout management.
//
// # Overview
//
// Gridpack manages 2D dashboard grid layouts: widgets occupy rectangular
// cell regions on a fixed-width grid, and the engine packs them tightly,
// finds room for new ones, and resolves collisions. The pkg directory is
// organized into five areas:
//
//  1. [grid] - The layout engine (occupancy, placement, push, resize, swap, repack, auto-adjust)
//  2. [catalog] - Widget type definitions with default and minimum sizes
//  3. [store] - Layout persistence (file, memory, Redis, Mongo backends)
//  4. [render] - SVG and ASCII layout snapshots
//  5. [errors], [observability], [buildinfo] - Application plumbing
//
// # Architecture
//
// The typical data flow through gridpack:
//
//	Widget Catalog (TOML)
//	         ↓
//	    [catalog] package (instantiate widgets, derive shrink floors)
//	         ↓
//	    [grid] package (place, pack, and adjust the layout)
//	         ↓
//	    [store] package (persist the layout document)
//	         ↓
//	    [render] package (SVG/ASCII output)
//
// The engine in [grid] is pure: it never touches storage, never mutates
// its inputs, and reports failure through sentinel errors. The CLI and
// HTTP API surfaces wrap those sentinels with coded errors from [errors].
package pkg
