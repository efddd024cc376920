// Package render produces visual snapshots of grid layouts.
//
// Two sinks are provided: RenderSVG writes a scalable vector snapshot
// suitable for docs and dashboards, and RenderASCII writes a compact
// cell map for terminal output.
package render

import (
	"bytes"
	"fmt"
	"hash/fnv"

	"github.com/lwertel/gridpack/pkg/grid"
)

// palette holds the fill colors cycled across widgets.
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize  int
	gridLines bool
	labels    bool
}

// WithCellSize sets the rendered size of one grid cell in pixels.
func WithCellSize(px int) SVGOption { return func(r *svgRenderer) { r.cellSize = px } }

// WithGridLines draws the cell grid behind the widgets.
func WithGridLines() SVGOption { return func(r *svgRenderer) { r.gridLines = true } }

// WithLabels draws each widget's ID centered in its rect.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG renders a layout snapshot as an SVG document.
// The vertical extent is trimmed to the occupied rows, so sparse
// layouts do not produce mostly empty images.
func RenderSVG(l grid.Layout, b grid.Bounds, opts ...SVGOption) []byte {
	r := svgRenderer{cellSize: 40, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	rows := l.MaxY()
	if rows == 0 {
		rows = 1
	}
	width := b.Cols * r.cellSize
	height := rows * r.cellSize

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#fafafa"/>`+"\n", width, height)

	if r.gridLines {
		renderGridLines(&buf, b.Cols, rows, r.cellSize)
	}

	for _, rect := range l {
		renderRect(&buf, rect, r.cellSize, r.labels)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGridLines(buf *bytes.Buffer, cols, rows, cell int) {
	for x := 0; x <= cols; x++ {
		fmt.Fprintf(buf, `  <line x1="%d" y1="0" x2="%d" y2="%d" stroke="#e0e0e0"/>`+"\n",
			x*cell, x*cell, rows*cell)
	}
	for y := 0; y <= rows; y++ {
		fmt.Fprintf(buf, `  <line x1="0" y1="%d" x2="%d" y2="%d" stroke="#e0e0e0"/>`+"\n",
			y*cell, cols*cell, y*cell)
	}
}

func renderRect(buf *bytes.Buffer, r grid.Rect, cell int, label bool) {
	x, y := r.X*cell, r.Y*cell
	w, h := r.W*cell, r.H*cell
	fmt.Fprintf(buf, `  <rect id="widget-%s" x="%d" y="%d" width="%d" height="%d" rx="4" fill="%s" stroke="#333" stroke-width="1.5" fill-opacity="0.85"/>`+"\n",
		r.ID, x, y, w, h, colorFor(r.ID))
	if label {
		fmt.Fprintf(buf, `  <text x="%d" y="%d" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%d" fill="#222">%s</text>`+"\n",
			x+w/2, y+h/2, cell/3, r.ID)
	}
}

// colorFor picks a stable palette color for a widget ID.
func colorFor(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return palette[h.Sum32()%uint32(len(palette))]
}
