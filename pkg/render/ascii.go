package render

import (
	"strings"

	"github.com/lwertel/gridpack/pkg/grid"
)

// RenderASCII renders a layout as a cell map, one character per cell.
// Each widget is drawn with the first rune of its ID; free cells are
// dots. Rows are trimmed to the occupied extent.
func RenderASCII(l grid.Layout, b grid.Bounds) string {
	rows := l.MaxY()
	if rows == 0 {
		return ""
	}

	cells := make([][]rune, rows)
	for y := range cells {
		cells[y] = make([]rune, b.Cols)
		for x := range cells[y] {
			cells[y][x] = '.'
		}
	}

	for _, r := range l {
		mark := '?'
		for _, c := range r.ID {
			mark = c
			break
		}
		for y := r.Y; y < r.Bottom() && y < rows; y++ {
			for x := r.X; x < r.Right() && x < b.Cols; x++ {
				cells[y][x] = mark
			}
		}
	}

	var sb strings.Builder
	for y, row := range cells {
		sb.WriteString(string(row))
		if y < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
