package qr

import (
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// RenderSVG draws m as an SVG document. The viewBox is expressed in modules,
// border modules of quiet zone surround the symbol and every module is scale
// units wide in the rendered width and height.
func RenderSVG(m Matrix, scale, border int) string {
	if scale < 1 {
		scale = 1
	}
	if border < 0 {
		border = 0
	}

	dim := m.Size() + 2*border

	var sb strings.Builder
	canvas := svg.New(&sb)
	canvas.Startview(dim*scale, dim*scale, 0, 0, dim, dim)
	canvas.Rect(0, 0, dim, dim, `fill="#FFFFFF"`)
	canvas.Path(modulePath(m, border), `fill="#000000"`)
	canvas.End()

	return sb.String()
}

// modulePath emits one unit square per dark module, row-major.
func modulePath(m Matrix, border int) string {
	size := m.Size()

	var d strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !m.Black(x, y) {
				continue
			}
			if d.Len() > 0 {
				d.WriteByte(' ')
			}
			fmt.Fprintf(&d, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}

	return d.String()
}
