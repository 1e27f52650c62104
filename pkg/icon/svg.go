package icon

import (
	"fmt"
	"image/color"
	"os"

	svg "github.com/ajstarks/svgo"
)

// SVGViewport is the nominal canvas size of the vector rendition. The SVG
// scales losslessly, so one viewport covers all display sizes.
const SVGViewport = 128

// WriteSVG writes a vector rendition of the glyph with a size x size
// viewport to path.
func WriteSVG(path string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(): %s", err)
	}
	defer f.Close()

	l := LayoutFor(size)

	canvas := svg.New(f)
	canvas.Start(size, size)
	canvas.Circle(l.Center, l.Center, l.Center-l.Margin,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", rgb(Fill), rgb(Outline), outlineWidth))

	style := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:butt", rgb(Stroke), l.StrokeWidth)
	for _, y := range l.GridRows() {
		canvas.Line(l.Center-l.GridHalfWidth(), y, l.Center+l.GridHalfWidth(), y, style)
	}
	for _, x := range l.GridCols() {
		canvas.Line(x, l.Center-l.GridHalfHeight(), x, l.Center+l.GridHalfHeight(), style)
	}

	canvas.End()

	return nil
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
