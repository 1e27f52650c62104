// Package icon renders the network/monitor glyph used as the extension
// icon and encodes it to the supported output formats.
package icon

import (
	"image"
	"image/color"
	"math"
)

// Render draws the glyph onto a transparent size x size canvas: a filled
// disk with a darker outline ring, overlaid with three horizontal and two
// vertical white grid lines. Rendering is deterministic.
func Render(size int) *image.RGBA {
	l := LayoutFor(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	drawDisk(img, l)

	for _, y := range l.GridRows() {
		top := y - l.StrokeWidth/2
		fillRect(img, l.Center-l.GridHalfWidth(), top, l.Center+l.GridHalfWidth(), top+l.StrokeWidth-1, Stroke)
	}

	for _, x := range l.GridCols() {
		left := x - l.StrokeWidth/2
		fillRect(img, left, l.Center-l.GridHalfHeight(), left+l.StrokeWidth-1, l.Center+l.GridHalfHeight(), Stroke)
	}

	return img
}

// drawDisk fills the inscribed disk, switching to the outline color within
// outlineWidth of the rim. Pixels are classified by the distance from their
// center to the canvas center.
func drawDisk(img *image.RGBA, l Layout) {
	c := float64(l.Size) / 2

	for y := 0; y < l.Size; y++ {
		for x := 0; x < l.Size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			dist := math.Sqrt(dx*dx + dy*dy)

			switch {
			case dist > l.Radius:
				// outside, stays transparent
			case dist > l.Radius-outlineWidth:
				img.SetRGBA(x, y, Outline)
			default:
				img.SetRGBA(x, y, Fill)
			}
		}
	}
}

// fillRect paints the rectangle with inclusive corners (x0,y0)-(x1,y1),
// clipped to the image bounds.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	b := img.Bounds()

	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
