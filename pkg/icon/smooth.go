package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

const supersample = 4

// RenderSmooth renders the glyph at 4x resolution and scales it down with
// Catmull-Rom resampling. Edges come out anti-aliased instead of
// pixel-exact, which looks better at display scale factors above 1.
func RenderSmooth(size int) *image.RGBA {
	src := Render(size * supersample)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Over, nil)

	return dst
}
