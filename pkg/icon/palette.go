package icon

import "image/color"

// Palette shared by all renditions of the glyph.
var (
	// Fill is the color of the disk.
	Fill = color.RGBA{R: 0, G: 124, B: 186, A: 255}

	// Outline is the darker ring around the disk.
	Outline = color.RGBA{R: 0, G: 90, B: 140, A: 255}

	// Stroke is the color of the grid lines.
	Stroke = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// outlineWidth is the thickness of the disk's outline ring in pixels.
const outlineWidth = 2
