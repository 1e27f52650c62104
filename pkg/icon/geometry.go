package icon

// Layout holds the pixel geometry of the glyph for one icon size. All
// fields derive from the size with integer arithmetic, so the same size
// always yields the same layout.
type Layout struct {
	Size        int
	Margin      int // inset from the canvas edge to the disk's bounding box
	Center      int
	StrokeWidth int
	Radius      float64
}

// LayoutFor computes the glyph geometry for a canvas of the given size.
func LayoutFor(size int) Layout {
	margin := size / 8

	return Layout{
		Size:        size,
		Margin:      margin,
		Center:      size / 2,
		StrokeWidth: max(1, size/16),
		Radius:      float64(size)/2 - float64(margin),
	}
}

// GridRows returns the y coordinates of the three horizontal grid lines.
func (l Layout) GridRows() [3]int {
	var rows [3]int
	for i := range rows {
		rows[i] = l.Center - l.Size/6 + i*l.Size/6
	}

	return rows
}

// GridCols returns the x coordinates of the two vertical grid lines.
func (l Layout) GridCols() [2]int {
	var cols [2]int
	for i := range cols {
		cols[i] = l.Center - l.Size/8 + i*l.Size/4
	}

	return cols
}

// GridHalfWidth is the horizontal reach of a grid row from the center.
func (l Layout) GridHalfWidth() int {
	return l.Size / 4
}

// GridHalfHeight is the vertical reach of a grid column from the center.
func (l Layout) GridHalfHeight() int {
	return l.Size / 6
}
