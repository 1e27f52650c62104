package format

import "fmt"

// IconFile returns the output filename for one icon size, e.g. "icon16.png".
func IconFile(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// ICOFile returns the filename of the bundled ICO rendition.
func ICOFile() string {
	return "icon.ico"
}

// SVGFile returns the filename of the vector rendition.
func SVGFile() string {
	return "icon.svg"
}

// Dimensions returns a WxH label for a square icon size.
func Dimensions(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}
