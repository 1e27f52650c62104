package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to path as PNG, overwriting any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(): %s", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png.Encode(): %s", err)
	}

	return nil
}
