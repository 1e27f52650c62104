package icon

import (
	"fmt"
	"image"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// WriteICO bundles imgs into a single ICO file at path, one directory
// entry per image. The ICO format caps dimensions at 256 pixels; callers
// validate sizes before rendering.
func WriteICO(path string, imgs []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(): %s", err)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, imgs); err != nil {
		return fmt.Errorf("ico.EncodeAll(): %s", err)
	}

	return nil
}
