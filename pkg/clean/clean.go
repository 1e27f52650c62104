// Package clean removes previously generated icon files.
package clean

import (
	"fmt"
	"os"
	"path/filepath"

	"netmon/icongen/pkg/config"
	"netmon/icongen/pkg/format"
	"netmon/icongen/pkg/log"
)

// Run deletes the outputs a generation run with the same configuration
// would produce: one PNG per size, plus the ICO bundle and SVG rendition
// if present. Files that do not exist are skipped silently.
func Run(cfg config.Config) error {
	paths := make([]string, 0, len(cfg.Sizes)+2)
	for _, size := range cfg.Sizes {
		paths = append(paths, filepath.Join(cfg.Dir, format.IconFile(size)))
	}
	paths = append(paths,
		filepath.Join(cfg.Dir, format.ICOFile()),
		filepath.Join(cfg.Dir, format.SVGFile()),
	)

	failed := 0
	for _, path := range paths {
		if !deleteFile(path) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be removed", failed)
	}

	return nil
}

// deleteFile removes the file at path and reports whether the removal
// succeeded. A missing file counts as success.
func deleteFile(path string) bool {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.VerboseMsg("Skipping %s, does not exist\n", path)
			return true
		}

		log.ErrorMsg("deleting %s: %s\n", path, err)
		return false
	}

	log.InfoMsg("Removed %s\n", path)
	return true
}
