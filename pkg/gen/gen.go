// Package gen runs a full icon generation pass.
package gen

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"netmon/icongen/pkg/config"
	"netmon/icongen/pkg/format"
	"netmon/icongen/pkg/icon"
	"netmon/icongen/pkg/log"
)

// Generator renders the configured icon set and writes it to disk.
type Generator struct {
	cfg config.Config
}

// New creates a Generator for the given configuration.
func New(cfg config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run renders every configured size into the output directory, creating
// it if needed, then writes the optional ICO bundle and SVG rendition.
// Existing files are overwritten. Generation stops at the first failure.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.cfg.Dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s): %s", g.cfg.Dir, err)
	}

	var rendered []image.Image
	for _, size := range g.cfg.Sizes {
		img := g.render(size)

		path := filepath.Join(g.cfg.Dir, format.IconFile(size))
		if err := icon.WritePNG(path, img); err != nil {
			return fmt.Errorf("writing %s: %s", path, err)
		}
		log.InfoMsg("Created %s (%s)\n", path, format.Dimensions(size))

		rendered = append(rendered, img)
	}

	if g.cfg.ICO {
		path := filepath.Join(g.cfg.Dir, format.ICOFile())
		if err := icon.WriteICO(path, rendered); err != nil {
			return fmt.Errorf("writing %s: %s", path, err)
		}
		log.InfoMsg("Created %s (%d sizes)\n", path, len(rendered))
	}

	if g.cfg.SVG {
		path := filepath.Join(g.cfg.Dir, format.SVGFile())
		if err := icon.WriteSVG(path, icon.SVGViewport); err != nil {
			return fmt.Errorf("writing %s: %s", path, err)
		}
		log.InfoMsg("Created %s\n", path)
	}

	return nil
}

func (g *Generator) render(size int) image.Image {
	l := icon.LayoutFor(size)
	log.VerboseMsg("Rendering %s glyph (margin %d, stroke %d)\n", format.Dimensions(size), l.Margin, l.StrokeWidth)

	if g.cfg.Smooth {
		return icon.RenderSmooth(size)
	}

	return icon.Render(size)
}
