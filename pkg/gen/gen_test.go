package gen

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"netmon/icongen/pkg/config"
	"netmon/icongen/pkg/format"
)

func TestGenerator_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sizes := []int{16, 32, 48, 128}

	g := New(config.Config{Dir: dir, Sizes: sizes})
	if err := g.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	for _, size := range sizes {
		path := filepath.Join(dir, format.IconFile(size))

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("missing output %s: %v", path, err)
		}

		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decoding %s: %v", path, err)
		}

		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("%s bounds = %dx%d, want %dx%d", path, b.Dx(), b.Dy(), size, size)
		}
	}
}

func TestGenerator_Run_CreatesDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "extension", "icons")

	g := New(config.Config{Dir: dir, Sizes: []int{16}})
	if err := g.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "icon16.png")); err != nil {
		t.Errorf("output file not created: %v", err)
	}
}

func TestGenerator_Run_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "icon48.png")

	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}

	g := New(config.Config{Dir: dir, Sizes: []int{48}})

	if err := g.Run(); err != nil {
		t.Fatalf("first Run() error = %v, want nil", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading first output: %v", err)
	}

	if err := g.Run(); err != nil {
		t.Fatalf("second Run() error = %v, want nil", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading second output: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("repeated runs produced different bytes")
	}
}

func TestGenerator_Run_ICOAndSVG(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	g := New(config.Config{Dir: dir, Sizes: []int{16, 32}, ICO: true, SVG: true})
	if err := g.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	for _, name := range []string{format.ICOFile(), format.SVGFile()} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestGenerator_Run_Smooth(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	g := New(config.Config{Dir: dir, Sizes: []int{32}, Smooth: true})
	if err := g.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	f, err := os.Open(filepath.Join(dir, "icon32.png"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("bounds = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}
