package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mavwarf/mkicns/internal/paths"
)

// Render writes every variant in Specs() to dir, in table order, and
// returns the written paths. notify, if non-nil, is called after each
// file is written.
//
// dir is created if missing. PNGs in dir that are not part of the table
// are removed first; other files are left alone. On failure the files
// already written stay on disk.
func Render(src image.Image, dir string, notify func(path string)) ([]string, error) {
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrRender, dir, err)
	}
	if err := purgeStale(dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	var written []string
	for _, s := range Specs() {
		p := filepath.Join(dir, s.FileName())
		if err := writePNG(p, Variant(src, s)); err != nil {
			return written, fmt.Errorf("%w: writing %s: %v", ErrRender, p, err)
		}
		written = append(written, p)
		if notify != nil {
			notify(p)
		}
	}
	return written, nil
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return paths.AtomicWrite(path, buf.Bytes())
}

// purgeStale removes PNG files left in dir by a run with a different
// size table.
func purgeStale(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ".png") || isSpecFile(name) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("removing stale %s: %w", name, err)
		}
	}
	return nil
}
