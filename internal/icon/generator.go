package icon

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/Mavwarf/appicon/internal/paths"
)

// Generator writes icon PNGs into Dir, loading the glyph font from the first
// working entry of Fonts. Progress lines go to Out (discarded when nil).
type Generator struct {
	Dir   string
	Fonts []FontSource
	Out   io.Writer
}

// Generate renders s and writes it to Dir/s.Filename, replacing any existing
// file. Font failures fall back to the inset square; all other failures are
// returned.
func (g *Generator) Generate(s Spec) error {
	if s.Size <= 0 {
		return fmt.Errorf("icon: %s: invalid size %d", s.Filename, s.Size)
	}

	face := LoadFace(g.Fonts, FontPixels(s.Size))
	if face != nil {
		defer face.Close()
	}
	img := Draw(s.Size, face)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("icon: encoding %s: %w", s.Filename, err)
	}
	if err := paths.AtomicWrite(filepath.Join(g.Dir, s.Filename), buf.Bytes()); err != nil {
		return fmt.Errorf("icon: writing %s: %w", s.Filename, err)
	}
	fmt.Fprintf(g.out(), "Created %s (%dx%d)\n", s.Filename, s.Size, s.Size)
	return nil
}

// RunAll creates Dir and generates every spec in order, stopping at the
// first error.
func (g *Generator) RunAll(specs []Spec) error {
	if err := os.MkdirAll(g.Dir, paths.DirPerm); err != nil {
		return fmt.Errorf("icon: creating %s: %w", g.Dir, err)
	}
	for _, s := range specs {
		if err := g.Generate(s); err != nil {
			return err
		}
	}
	fmt.Fprintln(g.out(), "Icons created successfully!")
	return nil
}

func (g *Generator) out() io.Writer {
	if g.Out == nil {
		return io.Discard
	}
	return g.Out
}
