package icon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrFontNotFound is returned by SystemFont when no file matches the name.
var ErrFontNotFound = errors.New("font not found")

// FontSource is one attempt at acquiring a font face sized to px pixels.
type FontSource func(px float64) (font.Face, error)

// DefaultFonts returns the font sources tried for every icon, in order:
// Arial from the system, then the bundled Go Regular face.
func DefaultFonts() []FontSource {
	return []FontSource{SystemFont("arial.ttf"), GoRegular()}
}

// LoadFace returns the face from the first source that succeeds, or nil if
// all of them fail.
func LoadFace(sources []FontSource, px float64) font.Face {
	for _, src := range sources {
		if src == nil {
			continue
		}
		face, err := src(px)
		if err == nil && face != nil {
			return face
		}
	}
	return nil
}

// SystemFont loads a TrueType font by name. The name is first tried as a
// path, then matched case-insensitively against files in the platform font
// directories.
func SystemFont(name string) FontSource {
	return func(px float64) (font.Face, error) {
		path, err := findFont(name)
		if err != nil {
			return nil, err
		}
		face, err := gg.LoadFontFace(path, px)
		if err != nil {
			return nil, fmt.Errorf("icon: loading %s: %w", path, err)
		}
		return face, nil
	}
}

// GoRegular returns the Go Regular face bundled with x/image.
func GoRegular() FontSource {
	return func(px float64) (font.Face, error) {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("icon: parsing go regular: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    px,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("icon: go regular face: %w", err)
		}
		return face, nil
	}
}

func findFont(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	base := filepath.Base(name)
	for _, dir := range fontDirs() {
		if p := searchDir(dir, base); p != "" {
			return p, nil
		}
	}
	return "", fmt.Errorf("icon: %s: %w", name, ErrFontNotFound)
}

func searchDir(dir, base string) string {
	var found string
	filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable or missing, keep going
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), base) {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found
}
