// mkicon writes the 192×192 and 512×512 app icon PNGs into ./public.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mavwarf/appicon/internal/icon"
	"github.com/Mavwarf/appicon/internal/paths"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	g := &icon.Generator{
		Dir:   paths.OutputDir,
		Fonts: icon.DefaultFonts(),
		Out:   w,
	}
	return g.RunAll(icon.DefaultSpecs())
}
