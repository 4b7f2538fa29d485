// Package output serializes palettes into the two theming formats the CLI
// emits: a polybar-style INI fragment and a rofi RASI block.
package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/setanarut/swatch"
)

// Default basenames for callers that do not pick a destination. The CLI
// does not use these; it always writes out.ini and out.rasi into its
// output directory.
const (
	DefaultININame  = "colors.ini"
	DefaultRASIName = "colors.rasi"
)

// WriteINI renders the [color] section: the three role colors under a
// "main colors" comment, a blank line, then the shades. Keys are written
// exactly as they appear in the palette. An incomplete palette is an
// error; an empty one writes nothing.
func WriteINI(w io.Writer, p swatch.Palette) error {
	if len(p) == 0 {
		return nil
	}

	var b bytes.Buffer
	b.WriteString("[color]\n")
	b.WriteString("; main colors\n")
	for _, key := range []string{swatch.KeyBackground, swatch.KeyForeground, swatch.KeyForegroundAlt} {
		v, ok := p[key]
		if !ok {
			return fmt.Errorf("palette has no %q entry", key)
		}
		fmt.Fprintf(&b, "%s = %s\n", key, v)
	}
	b.WriteString("\n; shades\n")
	for i := 1; i <= swatch.NumShades; i++ {
		key := swatch.ShadeKey(i)
		v, ok := p[key]
		if !ok {
			return fmt.Errorf("palette has no %q entry", key)
		}
		fmt.Fprintf(&b, "%s = %s\n", key, v)
	}
	b.WriteString("\n")

	_, err := w.Write(b.Bytes())
	return err
}

// SaveINI writes the INI rendering to path, replacing any existing file.
// An empty palette is a no-op: no file is created and no error returned.
func SaveINI(path string, p swatch.Palette) error {
	if len(p) == 0 {
		return nil
	}
	var b bytes.Buffer
	if err := WriteINI(&b, p); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0644)
}
