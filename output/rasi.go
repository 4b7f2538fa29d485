package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/setanarut/swatch"
)

// rasiShades is how many bgN entries the block carries.
const rasiShades = 4

// WriteRASI renders the fixed "* { ... }" rule. The al entry is always
// fully transparent black, bg and fg take the role colors, and bg1..bg4
// take shade1..shade4 with opaque black standing in for any missing shade.
// Every value except al carries an uppercase FF alpha suffix. Missing role
// colors are an error; an empty palette writes nothing.
func WriteRASI(w io.Writer, p swatch.Palette) error {
	if len(p) == 0 {
		return nil
	}
	bg, ok := p[swatch.KeyBackground]
	if !ok {
		return fmt.Errorf("palette has no %q entry", swatch.KeyBackground)
	}
	fg, ok := p[swatch.KeyForeground]
	if !ok {
		return fmt.Errorf("palette has no %q entry", swatch.KeyForeground)
	}

	var b bytes.Buffer
	b.WriteString("/* colors */\n\n* {\n")
	b.WriteString("  al:    #00000000;\n")
	fmt.Fprintf(&b, "  bg:    %sFF;\n", bg)
	for i := 1; i <= rasiShades; i++ {
		shade, ok := p[swatch.ShadeKey(i)]
		if !ok {
			shade = "#000000"
		}
		fmt.Fprintf(&b, "  bg%d:   %sFF;\n", i, shade)
	}
	fmt.Fprintf(&b, "  fg:    %sFF;\n", fg)
	b.WriteString("}\n")

	_, err := w.Write(b.Bytes())
	return err
}

// SaveRASI writes the RASI rendering to path, replacing any existing file.
// An empty palette is a no-op: no file is created and no error returned.
func SaveRASI(path string, p swatch.Palette) error {
	if len(p) == 0 {
		return nil
	}
	var b bytes.Buffer
	if err := WriteRASI(&b, p); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0644)
}
