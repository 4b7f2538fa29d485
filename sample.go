package swatch

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	// The extractor accepts any format image.Decode recognizes; register
	// the decoders here so callers don't have to.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image file at path. Unreadable, corrupt and
// unsupported files all come back wrapped in ErrImageLoad.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrImageLoad, path, err)
	}
	return img, nil
}

// flattenPixels walks the image row-major and emits one normalized RGB
// triple per pixel. Alpha is dropped, not composited: the stored color of a
// transparent pixel goes to clustering as-is. Every pixel participates,
// whatever the image size.
func flattenPixels(img image.Image) []colorful.Color {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	px := make([]colorful.Color, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			px = append(px, colorful.Color{
				R: float64(c.R) / 255.0,
				G: float64(c.G) / 255.0,
				B: float64(c.B) / 255.0,
			})
		}
	}
	return px
}
