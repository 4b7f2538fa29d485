// Package swatch derives desktop-theming color palettes from images.
//
// The pipeline samples every pixel of an image, clusters the samples into
// five representative colors, orders them by luminance and composes an
// eleven-entry palette: the darkest color becomes the background, the two
// lightest become the foregrounds, and the second-darkest spawns eight
// saturation-adjusted shades.
package swatch

import (
	"errors"
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Extraction failure modes. Filesystem errors from callers' own reads and
// writes are not wrapped by this package.
var (
	// ErrImageLoad marks an image that could not be decoded: unreadable,
	// corrupt, or in a format no registered decoder accepts.
	ErrImageLoad = errors.New("image load failed")

	// ErrClustering marks input too degenerate to yield five representative
	// colors, such as an image with fewer than five distinct pixel values.
	ErrClustering = errors.New("color clustering failed")
)

// clusterCount is the number of representative colors pulled from an image.
// Role selection is positional over the luminance-sorted centroids, so the
// count is not configurable.
const clusterCount = 5

// NumShades is the number of saturation-adjusted variants derived from the
// shade base centroid.
const NumShades = 8

// Palette keys for the role colors. Shade keys run from ShadeKey(1), the
// most saturated variant, to ShadeKey(NumShades), the least saturated.
const (
	KeyBackground    = "background"
	KeyForeground    = "foreground"
	KeyForegroundAlt = "foreground-alt"
)

// ShadeKey returns the palette key of the i-th shade, i in 1..NumShades.
func ShadeKey(i int) string { return fmt.Sprintf("shade%d", i) }

// Palette maps semantic color names to #rrggbb hex strings. A palette is
// either complete (three role keys plus NumShades shade keys) or empty;
// serializers treat an empty palette as "nothing to write".
type Palette map[string]string

// Complete reports whether every role and shade key is present.
func (p Palette) Complete() bool {
	for _, key := range []string{KeyBackground, KeyForeground, KeyForegroundAlt} {
		if _, ok := p[key]; !ok {
			return false
		}
	}
	for i := 1; i <= NumShades; i++ {
		if _, ok := p[ShadeKey(i)]; !ok {
			return false
		}
	}
	return true
}

// Method selects how representative colors are pulled from the image.
type Method int

const (
	// MethodKMeans partitions all pixels into clusterCount k-means clusters
	// and uses the cluster centroids.
	MethodKMeans Method = iota

	// MethodDominant ranks dominant-color candidates by weight and keeps
	// the strongest clusterCount of them.
	MethodDominant
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	case MethodDominant:
		return "dominant"
	default:
		return "unknown"
	}
}

// ParseMethod converts a method name, as written on a command line or in a
// config file, to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "kmeans":
		return MethodKMeans, nil
	case "dominant":
		return MethodDominant, nil
	default:
		return 0, fmt.Errorf("unknown extraction method: %q", s)
	}
}

// Options controls extraction. The zero value is ready to use.
type Options struct {
	Method Method
}

// DefaultOptions returns the options the CLI starts from.
func DefaultOptions() Options {
	return Options{Method: MethodKMeans}
}

// Result carries the composed palette together with extraction diagnostics.
type Result struct {
	Palette Palette

	// Centroids holds the five representative colors in ascending luminance
	// order, pre-rounding.
	Centroids []colorful.Color

	// Shares holds the relative share of image behind each centroid,
	// aligned with Centroids.
	Shares []float64

	// Samples is the pixel count of the decoded image.
	Samples int

	Method Method
}

// Extract derives the palette from the image file at path.
func Extract(path string, opt Options) (Palette, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	res, err := ExtractImage(img, opt)
	if err != nil {
		return nil, err
	}
	return res.Palette, nil
}

// ExtractImage runs the sampling, clustering and composing stages on a
// decoded image.
func ExtractImage(img image.Image, opt Options) (*Result, error) {
	bounds := img.Bounds()
	samples := bounds.Dx() * bounds.Dy()

	var (
		centroids []colorful.Color
		shares    []float64
		err       error
	)
	switch opt.Method {
	case MethodKMeans:
		centroids, shares, err = clusterColors(flattenPixels(img))
	case MethodDominant:
		centroids, shares, err = dominantColors(img)
	default:
		err = fmt.Errorf("unknown extraction method: %d", opt.Method)
	}
	if err != nil {
		return nil, err
	}

	pal, sorted, sortedShares := composePalette(centroids, shares)
	return &Result{
		Palette:   pal,
		Centroids: sorted,
		Shares:    sortedShares,
		Samples:   samples,
		Method:    opt.Method,
	}, nil
}
