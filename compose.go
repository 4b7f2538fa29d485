package swatch

import (
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Luminance is the BT.709 brightness approximation over channel values on
// the 0-255 scale. Channels are taken as stored, without linearization;
// ordering is what matters here, not colorimetric accuracy.
func Luminance(r, g, b float64) float64 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ColorLuminance is Luminance over a normalized color's channels.
func ColorLuminance(c colorful.Color) float64 {
	return Luminance(c.R*255, c.G*255, c.B*255)
}

// shadeFactors is the fixed saturation schedule. Schedule position i feeds
// key shade(NumShades-i): the first factor produces shade8, the last
// produces shade1, so low-numbered shades are the most saturated.
var shadeFactors = [NumShades]float64{0.5, 0.75, 1, 1.25, 1.5, 1.75, 2, 2.5}

// composePalette turns the five centroids into the eleven-entry palette.
// The returned slices are the centroids and shares reordered by ascending
// luminance, ties kept in input order.
func composePalette(centroids []colorful.Color, shares []float64) (Palette, []colorful.Color, []float64) {
	type ranked struct {
		col   colorful.Color
		share float64
	}
	rs := make([]ranked, len(centroids))
	for i, c := range centroids {
		rs[i] = ranked{col: c, share: shares[i]}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		la, lb := ColorLuminance(a.col), ColorLuminance(b.col)
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		default:
			return 0
		}
	})

	sorted := make([]colorful.Color, len(rs))
	sortedShares := make([]float64, len(rs))
	for i, r := range rs {
		sorted[i] = r.col
		sortedShares[i] = r.share
	}

	last := len(sorted) - 1
	pal := Palette{
		KeyBackground:    hexOf(sorted[0]),
		KeyForeground:    hexOf(sorted[last]),
		KeyForegroundAlt: hexOf(sorted[last-1]),
	}

	// The middle centroid at index 2 takes no role; five clusters are
	// always computed, four sorted positions feed the palette.
	base := sorted[1]
	for i, f := range shadeFactors {
		pal[ShadeKey(NumShades-i)] = hexOf(adjustSaturation(base, f))
	}
	return pal, sorted, sortedShares
}

func hexOf(c colorful.Color) string {
	return c.Clamped().Hex()
}

// adjustSaturation scales the HSL saturation of c by factor, clamping
// saturation to [0, 1]. Hue and lightness pass through unchanged.
func adjustSaturation(c colorful.Color, factor float64) colorful.Color {
	h, s, l := c.Hsl()
	s = min(max(s*factor, 0), 1)
	return colorful.Hsl(h, s, l).Clamped()
}
