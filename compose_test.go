package swatch

import (
	"math"
	"slices"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestLuminance(t *testing.T) {
	cases := []struct {
		r, g, b float64
		want    float64
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 128, 128, 128},
		{255, 0, 0, 54.213},
		{0, 255, 0, 182.376},
		{0, 0, 255, 18.411},
	}
	for _, tc := range cases {
		if got := Luminance(tc.r, tc.g, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Luminance(%v, %v, %v) = %v, want %v", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestColorLuminance(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	if got := ColorLuminance(white); math.Abs(got-255) > 1e-9 {
		t.Errorf("white luminance = %v, want 255", got)
	}
	gray := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	if got := ColorLuminance(gray); math.Abs(got-127.5) > 1e-9 {
		t.Errorf("mid gray luminance = %v, want 127.5", got)
	}
}

func TestComposePaletteRoles(t *testing.T) {
	// Deliberately unsorted input; luminance picks the roles.
	centroids := []colorful.Color{
		{R: 1, G: 1, B: 1},
		{R: 0.05, G: 0.05, B: 0.05},
		{R: 0.8, G: 0.8, B: 0.8},
		{R: 0.2, G: 0.1, B: 0.1},
		{R: 0.3, G: 0.5, B: 0.7},
	}
	shares := []float64{0.1, 0.4, 0.2, 0.2, 0.1}

	pal, sorted, sortedShares := composePalette(centroids, shares)

	if got := pal[KeyBackground]; got != "#0d0d0d" {
		t.Errorf("background = %s, want #0d0d0d", got)
	}
	if got := pal[KeyForeground]; got != "#ffffff" {
		t.Errorf("foreground = %s, want #ffffff", got)
	}
	if got := pal[KeyForegroundAlt]; got != "#cccccc" {
		t.Errorf("foreground-alt = %s, want #cccccc", got)
	}
	if len(pal) != 11 {
		t.Errorf("palette has %d entries, want 11", len(pal))
	}

	for i := 1; i < len(sorted); i++ {
		if ColorLuminance(sorted[i-1]) > ColorLuminance(sorted[i]) {
			t.Errorf("sorted centroids out of order at %d", i)
		}
	}
	// Shares travel with their centroids: the darkest input held 0.4.
	if sortedShares[0] != 0.4 {
		t.Errorf("sortedShares[0] = %v, want 0.4", sortedShares[0])
	}
}

// Centroids with identical luminance keep their input order, observable
// through the shares that travel with them.
func TestComposePaletteTieStable(t *testing.T) {
	dup := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	centroids := []colorful.Color{
		{R: 1, G: 1, B: 1},
		dup,
		{R: 0, G: 0, B: 0},
		dup,
		{R: 0.9, G: 0.9, B: 0.9},
	}
	shares := []float64{0.1, 0.2, 0.3, 0.25, 0.15}

	_, _, sortedShares := composePalette(centroids, shares)

	want := []float64{0.3, 0.2, 0.25, 0.15, 0.1}
	if !slices.Equal(sortedShares, want) {
		t.Errorf("sortedShares = %v, want %v", sortedShares, want)
	}
}

// The middle centroid gets no palette entry: it is neither a role color nor
// the shade base.
func TestComposePaletteMiddleUnused(t *testing.T) {
	centroids := []colorful.Color{
		{R: 0.05, G: 0.05, B: 0.05},
		{R: 0.2, G: 0.1, B: 0.1},
		{R: 0.3, G: 0.5, B: 0.7},
		{R: 0.8, G: 0.8, B: 0.8},
		{R: 1, G: 1, B: 1},
	}
	shares := []float64{0.2, 0.2, 0.2, 0.2, 0.2}

	pal, sorted, _ := composePalette(centroids, shares)

	middle := hexOf(sorted[2])
	for key, val := range pal {
		if val == middle {
			t.Errorf("middle centroid %s leaked into palette at %s", middle, key)
		}
	}
}

// A gray shade base has zero saturation, so the whole schedule collapses to
// the base color.
func TestComposePaletteGrayShades(t *testing.T) {
	centroids := []colorful.Color{
		{R: 0, G: 0, B: 0},
		{R: 0.25, G: 0.25, B: 0.25},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 0.75, G: 0.75, B: 0.75},
		{R: 1, G: 1, B: 1},
	}
	shares := []float64{0.2, 0.2, 0.2, 0.2, 0.2}

	pal, _, _ := composePalette(centroids, shares)

	base := hexOf(centroids[1])
	for i := 1; i <= NumShades; i++ {
		if got := pal[ShadeKey(i)]; got != base {
			t.Errorf("%s = %s, want %s", ShadeKey(i), got, base)
		}
	}
}

func TestAdjustSaturation(t *testing.T) {
	base := colorful.Color{R: 60.0 / 255, G: 20.0 / 255, B: 20.0 / 255}

	// Factor 1 is the identity within byte precision.
	r, g, b := adjustSaturation(base, 1).RGB255()
	if r != 60 || g != 20 || b != 20 {
		t.Errorf("factor 1 moved the color to (%d, %d, %d)", r, g, b)
	}

	// Saturation 0.5 doubled hits the 1.0 ceiling, so every factor past 2
	// is equivalent to 2.
	at2 := adjustSaturation(base, 2).Hex()
	at4 := adjustSaturation(base, 4).Hex()
	if at2 != at4 {
		t.Errorf("clamp failed: factor 2 gave %s, factor 4 gave %s", at2, at4)
	}
	if at2 != "#500000" {
		t.Errorf("factor 2 = %s, want #500000", at2)
	}

	// Grays stay gray under any factor.
	gray := colorful.Color{R: 0.4, G: 0.4, B: 0.4}
	r, g, b = adjustSaturation(gray, 2.5).RGB255()
	if r != g || g != b {
		t.Errorf("gray gained saturation: (%d, %d, %d)", r, g, b)
	}
}
