package swatch

import (
	"fmt"
	"image"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// clusterColors partitions the pixel sequence into clusterCount k-means
// clusters in normalized RGB space and returns the centroids together with
// the fraction of pixels behind each one.
//
// Initial centers are randomized by the library, so centroid values may
// differ slightly between runs on the same image.
func clusterColors(px []colorful.Color) ([]colorful.Color, []float64, error) {
	if err := checkDistinct(px); err != nil {
		return nil, nil, err
	}

	dataset := make(clusters.Observations, len(px))
	for i, c := range px {
		dataset[i] = clusters.Coordinates{c.R, c.G, c.B}
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, clusterCount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrClustering, err)
	}
	if len(cc) != clusterCount {
		return nil, nil, fmt.Errorf("%w: got %d clusters, want %d", ErrClustering, len(cc), clusterCount)
	}
	// Partition can hand back stale centers after its empty-cluster repair;
	// recompute each center as the mean of its final observations.
	cc.Recenter()

	centroids := make([]colorful.Color, clusterCount)
	shares := make([]float64, clusterCount)
	total := float64(len(px))
	for i, c := range cc {
		centroids[i] = colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}
		shares[i] = float64(len(c.Observations)) / total
	}
	return centroids, shares, nil
}

// checkDistinct rejects inputs that cannot produce clusterCount distinct
// centroids. Counting stops as soon as enough distinct values have been
// seen.
func checkDistinct(px []colorful.Color) error {
	if len(px) < clusterCount {
		return fmt.Errorf("%w: %d pixels, need at least %d", ErrClustering, len(px), clusterCount)
	}
	seen := make(map[[3]uint8]struct{}, clusterCount)
	for _, c := range px {
		seen[rgbKey(c)] = struct{}{}
		if len(seen) >= clusterCount {
			return nil
		}
	}
	return fmt.Errorf("%w: %d distinct pixel colors, need at least %d", ErrClustering, len(seen), clusterCount)
}

func rgbKey(c colorful.Color) [3]uint8 {
	r, g, b := c.RGB255()
	return [3]uint8{r, g, b}
}

// dominantColors is the non-clustering path: pull a wide candidate pool from
// the dominant-color search, rank it by weight and keep the strongest
// clusterCount entries. Shares are weights normalized over the whole pool.
func dominantColors(img image.Image) ([]colorful.Color, []float64, error) {
	candidates := dominantcolor.FindWeight(img, clusterCount*8)
	if len(candidates) < clusterCount {
		return nil, nil, fmt.Errorf("%w: %d dominant colors, need at least %d", ErrClustering, len(candidates), clusterCount)
	}
	slices.SortStableFunc(candidates, func(a, b dominantcolor.Color) int {
		if a.Weight > b.Weight {
			return -1
		}
		if a.Weight < b.Weight {
			return 1
		}
		return 0
	})

	var total float64
	for _, c := range candidates {
		if c.Weight > 0 {
			total += c.Weight
		}
	}

	centroids := make([]colorful.Color, clusterCount)
	shares := make([]float64, clusterCount)
	for i, c := range candidates[:clusterCount] {
		col, _ := colorful.MakeColor(c.RGBA)
		centroids[i] = col.Clamped()
		if total > 0 && c.Weight > 0 {
			shares[i] = c.Weight / total
		}
	}
	return centroids, shares, nil
}
