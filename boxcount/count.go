package boxcount

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sierpinski/geom"
	"golang.org/x/sync/errgroup"
)

const opCountBoxes = "CountBoxes"

// maxCellsPerAxis keeps ⌊x/s⌋ inside int64 for unit-range coordinates.
const maxCellsPerAxis = 1 << 52

// CountBoxes returns the number of distinct grid cells of side size occupied
// by cloud. Cell (i₀,…,i_{d-1}) holds x when iⱼ = ⌊xⱼ/size⌋.
// The cloud is usually the output of Normalize, but any finite cloud works.
//
// Errors:
//   - ErrBadScale if size is not finite and > 0, or so small that cell
//     indices of unit-range coordinates would overflow.
//   - ErrUnsupportedDimension for d > MaxDim; cloud validation sentinels otherwise.
//
// Complexity: O(n·d) time, O(n) memory for the occupancy set.
func CountBoxes(cloud geom.Cloud, size float64) (int, error) {
	if err := checkScale(size); err != nil {
		return 0, fmt.Errorf("%s: %w", opCountBoxes, err)
	}
	if err := cloud.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", opCountBoxes, err)
	}
	if d := cloud.Dim(); d > MaxDim {
		return 0, fmt.Errorf("%s: d=%d: %w", opCountBoxes, d, ErrUnsupportedDimension)
	}

	return countOccupied(cloud, size), nil
}

func countOccupied(cloud geom.Cloud, size float64) int {
	seen := make(map[cellKey]struct{}, len(cloud))
	var key cellKey
	for _, p := range cloud {
		for j, v := range p {
			key[j] = int64(math.Floor(v / size))
		}
		seen[key] = struct{}{}
	}

	return len(seen)
}

func checkScale(size float64) error {
	if !(size > 0) || math.IsInf(size, 1) {
		return fmt.Errorf("size %v: %w", size, ErrBadScale)
	}
	if 1/size > maxCellsPerAxis {
		return fmt.Errorf("size %v too small: %w", size, ErrBadScale)
	}

	return nil
}

// countAll fills counts[i] with the occupancy at scales[i]. With workers > 1
// scales run concurrently; each goroutine writes only its own slot.
func countAll(cloud geom.Cloud, scales []float64, workers int) []int {
	counts := make([]int, len(scales))
	if workers <= 1 || len(scales) == 1 {
		for i, s := range scales {
			counts[i] = countOccupied(cloud, s)
		}

		return counts
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, s := range scales {
		g.Go(func() error {
			counts[i] = countOccupied(cloud, s)

			return nil
		})
	}
	_ = g.Wait() // workers never fail; scales and cloud are validated up front

	return counts
}
