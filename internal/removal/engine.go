package removal

import (
	"image"
	"image/color"
)

// FloodFill clears every background pixel reachable from the seed points.
//
// The pixel grid is treated as an undirected graph in which each pixel
// connects to its 4 orthogonal neighbors, or to all 8 surrounding neighbors
// when eightWay is set. A multi-source breadth-first search starts from all
// seeds at once. Each visited pixel is tested against the seed colors: when
// its color lies within threshold of at least one of them it is overwritten
// with fully transparent black (0,0,0,0) and its neighbors join the
// frontier. A pixel outside the threshold stops the spread, so the search
// never crosses a non-matching pixel and matching regions disconnected from
// every seed survive. Connectivity constrains the removed region, not the
// original image content: removal can reach pixels whose only path runs
// through other removed pixels.
//
// Seed colors are sampled before any pixel is cleared, and duplicate colors
// across seeds collapse into a single entry. The buffer is mutated in place.
//
// Parameters:
//   - img: The pixel buffer to mutate. Must be non-empty and anchored at
//     the origin.
//   - seeds: Starting coordinates. Must be non-empty and within bounds;
//     callers validate, this function does not.
//   - threshold: Maximum color distance for a pixel to count as background.
//     The comparison is inclusive.
//   - eightWay: Also spread through diagonal neighbors.
//
// Returns the same buffer and the number of pixels cleared.
func FloodFill(img *image.NRGBA, seeds []image.Point, threshold float64, eightWay bool) (*image.NRGBA, int) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	offsets := neighborOffsets(eightWay)

	// Distinct colors under the seeds. Duplicates cannot change the match
	// outcome, only the cost of each test.
	seedColors := make([]color.NRGBA, 0, len(seeds))
	seen := make(map[color.NRGBA]struct{}, len(seeds))
	for _, p := range seeds {
		c := img.NRGBAAt(p.X, p.Y)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		seedColors = append(seedColors, c)
	}

	visited := make([]bool, w*h)
	frontier := make([]image.Point, len(seeds))
	copy(frontier, seeds)

	removed := 0
	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]

		// A pixel may be enqueued several times by different neighbors;
		// marking before the color test makes the repeats cheap no-ops.
		idx := p.Y*w + p.X
		if visited[idx] {
			continue
		}
		visited[idx] = true

		if !matchesAny(img.NRGBAAt(p.X, p.Y), seedColors, threshold) {
			continue
		}

		clearPixel(img, p.X, p.Y)
		removed++

		for _, d := range offsets {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx >= 0 && nx < w && ny >= 0 && ny < h {
				frontier = append(frontier, image.Point{X: nx, Y: ny})
			}
		}
	}

	return img, removed
}

// GlobalPurge clears every pixel in the buffer whose color matches any seed
// color, regardless of position.
//
// The seed colors are sampled once, before the scan, as a plain list in seed
// order (duplicates kept). Unlike FloodFill there is no connectivity
// constraint: disconnected regions of matching color are all cleared. The
// buffer is mutated in place.
//
// Preconditions match FloodFill: seeds non-empty and within bounds,
// validated by the caller.
//
// Returns the same buffer and the number of pixels cleared.
func GlobalPurge(img *image.NRGBA, seeds []image.Point, threshold float64) (*image.NRGBA, int) {
	return PurgeColors(img, SeedColors(img, seeds), threshold)
}

// PurgeColors scans the buffer in raster order and clears every pixel whose
// color lies within threshold of any color in the list. This is the scan
// half of GlobalPurge, exposed so callers can purge explicitly chosen colors
// alongside or instead of sampled seed colors.
//
// Returns the same buffer and the number of pixels cleared.
func PurgeColors(img *image.NRGBA, colors []color.NRGBA, threshold float64) (*image.NRGBA, int) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	removed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if matchesAny(img.NRGBAAt(x, y), colors, threshold) {
				clearPixel(img, x, y)
				removed++
			}
		}
	}
	return img, removed
}

// neighborOffsets returns the relative offsets for the requested
// connectivity: the 4 von Neumann neighbors, plus the diagonals for the
// 8-way Moore neighborhood.
func neighborOffsets(eightWay bool) []image.Point {
	offsets := []image.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if eightWay {
		offsets = append(offsets,
			image.Point{X: -1, Y: -1}, image.Point{X: 1, Y: -1},
			image.Point{X: -1, Y: 1}, image.Point{X: 1, Y: 1})
	}
	return offsets
}

// matchesAny reports whether c lies within threshold of at least one of the
// given colors. The boundary is inclusive: a distance exactly equal to the
// threshold matches.
func matchesAny(c color.NRGBA, colors []color.NRGBA, threshold float64) bool {
	for _, sc := range colors {
		if Distance(c, sc) <= threshold {
			return true
		}
	}
	return false
}

// clearPixel overwrites the pixel at (x, y) with fully transparent black.
func clearPixel(img *image.NRGBA, x, y int) {
	i := img.PixOffset(x, y)
	img.Pix[i] = 0
	img.Pix[i+1] = 0
	img.Pix[i+2] = 0
	img.Pix[i+3] = 0
}
