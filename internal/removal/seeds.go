package removal

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// Seed specification parse failures. Wrapped errors returned by ParseSeed
// match these with errors.Is.
var (
	// ErrInvalidFormat indicates a specification that does not split into
	// exactly two comma-separated parts.
	ErrInvalidFormat = errors.New("invalid seed format")

	// ErrInvalidNumber indicates a specification part that is not numeric.
	ErrInvalidNumber = errors.New("invalid seed number")

	// ErrOutOfRange indicates a percentage outside 0-100 or an absolute
	// coordinate outside the image bounds.
	ErrOutOfRange = errors.New("seed out of range")
)

// ParseSeed resolves a seed point specification into a pixel coordinate.
//
// A specification is two comma-separated parts, "x,y". Each part is either
// an absolute pixel coordinate ("120"; decimals are accepted and truncated
// toward zero) or a percentage of the addressable range ("75%"). Percentages
// map onto [0, dimension-1], so "100%" lands on the last valid pixel rather
// than one past the end and "100%,100%" always addresses the bottom-right
// corner without the caller knowing the exact dimensions.
//
// Parameters:
//   - spec: The specification string, e.g. "10,20" or "50%,100%".
//   - width: Image width in pixels, bounding the first part.
//   - height: Image height in pixels, bounding the second part.
//
// Returns the resolved coordinate, or an error wrapping:
//   - ErrInvalidFormat when spec does not split into exactly two comma parts
//   - ErrInvalidNumber when a part is not numeric
//   - ErrOutOfRange when a percentage falls outside [0,100] or an absolute
//     coordinate falls outside [0, dimension)
func ParseSeed(spec string, width, height int) (image.Point, error) {
	parts := strings.Split(strings.TrimSpace(spec), ",")
	if len(parts) != 2 {
		return image.Point{}, fmt.Errorf("%w: %q is not \"x,y\" or \"x%%,y%%\"", ErrInvalidFormat, spec)
	}

	var coords [2]int
	for i, part := range parts {
		part = strings.TrimSpace(part)
		limit := width
		if i == 1 {
			limit = height
		}

		if num, isPercent := strings.CutSuffix(part, "%"); isPercent {
			pct, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return image.Point{}, fmt.Errorf("%w: %q", ErrInvalidNumber, part)
			}
			if !(pct >= 0 && pct <= 100) { // false for NaN
				return image.Point{}, fmt.Errorf("%w: percentage %q is not in 0-100", ErrOutOfRange, part)
			}
			coords[i] = int(pct / 100 * float64(limit-1))
			continue
		}

		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return image.Point{}, fmt.Errorf("%w: %q", ErrInvalidNumber, part)
		}
		if !(v >= 0 && v < float64(limit)) { // false for NaN
			return image.Point{}, fmt.Errorf("%w: coordinate %v is not in 0-%d", ErrOutOfRange, v, limit-1)
		}
		coords[i] = int(v)
	}

	return image.Point{X: coords[0], Y: coords[1]}, nil
}

// CornerSeeds returns the four image corners in a fixed order: top-left,
// top-right, bottom-left, bottom-right. When width or height is 1 the
// corners coincide; callers that care should deduplicate.
func CornerSeeds(width, height int) []image.Point {
	return []image.Point{
		{X: 0, Y: 0},
		{X: width - 1, Y: 0},
		{X: 0, Y: height - 1},
		{X: width - 1, Y: height - 1},
	}
}

// SeedColors samples the color under each seed coordinate, in seed order.
// Duplicates are kept: the result is a plain sample list, not a set. Seeds
// must be within the buffer bounds.
func SeedColors(img *image.NRGBA, seeds []image.Point) []color.NRGBA {
	colors := make([]color.NRGBA, len(seeds))
	for i, p := range seeds {
		colors[i] = img.NRGBAAt(p.X, p.Y)
	}
	return colors
}
