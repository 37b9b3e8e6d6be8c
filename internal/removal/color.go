package removal

import (
	"image/color"
	"math"
)

// MaxThreshold is the practical upper bound for color distance thresholds:
// the maximum possible RGB distance sqrt(3 * 255^2) = 441.67..., rounded
// down.
const MaxThreshold = 441

// Distance computes the Euclidean distance between two colors over their
// R, G and B channels.
//
// Alpha is never read: two colors that differ only in opacity have distance
// zero. The result ranges from 0 (identical RGB components) up to roughly
// 441.67 (black to white).
//
// Parameters:
//   - a: First color.
//   - b: Second color.
//
// Pure function with no failure modes. Distance is symmetric and zero for
// identical inputs.
func Distance(a, b color.NRGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
