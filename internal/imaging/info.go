package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
)

// Info contains metadata about an image file.
type Info struct {
	// Name is the base name of the file.
	Name string `json:"name"`

	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoded format name: "png", "jpeg", "gif", "bmp" or
	// "webp". Detection is based on the file contents, not the extension.
	Format string `json:"format"`

	// Mode names the in-memory representation after decoding, after the Go
	// image type: "NRGBA", "RGBA", "YCbCr", "Paletted", "Gray", ...
	Mode string `json:"mode"`

	// HasAlpha indicates whether the decoded representation carries an
	// alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Inspect loads the image at path and reports its metadata. The decoded
// image is returned alongside so callers can analyze it without a second
// decode.
func Inspect(fs afero.Fs, path string) (*Info, image.Image, error) {
	loader := NewLoader(fs)

	img, format, err := loader.Load(path)
	if err != nil {
		return nil, nil, err
	}
	size, err := loader.FileSize(path)
	if err != nil {
		return nil, nil, err
	}

	mode, hasAlpha := colorMode(img)
	bounds := img.Bounds()

	info := &Info{
		Name:          filepath.Base(path),
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		Mode:          mode,
		HasAlpha:      hasAlpha,
		FileSizeBytes: size,
	}
	return info, img, nil
}

// colorMode names the decoded representation and reports whether it has an
// alpha channel.
func colorMode(img image.Image) (string, bool) {
	name := strings.TrimPrefix(fmt.Sprintf("%T", img), "*image.")
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return name, true
	}
	return name, false
}

// ColorShare is one entry of a quantized color frequency ranking.
type ColorShare struct {
	Hex     string  `json:"hex"`     // Quantized color as "#rrggbb"
	Count   int     `json:"count"`   // Pixels in this bucket
	Percent float64 `json:"percent"` // Share of counted pixels (0-100)
}

// Palette returns the n most common colors in the image.
//
// Colors are grouped into buckets of 16 units per channel before counting,
// so near-identical shades rank as a single entry. Fully transparent pixels
// are skipped: on a background-removed image the ranking describes the
// surviving content only. Results are sorted by frequency, most common
// first, with ties broken by hex value for a stable order. Returns nil when
// every pixel is transparent.
func Palette(img image.Image, n int) []ColorShare {
	bounds := img.Bounds()

	counts := make(map[uint32]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// Quantize each channel to its 16-unit bucket
			qr := uint32(r>>8) &^ 0xf
			qg := uint32(g>>8) &^ 0xf
			qb := uint32(b>>8) &^ 0xf
			counts[qr<<16|qg<<8|qb]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	shares := make([]ColorShare, 0, len(counts))
	for key, cnt := range counts {
		c := colorful.Color{
			R: float64(key>>16&0xff) / 255,
			G: float64(key>>8&0xff) / 255,
			B: float64(key&0xff) / 255,
		}
		shares = append(shares, ColorShare{
			Hex:     c.Hex(),
			Count:   cnt,
			Percent: float64(cnt) / float64(total) * 100,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Hex < shares[j].Hex
	})

	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// MeanColor returns the average color of the image as a hex string.
//
// Per-channel means come from a 256-bin histogram over each RGB channel.
// Unlike Palette this includes transparent pixels, which decode as black
// and pull the mean toward dark values on mostly-removed images.
func MeanColor(img image.Image) string {
	hist := histogram.NewRGBAHistogram(img)

	c := colorful.Color{
		R: histogramMean(hist.R.Bins),
		G: histogramMean(hist.G.Bins),
		B: histogramMean(hist.B.Bins),
	}
	return c.Hex()
}

// histogramMean collapses 256 intensity bins into a mean on the 0-1 scale.
func histogramMean(bins []int) float64 {
	sum, total := 0, 0
	for v, cnt := range bins {
		sum += v * cnt
		total += cnt
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total) / 255
}
