package imaging

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Loader reads and decodes raster images from a filesystem.
//
// The filesystem is injected so the same code path serves the real disk in
// production and an in-memory filesystem in tests. Supported formats are
// PNG, JPEG, GIF, BMP and WebP, registered through their decoder packages
// at init time.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader backed by the given filesystem.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load opens and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path to the image.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on format
//     and color model (e.g. *image.NRGBA, *image.YCbCr, *image.Paletted).
//   - string: The registered format name that matched: "png", "jpeg",
//     "gif", "bmp" or "webp".
//   - error: Non-nil if the file cannot be opened or decoded.
func (l *Loader) Load(path string) (image.Image, string, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return img, format, nil
}

// FileSize returns the on-disk size of path in bytes.
func (l *Loader) FileSize(path string) (int64, error) {
	stat, err := l.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return stat.Size(), nil
}

// ToNRGBA converts a decoded image into a mutable non-premultiplied RGBA
// buffer anchored at the origin.
//
// An *image.NRGBA whose bounds already start at the origin is returned
// unchanged, so later mutations write into the decoded buffer instead of a
// copy. Every other representation is redrawn into a fresh buffer.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
