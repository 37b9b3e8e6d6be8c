package imaging

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// Saver encodes processed images back to a filesystem.
type Saver struct {
	fs afero.Fs
}

// NewSaver creates a Saver backed by the given filesystem.
func NewSaver(fs afero.Fs) *Saver {
	return &Saver{fs: fs}
}

// SavePNG encodes img as PNG at path, creating parent directories as
// needed. The output is always PNG no matter what extension path carries:
// a removed background needs an alpha channel to survive the round trip.
//
// Returns the number of bytes written.
func (s *Saver) SavePNG(path string, img image.Image) (int64, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := s.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close output file: %w", err)
	}

	stat, err := s.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat output file: %w", err)
	}
	return stat.Size(), nil
}

// Scale resizes img by factor using Lanczos resampling. A factor of 1
// returns the input unchanged. Results are clamped to at least 1x1.
func Scale(img *image.NRGBA, factor float64) *image.NRGBA {
	if factor == 1 {
		return img
	}

	w := int(float64(img.Bounds().Dx()) * factor)
	h := int(float64(img.Bounds().Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
