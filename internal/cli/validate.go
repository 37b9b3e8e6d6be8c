package cli

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Morass/floodfill-bg/internal/removal"
)

// validExtensions lists the formats the loader can decode, keyed by
// lowercase file extension.
var validExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// validateInput checks that the input path exists, is a regular file and
// carries a supported image extension.
func validateInput(path string) error {
	stat, err := appFs.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}
	if stat.IsDir() {
		return fmt.Errorf("input is a directory: %s", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !validExtensions[ext] {
		return fmt.Errorf("unsupported input type %q (want png, jpg, jpeg, gif, bmp or webp)", ext)
	}
	return nil
}

// validateOptions rejects flag combinations the pipeline cannot honor.
func validateOptions(opts *Options) error {
	if opts.Threshold < 0 || opts.Threshold > removal.MaxThreshold {
		return fmt.Errorf("threshold must be between 0 and %d, got %g", removal.MaxThreshold, opts.Threshold)
	}
	if opts.EightWay && opts.Global {
		return errors.New("--8-way cannot be used with --global")
	}
	if len(opts.Colors) > 0 && !opts.Global {
		return errors.New("--color requires --global")
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("scale must be greater than zero, got %g", opts.Scale)
	}
	if opts.Info || opts.Trim {
		return nil
	}
	if !opts.AutoCorners && len(opts.Seeds) == 0 && len(opts.Colors) == 0 {
		return errors.New("nothing to remove: pass --auto-corners, --seed or --color")
	}
	return nil
}

// parseColors converts "#rrggbb" specs into opaque purge colors.
func parseColors(specs []string) ([]color.NRGBA, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]color.NRGBA, 0, len(specs))
	for _, spec := range specs {
		c, err := colorful.Hex(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", spec, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}
