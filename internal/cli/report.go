package cli

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Morass/floodfill-bg/internal/imaging"
)

// bannerWidth is the width of the horizontal rules in the report.
const bannerWidth = 50

// Report carries everything the result banner prints. The header rows are
// known before processing; the result rows are filled in afterward.
type Report struct {
	Input       string
	Output      string
	Width       int
	Height      int
	Global      bool
	Threshold   float64
	EightWay    bool
	Trim        bool
	Seeds       []image.Point
	Removed     int
	TrimBox     image.Rectangle
	FinalWidth  int
	FinalHeight int
	SavedBytes  int64
}

// WriteHeader prints the run parameters above a divider.
func (r *Report) WriteHeader(w io.Writer) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "floodfill-bg")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Input:      %s\n", r.Input)
	fmt.Fprintf(w, "Output:     %s\n", r.Output)
	fmt.Fprintf(w, "Initial:    %dx%d\n", r.Width, r.Height)
	fmt.Fprintf(w, "Mode:       %s\n", r.mode())
	fmt.Fprintf(w, "Threshold:  %g\n", r.Threshold)
	fmt.Fprintf(w, "8-way:      %t\n", r.EightWay)
	fmt.Fprintf(w, "Trim:       %t\n", r.Trim)
	if len(r.Seeds) > 0 {
		fmt.Fprintf(w, "Seeds:      %s\n", formatSeeds(r.Seeds))
	}
	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))
}

// WriteResults prints the outcome rows below the header.
func (r *Report) WriteResults(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Removed:    %d pixels\n", r.Removed)
	if r.Trim {
		fmt.Fprintf(w, "Trimmed:    bbox=(%d, %d, %d, %d)\n",
			r.TrimBox.Min.X, r.TrimBox.Min.Y, r.TrimBox.Max.X, r.TrimBox.Max.Y)
	}
	fmt.Fprintf(w, "Final:      %dx%d\n", r.FinalWidth, r.FinalHeight)
	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))
	fmt.Fprintf(w, "Saved:      %s (%s)\n", r.Output, formatFileSize(r.SavedBytes))
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

func (r *Report) mode() string {
	if r.Global {
		return "GLOBAL purge"
	}
	return "flood-fill"
}

// writeInfo prints the --info view: metadata plus a dominant color summary
// of the decoded pixels.
func writeInfo(w io.Writer, info *imaging.Info, img image.Image) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "%s: %dx%d %s, mode %s\n", info.Name, info.Width, info.Height, info.Format, info.Mode)
	fmt.Fprintf(w, "Size:       %s\n", formatFileSize(info.FileSizeBytes))
	fmt.Fprintf(w, "Alpha:      %t\n", info.HasAlpha)
	fmt.Fprintf(w, "Mean color: %s\n", imaging.MeanColor(img))
	if shares := imaging.Palette(img, 5); len(shares) > 0 {
		fmt.Fprintln(w, "Palette:")
		for _, s := range shares {
			p.Fprintf(w, "  %s  %5.1f%%  (%d px)\n", s.Hex, s.Percent, s.Count)
		}
	}
}

// formatFileSize renders a byte count the way the report prints sizes:
// fractional megabytes above 1 MiB, whole kilobytes below.
func formatFileSize(n int64) string {
	if n >= 1<<20 {
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	}
	return fmt.Sprintf("%d KB", n/1024)
}

// formatSeeds renders seed points as "(x, y), (x, y)".
func formatSeeds(seeds []image.Point) string {
	parts := make([]string, len(seeds))
	for i, pt := range seeds {
		parts[i] = fmt.Sprintf("(%d, %d)", pt.X, pt.Y)
	}
	return strings.Join(parts, ", ")
}

// hexColors renders sampled seed colors as "#rrggbb" for diagnostics.
func hexColors(colors []color.NRGBA) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hex()
	}
	return out
}
