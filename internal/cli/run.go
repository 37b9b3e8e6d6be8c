package cli

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Morass/floodfill-bg/internal/imaging"
	"github.com/Morass/floodfill-bg/internal/removal"
)

// run validates the invocation and dispatches to info or removal mode.
func run(cmd *cobra.Command, opts *Options, input string) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	if opts.Info {
		return runInfo(cmd, input)
	}
	return runRemoval(cmd, opts, input)
}

// runInfo prints image metadata and a dominant color summary, then exits
// without touching any pixels.
func runInfo(cmd *cobra.Command, input string) error {
	info, img, err := imaging.Inspect(appFs, input)
	if err != nil {
		return err
	}
	writeInfo(cmd.OutOrStdout(), info, img)
	return nil
}

// runRemoval drives the full pipeline: decode, seed resolution, removal,
// optional trim and scale, PNG encode, report.
func runRemoval(cmd *cobra.Command, opts *Options, input string) error {
	img, format, err := imaging.NewLoader(appFs).Load(input)
	if err != nil {
		return err
	}
	logger.Debugw("image decoded", "path", input, "format", format)

	buf := imaging.ToNRGBA(img)
	width, height := buf.Bounds().Dx(), buf.Bounds().Dy()

	seeds, err := resolveSeeds(opts, width, height)
	if err != nil {
		return err
	}
	purge, err := parseColors(opts.Colors)
	if err != nil {
		return err
	}
	logger.Debugw("seeds resolved", "seeds", formatSeeds(seeds), "colors", hexColors(removal.SeedColors(buf, seeds)))

	output := opts.Output
	if output == "" {
		output = defaultOutputPath(input)
	}

	report := &Report{
		Input:     input,
		Output:    output,
		Width:     width,
		Height:    height,
		Global:    opts.Global,
		Threshold: opts.Threshold,
		EightWay:  opts.EightWay,
		Trim:      opts.Trim,
		Seeds:     seeds,
	}
	out := cmd.OutOrStdout()
	report.WriteHeader(out)

	start := time.Now()
	stop := startSpinner(opts, "processing")
	var removed int
	switch {
	case opts.Global && len(purge) > 0:
		colors := append(removal.SeedColors(buf, seeds), purge...)
		buf, removed = removal.PurgeColors(buf, colors, opts.Threshold)
	case opts.Global:
		buf, removed = removal.GlobalPurge(buf, seeds, opts.Threshold)
	case len(seeds) > 0:
		buf, removed = removal.FloodFill(buf, seeds, opts.Threshold, opts.EightWay)
	}
	stop()
	logger.Debugw("removal finished", "removed", removed, "elapsed", time.Since(start))

	if opts.Trim {
		var box image.Rectangle
		buf, box = removal.Trim(buf)
		report.TrimBox = box
		logger.Debugw("edges trimmed", "box", box)
	}
	if opts.Scale != 1 {
		buf = imaging.Scale(buf, opts.Scale)
		logger.Debugw("result scaled", "factor", opts.Scale, "bounds", buf.Bounds())
	}

	size, err := imaging.NewSaver(appFs).SavePNG(output, buf)
	if err != nil {
		return err
	}

	report.Removed = removed
	report.FinalWidth = buf.Bounds().Dx()
	report.FinalHeight = buf.Bounds().Dy()
	report.SavedBytes = size
	report.WriteResults(out)
	return nil
}

// resolveSeeds builds the seed list: the four corners first when requested,
// then explicit --seed specs in flag order.
func resolveSeeds(opts *Options, width, height int) ([]image.Point, error) {
	var seeds []image.Point
	if opts.AutoCorners {
		seeds = removal.CornerSeeds(width, height)
	}
	for _, spec := range opts.Seeds {
		pt, err := removal.ParseSeed(spec, width, height)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, pt)
	}
	return seeds, nil
}

// defaultOutputPath derives the output location from the input name. The
// directory comes from the output_dir config key, falling back to the
// system temp directory.
func defaultOutputPath(input string) string {
	dir := viper.GetString(keyOutputDir)
	if dir == "" {
		dir = os.TempDir()
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, stem+"_cleaned.png")
}

// startSpinner renders an indeterminate spinner on stderr until the
// returned stop function is called. With --no-progress the spinner is
// suppressed and stop is a no-op.
func startSpinner(opts *Options, description string) (stop func()) {
	if opts.NoProgress {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()
	return func() {
		close(done)
		bar.Finish()
	}
}
