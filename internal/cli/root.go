package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// BuildInfo identifies the binary build. Values are injected through
// -ldflags at release time and default to development placeholders.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Options collects every flag of the root command.
type Options struct {
	Output      string
	Seeds       []string
	AutoCorners bool
	Colors      []string
	Threshold   float64
	EightWay    bool
	Global      bool
	Trim        bool
	Scale       float64
	Info        bool
	Verbose     bool
	NoProgress  bool
	ConfigFile  string
}

// appFs is the filesystem every image read and write goes through. Tests
// swap in an in-memory implementation.
var appFs afero.Fs = afero.NewOsFs()

// newRootCmd builds the root command with a fresh Options so repeated
// executions (and tests) never share flag state.
func newRootCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "floodfill-bg [flags] INPUT",
		Short: "Remove image backgrounds by flood fill or global color purge",
		Long: `floodfill-bg clears the background of an image and saves the result as a
transparent PNG.

In the default flood-fill mode, removal starts at seed points (image corners
with --auto-corners, explicit points with --seed) and spreads through
connected pixels whose color stays within --threshold of a seed color.
Regions that merely share the background color but are not connected to a
seed survive. With --global, every pixel matching a seed color is purged no
matter where it sits.`,
		Example: `  floodfill-bg --auto-corners photo.jpg
  floodfill-bg -s 0,0 -s "50%,0" -t 30 --trim photo.png
  floodfill-bg -g -C "#ffffff" -o clean.png scan.png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(opts.Verbose)
			if err := initConfig(cmd, opts.ConfigFile); err != nil {
				return err
			}
			applyConfig(opts)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "", "output path (default: <temp dir>/<input>_cleaned.png)")
	flags.StringArrayVarP(&opts.Seeds, "seed", "s", nil, `seed point "x,y" or "x%,y%" (repeatable)`)
	flags.BoolVarP(&opts.AutoCorners, "auto-corners", "c", false, "seed the four image corners")
	flags.StringArrayVarP(&opts.Colors, "color", "C", nil, `purge color "#rrggbb" (repeatable, requires --global)`)
	flags.Float64VarP(&opts.Threshold, "threshold", "t", 50, "color distance threshold (0-441)")
	flags.BoolVar(&opts.EightWay, "8-way", false, "flood through diagonal neighbors too")
	flags.BoolVarP(&opts.Global, "global", "g", false, "purge seed colors everywhere, ignoring connectivity")
	flags.BoolVar(&opts.Trim, "trim", false, "crop transparent edges from the result")
	flags.Float64Var(&opts.Scale, "scale", 1, "scale factor applied before saving")
	flags.BoolVarP(&opts.Info, "info", "i", false, "print image information and exit")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.NoProgress, "no-progress", false, "disable the progress spinner")
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default: $HOME/.config/floodfill-bg/config.yaml)")

	return cmd
}

// Execute runs the root command and returns the process exit code. The
// command context cancels on SIGINT or SIGTERM.
func Execute(build BuildInfo) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit %s, built %s)", build.Version, build.GitCommit, build.BuildTime)
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
