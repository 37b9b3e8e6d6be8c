// Package cli implements the floodfill-bg command line interface.
//
// The binary takes a single input image and removes its background, either
// by flood filling from seed points or by purging seed colors across the
// whole frame. Results are always written as PNG so the cleared pixels keep
// their transparency.
//
// # Usage
//
//	floodfill-bg [flags] INPUT
//
// Seed sources combine: --auto-corners adds the four corner pixels, each
// --seed adds one point given as "x,y" or "x%,y%". With --global the seed
// colors are purged everywhere regardless of connectivity, and --color can
// add explicit hex colors to the purge list. --trim crops transparent edges
// afterward and also works on its own. --info prints image metadata and a
// dominant color summary without processing anything.
//
// # Configuration
//
// Settings resolve in flag > environment > config file > default order,
// backed by viper. The config file is YAML, by default
// $HOME/.config/floodfill-bg/config.yaml, overridable with --config.
// Environment variables carry the FLOODFILL_ prefix, so FLOODFILL_THRESHOLD
// maps to the threshold key. Configurable keys: threshold, scale,
// no_progress, output_dir.
//
// # Output Streams
//
// The result report and --info listing go to stdout. Diagnostics (zap,
// enabled with --verbose) and the progress spinner go to stderr, so stdout
// stays clean for piping.
//
// # Exit Codes
//
// 0 on success, 1 on any failure (bad flags, unreadable input, undecodable
// image, write errors). Error details go to stderr.
package cli
