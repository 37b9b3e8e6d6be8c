// Package removal implements background removal on raster images: two
// removal strategies driven by a color distance metric, plus the seed
// coordinate resolution and transparent-edge trimming that surround them.
//
// The two strategies differ in how far a match is allowed to reach:
//
//   - FloodFill spreads outward from seed points through connected pixels
//     whose color lies within a threshold of a sampled seed color. Matching
//     pixels that are not connected to any seed survive.
//   - GlobalPurge tests every pixel independently and clears all matches,
//     ignoring connectivity entirely.
//
// Both clear matched pixels to fully transparent black and report how many
// pixels they cleared.
//
// # Pixel Buffers
//
// All operations work on *image.NRGBA buffers with non-premultiplied alpha
// and bounds anchored at the origin, which is what image.NewNRGBA and
// imaging.ToNRGBA produce. Buffers are mutated in place and borrowed only
// for the duration of a call; nothing in this package retains a reference
// after returning. A buffer must not be shared between concurrent calls.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. Rectangles
// follow the image package convention: the right and bottom edges are
// exclusive.
//
// # Error Handling
//
// Only seed specification parsing can fail, with an error wrapping one of
// ErrInvalidFormat, ErrInvalidNumber or ErrOutOfRange. The removal and trim
// operations assume validated, in-bounds input: passing an out-of-bounds
// seed or an empty buffer is a programming error, not a recoverable
// condition, and callers are expected to reject such input before it
// reaches this package.
package removal
