// Package imaging handles the file side of background removal: decoding
// input images, normalizing them into mutable RGBA buffers, inspecting
// their metadata, and encoding results back to disk.
//
// All filesystem access goes through an injected afero.Fs, so every
// operation runs unchanged against the real disk or an in-memory
// filesystem in tests.
//
// # Supported Formats
//
// Decoders are registered for PNG, JPEG, GIF, BMP and WebP. Output is
// always PNG: removed backgrounds rely on the alpha channel, and PNG is
// the one supported format that preserves it losslessly.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Regions follow the
// image package convention of inclusive top-left, exclusive bottom-right.
//
// # Thread Safety
//
// Loader and Saver are stateless apart from the filesystem handle and are
// safe for concurrent use as long as the underlying afero.Fs is. Buffers
// returned by ToNRGBA are owned by the caller and must not be shared
// between concurrent mutations.
package imaging
