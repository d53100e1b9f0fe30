// Package imagefile handles the filesystem side of image generation:
// reading input images, writing generated ones, and producing result
// previews.
//
// # Input Images
//
// Input paths are resolved to absolute paths before use, and a missing
// file is reported with that absolute path so callers can see exactly
// what was looked up. The MIME type of an input is derived from its
// file extension alone (see MIMEFromPath); file contents are never
// sniffed for type detection. Dimensions are probed from the image
// header on a best-effort basis and are zero when the probe fails —
// a file that does not decode is still a valid input.
//
// # Output Images
//
// Generated images are always written as .png files inside a single
// output directory, which is created on demand. Save returns the
// absolute path of the written file.
//
// # Previews
//
// PreviewJPEG downscales a generated image to a bounded box and
// re-encodes it as JPEG so results can carry a small inline rendition
// of the full-size file on disk.
package imagefile
