// Package server exposes Gemini image generation as MCP tools.
//
// This package registers the tool surface with the MCP SDK and routes
// validated calls into the translator. It communicates over stdio, so
// it can be wired into Claude and other MCP-compatible clients.
//
// # Available Tools
//
//   - generate_image: create a new image from a text prompt
//   - edit_image: modify one existing image per a text prompt
//   - compose_images: combine 2-14 images into a single new image
//
// # Schemas
//
// Input schemas are inferred from the argument structs in tools.go and
// then tightened by hand: model, aspect_ratio, and image_size become
// closed enums, defaults are declared, and compose_images bounds its
// image_paths array. Everything the schema promises is re-checked by
// the translator, so a client that ignores the schema still gets a
// clean invalid_argument error instead of a wasted API call.
//
// # Results
//
// A successful call returns a text block containing the saved path,
// the input summary, the model and options in effect, and any
// commentary the model produced. When previews are enabled the result
// carries a second content block with a downscaled JPEG rendition of
// the saved file.
//
// # Error Handling
//
// Generation failures are returned as in-band tool errors (IsError
// results) whose text is prefixed with the failure kind:
//   - invalid_argument: rejected before any API call
//   - generation_failed: the API answered without image data
//   - upstream_failure: the API call itself failed
//
// Go errors out of the handlers are reserved for protocol-level
// problems.
//
// # Concurrency
//
// Tool calls are serialized. A mutex admits one generation at a time,
// and each call runs to completion, API round trip and file writes
// included, before the next begins.
//
// All logging goes to stderr; stdout belongs to the protocol.
package server
