// Package gemini translates tool requests into Gemini image-generation
// calls and turns the responses back into files on disk.
//
// The package implements one pipeline shared by all three operations
// (generate, edit, compose): validate and normalize the request, load
// any input images, build the ordered content parts and the generation
// config, invoke the API, then walk the response parts collecting text
// and writing the returned image to the output directory. The
// operations differ only in their input-image bounds and defaulting
// rules, captured as per-operation data rather than per-operation code.
//
// # Request Shape
//
// Content parts are ordered: every input image precedes the trailing
// prompt text. The generation config always requests both TEXT and
// IMAGE response modalities; aspect ratio and image size are attached
// according to the operation's defaulting rules (see the operation
// table in translator.go).
//
// # Response Shape
//
// Responses are walked candidate by candidate, part by part, in order.
// Text parts accumulate into the result text, one line each. Inline
// image parts are written to {outputDir}/{stem}.png; when a response
// carries more than one image the later write overwrites the earlier
// one. A response with no image part at all is a failure.
//
// # Error Handling
//
// Failures are classified into three kinds (see errors.go): invalid
// arguments, which are always detected before any network call;
// generation failures, where the API answered but produced no image;
// and upstream failures, where the API call itself failed. The
// upstream error message is preserved through wrapping.
package gemini
