package gemini

import (
	"errors"
	"fmt"
)

// Kind classifies a translator failure.
type Kind string

const (
	// KindInvalidArgument marks a request rejected before any API
	// call: unknown model, input-image count out of bounds, missing
	// input file, malformed option value.
	KindInvalidArgument Kind = "invalid_argument"

	// KindGenerationFailed marks an API response that contained no
	// image data anywhere.
	KindGenerationFailed Kind = "generation_failed"

	// KindUpstreamFailure marks a failed API call (network, auth,
	// quota).
	KindUpstreamFailure Kind = "upstream_failure"
)

// Error is a classified translator failure. The message is meant for
// the calling agent; the wrapped cause, when present, is preserved
// verbatim.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Cause != nil:
		return e.Msg + ": " + e.Cause.Error()
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// KindOf extracts the Kind from err, or "" if err carries none.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

func invalidArgf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func invalidArg(cause error) *Error {
	return &Error{Kind: KindInvalidArgument, Cause: cause}
}

func generationFailed(msg string) *Error {
	return &Error{Kind: KindGenerationFailed, Msg: msg}
}

func upstreamFailure(cause error) *Error {
	return &Error{Kind: KindUpstreamFailure, Msg: "image generation request failed", Cause: cause}
}
