package instrument

import "errors"

// Errors returned by a wrapped function before the target runs.
// Failures returned by the target itself are passed through untouched.
var (
	// ErrParameterNotFound is returned when a dynamic attribute references a
	// parameter, keyword or position that the call does not provide and that
	// has no declared default.
	ErrParameterNotFound = errors.New("expected argument not found in function signature")

	// ErrInvalidCall is returned when a Call cannot be bound to the declared
	// Signature (too many positional arguments, an unexpected or duplicated
	// keyword, or a missing required parameter).
	ErrInvalidCall = errors.New("call does not match function signature")
)
