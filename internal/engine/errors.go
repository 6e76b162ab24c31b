package engine

import "errors"

// Sentinel errors returned to callers. Handlers map these to HTTP statuses;
// everything else is an internal error.
var (
	// ErrNotFound indicates a listing or rule that does not exist or is not
	// owned by the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed input: a bad rule definition, a
	// non-positive offer, or an update with no valid fields.
	ErrValidation = errors.New("validation failed")
)
