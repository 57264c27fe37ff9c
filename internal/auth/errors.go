package auth

import "errors"

// The closed set of error kinds that cross the service boundary.
// The HTTP layer maps each kind to exactly one status code; anything
// not wrapping one of these falls through to the catch-all 500.
var (
	// ErrInvalidToken covers every verification failure: bad signature,
	// wrong audience, expired token, or a verified payload missing
	// required claims. The distinction is not preserved past the verifier.
	ErrInvalidToken = errors.New("invalid google token")

	// ErrUserProvisioning covers store failures during find-or-create.
	ErrUserProvisioning = errors.New("failed to process user")
)
