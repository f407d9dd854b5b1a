package asvc

import "errors"

// Sentinel errors surfaced by the core. Verification
// operations (VerifyPos, VerifyUpk) never return these for a
// cryptographic rejection (that is always a plain `false, nil`), only
// for structural problems in their inputs.
var (
	// ErrInvalidParameter covers a zero or unsupported n, an index out
	// of [0, n), mismatched indices/values lengths, and duplicate
	// indices.
	ErrInvalidParameter = errors.New("asvc: invalid parameter")

	// ErrDomainUnavailable means the scalar field admits no evaluation
	// domain of the requested size.
	ErrDomainUnavailable = errors.New("asvc: no evaluation domain of the requested size")

	// ErrArithmeticFailure means a field inversion of zero occurred
	// during polynomial division, indicating a malformed divisor.
	ErrArithmeticFailure = errors.New("asvc: arithmetic failure")

	// ErrRandomnessFailure means the configured RNG refused to produce
	// a scalar during KeyGen.
	ErrRandomnessFailure = errors.New("asvc: randomness source failed")
)
