// Package algebra declares the capability sets the asvc core is
// parametric over: scalar field arithmetic, group operations, multi
// scalar multiplication, pairings, and FFT evaluation domains. None of
// these interfaces touch a concrete curve; backend/bls12381 is the
// only package in this module that does.
package algebra

import "io"

// Field is the scalar arithmetic capability a pairing backend must
// expose. S is the backend's scalar element type (e.g. a curve's
// fr.Element).
type Field[S any] interface {
	Zero() S
	One() S
	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Neg(a S) S

	// Inverse returns the multiplicative inverse of a. It returns an
	// error iff a is zero.
	Inverse(a S) (S, error)

	Equal(a, b S) bool

	// FromUint64 embeds a small non-negative integer into the field,
	// used for the domain size n.
	FromUint64(v uint64) S

	// Random samples a uniform scalar from r. Backends must use a
	// cryptographically secure source in production; RandomSource
	// documents the contract callers must provide.
	Random(r io.Reader) (S, error)
}

// RandomSource is a source of cryptographically secure randomness for
// KeyGen. It is satisfied by crypto/rand.Reader.
type RandomSource = io.Reader
