package asvc

import (
	"github.com/asvc-go/asvc/algebra"
	"github.com/rs/zerolog"
)

// keyGenConfig collects KeyGen's optional behaviour. With no options,
// KeyGen runs with cryptographically sampled generators, crypto/rand,
// and the package logger; it fills those defaults in before applying
// any Option.
type keyGenConfig[S, P1, P2 any] struct {
	logger       *zerolog.Logger
	randSource   algebra.RandomSource
	g1, g2       *struct {
		g1 P1
		g2 P2
	}
}

// Option configures KeyGen, in the functional-option style the
// teacher uses for fft.NewDomain(n, fft.WithoutPrecompute()).
type Option[S, P1, P2 any] func(*keyGenConfig[S, P1, P2])

// WithLogger overrides the logger KeyGen uses for its Debug-level
// progress lines.
func WithLogger[S, P1, P2 any](l *zerolog.Logger) Option[S, P1, P2] {
	return func(c *keyGenConfig[S, P1, P2]) { c.logger = l }
}

// WithRandomSource overrides the source KeyGen samples tau and the
// (optional) generators from. Defaults to crypto/rand.Reader.
func WithRandomSource[S, P1, P2 any](r algebra.RandomSource) Option[S, P1, P2] {
	return func(c *keyGenConfig[S, P1, P2]) { c.randSource = r }
}

// WithGenerators pins g1, g2 instead of sampling them. Production
// settings fix g1, g2 to the canonical group generators; KeyGen samples
// fresh ones by default only because that is convenient for tests that
// don't care which generators are used. WithGenerators is the converse
// knob, for tests that want the canonical generators specifically.
func WithGenerators[S, P1, P2 any](g1 P1, g2 P2) Option[S, P1, P2] {
	return func(c *keyGenConfig[S, P1, P2]) {
		c.g1 = &struct {
			g1 P1
			g2 P2
		}{g1, g2}
	}
}
