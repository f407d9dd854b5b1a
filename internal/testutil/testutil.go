// Package testutil holds helpers shared across this module's test
// files: random vector generation and gopter generators, kept out of
// the packages under test rather than duplicated per package.
package testutil

import (
	"math/rand"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/asvc-go/asvc/algebra"
)

// RandomScalars returns n scalars drawn from r via eng.Random.
func RandomScalars[S, P1, P2 any](eng algebra.Engine[S, P1, P2], r *rand.Rand, n int) ([]S, error) {
	out := make([]S, n)
	for i := range out {
		s, err := eng.Random(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// RandomSubset returns k distinct indices drawn from [0, n) without
// replacement: it shuffles all of [0, n) (Fisher-Yates, via r.Shuffle)
// and returns the first k entries, in shuffled order.
func RandomSubset(r *rand.Rand, n, k int) []uint64 {
	pool := make([]uint64, n)
	for i := range pool {
		pool[i] = uint64(i)
	}
	r.Shuffle(n, func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	out := make([]uint64, k)
	copy(out, pool[:k])
	return out
}

// GenSubsetSize returns a gopter generator over subset sizes in
// [0, n], for property tests that need an index set of arbitrary size
// drawn from a fixed domain. asvc/property_test.go builds the same
// range with gen.IntRange directly rather than calling it.
func GenSubsetSize(n int) gopter.Gen {
	return gen.IntRange(0, n)
}
