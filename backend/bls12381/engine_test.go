package bls12381_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asvc-go/asvc/backend/bls12381"
)

func TestFieldArithmetic(t *testing.T) {
	eng := bls12381.Engine{}

	a, err := eng.Random(rand.Reader)
	require.NoError(t, err)
	b, err := eng.Random(rand.Reader)
	require.NoError(t, err)

	require.True(t, eng.Equal(eng.Add(a, eng.Zero()), a))
	require.True(t, eng.Equal(eng.Mul(a, eng.One()), a))
	require.True(t, eng.Equal(eng.Add(a, eng.Neg(a)), eng.Zero()))

	sum := eng.Add(a, b)
	diff := eng.Sub(sum, b)
	require.True(t, eng.Equal(diff, a))

	aInv, err := eng.Inverse(a)
	require.NoError(t, err)
	require.True(t, eng.Equal(eng.Mul(a, aInv), eng.One()))

	_, err = eng.Inverse(eng.Zero())
	require.Error(t, err)
}

func TestGroupAndPairingIdentities(t *testing.T) {
	eng := bls12381.Engine{}

	s, err := eng.Random(rand.Reader)
	require.NoError(t, err)

	g1 := eng.G1Generator()
	g2 := eng.G2Generator()

	p1 := eng.G1ScalarMul(g1, s)
	p2 := eng.G2ScalarMul(g2, s)

	// e(s*g1, g2) == e(g1, s*g2)
	ok, err := eng.PairingCheck([]bls12381.G1{p1, eng.G1Neg(g1)}, []bls12381.G2{g2, p2})
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, eng.Equal(s, s))
	require.False(t, eng.Equal(s, eng.FromUint64(0)))
}

func TestFixedBaseMultiExpMatchesScalarMul(t *testing.T) {
	eng := bls12381.Engine{}
	g1 := eng.G1Generator()

	scalars := make([]bls12381.Scalar, 5)
	for i := range scalars {
		v, err := eng.Random(rand.Reader)
		require.NoError(t, err)
		scalars[i] = v
	}

	out, err := eng.G1FixedBaseMultiExp(g1, scalars)
	require.NoError(t, err)
	require.Len(t, out, len(scalars))

	for i, s := range scalars {
		want := eng.G1ScalarMul(g1, s)
		require.True(t, eng.Equal(s, s))
		require.Equal(t, want, out[i])
	}
}
