package poly_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asvc-go/asvc/backend/bls12381"
	"github.com/asvc-go/asvc/poly"
)

func TestEvaluateLinearFactor(t *testing.T) {
	eng := bls12381.Engine{}
	root, err := eng.Random(rand.Reader)
	require.NoError(t, err)

	p := poly.LinearFactor[bls12381.Scalar](eng, root)
	require.True(t, eng.Equal(poly.Evaluate[bls12381.Scalar](eng, p, root), eng.Zero()))
}

func TestMulDistributesOverEvaluate(t *testing.T) {
	eng := bls12381.Engine{}
	x, r1, r2, err1 := randTriple(t, eng)
	require.NoError(t, err1)

	a := poly.LinearFactor[bls12381.Scalar](eng, r1)
	b := poly.LinearFactor[bls12381.Scalar](eng, r2)
	prod := poly.Mul[bls12381.Scalar](eng, a, b)

	got := poly.Evaluate[bls12381.Scalar](eng, prod, x)
	want := eng.Mul(poly.Evaluate[bls12381.Scalar](eng, a, x), poly.Evaluate[bls12381.Scalar](eng, b, x))
	require.True(t, eng.Equal(got, want))
}

func TestAddIsPointwise(t *testing.T) {
	eng := bls12381.Engine{}
	x, r1, r2, err1 := randTriple(t, eng)
	require.NoError(t, err1)

	a := poly.LinearFactor[bls12381.Scalar](eng, r1)
	b := poly.LinearFactor[bls12381.Scalar](eng, r2)
	sum := poly.Add[bls12381.Scalar](eng, a, b)

	got := poly.Evaluate[bls12381.Scalar](eng, sum, x)
	want := eng.Add(poly.Evaluate[bls12381.Scalar](eng, a, x), poly.Evaluate[bls12381.Scalar](eng, b, x))
	require.True(t, eng.Equal(got, want))
}

func TestDegreeOfZeroPolynomialIsNegativeOne(t *testing.T) {
	eng := bls12381.Engine{}
	require.Equal(t, -1, poly.Degree[bls12381.Scalar](eng, poly.Polynomial[bls12381.Scalar]{}))
	require.Equal(t, -1, poly.Degree[bls12381.Scalar](eng, poly.Polynomial[bls12381.Scalar]{eng.Zero(), eng.Zero()}))
}

func randTriple(t *testing.T, eng bls12381.Engine) (x, r1, r2 bls12381.Scalar, err error) {
	t.Helper()
	if x, err = eng.Random(rand.Reader); err != nil {
		return
	}
	if r1, err = eng.Random(rand.Reader); err != nil {
		return
	}
	r2, err = eng.Random(rand.Reader)
	return
}
