package asvc_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asvc-go/asvc/asvc"
	"github.com/asvc-go/asvc/backend/bls12381"
)

// TestEndToEnd walks a full n = 8 lifecycle: key generation, a subset
// opening, a single-index update rolled forward through both the
// same-index and cross-index proof update laws, and a two-proof
// aggregation. It runs asvc's generic
// operations directly, instantiated at bls12381's concrete types,
// rather than through backend/bls12381's curve-fixed convenience
// wrappers (exercised separately in that package's own tests).
func TestEndToEnd(t *testing.T) {
	eng := bls12381.Engine{}
	const n = 8

	params, err := asvc.KeyGen[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, n)
	require.NoError(t, err)

	domain, err := eng.NewDomain(n)
	require.NoError(t, err)
	omega := domain.Generator()

	for i := uint64(0); i < n; i++ {
		ok, err := asvc.VerifyUpk[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, i, params.ProvingKey.UpdateKeys[i], omega)
		require.NoError(t, err)
		require.Truef(t, ok, "VerifyUpk failed at index %d", i)
	}

	values := make([]bls12381.Scalar, n)
	for i := range values {
		v, err := eng.Random(rand.Reader)
		require.NoError(t, err)
		values[i] = v
	}

	c, err := asvc.Commit[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values)
	require.NoError(t, err)

	indices := []uint64{0, 1, 5}
	pointValues := []bls12381.Scalar{values[0], values[1], values[5]}
	proof, err := asvc.ProvePos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values, indices)
	require.NoError(t, err)

	ok, err := asvc.VerifyPos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, c, pointValues, indices, proof, omega)
	require.NoError(t, err)
	require.True(t, ok)

	// Mutating one opened value must flip the verdict.
	mutated := append([]bls12381.Scalar{}, pointValues...)
	mutated[0] = eng.Add(mutated[0], eng.One())
	ok, err = asvc.VerifyPos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, c, mutated, indices, proof, omega)
	require.NoError(t, err)
	require.False(t, ok)

	delta, err := eng.Random(rand.Reader)
	require.NoError(t, err)

	cPrime, err := asvc.UpdateCommit[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, c, delta, 3, params.ProvingKey.UpdateKeys[3], omega, n)
	require.NoError(t, err)

	proof3, err := asvc.ProvePos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values, []uint64{3})
	require.NoError(t, err)
	proof3Prime, err := asvc.UpdateProof[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, proof3, delta, 3, 3, params.ProvingKey.UpdateKeys[3], params.ProvingKey.UpdateKeys[3], omega, n)
	require.NoError(t, err)

	v3Prime := eng.Add(values[3], delta)
	ok, err = asvc.VerifyPos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, cPrime, []bls12381.Scalar{v3Prime}, []uint64{3}, proof3Prime, omega)
	require.NoError(t, err)
	require.True(t, ok)

	proof4, err := asvc.ProvePos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values, []uint64{4})
	require.NoError(t, err)
	proof4Prime, err := asvc.UpdateProof[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, proof4, delta, 4, 3, params.ProvingKey.UpdateKeys[4], params.ProvingKey.UpdateKeys[3], omega, n)
	require.NoError(t, err)
	ok, err = asvc.VerifyPos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, cPrime, []bls12381.Scalar{values[4]}, []uint64{4}, proof4Prime, omega)
	require.NoError(t, err)
	require.True(t, ok)

	proof1, err := asvc.ProvePos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values, []uint64{1})
	require.NoError(t, err)
	proof5, err := asvc.ProvePos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values, []uint64{5})
	require.NoError(t, err)
	aggregated, err := asvc.AggregateProofs[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, []uint64{1, 5}, []asvc.Proof[bls12381.G1]{proof1, proof5}, omega, n)
	require.NoError(t, err)

	ok, err = asvc.VerifyPos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, c, []bls12381.Scalar{values[1], values[5]}, []uint64{1, 5}, aggregated, omega)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestVerifyPosAcceptsIndicesOutOfOrder checks that VerifyPos pairs
// each opened value with its own index rather than with idx.Slice()'s
// ascending position, by opening the same positions as TestEndToEnd in
// descending order.
func TestVerifyPosAcceptsIndicesOutOfOrder(t *testing.T) {
	eng := bls12381.Engine{}
	const n = 8

	params, err := asvc.KeyGen[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, n)
	require.NoError(t, err)

	domain, err := eng.NewDomain(n)
	require.NoError(t, err)
	omega := domain.Generator()

	values := make([]bls12381.Scalar, n)
	for i := range values {
		v, err := eng.Random(rand.Reader)
		require.NoError(t, err)
		values[i] = v
	}

	c, err := asvc.Commit[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values)
	require.NoError(t, err)

	ascending := []uint64{0, 1, 5}
	proof, err := asvc.ProvePos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.ProvingKey, values, ascending)
	require.NoError(t, err)

	descending := []uint64{5, 1, 0}
	descendingValues := []bls12381.Scalar{values[5], values[1], values[0]}
	ok, err := asvc.VerifyPos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, c, descendingValues, descending, proof, omega)
	require.NoError(t, err)
	require.True(t, ok, "VerifyPos must accept indices/values supplied out of ascending order")

	mismatched := []bls12381.Scalar{values[0], values[1], values[5]}
	ok, err = asvc.VerifyPos[bls12381.Scalar, bls12381.G1, bls12381.G2](eng, params.VerifyingKey, c, mismatched, descending, proof, omega)
	require.NoError(t, err)
	require.False(t, ok, "VerifyPos must reject values paired with the wrong index")
}
