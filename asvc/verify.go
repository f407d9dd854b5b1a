package asvc

import (
	"fmt"

	"github.com/asvc-go/asvc/algebra"
)

// VerifyPos checks that commitment c opens to values at indices under
// proof. A mismatched indices/values length, a duplicate index, or an
// out-of-range index is a plain rejection (false, nil) rather than an
// error, only a structural impossibility (A_I's degree outgrowing the
// SRS) is surfaced as an error.
func VerifyPos[S, P1, P2 any](eng algebra.Engine[S, P1, P2], vk VerifyingKey[S, P1, P2], c Commitment[P1], values []S, indices []uint64, proof Proof[P1], omega S) (bool, error) {
	if len(values) != len(indices) {
		return false, nil
	}

	n := uint64(len(vk.G2TauI) - 1)
	idx, err := NewIndexSet(indices, n)
	if err != nil {
		return false, nil
	}

	aI := vanishingPolynomial(eng, omega, idx)
	if uint64(len(aI)) > uint64(len(vk.G2TauI)) {
		return false, fmt.Errorf("%w: deg(A_I)=%d exceeds the G2 SRS size %d", ErrInvalidParameter, len(aI)-1, len(vk.G2TauI)-1)
	}

	// idx.Slice() is ascending regardless of the order indices/values
	// arrived in; interpolationPolynomial pairs its j-th value with
	// idx.Slice()'s j-th index, so values must be re-keyed into that
	// same order before use.
	valueAt := make(map[uint64]S, len(indices))
	for k, i := range indices {
		valueAt[i] = values[k]
	}
	sortedValues := make([]S, idx.Len())
	for k, i := range idx.Slice() {
		sortedValues[k] = valueAt[i]
	}

	rI, err := interpolationPolynomial(eng, omega, idx, sortedValues, aI)
	if err != nil {
		return false, err
	}
	if uint64(len(rI)) > uint64(len(vk.G1TauI)) {
		return false, fmt.Errorf("%w: deg(R_I)=%d exceeds the G1 SRS size %d", ErrInvalidParameter, len(rI)-1, len(vk.G1TauI)-1)
	}

	R := eng.G1Identity()
	if len(rI) > 0 {
		R, err = eng.G1MultiExp(vk.G1TauI[:len(rI)], rI)
		if err != nil {
			return false, fmt.Errorf("asvc: VerifyPos: %w", err)
		}
	}

	A, err := eng.G2MultiExp(vk.G2TauI[:len(aI)], aI)
	if err != nil {
		return false, fmt.Errorf("asvc: VerifyPos: %w", err)
	}

	lhs := eng.G1Add(c.C, eng.G1Neg(R))
	ok, err := eng.PairingCheck([]P1{lhs, eng.G1Neg(proof.W)}, []P2{vk.G2TauI[0], A})
	if err != nil {
		return false, fmt.Errorf("asvc: VerifyPos: %w", err)
	}
	return ok, nil
}

// VerifyUpk checks the two pairing identities every update key must
// satisfy: that a_i certifies omega^i is a root of A(x), and
// that u_i certifies l_i against a_i. Both must hold; a failed check
// is a plain (false, nil). An error is returned only when the backend's
// PairingCheck fails or the domain size is not invertible in the field.
func VerifyUpk[S, P1, P2 any](eng algebra.Engine[S, P1, P2], vk VerifyingKey[S, P1, P2], i uint64, upk UpdateKey[P1], omega S) (bool, error) {
	omegaI := pow(eng, omega, i)

	// e(a_i, g2^tau - omega^i*g2) == e(a, g2)
	inner := eng.G2Add(vk.G2TauI[1], eng.G2Neg(eng.G2ScalarMul(vk.G2TauI[0], omegaI)))
	first, err := eng.PairingCheck([]P1{upk.AI, eng.G1Neg(vk.A)}, []P2{inner, vk.G2TauI[0]})
	if err != nil {
		return false, fmt.Errorf("asvc: VerifyUpk: %w", err)
	}
	if !first {
		return false, nil
	}

	// l_i = a_i^(omega^i/n); e(l_i/g1, g2) == e(u_i, g2^tau - omega^i*g2)
	n := uint64(len(vk.G2TauI) - 1)
	nInv, err := eng.Inverse(eng.FromUint64(n))
	if err != nil {
		return false, fmt.Errorf("%w: domain size not invertible", ErrArithmeticFailure)
	}
	cI := eng.Mul(omegaI, nInv)
	lI := eng.G1ScalarMul(upk.AI, cI)

	lhsInner := eng.G1Add(lI, eng.G1Neg(vk.G1TauI[0]))
	second, err := eng.PairingCheck([]P1{lhsInner, eng.G1Neg(upk.UI)}, []P2{vk.G2TauI[0], inner})
	if err != nil {
		return false, fmt.Errorf("asvc: VerifyUpk: %w", err)
	}
	return second, nil
}
