package asvc

import (
	"fmt"

	"github.com/asvc-go/asvc/algebra"
	"github.com/asvc-go/asvc/poly"
)

// ProvePos builds a constant-size proof that values holds the stated
// entries at indices. values must hold every position in
// the domain (length equal to pk.LI's length) because the prover needs
// Phi in full to recover its monomial coefficients via inverse FFT;
// indices need only name the subset being opened.
//
// len(indices) == 0 yields a vacuous proof (q = Phi); len(indices) ==
// len(values) yields the identity proof (q = 0). Duplicate or
// out-of-range indices are rejected as ErrInvalidParameter.
func ProvePos[S, P1, P2 any](eng algebra.Engine[S, P1, P2], pk ProvingKey[S, P1, P2], values []S, indices []uint64) (Proof[P1], error) {
	n := uint64(len(pk.LI))
	if uint64(len(values)) != n {
		return Proof[P1]{}, fmt.Errorf("%w: values must have length %d, got %d", ErrInvalidParameter, n, len(values))
	}

	idx, err := NewIndexSet(indices, n)
	if err != nil {
		return Proof[P1]{}, err
	}

	domain, err := eng.NewDomain(n)
	if err != nil {
		return Proof[P1]{}, fmt.Errorf("%w: %v", ErrDomainUnavailable, err)
	}
	omega := domain.Generator()

	phiCoeffs := make([]S, len(values))
	copy(phiCoeffs, values)
	domain.FFTInverse(phiCoeffs)
	phi := poly.Polynomial[S](phiCoeffs)

	aI := vanishingPolynomial(eng, omega, idx)

	q, _, err := poly.DivideWithQuotientAndRemainder(eng, phi, aI)
	if err != nil {
		return Proof[P1]{}, fmt.Errorf("%w: dividing Phi by A_I: %v", ErrArithmeticFailure, err)
	}

	if len(q) == 0 {
		return Proof[P1]{W: eng.G1Identity()}, nil
	}
	if uint64(len(q)) > uint64(len(pk.G1TauI)) {
		return Proof[P1]{}, fmt.Errorf("%w: witness degree %d exceeds SRS size %d", ErrInvalidParameter, len(q)-1, len(pk.G1TauI)-1)
	}

	w, err := eng.G1MultiExp(pk.G1TauI[:len(q)], q)
	if err != nil {
		return Proof[P1]{}, fmt.Errorf("asvc: ProvePos: %w", err)
	}
	return Proof[P1]{W: w}, nil
}
