package asvc

import (
	"fmt"

	"github.com/asvc-go/asvc/algebra"
	"github.com/asvc-go/asvc/internal/logger"
)

// AggregateProofs combines single-index proofs, each valid for one
// position under the same commitment, into one proof valid for the
// whole index set: W = prod_j W_{i_j}^{c_j}, with
// c_j = 1/A_I'(omega^{i_j}) computed from the shared A_I(x).
// len(indices) must equal len(proofs); indices must be distinct and in
// range.
func AggregateProofs[S, P1, P2 any](eng algebra.Engine[S, P1, P2], indices []uint64, proofs []Proof[P1], omega S, n uint64) (Proof[P1], error) {
	if len(indices) != len(proofs) {
		return Proof[P1]{}, fmt.Errorf("%w: indices and proofs must have the same length", ErrInvalidParameter)
	}
	idx, err := NewIndexSet(indices, n)
	if err != nil {
		return Proof[P1]{}, err
	}

	proofByIndex := make(map[uint64]Proof[P1], len(indices))
	for k, i := range indices {
		proofByIndex[i] = proofs[k]
	}

	aI := vanishingPolynomial(eng, omega, idx)

	w := eng.G1Identity()
	for _, i := range idx.Slice() {
		omegaI := pow(eng, omega, i)
		cJ, err := lagrangeCoefficientAt(eng, aI, omega, omegaI, eng.One())
		if err != nil {
			return Proof[P1]{}, err
		}
		w = eng.G1Add(w, eng.G1ScalarMul(proofByIndex[i].W, cJ))
	}

	logger.Logger().Debug().Int("count", len(indices)).Msg("asvc: AggregateProofs complete")

	return Proof[P1]{W: w}, nil
}
