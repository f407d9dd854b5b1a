package asvc

import "github.com/asvc-go/asvc/algebra"

// UpdateCommit returns the commitment that results from replacing
// position j's value with v_j + delta: C' = C * l_j^delta,
// with l_j recomputed on the fly from the update key as
// a_j^(omega^j/n) rather than read from the proving key's l_i list:
// UpdateCommit needs only (C, delta, j, the update key for j, omega, n).
func UpdateCommit[S, P1, P2 any](eng algebra.Engine[S, P1, P2], c Commitment[P1], delta S, j uint64, upkJ UpdateKey[P1], omega S, n uint64) (Commitment[P1], error) {
	lJ, err := lagrangeBasisFromUpdateKey(eng, upkJ, omega, j, n)
	if err != nil {
		return Commitment[P1]{}, err
	}
	cPrime := eng.G1Add(c.C, eng.G1ScalarMul(lJ, delta))
	return Commitment[P1]{C: cPrime}, nil
}

// UpdateProof rolls a proof for position i forward across the same
// edit UpdateCommit applies at position j. When i == j
// the update is W' = W * u_i^delta; when i != j the crux identity
// computes a cross term w_ij = a_j^c1 * a_i^c2 (c1 = 1/(omega^j -
// omega^i), c2 = -c1), lifts it into u_ij = w_ij^(omega^j/n), and
// applies W' = W * u_ij^delta.
func UpdateProof[S, P1, P2 any](eng algebra.Engine[S, P1, P2], proof Proof[P1], delta S, i, j uint64, upkI, upkJ UpdateKey[P1], omega S, n uint64) (Proof[P1], error) {
	if i == j {
		return Proof[P1]{W: eng.G1Add(proof.W, eng.G1ScalarMul(upkI.UI, delta))}, nil
	}

	omegaI := pow(eng, omega, i)
	omegaJ := pow(eng, omega, j)
	c1, err := eng.Inverse(eng.Sub(omegaJ, omegaI))
	if err != nil {
		return Proof[P1]{}, ErrArithmeticFailure
	}
	c2 := eng.Neg(c1)

	wIJ := eng.G1Add(eng.G1ScalarMul(upkJ.AI, c1), eng.G1ScalarMul(upkI.AI, c2))

	nInv, err := eng.Inverse(eng.FromUint64(n))
	if err != nil {
		return Proof[P1]{}, ErrArithmeticFailure
	}
	uIJ := eng.G1ScalarMul(wIJ, eng.Mul(omegaJ, nInv))

	wPrime := eng.G1Add(proof.W, eng.G1ScalarMul(uIJ, delta))
	return Proof[P1]{W: wPrime}, nil
}

// lagrangeBasisFromUpdateKey recomputes l_i = a_i^(omega^i/n) from an
// update key, the shared step UpdateCommit needs.
func lagrangeBasisFromUpdateKey[S, P1, P2 any](eng algebra.Engine[S, P1, P2], upk UpdateKey[P1], omega S, i, n uint64) (P1, error) {
	omegaI := pow(eng, omega, i)
	nInv, err := eng.Inverse(eng.FromUint64(n))
	if err != nil {
		var zero P1
		return zero, ErrArithmeticFailure
	}
	cI := eng.Mul(omegaI, nInv)
	return eng.G1ScalarMul(upk.AI, cI), nil
}
