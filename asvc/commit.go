package asvc

import (
	"fmt"

	"github.com/asvc-go/asvc/algebra"
)

// Commit computes C = g1^Phi(tau) = prod_i l_i^{v_i}, a variable-base
// MSM of values against the proving key's Lagrange-basis commitments.
//
// Commit is linear in values and invariant to appending trailing
// zeros: callers may pass fewer than len(pk.LI) values and the rest
// are treated as zero. len(values) must not exceed len(pk.LI).
func Commit[S, P1, P2 any](eng algebra.Engine[S, P1, P2], pk ProvingKey[S, P1, P2], values []S) (Commitment[P1], error) {
	if len(values) == 0 {
		return Commitment[P1]{}, fmt.Errorf("%w: values must be non-empty", ErrInvalidParameter)
	}
	if len(values) > len(pk.LI) {
		return Commitment[P1]{}, fmt.Errorf("%w: %d values exceeds the %d positions this key supports", ErrInvalidParameter, len(values), len(pk.LI))
	}

	padded := values
	if len(values) < len(pk.LI) {
		padded = make([]S, len(pk.LI))
		copy(padded, values)
		zero := eng.Zero()
		for i := len(values); i < len(padded); i++ {
			padded[i] = zero
		}
	}

	c, err := eng.G1MultiExp(pk.LI, padded)
	if err != nil {
		return Commitment[P1]{}, fmt.Errorf("asvc: Commit: %w", err)
	}
	return Commitment[P1]{C: c}, nil
}
