package asvc

import (
	"github.com/asvc-go/asvc/algebra"
	"github.com/asvc-go/asvc/poly"
)

// vanishingPolynomial builds A_I(x) = prod_{i in idx} (x - omega^i) by
// iterated multiplication of linear factors. The
// same construction is shared by ProvePos, VerifyPos, and
// AggregateProofs.
func vanishingPolynomial[S any](f algebra.Field[S], omega S, idx IndexSet) poly.Polynomial[S] {
	a := poly.Polynomial[S]{f.One()}
	for _, i := range idx.Slice() {
		root := pow(f, omega, i)
		a = poly.Mul(f, a, poly.LinearFactor(f, root))
	}
	return a
}

// lagrangeCoefficientAt returns v / A_I'(omega^i): divide A_I by
// (x - omega^i), evaluate the quotient at omega^i to get A_I'(omega^i),
// then divide v by it. Passing v = f.One() gives 1/A_I'(omega^i)
// directly, the coefficient AggregateProofs needs.
func lagrangeCoefficientAt[S any](f algebra.Field[S], aI poly.Polynomial[S], omega, omegaI, v S) (S, error) {
	quotient, _, err := poly.DivideWithQuotientAndRemainder(f, aI, poly.LinearFactor(f, omegaI))
	if err != nil {
		return f.Zero(), ErrArithmeticFailure
	}
	derivative := poly.Evaluate(f, quotient, omegaI)
	derivInv, err := f.Inverse(derivative)
	if err != nil {
		return f.Zero(), ErrArithmeticFailure
	}
	return f.Mul(v, derivInv), nil
}

// interpolationPolynomial builds R_I(x) = sum_j v_j * L_{I,j}(x),
// where L_{I,j}(x) = A_I(x) / ((x - omega^ij) * A_I'(omega^ij)).
// values[j] must be the value at idx.Slice()[j]; callers whose own
// indices/values pairing isn't already in idx.Slice()'s ascending
// order must re-key values into that order first.
func interpolationPolynomial[S any](f algebra.Field[S], omega S, idx IndexSet, values []S, aI poly.Polynomial[S]) (poly.Polynomial[S], error) {
	r := poly.Polynomial[S]{}
	for j, i := range idx.Slice() {
		omegaI := pow(f, omega, i)
		lFactor, _, err := poly.DivideWithQuotientAndRemainder(f, aI, poly.LinearFactor(f, omegaI))
		if err != nil {
			return nil, ErrArithmeticFailure
		}
		coeff, err := lagrangeCoefficientAt(f, aI, omega, omegaI, values[j])
		if err != nil {
			return nil, err
		}
		r = poly.Add(f, r, poly.ScalarMul(f, lFactor, coeff))
	}
	return r, nil
}
