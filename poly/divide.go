package poly

import (
	"errors"

	"github.com/asvc-go/asvc/algebra"
)

// ErrZeroDivisor is returned by DivideWithQuotientAndRemainder when d
// is the zero polynomial.
var ErrZeroDivisor = errors.New("poly: division by the zero polynomial")

// DivideWithQuotientAndRemainder divides p by d and returns (q, r)
// such that p = q*d + r with deg(r) < deg(d). It implements schoolbook
// long division; d's leading coefficient must be invertible (it always
// is over a field, unless d is the zero polynomial).
func DivideWithQuotientAndRemainder[S any](f algebra.Field[S], p, d Polynomial[S]) (q, r Polynomial[S], err error) {
	dDeg := Degree(f, d)
	if dDeg < 0 {
		return nil, nil, ErrZeroDivisor
	}

	remainder := make(Polynomial[S], len(p))
	copy(remainder, p)
	remainder = trim(f, remainder)

	pDeg := Degree(f, remainder)
	if pDeg < dDeg {
		return Polynomial[S]{}, remainder, nil
	}

	leadInv, err := f.Inverse(d[dDeg])
	if err != nil {
		return nil, nil, ErrZeroDivisor
	}

	quotient := make(Polynomial[S], pDeg-dDeg+1)
	for i := range quotient {
		quotient[i] = f.Zero()
	}

	for {
		rDeg := Degree(f, remainder)
		if rDeg < dDeg {
			break
		}
		coeff := f.Mul(remainder[rDeg], leadInv)
		shift := rDeg - dDeg
		quotient[shift] = coeff

		for i := 0; i <= dDeg; i++ {
			remainder[shift+i] = f.Sub(remainder[shift+i], f.Mul(coeff, d[i]))
		}
		remainder = trim(f, remainder)
	}

	return trim(f, quotient), remainder, nil
}
