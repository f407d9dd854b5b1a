// Package poly implements dense univariate polynomial arithmetic
// generic over any algebra.Field.
package poly

import "github.com/asvc-go/asvc/algebra"

// Polynomial is a dense univariate polynomial in coefficient
// (monomial) order: Polynomial[S]{c0, c1, c2, ...} represents
// c0 + c1*x + c2*x^2 + ...
type Polynomial[S any] []S

// Degree returns the polynomial's degree, or -1 for the zero
// polynomial. f is used only to test coefficients for zero, so that
// trailing zero coefficients introduced by arithmetic are trimmed
// consistently with the field's own notion of zero.
func Degree[S any](f algebra.Field[S], p Polynomial[S]) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !f.Equal(p[i], f.Zero()) {
			return i
		}
	}
	return -1
}

// trim drops trailing zero coefficients.
func trim[S any](f algebra.Field[S], p Polynomial[S]) Polynomial[S] {
	d := Degree(f, p)
	if d < 0 {
		return Polynomial[S]{}
	}
	return p[:d+1]
}

// Add returns a+b.
func Add[S any](f algebra.Field[S], a, b Polynomial[S]) Polynomial[S] {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial[S], n)
	for i := 0; i < n; i++ {
		var av, bv S
		if i < len(a) {
			av = a[i]
		} else {
			av = f.Zero()
		}
		if i < len(b) {
			bv = b[i]
		} else {
			bv = f.Zero()
		}
		out[i] = f.Add(av, bv)
	}
	return trim(f, out)
}

// ScalarMul returns c*p.
func ScalarMul[S any](f algebra.Field[S], p Polynomial[S], c S) Polynomial[S] {
	out := make(Polynomial[S], len(p))
	for i := range p {
		out[i] = f.Mul(p[i], c)
	}
	return trim(f, out)
}

// Mul returns a*b via schoolbook convolution. ProvePos/VerifyPos only
// ever multiply polynomials with O(|I|) terms (the index-set linear
// factors), so the O(n*m) cost here never dominates KeyGen's MSM work.
func Mul[S any](f algebra.Field[S], a, b Polynomial[S]) Polynomial[S] {
	if len(a) == 0 || len(b) == 0 {
		return Polynomial[S]{}
	}
	out := make(Polynomial[S], len(a)+len(b)-1)
	for i := range out {
		out[i] = f.Zero()
	}
	for i, av := range a {
		if f.Equal(av, f.Zero()) {
			continue
		}
		for j, bv := range b {
			out[i+j] = f.Add(out[i+j], f.Mul(av, bv))
		}
	}
	return trim(f, out)
}

// LinearFactor returns the degree-1 polynomial (x - root).
func LinearFactor[S any](f algebra.Field[S], root S) Polynomial[S] {
	return Polynomial[S]{f.Neg(root), f.One()}
}

// Evaluate computes p(x) via Horner's method.
func Evaluate[S any](f algebra.Field[S], p Polynomial[S], x S) S {
	if len(p) == 0 {
		return f.Zero()
	}
	acc := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		acc = f.Add(f.Mul(acc, x), p[i])
	}
	return acc
}
