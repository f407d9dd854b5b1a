package asvc

import "github.com/asvc-go/asvc/algebra"

// pow computes base^exp by square-and-multiply. Field does not expose
// an exponentiation method because every exponent the core needs is
// either a domain index (small, used here) or a multi-scalar-
// multiplication coefficient (handled by Engine.G1MultiExp /
// G2MultiExp directly).
func pow[S any](f algebra.Field[S], base S, exp uint64) S {
	result := f.One()
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = f.Mul(result, b)
		}
		b = f.Mul(b, b)
		exp >>= 1
	}
	return result
}
