// Package bls12381 is the only package in this module that imports a
// concrete curve: it implements algebra.Engine[fr.Element, G1Affine,
// G2Affine] over github.com/consensys/gnark-crypto's bls12-381
// package, one of the curve families gnark generates per-curve
// KZG/PLONK backends for.
package bls12381

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/asvc-go/asvc/algebra"
)

// Scalar, G1, G2 alias the concrete curve types this backend
// instantiates algebra.Engine with.
type (
	Scalar = fr.Element
	G1     = bls12381.G1Affine
	G2     = bls12381.G2Affine
)

// Engine implements algebra.Engine[Scalar, G1, G2]. It is stateless
// and safe for concurrent use, same as gnark-crypto's own package-level
// curve functions.
type Engine struct{}

var _ algebra.Engine[Scalar, G1, G2] = Engine{}

func (Engine) Zero() Scalar { return Scalar{} }

func (Engine) One() Scalar {
	var z Scalar
	z.SetOne()
	return z
}

func (Engine) Add(a, b Scalar) Scalar {
	var z Scalar
	z.Add(&a, &b)
	return z
}

func (Engine) Sub(a, b Scalar) Scalar {
	var z Scalar
	z.Sub(&a, &b)
	return z
}

func (Engine) Mul(a, b Scalar) Scalar {
	var z Scalar
	z.Mul(&a, &b)
	return z
}

func (Engine) Neg(a Scalar) Scalar {
	var z Scalar
	z.Neg(&a)
	return z
}

func (Engine) Inverse(a Scalar) (Scalar, error) {
	if a.IsZero() {
		return Scalar{}, fmt.Errorf("bls12381: inverse of zero")
	}
	var z Scalar
	z.Inverse(&a)
	return z, nil
}

func (Engine) Equal(a, b Scalar) bool { return a.Equal(&b) }

func (Engine) FromUint64(v uint64) Scalar {
	var z Scalar
	z.SetUint64(v)
	return z
}

func (Engine) Random(r io.Reader) (Scalar, error) {
	k, err := rand.Int(r, fr.Modulus())
	if err != nil {
		return Scalar{}, err
	}
	var z Scalar
	z.SetBigInt(k)
	return z, nil
}

func (Engine) G1Identity() G1 { return G1{} }

func (Engine) G1Generator() G1 {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func (Engine) G1Add(a, b G1) G1 {
	var aJac, bJac bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	var out G1
	out.FromJacobian(&aJac)
	return out
}

func (Engine) G1Neg(a G1) G1 {
	var out G1
	out.Neg(&a)
	return out
}

func (Engine) G1ScalarMul(a G1, s Scalar) G1 {
	var out G1
	out.ScalarMultiplication(&a, s.BigInt(new(big.Int)))
	return out
}

func (Engine) G1MultiExp(points []G1, scalars []Scalar) (G1, error) {
	var out G1
	if _, err := out.MultiExp(points, scalars, multiExpConfig()); err != nil {
		return G1{}, err
	}
	return out, nil
}

func (Engine) G1FixedBaseMultiExp(base G1, scalars []Scalar) ([]G1, error) {
	return g1FixedBaseMSM(base, scalars)
}

func (Engine) G2Generator() G2 {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

func (Engine) G2Add(a, b G2) G2 {
	var aJac, bJac bls12381.G2Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	var out G2
	out.FromJacobian(&aJac)
	return out
}

func (Engine) G2Neg(a G2) G2 {
	var out G2
	out.Neg(&a)
	return out
}

func (Engine) G2ScalarMul(a G2, s Scalar) G2 {
	var out G2
	out.ScalarMultiplication(&a, s.BigInt(new(big.Int)))
	return out
}

func (Engine) G2MultiExp(points []G2, scalars []Scalar) (G2, error) {
	var out G2
	if _, err := out.MultiExp(points, scalars, multiExpConfig()); err != nil {
		return G2{}, err
	}
	return out, nil
}

func (Engine) G2FixedBaseMultiExp(base G2, scalars []Scalar) ([]G2, error) {
	return g2FixedBaseMSM(base, scalars)
}

func (Engine) PairingCheck(a []G1, b []G2) (bool, error) {
	return bls12381.PairingCheck(a, b)
}

func (Engine) NewDomain(n uint64) (algebra.Domain[Scalar], error) {
	return &domainImpl{d: fft.NewDomain(n, fft.WithoutPrecompute())}, nil
}
