package bls12381

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// g1FixedBaseMSM and g2FixedBaseMSM are KeyGen's hot path: one
// fixed-base batch scalar multiplication per group, sized to the
// evaluation domain.
func g1FixedBaseMSM(base G1, scalars []Scalar) ([]G1, error) {
	scratch := make([]Scalar, len(scalars))
	copy(scratch, scalars)
	for i := range scratch {
		scratch[i].FromMont()
	}
	return bls12381.BatchScalarMultiplicationG1(&base, scratch), nil
}

func g2FixedBaseMSM(base G2, scalars []Scalar) ([]G2, error) {
	scratch := make([]Scalar, len(scalars))
	copy(scratch, scalars)
	for i := range scratch {
		scratch[i].FromMont()
	}
	return bls12381.BatchScalarMultiplicationG2(&base, scratch), nil
}
