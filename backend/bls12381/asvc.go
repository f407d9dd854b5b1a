package bls12381

import (
	"github.com/asvc-go/asvc/asvc"
)

// This file fixes asvc's generic operations to this package's concrete
// Scalar/G1/G2 types, the same role gnark-crypto's per-curve packages
// (ecc/bls12-381, ecc/bls12-377, ...) play for its curve-generic
// algorithms: Go cannot infer a generic function's type parameters from
// a non-generic argument that merely implements a parameterized
// interface, so callers working against one curve would otherwise have
// to spell out asvc.KeyGen[Scalar, G1, G2](Engine{}, n) at every call
// site.

// Parameters, ProvingKey, VerifyingKey, UpdateKey, Commitment, and
// Proof alias asvc's generic types at this package's curve.
type (
	Parameters   = asvc.Parameters[Scalar, G1, G2]
	ProvingKey   = asvc.ProvingKey[Scalar, G1, G2]
	VerifyingKey = asvc.VerifyingKey[Scalar, G1, G2]
	UpdateKey    = asvc.UpdateKey[G1]
	Commitment   = asvc.Commitment[G1]
	Proof        = asvc.Proof[G1]
	Option       = asvc.Option[Scalar, G1, G2]
)

var (
	WithLogger       = asvc.WithLogger[Scalar, G1, G2]
	WithRandomSource = asvc.WithRandomSource[Scalar, G1, G2]
	WithGenerators   = asvc.WithGenerators[Scalar, G1, G2]
)

func KeyGen(n uint64, opts ...Option) (*Parameters, error) {
	return asvc.KeyGen[Scalar, G1, G2](Engine{}, n, opts...)
}

func Commit(pk ProvingKey, values []Scalar) (Commitment, error) {
	return asvc.Commit[Scalar, G1, G2](Engine{}, pk, values)
}

func ProvePos(pk ProvingKey, values []Scalar, indices []uint64) (Proof, error) {
	return asvc.ProvePos[Scalar, G1, G2](Engine{}, pk, values, indices)
}

func VerifyPos(vk VerifyingKey, c Commitment, values []Scalar, indices []uint64, proof Proof, omega Scalar) (bool, error) {
	return asvc.VerifyPos[Scalar, G1, G2](Engine{}, vk, c, values, indices, proof, omega)
}

func VerifyUpk(vk VerifyingKey, i uint64, upk UpdateKey, omega Scalar) (bool, error) {
	return asvc.VerifyUpk[Scalar, G1, G2](Engine{}, vk, i, upk, omega)
}

func UpdateCommit(c Commitment, delta Scalar, j uint64, upkJ UpdateKey, omega Scalar, n uint64) (Commitment, error) {
	return asvc.UpdateCommit[Scalar, G1, G2](Engine{}, c, delta, j, upkJ, omega, n)
}

func UpdateProof(proof Proof, delta Scalar, i, j uint64, upkI, upkJ UpdateKey, omega Scalar, n uint64) (Proof, error) {
	return asvc.UpdateProof[Scalar, G1, G2](Engine{}, proof, delta, i, j, upkI, upkJ, omega, n)
}

func AggregateProofs(indices []uint64, proofs []Proof, omega Scalar, n uint64) (Proof, error) {
	return asvc.AggregateProofs[Scalar, G1, G2](Engine{}, indices, proofs, omega, n)
}
