package bls12381

import (
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// domainImpl adapts gnark-crypto's fft.Domain to algebra.Domain[Scalar].
type domainImpl struct {
	d *fft.Domain
}

func (dm *domainImpl) Cardinality() uint64 { return dm.d.Cardinality }

func (dm *domainImpl) Generator() Scalar { return dm.d.Generator }

func (dm *domainImpl) GeneratorInv() Scalar { return dm.d.GeneratorInv }

// FFTInverse recovers values' monomial coefficients in natural,
// increasing-power order. fft.Domain.FFTInverse with fft.DIF decimation
// leaves its output permuted in bit-reversed order; an explicit
// fft.BitReverse pass afterward restores natural order, the same
// two-step sequence gnark's plonk setup code uses to canonicalize its
// selector polynomials.
func (dm *domainImpl) FFTInverse(values []Scalar) {
	dm.d.FFTInverse(values, fft.DIF)
	fft.BitReverse(values)
}

func multiExpConfig() ecc.MultiExpConfig {
	return ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}
}
