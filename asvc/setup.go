package asvc

import (
	"crypto/rand"
	"fmt"
	"runtime"
	"time"

	"github.com/asvc-go/asvc/algebra"
	"github.com/asvc-go/asvc/internal/logger"
	"golang.org/x/sync/errgroup"
)

// KeyGen samples a trapdoor tau and derives Parameters for vectors of
// length n. The vector length the returned Parameters
// actually commits to is domain.Cardinality(), the smallest size the
// engine's evaluation domain supports that is >= n, not n itself when
// the engine only supports, say, power-of-two domains.
//
// KeyGen's trapdoor and scalar scratch are scoped to this call and
// best-effort zeroised before every return path (success and
// failure); Go gives no hard guarantee a stack-allocated value is
// actually overwritten before the memory is reused, so this is a
// mitigation, not a guarantee.
func KeyGen[S, P1, P2 any](eng algebra.Engine[S, P1, P2], n uint64, opts ...Option[S, P1, P2]) (*Parameters[S, P1, P2], error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: n must be positive", ErrInvalidParameter)
	}

	cfg := keyGenConfig[S, P1, P2]{randSource: rand.Reader, logger: logger.Logger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	domain, err := eng.NewDomain(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDomainUnavailable, err)
	}
	nPrime := domain.Cardinality()
	omega := domain.Generator()

	tau, err := eng.Random(cfg.randSource)
	if err != nil {
		return nil, fmt.Errorf("%w: sampling tau: %v", ErrRandomnessFailure, err)
	}
	defer func() { tau = eng.Zero() }()

	var g1 P1
	var g2 P2
	if cfg.g1 != nil {
		g1, g2 = cfg.g1.g1, cfg.g1.g2
	} else {
		g1Scalar, err := eng.Random(cfg.randSource)
		if err != nil {
			return nil, fmt.Errorf("%w: sampling g1: %v", ErrRandomnessFailure, err)
		}
		g2Scalar, err := eng.Random(cfg.randSource)
		if err != nil {
			return nil, fmt.Errorf("%w: sampling g2: %v", ErrRandomnessFailure, err)
		}
		g1 = eng.G1ScalarMul(eng.G1Generator(), g1Scalar)
		g2 = eng.G2ScalarMul(eng.G2Generator(), g2Scalar)
	}

	// curs = [1, tau, tau^2, ..., tau^n']
	curs := make([]S, nPrime+1)
	curs[0] = eng.One()
	for k := uint64(1); k <= nPrime; k++ {
		curs[k] = eng.Mul(curs[k-1], tau)
	}
	defer zeroizeScalars(eng, curs)

	// g1_tau_i and g2_tau_i are independent fixed-base MSMs over the
	// same scalar powers; run them concurrently.
	var g1TauI []P1
	var g2TauI []P2
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		g1TauI, err = eng.G1FixedBaseMultiExp(g1, curs)
		return err
	})
	g.Go(func() error {
		var err error
		g2TauI, err = eng.G2FixedBaseMultiExp(g2, curs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("asvc: deriving SRS: %w", err)
	}

	// a = g1^A(tau) = g1^(tau^n') * g1^-1
	a := eng.G1Add(g1TauI[nPrime], eng.G1Neg(g1))

	nInv, err := eng.Inverse(eng.FromUint64(nPrime))
	if err != nil {
		return nil, fmt.Errorf("%w: domain size not invertible in the scalar field", ErrArithmeticFailure)
	}

	updateKeys := make([]UpdateKey[P1], nPrime)
	lI := make([]P1, nPrime)

	workers := runtime.NumCPU()
	if uint64(workers) > nPrime {
		workers = int(nPrime)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (nPrime + uint64(workers) - 1) / uint64(workers)

	kg := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := lo + chunk
		if hi > nPrime {
			hi = nPrime
		}
		if lo >= hi {
			continue
		}
		kg.Go(func() error {
			for i := lo; i < hi; i++ {
				omegaI := pow(eng, omega, i)
				dI, err := eng.Inverse(eng.Sub(tau, omegaI))
				if err != nil {
					panic("asvc: KeyGen sampled tau inside the evaluation domain (measure-zero event)")
				}

				aI := eng.G1ScalarMul(a, dI)
				cI := eng.Mul(omegaI, nInv)
				lIVal := eng.G1ScalarMul(aI, cI)
				uI := eng.G1ScalarMul(eng.G1Add(lIVal, eng.G1Neg(g1)), dI)

				updateKeys[i] = UpdateKey[P1]{AI: aI, UI: uI}
				lI[i] = lIVal
			}
			return nil
		})
	}
	if err := kg.Wait(); err != nil {
		return nil, fmt.Errorf("asvc: deriving update keys: %w", err)
	}

	cfg.logger.Debug().
		Uint64("n", nPrime).
		Dur("elapsed", time.Since(start)).
		Msg("asvc: KeyGen complete")

	return &Parameters[S, P1, P2]{
		ProvingKey: ProvingKey[S, P1, P2]{
			G1TauI:     g1TauI,
			LI:         lI,
			UpdateKeys: updateKeys,
		},
		VerifyingKey: VerifyingKey[S, P1, P2]{
			G1TauI: g1TauI,
			G2TauI: g2TauI,
			A:      a,
		},
	}, nil
}

func zeroizeScalars[S, P1, P2 any](eng algebra.Engine[S, P1, P2], s []S) {
	zero := eng.Zero()
	for i := range s {
		s[i] = zero
	}
}
