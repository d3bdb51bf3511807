// Package reduce implements Barrett and Montgomery reduction modulo a fixed modulus.
// Both reducers are immutable after construction and safe for concurrent use.
package reduce

import (
	"github.com/chancehudson/moduli-comparison/bigint"
)

// BarrettReducer computes the Barrett reduction.
// It assumes that the inputs are products of two values already reduced
// modulo the modulus, so that they are below modulus^2.
type BarrettReducer struct {
	modulus bigint.BigInt
	bitLen  uint
	mu      bigint.BigInt
}

// NewBarrettReducer creates a new BarrettReducer for the given modulus,
// precomputing mu = floor(2^(2k) / modulus) for k the modulus bit length.
//
// Returns [bigint.ErrDivideByZero] if the modulus is zero.
func NewBarrettReducer(modulus bigint.BigInt) (*BarrettReducer, error) {
	k := modulus.BitLen()
	mu, err := bigint.One().Lsh(2 * k).Div(modulus)
	if err != nil {
		return nil, err
	}

	return &BarrettReducer{
		modulus: modulus.Clone(),
		bitLen:  k,
		mu:      mu,
	}, nil
}

// Modulus returns the modulus of the BarrettReducer.
func (r *BarrettReducer) Modulus() bigint.BigInt {
	return r.modulus
}

// Reduce returns x mod modulus.
//
// The quotient estimate ((x >> k) * mu) >> k may undershoot floor(x/modulus)
// by a small constant, which the trailing subtraction loop corrects.
// Returns [bigint.ErrUnderflow] if x is outside the reducer's input range.
func (r *BarrettReducer) Reduce(x bigint.BigInt) (bigint.BigInt, error) {
	q := x.Rsh(r.bitLen).Mul(r.mu).Rsh(r.bitLen)

	rem, err := x.Sub(q.Mul(r.modulus))
	if err != nil {
		return bigint.Zero(), err
	}
	for rem.Cmp(r.modulus) >= 0 {
		rem, _ = rem.Sub(r.modulus)
	}

	return rem, nil
}
