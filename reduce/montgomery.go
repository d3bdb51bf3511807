package reduce

import (
	"github.com/chancehudson/moduli-comparison/bigint"
)

// MontgomeryReducer computes the Montgomery reduction (REDC) for a fixed odd
// modulus, with radix R = 2^k for k the modulus bit length. Values in
// Montgomery form represent x as x * R mod modulus, so that reduction of a
// double-width product needs only masks, shifts and one multiplication.
type MontgomeryReducer struct {
	modulus bigint.BigInt
	bitLen  uint
	radix   bigint.BigInt
	mask    bigint.BigInt
	nPrime  bigint.BigInt
}

// NewMontgomeryReducer creates a new MontgomeryReducer for the given modulus,
// precomputing n' = (R - modulus)^(-1) mod R.
//
// Returns [bigint.ErrDivideByZero] if the modulus is zero, and
// [bigint.ErrNoInverse] if the modulus is even.
func NewMontgomeryReducer(modulus bigint.BigInt) (*MontgomeryReducer, error) {
	if modulus.IsZero() {
		return nil, bigint.ErrDivideByZero
	}

	k := modulus.BitLen()
	radix := bigint.One().Lsh(k)
	rMinusM, _ := radix.Sub(modulus)

	nPrime, err := bigint.ModInverse(rMinusM, radix)
	if err != nil {
		return nil, err
	}
	mask, _ := radix.Sub(bigint.One())

	return &MontgomeryReducer{
		modulus: modulus.Clone(),
		bitLen:  k,
		radix:   radix,
		mask:    mask,
		nPrime:  nPrime,
	}, nil
}

// Modulus returns the modulus of the MontgomeryReducer.
func (r *MontgomeryReducer) Modulus() bigint.BigInt {
	return r.modulus
}

// Radix returns the radix R = 2^k of the MontgomeryReducer.
func (r *MontgomeryReducer) Radix() bigint.BigInt {
	return r.radix
}

// ToMont converts v to Montgomery form, computing (v << k) mod modulus with
// the full naive reduction. This is expensive; it is meant to be called once
// per operand before a sequence of reductions.
func (r *MontgomeryReducer) ToMont(v bigint.BigInt) bigint.BigInt {
	res, _ := v.Lsh(r.bitLen).Mod(r.modulus)
	return res
}

// FromMont converts v back from Montgomery form to the standard residue.
func (r *MontgomeryReducer) FromMont(v bigint.BigInt) bigint.BigInt {
	return r.REDC(v)
}

// REDC reduces a double-width value v, typically the unreduced product of two
// Montgomery-form operands: m = ((v & mask) * n') & mask, then
// t = (v + m * modulus) >> k. By construction t < 2 * modulus, so a single
// conditional subtraction suffices.
func (r *MontgomeryReducer) REDC(v bigint.BigInt) bigint.BigInt {
	m := v.And(r.mask).Mul(r.nPrime).And(r.mask)
	t := v.Add(m.Mul(r.modulus)).Rsh(r.bitLen)
	if t.Cmp(r.modulus) >= 0 {
		t, _ = t.Sub(r.modulus)
	}
	return t
}

// ReduceNaive reduces v by repeated subtraction of the modulus. It is meant
// for values within a small constant multiple of the modulus, such as the sum
// of two already-reduced values.
func (r *MontgomeryReducer) ReduceNaive(v bigint.BigInt) bigint.BigInt {
	res := v
	for res.Cmp(r.modulus) >= 0 {
		res, _ = res.Sub(r.modulus)
	}
	return res
}
