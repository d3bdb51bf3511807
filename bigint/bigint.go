// Package bigint implements arbitrary precision unsigned integers over 64-bit limbs.
// All operations are done naively.
package bigint

import (
	"math/big"
	"math/bits"
)

// BigInt is an arbitrary precision unsigned integer.
//
// The limb slice is little-endian and canonical: it is never empty, and it has
// no trailing zero limb except for the single-limb representation of zero.
// A BigInt is immutable once produced; every operation returns a new value.
type BigInt struct {
	limbs []uint64
}

// New creates a new BigInt from a uint64.
func New(v uint64) BigInt {
	return BigInt{limbs: []uint64{v}}
}

// Zero returns the canonical zero.
func Zero() BigInt {
	return New(0)
}

// One returns one.
func One() BigInt {
	return New(1)
}

// NewFromString creates a new BigInt from a decimal numeral string.
//
// Returns [ErrParse] if s is not a non-negative decimal numeral.
func NewFromString(s string) (BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return Zero(), ErrParse
	}
	return NewFromBig(v), nil
}

// NewFromBig creates a new BigInt from a non-negative [big.Int].
//
// Panics if v is negative.
func NewFromBig(v *big.Int) BigInt {
	if v.Sign() < 0 {
		panic("bigint: negative value")
	}

	b := v.Bytes()
	limbs := make([]uint64, max((len(b)+7)/8, 1))
	for i := 0; i < len(b); i++ {
		j := len(b) - 1 - i
		limbs[j/8] |= uint64(b[i]) << (8 * (j % 8))
	}
	return BigInt{limbs: trim(limbs)}
}

// NewFromLimbs creates a new BigInt from a little-endian limb slice.
// The slice is copied and trimmed to canonical form.
func NewFromLimbs(limbs []uint64) BigInt {
	if len(limbs) == 0 {
		return Zero()
	}
	c := make([]uint64, len(limbs))
	copy(c, limbs)
	return BigInt{limbs: trim(c)}
}

// Big returns x as a [big.Int].
func (x BigInt) Big() *big.Int {
	b := make([]byte, 8*len(x.limbs))
	for i, l := range x.limbs {
		for j := 0; j < 8; j++ {
			b[len(b)-1-(8*i+j)] = byte(l >> (8 * j))
		}
	}
	return new(big.Int).SetBytes(b)
}

// String returns the decimal representation of x.
func (x BigInt) String() string {
	return x.Big().String()
}

// Limbs returns a copy of the limbs of x, in little-endian order.
func (x BigInt) Limbs() []uint64 {
	c := make([]uint64, len(x.limbs))
	copy(c, x.limbs)
	return c
}

// Clone returns an independent copy of x.
func (x BigInt) Clone() BigInt {
	return BigInt{limbs: x.Limbs()}
}

// IsZero returns true if x is zero.
func (x BigInt) IsZero() bool {
	return len(x.limbs) == 1 && x.limbs[0] == 0
}

// BitLen returns the number of bits needed to represent x.
// The bit length of zero is 0.
func (x BigInt) BitLen() uint {
	if x.IsZero() {
		return 0
	}
	top := x.limbs[len(x.limbs)-1]
	return 64*uint(len(x.limbs)-1) + 64 - uint(bits.LeadingZeros64(top))
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, and +1 if x > y.
//
// Both operands are canonical, so a longer limb slice means a larger value.
func (x BigInt) Cmp(y BigInt) int {
	if len(x.limbs) != len(y.limbs) {
		if len(x.limbs) < len(y.limbs) {
			return -1
		}
		return 1
	}
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal returns true if x == y.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}

// trim removes trailing zero limbs, leaving a single zero limb for zero.
func trim(limbs []uint64) []uint64 {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}
