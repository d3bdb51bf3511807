package bigint

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// Add returns x + y.
func (x BigInt) Add(y BigInt) BigInt {
	n := max(len(x.limbs), len(y.limbs))
	res := make([]uint64, n, n+1)

	var carry uint64
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(x.limbs) {
			a = x.limbs[i]
		}
		if i < len(y.limbs) {
			b = y.limbs[i]
		}
		res[i], carry = bits.Add64(a, b, carry)
	}
	if carry != 0 {
		res = append(res, carry)
	}

	return BigInt{limbs: trim(res)}
}

// Sub returns x - y.
//
// Returns [ErrUnderflow] if x < y.
func (x BigInt) Sub(y BigInt) (BigInt, error) {
	if x.Cmp(y) < 0 {
		return Zero(), ErrUnderflow
	}

	res := make([]uint64, len(x.limbs))
	var borrow uint64
	for i := 0; i < len(x.limbs); i++ {
		var b uint64
		if i < len(y.limbs) {
			b = y.limbs[i]
		}
		res[i], borrow = bits.Sub64(x.limbs[i], b, borrow)
	}

	return BigInt{limbs: trim(res)}, nil
}

// Mul returns x * y, using schoolbook multiplication.
func (x BigInt) Mul(y BigInt) BigInt {
	m, n := len(x.limbs), len(y.limbs)
	res := make([]uint64, m+n)

	for i := 0; i < m; i++ {
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(x.limbs[i], y.limbs[j])
			var c uint64
			lo, c = bits.Add64(lo, res[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			res[i+j] = lo
			carry = hi
		}
		res[i+n] = carry
	}

	return BigInt{limbs: trim(res)}
}

// Div returns the quotient of x / y, using binary long division.
//
// Returns [ErrDivideByZero] if y is zero.
func (x BigInt) Div(y BigInt) (BigInt, error) {
	if y.IsZero() {
		return Zero(), ErrDivideByZero
	}
	if x.Cmp(y) < 0 {
		return Zero(), nil
	}
	if x.Equal(y) {
		return One(), nil
	}

	rem := x.Clone()
	shifted := y.Clone()

	// Double the divisor up to the largest power-of-two multiple below x.
	shift := uint(0)
	for {
		next := shifted.Lsh(1)
		if next.Cmp(rem) > 0 {
			break
		}
		shifted = next
		shift++
	}

	quot := bitset.New(shift + 1)
	for {
		if rem.Cmp(shifted) >= 0 {
			rem, _ = rem.Sub(shifted)
			quot.Set(shift)
		}
		if shift == 0 {
			break
		}
		shifted = shifted.Rsh(1)
		shift--
	}

	return NewFromLimbs(quot.Bytes()), nil
}

// Mod returns x mod m, by subtracting doubled multiples of m.
// This is independent of [BigInt.Div] and serves as the naive reduction baseline.
//
// Returns [ErrDivideByZero] if m is zero.
func (x BigInt) Mod(m BigInt) (BigInt, error) {
	if m.IsZero() {
		return Zero(), ErrDivideByZero
	}
	if x.Cmp(m) < 0 {
		return x.Clone(), nil
	}

	// Collect m, 2m, 4m, ... up to the largest multiple below x.
	var multiples []BigInt
	cur := m.Clone()
	for cur.Cmp(x) <= 0 {
		multiples = append(multiples, cur)
		next := cur.Add(cur)
		if next.Cmp(x) > 0 {
			break
		}
		cur = next
	}

	res := x.Clone()
	for i := len(multiples) - 1; i >= 0; i-- {
		if multiples[i].Cmp(res) <= 0 {
			res, _ = res.Sub(multiples[i])
		}
	}

	return res, nil
}

// And returns the bitwise AND of x and y.
func (x BigInt) And(y BigInt) BigInt {
	n := min(len(x.limbs), len(y.limbs))
	res := make([]uint64, n)
	for i := 0; i < n; i++ {
		res[i] = x.limbs[i] & y.limbs[i]
	}
	return BigInt{limbs: trim(res)}
}

// Or returns the bitwise OR of x and y.
func (x BigInt) Or(y BigInt) BigInt {
	n := max(len(x.limbs), len(y.limbs))
	res := make([]uint64, n)
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(x.limbs) {
			a = x.limbs[i]
		}
		if i < len(y.limbs) {
			b = y.limbs[i]
		}
		res[i] = a | b
	}
	return BigInt{limbs: trim(res)}
}

// Xor returns the bitwise XOR of x and y.
func (x BigInt) Xor(y BigInt) BigInt {
	n := max(len(x.limbs), len(y.limbs))
	res := make([]uint64, n)
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(x.limbs) {
			a = x.limbs[i]
		}
		if i < len(y.limbs) {
			b = y.limbs[i]
		}
		res[i] = a ^ b
	}
	return BigInt{limbs: trim(res)}
}

// Lsh returns x << s.
func (x BigInt) Lsh(s uint) BigInt {
	if x.IsZero() {
		return Zero()
	}

	wordShift := int(s / 64)
	bitShift := s % 64

	res := make([]uint64, len(x.limbs)+wordShift+1)
	if bitShift == 0 {
		copy(res[wordShift:], x.limbs)
	} else {
		for i, l := range x.limbs {
			res[i+wordShift] |= l << bitShift
			res[i+wordShift+1] |= l >> (64 - bitShift)
		}
	}

	return BigInt{limbs: trim(res)}
}

// Rsh returns x >> s.
func (x BigInt) Rsh(s uint) BigInt {
	if x.IsZero() {
		return Zero()
	}

	wordShift := int(s / 64)
	bitShift := s % 64

	if wordShift >= len(x.limbs) {
		return Zero()
	}

	rem := x.limbs[wordShift:]
	res := make([]uint64, len(rem))
	if bitShift == 0 {
		copy(res, rem)
	} else {
		for i := range rem {
			res[i] = rem[i] >> bitShift
			if i+1 < len(rem) {
				res[i] |= rem[i+1] << (64 - bitShift)
			}
		}
	}

	return BigInt{limbs: trim(res)}
}
