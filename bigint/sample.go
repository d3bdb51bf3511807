package bigint

// Sampler is a source of uniformly random uint64 values.
// The samplers in the csprng package implement it.
type Sampler interface {
	Sample() uint64
}

// RandomBelow samples a value uniformly from [0, upper), using rejection
// sampling: random limbs are drawn up to upper's bit length, the excess bits
// of the top limb are masked off, and the draw is repeated whenever the
// result is not strictly below upper.
//
// Panics if upper is zero.
func RandomBelow(upper BigInt, s Sampler) BigInt {
	if upper.IsZero() {
		panic("bigint: upper bound must be non-zero")
	}

	bitLen := upper.BitLen()
	n := (bitLen + 63) / 64
	mask := ^uint64(0) >> (64*n - bitLen)

	for {
		limbs := make([]uint64, n)
		for i := range limbs {
			limbs[i] = s.Sample()
		}
		limbs[n-1] &= mask

		r := BigInt{limbs: trim(limbs)}
		if r.Cmp(upper) < 0 {
			return r
		}
	}
}
