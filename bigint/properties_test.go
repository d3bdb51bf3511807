package bigint_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/chancehudson/moduli-comparison/bigint"
)

func genBigInt() gopter.Gen {
	return gen.SliceOfN(4, gen.UInt64()).Map(func(limbs []uint64) bigint.BigInt {
		return bigint.NewFromLimbs(limbs)
	})
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("parse(string(x)) == x", prop.ForAll(
		func(x bigint.BigInt) bool {
			y, err := bigint.NewFromString(x.String())
			return err == nil && x.Equal(y)
		},
		genBigInt(),
	))

	properties.Property("fromBig(big(x)) == x", prop.ForAll(
		func(x bigint.BigInt) bool {
			return bigint.NewFromBig(x.Big()).Equal(x)
		},
		genBigInt(),
	))

	properties.Property("every result is in canonical form", prop.ForAll(
		func(x, y bigint.BigInt) bool {
			for _, z := range []bigint.BigInt{x.Add(y), x.Mul(y), x.And(y), x.Or(y), x.Xor(y)} {
				limbs := z.Limbs()
				if len(limbs) == 0 {
					return false
				}
				if len(limbs) > 1 && limbs[len(limbs)-1] == 0 {
					return false
				}
			}
			return true
		},
		genBigInt(),
		genBigInt(),
	))

	properties.Property("cmp is a total order consistent with big.Int", prop.ForAll(
		func(x, y bigint.BigInt) bool {
			return x.Cmp(y) == x.Big().Cmp(y.Big()) && x.Cmp(y) == -y.Cmp(x)
		},
		genBigInt(),
		genBigInt(),
	))

	properties.Property("(x << s) >> s == x", prop.ForAll(
		func(x bigint.BigInt, s uint16) bool {
			shift := uint(s) % 512
			return x.Lsh(shift).Rsh(shift).Equal(x)
		},
		genBigInt(),
		gen.UInt16(),
	))

	properties.Property("x >> s == 0 for s >= bitlen(x)", prop.ForAll(
		func(x bigint.BigInt) bool {
			return x.Rsh(x.BitLen()).IsZero()
		},
		genBigInt(),
	))

	properties.Property("random_below(x) < x", prop.ForAll(
		func(x bigint.BigInt) bool {
			if x.IsZero() {
				return true
			}
			r := bigint.RandomBelow(x, sampler)
			return r.Cmp(x) < 0 && r.BitLen() <= x.BitLen()
		},
		genBigInt(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
