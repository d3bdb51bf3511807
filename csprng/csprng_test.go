package csprng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chancehudson/moduli-comparison/csprng"
)

func TestUniformSampler(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithSeed([]byte("seed"))
		s1 := csprng.NewUniformSamplerWithSeed([]byte("seed"))
		for i := 0; i < 1024; i++ {
			assert.Equal(t, s0.Sample(), s1.Sample())
		}
	})

	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewUniformSampler()
		for _, N := range []uint64{1, 2, 3, 1 << 32, 1<<64 - 1} {
			for i := 0; i < 1024; i++ {
				assert.Less(t, s.SampleN(N), N)
			}
		}
	})

	t.Run("Read", func(t *testing.T) {
		s := csprng.NewUniformSampler()
		buf := make([]byte, 133)
		n, err := s.Read(buf)
		assert.NoError(t, err)
		assert.Equal(t, len(buf), n)
	})
}

func TestStreamSampler(t *testing.T) {
	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewStreamSampler()
		for _, N := range []uint64{1, 2, 3, 1 << 32, 1<<64 - 1} {
			for i := 0; i < 1024; i++ {
				assert.Less(t, s.SampleN(N), N)
			}
		}
	})

	t.Run("Read", func(t *testing.T) {
		s := csprng.NewStreamSampler()
		buf := make([]byte, 133)
		n, err := s.Read(buf)
		assert.NoError(t, err)
		assert.Equal(t, len(buf), n)
	})
}
