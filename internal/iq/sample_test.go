package iq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func genSample(t *rapid.T, label string) Sample {
	return Sample{
		I: rapid.Float64Range(-10, 10).Draw(t, label+".i"),
		Q: rapid.Float64Range(-10, 10).Draw(t, label+".q"),
	}
}

// Invariant 2: (a*b)*c == a*(b*c) within 1e-5.
func TestMul_Associative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := genSample(rt, "a")
		b := genSample(rt, "b")
		c := genSample(rt, "c")

		lhs := a.Mul(b).Mul(c)
		rhs := a.Mul(b.Mul(c))
		assert.InDelta(rt, lhs.I, rhs.I, 1e-5)
		assert.InDelta(rt, lhs.Q, rhs.Q, 1e-5)
	})
}

// Invariant 2: z*conj(z) == (|z|^2, 0).
func TestMulConj_IsMagnitudeSquared(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		z := genSample(rt, "z")
		got := z.Mul(z.Conj())
		want := z.Magnitude() * z.Magnitude()
		assert.InDelta(rt, want, got.I, 1e-6)
		assert.InDelta(rt, 0, got.Q, 1e-6)
	})
}

func TestNormalize_ZeroIsZero(t *testing.T) {
	assert.Equal(t, Zero, Sample{I: 1e-12, Q: -1e-12}.Normalize())
}

func TestNormalize_UnitMagnitude(t *testing.T) {
	n := Sample{I: 3, Q: 4}.Normalize()
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-9)
}
