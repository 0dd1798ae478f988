package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	a := NewQuaternion[float64](0, 0, 0, 1)
	b := NewQuaternion[float64](0, 0, 1, 0)

	assert.Equal(t, a, Lerp[float64](Plain, a, b, 0))
	assert.Equal(t, b, Lerp[float64](Plain, a, b, 1))

	mid := Lerp[float64](Fused, a, b, 0.5)
	assert.Equal(t, NewQuaternion[float64](0, 0, 0.5, 0.5), mid)
	// not normalized
	assert.InDelta(t, math.Sqrt(0.5), Norm[float64](Plain, mid), 1e-12)

	// extrapolates
	assert.Equal(t, NewQuaternion[float64](0, 0, 2, -1), Lerp[float64](Plain, a, b, 2))

	w := NewVector4[float32](0, 1, 0, 1)
	c := NewQuaternion[float32](1, 2, 3, 4)
	d := NewQuaternion[float32](5, 6, 7, 8)
	assert.Equal(t, NewQuaternion[float32](1, 6, 3, 8), LerpVec[float32](Plain, c, d, w))
}

func TestSlerp(t *testing.T) {
	qs := randomQuaternions(16)
	for name, m := range testModes {
		for i := 0; i+1 < len(qs); i++ {
			a := Unit[float64](Plain, qs[i])
			b := Unit[float64](Plain, qs[i+1])
			assertQuaternionNear(t, a, Slerp[float64](m, a, b, 0), 1e-9, name)
			assertQuaternionNear(t, b, Slerp[float64](m, a, b, 1), 1e-9, name)
			assert.InDelta(t, 1, Norm[float64](m, Slerp[float64](m, a, b, 0.3)), 1e-9, name)
		}
	}

	// halfway between identity and 90 degrees about Z is 45 degrees about Z
	a := Identity[float64]()
	b := QuaternionFromEulerXYZ[float64](Plain, 0.0, 0.0, 90.0, &EulerOption{Degrees: true})
	want := QuaternionFromEulerXYZ[float64](Plain, 0.0, 0.0, 45.0, &EulerOption{Degrees: true})
	assertQuaternionNear(t, want, Slerp[float64](Plain, a, b, 0.5), 1e-12)
	assertQuaternionNear(t, want, Slerp[float64](Const, a, b, 0.5), 1e-9)

	// float32 operands with a float64 output are computed in float64
	got := Slerp[float64](Plain, Convert[float32](a), Convert[float32](b), 0.5)
	assertQuaternionNear(t, want, got, 1e-6)
}

func TestSlerpParallel(t *testing.T) {
	a := Unit[float64](Plain, NewQuaternion[float64](1, 2, 3, 4))
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		r := Slerp[float64](Plain, a, a, tt)
		assert.False(t, math.IsNaN(r.X) || math.IsNaN(r.W), "slerp(a, a, %v) = %v", tt, r)
		assertQuaternionNear(t, a, r, 1e-12)
	}

	a32 := Unit[float32](Plain, NewQuaternion[float32](0.1, 0.2, 0.3, 0.9))
	r32 := Slerp[float32](Plain, a32, a32, 0.5)
	assertQuaternionNear(t, a32, r32, 1e-6)
}

func TestSlerpAntiparallel(t *testing.T) {
	a := Unit[float64](Plain, NewQuaternion[float64](1, 2, 3, 4))
	b := Negate[float64](Plain, a)
	for name, m := range testModes {
		for _, tt := range []float64{0, 0.5, 1} {
			r := Slerp[float64](m, a, b, tt)
			assert.InDelta(t, 1, Norm[float64](m, r), 1e-9, "%s t=%v: %v", name, tt, r)
			assert.True(t, sameRotation(a, r, 1e-9), "%s t=%v: %v", name, tt, r)
		}
	}

	a32 := Unit[float32](Plain, NewQuaternion[float32](0.1, 0.2, 0.3, 0.9))
	r32 := Slerp[float32](Const, a32, Negate[float32](Plain, a32), 0.5)
	assert.InDelta(t, 1, Norm[float32](Plain, r32), 1e-5)
}
