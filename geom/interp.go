package geom

import (
	"github.com/binzume/quatmath/calc"
	"github.com/binzume/quatmath/ops"
)

// Lerp returns a + (b-a)*t for each component. The result is not normalized and t
// outside [0, 1] extrapolates.
func Lerp[O, A, B, S ops.Number](m Mode, a Quaternion[A], b Quaternion[B], t S) Quaternion[O] {
	if calc.Of4[O, A, B, S]() == calc.Float64 {
		return Convert[O](lerp(newEnv[float64](m), Convert[float64](a), Convert[float64](b), float64(t)))
	}
	return Convert[O](lerp(newEnv[float32](m), Convert[float32](a), Convert[float32](b), float32(t)))
}

// LerpVec is Lerp with a separate weight per component.
func LerpVec[O, A, B, S ops.Number](m Mode, a Quaternion[A], b Quaternion[B], t Vector4[S]) Quaternion[O] {
	if calc.Of4[O, A, B, S]() == calc.Float64 {
		w := Vector4[float64]{X: float64(t.X), Y: float64(t.Y), Z: float64(t.Z), W: float64(t.W)}
		return Convert[O](lerpVec(newEnv[float64](m), Convert[float64](a), Convert[float64](b), w))
	}
	w := Vector4[float32]{X: float32(t.X), Y: float32(t.Y), Z: float32(t.Z), W: float32(t.W)}
	return Convert[O](lerpVec(newEnv[float32](m), Convert[float32](a), Convert[float32](b), w))
}

// Slerp interpolates along the great arc from a to b. It does not take the shorter
// arc when dot(a, b) < 0; negate b first for that. When a and b are parallel the
// result is Lerp. When they are antiparallel they are the same rotation and the
// result is a.
func Slerp[O, A, B, S ops.Number](m Mode, a Quaternion[A], b Quaternion[B], t S) Quaternion[O] {
	if calc.Of4[O, A, B, S]() == calc.Float64 {
		return Convert[O](slerp(newEnv[float64](m), Convert[float64](a), Convert[float64](b), float64(t)))
	}
	return Convert[O](slerp(newEnv[float32](m), Convert[float32](a), Convert[float32](b), float32(t)))
}

func lerp[C ops.Float](e env[C], a, b Quaternion[C], t C) Quaternion[C] {
	return lerpVec(e, a, b, Vector4[C]{X: t, Y: t, Z: t, W: t})
}

func lerpVec[C ops.Float](e env[C], a, b Quaternion[C], t Vector4[C]) Quaternion[C] {
	return Quaternion[C]{
		X: e.MulAdd(b.X-a.X, t.X, a.X),
		Y: e.MulAdd(b.Y-a.Y, t.Y, a.Y),
		Z: e.MulAdd(b.Z-a.Z, t.Z, a.Z),
		W: e.MulAdd(b.W-a.W, t.W, a.W),
	}
}

func slerp[C ops.Float](e env[C], a, b Quaternion[C], t C) Quaternion[C] {
	cosOmega := clamp(dot(e, a, b), -1, 1)
	omega := e.Acos(cosOmega)
	sinOmega := e.Sin(omega)
	if abs(sinOmega) < epsilon[C]() {
		if cosOmega < 0 {
			return a
		}
		return lerp(e, a, b, t)
	}
	wa := e.Sin((1-t)*omega) / sinOmega
	wb := e.Sin(t*omega) / sinOmega
	return Quaternion[C]{
		X: e.MulAdd(a.X, wa, b.X*wb),
		Y: e.MulAdd(a.Y, wa, b.Y*wb),
		Z: e.MulAdd(a.Z, wa, b.Z*wb),
		W: e.MulAdd(a.W, wa, b.W*wb),
	}
}

func clamp[C ops.Float](v, lo, hi C) C {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs[C ops.Float](v C) C {
	if v < 0 {
		return -v
	}
	return v
}
