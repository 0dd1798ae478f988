package geom

import (
	"github.com/binzume/quatmath/calc"
	"github.com/binzume/quatmath/ops"
)

// The engines take the output type first; operand types are inferred:
//
//	q := geom.Mul[float64](geom.Fused, a, b)
//
// Intermediate values are computed in the calculation type resolved by package calc.

func Add[O, A, B ops.Number](m Mode, a Quaternion[A], b Quaternion[B]) Quaternion[O] {
	return binary[O](m, a, b, add[float32], add[float64])
}

func Sub[O, A, B ops.Number](m Mode, a Quaternion[A], b Quaternion[B]) Quaternion[O] {
	return binary[O](m, a, b, sub[float32], sub[float64])
}

// Negate negates all four components. The result is the same rotation.
func Negate[O, A ops.Number](m Mode, q Quaternion[A]) Quaternion[O] {
	return unary[O](m, q, negate[float32], negate[float64])
}

// Scale multiplies each component by s.
func Scale[O, A, S ops.Number](m Mode, q Quaternion[A], s S) Quaternion[O] {
	if calc.Of3[O, A, S]() == calc.Float64 {
		return Convert[O](scale(newEnv[float64](m), Convert[float64](q), float64(s)))
	}
	return Convert[O](scale(newEnv[float32](m), Convert[float32](q), float32(s)))
}

// DivScalar divides each component by s. Division by zero follows float semantics.
func DivScalar[O, A, S ops.Number](m Mode, q Quaternion[A], s S) Quaternion[O] {
	if calc.Of3[O, A, S]() == calc.Float64 {
		return Convert[O](divScalar(Convert[float64](q), float64(s)))
	}
	return Convert[O](divScalar(Convert[float32](q), float32(s)))
}

// Mul returns the Hamilton product a*b.
func Mul[O, A, B ops.Number](m Mode, a Quaternion[A], b Quaternion[B]) Quaternion[O] {
	return binary[O](m, a, b, mul[float32], mul[float64])
}

// Multiplier is a Quaternion or a Scalar.
type Multiplier interface {
	kind() calc.Kind
	mulRight32(e env[float32], a Quaternion[float32]) Quaternion[float32]
	mulRight64(e env[float64], a Quaternion[float64]) Quaternion[float64]
}

// Product multiplies a by r: the Hamilton product when r is a Quaternion, a scalar
// multiply when r is a Scalar.
func Product[O, A ops.Number](m Mode, a Quaternion[A], r Multiplier) Quaternion[O] {
	if calc.Resolve(calc.KindOf[O](), calc.KindOf[A](), r.kind()) == calc.Float64 {
		return Convert[O](r.mulRight64(newEnv[float64](m), Convert[float64](a)))
	}
	return Convert[O](r.mulRight32(newEnv[float32](m), Convert[float32](a)))
}

func Conjugate[O, A ops.Number](m Mode, q Quaternion[A]) Quaternion[O] {
	return unary[O](m, q, conjugate[float32], conjugate[float64])
}

func Dot[O, A, B ops.Number](m Mode, a Quaternion[A], b Quaternion[B]) O {
	if calc.Of3[O, A, B]() == calc.Float64 {
		return O(dot(newEnv[float64](m), Convert[float64](a), Convert[float64](b)))
	}
	return O(dot(newEnv[float32](m), Convert[float32](a), Convert[float32](b)))
}

func SquaredNorm[O, A ops.Number](m Mode, q Quaternion[A]) O {
	return reduce[O](m, q, squaredNorm[float32], squaredNorm[float64])
}

func Norm[O, A ops.Number](m Mode, q Quaternion[A]) O {
	return reduce[O](m, q, norm[float32], norm[float64])
}

// Inverse returns conjugate(q) divided by Norm(q) twice.
func Inverse[O, A ops.Number](m Mode, q Quaternion[A]) Quaternion[O] {
	return unary[O](m, q, inverse[float32], inverse[float64])
}

// Unit returns q / Norm(q). A zero quaternion yields NaN components.
func Unit[O, A ops.Number](m Mode, q Quaternion[A]) Quaternion[O] {
	return unary[O](m, q, unit[float32], unit[float64])
}

// UnitAssign normalizes q in place.
func UnitAssign[T ops.Number](m Mode, q *Quaternion[T]) {
	*q = Unit[T](m, *q)
}

// Rotate returns v rotated by q, computed as q*v*conjugate(q). q should be a unit
// quaternion.
func Rotate[O, A, V ops.Number](m Mode, q Quaternion[A], v Vector3[V]) Vector3[O] {
	if calc.Of3[O, A, V]() == calc.Float64 {
		r := rotate(newEnv[float64](m), Convert[float64](q), Vector3[float64]{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)})
		return Vector3[O]{X: O(r.X), Y: O(r.Y), Z: O(r.Z)}
	}
	r := rotate(newEnv[float32](m), Convert[float32](q), Vector3[float32]{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)})
	return Vector3[O]{X: O(r.X), Y: O(r.Y), Z: O(r.Z)}
}

func add[C ops.Float](_ env[C], a, b Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
}

func sub[C ops.Float](_ env[C], a, b Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W}
}

func negate[C ops.Float](_ env[C], q Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

func conjugate[C ops.Float](_ env[C], q Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func scale[C ops.Float](_ env[C], q Quaternion[C], s C) Quaternion[C] {
	return Quaternion[C]{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

func divScalar[C ops.Float](q Quaternion[C], s C) Quaternion[C] {
	return Quaternion[C]{X: q.X / s, Y: q.Y / s, Z: q.Z / s, W: q.W / s}
}

func mul[C ops.Float](e env[C], a, b Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{
		X: e.MulAdd(a.X, b.W, e.MulAdd(a.W, b.X, e.MulSub(a.Y, b.Z, a.Z*b.Y))), // i
		Y: e.MulAdd(a.Y, b.W, e.MulAdd(a.W, b.Y, e.MulSub(a.Z, b.X, a.X*b.Z))), // j
		Z: e.MulAdd(a.Z, b.W, e.MulAdd(a.W, b.Z, e.MulSub(a.X, b.Y, a.Y*b.X))), // k
		W: e.MulSub(a.W, b.W, e.MulAdd(a.X, b.X, e.MulAdd(a.Y, b.Y, a.Z*b.Z))), // 1
	}
}

func dot[C ops.Float](e env[C], a, b Quaternion[C]) C {
	return e.MulAdd(a.X, b.X, e.MulAdd(a.Y, b.Y, e.MulAdd(a.Z, b.Z, a.W*b.W)))
}

func squaredNorm[C ops.Float](e env[C], q Quaternion[C]) C {
	return dot(e, q, q)
}

func norm[C ops.Float](e env[C], q Quaternion[C]) C {
	return e.Sqrt(squaredNorm(e, q))
}

func inverse[C ops.Float](e env[C], q Quaternion[C]) Quaternion[C] {
	n := norm(e, q)
	c := conjugate(e, q)
	if e.PreferMultiplies {
		r := 1 / n
		return scale(e, scale(e, c, r), r)
	}
	return divScalar(divScalar(c, n), n)
}

func unit[C ops.Float](e env[C], q Quaternion[C]) Quaternion[C] {
	n := norm(e, q)
	if e.PreferMultiplies {
		return scale(e, q, 1/n)
	}
	return divScalar(q, n)
}

func rotate[C ops.Float](e env[C], q Quaternion[C], v Vector3[C]) Vector3[C] {
	p := Quaternion[C]{X: v.X, Y: v.Y, Z: v.Z}
	r := mul(e, mul(e, q, p), conjugate(e, q))
	return Vector3[C]{X: r.X, Y: r.Y, Z: r.Z}
}
