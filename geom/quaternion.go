package geom

import (
	"fmt"

	"github.com/binzume/quatmath/calc"
	"github.com/binzume/quatmath/ops"
)

// Quaternion is (X, Y, Z) imaginary and W real. The zero value is not a rotation;
// use NewQuaternion or Identity.
type Quaternion[T ops.Number] struct {
	X T
	Y T
	Z T
	W T
}

func NewQuaternion[T ops.Number](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, W: w}
}

func Identity[T ops.Number]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

func NewQuaternionFromArray[T ops.Number](arr [4]T) Quaternion[T] {
	return Quaternion[T]{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
}

// Convert converts each component to O. Float to integer conversion truncates.
func Convert[O, T ops.Number](q Quaternion[T]) Quaternion[O] {
	return Quaternion[O]{X: O(q.X), Y: O(q.Y), Z: O(q.Z), W: O(q.W)}
}

func (q Quaternion[T]) Get(i int) T {
	switch i {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	case 3:
		return q.W
	}
	panic(fmt.Sprintf("geom: Quaternion index out of range: %d", i))
}

func (q *Quaternion[T]) Set(i int, v T) {
	switch i {
	case 0:
		q.X = v
	case 1:
		q.Y = v
	case 2:
		q.Z = v
	case 3:
		q.W = v
	default:
		panic(fmt.Sprintf("geom: Quaternion index out of range: %d", i))
	}
}

func (q Quaternion[T]) ToArray() [4]T {
	return [4]T{q.X, q.Y, q.Z, q.W}
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("{ %v, %v, %v, %v }", q.X, q.Y, q.Z, q.W)
}

func (q Quaternion[T]) Add(q2 Quaternion[T]) Quaternion[T] {
	return Add[T](Plain, q, q2)
}

func (q Quaternion[T]) Sub(q2 Quaternion[T]) Quaternion[T] {
	return Sub[T](Plain, q, q2)
}

func (q Quaternion[T]) Negate() Quaternion[T] {
	return Negate[T](Plain, q)
}

func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Scale[T](Plain, q, s)
}

// Mul returns the Hamilton product q*q2.
func (q Quaternion[T]) Mul(q2 Quaternion[T]) Quaternion[T] {
	return Mul[T](Plain, q, q2)
}

func (q Quaternion[T]) Dot(q2 Quaternion[T]) T {
	return Dot[T](Plain, q, q2)
}

func (q Quaternion[T]) Len() T {
	return Norm[T](Plain, q)
}

func (q Quaternion[T]) LenSqr() T {
	return SquaredNorm[T](Plain, q)
}

func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Conjugate[T](Plain, q)
}

func (q Quaternion[T]) Inverse() Quaternion[T] {
	return Inverse[T](Plain, q)
}

// Normalize scales q to unit length in place. A zero quaternion becomes identity.
func (q *Quaternion[T]) Normalize() *Quaternion[T] {
	if *q == (Quaternion[T]{}) {
		*q = Identity[T]()
		return q
	}
	UnitAssign(Plain, q)
	return q
}

// ApplyTo rotates v by q.
func (q Quaternion[T]) ApplyTo(v Vector3[T]) Vector3[T] {
	return Rotate[T](Plain, q, v)
}

func (q Quaternion[T]) kind() calc.Kind {
	return calc.KindOf[T]()
}

func (q Quaternion[T]) mulRight32(e env[float32], a Quaternion[float32]) Quaternion[float32] {
	return mul(e, a, Convert[float32](q))
}

func (q Quaternion[T]) mulRight64(e env[float64], a Quaternion[float64]) Quaternion[float64] {
	return mul(e, a, Convert[float64](q))
}

// Scalar wraps a scalar right hand side for Product.
type Scalar[T ops.Number] struct {
	V T
}

func S[T ops.Number](v T) Scalar[T] {
	return Scalar[T]{V: v}
}

func (s Scalar[T]) kind() calc.Kind {
	return calc.KindOf[T]()
}

func (s Scalar[T]) mulRight32(e env[float32], a Quaternion[float32]) Quaternion[float32] {
	return scale(e, a, float32(s.V))
}

func (s Scalar[T]) mulRight64(e env[float64], a Quaternion[float64]) Quaternion[float64] {
	return scale(e, a, float64(s.V))
}

// QuaternionRef is a view into storage owned elsewhere. It must not outlive that
// storage. Engines take owning quaternions; use Load and Store to cross over.
type QuaternionRef[T ops.Number] struct {
	x, y, z, w *T
}

func RefOf[T ops.Number](q *Quaternion[T]) QuaternionRef[T] {
	return QuaternionRef[T]{x: &q.X, y: &q.Y, z: &q.Z, w: &q.W}
}

func RefArray[T ops.Number](a *[4]T) QuaternionRef[T] {
	return QuaternionRef[T]{x: &a[0], y: &a[1], z: &a[2], w: &a[3]}
}

// RefSlice references s[0:4]. It panics if s has fewer than 4 elements.
func RefSlice[T ops.Number](s []T) QuaternionRef[T] {
	_ = s[3]
	return QuaternionRef[T]{x: &s[0], y: &s[1], z: &s[2], w: &s[3]}
}

func (r QuaternionRef[T]) Load() Quaternion[T] {
	return Quaternion[T]{X: *r.x, Y: *r.y, Z: *r.z, W: *r.w}
}

// Store writes q through the view.
func (r QuaternionRef[T]) Store(q Quaternion[T]) {
	*r.x, *r.y, *r.z, *r.w = q.X, q.Y, q.Z, q.W
}

func (r QuaternionRef[T]) String() string {
	return r.Load().String()
}
