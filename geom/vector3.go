package geom

import (
	"fmt"
	"math"

	"github.com/binzume/quatmath/ops"
)

type Vector3[T ops.Number] struct {
	X T
	Y T
	Z T
}

func NewVector3[T ops.Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

func NewVector3FromArray[T ops.Number](arr [3]T) Vector3[T] {
	return Vector3[T]{X: arr[0], Y: arr[1], Z: arr[2]}
}

// NewVector3FromSlice copies up to three values; missing components are zero.
func NewVector3FromSlice[T ops.Number](arr []T) Vector3[T] {
	var v Vector3[T]
	for i := 0; i < len(arr) && i < 3; i++ {
		v.Set(i, arr[i])
	}
	return v
}

func (v Vector3[T]) Get(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("geom: Vector3 index out of range: %d", i))
}

func (v *Vector3[T]) Set(i int, e T) {
	switch i {
	case 0:
		v.X = e
	case 1:
		v.Y = e
	case 2:
		v.Z = e
	default:
		panic(fmt.Sprintf("geom: Vector3 index out of range: %d", i))
	}
}

func (v Vector3[T]) Add(v2 Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + v2.X, Y: v.Y + v2.Y, Z: v.Z + v2.Z}
}

func (v Vector3[T]) Sub(v2 Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - v2.X, Y: v.Y - v2.Y, Z: v.Z - v2.Z}
}

func (v Vector3[T]) Dot(v2 Vector3[T]) T {
	return v.X*v2.X + v.Y*v2.Y + v.Z*v2.Z
}

func (v Vector3[T]) Cross(v2 Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*v2.Z - v.Z*v2.Y,
		Y: v.Z*v2.X - v.X*v2.Z,
		Z: v.X*v2.Y - v.Y*v2.X,
	}
}

func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3[T]) Len() T {
	return T(math.Sqrt(float64(v.LenSqr())))
}

func (v Vector3[T]) LenSqr() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3[T]) ToArray() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("{ %v, %v, %v }", v.X, v.Y, v.Z)
}

// Vector4 is the per-component weight for LerpVec.
type Vector4[T ops.Number] struct {
	X T
	Y T
	Z T
	W T
}

func NewVector4[T ops.Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

func (v Vector4[T]) Get(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("geom: Vector4 index out of range: %d", i))
}

func (v Vector4[T]) ToArray() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}
