package geom

import (
	"github.com/binzume/quatmath/calc"
	"github.com/binzume/quatmath/ops"
)

// column-major matrix
type Matrix4[T ops.Number] [16]T

func NewMatrix4[T ops.Number]() Matrix4[T] {
	return Matrix4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewRotationMatrix4FromQuaternion returns the rotation of the unit quaternion q.
func NewRotationMatrix4FromQuaternion[O, T ops.Number](m Mode, q Quaternion[T]) Matrix4[O] {
	var r [16]float64
	if calc.Of2[O, T]() == calc.Float64 {
		r = rotationMatrix(newEnv[float64](m), Convert[float64](q))
	} else {
		r32 := rotationMatrix(newEnv[float32](m), Convert[float32](q))
		for i, v := range r32 {
			r[i] = float64(v)
		}
	}
	var mat Matrix4[O]
	for i, v := range r {
		mat[i] = O(v)
	}
	return mat
}

func rotationMatrix[C ops.Float](e env[C], q Quaternion[C]) [16]C {
	var (
		x = q.X
		y = q.Y
		z = q.Z
		w = q.W
	)
	return [16]C{
		1 - 2*e.MulAdd(y, y, z*z), 2 * e.MulAdd(x, y, z*w), 2 * e.MulSub(x, z, y*w), 0,
		2 * e.MulSub(x, y, z*w), 1 - 2*e.MulAdd(x, x, z*z), 2 * e.MulAdd(y, z, x*w), 0,
		2 * e.MulAdd(x, z, y*w), 2 * e.MulSub(y, z, x*w), 1 - 2*e.MulAdd(x, x, y*y), 0,
		0, 0, 0, 1,
	}
}

// Mul returns mat * a.
func (mat Matrix4[T]) Mul(a Matrix4[T]) Matrix4[T] {
	var r Matrix4[T]
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var s T
			for k := 0; k < 4; k++ {
				s += mat[k*4+row] * a[c*4+k]
			}
			r[c*4+row] = s
		}
	}
	return r
}

func (mat Matrix4[T]) ApplyTo(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		mat[0]*v.X + mat[4]*v.Y + mat[8]*v.Z + mat[12],
		mat[1]*v.X + mat[5]*v.Y + mat[9]*v.Z + mat[13],
		mat[2]*v.X + mat[6]*v.Y + mat[10]*v.Z + mat[14],
	}
}
