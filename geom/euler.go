package geom

import (
	"fmt"
	"math"

	"github.com/binzume/quatmath/calc"
	"github.com/binzume/quatmath/ops"
)

// EulerAngles holds pitch (X), yaw (Y) and roll (Z). The rotation is composed as
// Rz(roll) * Ry(yaw) * Rx(pitch).
type EulerAngles[T ops.Number] struct {
	Vector3[T]
}

func NewEuler[T ops.Number](pitch, yaw, roll T) EulerAngles[T] {
	return EulerAngles[T]{Vector3: Vector3[T]{X: pitch, Y: yaw, Z: roll}}
}

func (v EulerAngles[T]) Pitch() T { return v.X }
func (v EulerAngles[T]) Yaw() T   { return v.Y }
func (v EulerAngles[T]) Roll() T  { return v.Z }

func (v EulerAngles[T]) String() string {
	return fmt.Sprintf("{ %v, %v, %v }", v.X, v.Y, v.Z)
}

// ToQuaternion converts radians to a unit quaternion.
func (v EulerAngles[T]) ToQuaternion() Quaternion[T] {
	return QuaternionFromEuler[T](Plain, v, nil)
}

// NewEulerFromQuaternion returns the angles of q in radians.
func NewEulerFromQuaternion[T ops.Number](q Quaternion[T]) EulerAngles[T] {
	return EulerFromQuaternion[T](Plain, q, nil)
}

// EulerOption controls the Euler conversions. A nil option means radians, a
// normalized result and the default epsilon.
type EulerOption struct {
	// Degrees interprets inputs (FromEuler) or produces outputs (ToEuler) in degrees.
	Degrees bool
	// Raw skips normalizing the quaternion built from Euler angles.
	Raw bool
	// Epsilon is the distance from the pole below which yaw is treated as gimbal
	// locked. Zero selects 1e-3 for float32 and 1e-6 for float64 calculations.
	Epsilon float64
}

var defaultEulerOption = EulerOption{}

func QuaternionFromEuler[O, T ops.Number](m Mode, e EulerAngles[T], opt *EulerOption) Quaternion[O] {
	return QuaternionFromEulerXYZ[O](m, e.X, e.Y, e.Z, opt)
}

func QuaternionFromEulerXYZ[O, T ops.Number](m Mode, x, y, z T, opt *EulerOption) Quaternion[O] {
	if opt == nil {
		opt = &defaultEulerOption
	}
	if calc.Of2[O, T]() == calc.Float64 {
		return Convert[O](fromEuler(newEnv[float64](m), float64(x), float64(y), float64(z), opt))
	}
	return Convert[O](fromEuler(newEnv[float32](m), float32(x), float32(y), float32(z), opt))
}

func EulerFromQuaternion[O, T ops.Number](m Mode, q Quaternion[T], opt *EulerOption) EulerAngles[O] {
	if opt == nil {
		opt = &defaultEulerOption
	}
	if calc.Of2[O, T]() == calc.Float64 {
		r := toEuler(newEnv[float64](m), Convert[float64](q), opt)
		return NewEuler(O(r.X), O(r.Y), O(r.Z))
	}
	r := toEuler(newEnv[float32](m), Convert[float32](q), opt)
	return NewEuler(O(r.X), O(r.Y), O(r.Z))
}

func fromEuler[C ops.Float](e env[C], x, y, z C, opt *EulerOption) Quaternion[C] {
	if opt.Degrees {
		x, y, z = x*math.Pi/180, y*math.Pi/180, z*math.Pi/180
	}
	sx, cx := e.Sin(x/2), e.Cos(x/2)
	sy, cy := e.Sin(y/2), e.Cos(y/2)
	sz, cz := e.Sin(z/2), e.Cos(z/2)

	q := Quaternion[C]{
		X: e.MulSub(sx, cy*cz, cx*sy*sz),
		Y: e.MulAdd(cx, sy*cz, sx*cy*sz),
		Z: e.MulSub(cx, cy*sz, sx*sy*cz),
		W: e.MulAdd(cx, cy*cz, sx*sy*sz),
	}
	if opt.Raw {
		return q
	}
	return unit(e, q)
}

func toEuler[C ops.Float](e env[C], q Quaternion[C], opt *EulerOption) EulerAngles[C] {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	eps := C(opt.Epsilon)
	if eps <= 0 {
		eps = epsilon[C]()
	}

	sinYaw := 2 * e.MulSub(w, y, x*z)
	yaw := e.Asin(clamp(sinYaw, -1, 1))

	var pitch, roll C
	if math.Pi/2-abs(yaw) > eps {
		pitch = e.Atan2(2*e.MulAdd(w, x, y*z), e.MulSub(w, w, e.MulAdd(x, x, e.MulSub(y, y, z*z))))
		roll = e.Atan2(2*e.MulAdd(x, y, w*z), e.MulSub(x, x, e.MulSub(y, y, e.MulSub(w, w, z*z))))
	} else {
		// pitch and roll rotate about the same axis at the pole; all of it goes to roll.
		roll = e.Atan2(2*e.MulSub(y, z, w*x), 2*e.MulAdd(x, z, w*y))
		if sinYaw < 0 {
			if roll > 0 {
				roll -= math.Pi
			} else {
				roll += math.Pi
			}
		}
	}

	if opt.Degrees {
		return NewEuler(pitch*180/math.Pi, yaw*180/math.Pi, roll*180/math.Pi)
	}
	return NewEuler(pitch, yaw, roll)
}
