// Package ops provides stateless arithmetic and trigonometric operations that can be
// bound to an explicit type or left to deduce it from their arguments.
package ops

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

type Float = constraints.Float

type Unary[T Number] func(x T) T
type Binary[T Number] func(a, b T) T
type Ternary[T Number] func(a, b, c T) T

// IsFloat reports whether T is a floating point type.
func IsFloat[T Number]() bool {
	h := 0.5
	return T(h) != 0
}

// As converts v to C.
func As[C, T Number](v T) C {
	return C(v)
}

// Apply1 converts x into C and calls f.
func Apply1[C, A Number](f Unary[C], x A) C {
	return f(C(x))
}

// Apply2 converts both operands into C and calls f.
func Apply2[C, A, B Number](f Binary[C], a A, b B) C {
	return f(C(a), C(b))
}

func Apply3[C, A, B, D Number](f Ternary[C], a A, b B, c D) C {
	return f(C(a), C(b), C(c))
}

func Add[T Number](a, b T) T { return a + b }

func Sub[T Number](a, b T) T { return a - b }

func Mul[T Number](a, b T) T { return a * b }

func Div[T Number](a, b T) T { return a / b }

func Neg[T Number](x T) T { return -x }

// Mod returns the remainder of a/b with the sign of a.
func Mod[T Number](a, b T) T {
	if IsFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}
	return a - (a/b)*b
}

func Sqrt[T Number](x T) T { return T(math.Sqrt(float64(x))) }

func Floor[T Number](x T) T {
	if IsFloat[T]() {
		return T(math.Floor(float64(x)))
	}
	return x
}

func Ceil[T Number](x T) T {
	if IsFloat[T]() {
		return T(math.Ceil(float64(x)))
	}
	return x
}

func Trunc[T Number](x T) T {
	if IsFloat[T]() {
		return T(math.Trunc(float64(x)))
	}
	return x
}

func Sin[T Number](x T) T { return T(math.Sin(float64(x))) }

func Cos[T Number](x T) T { return T(math.Cos(float64(x))) }

func Tan[T Number](x T) T { return T(math.Tan(float64(x))) }

func Asin[T Number](x T) T { return T(math.Asin(float64(x))) }

func Acos[T Number](x T) T { return T(math.Acos(float64(x))) }

func Atan[T Number](x T) T { return T(math.Atan(float64(x))) }

func Atan2[T Number](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// MulAdd returns a*b + c with two roundings. The conversion keeps the compiler from
// fusing the expression on architectures that have FMA.
func MulAdd[T Number](a, b, c T) T { return T(a*b) + c }

// MulSub returns a*b - c with two roundings.
func MulSub[T Number](a, b, c T) T { return T(a*b) - c }

// FusedMulAdd returns a*b + c computed with a single rounding.
// Integer operands fall back to MulAdd.
func FusedMulAdd[T Number](a, b, c T) T {
	if IsFloat[T]() {
		return T(math.FMA(float64(a), float64(b), float64(c)))
	}
	return a*b + c
}

func FusedMulSub[T Number](a, b, c T) T {
	if IsFloat[T]() {
		return T(math.FMA(float64(a), float64(b), -float64(c)))
	}
	return a*b - c
}
