package geom

import (
	"github.com/binzume/quatmath/calc"
	"github.com/binzume/quatmath/ops"
)

// Mode selects how the engines evaluate. It does not change results at infinite
// precision.
type Mode struct {
	// Fused prefers fused multiply-add over separate multiply and add.
	Fused bool
	// Const evaluates sqrt and trigonometry with the series approximations instead of
	// package math, so results do not depend on the platform's math implementation.
	Const bool
	// Series configures Const. The zero value means ops.DefaultSeries.
	Series ops.Series
	// PreferMultiplies replaces the divisions of Inverse and Unit by one reciprocal and
	// multiplications.
	PreferMultiplies bool
}

var (
	Plain      = Mode{}
	Fused      = Mode{Fused: true}
	Const      = Mode{Const: true, Series: ops.DefaultSeries}
	ConstFused = Mode{Fused: true, Const: true, Series: ops.DefaultSeries}
)

func strategy[C ops.Float](m Mode) ops.Strategy[C] {
	if m.Const {
		s := m.Series
		if s == (ops.Series{}) {
			s = ops.DefaultSeries
		}
		return ops.Approx[C]{Series: s, Fused: m.Fused}
	}
	return ops.Native[C]{Fused: m.Fused}
}

// env is what the kernels compute with: the mode and the strategy for C.
type env[C ops.Float] struct {
	Mode
	ops.Strategy[C]
}

func newEnv[C ops.Float](m Mode) env[C] {
	return env[C]{Mode: m, Strategy: strategy[C](m)}
}

// epsilon is the near-zero threshold for the calculation type.
func epsilon[C ops.Float]() C {
	if calc.KindOf[C]() == calc.Float64 {
		return 1e-6
	}
	return 1e-3
}

func unary[O, A ops.Number](m Mode, a Quaternion[A],
	f32 func(env[float32], Quaternion[float32]) Quaternion[float32],
	f64 func(env[float64], Quaternion[float64]) Quaternion[float64]) Quaternion[O] {
	if calc.Of2[O, A]() == calc.Float64 {
		return Convert[O](f64(newEnv[float64](m), Convert[float64](a)))
	}
	return Convert[O](f32(newEnv[float32](m), Convert[float32](a)))
}

func binary[O, A, B ops.Number](m Mode, a Quaternion[A], b Quaternion[B],
	f32 func(env[float32], Quaternion[float32], Quaternion[float32]) Quaternion[float32],
	f64 func(env[float64], Quaternion[float64], Quaternion[float64]) Quaternion[float64]) Quaternion[O] {
	if calc.Of3[O, A, B]() == calc.Float64 {
		return Convert[O](f64(newEnv[float64](m), Convert[float64](a), Convert[float64](b)))
	}
	return Convert[O](f32(newEnv[float32](m), Convert[float32](a), Convert[float32](b)))
}

func reduce[O, A ops.Number](m Mode, a Quaternion[A],
	f32 func(env[float32], Quaternion[float32]) float32,
	f64 func(env[float64], Quaternion[float64]) float64) O {
	if calc.Of2[O, A]() == calc.Float64 {
		return O(f64(newEnv[float64](m), Convert[float64](a)))
	}
	return O(f32(newEnv[float32](m), Convert[float32](a)))
}
