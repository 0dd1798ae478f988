package ops

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Strategy is the set of primitives the quaternion engines are written against.
type Strategy[T Float] interface {
	Sqrt(x T) T
	Sin(x T) T
	Cos(x T) T
	Tan(x T) T
	Asin(x T) T
	Acos(x T) T
	Atan(x T) T
	Atan2(y, x T) T
	// MulAdd returns a*b + c.
	MulAdd(a, b, c T) T
	// MulSub returns a*b - c.
	MulSub(a, b, c T) T
}

// Native evaluates with package math.
type Native[T Float] struct {
	Fused bool
}

func (Native[T]) Sqrt(x T) T     { return Sqrt(x) }
func (Native[T]) Sin(x T) T      { return Sin(x) }
func (Native[T]) Cos(x T) T      { return Cos(x) }
func (Native[T]) Tan(x T) T      { return Tan(x) }
func (Native[T]) Asin(x T) T     { return Asin(x) }
func (Native[T]) Acos(x T) T     { return Acos(x) }
func (Native[T]) Atan(x T) T     { return Atan(x) }
func (Native[T]) Atan2(y, x T) T { return Atan2(y, x) }

func (n Native[T]) MulAdd(a, b, c T) T {
	if n.Fused {
		return FusedMulAdd(a, b, c)
	}
	return MulAdd(a, b, c)
}

func (n Native[T]) MulSub(a, b, c T) T {
	if n.Fused {
		return FusedMulSub(a, b, c)
	}
	return MulSub(a, b, c)
}

// Approx evaluates transcendental functions with the series approximations.
type Approx[T Float] struct {
	Series Series
	Fused  bool
}

func (a Approx[T]) Sqrt(x T) T     { return SeriesSqrt(x) }
func (a Approx[T]) Sin(x T) T      { return SeriesSin(a.Series, x) }
func (a Approx[T]) Cos(x T) T      { return SeriesCos(a.Series, x) }
func (a Approx[T]) Tan(x T) T      { return SeriesTan(a.Series, x) }
func (a Approx[T]) Asin(x T) T     { return SeriesAsin(a.Series, x) }
func (a Approx[T]) Acos(x T) T     { return SeriesAcos(a.Series, x) }
func (a Approx[T]) Atan(x T) T     { return SeriesAtan(a.Series, x) }
func (a Approx[T]) Atan2(y, x T) T { return SeriesAtan2(a.Series, y, x) }

func (a Approx[T]) MulAdd(x, y, z T) T {
	if a.Fused {
		return FusedMulAdd(x, y, z)
	}
	return MulAdd(x, y, z)
}

func (a Approx[T]) MulSub(x, y, z T) T {
	if a.Fused {
		return FusedMulSub(x, y, z)
	}
	return MulSub(x, y, z)
}

// HasFMA reports whether the CPU executes fused multiply-add in hardware.
// math.FMA is correct either way but slow without it.
func HasFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64":
		return true
	}
	return false
}
