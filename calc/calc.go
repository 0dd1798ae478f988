// Package calc picks the floating point type intermediate arithmetic is performed in.
//
// The calculation type of an operation is the widest floating point type among its
// operand and output types, or Default when none of them is a float. Operand types
// that cannot be converted are rejected at compile time by the ops.Number constraint,
// so resolution itself never fails.
package calc

import (
	"unsafe"

	"github.com/binzume/quatmath/ops"
)

type Kind int

const (
	Integer Kind = iota
	Float32
	Float64
)

// Default is used when no operand is a floating point type.
const Default = Float32

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "unknown"
}

func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

func KindOf[T ops.Number]() Kind {
	if !ops.IsFloat[T]() {
		return Integer
	}
	var z T
	if unsafe.Sizeof(z) > 4 {
		return Float64
	}
	return Float32
}

// Resolve returns the widest floating point kind in kinds.
func Resolve(kinds ...Kind) Kind {
	r := Integer
	for _, k := range kinds {
		if k > r {
			r = k
		}
	}
	if !r.IsFloat() {
		return Default
	}
	return r
}

func Of1[O ops.Number]() Kind {
	return Resolve(KindOf[O]())
}

func Of2[O, A ops.Number]() Kind {
	return Resolve(KindOf[O](), KindOf[A]())
}

func Of3[O, A, B ops.Number]() Kind {
	return Resolve(KindOf[O](), KindOf[A](), KindOf[B]())
}

func Of4[O, A, B, C ops.Number]() Kind {
	return Resolve(KindOf[O](), KindOf[A](), KindOf[B](), KindOf[C]())
}
