package geom

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/binzume/quatmath/ops"
)

// FromNumber converts a gonum quaternion; Real maps to W.
func FromNumber[T ops.Number](n quat.Number) Quaternion[T] {
	return Quaternion[T]{X: T(n.Imag), Y: T(n.Jmag), Z: T(n.Kmag), W: T(n.Real)}
}

func (q Quaternion[T]) Number() quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}
