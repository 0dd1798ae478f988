package ops

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned for series parameters that cannot produce a value.
var ErrInvalidConfiguration = errors.New("ops: invalid configuration")

// Series configures the Taylor approximations.
//
// ReduceDomain folds the input into [-Pi, Pi] before the series is evaluated. It can be
// turned off when inputs are known to stay within about one turn.
type Series struct {
	Iterations   int
	ReduceDomain bool
}

var DefaultSeries = Series{Iterations: 16, ReduceDomain: true}

func NewSeries(iterations int, reduceDomain bool) (Series, error) {
	if iterations < 1 {
		return Series{}, errors.Wrapf(ErrInvalidConfiguration, "series iterations must be >= 1, got %d", iterations)
	}
	return Series{Iterations: iterations, ReduceDomain: reduceDomain}, nil
}

func (s Series) Validate() error {
	_, err := NewSeries(s.Iterations, s.ReduceDomain)
	return err
}

// ReduceAngle returns x modulo one turn, folded into [-Pi, Pi].
func ReduceAngle[T Float](x T) T {
	r := Mod(x, T(2*math.Pi))
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r < -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// cosTerms sums (-1)^n x^(2n) / (2n)! for n < iterations.
func cosTerms[T Float](iterations int, x T) T {
	x2 := x * x
	term := T(1)
	sum := term
	for n := 1; n < iterations; n++ {
		term *= -x2 / T((2*n-1)*(2*n))
		sum += term
	}
	return sum
}

// sinTerms sums (-1)^n x^(2n+1) / (2n+1)! for n < iterations.
func sinTerms[T Float](iterations int, x T) T {
	x2 := x * x
	term := x
	sum := term
	for n := 1; n < iterations; n++ {
		term *= -x2 / T((2*n)*(2*n+1))
		sum += term
	}
	return sum
}

func SeriesCos[T Float](s Series, x T) T {
	if s.ReduceDomain {
		x = ReduceAngle(x)
	}
	return cosTerms(s.Iterations, x)
}

func SeriesSin[T Float](s Series, x T) T {
	if s.ReduceDomain {
		x = ReduceAngle(x)
	}
	return sinTerms(s.Iterations, x)
}

// SeriesTan divides the sine series by the cosine series of the same reduced input.
func SeriesTan[T Float](s Series, x T) T {
	if s.ReduceDomain {
		x = ReduceAngle(x)
	}
	return sinTerms(s.Iterations, x) / cosTerms(s.Iterations, x)
}

// SeriesSqrt computes the square root by Newton iteration from a power of two guess.
func SeriesSqrt[T Float](x T) T {
	switch {
	case math.IsNaN(float64(x)) || x < 0:
		return T(math.NaN())
	case x == 0 || math.IsInf(float64(x), 1):
		return x
	}
	_, e := math.Frexp(float64(x))
	g := T(math.Ldexp(1, e/2))
	for i := 0; i < 64; i++ {
		n := (g + x/g) / 2
		if n == g {
			break
		}
		g = n
	}
	return g
}

// SeriesAtan reduces |x| to at most tan(Pi/16) with two half-angle steps and sums the
// arctangent series.
func SeriesAtan[T Float](s Series, x T) T {
	if math.IsNaN(float64(x)) {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}
	inv := x > 1
	if inv {
		x = 1 / x
	}
	x = x / (1 + SeriesSqrt(1+x*x))
	x = x / (1 + SeriesSqrt(1+x*x))

	x2 := x * x
	pow := x
	sum := x
	for n := 1; n < s.Iterations; n++ {
		pow *= -x2
		sum += pow / T(2*n+1)
	}
	r := 4 * sum
	if inv {
		r = math.Pi/2 - r
	}
	if neg {
		r = -r
	}
	return r
}

func SeriesAtan2[T Float](s Series, y, x T) T {
	switch {
	case x > 0:
		return SeriesAtan(s, y/x)
	case x < 0 && y >= 0:
		return SeriesAtan(s, y/x) + math.Pi
	case x < 0:
		return SeriesAtan(s, y/x) - math.Pi
	case y > 0:
		return math.Pi / 2
	case y < 0:
		return -math.Pi / 2
	}
	return 0
}

func SeriesAsin[T Float](s Series, x T) T {
	return SeriesAtan2(s, x, SeriesSqrt((1-x)*(1+x)))
}

func SeriesAcos[T Float](s Series, x T) T {
	return SeriesAtan2(s, SeriesSqrt((1-x)*(1+x)), x)
}
