package anim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/binzume/quatmath/geom"
)

// MaxSamples bounds the number of samples Sample produces for one track.
const MaxSamples = 1 << 20

// Sample evaluates t every 1/fps seconds from its first to its last keyframe. The last
// keyframe is always included. Lerp results are normalized.
//
// Consecutive keyframes are interpolated along the shorter arc.
func Sample(t *Track, fps float64, m geom.Mode) ([]float32, []geom.Quaternion[float32], error) {
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}
	if !(fps > 0) || math.IsInf(fps, 0) {
		return nil, nil, invalid("%s: fps must be positive and finite, got %v", t.Name, fps)
	}

	keys := t.Times()
	rots := t.Rotations(m)
	for i := 1; i < len(rots); i++ {
		if geom.Dot[float64](m, rots[i-1], rots[i]) < 0 {
			rots[i] = geom.Negate[float64](m, rots[i])
		}
	}

	start, end := keys[0], keys[len(keys)-1]
	span := (end - start) * fps
	if !(span < MaxSamples) {
		return nil, nil, invalid("%s: %v seconds at %v fps exceeds %d samples", t.Name, end-start, fps, MaxSamples)
	}
	n := int(math.Floor(span+1e-9)) + 1
	times := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		times = append(times, start+float64(i)/fps)
	}
	if end-times[len(times)-1] > 1e-9 {
		times = append(times, end)
	}

	outTimes := make([]float32, len(times))
	out := make([]geom.Quaternion[float32], len(times))
	seg := 0
	for i, tm := range times {
		for seg+1 < len(keys)-1 && tm >= keys[seg+1] {
			seg++
		}
		outTimes[i] = float32(tm)
		if len(keys) == 1 {
			out[i] = geom.Convert[float32](rots[0])
			continue
		}
		u := (tm - keys[seg]) / (keys[seg+1] - keys[seg])
		if u > 1 {
			u = 1
		}
		out[i] = interpolate(t.Interpolation, m, rots[seg], rots[seg+1], u)
	}

	logrus.WithFields(logrus.Fields{
		"track":     t.Name,
		"keyframes": len(keys),
		"samples":   len(out),
		"fps":       fps,
	}).Debug("sampled track")
	return outTimes, out, nil
}

func interpolate(kind string, m geom.Mode, a, b geom.Quaternion[float64], u float64) geom.Quaternion[float32] {
	if kind == InterpolationLerp {
		q := geom.Lerp[float64](m, a, b, u)
		geom.UnitAssign(m, &q)
		return geom.Convert[float32](q)
	}
	return geom.Slerp[float32](m, a, b, u)
}
