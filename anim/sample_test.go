package anim

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binzume/quatmath/geom"
)

func zRotation(deg float64) geom.Quaternion[float64] {
	return geom.QuaternionFromEulerXYZ[float64](geom.Plain, 0, 0, deg, &geom.EulerOption{Degrees: true})
}

func assertNear(t *testing.T, want geom.Quaternion[float64], got geom.Quaternion[float32], eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, float64(got.X), eps, msgAndArgs...)
	assert.InDelta(t, want.Y, float64(got.Y), eps, msgAndArgs...)
	assert.InDelta(t, want.Z, float64(got.Z), eps, msgAndArgs...)
	assert.InDelta(t, want.W, float64(got.W), eps, msgAndArgs...)
}

func TestSample(t *testing.T) {
	track, err := ParseTrack(strings.NewReader(spinYAML))
	require.NoError(t, err)

	times, rots, err := Sample(track, 4, geom.Plain)
	require.NoError(t, err)
	require.Len(t, times, 9)
	require.Len(t, rots, 9)
	assert.Equal(t, float32(0), times[0])
	assert.Equal(t, float32(2), times[8])

	// 0..90 degrees in the first second, 90..180 in the second
	for i := range times {
		assertNear(t, zRotation(22.5*float64(i)), rots[i], 1e-6, "sample %d", i)
	}
}

func TestSampleLerp(t *testing.T) {
	track := &Track{
		Name:          "lerp",
		Interpolation: InterpolationLerp,
		Keyframes: []Keyframe{
			{Time: 0, Quaternion: []float64{0, 0, 0, 1}},
			{Time: 1, Quaternion: []float64{0, 0, 1, 0}},
		},
	}
	times, rots, err := Sample(track, 2, geom.Fused)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.5, 1}, times)
	// the midpoint of lerp is normalized and matches slerp
	assertNear(t, zRotation(90), rots[1], 1e-6)
	for _, q := range rots {
		assert.InDelta(t, 1, float64(q.Len()), 1e-6)
	}
}

func TestSampleShortestArc(t *testing.T) {
	track := &Track{
		Name: "flip",
		Keyframes: []Keyframe{
			{Time: 0, Quaternion: []float64{0, 0, 0, 1}},
			// 90 degrees about Z, stored with the opposite sign
			{Time: 1, Quaternion: []float64{0, 0, -math.Sqrt2 / 2, -math.Sqrt2 / 2}},
		},
	}
	_, rots, err := Sample(track, 2, geom.Const)
	require.NoError(t, err)
	assertNear(t, zRotation(45), rots[1], 1e-6)
}

func TestSampleEdges(t *testing.T) {
	single := &Track{Name: "one", Keyframes: []Keyframe{{Time: 3, Euler: []float64{0.1, 0.2, 0.3}}}}
	times, rots, err := Sample(single, 30, geom.Plain)
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, times)
	assertNear(t, geom.QuaternionFromEulerXYZ[float64](geom.Plain, 0.1, 0.2, 0.3, nil), rots[0], 1e-7)

	// the end is kept when it is not on the grid
	uneven := &Track{Name: "uneven", Keyframes: []Keyframe{
		{Time: 0, Euler: []float64{0, 0, 0}},
		{Time: 1.1, Euler: []float64{0, 0, 1}},
	}}
	times, _, err = Sample(uneven, 2, geom.Plain)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.5, 1, 1.1}, times)

	for _, fps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, _, err = Sample(single, fps, geom.Plain)
		assert.ErrorIs(t, err, ErrInvalidTrack, "fps %v", fps)
	}
	_, _, err = Sample(&Track{Name: "empty"}, 30, geom.Plain)
	assert.ErrorIs(t, err, ErrInvalidTrack)

	for _, end := range []float64{math.NaN(), math.Inf(1), 1e18} {
		long := &Track{Name: "long", Keyframes: []Keyframe{
			{Time: 0, Euler: []float64{0, 0, 0}},
			{Time: end, Euler: []float64{0, 0, 1}},
		}}
		_, _, err = Sample(long, 30, geom.Plain)
		assert.ErrorIs(t, err, ErrInvalidTrack, "end %v", end)
	}
	// just below the limit still samples
	times, _, err = Sample(&Track{Name: "limit", Keyframes: []Keyframe{
		{Time: 0, Euler: []float64{0, 0, 0}},
		{Time: MaxSamples - 1, Euler: []float64{0, 0, 1}},
	}}, 1, geom.Plain)
	require.NoError(t, err)
	assert.Len(t, times, MaxSamples)
}
