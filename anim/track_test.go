package anim

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binzume/quatmath/geom"
)

const spinYAML = `
name: spin
degrees: true
keyframes:
  - time: 0
    euler: [0, 0, 0]
  - time: 1
    euler: [0, 0, 90]
  - time: 2
    quaternion: [0, 0, 2, 0]
`

func TestParseTrack(t *testing.T) {
	track, err := ParseTrack(strings.NewReader(spinYAML))
	require.NoError(t, err)

	assert.Equal(t, "spin", track.Name)
	assert.True(t, track.Degrees)
	assert.Equal(t, []float64{0, 1, 2}, track.Times())

	rots := track.Rotations(geom.Plain)
	require.Len(t, rots, 3)
	assert.Equal(t, geom.Identity[float64](), rots[0])
	assert.InDelta(t, math.Sqrt2/2, rots[1].Z, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, rots[1].W, 1e-12)
	assert.Equal(t, geom.NewQuaternion[float64](0, 0, 1, 0), rots[2])
}

func TestParseTracks(t *testing.T) {
	src := spinYAML + "---\nname: nod\ninterpolation: lerp\nkeyframes:\n  - time: 0.5\n    quaternion: [0, 0, 0, 1]\n"
	tracks, err := ParseTracks(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "nod", tracks[1].Name)
	assert.Equal(t, InterpolationLerp, tracks[1].Interpolation)

	_, err = ParseTrack(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrInvalidTrack)

	_, err = ParseTracks(strings.NewReader(spinYAML + "---\n" + spinYAML))
	assert.ErrorIs(t, err, ErrInvalidTrack)
}

func TestParseTrackErrors(t *testing.T) {
	for name, src := range map[string]string{
		"empty":         "",
		"syntax":        "name: [",
		"unknown field": "name: a\nspeed: 2\nkeyframes:\n  - time: 0\n    euler: [0, 0, 0]\n",
		"no name":       "keyframes:\n  - time: 0\n    euler: [0, 0, 0]\n",
		"no keyframes":  "name: a\n",
		"interpolation": "name: a\ninterpolation: cubic\nkeyframes:\n  - time: 0\n    euler: [0, 0, 0]\n",
		"order":         "name: a\nkeyframes:\n  - time: 1\n    euler: [0, 0, 0]\n  - time: 1\n    euler: [0, 0, 1]\n",
		"short euler":   "name: a\nkeyframes:\n  - time: 0\n    euler: [0, 0]\n",
		"long quat":     "name: a\nkeyframes:\n  - time: 0\n    quaternion: [0, 0, 0, 1, 0]\n",
		"zero quat":     "name: a\nkeyframes:\n  - time: 0\n    quaternion: [0, 0, 0, 0]\n",
		"both":          "name: a\nkeyframes:\n  - time: 0\n    euler: [0, 0, 0]\n    quaternion: [0, 0, 0, 1]\n",
		"neither":       "name: a\nkeyframes:\n  - time: 0\n",
		"nan time":      "name: a\nkeyframes:\n  - time: .nan\n    euler: [0, 0, 0]\n",
		"inf time":      "name: a\nkeyframes:\n  - time: 0\n    euler: [0, 0, 0]\n  - time: .inf\n    euler: [0, 0, 1]\n",
		"nan euler":     "name: a\nkeyframes:\n  - time: 0\n    euler: [0, .nan, 0]\n",
		"inf quat":      "name: a\nkeyframes:\n  - time: 0\n    quaternion: [0, 0, -.inf, 1]\n",
	} {
		_, err := ParseTrack(strings.NewReader(src))
		assert.Error(t, err, name)
		assert.Equal(t, ErrInvalidTrack, errors.Cause(err), name)
	}
}

func TestLoadTracks(t *testing.T) {
	_, err := LoadTracks("testdata/missing.yaml")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTrack)
}
