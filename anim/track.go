// Package anim reads rotation keyframe tracks and resamples them at a fixed rate.
package anim

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/binzume/quatmath/geom"
)

var ErrInvalidTrack = errors.New("anim: invalid track")

const (
	InterpolationSlerp = "slerp"
	InterpolationLerp  = "lerp"
)

// Keyframe is a rotation at Time seconds. Exactly one of Euler (pitch, yaw, roll) and
// Quaternion (x, y, z, w) is set.
type Keyframe struct {
	Time       float64   `yaml:"time"`
	Euler      []float64 `yaml:"euler,omitempty"`
	Quaternion []float64 `yaml:"quaternion,omitempty"`
}

type Track struct {
	Name string `yaml:"name"`
	// Degrees applies to Euler keyframes.
	Degrees bool `yaml:"degrees,omitempty"`
	// Interpolation is "slerp" (default) or "lerp".
	Interpolation string     `yaml:"interpolation,omitempty"`
	Keyframes     []Keyframe `yaml:"keyframes"`
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidTrack, format, args...)
}

// ParseTrack decodes a single YAML track.
func ParseTrack(r io.Reader) (*Track, error) {
	tracks, err := ParseTracks(r)
	if err != nil {
		return nil, err
	}
	if len(tracks) != 1 {
		return nil, invalid("want one track, got %d", len(tracks))
	}
	return tracks[0], nil
}

// ParseTracks decodes a stream of YAML documents, one track per document.
func ParseTracks(r io.Reader) ([]*Track, error) {
	d := yaml.NewDecoder(r)
	d.SetStrict(true)
	var tracks []*Track
	names := map[string]bool{}
	for i := 0; ; i++ {
		var t Track
		err := d.Decode(&t)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, invalid("document %d: %v", i, err)
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if names[t.Name] {
			return nil, invalid("duplicate track %q", t.Name)
		}
		names[t.Name] = true
		tracks = append(tracks, &t)
	}
	return tracks, nil
}

func LoadTracks(path string) ([]*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTracks(f)
}

func (t *Track) Validate() error {
	if t.Name == "" {
		return invalid("track has no name")
	}
	switch t.Interpolation {
	case "", InterpolationSlerp, InterpolationLerp:
	default:
		return invalid("%s: unknown interpolation %q", t.Name, t.Interpolation)
	}
	if len(t.Keyframes) == 0 {
		return invalid("%s: no keyframes", t.Name)
	}
	for i, k := range t.Keyframes {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) {
			return invalid("%s: keyframe %d: time %v is not finite", t.Name, i, k.Time)
		}
		if i > 0 && k.Time <= t.Keyframes[i-1].Time {
			return invalid("%s: keyframe %d: time %v is not after %v", t.Name, i, k.Time, t.Keyframes[i-1].Time)
		}
		switch {
		case k.Euler != nil && k.Quaternion != nil:
			return invalid("%s: keyframe %d: both euler and quaternion are set", t.Name, i)
		case k.Euler != nil:
			if len(k.Euler) != 3 {
				return invalid("%s: keyframe %d: euler needs 3 values, got %d", t.Name, i, len(k.Euler))
			}
		case k.Quaternion != nil:
			if len(k.Quaternion) != 4 {
				return invalid("%s: keyframe %d: quaternion needs 4 values, got %d", t.Name, i, len(k.Quaternion))
			}
			if k.Quaternion[0] == 0 && k.Quaternion[1] == 0 && k.Quaternion[2] == 0 && k.Quaternion[3] == 0 {
				return invalid("%s: keyframe %d: zero quaternion", t.Name, i)
			}
		default:
			return invalid("%s: keyframe %d: no rotation", t.Name, i)
		}
		for _, vs := range [][]float64{k.Euler, k.Quaternion} {
			for _, v := range vs {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return invalid("%s: keyframe %d: rotation %v is not finite", t.Name, i, v)
				}
			}
		}
	}
	return nil
}

// Rotations returns the unit quaternion of every keyframe.
func (t *Track) Rotations(m geom.Mode) []geom.Quaternion[float64] {
	opt := &geom.EulerOption{Degrees: t.Degrees}
	rots := make([]geom.Quaternion[float64], len(t.Keyframes))
	for i, k := range t.Keyframes {
		if k.Euler != nil {
			rots[i] = geom.QuaternionFromEulerXYZ[float64](m, k.Euler[0], k.Euler[1], k.Euler[2], opt)
		} else {
			rots[i] = geom.Unit[float64](m, geom.RefSlice(k.Quaternion).Load())
		}
	}
	return rots
}

// Times returns the keyframe times.
func (t *Track) Times() []float64 {
	times := make([]float64, len(t.Keyframes))
	for i, k := range t.Keyframes {
		times[i] = k.Time
	}
	return times
}
