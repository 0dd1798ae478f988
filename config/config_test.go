package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binzume/quatmath/geom"
	"github.com/binzume/quatmath/ops"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	v, err := NewViper(newFlags(t), "")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, Default(), *c)
	m, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, geom.Plain, m)
}

func TestFlags(t *testing.T) {
	v, err := NewViper(newFlags(t, "--const", "--fused", "--iterations=8", "--reduce-domain=false", "--degrees"), "")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	m, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, geom.Mode{Fused: true, Const: true, Series: ops.Series{Iterations: 8}}, m)
	assert.Equal(t, &geom.EulerOption{Degrees: true}, c.EulerOption())
}

func TestEnv(t *testing.T) {
	t.Setenv("QUATCONV_PREFER_MULTIPLIES", "true")
	t.Setenv("QUATCONV_EPSILON", "0.01")

	v, err := NewViper(newFlags(t), "")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.True(t, c.PreferMultiplies)
	assert.Equal(t, 0.01, c.Epsilon)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quatconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("const: true\niterations: 12\nfps: 60\n"), 0644))

	// flags given on the command line win over the file
	v, err := NewViper(newFlags(t, "--iterations=20"), path)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.True(t, c.Const)
	assert.Equal(t, 20, c.Iterations)
	assert.Equal(t, 60.0, c.FPS)

	_, err = NewViper(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInvalid(t *testing.T) {
	v, err := NewViper(newFlags(t, "--const", "--iterations=0"), "")
	require.NoError(t, err)
	_, err = Load(v)
	assert.True(t, errors.Is(err, ops.ErrInvalidConfiguration), "%v", err)

	v, err = NewViper(newFlags(t, "--epsilon=-1"), "")
	require.NoError(t, err)
	_, err = Load(v)
	assert.Equal(t, ops.ErrInvalidConfiguration, errors.Cause(err))

	// iterations only matter for const mode
	c := Default()
	c.Iterations = 0
	assert.NoError(t, c.Validate())
	_, err = (&Config{Const: true}).Mode()
	assert.ErrorIs(t, err, ops.ErrInvalidConfiguration)
}
