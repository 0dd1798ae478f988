// Package config loads the evaluation settings of quatconv from flags, environment
// variables and an optional YAML file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/binzume/quatmath/geom"
	"github.com/binzume/quatmath/ops"
)

// EnvPrefix is prepended to the upper-cased flag names, e.g. QUATCONV_ITERATIONS.
const EnvPrefix = "QUATCONV"

type Config struct {
	Fused            bool    `mapstructure:"fused" yaml:"fused"`
	Const            bool    `mapstructure:"const" yaml:"const"`
	Iterations       int     `mapstructure:"iterations" yaml:"iterations"`
	ReduceDomain     bool    `mapstructure:"reduce-domain" yaml:"reduce-domain"`
	PreferMultiplies bool    `mapstructure:"prefer-multiplies" yaml:"prefer-multiplies"`
	Epsilon          float64 `mapstructure:"epsilon" yaml:"epsilon"`
	Degrees          bool    `mapstructure:"degrees" yaml:"degrees"`
	FPS              float64 `mapstructure:"fps" yaml:"fps"`
}

func Default() Config {
	return Config{
		Iterations:   ops.DefaultSeries.Iterations,
		ReduceDomain: ops.DefaultSeries.ReduceDomain,
		FPS:          30,
	}
}

// AddFlags registers the settings on fs with their defaults.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Bool("fused", d.Fused, "use fused multiply-add")
	fs.Bool("const", d.Const, "evaluate sqrt and trigonometry with series approximations")
	fs.Int("iterations", d.Iterations, "number of series terms")
	fs.Bool("reduce-domain", d.ReduceDomain, "reduce series inputs into [-pi, pi]")
	fs.Bool("prefer-multiplies", d.PreferMultiplies, "replace divisions by a reciprocal and multiplications")
	fs.Float64("epsilon", d.Epsilon, "gimbal lock threshold (0 selects the default of the calculation type)")
	fs.Bool("degrees", d.Degrees, "read and print angles in degrees")
}

// NewViper returns a viper instance reading fs, the QUATCONV_* environment and file
// if it is not empty.
func NewViper(fs *pflag.FlagSet, file string) (*viper.Viper, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("iterations", d.Iterations)
	v.SetDefault("reduce-domain", d.ReduceDomain)
	v.SetDefault("fps", d.FPS)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	c := Default()
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.Const {
		if _, err := ops.NewSeries(c.Iterations, c.ReduceDomain); err != nil {
			return err
		}
	}
	if c.Epsilon < 0 {
		return errors.Wrapf(ops.ErrInvalidConfiguration, "epsilon must not be negative, got %v", c.Epsilon)
	}
	if c.FPS <= 0 {
		return errors.Wrapf(ops.ErrInvalidConfiguration, "fps must be positive, got %v", c.FPS)
	}
	return nil
}

// Mode returns the evaluation mode the settings describe.
func (c *Config) Mode() (geom.Mode, error) {
	m := geom.Mode{Fused: c.Fused, Const: c.Const, PreferMultiplies: c.PreferMultiplies}
	if c.Const {
		s, err := ops.NewSeries(c.Iterations, c.ReduceDomain)
		if err != nil {
			return geom.Mode{}, err
		}
		m.Series = s
	}
	return m, nil
}

func (c *Config) EulerOption() *geom.EulerOption {
	return &geom.EulerOption{Degrees: c.Degrees, Epsilon: c.Epsilon}
}
