package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/binzume/quatmath/config"
	"github.com/binzume/quatmath/geom"
)

type rootOptions struct {
	configFile string
	verbose    bool

	conf *config.Config
	mode geom.Mode
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "quatconv",
		Short: "Convert between Euler angles and quaternions",
		Long: `Convert between Euler angles (pitch about X, yaw about Y, roll about Z) and
quaternions printed as { x, y, z, w }.

Every flag can also be given as a QUATCONV_* environment variable or in the
YAML file named by --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	config.AddFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")

	cmd.AddCommand(
		newEulerCommand(opts),
		newQuatCommand(opts),
		newSlerpCommand(opts),
		newAnimCommand(opts),
		newFlattenCommand(opts),
	)
	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	if o.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	v, err := config.NewViper(cmd.Flags(), o.configFile)
	if err != nil {
		return err
	}
	conf, err := config.Load(v)
	if err != nil {
		return err
	}
	mode, err := conf.Mode()
	if err != nil {
		return err
	}
	o.conf, o.mode = conf, mode
	logrus.WithFields(logrus.Fields{
		"fused":             mode.Fused,
		"const":             mode.Const,
		"iterations":        mode.Series.Iterations,
		"prefer-multiplies": mode.PreferMultiplies,
		"degrees":           conf.Degrees,
	}).Debug("loaded config")
	return nil
}

func parseFloats(args []string) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		vs[i] = v
	}
	return vs, nil
}
