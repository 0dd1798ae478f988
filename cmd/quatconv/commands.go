package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/binzume/quatmath/anim"
	"github.com/binzume/quatmath/geom"
	"github.com/binzume/quatmath/gltfutil"
)

func newEulerCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "euler PITCH YAW ROLL",
		Short: "Print the quaternion of Euler angles",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			q := geom.QuaternionFromEulerXYZ[float64](opts.mode, v[0], v[1], v[2], opts.conf.EulerOption())
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func newQuatCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quat X Y Z W",
		Short: "Print the Euler angles of a quaternion",
		Long:  "Print the Euler angles (pitch, yaw, roll) of a quaternion. The input is normalized first.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			q := geom.NewQuaternion(v[0], v[1], v[2], v[3])
			if q == (geom.Quaternion[float64]{}) {
				return errors.New("zero quaternion has no rotation")
			}
			e := geom.EulerFromQuaternion[float64](opts.mode, geom.Unit[float64](opts.mode, q), opts.conf.EulerOption())
			fmt.Fprintln(cmd.OutOrStdout(), e)
			return nil
		},
	}
}

func newSlerpCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "slerp AX AY AZ AW BX BY BZ BW T",
		Short: "Print the spherical interpolation of two quaternions",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			a := geom.NewQuaternion(v[0], v[1], v[2], v[3])
			b := geom.NewQuaternion(v[4], v[5], v[6], v[7])
			fmt.Fprintln(cmd.OutOrStdout(), geom.Slerp[float64](opts.mode, a, b, v[8]))
			return nil
		},
	}
}

func newAnimCommand(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "anim TRACKS.yaml OUTPUT.glb",
		Short: "Sample rotation tracks into a glTF animation",
		Long: `Sample rotation tracks into a glTF animation. Every YAML document of the input is
one track, exported as a node with a linear rotation channel. The output is binary
glTF for .glb and JSON glTF for .gltf.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracks, err := anim.LoadTracks(args[0])
			if err != nil {
				return err
			}
			if len(tracks) == 0 {
				return errors.Errorf("%s: no tracks", args[0])
			}
			doc := gltfutil.NewRotationDocument(tracks[0].Name)
			for i, t := range tracks {
				node := uint32(0)
				if i > 0 {
					node = gltfutil.AddNode(doc, t.Name)
				}
				times, rots, err := anim.Sample(t, opts.conf.FPS, opts.mode)
				if err != nil {
					return err
				}
				if _, err := gltfutil.AddRotationAnimation(doc, node, name, times, rots); err != nil {
					return errors.Wrapf(err, "track %s", t.Name)
				}
				logrus.WithFields(logrus.Fields{
					"track":   t.Name,
					"samples": len(times),
				}).Info("exported track")
			}
			if err := gltfutil.Save(doc, args[1]); err != nil {
				return err
			}
			logrus.WithField("output", args[1]).Info("saved animation")
			return nil
		},
	}
	cmd.Flags().Float64("fps", 30, "samples per second")
	cmd.Flags().StringVar(&name, "name", "rotation", "animation name")
	return cmd
}

func newFlattenCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten INPUT.glb OUTPUT.glb",
		Short: "Move the rotations of inner nodes into their children",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := gltfutil.Load(args[0])
			if err != nil {
				return err
			}
			if err := gltfutil.FlattenRotations(doc, opts.mode); err != nil {
				return err
			}
			logrus.WithField("nodes", len(doc.Nodes)).Info("flattened rotations")
			return gltfutil.Save(doc, args[1])
		},
	}
}
