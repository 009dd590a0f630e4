package main

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"axiscal/axis"
	"axiscal/calibration"
	"axiscal/unit"
)

func NewSetCommand() *cobra.Command {
	var (
		axisType   string
		key        string
		name       string
		units      string
		origin     string
		resolution string
	)

	cmd := &cobra.Command{
		Use:   "set <descriptor-file>",
		Short: "Update calibration fields and re-embed the fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to read descriptor %s", args[0])
			}

			rec, diags := calibration.Parse(string(data))
			logDiagnostics(diags)

			if axisType != "" {
				t, err := axis.ParseType(axisType)
				if err != nil {
					return err
				}
				rec.SetType(t)
			}

			if key != "" {
				if err := rec.SetKey(key); err != nil {
					return err
				}
			}

			if name != "" {
				rec.SetName(name)
			}

			if units != "" {
				if err := rec.SetUnits(units); err != nil {
					return err
				}
			}

			if origin != "" {
				v, err := unit.ParseScalar(origin)
				if err != nil {
					return pkgerrors.Wrapf(err, "bad origin %q", origin)
				}
				if err := rec.SetOrigin(v); err != nil {
					return err
				}
			}

			if resolution != "" {
				v, err := unit.ParseScalar(resolution)
				if err != nil {
					return pkgerrors.Wrapf(err, "bad resolution %q", resolution)
				}
				if err := rec.SetResolution(v); err != nil {
					return err
				}
			}

			out := calibration.Embed(string(data), rec)
			if err := os.WriteFile(args[0], []byte(out), 0644); err != nil {
				return pkgerrors.Wrapf(err, "failed to write descriptor %s", args[0])
			}

			logrus.WithField("axis", rec.Key()).Info("calibration updated")

			return nil
		},
	}

	cmd.Flags().StringVar(&axisType, "type", "", "axis type (Space, Time, Channels, Time|Frequency, ...)")
	cmd.Flags().StringVar(&key, "key", "", "axis key")
	cmd.Flags().StringVar(&name, "name", "", "axis name")
	cmd.Flags().StringVar(&units, "units", "", "unit symbol or alias")
	cmd.Flags().StringVar(&origin, "origin", "", "origin value")
	cmd.Flags().StringVar(&resolution, "resolution", "", "resolution value")

	return cmd
}
