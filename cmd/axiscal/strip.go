package main

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"axiscal/calibration"
)

func NewStripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <descriptor-file>...",
		Short: "Remove calibration fragments from descriptor files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return pkgerrors.Wrapf(err, "failed to read descriptor %s", path)
				}

				out := calibration.Strip(string(data))
				if out == string(data) {
					logrus.WithField("file", path).Info("no calibration fragment found")
					continue
				}

				if err := os.WriteFile(path, []byte(out), 0644); err != nil {
					return pkgerrors.Wrapf(err, "failed to write descriptor %s", path)
				}

				logrus.WithField("file", path).Info("calibration fragment removed")
			}

			return nil
		},
	}
}
