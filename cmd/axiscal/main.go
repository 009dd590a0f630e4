// Package main provides the CLI entrypoint for axiscal.
//
// axiscal inspects and edits the calibration fragments embedded in axis
// descriptor text:
//   - show: parse a descriptor and print its calibration
//   - set: update calibration fields and re-embed the fragment
//   - strip: remove calibration fragments from a descriptor
//   - apply: bulk-apply a YAML calibration profile
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"axiscal/internal/diagnostic"
)

var logLevel = "info"

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Kitchen,
	})

	return nil
}

// logDiagnostics reports parse/apply diagnostics through the logger.
func logDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		entry := logrus.WithFields(logrus.Fields{
			"axis":  d.AxisKey,
			"field": d.Field,
			"code":  d.Code,
		})

		switch d.Severity {
		case diagnostic.SeverityError:
			entry.Error(d.Message)
		case diagnostic.SeverityWarning:
			entry.Warn(d.Message)
		default:
			entry.Info(d.Message)
		}
	}
}

func main() {
	cmd := &cobra.Command{
		Use:          "axiscal",
		Short:        "Inspect and edit axis calibration fragments",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logLevel,
		"log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		NewShowCommand(),
		NewSetCommand(),
		NewStripCommand(),
		NewApplyCommand(),
	)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
