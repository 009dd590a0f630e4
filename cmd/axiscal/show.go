package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"axiscal/calibration"
	"axiscal/unit"
)

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
)

func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <descriptor-file>",
		Short: "Parse a descriptor file and print its calibration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to read descriptor %s", args[0])
			}

			rec, diags := calibration.Parse(string(data))
			logDiagnostics(diags)
			printAxis(rec)

			return nil
		},
	}
}

func printAxis(rec *calibration.Axis) {
	bold.Printf("axis %q", rec.Key())
	fmt.Printf(" (%s)\n", rec.Type())

	printRecordLine("name", rec.Name())
	printRecordLine("units", rec.Units().Symbol)
	printRecordLine("origin", unit.FormatScalar(rec.Origin()))
	printRecordLine("resolution", unit.FormatScalar(rec.Resolution()))

	for _, ch := range rec.Channels() {
		bold.Printf("  channel %d", ch.Index())
		fmt.Printf(" %q\n", ch.Name())
		fmt.Printf("    range      %s .. %s %s\n",
			unit.FormatScalar(ch.Minimum()), unit.FormatScalar(ch.Maximum()), ch.Units().Symbol)
		fmt.Printf("    resolution %s\n", unit.FormatScalar(ch.Resolution()))
	}
}

func printRecordLine(label, value string) {
	faint.Printf("  %-11s", label)
	fmt.Printf(" %s\n", value)
}
