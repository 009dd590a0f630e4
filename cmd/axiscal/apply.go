package main

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"axiscal/axis"
	"axiscal/calibration"
	"axiscal/profile"
)

func NewApplyCommand() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "apply --profile <profile.yaml> <descriptor-file>...",
		Short: "Bulk-apply a YAML calibration profile to descriptor files",
		Long: `Bulk-apply a YAML calibration profile to descriptor files.

Each descriptor file holds the description text of one axis. Its axis key is
taken from the embedded calibration fragment; the profile entry with the
matching key is applied and the updated fragment written back.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			prof, err := profile.LoadFile(profilePath)
			if err != nil {
				return err
			}

			tags, _ := axis.NewTagList()
			pathByKey := make(map[string]string, len(args))

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return pkgerrors.Wrapf(err, "failed to read descriptor %s", path)
				}

				rec, diags := calibration.Parse(string(data))
				logDiagnostics(diags)

				tag := axis.Tag{
					Key:         rec.Key(),
					Type:        rec.Type(),
					Description: string(data),
					Resolution:  real(rec.Resolution()),
				}

				if err := tags.Append(tag); err != nil {
					return pkgerrors.Wrapf(err, "descriptor %s", path)
				}

				pathByKey[rec.Key()] = path
			}

			axes, diags := calibration.NewAxes(tags)
			logDiagnostics(diags)

			res := profile.Apply(prof, axes)
			logDiagnostics(res)
			if err := res.Error(); err != nil {
				return err
			}

			// A profile may reclassify an axis; the tags must follow before
			// the stored calibration can be written back.
			for _, key := range axes.Keys() {
				rec, err := axes.Record(key)
				if err != nil {
					return err
				}

				if tag, ok := tags.Get(key); ok {
					tag.Type = rec.Type()
				}
			}

			if err := axes.Calibrate(); err != nil {
				return err
			}

			for i := 0; i < tags.Len(); i++ {
				tag := tags.At(i)
				path := pathByKey[tag.Key]

				if err := os.WriteFile(path, []byte(tag.Description), 0644); err != nil {
					return pkgerrors.Wrapf(err, "failed to write descriptor %s", path)
				}

				logrus.WithFields(logrus.Fields{"axis": tag.Key, "file": path}).Info("calibration applied")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "path to the YAML calibration profile")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
