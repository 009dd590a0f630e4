package profile

import (
	"fmt"

	"axiscal/axis"
	"axiscal/calibration"
	"axiscal/internal/diagnostic"
	"axiscal/unit"
)

// Validate checks a profile for structural problems: missing or duplicate
// axis keys, unknown type strings, unknown units, duplicate channel
// indices. It does not need the target axes.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("profile_is_nil", "profile is nil", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range f.Axes {
		spec := &f.Axes[i]

		if spec.Key == "" {
			res.AddError("missing_key", fmt.Sprintf("axes[%d] has no key", i), "", "key")
			continue
		}

		if _, ok := seen[spec.Key]; ok {
			res.AddError("duplicate_key", fmt.Sprintf("duplicate axis key %q", spec.Key), spec.Key, "key")
			continue
		}
		seen[spec.Key] = struct{}{}

		if spec.Type != "" {
			if _, err := axis.ParseType(spec.Type); err != nil {
				res.AddError("bad_type", err.Error(), spec.Key, "type")
			}
		}

		if spec.Units != "" {
			if _, err := unit.Lookup(spec.Units); err != nil {
				res.AddError("bad_units", err.Error(), spec.Key, "units")
			}
		}

		seenIdx := map[int]struct{}{}
		for j := range spec.Channels {
			ch := &spec.Channels[j]

			if ch.Units != "" {
				if _, err := unit.Lookup(ch.Units); err != nil {
					res.AddError("bad_units", err.Error(), spec.Key, fmt.Sprintf("channels[%d].units", j))
				}
			}

			if ch.Index == nil {
				continue
			}

			if *ch.Index < 0 {
				res.AddError("bad_channel_index", fmt.Sprintf("negative channel index %d", *ch.Index),
					spec.Key, fmt.Sprintf("channels[%d].index", j))
				continue
			}

			if _, ok := seenIdx[*ch.Index]; ok {
				res.AddError("duplicate_channel_index", fmt.Sprintf("duplicate channel index %d", *ch.Index),
					spec.Key, fmt.Sprintf("channels[%d].index", j))
				continue
			}
			seenIdx[*ch.Index] = struct{}{}
		}
	}

	return res
}

// Apply writes a profile into an Axes aggregate. Structural problems abort
// before anything is touched; per-axis problems during application are
// accumulated and the remaining entries still apply. Axis tags themselves
// are untouched; call Axes.Calibrate afterwards to persist.
func Apply(f *File, axes *calibration.Axes) *diagnostic.Diagnostics {
	res := Validate(f)
	if res.HasErrors() {
		return res
	}

	if axes == nil {
		res.AddError("axes_is_nil", "target axes aggregate is nil", "", "")
		return res
	}

	for i := range f.Axes {
		applyAxis(&f.Axes[i], axes, res)
	}

	return res
}

func applyAxis(spec *AxisSpec, axes *calibration.Axes, res *diagnostic.Diagnostics) {
	rec, err := axes.Record(spec.Key)
	if err != nil {
		res.AddError("axis_not_found", fmt.Sprintf("axis %q is not calibrated", spec.Key), spec.Key, "")
		return
	}

	if spec.Type != "" {
		t, _ := axis.ParseType(spec.Type)
		rec.SetType(t)
		// SetType resets the key from the type defaults; the profile entry
		// stays bound to its own key.
		if err := rec.SetKey(spec.Key); err != nil {
			res.AddError("bad_key", err.Error(), spec.Key, "key")
			return
		}
	}

	if spec.Name != "" {
		rec.SetName(spec.Name)
	}

	if spec.Units != "" {
		if err := rec.SetUnits(spec.Units); err != nil {
			res.AddError("bad_units", err.Error(), spec.Key, "units")
		}
	}

	if spec.Origin != nil {
		if err := rec.SetOrigin(*spec.Origin); err != nil {
			res.AddError("bad_origin", err.Error(), spec.Key, "origin")
		}
	}

	if spec.Resolution != nil {
		if err := rec.SetResolution(*spec.Resolution); err != nil {
			res.AddError("bad_resolution", err.Error(), spec.Key, "resolution")
		}
	}

	for j := range spec.Channels {
		applyChannel(spec.Key, j, &spec.Channels[j], rec, res)
	}
}

func applyChannel(key string, j int, spec *ChannelSpec, rec *calibration.Axis, res *diagnostic.Diagnostics) {
	if !rec.Type().Has(axis.Channels) {
		res.AddError("not_a_channels_axis",
			fmt.Sprintf("axis %q has channel entries but type %s", key, rec.Type()), key, "channels")
		return
	}

	field := func(name string) string {
		return fmt.Sprintf("channels[%d].%s", j, name)
	}

	var ch *calibration.Channel
	if spec.Index != nil {
		ch, _ = rec.Channel(*spec.Index)
	} else if spec.Name != "" {
		ch, _ = rec.Channel(spec.Name)
	}

	if ch == nil {
		index := rec.NumChannels()
		if spec.Index != nil {
			index = *spec.Index
		}

		created, err := calibration.NewChannel(index)
		if err != nil {
			res.AddError("bad_channel_index", err.Error(), key, field("index"))
			return
		}

		ch = rec.AddChannel(created)
	}

	if spec.Name != "" {
		ch.SetName(spec.Name)
	}

	if spec.Units != "" {
		if err := ch.SetUnits(spec.Units); err != nil {
			res.AddError("bad_units", err.Error(), key, field("units"))
		}
	}

	if spec.Minimum != nil {
		if err := ch.SetMinimum(*spec.Minimum); err != nil {
			res.AddError("bad_minimum", err.Error(), key, field("minimum"))
		}
	}

	if spec.Maximum != nil {
		if err := ch.SetMaximum(*spec.Maximum); err != nil {
			res.AddError("bad_maximum", err.Error(), key, field("maximum"))
		}
	}

	if spec.Resolution != nil {
		if err := ch.SetResolution(*spec.Resolution); err != nil {
			res.AddError("bad_resolution", err.Error(), key, field("resolution"))
		}
	}
}
