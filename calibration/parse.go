package calibration

import (
	"fmt"
	"strconv"
	"strings"

	"axiscal/axis"
	"axiscal/internal/diagnostic"
	"axiscal/unit"
)

// Parse extracts an axis calibration from an arbitrary descriptor string.
//
// A descriptor without a calibration fragment yields an all-default record;
// that is the documented behavior for uncalibrated axes, not an error. A
// malformed fragment degrades per field: the offending field keeps its
// default, a diagnostic records what happened, and the remaining fields are
// still parsed. A legacy standalone <name> fragment is folded in, with the
// unified fragment winning on conflict.
func Parse(descriptor string) (*Axis, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	frag, outside, found := extractFragment(descriptor, diags)
	legacyName, hasLegacy := extractLegacyName(outside)

	if !found {
		ax, _ := NewAxis(axis.Unknown)
		if hasLegacy {
			ax.SetName(legacyName)
			diags.AddInfo("legacy_name", "axis name taken from legacy <name> fragment", "", FieldName.String())
		}

		return ax, diags
	}

	// Channel sub-fragments are carved out first so that their inner tags
	// cannot be mistaken for axis-level fields.
	frag, channels := extractChannels(frag, diags)

	t := axis.Unknown
	if raw, ok, malformed := scanField(frag, FieldType.String(), "axistype"); ok {
		if malformed {
			diags.AddWarning("unterminated_field", "unterminated <type> tag, type defaults to Unknown", "", FieldType.String())
		} else if parsed, err := axis.ParseType(raw); err != nil {
			diags.AddWarning("bad_type", fmt.Sprintf("%v, type defaults to Unknown", err), "", FieldType.String())
		} else {
			t = parsed
		}
	}

	ax, _ := NewAxis(t)

	if raw, ok, malformed := scanField(frag, FieldKey.String(), "axiskey"); ok && !malformed {
		if err := ax.SetKey(strings.TrimSpace(raw)); err != nil {
			diags.AddWarning("bad_key", fmt.Sprintf("%v, key defaults to %q", err, ax.Key()), "", FieldKey.String())
		}
	} else if malformed {
		diags.AddWarning("unterminated_field", "unterminated <key> tag", "", FieldKey.String())
	}

	nameFromFragment := false
	if raw, ok, malformed := scanField(frag, FieldName.String(), "axisname"); ok && !malformed {
		ax.SetName(raw)
		nameFromFragment = true
	} else if malformed {
		diags.AddWarning("unterminated_field", "unterminated <name> tag", ax.Key(), FieldName.String())
	}

	if hasLegacy {
		if nameFromFragment && legacyName != ax.Name() {
			diags.AddWarning("legacy_name_conflict",
				fmt.Sprintf("legacy <name> fragment %q conflicts with calibrated name %q; keeping the latter", legacyName, ax.Name()),
				ax.Key(), FieldName.String())
		} else if !nameFromFragment {
			ax.SetName(legacyName)
			diags.AddInfo("legacy_name", "axis name taken from legacy <name> fragment", ax.Key(), FieldName.String())
		}
	}

	parseRecordFields(frag, &ax.Record, ax.Key(), "", diags)

	if len(channels) > 0 {
		if ax.Type().Has(axis.Channels) {
			ax.channels = nil
			attachChannels(ax, channels, diags)
		} else {
			diags.AddWarning("channels_on_nonchannel_axis",
				fmt.Sprintf("%d channel entries ignored for a %s axis", len(channels), ax.Type()),
				ax.Key(), "")
		}
	}

	return ax, diags
}

// attachChannels adds parsed channels through AddChannel so that repeated
// channel tags get the usual collision repair. Repairs surface as
// diagnostics alongside the logged warnings.
func attachChannels(ax *Axis, channels []*Channel, diags *diagnostic.Diagnostics) {
	for _, ch := range channels {
		name, index := ch.Name(), ch.Index()
		stored := ax.AddChannel(ch)

		if stored.Name() != name {
			diags.AddWarning("duplicate_channel_name",
				fmt.Sprintf("duplicate channel name %q renamed to %q", name, stored.Name()),
				ax.Key(), stored.Name())
		}

		if stored.Index() != index {
			diags.AddWarning("duplicate_channel_index",
				fmt.Sprintf("duplicate channel index %d reassigned to %d", index, stored.Index()),
				ax.Key(), stored.Name())
		}
	}
}

// parseRecordFields fills units, origin and resolution from the fragment
// body, one field at a time, defaulting the ones it cannot read.
func parseRecordFields(frag string, r *Record, axisKey, fieldPrefix string, diags *diagnostic.Diagnostics) {
	label := func(f FieldEnum) string {
		return fieldPrefix + f.String()
	}

	if raw, ok, malformed := scanField(frag, FieldUnits.String()); ok && !malformed {
		if u, err := unit.Lookup(strings.TrimSpace(raw)); err != nil {
			diags.AddWarning("bad_units",
				fmt.Sprintf("%v, units default to %q", err, r.Units().Symbol),
				axisKey, label(FieldUnits))
		} else {
			r.units = u
		}
	} else if malformed {
		diags.AddWarning("unterminated_field", "unterminated <units> tag", axisKey, label(FieldUnits))
	}

	if raw, ok, malformed := scanField(frag, FieldOrigin.String(), FieldMinimum.String()); ok && !malformed {
		if v, err := unit.ParseScalar(raw); err != nil {
			diags.AddWarning("bad_origin",
				fmt.Sprintf("unparsable origin %q, defaults to 0", strings.TrimSpace(raw)),
				axisKey, label(FieldOrigin))
		} else {
			r.origin = v
		}
	} else if malformed {
		diags.AddWarning("unterminated_field", "unterminated <origin> tag", axisKey, label(FieldOrigin))
	}

	if raw, ok, malformed := scanField(frag, FieldResolution.String()); ok && !malformed {
		if v, err := unit.ParseScalar(raw); err != nil {
			diags.AddWarning("bad_resolution",
				fmt.Sprintf("unparsable resolution %q, defaults to 1", strings.TrimSpace(raw)),
				axisKey, label(FieldResolution))
		} else {
			r.resolution = v
		}
	} else if malformed {
		diags.AddWarning("unterminated_field", "unterminated <resolution> tag", axisKey, label(FieldResolution))
	}
}

// extractFragment locates the first well-formed calibration span. An open
// marker without a close marker is reported and the remainder of the string
// is parsed best-effort.
func extractFragment(s string, diags *diagnostic.Diagnostics) (frag, outside string, found bool) {
	i := strings.Index(s, fragmentOpen)
	if i < 0 {
		return "", s, false
	}

	body := s[i+len(fragmentOpen):]

	j := strings.Index(body, fragmentClose)
	if j < 0 {
		diags.AddWarning("unterminated_fragment",
			"<axis_calibration> without closing tag; parsing to end of text", "", "")
		return body, s[:i], true
	}

	return body[:j], s[:i] + body[j+len(fragmentClose):], true
}

// extractLegacyName finds a standalone legacy <name> fragment outside the
// calibration span.
func extractLegacyName(outside string) (string, bool) {
	i := strings.Index(outside, legacyOpen)
	if i < 0 {
		return "", false
	}

	body := outside[i+len(legacyOpen):]

	j := strings.Index(body, legacyClose)
	if j < 0 {
		return "", false
	}

	return body[:j], true
}

// scanField returns the inner text of the first tag matching one of the
// given names. malformed is set when an open tag has no matching close tag.
func scanField(frag string, names ...string) (value string, ok, malformed bool) {
	for _, name := range names {
		openTag := "<" + name + ">"

		i := strings.Index(frag, openTag)
		if i < 0 {
			continue
		}

		body := frag[i+len(openTag):]

		j := strings.Index(body, "</"+name+">")
		if j < 0 {
			return "", true, true
		}

		return body[:j], true, false
	}

	return "", false, false
}

// extractChannels carves every channel sub-fragment out of the fragment
// body, returning the remaining body and the parsed channels in encounter
// order. Tags of the form <channel_N> and <channelN> are both accepted; a
// non-numeric suffix is treated as the channel name.
func extractChannels(frag string, diags *diagnostic.Diagnostics) (string, []*Channel) {
	var channels []*Channel

	for {
		i := strings.Index(frag, "<channel")
		if i < 0 {
			return frag, channels
		}

		end := strings.Index(frag[i:], ">")
		if end < 0 {
			diags.AddWarning("bad_channel_tag", "unterminated channel tag marker", "", "")
			return frag[:i], channels
		}

		tagName := frag[i+1 : i+end]
		if strings.ContainsAny(tagName, "</> \t\n") {
			// not a channel tag after all; skip this marker
			frag = frag[:i] + frag[i+1:]
			continue
		}

		closeTag := "</" + tagName + ">"
		body := frag[i+end+1:]

		j := strings.Index(body, closeTag)
		if j < 0 {
			diags.AddWarning("unterminated_channel",
				fmt.Sprintf("<%s> without closing tag; entry skipped", tagName), "", tagName)
			return frag[:i], channels
		}

		inner := body[:j]
		frag = frag[:i] + body[j+len(closeTag):]

		ch := parseChannel(tagName, inner, len(channels), diags)
		channels = append(channels, ch)
	}
}

func parseChannel(tagName, inner string, position int, diags *diagnostic.Diagnostics) *Channel {
	suffix := strings.TrimPrefix(tagName, "channel")
	suffix = strings.TrimPrefix(suffix, "_")

	index := position
	var nameFromTag string

	if n, err := strconv.Atoi(suffix); err == nil && n >= 0 {
		index = n
	} else if suffix != "" {
		nameFromTag = suffix
	}

	ch, _ := NewChannel(index)
	if nameFromTag != "" {
		ch.SetName(nameFromTag)
	}

	if raw, ok, malformed := scanField(inner, FieldName.String()); ok && !malformed {
		ch.SetName(raw)
	} else if malformed {
		diags.AddWarning("unterminated_field", "unterminated <name> tag", "", tagName+"."+FieldName.String())
	}

	parseRecordFields(inner, &ch.Record, "", tagName+".", diags)

	if raw, ok, malformed := scanField(inner, FieldMaximum.String()); ok && !malformed {
		if v, err := unit.ParseScalar(raw); err != nil {
			diags.AddWarning("bad_maximum",
				fmt.Sprintf("unparsable maximum %q, defaults to 1", strings.TrimSpace(raw)),
				"", tagName+"."+FieldMaximum.String())
		} else {
			ch.maximum = v
		}
	} else if malformed {
		diags.AddWarning("unterminated_field", "unterminated <maximum> tag", "", tagName+"."+FieldMaximum.String())
	}

	return ch
}
