package calibration

import (
	"fmt"
	"strings"

	"axiscal/unit"
)

// The persisted wire format is a marker-delimited fragment embedded in the
// free-text axis description:
//
//	<axis_calibration><type>Space</type><key>x</key><name>width</name>
//	<units>µm</units><origin>0</origin><resolution>0.25</resolution>
//	<channel_0><name>red</name>...</channel_0></axis_calibration>
//
// The axis type is written symbolically, never as a raw integer. A legacy
// standalone <name> fragment (pre-dating the unified format) is still
// recognized on input and replaced on output.
const (
	fragmentOpen  = "<axis_calibration>"
	fragmentClose = "</axis_calibration>"
	legacyOpen    = "<name>"
	legacyClose   = "</name>"
)

// Format serializes the axis calibration as an embeddable fragment.
func Format(a *Axis) string {
	var b strings.Builder
	b.WriteString(fragmentOpen)
	writeField(&b, FieldType, a.typ.String())
	writeField(&b, FieldKey, a.key)
	writeField(&b, FieldName, a.name)
	writeField(&b, FieldUnits, a.Units().Symbol)
	writeField(&b, FieldOrigin, unit.FormatScalar(a.Origin()))
	writeField(&b, FieldResolution, unit.FormatScalar(a.Resolution()))

	for _, ch := range a.channels {
		tag := fmt.Sprintf("channel_%d", ch.Index())
		b.WriteString("<" + tag + ">")
		writeField(&b, FieldName, ch.Name())
		writeField(&b, FieldUnits, ch.Units().Symbol)
		writeField(&b, FieldOrigin, unit.FormatScalar(ch.Origin()))
		writeField(&b, FieldMaximum, unit.FormatScalar(ch.Maximum()))
		writeField(&b, FieldResolution, unit.FormatScalar(ch.Resolution()))
		b.WriteString("</" + tag + ">")
	}

	b.WriteString(fragmentClose)

	return b.String()
}

func writeField(b *strings.Builder, f FieldEnum, value string) {
	name := f.String()
	b.WriteString("<" + name + ">")
	b.WriteString(value)
	b.WriteString("</" + name + ">")
}

// Embed returns descriptor with the axis's calibration fragment spliced in:
// any pre-existing calibration fragment and any legacy <name> fragment are
// removed unconditionally, all other free text is preserved, and the fresh
// fragment is appended.
func Embed(descriptor string, a *Axis) string {
	rest := Strip(descriptor)
	frag := Format(a)

	if rest == "" {
		return frag
	}

	if strings.HasSuffix(rest, " ") || strings.HasSuffix(rest, "\n") || strings.HasSuffix(rest, "\t") {
		return rest + frag
	}

	return rest + " " + frag
}

// Strip removes every calibration fragment and legacy <name> fragment from
// the descriptor, leaving the remaining free text joined in order.
func Strip(descriptor string) string {
	out := removeSpans(descriptor, fragmentOpen, fragmentClose)
	out = removeSpans(out, legacyOpen, legacyClose)

	return out
}

// removeSpans deletes every openTag..closeTag span. An unterminated open
// marker swallows the remainder of the string, matching the parser's
// recovery.
func removeSpans(s, openTag, closeTag string) string {
	for {
		i := strings.Index(s, openTag)
		if i < 0 {
			return s
		}

		j := strings.Index(s[i+len(openTag):], closeTag)
		if j < 0 {
			return s[:i]
		}

		s = s[:i] + s[i+len(openTag)+j+len(closeTag):]
	}
}
