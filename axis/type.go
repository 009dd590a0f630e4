package axis

import (
	"fmt"
	"strings"

	"axiscal/unit"
)

// Type classifies the physical meaning of an axis. Values combine with
// bitwise OR; the meaningful combinations are Frequency with one of Space,
// Angle or Time (a transformed-domain axis).
type Type uint32

const (
	Space Type = 1 << iota // spatial extent
	Angle                  // angular extent
	Time                   // temporal extent
	Frequency              // transformed domain
	Channels               // per-channel subdivision

	// Unknown is the zero classification.
	Unknown Type = 0
	// NonChannel matches every non-channel classification.
	NonChannel = Space | Angle | Time | Frequency
	// AllAxes matches every classification.
	AllAxes = NonChannel | Channels
)

var typeNames = []struct {
	t    Type
	name string
}{
	{Space, "Space"},
	{Angle, "Angle"},
	{Time, "Time"},
	{Frequency, "Frequency"},
	{Channels, "Channels"},
}

// Has returns true when every flag of o is set in t.
func (t Type) Has(o Type) bool {
	return t&o == o
}

// Overlaps returns true when t and o share at least one flag, or both are
// Unknown.
func (t Type) Overlaps(o Type) bool {
	if t == Unknown || o == Unknown {
		return t == o
	}

	return t&o != 0
}

// String renders the symbolic form used by the textual calibration format:
// single flags by name, combinations joined with "|".
func (t Type) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case NonChannel:
		return "NonChannel"
	case AllAxes:
		return "AllAxes"
	}

	var parts []string
	for _, tn := range typeNames {
		if t.Has(tn.t) {
			parts = append(parts, tn.name)
		}
	}

	if rem := t &^ AllAxes; rem != 0 || len(parts) == 0 {
		return fmt.Sprintf("Type(%d)", uint32(t))
	}

	return strings.Join(parts, "|")
}

// ParseType parses the symbolic form produced by Type.String. Matching is
// case-insensitive; "|"-joined combinations are OR-ed together.
func ParseType(s string) (Type, error) {
	var out Type
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))

		switch part {
		case "unknown", "unknownaxistype", "":
			// contributes no flags
		case "space":
			out |= Space
		case "angle":
			out |= Angle
		case "time":
			out |= Time
		case "frequency":
			out |= Frequency
		case "channels", "channel":
			out |= Channels
		case "nonchannel":
			out |= NonChannel
		case "allaxes":
			out |= AllAxes
		default:
			return Unknown, fmt.Errorf("unknown axis type %q", part)
		}
	}

	return out, nil
}

// typeDefaults is the fixed type→(key, name, unit) table. Built once, never
// mutated. Combination entries come before single flags so they win lookup.
var typeDefaults = []struct {
	t     Type
	key   string
	name  string
	units unit.Unit
}{
	{Space | Frequency, "sf", "Space Frequency", unit.Hertz},
	{Angle | Frequency, "af", "Angle Frequency", unit.Hertz},
	{Time | Frequency, "tf", "Time Frequency", unit.Hertz},
	{Channels, "c", "Channels", unit.Arbitrary},
	{Frequency, "f", "Frequency", unit.Hertz},
	{Time, "t", "Time", unit.Second},
	{Angle, "a", "Angle", unit.Radian},
	{Space, "s", "Space", unit.Micrometre},
	{Unknown, "?", "Unknown", unit.Pixel},
}

func defaultsFor(t Type) (key, name string, units unit.Unit) {
	for _, d := range typeDefaults {
		if d.t == Unknown {
			continue
		}

		if t.Has(d.t) {
			return d.key, d.name, d.units
		}
	}

	return "?", "Unknown", unit.Pixel
}

// DefaultKey returns the conventional 1-2 character symbol for a type.
func DefaultKey(t Type) string {
	key, _, _ := defaultsFor(t)
	return key
}

// DefaultName returns the conventional human-readable name for a type.
func DefaultName(t Type) string {
	_, name, _ := defaultsFor(t)
	return name
}

// DefaultUnits returns the canonical unit for a type.
func DefaultUnits(t Type) unit.Unit {
	_, _, units := defaultsFor(t)
	return units
}

// TypicalDim returns the dimensionality conventionally carried by axes of
// the given type, and whether a convention exists at all. Unknown axes have
// no convention.
func TypicalDim(t Type) (unit.Dimension, bool) {
	switch {
	case t == Unknown:
		return unit.Dimension{}, false
	case t.Has(Channels):
		return unit.Dimensionless, true
	case t.Has(Frequency):
		return unit.FrequencyDim, true
	case t.Has(Time):
		return unit.TimeDim, true
	case t.Has(Angle):
		return unit.AngleDim, true
	case t.Has(Space):
		return unit.LengthDim, true
	default:
		return unit.Dimension{}, false
	}
}
