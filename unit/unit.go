package unit

import (
	"fmt"
	"strings"
)

// Unit is an immutable unit of measure. Scale is the factor relative to the
// canonical unit of the same dimension (metre, second, radian, ...).
type Unit struct {
	Symbol string
	Dim    Dimension
	Scale  float64
}

// Units available to calibration. Symbols follow the conventional short
// forms; Lookup additionally accepts the aliases listed below.
var (
	Metre      = Unit{Symbol: "m", Dim: LengthDim, Scale: 1}
	Centimetre = Unit{Symbol: "cm", Dim: LengthDim, Scale: 1e-2}
	Millimetre = Unit{Symbol: "mm", Dim: LengthDim, Scale: 1e-3}
	Micrometre = Unit{Symbol: "µm", Dim: LengthDim, Scale: 1e-6}
	Nanometre  = Unit{Symbol: "nm", Dim: LengthDim, Scale: 1e-9}

	Second      = Unit{Symbol: "s", Dim: TimeDim, Scale: 1}
	Millisecond = Unit{Symbol: "ms", Dim: TimeDim, Scale: 1e-3}
	Microsecond = Unit{Symbol: "µs", Dim: TimeDim, Scale: 1e-6}
	Nanosecond  = Unit{Symbol: "ns", Dim: TimeDim, Scale: 1e-9}
	Minute      = Unit{Symbol: "min", Dim: TimeDim, Scale: 60}

	Hertz     = Unit{Symbol: "Hz", Dim: FrequencyDim, Scale: 1}
	Kilohertz = Unit{Symbol: "kHz", Dim: FrequencyDim, Scale: 1e3}
	Megahertz = Unit{Symbol: "MHz", Dim: FrequencyDim, Scale: 1e6}

	Radian = Unit{Symbol: "rad", Dim: AngleDim, Scale: 1}
	Degree = Unit{Symbol: "deg", Dim: AngleDim, Scale: 0.017453292519943295}

	Pixel     = Unit{Symbol: "px", Dim: Dimensionless, Scale: 1}
	Arbitrary = Unit{Symbol: "a.u.", Dim: Dimensionless, Scale: 1}
)

var registry = []Unit{
	Metre, Centimetre, Millimetre, Micrometre, Nanometre,
	Second, Millisecond, Microsecond, Nanosecond, Minute,
	Hertz, Kilohertz, Megahertz,
	Radian, Degree,
	Pixel, Arbitrary,
}

var aliases = map[string]Unit{
	"um":          Micrometre,
	"micrometer":  Micrometre,
	"micrometre":  Micrometre,
	"micrometers": Micrometre,
	"micron":      Micrometre,
	"microns":     Micrometre,
	"nanometer":   Nanometre,
	"nanometre":   Nanometre,
	"millimeter":  Millimetre,
	"millimetre":  Millimetre,
	"centimeter":  Centimetre,
	"centimetre":  Centimetre,
	"meter":       Metre,
	"metre":       Metre,
	"us":          Microsecond,
	"microsecond": Microsecond,
	"millisecond": Millisecond,
	"nanosecond":  Nanosecond,
	"second":      Second,
	"seconds":     Second,
	"minute":      Minute,
	"hertz":       Hertz,
	"hz":          Hertz,
	"radian":      Radian,
	"radians":     Radian,
	"degree":      Degree,
	"degrees":     Degree,
	"pixel":       Pixel,
	"pixels":      Pixel,
	"arbitrary":   Arbitrary,
	"au":          Arbitrary,
	"a.u":         Arbitrary,
	"":            Arbitrary,
}

var bySymbol = func() map[string]Unit {
	idx := make(map[string]Unit, len(registry))
	for _, u := range registry {
		idx[u.Symbol] = u
	}

	return idx
}()

// Lookup resolves a unit symbol or spelled-out alias. Symbols match
// case-sensitively first (so that "m" and "M"-prefixed units stay distinct),
// aliases case-insensitively.
func Lookup(s string) (Unit, error) {
	if u, ok := bySymbol[s]; ok {
		return u, nil
	}

	if u, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}

	return Unit{}, fmt.Errorf("unknown unit %q", s)
}

// CanonicalFor returns the scale-1 unit of the given dimension, if the
// registry has one.
func CanonicalFor(d Dimension) (Unit, bool) {
	for _, u := range registry {
		if u.Dim == d && u.Scale == 1 {
			return u, true
		}
	}

	return Unit{}, false
}

// Convertible returns true when a value in unit a can be expressed in unit b.
func Convertible(a, b Unit) bool {
	return a.Dim == b.Dim
}

// ConversionFactor returns the multiplier that converts a value from unit
// "from" into unit "to".
func ConversionFactor(from, to Unit) (float64, error) {
	if !Convertible(from, to) {
		return 0, fmt.Errorf("unit %q (%s) is not convertible to %q (%s)",
			from.Symbol, from.Dim, to.Symbol, to.Dim)
	}

	return from.Scale / to.Scale, nil
}

// String returns the unit symbol.
func (u Unit) String() string {
	return u.Symbol
}

// IsZero reports whether u is the zero Unit (no symbol, no scale). The zero
// Unit is not a valid unit; use Arbitrary for "no particular unit".
func (u Unit) IsZero() bool {
	return u == Unit{}
}
