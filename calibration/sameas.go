package calibration

import (
	"fmt"

	"axiscal/axis"
	"axiscal/internal/floats"
	"axiscal/unit"
)

// Ignore selects which equivalence checks SameAs skips.
type Ignore uint8

const (
	IgnoreUnits Ignore = 1 << iota
	IgnoreOrigin
	IgnoreResolution
)

// SameAsOptions tunes equivalence testing. The zero value means: compare
// everything, with the package default tolerances. Tolerances apply only
// when both RTol and ATol are left zero-valued; set either one to pin both.
type SameAsOptions struct {
	// Channel restricts the comparison to one channel (index or name) of a
	// Channels axis.
	Channel any
	// Ignore skips individual checks.
	Ignore Ignore
	// RTol and ATol bound the numeric closeness of origin and resolution.
	RTol, ATol float64
	// EqualNaN makes NaN compare equal to NaN.
	EqualNaN bool

	tolerancesSet bool
}

// WithTolerances pins explicit tolerances, including exact zero.
func (o SameAsOptions) WithTolerances(rtol, atol float64) SameAsOptions {
	o.RTol = rtol
	o.ATol = atol
	o.tolerancesSet = true

	return o
}

func (o SameAsOptions) tolerances() (rtol, atol float64) {
	if !o.tolerancesSet && o.RTol == 0 && o.ATol == 0 {
		return floats.DefaultRTol, floats.DefaultATol
	}

	return o.RTol, o.ATol
}

// SameAs tests whether the calibration of one axis (or one channel of it)
// is equivalent between two aggregates: equal axis type, convertible units,
// and origin/resolution numerically close within the tolerances. Channels
// axes additionally require equal channel counts and are compared channel
// by channel. Unknown keys and channels are key errors; a mere mismatch is
// a false result, not an error.
func (x *Axes) SameAs(other *Axes, key string, opts SameAsOptions) (bool, error) {
	if other == nil {
		return false, fmt.Errorf("nil comparand: %w", ErrType)
	}

	a, err := x.Record(key)
	if err != nil {
		return false, err
	}

	b, err := other.Record(key)
	if err != nil {
		return false, err
	}

	if a.Type() != b.Type() {
		return false, nil
	}

	if opts.Channel != nil {
		if !a.Type().Has(axis.Channels) {
			return false, fmt.Errorf("axis %q is not a Channels axis: %w", key, ErrKey)
		}

		ca, err := a.Channel(opts.Channel)
		if err != nil {
			return false, err
		}

		cb, err := b.Channel(opts.Channel)
		if err != nil {
			return false, err
		}

		return recordsClose(&ca.Record, &cb.Record, opts), nil
	}

	if !recordsClose(&a.Record, &b.Record, opts) {
		return false, nil
	}

	if a.Type().Has(axis.Channels) {
		if a.NumChannels() != b.NumChannels() {
			return false, nil
		}

		for i, ca := range a.Channels() {
			if !recordsClose(&ca.Record, &b.Channels()[i].Record, opts) {
				return false, nil
			}
		}
	}

	return true, nil
}

// recordsClose compares two records under the options: unit convertibility
// (unless ignored), then origin and resolution closeness with b's values
// expressed in a's units.
func recordsClose(a, b *Record, opts SameAsOptions) bool {
	factor := 1.0

	if opts.Ignore&IgnoreUnits == 0 {
		f, err := unit.ConversionFactor(b.units, a.units)
		if err != nil {
			return false
		}
		factor = f
	}

	rtol, atol := opts.tolerances()

	if opts.Ignore&IgnoreOrigin == 0 {
		if !floats.CloseComplex(a.origin, b.origin*complex(factor, 0), rtol, atol, opts.EqualNaN) {
			return false
		}
	}

	if opts.Ignore&IgnoreResolution == 0 {
		if !floats.CloseComplex(a.resolution, b.resolution*complex(factor, 0), rtol, atol, opts.EqualNaN) {
			return false
		}
	}

	return true
}
