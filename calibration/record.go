package calibration

import (
	"fmt"

	"axiscal/unit"
)

// Record holds the calibration state shared by axes and channels: the unit
// of measure, the origin (the calibrated value of sample index 0) and the
// resolution (the calibrated distance between consecutive samples).
//
// Every setter changes exactly one field. In particular SetUnits does not
// rescale the stored origin or resolution; Rescale is the single operation
// that converts all three consistently.
type Record struct {
	units      unit.Unit
	origin     unit.Scalar
	resolution unit.Scalar
}

func newRecord(units unit.Unit) Record {
	return Record{units: units, origin: 0, resolution: 1}
}

// Units returns the record's unit of measure.
func (r *Record) Units() unit.Unit {
	return r.units
}

// Origin returns the calibrated value of sample index 0.
func (r *Record) Origin() unit.Scalar {
	return r.origin
}

// Resolution returns the calibrated distance between consecutive samples.
func (r *Record) Resolution() unit.Scalar {
	return r.resolution
}

// OriginQuantity returns the origin bound to the record's units.
func (r *Record) OriginQuantity() unit.Quantity {
	return unit.Quantity{Value: r.origin, Unit: r.units}
}

// ResolutionQuantity returns the resolution bound to the record's units.
func (r *Record) ResolutionQuantity() unit.Quantity {
	return unit.Quantity{Value: r.resolution, Unit: r.units}
}

// SetUnits sets the unit of measure. It accepts a unit.Unit, a registry
// symbol or alias, or a unit.Dimension. The stored origin and resolution
// are left untouched; call Rescale to convert them along.
func (r *Record) SetUnits(v any) error {
	u, err := coerceUnit(v)
	if err != nil {
		return fmt.Errorf("%s: %w", FieldUnits, err)
	}

	r.units = u

	return nil
}

// SetOrigin sets the origin. Accepts any real or complex numeric, a
// one-element slice of one, or a unit.Quantity convertible to the record's
// units (rescaled transparently). The record is unchanged on error.
func (r *Record) SetOrigin(v any) error {
	s, err := coerceScalarIn(v, r.units, FieldOrigin)
	if err != nil {
		return err
	}

	r.origin = s

	return nil
}

// SetResolution sets the resolution, with the same argument contract as
// SetOrigin.
func (r *Record) SetResolution(v any) error {
	s, err := coerceScalarIn(v, r.units, FieldResolution)
	if err != nil {
		return err
	}

	r.resolution = s

	return nil
}

// Rescale converts units, origin and resolution jointly into newUnits
// (a unit.Unit, symbol or dimension). It fails when the new unit is not
// convertible and leaves the record unchanged on failure.
func (r *Record) Rescale(newUnits any) error {
	u, err := coerceUnit(newUnits)
	if err != nil {
		return fmt.Errorf("rescale: %w", err)
	}

	factor, err := unit.ConversionFactor(r.units, u)
	if err != nil {
		return fmt.Errorf("rescale: %v: %w", err, ErrValue)
	}

	r.units = u
	r.origin *= complex(factor, 0)
	r.resolution *= complex(factor, 0)

	return nil
}

func (r *Record) rescaleFactor(newUnits any) (unit.Unit, float64, error) {
	u, err := coerceUnit(newUnits)
	if err != nil {
		return unit.Unit{}, 0, fmt.Errorf("rescale: %w", err)
	}

	factor, err := unit.ConversionFactor(r.units, u)
	if err != nil {
		return unit.Unit{}, 0, fmt.Errorf("rescale: %v: %w", err, ErrValue)
	}

	return u, factor, nil
}

// recordEqual compares two records field for field.
func recordEqual(a, b *Record) bool {
	return a.units == b.units && a.origin == b.origin && a.resolution == b.resolution
}

// Option configures construction of an Axis or Channel calibration. Named
// options always win over the positional Values form.
type Option func(*config)

type config struct {
	units      any
	origin     any
	resolution any
	maximum    any
	name       *string
	key        *string
	values     []any
}

// WithUnits names the unit of measure (unit.Unit, symbol or dimension).
func WithUnits(v any) Option {
	return func(c *config) { c.units = v }
}

// WithOrigin names the origin value.
func WithOrigin(v any) Option {
	return func(c *config) { c.origin = v }
}

// WithResolution names the resolution value.
func WithResolution(v any) Option {
	return func(c *config) { c.resolution = v }
}

// WithMaximum names the channel maximum value (channels only).
func WithMaximum(v any) Option {
	return func(c *config) { c.maximum = v }
}

// WithName names the axis or channel.
func WithName(name string) Option {
	return func(c *config) { c.name = &name }
}

// WithKey sets the axis key explicitly (axes only).
func WithKey(key string) Option {
	return func(c *config) { c.key = &key }
}

// Values supplies positional values in encounter order: the first unit-like
// value becomes the units, then the first scalar the origin, the next the
// resolution. Values never overrides a named option.
func Values(vals ...any) Option {
	return func(c *config) { c.values = append(c.values, vals...) }
}

// apply populates the record from the resolved configuration. Positional
// values fill only the slots no named option claimed.
func (c *config) apply(r *Record) error {
	nextScalar := 0
	for _, v := range c.values {
		if isUnitLike(v) {
			if c.units == nil {
				c.units = v
			}
			continue
		}

		if _, ok := coerceScalar(v); !ok {
			if _, isQ := v.(unit.Quantity); !isQ {
				return fmt.Errorf("positional value %T is neither a unit nor a scalar: %w", v, ErrType)
			}
		}

		switch nextScalar {
		case 0:
			if c.origin == nil {
				c.origin = v
			}
		case 1:
			if c.resolution == nil {
				c.resolution = v
			}
		default:
			return fmt.Errorf("too many positional values: %w", ErrValue)
		}
		nextScalar++
	}

	if c.units != nil {
		if err := r.SetUnits(c.units); err != nil {
			return err
		}
	}

	if c.origin != nil {
		if err := r.SetOrigin(c.origin); err != nil {
			return err
		}
	}

	if c.resolution != nil {
		if err := r.SetResolution(c.resolution); err != nil {
			return err
		}
	}

	return nil
}
