package calibration

import (
	"fmt"
	"reflect"

	"axiscal/unit"
)

// coerceUnit resolves the accepted unit representations: a unit.Unit value,
// a registry symbol or alias string, or a dimensionality descriptor (mapped
// to the canonical unit of that dimension).
func coerceUnit(v any) (unit.Unit, error) {
	switch u := v.(type) {
	case unit.Unit:
		return u, nil
	case *unit.Unit:
		if u == nil {
			return unit.Unit{}, fmt.Errorf("nil unit: %w", ErrType)
		}
		return *u, nil
	case string:
		resolved, err := unit.Lookup(u)
		if err != nil {
			return unit.Unit{}, fmt.Errorf("%v: %w", err, ErrType)
		}
		return resolved, nil
	case unit.Dimension:
		canonical, ok := unit.CanonicalFor(u)
		if !ok {
			return unit.Unit{}, fmt.Errorf("no canonical unit for dimension %s: %w", u, ErrType)
		}
		return canonical, nil
	default:
		return unit.Unit{}, fmt.Errorf("cannot interpret %T as a unit: %w", v, ErrType)
	}
}

// isUnitLike reports whether positional-argument inference should treat v as
// a unit. Strings count only when they resolve against the registry.
func isUnitLike(v any) bool {
	switch u := v.(type) {
	case unit.Unit, unit.Dimension:
		return true
	case *unit.Unit:
		return u != nil
	case string:
		_, err := unit.Lookup(u)
		return err == nil
	default:
		return false
	}
}

// coerceScalar converts any real or complex numeric kind, or a one-element
// slice/array of one, into a Scalar. The bool result reports success;
// failures are not errors here because positional inference probes with it.
func coerceScalar(v any) (unit.Scalar, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return complex(float64(rv.Int()), 0), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return complex(float64(rv.Uint()), 0), true
	case reflect.Float32, reflect.Float64:
		return complex(rv.Float(), 0), true
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex(), true
	case reflect.Slice, reflect.Array:
		if rv.Len() != 1 {
			return 0, false
		}
		return coerceScalar(rv.Index(0).Interface())
	case reflect.Ptr:
		if rv.IsNil() {
			return 0, false
		}
		return coerceScalar(rv.Elem().Interface())
	default:
		return 0, false
	}
}

// coerceScalarIn converts v into a Scalar expressed in the target units.
// Plain numerics pass through unchanged; a unit.Quantity must be convertible
// to target and is transparently rescaled. A Quantity with incompatible
// units, or an argument that is not scalar at all, is a type error.
func coerceScalarIn(v any, target unit.Unit, field FieldEnum) (unit.Scalar, error) {
	if rv := reflect.ValueOf(v); rv.IsValid() &&
		(rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 1 {
		return coerceScalarIn(rv.Index(0).Interface(), target, field)
	}

	if q, ok := v.(unit.Quantity); ok {
		converted, err := q.ConvertTo(target)
		if err != nil {
			return 0, fmt.Errorf("%s: %v: %w", field, err, ErrType)
		}

		return converted.Value, nil
	}

	s, ok := coerceScalar(v)
	if !ok {
		return 0, fmt.Errorf("%s: cannot interpret %T as a scalar: %w", field, v, ErrType)
	}

	return s, nil
}
