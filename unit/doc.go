// Package unit provides the units of measure used by axis calibration.
//
// Key capabilities:
//   - Dimension: an exponent vector over the base dimensions
//   - Unit: an immutable named unit (symbol, dimension, scale)
//   - Lookup: symbol/alias resolution against a fixed registry
//   - Quantity: a scalar value bound to a unit, with conversion
//
// The registry is built once and never mutated at runtime. Two units are
// convertible exactly when their dimension vectors are equal, in which case
// the conversion factor is the ratio of their scales.
package unit
