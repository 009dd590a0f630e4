// Package floats provides tolerance-based floating-point comparison used by
// calibration equivalence testing.
package floats

import "math"

// Default tolerances, matching the conventional isclose semantics.
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

// Close reports |a-b| <= atol + rtol*|b|. NaNs compare equal only when
// equalNaN is set; infinities compare equal only when identical.
func Close(a, b, rtol, atol float64, equalNaN bool) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return equalNaN && math.IsNaN(a) && math.IsNaN(b)
	}

	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// CloseComplex applies Close to real and imaginary parts independently.
func CloseComplex(a, b complex128, rtol, atol float64, equalNaN bool) bool {
	return Close(real(a), real(b), rtol, atol, equalNaN) &&
		Close(imag(a), imag(b), rtol, atol, equalNaN)
}
