package unit

import (
	"strconv"
	"strings"
)

// Scalar is the numeric type calibration works with. Real values carry a
// zero imaginary part.
type Scalar = complex128

// FormatScalar renders a scalar so that ParseScalar recovers it exactly for
// any finite value. Real values are rendered as plain floats.
func FormatScalar(v Scalar) string {
	if imag(v) == 0 {
		return strconv.FormatFloat(real(v), 'g', -1, 64)
	}

	return strconv.FormatComplex(v, 'g', -1, 128)
}

// ParseScalar parses a real or complex literal as produced by FormatScalar.
// Plain floats, "NaN", "+Inf"/"-Inf" and parenthesized complex forms such as
// "(1.5+0.25i)" are all accepted.
func ParseScalar(s string) (Scalar, error) {
	s = strings.TrimSpace(s)

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return complex(f, 0), nil
	}

	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, err
	}

	return c, nil
}
