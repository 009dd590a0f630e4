package unit

import (
	"strconv"
	"strings"
)

// Dimension is an exponent vector over the base dimensions. Angle is carried
// as its own pseudo-dimension so that radians and degrees stay distinct from
// dimensionless values.
type Dimension struct {
	Length      int8
	Mass        int8
	Time        int8
	Current     int8
	Temperature int8
	Amount      int8
	Luminous    int8
	Angle       int8
}

// Base dimensions used by the registry.
var (
	Dimensionless = Dimension{}
	LengthDim     = Dimension{Length: 1}
	TimeDim       = Dimension{Time: 1}
	FrequencyDim  = Dimension{Time: -1}
	AngleDim      = Dimension{Angle: 1}
)

// IsZero returns true for the dimensionless vector.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// String returns a compact form such as "L", "T^-1" or "1" (dimensionless).
func (d Dimension) String() string {
	if d.IsZero() {
		return "1"
	}

	parts := make([]string, 0, 4)
	for _, c := range []struct {
		sym string
		exp int8
	}{
		{"L", d.Length},
		{"M", d.Mass},
		{"T", d.Time},
		{"I", d.Current},
		{"Θ", d.Temperature},
		{"N", d.Amount},
		{"J", d.Luminous},
		{"A", d.Angle},
	} {
		switch c.exp {
		case 0:
		case 1:
			parts = append(parts, c.sym)
		default:
			parts = append(parts, c.sym+"^"+strconv.Itoa(int(c.exp)))
		}
	}

	return strings.Join(parts, "·")
}
