package unit

import "fmt"

// Quantity is a scalar value bound to a unit.
type Quantity struct {
	Value Scalar
	Unit  Unit
}

// Q is shorthand for constructing a real-valued quantity.
func Q(value float64, u Unit) Quantity {
	return Quantity{Value: complex(value, 0), Unit: u}
}

// Convertible returns true when the quantity can be expressed in unit u.
func (q Quantity) Convertible(u Unit) bool {
	return Convertible(q.Unit, u)
}

// ConvertTo returns the quantity expressed in unit u.
func (q Quantity) ConvertTo(u Unit) (Quantity, error) {
	factor, err := ConversionFactor(q.Unit, u)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: q.Value * complex(factor, 0), Unit: u}, nil
}

// String renders the quantity as "<value> <symbol>".
func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", FormatScalar(q.Value), q.Unit.Symbol)
}
