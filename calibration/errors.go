package calibration

import "errors"

// Error kinds, tested with errors.Is. They mirror the three failure classes
// of the API surface: an argument of the wrong shape, an unknown axis or
// channel, and a value that is well-formed but unacceptable (incompatible
// units, type mismatch between an axis and its stored calibration).
var (
	ErrType  = errors.New("invalid argument type")
	ErrKey   = errors.New("unknown axis or channel")
	ErrValue = errors.New("invalid value")
)
