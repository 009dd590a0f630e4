// Package diagnostic provides structured warnings and errors for the
// calibration text codec and profile application.
//
// Key capabilities:
//   - Per-field parse problems with defaulting notices
//   - Legacy-format fold-in warnings
//   - Channel collision resolution reports
//
// Diagnostics travel alongside results instead of aborting them: best-effort
// parsing records what it had to repair and keeps going, while direct API
// calls stay strict and return plain errors.
package diagnostic
