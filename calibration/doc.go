// Package calibration is the calibration metadata core: typed per-axis and
// per-channel records, the textual fragment codec that persists them inside
// an axis description, and the per-array aggregate that keeps records in
// step with a borrowed axis-tag collection.
//
// Key capabilities:
//   - Record: shared {units, origin, resolution} state with strict setters
//   - Axis / Channel: the two record variants and their invariants
//   - Format / Parse / Embed: the <axis_calibration> fragment codec
//   - Axes: per-array aggregation, synchronization and equivalence
//
// Direct API calls fail strictly; only Parse degrades per-field, returning
// structured diagnostics alongside its best-effort result.
package calibration
