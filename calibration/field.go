package calibration

//go:generate go tool stringer -type=FieldEnum -linecomment -output=field_string.go

// FieldEnum identifies one calibration field in diagnostics and in the
// textual format. String() yields the wire-format tag name.
type FieldEnum int

const (
	_ FieldEnum = iota // skip zero value, use it as a default (invalid) value for FieldEnum

	FieldType       // type
	FieldKey        // key
	FieldName       // name
	FieldUnits      // units
	FieldOrigin     // origin
	FieldResolution // resolution
	FieldMinimum    // minimum
	FieldMaximum    // maximum

	// FieldTotal is the number of fields defined, not counting the skipped
	// zero value.
	FieldTotal = int(iota) - 1
)
