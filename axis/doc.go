// Package axis defines the axis vocabulary: the bit-flag type
// classification, the fixed type→default key/name/unit tables, and the
// ordered axis-tag collection that mirrors the array library's view of an
// array's dimensions.
package axis
