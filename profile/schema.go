// Package profile provides human-reviewed YAML calibration profiles: a
// declarative file mapping axis keys to calibration values, bulk-applied to
// an array's axes. Profiles carry real-valued scalars only; complex origins
// stay an API-level feature.
package profile

// File represents the root of a YAML calibration profile.
type File struct {
	// Version of the profile schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Axes lists per-axis calibration entries, keyed by axis key.
	Axes []AxisSpec `yaml:"axes"`
}

// AxisSpec defines the calibration of one axis. Absent fields keep the
// axis's current values.
type AxisSpec struct {
	// Key of the axis this entry calibrates.
	Key string `yaml:"key"`

	// Type is the symbolic axis classification ("Space", "Time|Frequency",
	// ...). Setting it resets units, name and key to the type defaults
	// before the remaining fields apply.
	Type string `yaml:"type,omitempty"`

	// Name is the human-readable axis name.
	Name string `yaml:"name,omitempty"`

	// Units is a registry symbol or alias ("µm", "micron", "s", ...).
	Units string `yaml:"units,omitempty"`

	// Origin is the calibrated value of sample index 0.
	Origin *float64 `yaml:"origin,omitempty"`

	// Resolution is the calibrated distance between consecutive samples.
	Resolution *float64 `yaml:"resolution,omitempty"`

	// Channels calibrates individual channels of a Channels axis.
	Channels []ChannelSpec `yaml:"channels,omitempty"`
}

// ChannelSpec defines the calibration of one channel.
type ChannelSpec struct {
	// Index selects an existing channel, or names the index of a new one.
	Index *int `yaml:"index,omitempty"`

	// Name of the channel.
	Name string `yaml:"name,omitempty"`

	// Units is a registry symbol or alias.
	Units string `yaml:"units,omitempty"`

	// Minimum is the channel's lower bound (an alias for its origin).
	Minimum *float64 `yaml:"minimum,omitempty"`

	// Maximum is the channel's upper bound.
	Maximum *float64 `yaml:"maximum,omitempty"`

	// Resolution is the per-sample spacing along the channel.
	Resolution *float64 `yaml:"resolution,omitempty"`
}
