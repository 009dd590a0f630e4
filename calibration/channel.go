package calibration

import (
	"fmt"

	"axiscal/unit"
)

// Channel is the calibration of one channel of a Channels axis. Beyond the
// shared record it carries a name, a non-negative index unique within its
// owning axis, and a maximum value. Minimum is an alias for the record's
// origin.
type Channel struct {
	Record
	name    string
	index   int
	maximum unit.Scalar
}

// NewChannel builds a channel calibration. Defaults: arbitrary units,
// origin 0, resolution 1, maximum 1, name "channel_<index>".
func NewChannel(index int, opts ...Option) (*Channel, error) {
	if index < 0 {
		return nil, fmt.Errorf("channel index %d is negative: %w", index, ErrValue)
	}

	c := &Channel{
		Record:  newRecord(unit.Arbitrary),
		index:   index,
		name:    defaultChannelName(index),
		maximum: 1,
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.apply(&c.Record); err != nil {
		return nil, err
	}

	if cfg.name != nil {
		c.name = *cfg.name
	}

	if cfg.maximum != nil {
		if err := c.SetMaximum(cfg.maximum); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func defaultChannelName(index int) string {
	return fmt.Sprintf("channel_%d", index)
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// SetName sets the channel name. Uniqueness within an axis is enforced by
// Axis.AddChannel, not here.
func (c *Channel) SetName(name string) {
	c.name = name
}

// Index returns the channel index.
func (c *Channel) Index() int {
	return c.index
}

// SetIndex sets the channel index. Negative indices are rejected.
func (c *Channel) SetIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("channel index %d is negative: %w", index, ErrValue)
	}

	c.index = index

	return nil
}

// Maximum returns the channel's upper-bound value.
func (c *Channel) Maximum() unit.Scalar {
	return c.maximum
}

// SetMaximum sets the upper bound, with the same argument contract as
// SetOrigin.
func (c *Channel) SetMaximum(v any) error {
	s, err := coerceScalarIn(v, c.units, FieldMaximum)
	if err != nil {
		return err
	}

	c.maximum = s

	return nil
}

// Minimum is an alias for Origin: the channel's lower-bound value.
func (c *Channel) Minimum() unit.Scalar {
	return c.Origin()
}

// SetMinimum is an alias for SetOrigin.
func (c *Channel) SetMinimum(v any) error {
	return c.SetOrigin(v)
}

// Rescale converts units, origin, resolution and maximum jointly.
func (c *Channel) Rescale(newUnits any) error {
	u, factor, err := c.rescaleFactor(newUnits)
	if err != nil {
		return err
	}

	c.units = u
	c.origin *= complex(factor, 0)
	c.resolution *= complex(factor, 0)
	c.maximum *= complex(factor, 0)

	return nil
}

// Clone returns an independent copy.
func (c *Channel) Clone() *Channel {
	clone := *c
	return &clone
}

// Equal compares two channels field for field.
func (c *Channel) Equal(other *Channel) bool {
	if c == nil || other == nil {
		return c == other
	}

	return recordEqual(&c.Record, &other.Record) &&
		c.name == other.name &&
		c.index == other.index &&
		c.maximum == other.maximum
}
