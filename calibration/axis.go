package calibration

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"axiscal/axis"
)

// Axis is the calibration of one array axis. Beyond the shared record it
// carries the axis type classification, a human-readable name, the 1-2
// character axis key, and (for Channels axes) an ordered collection of
// per-channel calibrations keyed by channel name.
type Axis struct {
	Record
	typ      axis.Type
	name     string
	key      string
	channels []*Channel
}

// NewAxis builds an axis calibration for the given type. Units, name and
// key default from the type's table; a Channels type starts with one
// default channel at index 0.
func NewAxis(t axis.Type, opts ...Option) (*Axis, error) {
	a := &Axis{
		Record: newRecord(axis.DefaultUnits(t)),
		typ:    t,
		name:   axis.DefaultName(t),
		key:    axis.DefaultKey(t),
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.apply(&a.Record); err != nil {
		return nil, err
	}

	if cfg.name != nil {
		a.name = *cfg.name
	}

	if cfg.key != nil {
		a.key = *cfg.key
	}

	if t.Has(axis.Channels) {
		ch, err := NewChannel(0)
		if err != nil {
			return nil, err
		}
		a.channels = append(a.channels, ch)
	}

	a.warnAtypicalUnits()

	return a, nil
}

// Type returns the axis type classification.
func (a *Axis) Type() axis.Type {
	return a.typ
}

// Name returns the axis name.
func (a *Axis) Name() string {
	return a.name
}

// SetName sets the axis name only.
func (a *Axis) SetName(name string) {
	a.name = name
}

// Key returns the axis key.
func (a *Axis) Key() string {
	return a.key
}

// SetKey sets the axis key only. Empty keys are rejected.
func (a *Axis) SetKey(key string) error {
	if key == "" {
		return fmt.Errorf("axis key must not be empty: %w", ErrValue)
	}

	a.key = key

	return nil
}

// SetUnits sets the unit of measure and warns (without failing) when its
// dimensionality is atypical for the axis type.
func (a *Axis) SetUnits(v any) error {
	if err := a.Record.SetUnits(v); err != nil {
		return err
	}

	a.warnAtypicalUnits()

	return nil
}

func (a *Axis) warnAtypicalUnits() {
	typical, ok := axis.TypicalDim(a.typ)
	if !ok || a.Units().Dim == typical {
		return
	}

	logrus.WithFields(logrus.Fields{
		"axis":  a.key,
		"type":  a.typ.String(),
		"units": a.Units().Symbol,
	}).Warn("unit dimensionality is atypical for this axis type")
}

// SetType reclassifies the axis. This is the one setter with documented
// multi-field side effects: units, name and key are reset from the new
// type's defaults, entering Channels creates one default channel when none
// exists, and leaving Channels discards all channel entries.
func (a *Axis) SetType(t axis.Type) {
	if t == a.typ {
		return
	}

	a.typ = t
	a.units = axis.DefaultUnits(t)
	a.name = axis.DefaultName(t)
	a.key = axis.DefaultKey(t)

	switch {
	case t.Has(axis.Channels) && len(a.channels) == 0:
		ch, _ := NewChannel(0)
		a.channels = append(a.channels, ch)
	case !t.Has(axis.Channels) && len(a.channels) > 0:
		a.channels = nil
	}
}

// NumChannels returns the number of channel entries.
func (a *Axis) NumChannels() int {
	return len(a.channels)
}

// Channels returns the channel entries in insertion order. The slice is
// shared; treat it as read-only.
func (a *Axis) Channels() []*Channel {
	return a.channels
}

// Channel resolves a channel by index (int) or name (string).
func (a *Axis) Channel(sel any) (*Channel, error) {
	switch s := sel.(type) {
	case int:
		for _, ch := range a.channels {
			if ch.index == s {
				return ch, nil
			}
		}
		return nil, fmt.Errorf("axis %q has no channel with index %d: %w", a.key, s, ErrKey)
	case string:
		for _, ch := range a.channels {
			if ch.name == s {
				return ch, nil
			}
		}
		return nil, fmt.Errorf("axis %q has no channel named %q: %w", a.key, s, ErrKey)
	default:
		return nil, fmt.Errorf("channel selector must be an index or a name, got %T: %w", sel, ErrType)
	}
}

// AddChannel inserts a channel entry, resolving collisions: a name already
// in use gains a numeric suffix, an index already in use is bumped to
// max(existing)+1. Collisions are reported as warnings, never as errors.
// Returns the stored channel.
func (a *Axis) AddChannel(ch *Channel) *Channel {
	if ch == nil {
		return nil
	}

	if a.hasChannelName(ch.name) {
		renamed := a.freeChannelName(ch.name)
		logrus.WithFields(logrus.Fields{
			"axis": a.key,
			"from": ch.name,
			"to":   renamed,
		}).Warn("duplicate channel name renamed")
		ch.name = renamed
	}

	if a.hasChannelIndex(ch.index) {
		bumped := a.maxChannelIndex() + 1
		logrus.WithFields(logrus.Fields{
			"axis": a.key,
			"from": ch.index,
			"to":   bumped,
		}).Warn("duplicate channel index reassigned")
		ch.index = bumped
	}

	a.channels = append(a.channels, ch)

	return ch
}

// RemoveChannel deletes a channel by index or name.
func (a *Axis) RemoveChannel(sel any) error {
	ch, err := a.Channel(sel)
	if err != nil {
		return err
	}

	for i, c := range a.channels {
		if c == ch {
			a.channels = append(a.channels[:i], a.channels[i+1:]...)
			break
		}
	}

	return nil
}

func (a *Axis) hasChannelName(name string) bool {
	for _, c := range a.channels {
		if c.name == name {
			return true
		}
	}

	return false
}

func (a *Axis) hasChannelIndex(index int) bool {
	for _, c := range a.channels {
		if c.index == index {
			return true
		}
	}

	return false
}

func (a *Axis) maxChannelIndex() int {
	maxIdx := -1
	for _, c := range a.channels {
		if c.index > maxIdx {
			maxIdx = c.index
		}
	}

	return maxIdx
}

func (a *Axis) freeChannelName(base string) string {
	for n := 1; ; n++ {
		candidate := base + "_" + strconv.Itoa(n)
		if !a.hasChannelName(candidate) {
			return candidate
		}
	}
}

// Clone returns an independent deep copy.
func (a *Axis) Clone() *Axis {
	clone := *a
	clone.channels = make([]*Channel, len(a.channels))
	for i, ch := range a.channels {
		clone.channels[i] = ch.Clone()
	}

	return &clone
}

// Equal compares two axis calibrations field for field, channels included.
func (a *Axis) Equal(other *Axis) bool {
	if a == nil || other == nil {
		return a == other
	}

	if !recordEqual(&a.Record, &other.Record) ||
		a.typ != other.typ || a.name != other.name || a.key != other.key ||
		len(a.channels) != len(other.channels) {
		return false
	}

	for i, ch := range a.channels {
		if !ch.Equal(other.channels[i]) {
			return false
		}
	}

	return true
}
