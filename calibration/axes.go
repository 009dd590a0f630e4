package calibration

import (
	"fmt"

	"axiscal/axis"
	"axiscal/internal/diagnostic"
	"axiscal/unit"
)

// Calibrated is the read/write surface shared by axis-level and per-channel
// records; Axes accessors resolve to one or the other.
type Calibrated interface {
	Units() unit.Unit
	Origin() unit.Scalar
	Resolution() unit.Scalar
	SetUnits(v any) error
	SetOrigin(v any) error
	SetResolution(v any) error
}

// Axes aggregates the calibration of an array: one Axis record per axis
// key, mirrored against a borrowed axis-tag collection. The tag collection
// remains the source of truth for which axes exist and in what order; the
// two may diverge transiently between calls to Synchronize.
//
// Axes performs no locking; the borrowed collection is single-writer by
// convention.
type Axes struct {
	order   []string
	records map[string]*Axis
	tags    *axis.TagList
}

// NewAxes builds the aggregate for a tag collection, parsing any embedded
// calibration text each axis already carries. The collection is borrowed,
// not copied.
func NewAxes(tags *axis.TagList) (*Axes, *diagnostic.Diagnostics) {
	x := &Axes{records: make(map[string]*Axis), tags: tags}
	diags := x.Synchronize()

	return x, diags
}

// FromTag builds the aggregate for a single axis tag.
func FromTag(tag axis.Tag) (*Axes, *diagnostic.Diagnostics) {
	tags, err := axis.NewTagList(tag)
	if err != nil {
		diags := &diagnostic.Diagnostics{}
		diags.AddError("bad_tag", err.Error(), tag.Key, "")
		empty, _ := axis.NewTagList()

		return &Axes{records: make(map[string]*Axis), tags: empty}, diags
	}

	return NewAxes(tags)
}

// FromText builds the aggregate from a bare textual fragment: the parsed
// record supplies the key, type and resolution of a synthesized axis tag.
func FromText(fragment string) (*Axes, *diagnostic.Diagnostics) {
	rec, diags := Parse(fragment)

	tag := axis.Tag{
		Key:         rec.Key(),
		Type:        rec.Type(),
		Description: fragment,
		Resolution:  real(rec.Resolution()),
	}

	x, more := FromTag(tag)
	diags.Merge(*more)

	return x, diags
}

// Tags returns the borrowed axis-tag collection.
func (x *Axes) Tags() *axis.TagList {
	return x.tags
}

// Keys returns the calibrated axis keys in axis order.
func (x *Axes) Keys() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)

	return out
}

// Record returns the axis calibration for a key.
func (x *Axes) Record(key string) (*Axis, error) {
	rec, ok := x.records[key]
	if !ok {
		return nil, fmt.Errorf("axis %q is not calibrated: %w", key, ErrKey)
	}

	return rec, nil
}

// Synchronize reconciles the record map with the tag collection: axes
// without a record get one by parsing their description (type-appropriate
// defaults when no fragment is embedded), records whose key left the
// collection are dropped. Idempotent.
func (x *Axes) Synchronize() *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	x.order = x.order[:0]
	seen := make(map[string]bool, x.tags.Len())

	for i := 0; i < x.tags.Len(); i++ {
		tag := x.tags.At(i)
		seen[tag.Key] = true
		x.order = append(x.order, tag.Key)

		if _, ok := x.records[tag.Key]; ok {
			continue
		}

		x.records[tag.Key] = x.recordForTag(tag, diags)
	}

	for key := range x.records {
		if !seen[key] {
			delete(x.records, key)
		}
	}

	return diags
}

// recordForTag parses the tag's embedded calibration; an uncalibrated tag
// gets defaults derived from the tag's own type. The tag's key is
// authoritative either way.
func (x *Axes) recordForTag(tag *axis.Tag, diags *diagnostic.Diagnostics) *Axis {
	rec, d := Parse(tag.Description)
	diags.Merge(*d)

	if rec.Type() == axis.Unknown && tag.Type != axis.Unknown {
		rec.SetType(tag.Type)
	}

	if err := rec.SetKey(tag.Key); err != nil {
		diags.AddWarning("bad_axis_key", err.Error(), tag.Key, FieldKey.String())
	}

	return rec
}

// resolve returns the axis-level record for key, or the selected channel
// when a selector is given. Unknown keys, keys missing from the tag
// collection, selectors on channel-less axes and unresolved channels are
// all key errors.
func (x *Axes) resolve(key string, sel ...any) (Calibrated, error) {
	rec, ok := x.records[key]
	if !ok {
		return nil, fmt.Errorf("axis %q is not calibrated: %w", key, ErrKey)
	}

	if _, ok := x.tags.Get(key); !ok {
		return nil, fmt.Errorf("axis %q is not in the axis collection: %w", key, ErrKey)
	}

	if len(sel) == 0 {
		return rec, nil
	}

	if len(sel) > 1 {
		return nil, fmt.Errorf("at most one channel selector is accepted: %w", ErrType)
	}

	if !rec.Type().Has(axis.Channels) {
		return nil, fmt.Errorf("axis %q is not a Channels axis: %w", key, ErrKey)
	}

	return rec.Channel(sel[0])
}

// Units returns the units of an axis, or of one of its channels.
func (x *Axes) Units(key string, sel ...any) (unit.Unit, error) {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return unit.Unit{}, err
	}

	return rec.Units(), nil
}

// SetUnits sets the units of an axis or channel.
func (x *Axes) SetUnits(key string, v any, sel ...any) error {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return err
	}

	return rec.SetUnits(v)
}

// Origin returns the origin of an axis or channel.
func (x *Axes) Origin(key string, sel ...any) (unit.Scalar, error) {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return 0, err
	}

	return rec.Origin(), nil
}

// SetOrigin sets the origin of an axis or channel.
func (x *Axes) SetOrigin(key string, v any, sel ...any) error {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return err
	}

	return rec.SetOrigin(v)
}

// Resolution returns the resolution of an axis or channel.
func (x *Axes) Resolution(key string, sel ...any) (unit.Scalar, error) {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return 0, err
	}

	return rec.Resolution(), nil
}

// SetResolution sets the resolution of an axis or channel.
func (x *Axes) SetResolution(key string, v any, sel ...any) error {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return err
	}

	return rec.SetResolution(v)
}

// CalibrateAxis writes the stored calibration into the axis tag: the
// serialized fragment replaces any prior fragment in the tag's description,
// and the numeric resolution lands in the tag's own resolution field (the
// first channel's resolution for a Channels axis). The tag's type must
// overlap the stored classification. Returns the mutated tag.
func (x *Axes) CalibrateAxis(tag *axis.Tag) (*axis.Tag, error) {
	if tag == nil {
		return nil, fmt.Errorf("nil axis tag: %w", ErrType)
	}

	rec, ok := x.records[tag.Key]
	if !ok {
		return nil, fmt.Errorf("axis %q is not calibrated: %w", tag.Key, ErrKey)
	}

	if !tag.Type.Overlaps(rec.Type()) {
		return nil, fmt.Errorf("type mismatch between axis %q (%s) and stored calibration (%s): %w",
			tag.Key, tag.Type, rec.Type(), ErrValue)
	}

	tag.Description = Embed(tag.Description, rec)

	res := rec.Resolution()
	if rec.Type().Has(axis.Channels) && rec.NumChannels() > 0 {
		res = rec.Channels()[0].Resolution()
	}
	tag.Resolution = real(res)

	return tag, nil
}

// Calibrate writes every stored calibration into its axis tag.
func (x *Axes) Calibrate() error {
	for _, key := range x.order {
		tag, ok := x.tags.Get(key)
		if !ok {
			return fmt.Errorf("axis %q is not in the axis collection: %w", key, ErrKey)
		}

		if _, err := x.CalibrateAxis(tag); err != nil {
			return err
		}
	}

	return nil
}

// CalibratedDistance returns n samples expressed as a calibrated length:
// n * resolution, in the record's units.
func (x *Axes) CalibratedDistance(n float64, key string, sel ...any) (unit.Quantity, error) {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return unit.Quantity{}, err
	}

	return unit.Quantity{
		Value: complex(n, 0) * rec.Resolution(),
		Unit:  rec.Units(),
	}, nil
}

// CalibratedCoordinate returns the calibrated coordinate of sample index n:
// n * resolution + origin, in the record's units.
func (x *Axes) CalibratedCoordinate(n float64, key string, sel ...any) (unit.Quantity, error) {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return unit.Quantity{}, err
	}

	return unit.Quantity{
		Value: complex(n, 0)*rec.Resolution() + rec.Origin(),
		Unit:  rec.Units(),
	}, nil
}

// DistanceInSamples converts a calibrated distance back into a sample
// count. The quantity's unit must be convertible to the axis's units.
func (x *Axes) DistanceInSamples(q unit.Quantity, key string, sel ...any) (float64, error) {
	rec, err := x.resolve(key, sel...)
	if err != nil {
		return 0, err
	}

	converted, err := q.ConvertTo(rec.Units())
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrType)
	}

	res := real(rec.Resolution())
	if res == 0 {
		return 0, fmt.Errorf("axis %q has zero resolution: %w", key, ErrValue)
	}

	return real(converted.Value) / res, nil
}

// AddAxis appends an axis to both the tag collection and the record map.
// Callers relying on positional axis bookkeeping must re-synchronize their
// own state afterwards.
func (x *Axes) AddAxis(tag axis.Tag) error {
	if err := x.tags.Append(tag); err != nil {
		return fmt.Errorf("%v: %w", err, ErrValue)
	}

	stored, _ := x.tags.Get(tag.Key)
	diags := &diagnostic.Diagnostics{}
	x.records[tag.Key] = x.recordForTag(stored, diags)
	x.order = append(x.order, tag.Key)

	return nil
}

// RemoveAxis removes an axis from both the tag collection and the record
// map. Same positional caveat as AddAxis.
func (x *Axes) RemoveAxis(key string) error {
	if _, ok := x.records[key]; !ok {
		return fmt.Errorf("axis %q is not calibrated: %w", key, ErrKey)
	}

	x.tags.Remove(key)
	delete(x.records, key)

	for i, k := range x.order {
		if k == key {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}

	return nil
}
