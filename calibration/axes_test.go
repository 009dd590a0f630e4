package calibration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axiscal/axis"
	"axiscal/calibration"
	"axiscal/unit"
)

func spaceTimeAxes(t *testing.T) (*calibration.Axes, *axis.TagList) {
	t.Helper()

	tags, err := axis.NewTagList(
		axis.Tag{Key: "x", Type: axis.Space},
		axis.Tag{Key: "y", Type: axis.Space},
		axis.Tag{Key: "t", Type: axis.Time},
	)
	require.NoError(t, err)

	axes, diags := calibration.NewAxes(tags)
	require.True(t, diags.IsValid())

	return axes, tags
}

func TestSynchronize(t *testing.T) {
	t.Parallel()

	t.Run("defaults derive from tag type", func(t *testing.T) {
		t.Parallel()

		axes, _ := spaceTimeAxes(t)

		rec, err := axes.Record("t")
		require.NoError(t, err)
		assert.Equal(t, axis.Time, rec.Type())
		assert.Equal(t, "t", rec.Key())
		assert.Equal(t, unit.Second, rec.Units())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		axes, tags := spaceTimeAxes(t)

		require.True(t, axes.Synchronize().IsValid())
		require.True(t, axes.Synchronize().IsValid())
		assert.Equal(t, tags.Keys(), axes.Keys())
	})

	t.Run("follows external additions and removals", func(t *testing.T) {
		t.Parallel()

		axes, tags := spaceTimeAxes(t)

		require.NoError(t, tags.Append(axis.Tag{Key: "c", Type: axis.Channels}))
		require.True(t, tags.Remove("y"))

		axes.Synchronize()
		assert.Equal(t, []string{"x", "t", "c"}, axes.Keys())

		_, err := axes.Record("y")
		assert.ErrorIs(t, err, calibration.ErrKey)
	})

	t.Run("parses pre-existing embedded text", func(t *testing.T) {
		t.Parallel()

		calibrated, err := calibration.NewAxis(axis.Space,
			calibration.WithKey("x"), calibration.WithResolution(0.4))
		require.NoError(t, err)

		tags, err := axis.NewTagList(axis.Tag{
			Key:         "x",
			Type:        axis.Space,
			Description: "imported " + calibration.Format(calibrated),
		})
		require.NoError(t, err)

		axes, diags := calibration.NewAxes(tags)
		require.True(t, diags.IsValid())

		res, err := axes.Resolution("x")
		require.NoError(t, err)
		assert.Equal(t, unit.Scalar(0.4), res)
	})
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		axes, _ := spaceTimeAxes(t)

		_, err := axes.Units("z")
		assert.ErrorIs(t, err, calibration.ErrKey)

		err = axes.SetOrigin("z", 1.0)
		assert.ErrorIs(t, err, calibration.ErrKey)
	})

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		axes, _ := spaceTimeAxes(t)

		require.NoError(t, axes.SetResolution("x", 0.25))
		require.NoError(t, axes.SetOrigin("x", unit.Q(500, unit.Nanometre)))

		res, err := axes.Resolution("x")
		require.NoError(t, err)
		assert.Equal(t, unit.Scalar(0.25), res)

		origin, err := axes.Origin("x")
		require.NoError(t, err)
		assert.InDelta(t, 0.5, real(origin), 1e-12)
	})

	t.Run("channel selector", func(t *testing.T) {
		t.Parallel()

		tags, err := axis.NewTagList(axis.Tag{Key: "c", Type: axis.Channels})
		require.NoError(t, err)

		axes, _ := calibration.NewAxes(tags)

		require.NoError(t, axes.SetResolution("c", 2.0, 0))

		res, err := axes.Resolution("c", 0)
		require.NoError(t, err)
		assert.Equal(t, unit.Scalar(2), res)

		_, err = axes.Resolution("c", 5)
		assert.ErrorIs(t, err, calibration.ErrKey)

		_, err = axes.Resolution("c", "missing")
		assert.ErrorIs(t, err, calibration.ErrKey)
	})

	t.Run("channel selector on plain axis", func(t *testing.T) {
		t.Parallel()

		axes, _ := spaceTimeAxes(t)

		_, err := axes.Units("x", 0)
		assert.ErrorIs(t, err, calibration.ErrKey)
	})
}

func TestCalibrateAxis(t *testing.T) {
	t.Parallel()

	t.Run("end to end", func(t *testing.T) {
		t.Parallel()

		axes, tags := spaceTimeAxes(t)

		require.NoError(t, axes.SetUnits("x", unit.Micrometre))
		require.NoError(t, axes.SetOrigin("x", 0.0))
		require.NoError(t, axes.SetResolution("x", 0.25))

		tag, ok := tags.Get("x")
		require.True(t, ok)

		mutated, err := axes.CalibrateAxis(tag)
		require.NoError(t, err)
		assert.Same(t, tag, mutated)
		assert.Equal(t, 0.25, tag.Resolution)

		parsed, diags := calibration.Parse(tag.Description)
		require.True(t, diags.IsValid())
		assert.Equal(t, "x", parsed.Key())
		assert.Equal(t, axis.Space, parsed.Type())
		assert.Equal(t, unit.Scalar(0.25), parsed.Resolution())

		dist, err := axes.CalibratedDistance(4, "x")
		require.NoError(t, err)
		assert.Equal(t, unit.Micrometre, dist.Unit)
		assert.InDelta(t, 1.0, real(dist.Value), 1e-12)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()

		axes, tags := spaceTimeAxes(t)

		rec, err := axes.Record("x")
		require.NoError(t, err)
		rec.SetType(axis.Time)
		require.NoError(t, rec.SetKey("x"))

		tag, _ := tags.Get("x")
		_, err = axes.CalibrateAxis(tag)
		assert.ErrorIs(t, err, calibration.ErrValue)
	})

	t.Run("channels axis writes first channel resolution", func(t *testing.T) {
		t.Parallel()

		tags, err := axis.NewTagList(axis.Tag{Key: "c", Type: axis.Channels})
		require.NoError(t, err)

		axes, _ := calibration.NewAxes(tags)
		require.NoError(t, axes.SetResolution("c", 3.0, 0))

		tag, _ := tags.Get("c")
		_, err = axes.CalibrateAxis(tag)
		require.NoError(t, err)
		assert.Equal(t, 3.0, tag.Resolution)
	})
}

func TestCoordinateConversions(t *testing.T) {
	t.Parallel()

	axes, _ := spaceTimeAxes(t)
	require.NoError(t, axes.SetOrigin("x", 10.0))
	require.NoError(t, axes.SetResolution("x", 0.5))

	coord, err := axes.CalibratedCoordinate(4, "x")
	require.NoError(t, err)
	assert.InDelta(t, 12.0, real(coord.Value), 1e-12)

	samples, err := axes.DistanceInSamples(unit.Q(1, unit.Micrometre), "x")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, samples, 1e-12)

	samples, err = axes.DistanceInSamples(unit.Q(500, unit.Nanometre), "x")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, samples, 1e-12)

	_, err = axes.DistanceInSamples(unit.Q(1, unit.Second), "x")
	assert.ErrorIs(t, err, calibration.ErrType)
}

func TestSameAs(t *testing.T) {
	t.Parallel()

	t.Run("noise below atol is equivalent", func(t *testing.T) {
		t.Parallel()

		a, _ := spaceTimeAxes(t)
		b, _ := spaceTimeAxes(t)

		require.NoError(t, a.SetResolution("x", 0.25))
		require.NoError(t, b.SetResolution("x", 0.25+1e-9))

		opts := calibration.SameAsOptions{}.WithTolerances(0, 1e-6)

		same, err := a.SameAs(b, "x", opts)
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("difference of ten atol is not", func(t *testing.T) {
		t.Parallel()

		a, _ := spaceTimeAxes(t)
		b, _ := spaceTimeAxes(t)

		require.NoError(t, a.SetResolution("x", 0.25))
		require.NoError(t, b.SetResolution("x", 0.25+1e-5))

		opts := calibration.SameAsOptions{}.WithTolerances(0, 1e-6)

		same, err := a.SameAs(b, "x", opts)
		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("unit conversion is applied before comparison", func(t *testing.T) {
		t.Parallel()

		a, _ := spaceTimeAxes(t)
		b, _ := spaceTimeAxes(t)

		require.NoError(t, a.SetResolution("x", 0.25))
		require.NoError(t, b.SetUnits("x", unit.Nanometre))
		require.NoError(t, b.SetResolution("x", 250.0))

		same, err := a.SameAs(b, "x", calibration.SameAsOptions{})
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("ignore resolution", func(t *testing.T) {
		t.Parallel()

		a, _ := spaceTimeAxes(t)
		b, _ := spaceTimeAxes(t)

		require.NoError(t, a.SetResolution("x", 0.25))
		require.NoError(t, b.SetResolution("x", 99.0))

		same, err := a.SameAs(b, "x", calibration.SameAsOptions{Ignore: calibration.IgnoreResolution})
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("type difference is never equivalent", func(t *testing.T) {
		t.Parallel()

		a, _ := spaceTimeAxes(t)
		b, _ := spaceTimeAxes(t)

		rec, err := b.Record("x")
		require.NoError(t, err)
		rec.SetType(axis.Time)
		require.NoError(t, rec.SetKey("x"))

		same, err := a.SameAs(b, "x", calibration.SameAsOptions{})
		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("channels compared per channel", func(t *testing.T) {
		t.Parallel()

		newChannelAxes := func() *calibration.Axes {
			tags, err := axis.NewTagList(axis.Tag{Key: "c", Type: axis.Channels})
			require.NoError(t, err)

			axes, _ := calibration.NewAxes(tags)
			return axes
		}

		a := newChannelAxes()
		b := newChannelAxes()

		same, err := a.SameAs(b, "c", calibration.SameAsOptions{})
		require.NoError(t, err)
		assert.True(t, same)

		require.NoError(t, b.SetOrigin("c", 5.0, 0))

		same, err = a.SameAs(b, "c", calibration.SameAsOptions{})
		require.NoError(t, err)
		assert.False(t, same)

		same, err = a.SameAs(b, "c", calibration.SameAsOptions{
			Channel: 0,
			Ignore:  calibration.IgnoreOrigin,
		})
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("unknown key is a key error", func(t *testing.T) {
		t.Parallel()

		a, _ := spaceTimeAxes(t)
		b, _ := spaceTimeAxes(t)

		_, err := a.SameAs(b, "nope", calibration.SameAsOptions{})
		assert.ErrorIs(t, err, calibration.ErrKey)
	})
}

func TestAddRemoveAxis(t *testing.T) {
	t.Parallel()

	axes, tags := spaceTimeAxes(t)

	require.NoError(t, axes.AddAxis(axis.Tag{Key: "c", Type: axis.Channels}))
	assert.Equal(t, []string{"x", "y", "t", "c"}, axes.Keys())
	assert.Equal(t, 4, tags.Len())

	rec, err := axes.Record("c")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.NumChannels())

	err = axes.AddAxis(axis.Tag{Key: "x", Type: axis.Space})
	assert.ErrorIs(t, err, calibration.ErrValue)

	require.NoError(t, axes.RemoveAxis("y"))
	assert.Equal(t, []string{"x", "t", "c"}, axes.Keys())
	assert.Equal(t, -1, tags.Index("y"))

	err = axes.RemoveAxis("y")
	assert.ErrorIs(t, err, calibration.ErrKey)
}

func TestFromText(t *testing.T) {
	t.Parallel()

	src, err := calibration.NewAxis(axis.Space,
		calibration.WithKey("x"), calibration.WithResolution(0.1))
	require.NoError(t, err)

	axes, diags := calibration.FromText(calibration.Format(src))
	require.True(t, diags.IsValid())

	assert.Equal(t, []string{"x"}, axes.Keys())

	res, err := axes.Resolution("x")
	require.NoError(t, err)
	assert.Equal(t, unit.Scalar(0.1), res)

	tag, ok := axes.Tags().Get("x")
	require.True(t, ok)
	assert.Equal(t, 0.1, tag.Resolution)
}
