package calibration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axiscal/axis"
	"axiscal/calibration"
	"axiscal/unit"
)

func TestNewAxisDefaults(t *testing.T) {
	t.Parallel()

	ax, err := calibration.NewAxis(axis.Space)
	require.NoError(t, err)

	assert.Equal(t, axis.Space, ax.Type())
	assert.Equal(t, "s", ax.Key())
	assert.Equal(t, "Space", ax.Name())
	assert.Equal(t, unit.Micrometre, ax.Units())
	assert.Equal(t, unit.Scalar(0), ax.Origin())
	assert.Equal(t, unit.Scalar(1), ax.Resolution())
	assert.Zero(t, ax.NumChannels())
}

func TestSetters(t *testing.T) {
	t.Parallel()

	t.Run("units from string and dimension", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space)
		require.NoError(t, err)

		require.NoError(t, ax.SetUnits("nm"))
		assert.Equal(t, unit.Nanometre, ax.Units())

		require.NoError(t, ax.SetUnits(unit.LengthDim))
		assert.Equal(t, unit.Metre, ax.Units())

		err = ax.SetUnits(42)
		assert.ErrorIs(t, err, calibration.ErrType)
	})

	t.Run("units do not rescale values", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space, calibration.WithResolution(0.25))
		require.NoError(t, err)

		require.NoError(t, ax.SetUnits(unit.Nanometre))
		assert.Equal(t, unit.Scalar(0.25), ax.Resolution())
	})

	t.Run("origin coercion", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space)
		require.NoError(t, err)

		require.NoError(t, ax.SetOrigin(3))
		assert.Equal(t, unit.Scalar(3), ax.Origin())

		require.NoError(t, ax.SetOrigin([]float64{2.5}))
		assert.Equal(t, unit.Scalar(2.5), ax.Origin())

		require.NoError(t, ax.SetOrigin(complex(1, 2)))
		assert.Equal(t, complex(1.0, 2.0), ax.Origin())

		err = ax.SetOrigin("not a number")
		assert.ErrorIs(t, err, calibration.ErrType)

		err = ax.SetOrigin([]float64{1, 2})
		assert.ErrorIs(t, err, calibration.ErrType)
	})

	t.Run("compatible quantity is rescaled into record units", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space)
		require.NoError(t, err)
		require.Equal(t, unit.Micrometre, ax.Units())

		require.NoError(t, ax.SetOrigin(unit.Q(1500, unit.Nanometre)))
		assert.InDelta(t, 1.5, real(ax.Origin()), 1e-12)
	})

	t.Run("incompatible quantity rejected, record unmodified", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space, calibration.WithOrigin(7.0))
		require.NoError(t, err)

		err = ax.SetOrigin(unit.Q(5, unit.Second))
		assert.ErrorIs(t, err, calibration.ErrType)
		assert.Equal(t, unit.Scalar(7), ax.Origin())
		assert.Equal(t, unit.Micrometre, ax.Units())
	})
}

func TestRescale(t *testing.T) {
	t.Parallel()

	t.Run("converts all three fields", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space,
			calibration.WithOrigin(1.0), calibration.WithResolution(0.25))
		require.NoError(t, err)

		require.NoError(t, ax.Rescale(unit.Nanometre))
		assert.Equal(t, unit.Nanometre, ax.Units())
		assert.InDelta(t, 1000, real(ax.Origin()), 1e-9)
		assert.InDelta(t, 250, real(ax.Resolution()), 1e-9)
	})

	t.Run("rejects inconvertible target", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space, calibration.WithOrigin(1.0))
		require.NoError(t, err)

		err = ax.Rescale(unit.Second)
		assert.ErrorIs(t, err, calibration.ErrValue)
		assert.Equal(t, unit.Micrometre, ax.Units())
		assert.Equal(t, unit.Scalar(1), ax.Origin())
	})
}

func TestPositionalValues(t *testing.T) {
	t.Parallel()

	t.Run("unit then origin then resolution", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Time,
			calibration.Values(unit.Millisecond, 10.0, 0.5))
		require.NoError(t, err)

		assert.Equal(t, unit.Millisecond, ax.Units())
		assert.Equal(t, unit.Scalar(10), ax.Origin())
		assert.Equal(t, unit.Scalar(0.5), ax.Resolution())
	})

	t.Run("named options win", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Time,
			calibration.WithOrigin(3.0),
			calibration.Values(unit.Millisecond, 10.0, 0.5))
		require.NoError(t, err)

		assert.Equal(t, unit.Scalar(3), ax.Origin())
		assert.Equal(t, unit.Scalar(0.5), ax.Resolution())
	})

	t.Run("unit symbol as positional value", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Time, calibration.Values("ms", 2.0))
		require.NoError(t, err)

		assert.Equal(t, unit.Millisecond, ax.Units())
		assert.Equal(t, unit.Scalar(2), ax.Origin())
	})

	t.Run("uncoercible positional value fails", func(t *testing.T) {
		t.Parallel()

		_, err := calibration.NewAxis(axis.Time, calibration.Values(struct{}{}))
		assert.ErrorIs(t, err, calibration.ErrType)
	})
}
