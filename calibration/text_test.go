package calibration_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axiscal/axis"
	"axiscal/calibration"
	"axiscal/unit"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("plain axis", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space,
			calibration.WithKey("x"),
			calibration.WithName("width"),
			calibration.WithOrigin(-2.5),
			calibration.WithResolution(0.25))
		require.NoError(t, err)

		parsed, diags := calibration.Parse(calibration.Format(ax))
		require.True(t, diags.IsValid())
		assert.Empty(t, diags.Warnings)

		if !ax.Equal(parsed) {
			spew.Dump(ax, parsed)
			t.Fatal("round trip changed the record")
		}
	})

	t.Run("complex origin", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space, calibration.WithOrigin(complex(1, 2)))
		require.NoError(t, err)

		parsed, _ := calibration.Parse(calibration.Format(ax))
		assert.Equal(t, complex(1.0, 2.0), parsed.Origin())
	})

	t.Run("channels axis", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Channels, calibration.WithKey("c"))
		require.NoError(t, err)
		require.NoError(t, ax.RemoveChannel(0))

		red, _ := calibration.NewChannel(0, calibration.WithName("red"),
			calibration.WithOrigin(0.0), calibration.WithMaximum(255.0))
		green, _ := calibration.NewChannel(1, calibration.WithName("green"),
			calibration.WithResolution(2.0))
		ax.AddChannel(red)
		ax.AddChannel(green)

		parsed, diags := calibration.Parse(calibration.Format(ax))
		require.True(t, diags.IsValid())
		require.Equal(t, 2, parsed.NumChannels())

		if !ax.Equal(parsed) {
			spew.Dump(ax, parsed)
			t.Fatal("round trip changed the record")
		}
	})

	t.Run("transformed-domain type", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Time | axis.Frequency)
		require.NoError(t, err)

		frag := calibration.Format(ax)
		assert.Contains(t, frag, "<type>Time|Frequency</type>")

		parsed, _ := calibration.Parse(frag)
		assert.Equal(t, axis.Time|axis.Frequency, parsed.Type())
	})
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	for _, descriptor := range []string{"", "free text with no fragment at all"} {
		rec, diags := calibration.Parse(descriptor)
		require.True(t, diags.IsValid(), descriptor)

		assert.Equal(t, axis.Unknown, rec.Type(), descriptor)
		assert.Equal(t, unit.Pixel, rec.Units(), descriptor)
		assert.Equal(t, unit.Scalar(0), rec.Origin(), descriptor)
		assert.Equal(t, unit.Scalar(1), rec.Resolution(), descriptor)
	}
}

func TestParseLegacyName(t *testing.T) {
	t.Parallel()

	t.Run("standalone legacy fragment", func(t *testing.T) {
		t.Parallel()

		rec, diags := calibration.Parse("old stuff <name>linescan</name> more text")
		require.True(t, diags.IsValid())
		assert.Equal(t, "linescan", rec.Name())
	})

	t.Run("conflict prefers unified fragment", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Time, calibration.WithName("sweep"))
		require.NoError(t, err)

		descriptor := "<name>legacy</name> " + calibration.Format(ax)

		rec, diags := calibration.Parse(descriptor)
		assert.Equal(t, "sweep", rec.Name())
		assert.True(t, diags.HasWarnings())
	})
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	t.Run("bad numeric field defaults, rest parsed", func(t *testing.T) {
		t.Parallel()

		descriptor := "<axis_calibration><type>Space</type><key>x</key>" +
			"<origin>garbage</origin><resolution>0.5</resolution></axis_calibration>"

		rec, diags := calibration.Parse(descriptor)
		assert.Equal(t, axis.Space, rec.Type())
		assert.Equal(t, "x", rec.Key())
		assert.Equal(t, unit.Scalar(0), rec.Origin())
		assert.Equal(t, unit.Scalar(0.5), rec.Resolution())
		assert.True(t, diags.HasWarnings())
		assert.True(t, diags.IsValid())
	})

	t.Run("unknown type symbol defaults to Unknown", func(t *testing.T) {
		t.Parallel()

		descriptor := "<axis_calibration><type>Sideways</type>" +
			"<resolution>2</resolution></axis_calibration>"

		rec, diags := calibration.Parse(descriptor)
		assert.Equal(t, axis.Unknown, rec.Type())
		assert.Equal(t, unit.Scalar(2), rec.Resolution())
		assert.True(t, diags.HasWarnings())
	})

	t.Run("unterminated fragment still yields fields", func(t *testing.T) {
		t.Parallel()

		descriptor := "<axis_calibration><type>Time</type><origin>3</origin>"

		rec, diags := calibration.Parse(descriptor)
		assert.Equal(t, axis.Time, rec.Type())
		assert.Equal(t, unit.Scalar(3), rec.Origin())
		assert.True(t, diags.HasWarnings())
	})

	t.Run("unknown units default with diagnostic", func(t *testing.T) {
		t.Parallel()

		descriptor := "<axis_calibration><type>Time</type>" +
			"<units>fortnights</units></axis_calibration>"

		rec, diags := calibration.Parse(descriptor)
		assert.Equal(t, unit.Second, rec.Units())
		assert.True(t, diags.HasWarnings())
	})

	t.Run("repeated channel tags are repaired", func(t *testing.T) {
		t.Parallel()

		descriptor := "<axis_calibration><type>Channels</type><key>c</key>" +
			"<channel_0><name>red</name></channel_0>" +
			"<channel_0><name>red</name></channel_0></axis_calibration>"

		rec, diags := calibration.Parse(descriptor)
		require.Equal(t, 2, rec.NumChannels())

		first, err := rec.Channel(0)
		require.NoError(t, err)
		assert.Equal(t, "red", first.Name())

		second, err := rec.Channel(1)
		require.NoError(t, err)
		assert.Equal(t, "red_1", second.Name())

		assert.True(t, diags.HasWarnings())
		assert.True(t, diags.IsValid())
	})
}

func TestEmbed(t *testing.T) {
	t.Parallel()

	t.Run("preserves surrounding free text", func(t *testing.T) {
		t.Parallel()

		ax, err := calibration.NewAxis(axis.Space, calibration.WithKey("x"))
		require.NoError(t, err)

		descriptor := "acquired 2024-05-12 on rig 3"
		out := calibration.Embed(descriptor, ax)

		assert.True(t, strings.HasPrefix(out, descriptor))

		parsed, diags := calibration.Parse(out)
		require.True(t, diags.IsValid())
		assert.Equal(t, "x", parsed.Key())
	})

	t.Run("replaces prior fragment and legacy name", func(t *testing.T) {
		t.Parallel()

		stale, err := calibration.NewAxis(axis.Time)
		require.NoError(t, err)

		descriptor := "note <name>old</name> " + calibration.Format(stale) + " trailing"

		fresh, err := calibration.NewAxis(axis.Space,
			calibration.WithKey("x"), calibration.WithResolution(0.25))
		require.NoError(t, err)

		out := calibration.Embed(descriptor, fresh)

		assert.Equal(t, 1, strings.Count(out, "<axis_calibration>"))
		assert.NotContains(t, out, "<type>Time</type>")
		assert.Contains(t, out, "note")
		assert.Contains(t, out, "trailing")

		parsed, _ := calibration.Parse(out)
		assert.Equal(t, axis.Space, parsed.Type())
		assert.Equal(t, unit.Scalar(0.25), parsed.Resolution())
	})
}

func TestStrip(t *testing.T) {
	t.Parallel()

	ax, err := calibration.NewAxis(axis.Space)
	require.NoError(t, err)

	descriptor := "hello " + calibration.Format(ax) + " world <name>legacy</name>!"
	assert.Equal(t, "hello  world !", calibration.Strip(descriptor))

	assert.Equal(t, "untouched", calibration.Strip("untouched"))
}
