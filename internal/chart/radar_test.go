package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/nyota/internal/schema"
)

func sampleResult(n int) schema.Result {
	out := make(schema.Result, n)
	for i := range out {
		out[i] = schema.AxisScore{Axis: "Axis " + string(rune('A'+i)), Score: float64(10 * (i + 1))}
	}
	return out
}

func TestRender_RejectsWrongAxisCount(t *testing.T) {
	for _, n := range []int{0, 7, 9} {
		var buf bytes.Buffer
		err := Render(&buf, sampleResult(n), DefaultOptions())
		assert.ErrorIs(t, err, ErrAxisCount, "n=%d", n)
		assert.Zero(t, buf.Len(), "n=%d: output written before validation", n)
	}
}

func TestSave_RejectsWrongAxisCountWithoutCreatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	err := Save(path, sampleResult(7), DefaultOptions())
	require.ErrorIs(t, err, ErrAxisCount)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "chart file should not exist")
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(8), DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "missing PNG signature")
}

func TestRender_SVG(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = SVG
	opts.Title = "Profile"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(8), opts))
	s := buf.String()
	assert.Contains(t, s, "<svg")
	assert.Contains(t, s, "Profile")
	assert.Contains(t, s, "Axis H")
}

func TestSave_UsesGivenFormat(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = SVG
	path := filepath.Join(t.TempDir(), "profile.svg")
	require.NoError(t, Save(path, sampleResult(8), opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"))
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	small := DefaultOptions()
	small.Width = 50
	assert.Error(t, small.Validate())

	badColor := DefaultOptions()
	badColor.Color = "blue"
	assert.Error(t, badColor.Validate())

	noHash := DefaultOptions()
	noHash.Color = "2E86AB"
	assert.NoError(t, noHash.Validate())

	badFormat := DefaultOptions()
	badFormat.Format = "gif"
	assert.Error(t, badFormat.Validate())
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/profile.PNG")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)

	f, err = FormatFromPath("profile.svg")
	require.NoError(t, err)
	assert.Equal(t, SVG, f)

	_, err = FormatFromPath("profile.jpg")
	assert.Error(t, err)
	_, err = FormatFromPath("profile")
	assert.Error(t, err)
}

func TestSpokeAngles(t *testing.T) {
	angles := spokeAngles(8)
	require.Len(t, angles, 8)
	assert.InDelta(t, -math.Pi/2, angles[0], 1e-12, "first spoke points up")
	for i := 1; i < len(angles); i++ {
		assert.InDelta(t, math.Pi/4, angles[i]-angles[i-1], 1e-12, "equal spacing")
	}
	// Second spoke is up and to the right: clockwise on screen.
	x, y := polar(0, 0, 1, angles[1])
	assert.Greater(t, x, 0.0)
	assert.Less(t, y, 0.0)
}

func TestProfilePoints_ClosedPolygon(t *testing.T) {
	values := []float64{100, 50, 0, 50, 100, 50, 0, 50}
	pts := profilePoints(100, 100, 80, values)
	require.Len(t, pts, len(values)+1)
	assert.Equal(t, pts[0], pts[len(pts)-1])

	// 100 on the first spoke sits at the top of the full radius.
	assert.InDelta(t, 100, pts[0].x, 1e-9)
	assert.InDelta(t, 20, pts[0].y, 1e-9)
	// 0 collapses onto the center.
	assert.InDelta(t, 100, pts[2].x, 1e-9)
	assert.InDelta(t, 100, pts[2].y, 1e-9)
}

func TestProfilePoints_ClampsOutOfRange(t *testing.T) {
	pts := profilePoints(0, 0, 10, []float64{150, -20})
	assert.InDelta(t, -10, pts[0].y, 1e-9)
	assert.InDelta(t, 0, pts[1].x, 1e-9)
	assert.InDelta(t, 0, pts[1].y, 1e-9)
}
