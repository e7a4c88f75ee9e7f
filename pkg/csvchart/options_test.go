package csvchart_test

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := csvchart.DefaultOptions()
	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 600, opts.Height)
	assert.Equal(t, csvchart.DefaultDPI, opts.DPI)
	assert.Equal(t, opts.DefaultColor, opts.SeriesColor(false))
	assert.Equal(t, opts.CustomColor, opts.SeriesColor(true))
	assert.NotEqual(t, opts.DefaultColor, opts.CustomColor)
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "opts.yaml", "width: 1024\ncustom_color: \"#00ff80\"\n")

	opts, err := csvchart.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, opts.Width)
	assert.Equal(t, 600, opts.Height)
	assert.Equal(t, color.RGBA{G: 0xff, B: 0x80, A: 255}, opts.CustomColor)
	assert.Equal(t, csvchart.DefaultOptions().DefaultColor, opts.DefaultColor)
}

func TestLoadOptionsErrors(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"bad_yaml.yaml":  "width: [",
		"bad_color.yaml": "default_color: blue\n",
		"bad_size.yaml":  "height: 0\n",
		"bad_dpi.yaml":   "dpi: -1\n",
	} {
		_, err := csvchart.LoadOptions(writeFile(t, name, content))
		require.Error(t, err, name)
	}

	_, err := csvchart.LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := csvchart.ParseColor("#1f77b4")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, c)

	for _, bad := range []string{"", "red", "#12345", "#12345g", "1f77b4f"} {
		_, err := csvchart.ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestPixelsToLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vg.Inch, csvchart.PixelsToLength(96, 96))
	assert.Equal(t, vg.Inch, csvchart.PixelsToLength(96, 0))
	assert.Equal(t, 2*vg.Inch, csvchart.PixelsToLength(144, 72))
}
