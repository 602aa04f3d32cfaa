package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/ezoic/ztensor/core/tensor"
	"github.com/ezoic/ztensor/dense"
	"github.com/ezoic/ztensor/pkg/errors"
	"github.com/ezoic/ztensor/render"
)

func plane(t *testing.T) *tensor.Lazy[float64] {
	t.Helper()
	p, err := tensor.FromRangesValues([]tensor.Range{tensor.Full(), tensor.Full()},
		func(c tensor.Coord) float64 { return float64(c.At(0)*c.At(0) - c.At(1)) })
	require.NoError(t, err)
	return p
}

func TestHeatmap(t *testing.T) {
	window, err := plane(t).Narrow(tensor.MustSpan(-4, 4), tensor.MustSpan(10, 16))
	require.NoError(t, err)

	p, err := render.Heatmap(window, render.WithTitle("x² - y"), render.WithLogger(nil),
		render.WithMaterializeOptions(dense.WithLogger(nil)))
	require.NoError(t, err)
	assert.Equal(t, "x² - y", p.Title.Text)
	// Axes span the absolute coordinates of the window.
	assert.InDelta(t, 10, p.X.Min, 0.5)
	assert.InDelta(t, 15, p.X.Max, 0.5)
	assert.InDelta(t, -4, p.Y.Min, 0.5)
	assert.InDelta(t, 3, p.Y.Max, 0.5)
}

func TestHeatmap_Rejections(t *testing.T) {
	quiet := []render.Option{render.WithLogger(nil), render.WithMaterializeOptions(dense.WithLogger(nil))}

	_, err := render.Heatmap(plane(t), quiet...)
	assert.True(t, errors.Is(err, errors.ErrInfiniteDimension))
	assert.True(t, strings.HasPrefix(err.Error(), "ztensor: dense.Materialize:"), err.Error())
	assert.Equal(t, 1, strings.Count(err.Error(), "ztensor:"), err.Error())

	line, err := tensor.FromRangesValues([]tensor.Range{tensor.MustSpan(0, 3)},
		func(c tensor.Coord) float64 { return 0 })
	require.NoError(t, err)
	_, err = render.Heatmap(line, quiet...)
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))

	empty, err := tensor.FromRangesValues([]tensor.Range{tensor.MustSpan(0, 3), tensor.MustSpan(0, 0)},
		func(c tensor.Coord) float64 { return 0 })
	require.NoError(t, err)
	_, err = render.Heatmap(empty, quiet...)
	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
}

func TestSaveHeatmap(t *testing.T) {
	window, err := plane(t).Narrow(tensor.MustSpan(0, 8), tensor.MustSpan(0, 8))
	require.NoError(t, err)

	constant, err := tensor.FromRangesValues([]tensor.Range{tensor.MustSpan(0, 2), tensor.MustSpan(0, 2)},
		func(c tensor.Coord) float64 { return 7 })
	require.NoError(t, err)

	dir := t.TempDir()
	tests := []struct {
		name   string
		tensor tensor.Tensor[float64]
		file   string
	}{
		{"png", window, "window.png"},
		{"svg", window, "window.svg"},
		{"constant", constant, "constant.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			err := render.SaveHeatmap(tt.tensor, path,
				render.WithSize(2*vg.Inch, 2*vg.Inch),
				render.WithPaletteSize(16),
				render.WithLogger(nil),
				render.WithMaterializeOptions(dense.WithLogger(nil)))
			require.NoError(t, err)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}

	err = render.SaveHeatmap(window, filepath.Join(dir, "window.unknown"), render.WithLogger(nil),
		render.WithMaterializeOptions(dense.WithLogger(nil)))
	assert.Error(t, err)
}
