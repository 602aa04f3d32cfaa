package render

import (
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ezoic/ztensor/core/tensor"
	"github.com/ezoic/ztensor/dense"
	"github.com/ezoic/ztensor/pkg/errors"
	"github.com/ezoic/ztensor/pkg/log"
)

// Defaults used when no option overrides them.
const (
	DefaultPaletteSize = 64
	DefaultWidth       = 6 * vg.Inch
	DefaultHeight      = 6 * vg.Inch
)

type config struct {
	title       string
	width       vg.Length
	height      vg.Length
	paletteSize int
	dense       []dense.Option
	logger      log.Logger
}

// Option configures Heatmap and SaveHeatmap.
type Option func(*config)

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithSize sets the canvas size used by SaveHeatmap.
func WithSize(width, height vg.Length) Option {
	return func(c *config) { c.width, c.height = width, height }
}

// WithPaletteSize sets the number of palette colors. Values below 2 are
// raised to 2.
func WithPaletteSize(n int) Option {
	return func(c *config) { c.paletteSize = max(n, 2) }
}

// WithMaterializeOptions passes options through to dense.Materialize.
func WithMaterializeOptions(opts ...dense.Option) Option {
	return func(c *config) { c.dense = append(c.dense, opts...) }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{
		width:       DefaultWidth,
		height:      DefaultHeight,
		paletteSize: DefaultPaletteSize,
		logger:      log.GetLoggerWithName("render").With(log.ComponentKey, "render"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// gridXYZ adapts a 2-D Grid to plotter.GridXYZ. Columns run along axis 1.
type gridXYZ struct {
	rows, cols int
	row0, col0 int64
	values     []float64
}

var _ plotter.GridXYZ = gridXYZ{}

func newGridXYZ(g *dense.Grid[float64]) gridXYZ {
	dims := g.Dims()
	row0, _ := g.Shape().Range(0).Start().Value()
	col0, _ := g.Shape().Range(1).Start().Value()
	return gridXYZ{rows: dims[0], cols: dims[1], row0: row0, col0: col0, values: g.Data()}
}

func (x gridXYZ) Dims() (c, r int)   { return x.cols, x.rows }
func (x gridXYZ) Z(c, r int) float64 { return x.values[r*x.cols+c] }
func (x gridXYZ) X(c int) float64    { return float64(x.col0 + int64(c)) }
func (x gridXYZ) Y(r int) float64    { return float64(x.row0 + int64(r)) }

// Heatmap materializes t and returns a plot of it as a heat map.
//
// t must be 2-D with finite, non-empty axes.
func Heatmap(t tensor.Tensor[float64], opts ...Option) (*plot.Plot, error) {
	return heatmap("render.Heatmap", t, newConfig(opts))
}

func heatmap(op string, t tensor.Tensor[float64], cfg *config) (*plot.Plot, error) {
	startTime := time.Now()
	if d := t.Shape().Dims(); d != 2 {
		return nil, errors.NewDimensionError(op, 2, d, -1)
	}
	g, err := dense.Materialize(t, cfg.dense...)
	if err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return nil, errors.NewValueError(op, "cannot render a tensor with an empty axis")
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(newGridXYZ(g), cm.Palette(cfg.paletteSize))
	if hm.Min == hm.Max || math.IsNaN(hm.Min) {
		// Constant tensors get a unit color scale.
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "axis 1"
	p.Y.Label.Text = "axis 0"
	p.Add(hm)

	if cfg.logger != nil {
		cfg.logger.Debug("Heat map built",
			log.OperationKey, log.OperationRender,
			log.ShapeKey, t.Shape().String(),
			log.ElementsKey, g.Len(),
			log.DurationMsKey, time.Since(startTime).Milliseconds(),
		)
	}
	return p, nil
}

// SaveHeatmap renders t with Heatmap and writes it to path. The image format
// follows the file extension (.png, .svg, .pdf, ...).
func SaveHeatmap(t tensor.Tensor[float64], path string, opts ...Option) error {
	const op = "render.SaveHeatmap"
	cfg := newConfig(opts)
	p, err := heatmap(op, t, cfg)
	if err != nil {
		return err
	}
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return errors.Wrapf(err, "%s: save %s", op, path)
	}
	if cfg.logger != nil {
		cfg.logger.Info("Heat map saved",
			log.OperationKey, log.OperationRender,
			log.PhaseKey, log.PhaseOutput,
			log.PathKey, path,
		)
	}
	return nil
}
