package histogram

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"histogram-descriptors/config"
	"histogram-descriptors/gauss"
	"histogram-descriptors/grid"
	"histogram-descriptors/internal/logger"
)

const component = "histogram"

// Algorithm is one registered histogram construction.
type Algorithm interface {
	Name() Type
	// GrayValue reports whether the algorithm takes a single-channel image.
	GrayValue() bool
	Compute(img *grid.Array, numBins int) (Result, error)
}

type grayValueAlgorithm struct {
	rangeMax float64
}

func (a grayValueAlgorithm) Name() Type      { return TypeGrayValue }
func (a grayValueAlgorithm) GrayValue() bool { return true }

func (a grayValueAlgorithm) Compute(img *grid.Array, numBins int) (Result, error) {
	hist, edges, err := GrayValueRange(img, numBins, a.rangeMax)
	if err != nil {
		return Result{}, err
	}
	return Result{Type: TypeGrayValue, Values: hist, Edges: edges}, nil
}

type colorAlgorithm struct {
	name Type
	fn   func(*grid.Array, int) ([]float64, error)
}

func (a colorAlgorithm) Name() Type      { return a.name }
func (a colorAlgorithm) GrayValue() bool { return false }

func (a colorAlgorithm) Compute(img *grid.Array, numBins int) (Result, error) {
	hist, err := a.fn(img, numBins)
	if err != nil {
		return Result{}, err
	}
	return Result{Type: a.name, Values: hist}, nil
}

type dxdyAlgorithm struct {
	deriver gauss.Deriver
	sigma   float64
}

func (a dxdyAlgorithm) Name() Type      { return TypeDxDy }
func (a dxdyAlgorithm) GrayValue() bool { return true }

func (a dxdyAlgorithm) Compute(img *grid.Array, numBins int) (Result, error) {
	hist, err := dxdy(img, numBins, a.deriver, a.sigma)
	if err != nil {
		return Result{}, err
	}
	return Result{Type: TypeDxDy, Values: hist}, nil
}

// Builder dispatches histogram computations by type name. It is immutable
// once built and safe for concurrent use.
type Builder struct {
	algorithms map[Type]Algorithm
	cfg        config.Config
	deriver    gauss.Deriver
	log        logger.Logger
}

type Option func(*builderOptions)

type builderOptions struct {
	deriver gauss.Deriver
	zl      *zerolog.Logger
	cfg     *config.Config
}

// WithDeriver replaces the Gaussian derivative operator used for dxdy.
func WithDeriver(d gauss.Deriver) Option {
	return func(o *builderOptions) {
		if d != nil {
			o.deriver = d
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *builderOptions) { o.zl = &l }
}

// WithConfig sets the range, sigma and defaults for ComputeConfigured. When
// a logger is also given, its level is taken from the config.
func WithConfig(cfg config.Config) Option {
	return func(o *builderOptions) { o.cfg = &cfg }
}

func NewBuilder(opts ...Option) *Builder {
	o := builderOptions{deriver: gauss.Default}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Builder{
		algorithms: make(map[Type]Algorithm),
		cfg:        config.Default(),
		deriver:    o.deriver,
		log:        logger.Nop(),
	}
	if o.cfg != nil {
		b.cfg = *o.cfg
	}
	if o.zl != nil {
		zl := *o.zl
		if o.cfg != nil {
			zl = zl.Level(b.cfg.Level())
		}
		b.log = logger.FromZerolog(zl)
	}

	b.registerAlgorithms()
	return b
}

func (b *Builder) registerAlgorithms() {
	algorithms := []Algorithm{
		grayValueAlgorithm{rangeMax: b.cfg.RangeMax},
		colorAlgorithm{name: TypeRGB, fn: RGB},
		colorAlgorithm{name: TypeRG, fn: RG},
		dxdyAlgorithm{deriver: b.deriver, sigma: b.cfg.Sigma},
	}
	for _, alg := range algorithms {
		b.algorithms[alg.Name()] = alg
	}
}

func (b *Builder) GetAlgorithm(name string) (Algorithm, error) {
	if alg, exists := b.algorithms[Type(name)]; exists {
		return alg, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
}

// IsGrayValue reports whether the named histogram is computed from a
// grayscale image (grayvalue, dxdy) rather than a color one (rgb, rg).
func (b *Builder) IsGrayValue(name string) (bool, error) {
	alg, err := b.GetAlgorithm(name)
	if err != nil {
		return false, err
	}
	return alg.GrayValue(), nil
}

// Compute routes img to the named histogram. Only grayvalue results carry
// Edges, and dxdy results are not normalized.
func (b *Builder) Compute(img *grid.Array, numBins int, name string) (Result, error) {
	alg, err := b.GetAlgorithm(name)
	if err != nil {
		b.log.Error(component, err, map[string]interface{}{"type": name})
		return Result{}, err
	}

	result, err := alg.Compute(img, numBins)
	if err != nil {
		b.log.Error(component, err, map[string]interface{}{"type": name, "bins": numBins})
		return Result{}, err
	}

	b.log.Debug(component, "histogram computed", map[string]interface{}{
		"type":   name,
		"bins":   numBins,
		"pixels": pixelCount(img),
		"length": len(result.Values),
	})
	return result, nil
}

// ComputeConfigured computes the histogram type and bin count named in the
// builder's config.
func (b *Builder) ComputeConfigured(img *grid.Array) (Result, error) {
	return b.Compute(img, b.cfg.NumBins, b.cfg.Type)
}

// DxDy computes the gradient histogram with the builder's deriver and sigma.
func (b *Builder) DxDy(img *grid.Array, numBins int) ([]float64, error) {
	result, err := b.Compute(img, numBins, string(TypeDxDy))
	if err != nil {
		return nil, err
	}
	return result.Values, nil
}

// Types lists the registered histogram names in sorted order.
func (b *Builder) Types() []string {
	names := make([]string, 0, len(b.algorithms))
	for name := range b.algorithms {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

func pixelCount(img *grid.Array) int {
	shape := img.Shape()
	if len(shape) < 2 {
		return img.Len()
	}
	return shape[0] * shape[1]
}

var defaultBuilder = NewBuilder()

// IsGrayValue classifies name with the default builder.
func IsGrayValue(name string) (bool, error) {
	return defaultBuilder.IsGrayValue(name)
}

// Compute dispatches with the default builder: range 255, sigma 3 and the
// pure Go derivative operator.
func Compute(img *grid.Array, numBins int, name string) (Result, error) {
	return defaultBuilder.Compute(img, numBins, name)
}

func Types() []string {
	return defaultBuilder.Types()
}
