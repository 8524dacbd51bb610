package fractal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sierpinski/boxcount"
	"github.com/katalvlaran/sierpinski/chaosgame"
	"github.com/katalvlaran/sierpinski/geom"
	"github.com/katalvlaran/sierpinski/labels"
)

const (
	opBuild    = "Build"
	opGenerate = "Generate"
)

// Request describes one fractal generation. Series is borrowed, never mutated.
type Request struct {
	Series   []float64
	Kind     Kind
	Strategy labels.Strategy
	Hint     Hint
}

// NewRequest builds a Request from the historical mode string.
func NewRequest(series []float64, kind Kind, mode string) (Request, error) {
	strategy, hint, err := ParseMode(mode)
	if err != nil {
		return Request{}, err
	}

	return Request{Series: series, Kind: kind, Strategy: strategy, Hint: hint}, nil
}

// Result carries every stage output. Samples and Cloud are owned by the caller.
// Estimate is meaningful only when HasDimension is true.
type Result struct {
	Kind         Kind
	Hint         Hint
	Samples      []labels.Sample
	Cloud        geom.Cloud
	Estimate     boxcount.Result
	HasDimension bool
}

// Summary renders the dimension with four decimals, or "-" when undefined.
func (r Result) Summary() string {
	if !r.HasDimension {
		return "-"
	}
	return fmt.Sprintf("%.4f", r.Estimate.Dimension)
}

// Build runs labeling and the chaos game, without dimension estimation.
//
// Errors:
//   - ErrUnknownKind, ErrInsufficientSamples (checked before any work).
//   - Any labels or chaosgame error, wrapped.
func Build(req Request, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	return build(opBuild, req, cfg)
}

// Generate runs the full pipeline.
//
// On a cloud with a flat axis it returns the Result with Samples and Cloud
// populated, HasDimension false, and an error wrapping
// ErrDegenerateDistribution. Other estimation failures behave the same way
// with their own sentinel.
func Generate(req Request, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	res, err := build(opGenerate, req, cfg)
	if err != nil {
		return Result{}, err
	}

	est, err := boxcount.Estimate(res.Cloud, cfg.countOpts...)
	if err != nil {
		if errors.Is(err, boxcount.ErrDegenerateDistribution) {
			return res, fmt.Errorf("%s: %s cloud has no dimension: %w", opGenerate, req.Kind, err)
		}
		return res, fmt.Errorf("%s: %w", opGenerate, err)
	}
	res.Estimate = est
	res.HasDimension = true

	return res, nil
}

func build(op string, req Request, cfg config) (Result, error) {
	vs, err := resolveVertexSet(req.Kind, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	k := vs.K()
	if len(req.Series) < k {
		return Result{}, fmt.Errorf("%s: %s needs at least %d values, got %d: %w",
			op, req.Kind, k, len(req.Series), ErrInsufficientSamples)
	}

	samples, err := labels.Assign(req.Series, k, req.Strategy, cfg.labelOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	start := cfg.start
	if start == nil {
		start = vs.Start()
	}
	cloud, err := chaosgame.Run(labels.Labels(samples), vs, start)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	return Result{Kind: req.Kind, Hint: req.Hint, Samples: samples, Cloud: cloud}, nil
}

func resolveVertexSet(kind Kind, cfg config) (chaosgame.VertexSet, error) {
	if cfg.vertices != nil {
		return *cfg.vertices, nil
	}
	return kind.VertexSet()
}
