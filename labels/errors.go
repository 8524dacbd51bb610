package labels

import "errors"

var (
	// ErrInvalidK indicates a label alphabet smaller than two.
	ErrInvalidK = errors.New("labels: k must be ≥ 2")

	// ErrInsufficientSamples indicates fewer samples than labels (p < k).
	ErrInsufficientSamples = errors.New("labels: insufficient samples")

	// ErrNonFinite indicates a NaN or ±Inf sample, which has no rank.
	ErrNonFinite = errors.New("labels: NaN or Inf sample")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("labels: unknown strategy")

	// ErrNeedRandSource indicates the Random strategy was requested without
	// WithRand or WithSeed.
	ErrNeedRandSource = errors.New("labels: rng is required")
)
