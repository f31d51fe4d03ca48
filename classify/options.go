package classify

import "math/rand"

// Perceptron training defaults. These constants are the single source of
// truth for DefaultOptions.
const (
	// DefaultLearningRate scales every weight correction.
	DefaultLearningRate = 1.0

	// DefaultThreshold is the tolerated misclassified fraction per epoch.
	// Zero demands perfect separation before stopping early.
	DefaultThreshold = 0.0

	// DefaultMaxEpochs caps training passes so non-separable data still
	// terminates.
	DefaultMaxEpochs = 10_000
)

// Options configures perceptron training. Obtain a baseline with
// DefaultOptions and adjust via the functional Option setters.
type Options struct {
	// LearningRate scales each weight update. Must be positive.
	LearningRate float64

	// Threshold is the misclassified fraction below which training stops
	// early. Must be non-negative; at zero, training stops early only once
	// an epoch misclassifies nothing.
	Threshold float64

	// MaxEpochs bounds the number of training passes. Must be positive.
	MaxEpochs int

	// Seed seeds the training RNG (weight init + per-epoch shuffle).
	// Zero means time-seeded: every run differs. Any other value makes
	// training fully reproducible.
	Seed int64

	// Rand, when non-nil, is used directly and Seed is ignored. The
	// generator is consumed sequentially; do not share it across
	// concurrent training calls.
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults: rate 1.0, threshold 0.0,
// 10,000 epoch cap, time-seeded randomness.
func DefaultOptions() Options {
	return Options{
		LearningRate: DefaultLearningRate,
		Threshold:    DefaultThreshold,
		MaxEpochs:    DefaultMaxEpochs,
	}
}

// WithLearningRate sets the weight-update scale.
func WithLearningRate(rate float64) Option {
	return func(o *Options) { o.LearningRate = rate }
}

// WithThreshold sets the tolerated misclassified fraction for early stop.
func WithThreshold(threshold float64) Option {
	return func(o *Options) { o.Threshold = threshold }
}

// WithMaxEpochs sets the training pass cap.
func WithMaxEpochs(n int) Option {
	return func(o *Options) { o.MaxEpochs = n }
}

// WithSeed makes training reproducible. A zero seed restores the default
// time-seeded behavior.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned generator, overriding Seed entirely.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// gatherOptions folds opts over the defaults and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.LearningRate <= 0 {
		return Options{}, ErrBadLearningRate
	}
	if cfg.Threshold < 0 {
		return Options{}, ErrBadThreshold
	}
	if cfg.MaxEpochs <= 0 {
		return Options{}, ErrBadMaxEpochs
	}

	return cfg, nil
}
