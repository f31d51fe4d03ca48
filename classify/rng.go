// Package classify - RNG utilities for perceptron training.
//
// This file centralizes random generation for both perceptron variants.
//
// Goals:
//   - Determinism on demand: same seed ⇒ identical weights and shuffles.
//   - Encapsulation: a single RNG factory; no package-global generator.
//   - Baseline behavior: seed==0 ⇒ time-seeded, matching the classic
//     "different every run" perceptron.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each training call owns its
//     generator; do not share one Rand across concurrent calls.
package classify

import (
	"math/rand"
	"time"
)

// trainingRNG resolves the generator for one training call. An injected Rand
// wins; otherwise Seed is used verbatim, with seed==0 meaning time-seeded.
func trainingRNG(cfg Options) *rand.Rand {
	if cfg.Rand != nil {
		return cfg.Rand
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// uniformWeights returns dim weights drawn uniformly from [-1.0, 1.0).
func uniformWeights(rng *rand.Rand, dim int) []float64 {
	w := make([]float64, dim)
	for i := range w {
		w[i] = rng.Float64()*2 - 1
	}

	return w
}

// shuffleInPlace performs a Fisher–Yates shuffle of s using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[E any](s []E, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
