package classify

import (
	"cmp"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/scalar"
	"github.com/katalvlaran/lvlearn/vector"
)

// trainSample is a centroid-translated, bias-augmented training point.
type trainSample[T any] struct {
	vec   vector.Point
	label T
}

// augment translates vec by the training centroid and prepends the constant
// 1.0 term that folds the bias into the weight vector: y = [1, x − µ].
func augment(vec, mean vector.Point) vector.Point {
	shifted := vec.Sub(mean)
	out := make(vector.Point, 0, len(shifted)+1)
	out = append(out, scalar.New(1))

	return append(out, shifted...)
}

// prepareSamples computes the training centroid and maps every training point
// to its augmented form.
func prepareSamples[T any](train []dataset.LabeledPoint[T]) (vector.Point, []trainSample[T]) {
	vecs := make([]vector.Point, len(train))
	for i, d := range train {
		vecs[i] = d.Vec
	}
	mean := vector.Sum(vecs).Scale(1 / float64(len(train)))

	samples := make([]trainSample[T], len(train))
	for i, d := range train {
		samples[i] = trainSample[T]{vec: augment(d.Vec, mean), label: d.Label}
	}

	return mean, samples
}

// stopEarly reports whether an epoch's misclassification count is within the
// tolerated fraction of the training set. A zero threshold demands a perfect
// epoch.
func stopEarly(misses, total int, threshold float64) bool {
	if misses == 0 {
		return true
	}

	return float64(misses) < threshold*float64(total)
}

// randomWeights draws one uniform [-1.0, 1.0) weight per augmented dimension.
func randomWeights(rng *rand.Rand, dim int) vector.Point {
	w := make(vector.Point, dim)
	for i, f := range uniformWeights(rng, dim) {
		w[i] = scalar.New(f)
	}

	return w
}

// Perceptron classifies test against train with a binary single-layer
// perceptron trained by stochastic weight updates.
//
// The first training point's label is the positive class; the first differing
// label is the negative class, and any further label is folded into the
// negative class (a two-class reduction, not a rejection). Every point is
// translated by the training centroid and augmented with a leading 1.0 so
// the bias lives inside the weight vector.
//
// Training runs at most Options.MaxEpochs passes. Each pass shuffles the
// training order (breaking cyclic oscillations), then for every point adds
// learningRate·error·y to the weights when sign(w·y) disagrees with the
// point's ±1 class value (error ∈ {−2, 0, +2}). A pass whose misclassified
// fraction falls below Options.Threshold — or hits zero — ends training.
//
// Inference takes the sign of w·y on the identically translated and
// augmented test point: positive maps to the positive label, non-positive to
// the negative label.
//
// Preconditions: a non-empty training set (ErrNoTrainingData) with at least
// two distinct labels (ErrSingleClass). Invalid options surface their own
// sentinels. Results follow test order.
func Perceptron[T comparable](train, test []dataset.LabeledPoint[T], opts ...Option) ([]Classification[T], error) {
	cfg, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(train) == 0 {
		return nil, ErrNoTrainingData
	}

	// 1) Fix the two classes from training encounter order.
	posLabel := train[0].Label
	var negLabel T
	found := false
	for _, d := range train[1:] {
		if d.Label != posLabel {
			negLabel, found = d.Label, true
			break
		}
	}
	if !found {
		return nil, ErrSingleClass
	}

	// 2) Centroid-translate and bias-augment the training set.
	mean, samples := prepareSamples(train)

	// 3) Random initial weights, one per augmented dimension.
	rng := trainingRNG(cfg)
	weights := randomWeights(rng, train[0].Vec.Dim()+1)

	// 4) Stochastic training with per-epoch shuffling and early stop.
	for epoch := 0; epoch < cfg.MaxEpochs; epoch++ {
		shuffleInPlace(samples, rng)

		misses := 0
		for _, s := range samples {
			guess := math.Copysign(1, weights.Dot(s.vec).Re)
			truth := -1.0
			if s.label == posLabel {
				truth = 1.0
			}

			// error ∈ {−2, 0, +2}
			if sampleErr := truth - guess; sampleErr != 0 {
				misses++
				weights = weights.Add(s.vec.Scale(sampleErr).Scale(cfg.LearningRate))
			}
		}

		if stopEarly(misses, len(samples), cfg.Threshold) {
			break
		}
	}

	// 5) Classify: strictly positive response ⇒ positive class.
	results := make([]Classification[T], len(test))
	for i := range test {
		label := negLabel
		if weights.Dot(augment(test[i].Vec, mean)).Re > 0 {
			label = posLabel
		}
		results[i] = Classification[T]{Point: &test[i], Label: label}
	}

	return results, nil
}

// labelWeights is one one-vs-rest discriminant: a label and its weight vector.
type labelWeights[T any] struct {
	label T
	w     vector.Point
}

// MulticlassPerceptron classifies test against train with one-vs-rest
// single-layer perceptrons: one weight vector per distinct training label,
// all sharing the centroid translation and 1.0-prefix augmentation of the
// binary variant.
//
// Per training pass (same epoch cap, shuffle and early-stop rule as
// Perceptron): each point is scored by every label's weight vector; when the
// arg-max label disagrees with the truth, learningRate·y is added to the true
// label's weights and subtracted from every other label's.
//
// Determinism: weight vectors are created and scored in ascending label
// order, and an arg-max tie keeps the smaller label.
//
// Degenerate input: an empty training set is not an error — there are no
// weight vectors, and every test point receives the zero value of T.
func MulticlassPerceptron[T cmp.Ordered](train, test []dataset.LabeledPoint[T], opts ...Option) ([]Classification[T], error) {
	cfg, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	results := make([]Classification[T], len(test))
	if len(train) == 0 {
		for i := range test {
			results[i] = Classification[T]{Point: &test[i]}
		}

		return results, nil
	}

	// 1) Distinct labels, ascending, one discriminant each.
	seen := make(map[T]struct{}, len(train))
	labels := make([]T, 0, len(train))
	for _, d := range train {
		if _, ok := seen[d.Label]; !ok {
			seen[d.Label] = struct{}{}
			labels = append(labels, d.Label)
		}
	}
	slices.Sort(labels)

	rng := trainingRNG(cfg)
	machine := make([]labelWeights[T], len(labels))
	for i, label := range labels {
		machine[i] = labelWeights[T]{
			label: label,
			w:     randomWeights(rng, train[0].Vec.Dim()+1),
		}
	}

	// 2) Centroid-translate and bias-augment the training set.
	mean, samples := prepareSamples(train)

	// 3) Reinforce-correct / punish-incorrect training.
	for epoch := 0; epoch < cfg.MaxEpochs; epoch++ {
		shuffleInPlace(samples, rng)

		misses := 0
		for _, s := range samples {
			guess := argmax(machine, s.vec)
			if guess == s.label {
				continue
			}
			misses++

			step := s.vec.Scale(cfg.LearningRate)
			for i := range machine {
				if machine[i].label == s.label {
					machine[i].w = machine[i].w.Add(step)
				} else {
					machine[i].w = machine[i].w.Sub(step)
				}
			}
		}

		if stopEarly(misses, len(samples), cfg.Threshold) {
			break
		}
	}

	// 4) Classify by arg-max score.
	for i := range test {
		results[i] = Classification[T]{
			Point: &test[i],
			Label: argmax(machine, augment(test[i].Vec, mean)),
		}
	}

	return results, nil
}

// argmax returns the label whose weight vector scores y highest. Scanning is
// in ascending label order and only a strictly greater score displaces the
// leader, so ties keep the smallest label.
func argmax[T cmp.Ordered](machine []labelWeights[T], y vector.Point) T {
	var best T
	bestScore := 0.0
	for i, lw := range machine {
		score := lw.w.Dot(y).Re
		if i == 0 || score > bestScore {
			best, bestScore = lw.label, score
		}
	}

	return best
}
