package classify

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/scalar"
	"github.com/katalvlaran/lvlearn/vector"
)

// bayesWeights holds the plug-in discriminant terms derived from one label's
// centroid µ.
type bayesWeights[T any] struct {
	label T

	// w = 2·conj(µ), the linear weight.
	w vector.Point

	// w0 = µ·conj(µ), the bias; purely real by construction.
	w0 scalar.Scalar
}

// Bayes classifies test against train with the Gaussian plug-in rule under a
// shared implicit identity covariance, which collapses the log-likelihood
// ratio to the linear discriminant
//
//	score(label) = Re( 2·conj(µ)·x − µ·conj(µ) )
//
// per label centroid µ. Each test point takes the label with the maximum
// score.
//
// Determinism: label groups are evaluated in ascending label order, and a
// score tie keeps the smaller label.
//
// Degenerate input: an empty training set is not an error — every test point
// receives the zero value of T. Results follow test order; one entry per
// test point.
//
// Complexity: O(n·d) training aggregation plus O(m·c·d) inference for n
// training points, m test points, c labels and dimension d.
func Bayes[T cmp.Ordered](train, test []dataset.LabeledPoint[T]) []Classification[T] {
	// 1) Partition training vectors by label.
	groups := make(map[T][]vector.Point, len(train))
	for _, d := range train {
		groups[d.Label] = append(groups[d.Label], d.Vec)
	}

	// 2) Fix the evaluation order: ascending labels.
	labels := make([]T, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	// 3) Derive plug-in weights from each label's centroid.
	weights := make([]bayesWeights[T], len(labels))
	for i, label := range labels {
		members := groups[label]
		mean := vector.Sum(members).Scale(1 / float64(len(members)))
		meanConj := mean.Conjugate()

		weights[i] = bayesWeights[T]{
			label: label,
			w:     meanConj.Scale(2),
			w0:    mean.Dot(meanConj),
		}
	}

	// 4) Score every test point against every label; keep the arg-max.
	results := make([]Classification[T], len(test))
	for i := range test {
		var best T
		bestScore := 0.0
		for j, bw := range weights {
			score := bw.w.Dot(test[i].Vec).Sub(bw.w0).Re
			if j == 0 || score > bestScore {
				best, bestScore = bw.label, score
			}
		}

		results[i] = Classification[T]{Point: &test[i], Label: best}
	}

	return results
}
