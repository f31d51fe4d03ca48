// Package lvlearn is a compact toolbox for supervised classification of
// labeled points in n-dimensional (optionally complex-valued) vector space —
// from the scalar/vector algebra up to the classifiers themselves.
//
// 🚀 What is lvlearn?
//
//	A small, deterministic library that brings together:
//		• Scalar algebra: real & complex scalars with parsing and polar form
//		• Vector algebra: variable-dimension Points with zero-padding semantics
//		• Labeled points: text-parsable (vector, label) pairs over generic labels
//		• Partial selection sort: order only the k smallest, leave the rest
//		• Bayesian plug-in rule: nearest-centroid-with-bias discriminant
//		• k-nearest neighbor: majority vote over the k closest training points
//		• Single-layer perceptron: binary and multiclass one-vs-rest variants
//
// ✨ Why choose lvlearn?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seedable RNG, documented tie-breaking rules
//   - Honest contracts – sentinel errors for precondition violations,
//     defined fallbacks for degenerate-but-valid inputs
//
// Under the hood, everything is organized into small subpackages:
//
//	scalar/   — real & complex scalar arithmetic, parsing, polar construction
//	vector/   — Point type: add, subtract, scale, dot, magnitude, sum
//	dataset/  — LabeledPoint parsing, file loading, synthetic Gaussian clusters
//	psort/    — partial selection sort (k smallest, ascending, in place)
//	classify/ — Bayes plug-in, k-NN, binary & multiclass perceptrons
//
// Quick flow:
//
//	raw text ──▶ dataset.Load ──▶ []LabeledPoint ──▶ classify.KNearest
//	                                                   │
//	                              []Classification ◀───┘
//
// Dive into README.md for full examples and each package's doc.go for the
// algorithmic contracts.
//
//	go get github.com/katalvlaran/lvlearn
package lvlearn
