// Package classify implements lvlearn's three supervised classification
// algorithms over labeled points:
//
//   - Bayes — Gaussian plug-in rule with equal (implicit identity) covariance,
//     collapsing to a linear nearest-centroid-with-bias discriminant
//   - KNearest — k-nearest-neighbor majority vote, backed by psort's partial
//     selection sort
//   - Perceptron / MulticlassPerceptron — single-layer perceptrons trained by
//     stochastic weight updates (binary sign rule and one-vs-rest arg-max)
//
// All three share one shape: accept a training set and a test set of
// dataset.LabeledPoint values, return one Classification per test point, in
// test-set order. Inputs are never mutated; each Classification references
// its test point rather than copying the vector, so results must not outlive
// the test slice.
//
// Determinism:
//
//   - Tie-breaking is fixed and documented per algorithm: Bayes and the
//     multiclass perceptron process labels in ascending order and keep the
//     smallest label on score ties; k-NN keeps the label first encountered
//     while tallying neighbors in ascending-distance order.
//   - Perceptron randomness (weight init, per-epoch shuffling) flows through
//     one explicit *rand.Rand per training call: time-seeded by default,
//     reproducible via WithSeed or WithRand.
//
// Failure semantics, three-way:
//
//   - Precondition violations are sentinel errors and abort immediately:
//     ErrNotEnoughNeighbors, ErrNoTrainingData, ErrSingleClass,
//     ErrBadLearningRate, ErrBadThreshold, ErrBadMaxEpochs.
//   - Degenerate-but-valid inputs (empty training set for Bayes or an empty
//     multiclass weight set, k = 0 for k-NN) are not errors: every test point
//     gets the label type's zero value.
//   - An empty test set yields an empty result, never an error.
//
// All calls are single-threaded and run to completion; nothing blocks and
// nothing is shared across calls.
package classify
