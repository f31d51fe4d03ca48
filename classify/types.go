package classify

import (
	"errors"

	"github.com/katalvlaran/lvlearn/dataset"
)

// Sentinel errors returned by the classifiers. All are precondition
// violations: the algorithm refuses to run rather than producing a
// meaningless answer. Match with errors.Is.
var (
	// ErrNotEnoughNeighbors indicates a k-NN call requesting more neighbors
	// than the training set holds. Fewer neighbors than requested cannot be
	// satisfied, so this is a contract violation, not an empty result.
	ErrNotEnoughNeighbors = errors.New("classify: not enough training data for requested neighbors")

	// ErrNoTrainingData indicates the binary perceptron was given an empty
	// training set; its decision boundary would be meaningless.
	ErrNoTrainingData = errors.New("classify: perceptron requires training data")

	// ErrSingleClass indicates the binary perceptron's training set holds
	// only one distinct label. A two-class boundary needs two classes.
	ErrSingleClass = errors.New("classify: perceptron training data needs two distinct labels")

	// ErrBadLearningRate indicates a non-positive learning rate.
	ErrBadLearningRate = errors.New("classify: learning rate must be positive")

	// ErrBadThreshold indicates a negative early-stop threshold.
	ErrBadThreshold = errors.New("classify: threshold must be non-negative")

	// ErrBadMaxEpochs indicates a non-positive training pass cap.
	ErrBadMaxEpochs = errors.New("classify: max epochs must be positive")
)

// Classification pairs a test point with an algorithm's label guess.
//
// Point aliases the entry of the caller's test slice (no vector copy); the
// Classification is therefore valid only while that slice lives. Label is an
// owned copy of the guess.
type Classification[T any] struct {
	// Point references the classified test point.
	Point *dataset.LabeledPoint[T]

	// Label is the algorithm's guess for the point's classification.
	Label T
}

// String renders the test point followed by the guessed label, in the
// library's three-space reporting format.
func (c Classification[T]) String() string {
	guess := dataset.LabeledPoint[T]{Vec: c.Point.Vec, Label: c.Label}

	return guess.String()
}
