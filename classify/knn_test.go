package classify_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlearn/classify"
	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKNearest_DuplicateWins checks k=1 with an exact duplicate of the test
// point in the training set: the duplicate's label must win.
func TestKNearest_DuplicateWins(t *testing.T) {
	train := []dataset.LabeledPoint[string]{
		labeled("A", 0, 0),
		labeled("B", 3, 3),
		labeled("C", 9, 9),
	}
	test := []dataset.LabeledPoint[string]{labeled("?", 3, 3)}

	results, err := classify.KNearest(train, test, 1)
	require.NoError(t, err)
	assert.Equal(t, "B", results[0].Label)
}

// TestKNearest_MajorityVote verifies the vote among k=3 neighbors.
func TestKNearest_MajorityVote(t *testing.T) {
	train := []dataset.LabeledPoint[string]{
		labeled("A", 0, 0),
		labeled("B", 1, 0),
		labeled("B", 0, 1),
		labeled("A", 50, 50),
	}
	test := []dataset.LabeledPoint[string]{labeled("?", 0, 0)}

	results, err := classify.KNearest(train, test, 3)
	require.NoError(t, err)
	assert.Equal(t, "B", results[0].Label, "two B votes beat one A vote among the 3 nearest")
}

// TestKNearest_TieEncounterOrder pins the documented tie rule: equal votes
// resolve to the label first encountered in ascending-distance order.
func TestKNearest_TieEncounterOrder(t *testing.T) {
	train := []dataset.LabeledPoint[string]{
		labeled("B", 1, 0),
		labeled("A", 0, 2),
		labeled("C", 50, 50),
	}
	test := []dataset.LabeledPoint[string]{labeled("?", 0, 0)}

	// Distances: B at 1, A at 2 — one vote each; B was tallied first.
	results, err := classify.KNearest(train, test, 2)
	require.NoError(t, err)
	assert.Equal(t, "B", results[0].Label)
}

// TestKNearest_NotEnoughNeighbors confirms the contract violation surfaces as
// a sentinel error, not a degraded answer.
func TestKNearest_NotEnoughNeighbors(t *testing.T) {
	train := []dataset.LabeledPoint[string]{labeled("A", 0, 0)}

	_, err := classify.KNearest(train, train, 2)
	assert.ErrorIs(t, err, classify.ErrNotEnoughNeighbors)
}

// TestKNearest_ZeroNeighbors checks the degenerate-but-valid k=0: zero-value
// labels for every test point, no error.
func TestKNearest_ZeroNeighbors(t *testing.T) {
	train := []dataset.LabeledPoint[string]{labeled("A", 0, 0)}
	test := []dataset.LabeledPoint[string]{labeled("?", 1, 1)}

	results, err := classify.KNearest(train, test, 0)
	require.NoError(t, err)
	assert.Equal(t, "", results[0].Label)
}

// TestKNearest_MismatchedDimensions exercises zero-padding in the distance,
// with training points of different dimension than the test point.
func TestKNearest_MismatchedDimensions(t *testing.T) {
	train := []dataset.LabeledPoint[string]{
		labeled("near", 1, 1),       // distance √2 from (0,0,0)
		labeled("far", 1, 1, 9),     // the third dimension pushes it away
		labeled("mid", 0, 0, 3, 50), // distance via padded 4th component
	}
	test := []dataset.LabeledPoint[string]{labeled("?", 0, 0, 0)}

	results, err := classify.KNearest(train, test, 1)
	require.NoError(t, err)
	assert.Equal(t, "near", results[0].Label)
}

// TestKNearest_EndToEnd replays the canonical flow from text to guess:
// training "0 0 A" / "10 10 B", test "1 1 ?", k=1 ⇒ A.
func TestKNearest_EndToEnd(t *testing.T) {
	train, err := dataset.Read(strings.NewReader("0 0 A\n10 10 B\n"), dataset.StringLabel)
	require.NoError(t, err)
	test, err := dataset.Read(strings.NewReader("1 1 ?\n"), dataset.StringLabel)
	require.NoError(t, err)

	results, err := classify.KNearest(train, test, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Label)
	assert.Equal(t, "1   1   A", results[0].String())
}
