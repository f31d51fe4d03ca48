package classify

import (
	"cmp"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/psort"
)

// neighbor pairs a training point with its distance to the test point under
// consideration.
type neighbor[T any] struct {
	point *dataset.LabeledPoint[T]
	dist  float64
}

// KNearest classifies test against train by majority vote among each test
// point's k nearest training points (Euclidean distance, with mismatched
// dimensions zero-padded).
//
// Per test point the distances are partially selection-sorted: only the k
// smallest end up ordered, in O(k·n) instead of a full sort. Distance ties
// fall to cmp.Compare's total order over float64, so NaN cannot produce an
// unordered comparison.
//
// Determinism: among labels with equal votes, the label first encountered
// while tallying neighbors in ascending-distance order wins.
//
// Contract: len(train) >= k, else ErrNotEnoughNeighbors. k = 0 is valid and
// degenerates to the zero value of T for every test point. Results follow
// test order.
//
// Complexity: O(m·n·d + m·k·n) for m test points, n training points,
// dimension d. There is no training phase.
func KNearest[T comparable](train, test []dataset.LabeledPoint[T], k int) ([]Classification[T], error) {
	if len(train) < k {
		return nil, ErrNotEnoughNeighbors
	}

	results := make([]Classification[T], len(test))
	distances := make([]neighbor[T], len(train))
	for i := range test {
		// 1) Distance from this test point to every training point.
		for j := range train {
			distances[j] = neighbor[T]{
				point: &train[j],
				dist:  train[j].Vec.Distance(test[i].Vec),
			}
		}

		// 2) Bring the k nearest to the front, ascending by distance.
		psort.PartialFunc(distances, k, func(a, b neighbor[T]) int {
			return cmp.Compare(a.dist, b.dist)
		})

		// 3) Majority vote over the k nearest, ties to the label seen first.
		results[i] = Classification[T]{
			Point: &test[i],
			Label: majority(distances[:k]),
		}
	}

	return results, nil
}

// majority tallies neighbor labels and returns the most frequent one. A label
// must strictly beat the current leader's count to displace it, so equal
// counts resolve to the earliest-encountered label. Zero neighbors yield the
// zero value of T.
func majority[T comparable](nearest []neighbor[T]) T {
	votes := make(map[T]int, len(nearest))

	var best T
	bestVotes := 0
	for _, n := range nearest {
		label := n.point.Label
		votes[label]++
		if votes[label] > bestVotes {
			best, bestVotes = label, votes[label]
		}
	}

	return best
}
