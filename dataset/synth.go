package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlearn/scalar"
	"github.com/katalvlaran/lvlearn/vector"
)

// defaultSynthSeed seeds Synthesize when no source is supplied. Arbitrary but
// stable, so default runs are reproducible.
const defaultSynthSeed = 1

// Cluster describes one isotropic Gaussian blob of labeled points.
type Cluster[T any] struct {
	// Center is the mean of the blob. Its dimension sets the dimension of
	// every generated point.
	Center vector.Point

	// Spread is the standard deviation applied to every component.
	Spread float64

	// Count is how many points to draw.
	Count int

	// Label is attached to every generated point.
	Label T
}

// Synthesize draws real-valued labeled points around each cluster center,
// component by component, from Normal(center, spread). Points appear in
// cluster order. A nil src falls back to a fixed-seed deterministic source;
// pass rand.NewPCG for reproducible alternatives.
func Synthesize[T any](src rand.Source, clusters []Cluster[T]) []LabeledPoint[T] {
	if src == nil {
		src = rand.NewPCG(defaultSynthSeed, defaultSynthSeed)
	}

	var total int
	for _, c := range clusters {
		total += c.Count
	}

	points := make([]LabeledPoint[T], 0, total)
	for _, c := range clusters {
		for n := 0; n < c.Count; n++ {
			vec := make(vector.Point, len(c.Center))
			for i, center := range c.Center {
				dist := distuv.Normal{Mu: center.Re, Sigma: c.Spread, Src: src}
				vec[i] = scalar.New(dist.Rand())
			}
			points = append(points, LabeledPoint[T]{Vec: vec, Label: c.Label})
		}
	}

	return points
}
