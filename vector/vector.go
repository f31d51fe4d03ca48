package vector

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvlearn/scalar"
)

// Point is an ordered vector of scalars. Its dimension is its length; two
// Points of different dimension may take part in the same operation, with the
// shorter treated as zero-padded on its missing higher dimensions.
type Point []scalar.Scalar

// Real builds a Point from real components.
func Real(components ...float64) Point {
	p := make(Point, len(components))
	for i, c := range components {
		p[i] = scalar.New(c)
	}

	return p
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Dim returns the dimension of the point.
func (p Point) Dim() int {
	return len(p)
}

// Add returns p + q. The result dimension is max(dim(p), dim(q)); the shorter
// operand contributes zeros on the dimensions it lacks.
func (p Point) Add(q Point) Point {
	long, short := p, q
	if len(q) > len(p) {
		long, short = q, p
	}

	out := long.Clone()
	for i, s := range short {
		out[i] = out[i].Add(s)
	}

	return out
}

// Sub returns p − q under the same zero-padding rule as Add: dimensions
// present only in p survive unchanged, dimensions present only in q appear
// negated.
func (p Point) Sub(q Point) Point {
	out := make(Point, max(len(p), len(q)))
	for i := range out {
		switch {
		case i >= len(q):
			out[i] = p[i]
		case i >= len(p):
			out[i] = q[i].Neg()
		default:
			out[i] = p[i].Sub(q[i])
		}
	}

	return out
}

// Scale returns p with every component multiplied by the real factor f.
func (p Point) Scale(f float64) Point {
	out := make(Point, len(p))
	for i, s := range p {
		out[i] = s.Scale(f)
	}

	return out
}

// Dot returns the dot product Σ p[i]·q[i] over the overlapping prefix of the
// two points. The non-overlapping tail of the longer point multiplies an
// absent component and therefore contributes nothing, which for real data
// matches zero-padding semantics exactly.
func (p Point) Dot(q Point) scalar.Scalar {
	n := min(len(p), len(q))

	var sum scalar.Scalar
	for i := 0; i < n; i++ {
		sum = sum.Add(p[i].Mul(q[i]))
	}

	return sum
}

// Conjugate returns p with every component conjugated.
func (p Point) Conjugate() Point {
	out := make(Point, len(p))
	for i, s := range p {
		out[i] = s.Conjugate()
	}

	return out
}

// Magnitude returns the length of the point: the square root of the magnitude
// of Σ x·conj(x). Each x·conj(x) is purely real, so for real components this
// is the ordinary Euclidean norm.
func (p Point) Magnitude() float64 {
	var sum scalar.Scalar
	for _, x := range p {
		sum = sum.Add(x.Mul(x.Conjugate()))
	}

	return math.Sqrt(sum.Magnitude())
}

// Distance returns the Euclidean distance |p − q|, honoring zero-padding
// across mismatched dimensions.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Equal reports componentwise equality. Points of different dimension are
// never equal, even if the longer one only appends zeros.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Sum folds Add over points, starting from the empty Point. The result has
// the dimension of the widest operand.
func Sum(points []Point) Point {
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum
}

// String renders the components separated by single spaces.
func (p Point) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}

	return strings.Join(parts, " ")
}
