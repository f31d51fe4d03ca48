package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/scalar"
	"github.com/katalvlaran/lvlearn/vector"
	"github.com/stretchr/testify/assert"
)

// TestAdd_ZeroPadding verifies that addition pads the shorter operand with
// zeros and commutes across mismatched dimensions.
func TestAdd_ZeroPadding(t *testing.T) {
	a := vector.Real(1, 2)
	b := vector.Real(3, 4, 5)

	sum := a.Add(b)
	assert.True(t, sum.Equal(vector.Real(4, 6, 5)), "missing third dimension of a is zero")
	assert.True(t, sum.Equal(b.Add(a)), "a+b must equal b+a for any dimensions")

	// Operands survive untouched.
	assert.True(t, a.Equal(vector.Real(1, 2)), "Add must not mutate the receiver")
	assert.True(t, b.Equal(vector.Real(3, 4, 5)), "Add must not mutate the argument")
}

// TestSub_ZeroPadding verifies both directions of mixed-dimension subtraction:
// the longer side's tail survives, negated when it came from the subtrahend.
func TestSub_ZeroPadding(t *testing.T) {
	a := vector.Real(1, 2)
	b := vector.Real(3, 4, 5)

	assert.True(t, b.Sub(a).Equal(vector.Real(2, 2, 5)), "tail of the minuend is kept")
	assert.True(t, a.Sub(b).Equal(vector.Real(-2, -2, -5)), "tail of the subtrahend is negated")

	// (a+b) − b equals a zero-padded to max dimension.
	assert.True(t, a.Add(b).Sub(b).Equal(vector.Real(1, 2, 0)))
}

// TestDot_OverlappingPrefix verifies the dot product runs over the shared
// prefix only and is bilinear for same-dimension points.
func TestDot_OverlappingPrefix(t *testing.T) {
	a := vector.Real(1, 2)
	b := vector.Real(2, 3)
	assert.Equal(t, scalar.New(8), a.Dot(b), "1·2 + 2·3 = 8")

	// Extra dimension on one side contributes nothing.
	c := vector.Real(2, 3, 100)
	assert.Equal(t, scalar.New(8), a.Dot(c))

	// Bilinearity: (a+b)·c == a·c + b·c for same-dimension points.
	d := vector.Real(5, -1)
	left := a.Add(b).Dot(d)
	right := a.Dot(d).Add(b.Dot(d))
	assert.Equal(t, right, left)
}

// TestMagnitude verifies the Euclidean norm for real data and the
// conjugate-product norm for complex components.
func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, vector.Real(3, 4).Magnitude(), 1e-15)
	assert.Equal(t, 0.0, vector.Point{}.Magnitude(), "the empty point has zero magnitude")

	// |(3+4i)| = 5 via x·conj(x) = 25.
	p := vector.Point{scalar.Scalar{Re: 3, Im: 4}}
	assert.InDelta(t, 5.0, p.Magnitude(), 1e-15)
}

// TestDistance verifies distance honors zero-padding.
func TestDistance(t *testing.T) {
	a := vector.Real(1, 1)
	b := vector.Real(1, 1, 3)
	assert.InDelta(t, 3.0, a.Distance(b), 1e-15)
	assert.InDelta(t, 3.0, b.Distance(a), 1e-15, "distance is symmetric")
}

// TestScale verifies scaling multiplies every component.
func TestScale(t *testing.T) {
	p := vector.Real(1, -2, 0.5)
	assert.True(t, p.Scale(2).Equal(vector.Real(2, -4, 1)))
	assert.True(t, p.Scale(0).Equal(vector.Real(0, 0, 0)))
}

// TestSum verifies the fold across mismatched dimensions.
func TestSum(t *testing.T) {
	got := vector.Sum([]vector.Point{
		vector.Real(1, 2),
		vector.Real(3, 4, 5),
		vector.Real(1),
	})
	assert.True(t, got.Equal(vector.Real(5, 6, 5)))

	assert.Nil(t, vector.Sum(nil), "an empty sum is the empty point")
}
