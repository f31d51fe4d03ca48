package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlearn/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScalar_AddSub verifies componentwise addition and subtraction.
func TestScalar_AddSub(t *testing.T) {
	a := scalar.Scalar{Re: 1, Im: 2}
	b := scalar.Scalar{Re: 3, Im: -5}

	assert.Equal(t, scalar.Scalar{Re: 4, Im: -3}, a.Add(b), "add is componentwise")
	assert.Equal(t, scalar.Scalar{Re: -2, Im: 7}, a.Sub(b), "sub is componentwise")
	assert.Equal(t, a, a.Add(b).Sub(b), "adding then subtracting restores the operand")
}

// TestScalar_Mul verifies the complex product (a+bi)(c+di) = (ac−bd)+(ad+bc)i.
func TestScalar_Mul(t *testing.T) {
	a := scalar.Scalar{Re: 1, Im: 2}
	b := scalar.Scalar{Re: 3, Im: 4}

	// (1+2i)(3+4i) = 3+4i+6i−8 = −5+10i
	assert.Equal(t, scalar.Scalar{Re: -5, Im: 10}, a.Mul(b))
	assert.Equal(t, a.Mul(b), b.Mul(a), "complex multiplication commutes")
}

// TestScalar_DivRoundTrip checks (a/b)*b ≈ a within floating-point epsilon
// for a nonzero divisor.
func TestScalar_DivRoundTrip(t *testing.T) {
	a := scalar.Scalar{Re: 2.5, Im: -1.25}
	b := scalar.Scalar{Re: 0.75, Im: 3}

	got := a.Div(b).Mul(b)
	assert.InDelta(t, a.Re, got.Re, 1e-12, "real part must survive the round trip")
	assert.InDelta(t, a.Im, got.Im, 1e-12, "imaginary part must survive the round trip")
}

// TestScalar_Magnitude verifies the signed-real fast path and the hypot path.
func TestScalar_Magnitude(t *testing.T) {
	// Im == 0 returns Re directly, sign included.
	assert.Equal(t, -3.0, scalar.New(-3).Magnitude(), "real scalars skip the sqrt")
	assert.Equal(t, 0.0, scalar.Scalar{}.Magnitude())

	// 3-4-5 triangle.
	assert.InDelta(t, 5.0, scalar.Scalar{Re: 3, Im: 4}.Magnitude(), 1e-15)
}

// TestScalar_Conjugate verifies that conjugation negates only the imaginary part
// and that s·conj(s) is the squared magnitude.
func TestScalar_Conjugate(t *testing.T) {
	s := scalar.Scalar{Re: 3, Im: 4}

	assert.Equal(t, scalar.Scalar{Re: 3, Im: -4}, s.Conjugate())

	sq := s.Mul(s.Conjugate())
	assert.Equal(t, 25.0, sq.Re, "s·conj(s) is |s|²")
	assert.Equal(t, 0.0, sq.Im, "s·conj(s) is purely real")
}

// TestScalar_FromPolar checks polar construction against cos/sin and that
// Magnitude/Angle invert it.
func TestScalar_FromPolar(t *testing.T) {
	s := scalar.FromPolar(2, math.Pi/3)

	assert.InDelta(t, 1.0, s.Re, 1e-15, "2·cos(π/3) = 1")
	assert.InDelta(t, math.Sqrt(3), s.Im, 1e-15, "2·sin(π/3) = √3")
	assert.InDelta(t, 2.0, s.Magnitude(), 1e-15)
	assert.InDelta(t, math.Pi/3, s.Angle(), 1e-15)
}

// TestParse_Real verifies plain real tokens parse with a zero imaginary part.
func TestParse_Real(t *testing.T) {
	s, err := scalar.Parse("-2.5")
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar{Re: -2.5}, s)
}

// TestParse_Complex verifies the "re+imi" form, including negative parts.
func TestParse_Complex(t *testing.T) {
	s, err := scalar.Parse("0.954+0.3i")
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar{Re: 0.954, Im: 0.3}, s)

	s, err = scalar.Parse("-1+-2i")
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar{Re: -1, Im: -2}, s)
}

// TestParse_Malformed ensures bad tokens yield ErrParse.
func TestParse_Malformed(t *testing.T) {
	for _, token := range []string{"", "abc", "1+xi", "i", "1+"} {
		_, err := scalar.Parse(token)
		assert.ErrorIs(t, err, scalar.ErrParse, "token %q must fail", token)
	}
}

// TestString_RoundTrip ensures String output feeds back through Parse.
func TestString_RoundTrip(t *testing.T) {
	for _, s := range []scalar.Scalar{
		{Re: 1.5},
		{Re: -2, Im: 0.25},
		{Re: 0, Im: -1},
	} {
		back, err := scalar.Parse(s.String())
		require.NoError(t, err, "String %q must parse", s.String())
		assert.Equal(t, s, back)
	}
}
