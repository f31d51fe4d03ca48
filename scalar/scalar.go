package scalar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParse indicates that a token could not be parsed as a real or complex
// scalar. The returned error wraps ErrParse and carries the offending token;
// match it with errors.Is.
var ErrParse = errors.New("scalar: cannot parse scalar")

// Scalar is a complex number re+im·i. The zero value is the scalar 0.
// A Scalar with Im == 0 behaves exactly like the real number Re.
type Scalar struct {
	Re float64
	Im float64
}

// New returns a purely real scalar.
func New(re float64) Scalar {
	return Scalar{Re: re}
}

// FromPolar constructs a scalar from polar coordinates:
// r·cos(theta) + r·sin(theta)·i. The angle theta is in radians.
func FromPolar(r, theta float64) Scalar {
	return Scalar{
		Re: r * math.Cos(theta),
		Im: r * math.Sin(theta),
	}
}

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	return Scalar{Re: s.Re + t.Re, Im: s.Im + t.Im}
}

// Sub returns s − t.
func (s Scalar) Sub(t Scalar) Scalar {
	return Scalar{Re: s.Re - t.Re, Im: s.Im - t.Im}
}

// Mul returns the complex product s·t = (ac−bd) + (ad+bc)i.
func (s Scalar) Mul(t Scalar) Scalar {
	return Scalar{
		Re: s.Re*t.Re - s.Im*t.Im,
		Im: s.Re*t.Im + s.Im*t.Re,
	}
}

// Div returns s / t, computed by multiplying s with the conjugate of t and
// dividing by t's squared magnitude (re² + im²). Division by the zero scalar
// follows IEEE-754 (±Inf / NaN components).
func (s Scalar) Div(t Scalar) Scalar {
	tc := t.Conjugate()
	num := s.Mul(tc)
	// t · conj(t) is purely real: the squared magnitude of t.
	denom := t.Mul(tc).Re

	return num.Scale(1 / denom)
}

// Scale returns s with both components multiplied by the real factor f.
func (s Scalar) Scale(f float64) Scalar {
	return Scalar{Re: s.Re * f, Im: s.Im * f}
}

// Neg returns −s.
func (s Scalar) Neg() Scalar {
	return s.Scale(-1)
}

// Conjugate returns the complex conjugate re−im·i.
func (s Scalar) Conjugate() Scalar {
	return Scalar{Re: s.Re, Im: -s.Im}
}

// Magnitude returns the magnitude of the scalar.
//
// When Im == 0 the result is Re itself — no sqrt is taken, so purely real
// scalars round-trip without additional rounding (note the result is then
// signed). Otherwise the result is hypot(Re, Im).
func (s Scalar) Magnitude() float64 {
	if s.Im == 0 {
		return s.Re
	}

	return math.Hypot(s.Re, s.Im)
}

// Angle returns the angle of the scalar in radians, via atan2(Im, Re).
func (s Scalar) Angle() float64 {
	return math.Atan2(s.Im, s.Re)
}

// IsZero reports whether both components are exactly zero.
func (s Scalar) IsZero() bool {
	return s.Re == 0 && s.Im == 0
}

// Parse parses a scalar from its text form: "re" for reals, "re+imi" for
// complex values. The token is split on the first '+', a trailing 'i' on the
// imaginary part is stripped, and both halves must parse as float64. A token
// without '+' has a zero imaginary part.
//
// Malformed tokens yield an error wrapping ErrParse.
func Parse(token string) (Scalar, error) {
	rePart, imPart, hasIm := strings.Cut(token, "+")
	if hasIm {
		imPart = strings.TrimSuffix(imPart, "i")
	} else {
		imPart = "0"
	}

	re, err := strconv.ParseFloat(rePart, 64)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %q", ErrParse, token)
	}
	im, err := strconv.ParseFloat(imPart, 64)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %q", ErrParse, token)
	}

	return Scalar{Re: re, Im: im}, nil
}

// String renders the scalar in the same form Parse accepts: "re" when the
// imaginary part is zero, "re+imi" otherwise.
func (s Scalar) String() string {
	if s.Im == 0 {
		return strconv.FormatFloat(s.Re, 'g', -1, 64)
	}

	return fmt.Sprintf("%s+%si",
		strconv.FormatFloat(s.Re, 'g', -1, 64),
		strconv.FormatFloat(s.Im, 'g', -1, 64))
}
