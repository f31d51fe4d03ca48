// Package scalar implements the scalar algebra underneath lvlearn's vectors:
// real numbers and complex numbers of the form re+im·i, stored as a pair of
// IEEE-754 doubles.
//
// 🚀 What is scalar?
//
//	The one numeric building block shared by every lvlearn component:
//	  • componentwise Add / Sub
//	  • complex Mul: (a+bi)(c+di) = (ac−bd) + (ad+bc)i
//	  • Div via the conjugate of the divisor over its squared magnitude
//	  • Magnitude, Angle, Conjugate, Scale, Neg
//	  • polar construction: FromPolar(r, θ) = r·cosθ + r·sinθ·i
//	  • text round-trip: Parse("re") / Parse("re+imi") and String()
//
// Numeric policy:
//
//   - Magnitude returns Re directly when Im == 0. A purely real scalar never
//     pays for a sqrt, and never picks up the extra rounding one would cause.
//   - Parsing splits on the first '+' and strips a trailing 'i'; a token
//     without '+' is a plain real.
//
// Errors (sentinel):
//
//   - ErrParse — the token is not a valid real or complex scalar.
//
// Complexity: every operation is O(1) and allocation-free.
package scalar
