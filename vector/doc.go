// Package vector implements the Point type: a variable-length ordered vector
// of scalars with the zero-padding arithmetic every lvlearn classifier is
// built on.
//
// 🚀 What is a Point?
//
//	A []scalar.Scalar of any length. Dimension equals length, and two Points
//	in one computation may have different dimensions:
//	  • Add / Sub — the shorter operand is implicitly zero-padded on its
//	    higher-index dimensions; the result has the larger dimension
//	  • Dot — sums elementwise products over the overlapping prefix (the
//	    missing tail contributes zero terms)
//	  • Scale — multiplies every component by a real factor
//	  • Magnitude — sqrt of Σ|x·conj(x)|; the Euclidean norm for real data
//	  • Sum — fold of Add over any number of Points
//
// Points are treated as immutable values: every operation returns a fresh
// Point and never mutates an operand.
//
// Complexity: all operations are O(d) in the larger operand dimension d.
package vector
