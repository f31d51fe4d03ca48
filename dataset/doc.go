// Package dataset defines labeled points — the (vector, label) pairs every
// lvlearn classifier trains and predicts on — plus their text format and a
// synthetic Gaussian-cluster generator for experiments and tests.
//
// 🚀 Text format
//
//	One labeled point per line, whitespace-separated tokens:
//	  • every token but the last parses as a scalar vector component
//	    (plain real "1.5" or complex "0.9+0.3i")
//	  • the last token parses as the label, via a caller-supplied LabelParser
//	  • a line with zero tokens is a parse error
//
//	"0.954+0.3i   1.0   0.7   red"  →  Point{0.954+0.3i, 1, 0.7}, label "red"
//
// Reading is fail-fast: the first malformed line aborts the whole load with
// an error naming the line number. There is no per-line skipping.
//
// Output format: LabeledPoint.String renders the components and the label
// separated by three spaces — the library's reporting convention.
//
// Errors (sentinel):
//
//   - ErrEmptyLine — a line held no tokens at all.
//
// Labels are generic: any type works, supplied with a LabelParser[T] for
// reading and whatever comparability the consuming classifier requires.
package dataset
