package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlearn/scalar"
	"github.com/katalvlaran/lvlearn/vector"
)

// ErrEmptyLine indicates that a data line held no tokens. Returned by
// ParseLine, and wrapped with the line number by Read and Load; match with
// errors.Is.
var ErrEmptyLine = errors.New("dataset: empty line of data")

// LabeledPoint pairs a vector with its classification label. Values are
// immutable once constructed: classifiers never modify them.
type LabeledPoint[T any] struct {
	// Vec is the point's position in feature space.
	Vec vector.Point

	// Label is the point's classification.
	Label T
}

// LabelParser converts the final token of a data line into a label.
type LabelParser[T any] func(token string) (T, error)

// StringLabel is the identity LabelParser for string labels.
func StringLabel(token string) (string, error) {
	return token, nil
}

// IntLabel parses integer labels.
func IntLabel(token string) (int, error) {
	return strconv.Atoi(token)
}

// FloatLabel parses floating-point labels.
func FloatLabel(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

// ParseLine parses one whitespace-delimited line: all tokens but the last are
// scalar vector components, the last is the label. A line with zero tokens
// yields ErrEmptyLine.
func ParseLine[T any](line string, parseLabel LabelParser[T]) (LabeledPoint[T], error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return LabeledPoint[T]{}, ErrEmptyLine
	}

	last := len(tokens) - 1
	label, err := parseLabel(tokens[last])
	if err != nil {
		return LabeledPoint[T]{}, fmt.Errorf("dataset: label %q: %w", tokens[last], err)
	}

	vec := make(vector.Point, last)
	for i, token := range tokens[:last] {
		vec[i], err = scalar.Parse(token)
		if err != nil {
			return LabeledPoint[T]{}, err
		}
	}

	return LabeledPoint[T]{Vec: vec, Label: label}, nil
}

// Read parses one labeled point per line from r. The first malformed line
// aborts the read with an error naming its 1-based line number; nothing is
// skipped silently.
func Read[T any](r io.Reader, parseLabel LabelParser[T]) ([]LabeledPoint[T], error) {
	var points []LabeledPoint[T]

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		p, err := ParseLine(sc.Text(), parseLabel)
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", lineNo, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	return points, nil
}

// Load opens path and Reads it.
func Load[T any](path string, parseLabel LabelParser[T]) ([]LabeledPoint[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f, parseLabel)
}

// String renders the point in the library's reporting format: every vector
// component, then the label, separated by three spaces.
func (p LabeledPoint[T]) String() string {
	var sb strings.Builder
	for _, c := range p.Vec {
		sb.WriteString(c.String())
		sb.WriteString("   ")
	}
	fmt.Fprintf(&sb, "%v", p.Label)

	return sb.String()
}
