// SPDX-License-Identifier: MIT

package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
)

var (
	// ErrSyntax is returned for malformed fixture text.
	ErrSyntax = errors.New("fixture: syntax error")

	// ErrIncompleteCase is returned when a case lacks its input or output.
	ErrIncompleteCase = errors.New("fixture: incomplete case")

	// ErrOutputMismatch is returned by Case.Check when the network output
	// differs from the expected output.
	ErrOutputMismatch = errors.New("fixture: output mismatch")
)

// Recognised keys.
const (
	keyWeights = "Weights"
	keyBiases  = "Biases"
	keyRelu    = "Relu"
	keyInput   = "Example_Input"
	keyOutput  = "Example_Output"
)

// ParseMatrix parses "[[1, 2], [3, 4]]" into a float64 matrix.
// Whitespace between tokens is ignored.
//
// Errors:
//   - ErrSyntax for missing brackets, empty cells or non-float values.
//   - matrix.ErrBadShape (via matrix.New) for ragged rows.
func ParseMatrix(s string) (*matrix.Matrix[float64], error) {
	rest := strings.TrimSpace(s)
	if len(rest) < 2 || rest[0] != '[' || rest[len(rest)-1] != ']' {
		return nil, fmt.Errorf("%w: matrix %q must be wrapped in [ ]", ErrSyntax, s)
	}
	rest = strings.TrimSpace(rest[1 : len(rest)-1])

	var rows [][]float64
	for {
		if !strings.HasPrefix(rest, "[") {
			return nil, fmt.Errorf("%w: row %d of %q must start with [", ErrSyntax, len(rows), s)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: row %d of %q is not closed", ErrSyntax, len(rows), s)
		}
		row, err := parseRow(rest[1:end])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d of %q: %v", ErrSyntax, len(rows), s, err)
		}
		rows = append(rows, row)

		rest = strings.TrimSpace(rest[end+1:])
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return nil, fmt.Errorf("%w: expected ',' between rows of %q", ErrSyntax, s)
		}
		rest = strings.TrimSpace(rest[1:])
	}

	return matrix.New(rows)
}

// parseRow parses "1, 2.5, -3" into floats.
func parseRow(s string) ([]float64, error) {
	cells := strings.Split(s, ",")
	row := make([]float64, len(cells))
	for j, cell := range cells {
		cell = strings.TrimSpace(cell)
		if strings.ContainsAny(cell, "[]") {
			return nil, fmt.Errorf("col %d: unexpected bracket", j)
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("col %d: %q is not a float", j, cell)
		}
		row[j] = v
	}

	return row, nil
}

// parseBool accepts exactly "true" or "false".
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: relu value %q, want true or false", ErrSyntax, s)
	}
}

// builder accumulates the lines of one case.
type builder struct {
	c     Case
	lines int // non-blank lines seen
	start int // first line number of the case
}

// add consumes one "Key[ N]: value" line.
func (b *builder) add(line string) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("%w: missing ':' in %q", ErrSyntax, line)
	}
	name, _, _ := strings.Cut(strings.TrimSpace(key), " ")
	value = strings.TrimSpace(value)

	var err error
	switch name {
	case keyWeights:
		var m *matrix.Matrix[float64]
		if m, err = ParseMatrix(value); err == nil {
			b.c.Weights = append(b.c.Weights, m)
		}
	case keyBiases:
		var m *matrix.Matrix[float64]
		if m, err = ParseMatrix(value); err == nil {
			b.c.Biases = append(b.c.Biases, m)
		}
	case keyRelu:
		var v bool
		if v, err = parseBool(value); err == nil {
			b.c.ReLU = append(b.c.ReLU, v)
		}
	case keyInput:
		b.c.Input, err = ParseMatrix(value)
	case keyOutput:
		b.c.Output, err = ParseMatrix(value)
	}

	return err
}

// finish validates and returns the accumulated case.
func (b *builder) finish() (Case, error) {
	if b.c.Input == nil || b.c.Output == nil {
		return Case{}, fmt.Errorf("case starting at line %d: %w: need %s and %s",
			b.start, ErrIncompleteCase, keyInput, keyOutput)
	}

	return b.c, nil
}

// Parse reads every case from r.
// Line numbers in errors are 1-based.
func Parse(r io.Reader) ([]Case, error) {
	var (
		cases []Case
		cur   builder
		n     int
	)
	flush := func() error {
		if cur.lines == 0 {
			return nil
		}
		c, err := cur.finish()
		if err != nil {
			return err
		}
		c.Line = cur.start
		cases = append(cases, c)
		cur = builder{}

		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, fmt.Errorf("fixture: %w", err)
			}
			continue
		}
		if cur.lines == 0 {
			cur.start = n
		}
		cur.lines++
		if err := cur.add(line); err != nil {
			return nil, fmt.Errorf("fixture: line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fixture: read: %w", err)
	}
	if err := flush(); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	return cases, nil
}

// Load opens path and parses it.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
