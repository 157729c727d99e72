// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/nn"
)

// Case is one network together with an example input and its expected output.
type Case struct {
	Line    int // line number where the case starts
	Weights []*matrix.Matrix[float64]
	Biases  []*matrix.Matrix[float64]
	ReLU    []bool
	Input   *matrix.Matrix[float64]
	Output  *matrix.Matrix[float64]
}

// Network assembles the case's layers.
func (c Case) Network() (*nn.Network[float64], error) {
	net, err := nn.FromSlices(c.ReLU, c.Weights, c.Biases)
	if err != nil {
		return nil, fmt.Errorf("fixture: case at line %d: %w", c.Line, err)
	}

	return net, nil
}

// Run evaluates the network on the example input.
func (c Case) Run(opts ...matrix.Option) (*matrix.Matrix[float64], error) {
	net, err := c.Network()
	if err != nil {
		return nil, err
	}
	out, err := net.Forward(c.Input, opts...)
	if err != nil {
		return nil, fmt.Errorf("fixture: case at line %d: %w", c.Line, err)
	}

	return out, nil
}

// Check runs the case and compares the result with the expected output using
// exact equality. A mismatch is reported as ErrOutputMismatch naming the
// first differing cell.
func (c Case) Check(opts ...matrix.Option) error {
	got, err := c.Run(opts...)
	if err != nil {
		return err
	}
	if got.Equal(c.Output) {
		return nil
	}

	gr, gc := got.Shape()
	wr, wc := c.Output.Shape()
	if gr != wr || gc != wc {
		return fmt.Errorf("fixture: case at line %d: %w: shape %dx%d, want %dx%d",
			c.Line, ErrOutputMismatch, gr, gc, wr, wc)
	}
	for cell, v := range got.Cells() {
		want, _ := c.Output.Val(cell.Row, cell.Col)
		if v != want {
			return fmt.Errorf("fixture: case at line %d: %w: (%d,%d) = %v, want %v",
				c.Line, ErrOutputMismatch, cell.Row, cell.Col, v, want)
		}
	}

	return fmt.Errorf("fixture: case at line %d: %w", c.Line, ErrOutputMismatch)
}
