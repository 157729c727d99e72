// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/fixture"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/nn"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot size in inches.
const (
	sweepWidth  = 6
	sweepHeight = 4
)

// sweepParams describes one input sweep.
type sweepParams struct {
	Index    int     // input row to vary
	From, To float64 // inclusive range
	Steps    int     // number of samples, >= 2
}

func (p sweepParams) validate(inputs int) error {
	if p.Index < 0 || p.Index >= inputs {
		return fmt.Errorf("--index %d: network has %d inputs", p.Index, inputs)
	}
	if p.Steps < 2 {
		return fmt.Errorf("--steps %d: need at least 2", p.Steps)
	}
	if p.From >= p.To {
		return fmt.Errorf("--from %v must be below --to %v", p.From, p.To)
	}

	return nil
}

// sweep evaluates net at Steps evenly spaced values of input row Index,
// holding the other entries of base fixed. It returns one series per output
// row (column 0 of the output).
func sweep(net *nn.Network[float64], base *matrix.Matrix[float64], p sweepParams) ([]plotter.XYs, error) {
	if err := p.validate(net.InputSize()); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(base); err != nil {
		return nil, fmt.Errorf("sweep: input: %w", err)
	}
	if r, c := base.Shape(); r != net.InputSize() || c != 1 {
		return nil, fmt.Errorf("sweep: input is %dx%d, network takes a %dx1 column: %w",
			r, c, net.InputSize(), matrix.ErrDimensionMismatch)
	}
	rows := base.ToRows()
	series := make([]plotter.XYs, net.OutputSize())
	for k := range series {
		series[k] = make(plotter.XYs, p.Steps)
	}

	for s := 0; s < p.Steps; s++ {
		x := p.From + (p.To-p.From)*float64(s)/float64(p.Steps-1)
		rows[p.Index][0] = x
		in, err := matrix.New(rows)
		if err != nil {
			return nil, err
		}
		out, err := net.Forward(in)
		if err != nil {
			return nil, err
		}
		for k := range series {
			y, _ := out.Val(k, 0)
			series[k][s] = plotter.XY{X: x, Y: y}
		}
	}

	return series, nil
}

// savePlot draws one line per series; the image format follows path's extension.
func savePlot(series []plotter.XYs, index int, path string) error {
	p := plot.New()
	p.Title.Text = "network response"
	p.X.Label.Text = fmt.Sprintf("input %d", index)
	p.Y.Label.Text = "output"

	lines := make([]any, 0, 2*len(series))
	for k, xys := range series {
		lines = append(lines, fmt.Sprintf("out %d", k), xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("sweep: plot: %w", err)
	}
	if err := p.Save(sweepWidth*vg.Inch, sweepHeight*vg.Inch, path); err != nil {
		return fmt.Errorf("sweep: save %s: %w", path, err)
	}

	return nil
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		params sweepParams
		out    string
	)

	cmd := &cobra.Command{
		Use:   "sweep FILE",
		Short: "Plot the outputs of the first case's network while one input varies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			cases, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			if len(cases) == 0 {
				return fmt.Errorf("sweep: %s has no cases", args[0])
			}
			c := cases[0]
			net, err := c.Network()
			if err != nil {
				return err
			}
			series, err := sweep(net, c.Input, params)
			if err != nil {
				return fmt.Errorf("case at line %d: %w", c.Line, err)
			}
			if err := savePlot(series, params.Index, out); err != nil {
				return err
			}
			a.log.Info("plot written", "path", out, "steps", params.Steps, "outputs", len(series))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&params.Index, "index", 0, "input row to vary")
	f.Float64Var(&params.From, "from", -5, "first input value")
	f.Float64Var(&params.To, "to", 5, "last input value")
	f.IntVar(&params.Steps, "steps", 101, "number of samples")
	f.StringVar(&out, "out", "", "output image; format from extension (png, svg, pdf)")

	return cmd
}
