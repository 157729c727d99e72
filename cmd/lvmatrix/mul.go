// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/spf13/cobra"
)

// Demo operands; their product is [[30 20 10] [18 27 9] [10 10 4]].
var (
	demoA = [][]int{{1, 2, 3, 4}, {4, 2, 2, 1}, {1, 1, 1, 1}}
	demoB = [][]int{{1, 4, 1}, {2, 3, 1}, {3, 2, 1}, {4, 1, 1}}
)

func newMulCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply the built-in demo matrices and print the product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x := matrix.MustNew(demoA)
			y := matrix.MustNew(demoB)

			opts, err := workerOptions(workers)
			if err != nil {
				return err
			}
			p, err := x.Mul(y, opts...)
			if err != nil {
				return err
			}
			r, c := p.Shape()
			a.log.Debug("multiplied", "rows", r, "cols", c, "workers", workers)

			vals := make([]string, 0, p.Len())
			for v := range p.All() {
				vals = append(vals, fmt.Sprint(v))
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, p)
			fmt.Fprintln(out, strings.Join(vals, " "))

			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines for Mul; 0 uses every logical core")

	return cmd
}

// workerOptions maps a --workers value to matrix options.
func workerOptions(workers int) ([]matrix.Option, error) {
	switch {
	case workers < 0:
		return nil, fmt.Errorf("--workers %d: must be >= 0", workers)
	case workers == 0:
		return []matrix.Option{matrix.WithParallel()}, nil
	default:
		return []matrix.Option{matrix.WithWorkers(workers)}, nil
	}
}
