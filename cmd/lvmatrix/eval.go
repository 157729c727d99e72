// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/fixture"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// errCasesFailed is returned by eval when at least one case fails.
var errCasesFailed = errors.New("eval: cases failed")

func newEvalCmd(a *app) *cobra.Command {
	var workers, jobs int

	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Run every fixture case in FILE and compare with its expected output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := workerOptions(workers)
			if err != nil {
				return err
			}
			if jobs < 1 {
				return fmt.Errorf("--jobs %d: must be >= 1", jobs)
			}
			cases, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			a.log.Info("loaded fixtures", "file", args[0], "cases", len(cases))

			// Cases are independent; each goroutine writes only its own slot.
			results := make([]error, len(cases))
			var g errgroup.Group
			g.SetLimit(jobs)
			for i, c := range cases {
				g.Go(func() error {
					results[i] = c.Check(opts...)
					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			failed := 0
			for i, err := range results {
				if err != nil {
					failed++
					a.log.Debug("case failed", "line", cases[i].Line, "err", err)
					fmt.Fprintf(out, "FAIL line %d: %v\n", cases[i].Line, err)
					continue
				}
				fmt.Fprintf(out, "ok   line %d\n", cases[i].Line)
			}
			fmt.Fprintf(out, "%d/%d passed\n", len(cases)-failed, len(cases))
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errCasesFailed, failed, len(cases))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines per Mul; 0 uses every logical core")
	cmd.Flags().IntVar(&jobs, "jobs", 1, "cases evaluated concurrently")

	return cmd
}
