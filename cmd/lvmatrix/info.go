// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/internal/parallel"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report host CPU features and the default worker counts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cpu := cpuid.CPU
			a.log.Debug("cpuid", "vendor", cpu.VendorString, "family", cpu.Family, "model", cpu.Model)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cpu:              %s\n", cpu.BrandName)
			fmt.Fprintf(out, "physical cores:   %d\n", cpu.PhysicalCores)
			fmt.Fprintf(out, "logical cores:    %d\n", cpu.LogicalCores)
			fmt.Fprintf(out, "avx2:             %t\n", cpu.Supports(cpuid.AVX2))
			fmt.Fprintf(out, "avx512f:          %t\n", cpu.Supports(cpuid.AVX512F))
			fmt.Fprintf(out, "mul workers:      %d (default), %d (--workers 0)\n",
				matrix.DefaultWorkers, parallel.HostWorkers())
			fmt.Fprintf(out, "min rows/worker:  %d\n", matrix.DefaultMinRowsPerWorker)
		},
	}
}
