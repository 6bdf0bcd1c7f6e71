package main

import (
	"os"
	"time"

	"github.com/dacapoday/blocks"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAppendCmd())
}

var appendCount int

func newAppendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append",
		Short: "Append values one at a time and report throughput",
		Long: `The append command appends -n values one at a time to a block array
and, as a baseline, to a flat Go slice, then reports the elapsed time of
both and the final block metrics.

Example:
  blockview append -n 10000000 -b 65536 -g grow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppend()
		},
	}
	cmd.Flags().IntVarP(&appendCount, "count", "n", 1_000_000, "Number of values to append")
	return cmd
}

type appendReport struct {
	Count   int            `json:"count"`
	Blocks  time.Duration  `json:"blocks_ns"`
	Flat    time.Duration  `json:"flat_ns"`
	Metrics blocks.Metrics `json:"metrics"`
}

func runAppend() error {
	values, err := newValues()
	if err != nil {
		return err
	}
	if appendCount < 0 {
		return blocks.ErrNegativeSize
	}
	report := measureAppend(values, appendCount)
	if jsonOut {
		return printJSON(report)
	}
	printer.Fprintf(os.Stdout, "appended %d values\n", report.Count)
	printer.Fprintf(os.Stdout, "  blocks  %v (%d blocks, capacity %d, utilization %.1f%%)\n",
		report.Blocks, report.Metrics.NumBlocks, report.Metrics.Capacity, report.Metrics.Utilization*100)
	printer.Fprintf(os.Stdout, "  slice   %v\n", report.Flat)
	return nil
}

func measureAppend(values *blocks.Int64s, count int) appendReport {
	start := time.Now()
	for i := range count {
		values.Append(int64(i))
	}
	elapsed := time.Since(start)
	printVerbose("block array done in %v\n", elapsed)

	start = time.Now()
	var flat []int64
	for i := range count {
		flat = append(flat, int64(i))
	}
	flatElapsed := time.Since(start)

	return appendReport{
		Count:   len(flat),
		Blocks:  elapsed,
		Flat:    flatElapsed,
		Metrics: values.Metrics(),
	}
}
