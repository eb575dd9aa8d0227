// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clrs/internal/bench"
	"github.com/katalvlaran/clrs/internal/metrics"
)

// errBenchFailed is returned when any product differs from the reference.
var errBenchFailed = errors.New("bench: some multiplications failed or mismatched")

func newBenchCmd(a *app) *cobra.Command {
	var textfile string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare every configured algorithm on random operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if textfile == "" {
				textfile = a.cfg.Metrics.Textfile
			}
			rec, err := metrics.NewRecorder()
			if err != nil {
				return err
			}

			rep, err := bench.NewRunner(a.cfg.Bench, a.logger, rec).Run(cmd.Context())
			if err != nil {
				return err
			}
			if err = printSummary(cmd, rep); err != nil {
				return err
			}
			if textfile != "" {
				if err = rec.WriteTextfile(textfile); err != nil {
					return err
				}
				a.logger.Info("metrics written", "path", textfile, "run_id", rep.ID)
			}
			if rep.Failed() {
				return errBenchFailed
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&textfile, "textfile", "", "write Prometheus metrics to this file (overrides config)")

	return cmd
}

// printSummary renders one line per (size, algorithm).
func printSummary(cmd *cobra.Command, rep *bench.Report) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n", rep.ID)
	fmt.Fprintln(tw, "SIZE\tALGORITHM\tRUNS\tFAILED\tMEAN\tMIN")
	for _, s := range rep.Summaries() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\n", s.Size, s.Algorithm, s.Runs, s.Failures, s.Mean, s.Min)
	}

	return tw.Flush()
}
