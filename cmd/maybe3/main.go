// maybe3 runs one short-circuiting chain over a numeric seed supplied
// on the command line, printing the narration and the terminal result.
//
// Usage:
//
//	maybe3 [--quiet] [--metrics] <seed>
//
// Exit code is 1 when the chain produces no result (bad seed included).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ib-77/maybe3/pkg/pipeline"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	var quiet bool
	var showMetrics bool

	rootCmd := &cobra.Command{
		Use:           "maybe3 <seed>",
		Short:         "maybe3 — run a short-circuiting numeric chain",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			metrics := pipeline.NewMetrics(reg)

			console := pipeline.NewWriterSink(cmd.OutOrStdout())

			var progress pipeline.ProgressSink = console
			if quiet {
				progress = pipeline.Discard{}
			}

			runner := pipeline.NewRunner(
				pipeline.MultiProgress(progress, metrics.ProgressSink()),
				pipeline.MultiResult(console, metrics.ResultSink()),
			)

			out := runner.Run(cmd.Context(), args[0])

			if showMetrics {
				if err := dumpCounters(cmd, reg); err != nil {
					return err
				}
			}

			if out.Failed {
				return fmt.Errorf("chain produced no result")
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress step narration (result line is still printed)")
	rootCmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print run counters after the chain finishes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func dumpCounters(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})

	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%q,", lp.GetName(), lp.GetValue())
			}
			if labels != "" {
				labels = "{" + labels[:len(labels)-1] + "}"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s %v\n", fam.GetName(), labels, m.GetCounter().GetValue())
		}
	}
	return nil
}
