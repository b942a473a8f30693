package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ib-77/maybe3/pkg/maybe/chain"
)

// Runner drives one chain per call: seed in, three steps, one Outcome
// out. The container threads the state; the runner only narrates the
// terminal state and publishes the result.
type Runner struct {
	progress ProgressSink
	results  ResultSink
}

func NewRunner(progress ProgressSink, results ResultSink) *Runner {
	if progress == nil {
		progress = Discard{}
	}
	if results == nil {
		results = Discard{}
	}
	return &Runner{progress: progress, results: results}
}

// Run parses the raw seed and executes the chain. A seed that is not a
// number is reported and published as a failure before any container is
// constructed.
func (r *Runner) Run(ctx context.Context, raw string) Outcome {
	seed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		r.progress.Report(ctx, Progress{
			Text:    fmt.Sprintf("input %q is not a number", raw),
			Failure: true,
		})
		out := Failure()
		r.results.Publish(ctx, out)
		return out
	}
	return r.RunValue(ctx, seed)
}

// RunValue executes the chain on an already-parsed seed.
func (r *Runner) RunValue(ctx context.Context, seed float64) Outcome {
	r.progress.Report(ctx, Progress{
		Text: "starting chain with " + formatNum(seed),
	})

	out := chain.Finally(
		chain.FromValue(ctx, seed).
			Then(Gate(r.progress)).
			Then(Halve(r.progress)).
			Then(Triple(r.progress)),
		func(ctx context.Context, v float64) Outcome {
			r.progress.Report(ctx, Progress{
				Text: "chain complete: " + formatNum(v),
			})
			return Success(v)
		},
		func(ctx context.Context) Outcome {
			r.progress.Report(ctx, Progress{
				Text:    "chain broken: no result",
				Failure: true,
			})
			return Failure()
		},
	)

	r.results.Publish(ctx, out)
	return out
}
