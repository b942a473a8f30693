package pipeline

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ib-77/maybe3/pkg/maybe"
)

// Step is one pipeline stage: it consumes a present numeric state and
// returns either the next state or absence. Steps never see an absent
// input; the chain operator skips them once the chain is broken.
type Step func(ctx context.Context, data float64) maybe.Maybe[float64]

const (
	gateThreshold = 20
	gateIncrement = 10
	halveDivisor  = 2
	tripleFactor  = 3
)

// Gate rejects values at or below the threshold and advances the rest.
func Gate(sink ProgressSink) Step {
	return func(ctx context.Context, data float64) maybe.Maybe[float64] {
		if data <= gateThreshold {
			sink.Report(ctx, Progress{
				Text:    fmt.Sprintf("gate: %s is not greater than %d, chain broken", formatNum(data), gateThreshold),
				Failure: true,
			})
			return maybe.None[float64]()
		}

		next := data + gateIncrement
		sink.Report(ctx, Progress{
			Text: fmt.Sprintf("gate passed: %s + %d = %s", formatNum(data), gateIncrement, formatNum(next)),
		})
		return maybe.Just(next)
	}
}

// Halve checks integrity before dividing: a fractional value has no
// parity, so it breaks the chain the same way an odd one does.
func Halve(sink ProgressSink) Step {
	return func(ctx context.Context, data float64) maybe.Maybe[float64] {
		if data != math.Trunc(data) {
			sink.Report(ctx, Progress{
				Text:    fmt.Sprintf("halve: %s is not an integer, chain broken", formatNum(data)),
				Failure: true,
			})
			return maybe.None[float64]()
		}

		if math.Mod(data, halveDivisor) != 0 {
			sink.Report(ctx, Progress{
				Text:    fmt.Sprintf("halve: %s is odd, chain broken", formatNum(data)),
				Failure: true,
			})
			return maybe.None[float64]()
		}

		next := data / halveDivisor
		sink.Report(ctx, Progress{
			Text: fmt.Sprintf("halve: %s / %d = %s", formatNum(data), halveDivisor, formatNum(next)),
		})
		return maybe.Just(next)
	}
}

// Triple always succeeds.
func Triple(sink ProgressSink) Step {
	return func(ctx context.Context, data float64) maybe.Maybe[float64] {
		next := data * tripleFactor
		sink.Report(ctx, Progress{
			Text: fmt.Sprintf("triple: %s * %d = %s", formatNum(data), tripleFactor, formatNum(next)),
		})
		return maybe.Just(next)
	}
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
