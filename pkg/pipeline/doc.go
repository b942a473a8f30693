// Package pipeline implements a fixed three-step numeric chain on top of
// the maybe container: a gate (reject small values, add ten), an
// integrity check (reject odd or fractional values, halve) and a final
// unconditional triple.
//
// Steps narrate what they do to an injected ProgressSink and the runner
// publishes exactly one terminal Outcome per run to a ResultSink. Once a
// step breaks the chain, no later step runs; the container enforces
// that, not the steps.
package pipeline
