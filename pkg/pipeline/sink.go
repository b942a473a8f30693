package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Progress is one narration record: human-readable text plus a severity
// flag. Records reach sinks in the exact order the run produced them.
type Progress struct {
	Text    string
	Failure bool
}

// ProgressSink receives narration from steps and the runner. A sink is
// append-only; the chain never reads anything back from it.
type ProgressSink interface {
	Report(ctx context.Context, p Progress)
}

// ResultSink receives exactly one terminal Outcome per run.
type ResultSink interface {
	Publish(ctx context.Context, o Outcome)
}

type ProgressFunc func(ctx context.Context, p Progress)

func (f ProgressFunc) Report(ctx context.Context, p Progress) {
	f(ctx, p)
}

type ResultFunc func(ctx context.Context, o Outcome)

func (f ResultFunc) Publish(ctx context.Context, o Outcome) {
	f(ctx, o)
}

// WriterSink renders narration and the terminal result as plain lines.
// Failure-flagged lines get a FAIL prefix.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Report(_ context.Context, p Progress) {
	if p.Failure {
		fmt.Fprintf(s.w, "FAIL %s\n", p.Text)
		return
	}
	fmt.Fprintln(s.w, p.Text)
}

func (s *WriterSink) Publish(_ context.Context, o Outcome) {
	fmt.Fprintf(s.w, "result: %s\n", o)
}

// SlogSink routes narration through a structured logger: failure-flagged
// records at error level, the rest at info.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Report(ctx context.Context, p Progress) {
	if p.Failure {
		s.logger.ErrorContext(ctx, p.Text)
		return
	}
	s.logger.InfoContext(ctx, p.Text)
}

func (s *SlogSink) Publish(ctx context.Context, o Outcome) {
	s.logger.InfoContext(ctx, "chain result",
		"outcome", o.String(),
		"failed", o.Failed,
	)
}

// Recorder keeps everything it receives in memory, in arrival order.
type Recorder struct {
	mu       sync.Mutex
	messages []Progress
	results  []Outcome
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Report(_ context.Context, p Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, p)
}

func (r *Recorder) Publish(_ context.Context, o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, o)
}

func (r *Recorder) Messages() []Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Progress, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *Recorder) Results() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Outcome, len(r.results))
	copy(out, r.results)
	return out
}

// Discard drops everything.
type Discard struct{}

func (Discard) Report(context.Context, Progress) {}

func (Discard) Publish(context.Context, Outcome) {}

type multiProgress []ProgressSink

func (m multiProgress) Report(ctx context.Context, p Progress) {
	for _, s := range m {
		s.Report(ctx, p)
	}
}

// MultiProgress fans narration out to several sinks, preserving order.
func MultiProgress(sinks ...ProgressSink) ProgressSink {
	return multiProgress(sinks)
}

type multiResult []ResultSink

func (m multiResult) Publish(ctx context.Context, o Outcome) {
	for _, s := range m {
		s.Publish(ctx, o)
	}
}

// MultiResult fans the terminal outcome out to several sinks.
func MultiResult(sinks ...ResultSink) ResultSink {
	return multiResult(sinks)
}
