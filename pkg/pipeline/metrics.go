package pipeline

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts runs by terminal outcome and narration records by
// severity. It plugs into a runner through the sink interfaces, so the
// chain itself stays unaware of instrumentation.
type Metrics struct {
	runs     *prometheus.CounterVec
	messages *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maybe3_runs_total",
				Help: "Total chain runs by terminal outcome",
			},
			[]string{"outcome"},
		),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maybe3_progress_messages_total",
				Help: "Total narration records by severity",
			},
			[]string{"severity"},
		),
	}
	reg.MustRegister(m.runs, m.messages)
	return m
}

func (m *Metrics) ProgressSink() ProgressSink {
	return ProgressFunc(func(_ context.Context, p Progress) {
		severity := "normal"
		if p.Failure {
			severity = "failure"
		}
		m.messages.WithLabelValues(severity).Inc()
	})
}

func (m *Metrics) ResultSink() ResultSink {
	return ResultFunc(func(_ context.Context, o Outcome) {
		outcome := "success"
		if o.Failed {
			outcome = "no_result"
		}
		m.runs.WithLabelValues(outcome).Inc()
	})
}
