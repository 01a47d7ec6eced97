package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chat turn outcomes
const (
	OutcomeOK          = "ok"
	OutcomeUpstream    = "upstream_error"
	OutcomePersistence = "persistence_error"
)

var (
	ChatTurns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_chat_turns_total",
		Help: "Chat turns handled, by outcome",
	}, []string{"outcome"})

	Extractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_extractions_total",
		Help: "Extraction operations requested by the model",
	}, []string{"operation", "success"})

	ModelRequestSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "portal_model_request_seconds",
		Help:    "Latency of completion requests",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})
)

func ObserveTurn(outcome string) {
	ChatTurns.WithLabelValues(outcome).Inc()
}

func ObserveExtraction(operation string, success bool) {
	label := "false"
	if success {
		label = "true"
	}
	Extractions.WithLabelValues(operation, label).Inc()
}

func ObserveModelRequest(started time.Time) {
	ModelRequestSeconds.Observe(time.Since(started).Seconds())
}
