package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsAnalyzedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ruling_analyzer",
			Name:      "documents_analyzed_total",
			Help:      "Documents analyzed by category and mode.",
		},
		[]string{"category", "mode"},
	)

	sessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ruling_analyzer",
			Name:      "sessions_created_total",
			Help:      "Sessions opened by single-document analyses.",
		},
	)
)
