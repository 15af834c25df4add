package llm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var completionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ruling_analyzer",
		Name:      "completions_total",
		Help:      "Completion calls by provider and outcome.",
	},
	[]string{"provider", "outcome"},
)
