// SPDX-License-Identifier: MIT

package wordgraph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordchain_graph_build_duration_seconds",
		Help:    "Time to build a word graph from a vocabulary",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60},
	})

	graphWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordchain_graph_words",
		Help: "Number of words in the most recently built word graph",
	})
)
