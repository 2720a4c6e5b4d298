// SPDX-License-Identifier: MIT

package chain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wordchain_search_total",
	Help: "Word chain searches by outcome",
}, []string{"outcome"})
