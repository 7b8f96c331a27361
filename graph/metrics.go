package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entitiesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semcode",
		Subsystem: "graph",
		Name:      "entities_published_total",
		Help:      "Number of code entities published to the knowledge graph.",
	})

	triplesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semcode",
		Subsystem: "graph",
		Name:      "triples_published_total",
		Help:      "Number of triples published to the knowledge graph.",
	})
)
