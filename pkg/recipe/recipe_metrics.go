package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recipe_created_total",
		Help: "Total number of recipe rows created",
	})

	childWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipe_child_write_failures_total",
		Help: "Total number of failed step, tag or ingredient writes after the recipe row was saved",
	}, []string{"kind"})
)
