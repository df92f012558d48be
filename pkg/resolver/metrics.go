package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fleetwatch_resolve_duration_seconds",
			Help:    "Time taken to resolve a full device batch",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
	)

	resolveDevicesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetwatch_resolve_devices_total",
			Help: "Total number of devices processed by the resolver",
		},
		[]string{"family", "status"}, // status: resolved or failed
	)

	recommendedLookupTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetwatch_recommended_lookup_total",
			Help: "Total number of per-serial recommended version lookups",
		},
		[]string{"status"}, // success, absent or error
	)
)
