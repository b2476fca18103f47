package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hesvault_client_requests_total",
		Help: "Total HTTP requests served, by route and status class.",
	},
		[]string{"route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hesvault_client_request_duration_seconds",
		Help:    "HTTP request latency, by route.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"route"},
	)

	BackendErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hesvault_client_backend_errors_total",
		Help: "Errors returned by the HES Vault backend API, by kind.",
	},
		[]string{"kind"},
	)

	RentalActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hesvault_client_rental_actions_total",
		Help: "Rental lifecycle actions triggered through the client.",
	},
		[]string{"action"},
	)

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hesvault_client_active_sessions",
		Help: "Current number of live browser sessions.",
	})
)
