package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "reformtrack_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// DatabaseOperations tracks document store round-trips
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reformtrack_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)
)

func CountDatabaseOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DatabaseOperations.WithLabelValues(operation, status).Inc()
}
