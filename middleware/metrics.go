package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Domain Metrics
	TaskOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_operations_total",
			Help: "Total number of task operations",
		},
		[]string{"operation"}, // create, update, delete, toggle
	)

	SubjectOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subject_operations_total",
			Help: "Total number of timetable subject operations",
		},
		[]string{"operation"}, // create, update, delete, regenerate
	)

	ConflictsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conflicts_detected_total",
			Help: "Total number of schedule conflicts reported",
		},
		[]string{"kind"},
	)

	SessionsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "class_sessions_generated_total",
			Help: "Total number of class sessions materialized by recurrence expansion",
		},
	)

	// Reminder Metrics
	TasksDueSoon = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tasks_due_soon",
			Help: "Number of incomplete tasks due within the reminder window",
		},
	)

	TasksOverdue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tasks_overdue",
			Help: "Number of incomplete tasks past their due date",
		},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of token validation attempts",
		},
		[]string{"status"},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type"}, // db, validation, assistant, panic
	)
)

// MetricsMiddleware handles basic HTTP metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		ActiveRequests.Inc()
		defer ActiveRequests.Dec()

		c.Next()

		HTTPRequestsTotal.WithLabelValues(
			method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackTaskOperation increments the task operation counter
func TrackTaskOperation(operation string) {
	TaskOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackSubjectOperation increments the subject operation counter
func TrackSubjectOperation(operation string) {
	SubjectOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackConflicts records detected conflicts by kind
func TrackConflicts(kind string, count int) {
	ConflictsDetected.WithLabelValues(kind).Add(float64(count))
}

// TrackAuthAttempt records token validation attempts
func TrackAuthAttempt(status string) {
	AuthAttempts.WithLabelValues(status).Inc()
}

// TrackError increments the error counter by type
func TrackError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
