package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the HTTP surface and the
// authentication flow.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	LoginAttempts   *prometheus.CounterVec
	LeaveDecisions  *prometheus.CounterVec
	PayrollsCreated prometheus.Counter
}

// New registers the collectors with the given Registerer and returns the
// populated Metrics instance.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_http_requests_total",
			Help: "Total HTTP requests by method, route and status class.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "payroll_http_request_duration_seconds",
			Help:    "HTTP request duration by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		LoginAttempts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_login_attempts_total",
			Help: "Login attempts by role and outcome.",
		}, []string{"role", "outcome"}),
		LeaveDecisions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_leave_decisions_total",
			Help: "Leave requests resolved by final status.",
		}, []string{"status"}),
		PayrollsCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "payroll_records_created_total",
			Help: "Payroll records written.",
		}),
	}

	m.LoginAttempts.WithLabelValues("admin", "success")
	m.LoginAttempts.WithLabelValues("admin", "failure")
	m.LoginAttempts.WithLabelValues("employee", "success")
	m.LoginAttempts.WithLabelValues("employee", "failure")

	return m
}
