package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payroll-service/internal/config"
	"payroll-service/internal/handler"
	"payroll-service/internal/metrics"
	"payroll-service/internal/middleware"
	"payroll-service/internal/model"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Employee   *handler.EmployeeHandler
	Leave      *handler.LeaveHandler
	Payroll    *handler.PayrollHandler
	Attendance *handler.AttendanceHandler
}

// New assembles the route table. Paths mirror the public API: auth
// endpoints are open, everything else sits behind RequireAuth plus a
// role check.
func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	h Handlers,
	m *metrics.Metrics,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	rateLimit := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimit.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	requireAdmin := func(api chi.Router) chi.Router {
		return api.With(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleAdmin))
	}
	requireEmployee := func(api chi.Router) chi.Router {
		return api.With(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleEmployee))
	}

	// Authentication (open)
	r.Post("/admin/login", h.Auth.AdminLogin)
	r.Post("/employee/login", h.Auth.EmployeeLogin)
	r.Post("/employee/signup", h.Auth.Signup)

	// Employee records (admin)
	requireAdmin(r).Get("/employees", h.Employee.List)
	requireAdmin(r).Post("/employees", h.Employee.Add)
	requireAdmin(r).Put("/api/employees/{id}", h.Employee.Update)
	requireAdmin(r).Delete("/api/employees/{id}", h.Employee.Delete)
	requireAdmin(r).Get("/api/employees/count", h.Employee.Count)

	// Leave workflow
	requireAdmin(r).Get("/api/leave-requests/pending", h.Leave.ListPending)
	requireAdmin(r).Get("/api/leave-requests/pending/count", h.Leave.CountPending)
	requireAdmin(r).Put("/leaves/{id}/status", h.Leave.SetStatus)
	requireEmployee(r).Post("/leave-requests", h.Leave.Submit)
	requireEmployee(r).Get("/leave-requests/employee", h.Leave.ListMine)

	// Payroll
	requireAdmin(r).Post("/payroll", h.Payroll.Create)
	// History authorizes admin-or-self inside the handler.
	r.With(authMiddleware.RequireAuth).Get("/payroll/{employeeId}", h.Payroll.History)

	// Attendance
	requireEmployee(r).Post("/employee/attendance", h.Attendance.Record)
	requireEmployee(r).Get("/employee/attendance/today", h.Attendance.Today)
	requireAdmin(r).Get("/admin/attendance", h.Attendance.ListAll)

	return r
}
