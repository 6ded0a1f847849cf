package http

import (
	"log/slog"
	"os"

	"github.com/bizsupportc/teamtrack-backend-go/internal/config"
	"github.com/bizsupportc/teamtrack-backend-go/internal/handler/http/middleware"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/metrics"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth      AuthHandler
	TimeCard  TimeCardHandler
	Leave     LeaveHandler
	Task      TaskHandler
	Employee  EmployeeHandler
	Dashboard DashboardHandler
	Pod       PodHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, authLimiter ratelimit.Limiter, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamtrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(metrics.Middleware)

	r.Method("GET", "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(ratelimit.Middleware(authLimiter))

			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/timecards", func(r chi.Router) {
				r.Post("/clock-in", h.TimeCard.ClockIn)
				r.Post("/clock-out", h.TimeCard.ClockOut)
				r.Get("/today", h.TimeCard.Today)
				r.Get("/my", h.TimeCard.History)
				r.Get("/", h.TimeCard.List)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/employee/{id}", h.TimeCard.ListForEmployee)
					r.Patch("/{id}/review", h.TimeCard.Review)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.ListMine)
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Delete("/{id}", h.Leave.Cancel)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Patch("/{id}/review", h.Leave.Review)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.Task.Create)
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)
				r.Put("/{id}", h.Task.Update)
				r.Patch("/{id}/status", h.Task.UpdateStatus)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Patch("/{id}/role", h.Employee.UpdateRole)
					r.Patch("/{id}/pod", h.Employee.UpdatePod)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/pods", func(r chi.Router) {
				r.Get("/", h.Pod.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Pod.Create)
					r.Delete("/{name}", h.Pod.Delete)
				})
			})

			// Manager or admin
			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/stats", h.Dashboard.Stats)
				r.Get("/pods", h.Dashboard.PodStats)
				r.Get("/employee-status", h.Dashboard.EmployeeStatuses)
				r.Get("/pod-calendar", h.Dashboard.PodCalendar)
			})
		})
	})
	return r
}
