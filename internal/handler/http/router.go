package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	timesheetHandler TimesheetHandler,
	payslipHandler PayslipHandler,
	leaveHandler LeaveHandler,
	goalHandler GoalHandler,
	candidateHandler CandidateHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)

				// Manager and Admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", employeeHandler.List)
					r.Get("/team", employeeHandler.ListMyTeam)
					r.Get("/{id}", employeeHandler.GetByID)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/my", shiftHandler.GetMyShifts)
				r.Get("/{id}", shiftHandler.GetByID)

				// Open-shift workflow
				r.Get("/open", shiftHandler.ListOpen)
				r.Post("/{id}/open", shiftHandler.Open)
				r.Post("/{id}/revoke", shiftHandler.Revoke)
				r.Post("/{id}/request", shiftHandler.Request)

				// Manager and Admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", shiftHandler.Create)
					r.Get("/", shiftHandler.GetByDate)
					r.Get("/managed", shiftHandler.GetManaged)
					r.Put("/{id}", shiftHandler.Update)
					r.Delete("/{id}", shiftHandler.Delete)
					r.Post("/{id}/approve", shiftHandler.Approve)
					r.Post("/{id}/reject", shiftHandler.Reject)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/clock-in", timesheetHandler.ClockIn)
				r.Post("/clock-out", timesheetHandler.ClockOut)
				r.Get("/my", timesheetHandler.GetMyEntries)
				r.Get("/coverage/{shiftID}", timesheetHandler.ShiftCoverage)
				r.Get("/missed-shifts", timesheetHandler.MissedShifts)

				// Manager and Admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", timesheetHandler.GetAllEntries)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/my", payslipHandler.GetMine)
				r.Get("/{id}", payslipHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", payslipHandler.Create)
					r.Get("/", payslipHandler.GetAll)
					r.Get("/employee/{employeeID}", payslipHandler.GetByEmployee)
					r.Put("/{id}", payslipHandler.Update)
					r.Patch("/{id}/status", payslipHandler.PatchStatus)
					r.Delete("/{id}", payslipHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.GetMine)

				// Manager and Admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", leaveHandler.GetPending)
					r.Patch("/{id}", leaveHandler.Decide)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", leaveHandler.GetAll)
				})
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/my", goalHandler.GetMine)
				r.Get("/{id}", goalHandler.GetByID)
				r.Patch("/{id}/modules/{moduleID}", goalHandler.UpdateModuleStatus)

				// Manager and Admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", goalHandler.Assign)
					r.Get("/assigned", goalHandler.GetAssigned)
					r.Delete("/{id}", goalHandler.Delete)
				})
			})

			// Recruitment is a manager/admin surface
			r.Route("/candidates", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", candidateHandler.Create)
				r.Get("/", candidateHandler.GetAll)
				r.Get("/my", candidateHandler.GetMine)
				r.Get("/{id}", candidateHandler.GetByID)
				r.Put("/{id}", candidateHandler.Update)
				r.Delete("/{id}", candidateHandler.Delete)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.GetMine)
				r.Get("/stream", notificationHandler.Stream)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Patch("/{id}/read", notificationHandler.MarkRead)
				r.Patch("/read-all", notificationHandler.MarkAllRead)

				// Manager and Admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", notificationHandler.Create)
				})
			})
		})
	})

	return r
}
