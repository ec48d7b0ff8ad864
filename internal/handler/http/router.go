package http

import (
	"log/slog"
	"os"

	"github.com/akademika/hris-backend-go/internal/handler/http/middleware"
	"github.com/akademika/hris-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	shiftHandler ShiftHandler,
	holidayHandler HolidayHandler,
	wfhHandler WFHHandler,
	overtimeHandler OvertimeHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-akademika"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/today", attendanceHandler.GetToday)
				r.Get("/my", attendanceHandler.ListMy)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/my", shiftHandler.ResolveMy)
				r.Get("/patterns", shiftHandler.ListPatterns)
				r.Get("/patterns/{id}", shiftHandler.GetPattern)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/bulk-assign", shiftHandler.BulkAssign)
					r.Post("/overrides", shiftHandler.CreateOverride)
				})
			})

			// HR only
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/{id}/histories", employeeHandler.GetHistories)
				r.Put("/{id}/assignment", employeeHandler.ChangeAssignment)
				r.Put("/{id}/salary", employeeHandler.ChangeSalary)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListByYear)
				r.Get("/{id}", holidayHandler.Get)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", holidayHandler.Create)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/wfh-requests", func(r chi.Router) {
				r.Post("/", wfhHandler.Submit)
				r.Get("/my", wfhHandler.ListMy)
				r.Post("/{id}/supervisor-approve", wfhHandler.ApproveBySupervisor)
				r.Post("/{id}/supervisor-reject", wfhHandler.RejectBySupervisor)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/{id}/hr-approve", wfhHandler.ApproveByHR)
					r.Post("/{id}/hr-reject", wfhHandler.RejectByHR)
				})
			})

			r.Route("/overtime-requests", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/my", overtimeHandler.ListMy)
				r.Post("/{id}/supervisor-approve", overtimeHandler.ApproveBySupervisor)
				r.Post("/{id}/supervisor-reject", overtimeHandler.RejectBySupervisor)
				r.Put("/{id}/actual-duration", overtimeHandler.RecordActualDuration)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/{id}/hr-approve", overtimeHandler.ApproveByHR)
					r.Post("/{id}/hr-reject", overtimeHandler.RejectByHR)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", leaveHandler.Submit)
				r.Get("/requests/my", leaveHandler.ListMy)
				r.Get("/requests/pending-approvals", leaveHandler.ListPendingApprovals)
				r.Get("/requests/{id}", leaveHandler.Get)
				r.Post("/requests/{id}/approve", leaveHandler.Approve)
				r.Post("/requests/{id}/reject", leaveHandler.Reject)
				r.Post("/requests/{id}/cancel", leaveHandler.Cancel)
				r.Get("/balance/my", leaveHandler.GetMyBalance)
			})
		})
	})
	return r
}
