package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hadirin/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hadirin/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	adminHandler AdminHandler,
	employeeHandler EmployeeHandler,
	storeHandler StoreHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

	authRequired := func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/admins", func(r chi.Router) {
			r.Post("/register", adminHandler.Register)
			r.Post("/login", adminHandler.Login)
		})

		r.Route("/employees", func(r chi.Router) {
			// Employee devices register without a token
			r.Post("/register", employeeHandler.Register)

			// Admin only
			r.Group(func(r chi.Router) {
				authRequired(r)
				r.Get("/", employeeHandler.List)
				r.Get("/branches", employeeHandler.ListBranches)
				r.Get("/{employeeID}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})
		})

		r.Route("/clock", func(r chi.Router) {
			r.Post("/", attendanceHandler.Clock)
			r.Get("/records/{employeeID}", attendanceHandler.GetEmployeeSessions)

			// Admin only
			r.Group(func(r chi.Router) {
				authRequired(r)
				r.Get("/records", attendanceHandler.ListSessions)
			})
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", storeHandler.List)

			// Admin only
			r.Group(func(r chi.Router) {
				authRequired(r)
				r.Post("/", storeHandler.Create)
				r.Put("/{id}", storeHandler.Update)
				r.Delete("/{id}", storeHandler.Delete)
			})
		})

		// Admin only
		r.Route("/payroll", func(r chi.Router) {
			authRequired(r)
			r.Post("/run", payrollHandler.Run)
			r.Get("/records", payrollHandler.ListRecords)
		})
	})
	return r
}
