package http

import (
	"log/slog"
	"os"

	"github.com/attendhub/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendhub/attendance-backend-go/internal/pkg/jwt"
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
	overtimeHandler OvertimeHandler,
	permissionHandler PermissionHandler,
	notificationHandler NotificationHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", attendanceHandler.CheckIn)
				r.Post("/checkout", attendanceHandler.CheckOut)
				r.Get("/history", attendanceHandler.History)
				r.Get("/date", attendanceHandler.GetByDate)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/request", overtimeHandler.Request)
				r.Get("/my-overtime", overtimeHandler.GetMine)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", overtimeHandler.Get)
					r.Put("/", overtimeHandler.Update)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Patch("/status", overtimeHandler.SetStatus)
					})
				})
			})

			r.Route("/permission", func(r chi.Router) {
				r.Post("/request", permissionHandler.Create)
				r.Get("/my-permission", permissionHandler.GetMine)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", permissionHandler.Get)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Patch("/status", permissionHandler.SetStatus)
					})
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/register-device", notificationHandler.RegisterDevice)
			})
		})
	})

	return r
}
