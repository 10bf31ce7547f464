package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/ws", s.ServeWsHandler)
	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.RegisterHandler)
		r.Post("/auth/login", s.LoginHandler)
		r.Post("/auth/refresh", s.RefreshTokenHandler)
		r.Put("/auth/email/confirm", s.ConfirmEmailHandler)
		r.Post("/account", s.CreateAccountHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)

			r.Post("/auth/logout", s.LogoutHandler)
			r.Get("/sessions", s.ListSessionsHandler)
			r.Delete("/sessions/{sessionId}", s.DeleteSessionHandler)
			r.Post("/sessions/terminate_all", s.TerminateAllSessionsHandler)

			r.Get("/account", s.GetAccountHandler)
			r.Put("/account", s.EditAccountHandler)
			r.Delete("/account", s.DeleteAccountHandler)
			r.Put("/account/deactivate", s.DeactivateAccountHandler)
			r.Get("/account/usernames", s.SuggestUsernamesHandler)

			r.Get("/users/{userId}", s.GetUserProfileHandler)

			r.Get("/first-name/viewers", s.ListViewersHandler)
			r.Post("/first-name/viewers/{userId}", s.GrantFirstNameHandler)
			r.Delete("/first-name/viewers/{userId}", s.RevokeFirstNameHandler)
			r.Get("/first-name/visible/{userId}", s.IsFirstNameVisibleHandler)

			r.Get("/events", s.GetEventsHandler)
		})
	})

	return r
}
