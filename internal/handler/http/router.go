package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/time/rate"

	"github.com/presencelab/presence-gateway-go/internal/config"
	"github.com/presencelab/presence-gateway-go/internal/handler/http/middleware"
)

func NewRouter(cfg *config.Config, sessionHandler SessionHandler, exceptionHandler ExceptionHandler, editHandler EditHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)

			r.Route("/{sid}", func(r chi.Router) {
				r.Route("/exceptions", func(r chi.Router) {
					r.Get("/", exceptionHandler.Get)
					r.Put("/rest-days", exceptionHandler.ToggleRestDay)

					r.Route("/holidays", func(r chi.Router) {
						r.Post("/", exceptionHandler.AddHoliday)
						r.Put("/{id}", exceptionHandler.SetHolidayDate)
						r.Delete("/{id}", exceptionHandler.RemoveHoliday)
					})

					r.Route("/leave-periods", func(r chi.Router) {
						r.Post("/", exceptionHandler.AddLeavePeriod)
						r.Put("/{id}", exceptionHandler.UpdateLeavePeriod)
						r.Delete("/{id}", exceptionHandler.RemoveLeavePeriod)
					})

					r.Put("/contract-ends", exceptionHandler.SetContractEnd)
				})

				r.Post("/analysis", sessionHandler.Submit)

				r.Route("/view", func(r chi.Router) {
					r.Get("/", sessionHandler.CurrentView)
					r.Post("/", sessionHandler.Navigate)
				})

				r.Get("/report", sessionHandler.DownloadReport)

				r.Route("/edits", func(r chi.Router) {
					r.Get("/", editHandler.Pending)
					r.Post("/", editHandler.Propose)
					r.Post("/commit", editHandler.Commit)
					r.Delete("/", editHandler.Discard)
				})
			})
		})
	})
	return r
}
