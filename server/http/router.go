package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	cmpHnd "listcompare-service/internal/compare/handler"
	"listcompare-service/internal/config"
	"listcompare-service/internal/middleware"
	"listcompare-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// comparison endpoints
	r.Post("/compare", cmpHnd.Compare(cfg, logger))
	r.Post("/export", cmpHnd.Export(cfg, logger))

	return r
}
