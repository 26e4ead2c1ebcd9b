package serverhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"d4-translate/internal/config"
	"d4-translate/internal/middleware"
	"d4-translate/internal/translate/handler"
	"d4-translate/internal/translate/service"
)

func NewRouter(cfg config.Config, tr *service.Translator, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	maxUpload := int64(cfg.MaxUploadMB) * 1024 * 1024
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(maxUpload))

	// health-check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// основной эндпоинт
	r.Post("/api/translate", handler.Translate(tr, maxUpload, logger))

	return r
}
