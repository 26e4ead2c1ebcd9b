package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"d4-translate/internal/fileio"
	"d4-translate/internal/translate/service"
)

// Translate возвращает http.HandlerFunc для роутера:
// r.Post("/api/translate", handler.Translate(tr, maxUpload, logger)).
// Принимает multipart: file = JSON билда, name = имя билда.
// maxUpload — тот же лимит, что и в middleware.LimitBytes, из конфига.
func Translate(tr *service.Translator, maxUpload int64, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Привяжем req_id из заголовка, если middleware его проставил
		log := logger
		if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		name := strings.TrimSpace(r.FormValue("name"))
		if name == "" {
			name = strings.TrimSuffix(header.Filename, ".json")
		}

		rows, err := fileio.DecodeBuildRows(file)
		if err != nil {
			http.Error(w, "failed to read build: "+err.Error(), http.StatusBadRequest)
			return
		}

		res, err := tr.Translate(name, rows)
		if err != nil {
			var nm *service.NoMatchError
			if errors.As(err, &nm) {
				log.Warn().Err(err).Str("build", name).Msg("unresolvable phrase")
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Error().Err(err).Str("build", name).Msg("translate")
			http.Error(w, "internal", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Build); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Str("build", name).
			Int("affixes", len(res.Build.Affixes)).
			Int("aspects", len(res.Build.Aspects)).
			Int("low_confidence", len(res.Warnings)).
			Dur("elapsed", time.Since(start)).
			Msg("translate done")
	}
}
