package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"listcompare-service/internal/compare/service"
	"listcompare-service/internal/config"
	"listcompare-service/internal/export"
)

// Export returns the handler for POST /export: same inputs as /compare plus
// region and format, streaming one result region as a file download. The
// comparison is recomputed per request; the service keeps no state between
// runs.
func Export(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		in, opt, err := readInputs(r, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a := service.Parse(in.TextA, opt)
		b := service.Parse(in.TextB, opt)
		res := service.Compare(a, b, opt)

		region := r.FormValue("region")
		items, err := export.Region(res, region)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		file, err := export.Render(items, r.FormValue("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		name := fmt.Sprintf("%s.%s", region, file.Ext)
		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Header().Set("Cache-Control", "no-store")
		if _, err := w.Write(file.Data); err != nil {
			log.Error().Err(err).Msg("write export")
			return
		}

		log.Info().
			Str("region", region).
			Str("format", file.Ext).
			Int("items", len(items)).
			Dur("elapsed", time.Since(start)).
			Msg("export done")
	}
}
