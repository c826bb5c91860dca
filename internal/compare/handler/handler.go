package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"listcompare-service/internal/compare/service"
	"listcompare-service/internal/config"
	"listcompare-service/internal/middleware"
)

// Compare returns the handler for POST /compare: two lists in (inline text or
// uploaded files), one Result out as JSON.
func Compare(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
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
		res.LabelA = in.LabelA
		res.LabelB = in.LabelB

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("itemsA", len(a.Items)).
			Int("itemsB", len(b.Items)).
			Int("aOnly", res.Counts.AOnly).
			Int("intersection", res.Counts.Intersection).
			Int("bOnly", res.Counts.BOnly).
			Float64("jaccard", res.Jaccard).
			Dur("elapsed", time.Since(start)).
			Msg("compare done")
	}
}

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}
