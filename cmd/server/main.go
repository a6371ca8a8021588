package main

import (
	"encoding/json"
	"net/http"
	"os"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smc-analyzer/config"
	"smc-analyzer/internal/pipeline"
)

func main() {
	cfg := config.Load()

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	runner, err := pipeline.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build pipeline")
	}
	defer runner.Close()

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	http.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		pair := r.URL.Query().Get("pair")
		if pair == "" {
			pair = cfg.Symbol
		}
		interval := r.URL.Query().Get("interval")
		if interval == "" {
			interval = cfg.Interval
		}

		log.Info().Str("pair", pair).Str("interval", interval).Str("remote", r.RemoteAddr).Msg("Analyze request")

		report, err := runner.Run(r.Context(), pair, interval)
		if err != nil {
			log.Error().Err(err).Str("pair", pair).Msg("Analysis run failed")
			http.Error(w, "analysis failed", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			log.Error().Err(err).Msg("Failed to encode response")
		}
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Starting analysis server")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
