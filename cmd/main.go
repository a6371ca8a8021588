package main

import (
	"context"
	"fmt"
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

	pair := cfg.Symbol
	if len(os.Args) > 1 {
		pair = os.Args[1]
	}

	report, err := runner.Run(context.Background(), pair, cfg.Interval)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis run failed")
	}

	result := report.Result
	fmt.Printf("%s (%s)\n", result.Pair, cfg.Interval)
	fmt.Printf("Bias: %s\n", result.Bias)
	fmt.Printf("Entry: %.4f  TP1: %.4f  TP2: %.4f  SL: %.4f\n",
		result.Recommended.Entry,
		result.Recommended.TP1,
		result.Recommended.TP2,
		result.Recommended.SL,
	)

	for _, zone := range result.Zones {
		fmt.Printf("Order block: %s %.4f-%.4f (bar %d)\n", zone.Kind, zone.Low, zone.High, zone.Index)
	}
	for _, gap := range result.Gaps {
		fmt.Printf("Fair value gap: %s %.4f-%.4f (bar %d)\n", gap.Kind, gap.Bottom, gap.Top, gap.Index)
	}

	fmt.Println()
	fmt.Println(report.Narrative)
}
