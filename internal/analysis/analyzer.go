package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smc-analyzer/internal/model"
)

// Analyzer produces a market-structure read over a fetched candle series:
// EMA trend, single-bar momentum, order blocks, fair value gaps, and a
// bias with recommended trade levels. It is stateless between calls and
// safe for concurrent use.
type Analyzer struct {
	logger zerolog.Logger
}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{
		logger: log.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze runs the full pipeline over candles (newest-first, index 0 =
// latest bar) and returns the assembled result. The only error case is an
// empty series; short series degrade to nil EMAs and a momentum-based bias.
func (a *Analyzer) Analyze(pair string, candles []model.Candle) (*model.AnalysisResult, error) {
	if len(candles) == 0 {
		return nil, errors.New("no candles to analyze")
	}

	closes := Closes(candles)

	// The close series goes into the EMA in feed order, index 0 = newest bar.
	ema9, ok9 := ema(closes, 9)
	ema20, ok20 := ema(closes, 20)
	mom := momentum(closes)

	zones := detectOrderBlocks(candles)
	gaps := detectFairValueGaps(candles)

	bias := resolveBias(ema9, ema20, ok9, ok20, mom)
	lastPrice := closes[0]

	result := &model.AnalysisResult{
		Pair:        pair,
		Bias:        bias,
		Momentum:    round4(mom),
		Zones:       zones,
		Gaps:        gaps,
		Recommended: recommendLevels(bias, lastPrice),
		Reasoning:   buildReasoning(ema9, ema20, ok9, ok20, mom),
	}
	if ok9 {
		v := ema9
		result.EMA9 = &v
	}
	if ok20 {
		v := ema20
		result.EMA20 = &v
	}

	a.logger.Debug().
		Str("pair", pair).
		Str("bias", string(bias)).
		Int("zones", len(zones)).
		Int("gaps", len(gaps)).
		Float64("last_price", lastPrice).
		Msg("Analysis complete")

	return result, nil
}

// resolveBias prefers the EMA cross when both averages are available; equal
// EMAs resolve to Bearish, the comparison is strict on purpose. With too few
// candles for either EMA it falls back to the momentum sign.
func resolveBias(ema9, ema20 float64, ok9, ok20 bool, mom float64) model.Bias {
	if ok9 && ok20 {
		if ema9 > ema20 {
			return model.BiasBullish
		}
		return model.BiasBearish
	}

	switch {
	case mom > 0:
		return model.BiasBullish
	case mom < 0:
		return model.BiasBearish
	default:
		return model.BiasNeutral
	}
}

// recommendLevels derives entry, take-profits and stop from the last close
// using fixed percentage offsets keyed by bias. Neutral shares the
// short-side ladder with Bearish.
func recommendLevels(bias model.Bias, lastPrice float64) model.Levels {
	if bias == model.BiasBullish {
		return model.Levels{
			Entry: round4(lastPrice),
			TP1:   round4(lastPrice * 1.003),
			TP2:   round4(lastPrice * 1.007),
			SL:    round4(lastPrice * 0.995),
		}
	}
	return model.Levels{
		Entry: round4(lastPrice),
		TP1:   round4(lastPrice * 0.997),
		TP2:   round4(lastPrice * 0.993),
		SL:    round4(lastPrice * 1.005),
	}
}

func buildReasoning(ema9, ema20 float64, ok9, ok20 bool, mom float64) string {
	return fmt.Sprintf(
		"EMA9 %s vs EMA20 %s, momentum %.2f",
		formatIndicator(ema9, ok9),
		formatIndicator(ema20, ok20),
		mom,
	)
}

func formatIndicator(v float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
