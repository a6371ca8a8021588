package analysis

import "smc-analyzer/internal/model"

// Series helpers over a fetched candle slice. The slice is newest-first:
// index 0 is the latest bar. Detectors and the trend estimator depend on
// that ordering and must not be handed a re-sorted series.

// Closes extracts the close-price series from candles.
func Closes(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high-price series from candles.
func Highs(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low-price series from candles.
func Lows(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Low
	}
	return out
}
