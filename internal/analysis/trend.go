package analysis

// ema computes an exponential moving average over values, consumed in slice
// order: the seed is the arithmetic mean of the first period entries, every
// later value is folded in with multiplier 2/(period+1), and the value at the
// last index wins. The analyzer hands the close series over in feed order
// (index 0 = newest bar); see DESIGN.md for the orientation decision.
// Returns false when there are fewer values than the period.
func ema(values []float64, period int) (float64, bool) {
	if len(values) < period {
		return 0, false
	}

	var sum float64
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	avg := sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		avg = (values[i]-avg)*multiplier + avg
	}

	return avg, true
}

// momentum is the single-bar close delta: latest close minus the one before
// it. Not smoothed, directionally indicative only. Zero when fewer than two
// closes are available.
func momentum(closes []float64) float64 {
	if len(closes) < 2 {
		return 0
	}
	return closes[0] - closes[1]
}
