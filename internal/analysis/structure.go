package analysis

import "smc-analyzer/internal/model"

const (
	// maxFindings caps each detector at the first findings in scan order;
	// no re-ranking by significance.
	maxFindings = 5

	// orderBlockLookback bounds the order-block scan to the front of the
	// series (the newest 30 bars).
	orderBlockLookback = 30
)

// detectOrderBlocks scans the newest-first series for demand and supply
// zones using a three-candle window (c=i-2, p=i-1, n=i). The window indices
// are positions in the series as scanned, not chronological order.
func detectOrderBlocks(candles []model.Candle) []model.Zone {
	limit := len(candles)
	if limit > orderBlockLookback {
		limit = orderBlockLookback
	}

	var zones []model.Zone
	for i := 2; i < limit; i++ {
		c, p, n := candles[i-2], candles[i-1], candles[i]

		switch {
		case n.Close > n.Open && n.Low < p.Low && p.Low <= c.Low:
			// Bullish body sweeping the neighbouring lows.
			zones = append(zones, model.Zone{
				Kind:  model.ZoneDemand,
				Low:   n.Low,
				High:  n.Close,
				Index: i,
			})
		case n.Close < n.Open && n.High > p.High && p.High >= c.High:
			// Bearish body sweeping the neighbouring highs.
			zones = append(zones, model.Zone{
				Kind:  model.ZoneSupply,
				Low:   n.Close,
				High:  n.High,
				Index: i,
			})
		}

		if len(zones) == maxFindings {
			break
		}
	}
	return zones
}

// detectFairValueGaps scans the newest-first series for price intervals the
// market jumped over, using a three-candle window (c=i, b=i+1, a=i+2). The
// middle candle completes the three-bar shape but does not enter the gap
// test; only the outer candles matter numerically.
func detectFairValueGaps(candles []model.Candle) []model.Gap {
	var gaps []model.Gap
	for i := 0; i+2 < len(candles); i++ {
		c, a := candles[i], candles[i+2]

		switch {
		case a.High < c.Low:
			gaps = append(gaps, model.Gap{
				Kind:   model.GapBearish,
				Top:    c.Low,
				Bottom: a.High,
				Index:  i,
			})
		case a.Low > c.High:
			gaps = append(gaps, model.Gap{
				Kind:   model.GapBullish,
				Top:    a.Low,
				Bottom: c.High,
				Index:  i,
			})
		}

		if len(gaps) == maxFindings {
			break
		}
	}
	return gaps
}
