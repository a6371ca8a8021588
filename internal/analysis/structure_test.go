package analysis

import (
	"testing"

	"smc-analyzer/internal/model"
)

func TestDetectOrderBlocksDemand(t *testing.T) {
	// One qualifying window at i=2: n is bullish, sweeps p's low,
	// and p's low sits at or under c's low.
	candles := []model.Candle{
		{Open: 100, High: 101, Low: 99, Close: 100},
		{Open: 100, High: 101, Low: 98.5, Close: 100},
		{Open: 99, High: 101, Low: 98, Close: 100},
	}

	zones := detectOrderBlocks(candles)
	if len(zones) != 1 {
		t.Fatalf("detectOrderBlocks() returned %d zones, want 1", len(zones))
	}

	z := zones[0]
	if z.Kind != model.ZoneDemand {
		t.Errorf("zone kind = %v, want demand", z.Kind)
	}
	if z.Low != 98 || z.High != 100 {
		t.Errorf("zone bounds = [%v, %v], want [98, 100]", z.Low, z.High)
	}
	if z.Index != 2 {
		t.Errorf("zone index = %d, want 2", z.Index)
	}
}

func TestDetectOrderBlocksSupply(t *testing.T) {
	candles := []model.Candle{
		{Open: 100, High: 101, Low: 99, Close: 100},
		{Open: 100, High: 101.5, Low: 99, Close: 100},
		{Open: 101, High: 102, Low: 99, Close: 100},
	}

	zones := detectOrderBlocks(candles)
	if len(zones) != 1 {
		t.Fatalf("detectOrderBlocks() returned %d zones, want 1", len(zones))
	}

	z := zones[0]
	if z.Kind != model.ZoneSupply {
		t.Errorf("zone kind = %v, want supply", z.Kind)
	}
	if z.Low != 100 || z.High != 102 {
		t.Errorf("zone bounds = [%v, %v], want [100, 102]", z.Low, z.High)
	}
}

func TestDetectOrderBlocksCap(t *testing.T) {
	// Every window from i=2 on qualifies as a demand zone; the detector
	// must stop at five, in scan order.
	candles := generateTestCandles(30, func(i int) model.Candle {
		return model.Candle{Open: 101, High: 103, Low: 100 - float64(i), Close: 102}
	})

	zones := detectOrderBlocks(candles)
	if len(zones) != 5 {
		t.Fatalf("detectOrderBlocks() returned %d zones, want 5", len(zones))
	}
	for n, z := range zones {
		if z.Index != n+2 {
			t.Errorf("zones[%d].Index = %d, want %d", n, z.Index, n+2)
		}
		if z.Low > z.High {
			t.Errorf("zones[%d] has low %v > high %v", n, z.Low, z.High)
		}
	}
}

func TestDetectOrderBlocksLookback(t *testing.T) {
	// The only qualifying window sits past the 30-bar lookback.
	candles := generateTestCandles(40, func(i int) model.Candle {
		return model.Candle{Open: 100, High: 100, Low: 100, Close: 100}
	})
	candles[34].Low = 99.5
	candles[35] = model.Candle{Open: 99, High: 100, Low: 98.8, Close: 100}

	if zones := detectOrderBlocks(candles); len(zones) != 0 {
		t.Errorf("detectOrderBlocks() returned %d zones, want 0", len(zones))
	}
}

func TestDetectFairValueGaps(t *testing.T) {
	tests := []struct {
		name    string
		candles []model.Candle
		kind    model.GapKind
		top     float64
		bottom  float64
	}{
		{
			name: "bullish gap",
			candles: []model.Candle{
				{Open: 112, High: 115, Low: 110, Close: 114},
				{Open: 116, High: 119, Low: 114, Close: 118},
				{Open: 121, High: 125, Low: 120, Close: 124},
			},
			kind:   model.GapBullish,
			top:    120,
			bottom: 115,
		},
		{
			name: "bearish gap",
			candles: []model.Candle{
				{Open: 102, High: 105, Low: 100, Close: 101},
				{Open: 99, High: 101, Low: 96, Close: 97},
				{Open: 94, High: 95, Low: 92, Close: 93},
			},
			kind:   model.GapBearish,
			top:    100,
			bottom: 95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gaps := detectFairValueGaps(tt.candles)
			if len(gaps) != 1 {
				t.Fatalf("detectFairValueGaps() returned %d gaps, want 1", len(gaps))
			}

			g := gaps[0]
			if g.Kind != tt.kind {
				t.Errorf("gap kind = %v, want %v", g.Kind, tt.kind)
			}
			if g.Top != tt.top || g.Bottom != tt.bottom {
				t.Errorf("gap interval = [%v, %v], want [%v, %v]", g.Bottom, g.Top, tt.bottom, tt.top)
			}
			if g.Index != 0 {
				t.Errorf("gap index = %d, want 0", g.Index)
			}
			if g.Top < g.Bottom {
				t.Errorf("gap has top %v < bottom %v", g.Top, g.Bottom)
			}
		})
	}
}

func TestDetectFairValueGapsCap(t *testing.T) {
	// Every window gaps down; the detector must stop at five.
	candles := generateTestCandles(20, func(i int) model.Candle {
		return model.Candle{
			Open:  1002 - 10*float64(i),
			High:  1005 - 10*float64(i),
			Low:   1000 - 10*float64(i),
			Close: 1003 - 10*float64(i),
		}
	})

	gaps := detectFairValueGaps(candles)
	if len(gaps) != 5 {
		t.Fatalf("detectFairValueGaps() returned %d gaps, want 5", len(gaps))
	}
	for n, g := range gaps {
		if g.Kind != model.GapBearish {
			t.Errorf("gaps[%d].Kind = %v, want bearish", n, g.Kind)
		}
		if g.Index != n {
			t.Errorf("gaps[%d].Index = %d, want %d", n, g.Index, n)
		}
	}
}

func TestDetectFairValueGapsShortSeries(t *testing.T) {
	candles := generateTestCandles(2, func(i int) model.Candle {
		return model.Candle{Open: 100, High: 101, Low: 99, Close: 100}
	})
	if gaps := detectFairValueGaps(candles); len(gaps) != 0 {
		t.Errorf("detectFairValueGaps() returned %d gaps, want 0", len(gaps))
	}
}
