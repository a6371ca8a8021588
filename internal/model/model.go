package model

// Candle represents a single price candle. Fetched series are ordered
// newest-first: index 0 is the most recent bar, and every consumer of a
// candle slice in this codebase relies on that ordering.
type Candle struct {
	Datetime string  `json:"datetime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   int64   `json:"volume,omitempty"`
}

// TwelveResponse represents the API response from Twelve Data
type TwelveResponse struct {
	Meta struct {
		Symbol   string `json:"symbol"`
		Interval string `json:"interval"`
	} `json:"meta"`
	Values []struct {
		Datetime string  `json:"datetime"`
		Open     float64 `json:"open,string"`
		High     float64 `json:"high,string"`
		Low      float64 `json:"low,string"`
		Close    float64 `json:"close,string"`
		Volume   int64   `json:"volume,string,omitempty"`
	} `json:"values"`
	Status string `json:"status"`
}

// Bias is the directional market view produced by the analyzer.
type Bias string

const (
	BiasBullish Bias = "Bullish"
	BiasBearish Bias = "Bearish"
	BiasNeutral Bias = "Neutral"
)

// ZoneKind classifies an order block.
type ZoneKind string

const (
	ZoneDemand ZoneKind = "demand"
	ZoneSupply ZoneKind = "supply"
)

// Zone is an order-block price region. Low <= High always. Index is the
// position of the defining candle in the analyzed (newest-first) series.
type Zone struct {
	Kind  ZoneKind `json:"kind"`
	Low   float64  `json:"low"`
	High  float64  `json:"high"`
	Index int      `json:"index"`
}

// GapKind classifies a fair value gap.
type GapKind string

const (
	GapBullish GapKind = "bullish"
	GapBearish GapKind = "bearish"
)

// Gap is a fair-value-gap interval the market jumped over. Top >= Bottom.
type Gap struct {
	Kind   GapKind `json:"kind"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Index  int     `json:"index"`
}

// Levels holds the recommended trade levels derived from the last close.
type Levels struct {
	Entry float64 `json:"entry"`
	TP1   float64 `json:"tp1"`
	TP2   float64 `json:"tp2"`
	SL    float64 `json:"sl"`
}

// AnalysisResult is the full output of one analyzer run. EMA values are nil
// when the series was shorter than the period. Zones and Gaps hold at most
// five entries each.
type AnalysisResult struct {
	Pair        string   `json:"pair"`
	Bias        Bias     `json:"bias"`
	EMA9        *float64 `json:"ema9"`
	EMA20       *float64 `json:"ema20"`
	Momentum    float64  `json:"momentum"`
	Zones       []Zone   `json:"zones"`
	Gaps        []Gap    `json:"gaps"`
	Recommended Levels   `json:"recommended"`
	Reasoning   string   `json:"reasoning"`
}

// Headline is a single news item attached to a GPT prompt.
type Headline struct {
	Title     string `json:"title"`
	Source    string `json:"source_id"`
	Published string `json:"pubDate"`
}

// NewsResponse represents the newsdata.io latest-news payload.
type NewsResponse struct {
	Status  string     `json:"status"`
	Results []Headline `json:"results"`
}
