package models

// IndicatorSnapshot is the latest value of every indicator the engine could
// compute for a series. A nil section means the history was too short for
// that indicator; consumers must treat absence as "no opinion".
type IndicatorSnapshot struct {
	RSI               *float64           `json:"rsi,omitempty"`
	MACD              *MACDSnapshot      `json:"macd,omitempty"`
	Bollinger         *BollingerSnapshot `json:"bollinger,omitempty"`
	MovingAverages    *MASnapshot        `json:"moving_averages,omitempty"`
	Volume            *VolumeSnapshot    `json:"volume,omitempty"`
	SupportResistance *LevelsSnapshot    `json:"support_resistance,omitempty"`
	Pattern           *PatternSnapshot   `json:"pattern,omitempty"`
}

type MACDSnapshot struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

// BollingerSnapshot carries the band edges plus the price position inside
// them, 0 at the lower band and 1 at the upper. Position falls back to 0.5
// when the bands collapse to zero width.
type BollingerSnapshot struct {
	Upper    float64 `json:"upper"`
	Middle   float64 `json:"middle"`
	Lower    float64 `json:"lower"`
	Position float64 `json:"position"`
}

// MASnapshot holds the short/long simple averages and the price ratios
// against them (1 when the average is zero).
type MASnapshot struct {
	Short        float64 `json:"short"`
	Long         float64 `json:"long"`
	PriceToShort float64 `json:"price_to_short"`
	PriceToLong  float64 `json:"price_to_long"`
}

type VolumeSnapshot struct {
	Average  float64 `json:"average"`
	Current  float64 `json:"current"`
	Ratio    float64 `json:"ratio"`
	Abnormal bool    `json:"abnormal"`
}

type LevelsSnapshot struct {
	Support    []float64 `json:"support"`
	Resistance []float64 `json:"resistance"`
}

type PatternSnapshot struct {
	Patterns []string `json:"patterns"`
	Bias     string   `json:"bias"`
}
