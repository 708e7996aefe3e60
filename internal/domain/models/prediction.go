package models

// FeatureVector is the input a price oracle scores. Field order is part of
// the model contract and must not change.
type FeatureVector struct {
	PriceChange   float64 `json:"price_change"`
	RSI           float64 `json:"rsi"`
	MACD          float64 `json:"macd"`
	MACDSignal    float64 `json:"macd_signal"`
	MACDHistogram float64 `json:"macd_histogram"`
	BBPosition    float64 `json:"bb_position"`
	SMA5Ratio     float64 `json:"sma5_ratio"`
	SMA20Ratio    float64 `json:"sma20_ratio"`
	EMA12Ratio    float64 `json:"ema12_ratio"`
	EMA26Ratio    float64 `json:"ema26_ratio"`
	VolumeRatio   float64 `json:"volume_ratio"`
	Volatility    float64 `json:"volatility"`
	PatternSignal float64 `json:"pattern_signal"`
}

// FeatureNames lists the vector fields in wire order, for weight maps.
var FeatureNames = []string{
	"price_change", "rsi", "macd", "macd_signal", "macd_histogram",
	"bb_position", "sma5_ratio", "sma20_ratio", "ema12_ratio", "ema26_ratio",
	"volume_ratio", "volatility", "pattern_signal",
}

// Values flattens the vector in wire order.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.PriceChange, f.RSI, f.MACD, f.MACDSignal, f.MACDHistogram,
		f.BBPosition, f.SMA5Ratio, f.SMA20Ratio, f.EMA12Ratio, f.EMA26Ratio,
		f.VolumeRatio, f.Volatility, f.PatternSignal,
	}
}

// Prediction is an oracle's read on the next move. Outcome is 1 for up and
// 0 for down; Probability is the upside probability behind it.
type Prediction struct {
	Probability float64            `json:"probability"`
	Outcome     int                `json:"prediction"`
	Confidence  Confidence         `json:"confidence"`
	Weights     map[string]float64 `json:"weights,omitempty"`
}
