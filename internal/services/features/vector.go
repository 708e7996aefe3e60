// Package features builds the fixed-order vector a price oracle scores.
// The indicator parameters here are part of the model contract. They are
// constants, not configuration: a trained model expects exactly these
// inputs.
package features

import (
	"TradeScope/internal/domain/models"
	"TradeScope/internal/services/indicators"
	"TradeScope/internal/services/patterns"
)

// MinBars is the shortest history a vector can be built from.
const MinBars = 30

const (
	rsiPeriod        = 14
	macdFast         = 12
	macdSlow         = 26
	macdSignalPeriod = 9
	bbPeriod         = 20
	bbWidth          = 2
	smaShort         = 5
	smaLong          = 20
	emaShort         = 12
	emaLong          = 26
	volumeLookback   = 10
	volatilityPeriod = 10
)

// BuildVector derives the oracle features for the latest bar of the
// series. It reports false when the history is shorter than MinBars.
func BuildVector(series models.Series) (models.FeatureVector, bool) {
	closes := series.Closes()
	if len(closes) < MinBars {
		return models.FeatureVector{}, false
	}

	price := closes[len(closes)-1]
	prev := closes[len(closes)-2]

	rsi := indicators.RSI(closes, rsiPeriod)
	macd := indicators.MACD(closes, macdFast, macdSlow, macdSignalPeriod)
	bands := indicators.BollingerBands(closes, bbPeriod, bbWidth)
	sma5 := indicators.SMA(closes, smaShort)
	sma20 := indicators.SMA(closes, smaLong)
	ema12 := indicators.EMA(closes, emaShort)
	ema26 := indicators.EMA(closes, emaLong)

	vec := models.FeatureVector{
		PriceChange:   safeChange(price, prev),
		RSI:           last(rsi) / 100,
		MACD:          last(macd.Line),
		MACDSignal:    last(macd.Signal),
		MACDHistogram: last(macd.Histogram),
		BBPosition:    bandPosition(price, last(bands.Upper), last(bands.Lower)),
		SMA5Ratio:     safeRatio(price, last(sma5)),
		SMA20Ratio:    safeRatio(price, last(sma20)),
		EMA12Ratio:    safeRatio(price, last(ema12)),
		EMA26Ratio:    safeRatio(price, last(ema26)),
		VolumeRatio:   volumeRatio(series.Volumes()),
		Volatility:    indicators.Volatility(closes, volatilityPeriod),
		PatternSignal: patterns.Detect(series).Signal(),
	}
	return vec, true
}

func last(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return vals[len(vals)-1]
}

func safeChange(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev
}

func safeRatio(price, base float64) float64 {
	if base == 0 {
		return 1
	}
	return price / base
}

func bandPosition(price, upper, lower float64) float64 {
	if upper == lower {
		return 0.5
	}
	return (price - lower) / (upper - lower)
}

// volumeRatio compares the latest volume against the mean of the ten bars
// before it; histories too short for the lookback score neutral.
func volumeRatio(volumes []float64) float64 {
	if len(volumes) < volumeLookback+1 {
		return 1
	}
	sum := 0.0
	for _, v := range volumes[len(volumes)-volumeLookback-1 : len(volumes)-1] {
		sum += v
	}
	avg := sum / volumeLookback
	if avg == 0 {
		return 1
	}
	return volumes[len(volumes)-1] / avg
}
