package usecase

import (
	"TradeScope/internal/domain/models"
	"TradeScope/internal/services/indicators"
	"TradeScope/internal/services/patterns"
	"TradeScope/pkg/config"
)

// Reasons attached to elementary signals, also surfaced in rationales.
const (
	ReasonRSIOversold      = "RSI oversold"
	ReasonRSIOverbought    = "RSI overbought"
	ReasonMACDGoldenCross  = "MACD golden cross"
	ReasonMACDDeathCross   = "MACD death cross"
	ReasonLowerBandTouch   = "price touched lower Bollinger band"
	ReasonUpperBandTouch   = "price touched upper Bollinger band"
	ReasonBullishAlignment = "bullish moving average alignment"
	ReasonBearishAlignment = "bearish moving average alignment"
	ReasonVolumeSurge      = "abnormal volume surge"
)

// SignalEngine turns a price series into an indicator snapshot and scores
// the elementary signals the snapshot supports. It is stateless beyond its
// injected parameters and safe for concurrent use.
type SignalEngine struct {
	cfg config.Analysis
}

// NewSignalEngine creates an engine with the given analysis parameters.
func NewSignalEngine(cfg config.Analysis) *SignalEngine {
	return &SignalEngine{cfg: cfg}
}

// Snapshot computes the latest value of every indicator the series is long
// enough for. Sections stay nil when the history cannot support them, so
// short histories produce sparse but honest snapshots.
func (e *SignalEngine) Snapshot(series models.Series) models.IndicatorSnapshot {
	var snap models.IndicatorSnapshot
	closes := series.Closes()
	if len(closes) == 0 {
		return snap
	}
	price := closes[len(closes)-1]

	if rsi := indicators.RSI(closes, e.cfg.RSIPeriod); len(rsi) > 0 {
		cur := rsi[len(rsi)-1]
		snap.RSI = &cur
	}

	if macd := indicators.MACD(closes, e.cfg.MACDFast, e.cfg.MACDSlow, e.cfg.MACDSignal); len(macd.Line) > 0 && len(macd.Signal) > 0 {
		snap.MACD = &models.MACDSnapshot{
			MACD:      macd.Line[len(macd.Line)-1],
			Signal:    macd.Signal[len(macd.Signal)-1],
			Histogram: lastOrZero(macd.Histogram),
		}
	}

	if bands := indicators.BollingerBands(closes, e.cfg.BBPeriod, e.cfg.BBStd); len(bands.Upper) > 0 && len(bands.Lower) > 0 {
		upper := bands.Upper[len(bands.Upper)-1]
		lower := bands.Lower[len(bands.Lower)-1]
		position := 0.5
		if upper != lower {
			position = (price - lower) / (upper - lower)
		}
		snap.Bollinger = &models.BollingerSnapshot{
			Upper:    upper,
			Middle:   bands.Middle[len(bands.Middle)-1],
			Lower:    lower,
			Position: position,
		}
	}

	smaShort := indicators.SMA(closes, e.cfg.SMAShort)
	smaLong := indicators.SMA(closes, e.cfg.SMALong)
	if len(smaShort) > 0 && len(smaLong) > 0 {
		short := smaShort[len(smaShort)-1]
		long := smaLong[len(smaLong)-1]
		snap.MovingAverages = &models.MASnapshot{
			Short:        short,
			Long:         long,
			PriceToShort: ratioOrOne(price, short),
			PriceToLong:  ratioOrOne(price, long),
		}
	}

	if volumes := series.Volumes(); len(volumes) > 0 {
		profile := indicators.AnalyzeVolume(volumes, e.cfg.VolumePeriod, e.cfg.VolumeThreshold)
		snap.Volume = &models.VolumeSnapshot{
			Average:  profile.Average,
			Current:  profile.Current,
			Ratio:    profile.Ratio,
			Abnormal: profile.Abnormal,
		}
	}

	if levels := indicators.SupportResistance(closes, series.Highs(), series.Lows(), e.cfg.SRWindow); len(levels.Support) > 0 || len(levels.Resistance) > 0 {
		snap.SupportResistance = &models.LevelsSnapshot{
			Support:    levels.Support,
			Resistance: levels.Resistance,
		}
	}

	pattern := patterns.Detect(series)
	snap.Pattern = &models.PatternSnapshot{
		Patterns: pattern.Patterns,
		Bias:     string(pattern.Bias),
	}

	return snap
}

// Elementary applies the rule table to the snapshot in fixed order: RSI,
// MACD, Bollinger, moving averages, volume. The order is part of the
// contract: rationales quote the first rules that fired.
func (e *SignalEngine) Elementary(snap models.IndicatorSnapshot, price float64) []models.ElementarySignal {
	var out []models.ElementarySignal

	if snap.RSI != nil {
		switch {
		case *snap.RSI < e.cfg.RSIOversold:
			out = append(out, buySignal(ReasonRSIOversold, models.StrengthMedium))
		case *snap.RSI > e.cfg.RSIOverbought:
			out = append(out, sellSignal(ReasonRSIOverbought, models.StrengthMedium))
		}
	}

	if m := snap.MACD; m != nil {
		if m.MACD > m.Signal && m.Histogram > 0 {
			out = append(out, buySignal(ReasonMACDGoldenCross, models.StrengthStrong))
		} else if m.MACD < m.Signal && m.Histogram < 0 {
			out = append(out, sellSignal(ReasonMACDDeathCross, models.StrengthStrong))
		}
	}

	if b := snap.Bollinger; b != nil {
		if price <= b.Lower {
			out = append(out, buySignal(ReasonLowerBandTouch, models.StrengthMedium))
		} else if price >= b.Upper {
			out = append(out, sellSignal(ReasonUpperBandTouch, models.StrengthMedium))
		}
	}

	if ma := snap.MovingAverages; ma != nil {
		if ma.Short > ma.Long && price > ma.Short {
			out = append(out, buySignal(ReasonBullishAlignment, models.StrengthMedium))
		} else if ma.Short < ma.Long && price < ma.Short {
			out = append(out, sellSignal(ReasonBearishAlignment, models.StrengthMedium))
		}
	}

	if v := snap.Volume; v != nil && v.Abnormal && v.Ratio > 2 {
		out = append(out, buySignal(ReasonVolumeSurge, models.StrengthMedium))
	}

	return out
}

// Compose scores the elementary signals together with the optional model
// opinion into the final classification.
func (e *SignalEngine) Compose(signals []models.ElementarySignal, pred *models.Prediction) models.CompositeSignal {
	var buyCount, sellCount, buyStrength, sellStrength int
	for _, s := range signals {
		switch s.Direction {
		case models.DirectionBuy:
			buyCount++
			buyStrength += s.Strength.Weight()
		case models.DirectionSell:
			sellCount++
			sellStrength += s.Strength.Weight()
		}
	}

	mlWeight := 0
	if pred != nil {
		switch p := pred.Probability; {
		case p > 0.6:
			mlWeight = 2
		case p > 0.4:
			mlWeight = 1
		default:
			mlWeight = -1
		}
	}

	total := buyStrength - sellStrength + mlWeight

	var sigType models.SignalType
	switch {
	case total >= e.cfg.StrongBand:
		sigType = models.SignalStrongBuy
	case total >= e.cfg.WeakBand:
		sigType = models.SignalBuy
	case total <= -e.cfg.StrongBand:
		sigType = models.SignalStrongSell
	case total <= -e.cfg.WeakBand:
		sigType = models.SignalSell
	default:
		sigType = models.SignalHold
	}

	return models.CompositeSignal{
		Type:           sigType,
		Strength:       intAbs(total),
		Confidence:     confidenceOf(total, len(signals)),
		BuyCount:       buyCount,
		SellCount:      sellCount,
		MLContribution: mlWeight,
		TotalScore:     total,
	}
}

// confidenceOf grades how well the score and the number of agreeing rules
// support the classification.
func confidenceOf(score, signalCount int) models.Confidence {
	switch {
	case intAbs(score) >= 4 && signalCount >= 3:
		return models.ConfidenceHigh
	case intAbs(score) >= 2 && signalCount >= 2:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func buySignal(reason string, strength models.Strength) models.ElementarySignal {
	return models.ElementarySignal{Direction: models.DirectionBuy, Reason: reason, Strength: strength}
}

func sellSignal(reason string, strength models.Strength) models.ElementarySignal {
	return models.ElementarySignal{Direction: models.DirectionSell, Reason: reason, Strength: strength}
}

func lastOrZero(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return vals[len(vals)-1]
}

func ratioOrOne(price, base float64) float64 {
	if base == 0 {
		return 1
	}
	return price / base
}

func intAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
