// Package patterns detects single- and two-bar candlestick patterns on the
// tail of a price series and distills them into a directional bias.
package patterns

import "TradeScope/internal/domain/models"

// Bias is the directional read of the detected patterns.
type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	BiasNeutral Bias = "neutral"
)

// Pattern names, in detection order.
const (
	Hammer           = "hammer"
	Doji             = "doji"
	BullishEngulfing = "bullish_engulfing"
	BearishEngulfing = "bearish_engulfing"

	// InsufficientData marks a series with fewer than three bars.
	InsufficientData = "insufficient_data"
)

// Result lists the patterns found on the last bars plus the overall bias.
type Result struct {
	Patterns []string `json:"patterns"`
	Bias     Bias     `json:"bias"`
}

// Signal converts the bias into the numeric feature the oracle consumes:
// +1 bullish, -1 bearish, 0 neutral.
func (r Result) Signal() float64 {
	switch r.Bias {
	case BiasBullish:
		return 1
	case BiasBearish:
		return -1
	default:
		return 0
	}
}

// Detect inspects the last three bars. Hammer and doji are judged on the
// final bar alone; engulfing on the final two, bullish checked before
// bearish so at most one of the pair can appear. Fewer than three bars
// yields the insufficient-data marker with a neutral bias.
func Detect(series models.Series) Result {
	if len(series) < 3 {
		return Result{Patterns: []string{InsufficientData}, Bias: BiasNeutral}
	}

	last := series[len(series)-1]
	prev := series[len(series)-2]

	var found []string
	if isHammer(last) {
		found = append(found, Hammer)
	}
	if isDoji(last) {
		found = append(found, Doji)
	}
	if isBullishEngulfing(prev, last) {
		found = append(found, BullishEngulfing)
	} else if isBearishEngulfing(prev, last) {
		found = append(found, BearishEngulfing)
	}

	return Result{Patterns: found, Bias: biasOf(found)}
}

func biasOf(found []string) Bias {
	bullish, bearish := false, false
	for _, p := range found {
		switch p {
		case Hammer, BullishEngulfing:
			bullish = true
		case BearishEngulfing:
			bearish = true
		}
	}
	if bullish {
		return BiasBullish
	}
	if bearish {
		return BiasBearish
	}
	return BiasNeutral
}

// isHammer wants a small body riding a lower shadow at least twice its
// size, with the upper shadow under half the body. Flat bars (zero body)
// do not qualify.
func isHammer(b models.Bar) bool {
	body := abs(b.Close - b.Open)
	upper := b.High - max(b.Open, b.Close)
	lower := min(b.Open, b.Close) - b.Low
	return lower > body*2 && upper < body*0.5 && body > 0
}

// isDoji wants a body under a tenth of the bar's full range. A zero-range
// bar is not a doji.
func isDoji(b models.Bar) bool {
	body := abs(b.Close - b.Open)
	full := b.High - b.Low
	if full <= 0 {
		return false
	}
	return body < full*0.1
}

func isBullishEngulfing(prev, cur models.Bar) bool {
	prevBearish := prev.Close < prev.Open
	curBullish := cur.Close > cur.Open
	engulfs := cur.Open < prev.Close && cur.Close > prev.Open
	return prevBearish && curBullish && engulfs
}

func isBearishEngulfing(prev, cur models.Bar) bool {
	prevBullish := prev.Close > prev.Open
	curBearish := cur.Close < cur.Open
	engulfs := cur.Open > prev.Close && cur.Close < prev.Open
	return prevBullish && curBearish && engulfs
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
