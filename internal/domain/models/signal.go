package models

// SignalType classifies the composite recommendation.
type SignalType string

const (
	SignalStrongBuy  SignalType = "strong_buy"
	SignalBuy        SignalType = "buy"
	SignalHold       SignalType = "hold"
	SignalSell       SignalType = "sell"
	SignalStrongSell SignalType = "strong_sell"
)

// BuySide reports whether the signal argues for entering a long.
func (s SignalType) BuySide() bool { return s == SignalBuy || s == SignalStrongBuy }

// SellSide reports whether the signal argues for exiting or shorting.
func (s SignalType) SellSide() bool { return s == SignalSell || s == SignalStrongSell }

// Direction is the side an elementary signal votes for.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

// Strength grades how much weight an elementary signal carries.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Weight converts a strength grade into its scoring weight.
func (s Strength) Weight() int {
	if s == StrengthStrong {
		return 2
	}
	return 1
}

// ElementarySignal is one indicator rule that fired, in rule-table order.
type ElementarySignal struct {
	Direction Direction `json:"direction"`
	Reason    string    `json:"reason"`
	Strength  Strength  `json:"strength"`
}

// Confidence grades how much the composite score and the number of
// agreeing signals support the classification.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// CompositeSignal is the scored aggregation of the elementary signals and
// the optional model contribution. Strength is the absolute total score.
type CompositeSignal struct {
	Type           SignalType `json:"type"`
	Strength       int        `json:"strength"`
	Confidence     Confidence `json:"confidence"`
	BuyCount       int        `json:"buy_count"`
	SellCount      int        `json:"sell_count"`
	MLContribution int        `json:"ml_contribution"`
	TotalScore     int        `json:"total_score"`
}
