package models

// RiskLevel buckets the additive risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment is the additive risk score with the factors that fired,
// in evaluation order.
type RiskAssessment struct {
	Level      RiskLevel `json:"level"`
	Score      int       `json:"score"`
	Factors    []string  `json:"factors,omitempty"`
	Volatility float64   `json:"volatility"`
}
