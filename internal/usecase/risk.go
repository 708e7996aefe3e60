package usecase

import (
	"TradeScope/internal/domain/models"
	"TradeScope/internal/services/indicators"
	"TradeScope/pkg/config"
)

// Risk factor labels, in evaluation order.
const (
	FactorHighVolatility    = "high volatility"
	FactorMediumVolatility  = "medium volatility"
	FactorRSIExtreme        = "RSI extreme"
	FactorPriceDeviation    = "price deviates from mean"
	FactorVolumeContraction = "volume contraction"
)

// RiskAssessor scores a series and its indicator snapshot into a risk
// level. Each factor that fires adds to the score; the level buckets it.
type RiskAssessor struct {
	cfg config.Risk
}

// NewRiskAssessor creates an assessor with the given risk parameters.
func NewRiskAssessor(cfg config.Risk) *RiskAssessor {
	return &RiskAssessor{cfg: cfg}
}

// Assess evaluates volatility plus the extremity readings in the snapshot.
// Histories too short for the volatility window simply contribute no
// volatility factor.
func (r *RiskAssessor) Assess(series models.Series, snap models.IndicatorSnapshot) models.RiskAssessment {
	var factors []string
	score := 0

	volatility := indicators.Volatility(series.Closes(), r.cfg.VolatilityPeriod)
	if volatility > r.cfg.VolatilityThreshold {
		factors = append(factors, FactorHighVolatility)
		score += 2
	} else if volatility > r.cfg.VolatilityThreshold*0.5 {
		factors = append(factors, FactorMediumVolatility)
		score++
	}

	if snap.RSI != nil && (*snap.RSI > 80 || *snap.RSI < 20) {
		factors = append(factors, FactorRSIExtreme)
		score++
	}

	if b := snap.Bollinger; b != nil && (b.Position > 0.9 || b.Position < 0.1) {
		factors = append(factors, FactorPriceDeviation)
		score++
	}

	if v := snap.Volume; v != nil && v.Ratio < 0.5 {
		factors = append(factors, FactorVolumeContraction)
		score++
	}

	level := models.RiskLow
	if score >= 4 {
		level = models.RiskHigh
	} else if score >= 2 {
		level = models.RiskMedium
	}

	return models.RiskAssessment{
		Level:      level,
		Score:      score,
		Factors:    factors,
		Volatility: volatility,
	}
}
