package usecase

import (
	"testing"

	"TradeScope/internal/domain/models"
)

// alternatingSeries closes at a, b, a, b, ...
func alternatingSeries(n int, a, b float64) models.Series {
	s := make(models.Series, n)
	for i := range s {
		c := a
		if i%2 == 1 {
			c = b
		}
		s[i] = models.Bar{Open: c, High: c, Low: c, Close: c, Volume: 1000}
	}
	return s
}

func TestAssess_CalmSeries(t *testing.T) {
	assessor := NewRiskAssessor(testConfig(t).Risk)

	got := assessor.Assess(constantSeries(30, 100, 1000), models.IndicatorSnapshot{})
	if got.Score != 0 || got.Level != models.RiskLow {
		t.Errorf("assessment = %+v, want score 0, level low", got)
	}
	if len(got.Factors) != 0 {
		t.Errorf("factors = %v, want none", got.Factors)
	}
	if got.Volatility != 0 {
		t.Errorf("volatility = %v, want 0 for a flat series", got.Volatility)
	}
}

func TestAssess_HighVolatility(t *testing.T) {
	assessor := NewRiskAssessor(testConfig(t).Risk)

	// Alternating 100/150 closes: returns swing between +0.5 and -1/3.
	// Over any 20-return window the population stdev is 5/12 = 0.41667,
	// above the 0.3 threshold.
	got := assessor.Assess(alternatingSeries(25, 100, 150), models.IndicatorSnapshot{})
	if !closeTo(got.Volatility, 5.0/12.0, 1e-9) {
		t.Errorf("volatility = %v, want %v", got.Volatility, 5.0/12.0)
	}
	if len(got.Factors) != 1 || got.Factors[0] != FactorHighVolatility {
		t.Errorf("factors = %v, want [%s]", got.Factors, FactorHighVolatility)
	}
	if got.Score != 2 || got.Level != models.RiskMedium {
		t.Errorf("score = %d level = %s, want 2/medium", got.Score, got.Level)
	}
}

func TestAssess_MediumVolatility(t *testing.T) {
	assessor := NewRiskAssessor(testConfig(t).Risk)

	// Alternating 100/120: stdev of returns is 11/60 = 0.18333, between
	// half the threshold (0.15) and the threshold (0.3).
	got := assessor.Assess(alternatingSeries(25, 100, 120), models.IndicatorSnapshot{})
	if !closeTo(got.Volatility, 11.0/60.0, 1e-9) {
		t.Errorf("volatility = %v, want %v", got.Volatility, 11.0/60.0)
	}
	if len(got.Factors) != 1 || got.Factors[0] != FactorMediumVolatility {
		t.Errorf("factors = %v, want [%s]", got.Factors, FactorMediumVolatility)
	}
	if got.Score != 1 || got.Level != models.RiskLow {
		t.Errorf("score = %d level = %s, want 1/low", got.Score, got.Level)
	}
}

func TestAssess_SnapshotFactors(t *testing.T) {
	assessor := NewRiskAssessor(testConfig(t).Risk)

	snap := models.IndicatorSnapshot{
		RSI:       floatPtr(85),
		Bollinger: &models.BollingerSnapshot{Position: 0.95},
		Volume:    &models.VolumeSnapshot{Ratio: 0.3},
	}
	got := assessor.Assess(nil, snap)

	want := []string{FactorRSIExtreme, FactorPriceDeviation, FactorVolumeContraction}
	if len(got.Factors) != len(want) {
		t.Fatalf("factors = %v, want %v", got.Factors, want)
	}
	for i := range want {
		if got.Factors[i] != want[i] {
			t.Errorf("factor %d = %q, want %q", i, got.Factors[i], want[i])
		}
	}
	if got.Score != 3 || got.Level != models.RiskMedium {
		t.Errorf("score = %d level = %s, want 3/medium", got.Score, got.Level)
	}
}

func TestAssess_FactorBounds(t *testing.T) {
	assessor := NewRiskAssessor(testConfig(t).Risk)

	// 80 and 0.9 sit exactly on the bounds; both checks are strict.
	snap := models.IndicatorSnapshot{
		RSI:       floatPtr(80),
		Bollinger: &models.BollingerSnapshot{Position: 0.9},
		Volume:    &models.VolumeSnapshot{Ratio: 0.5},
	}
	got := assessor.Assess(nil, snap)
	if got.Score != 0 || len(got.Factors) != 0 {
		t.Errorf("assessment = %+v, want nothing fired on the bounds", got)
	}
}

func TestAssess_HighRisk(t *testing.T) {
	assessor := NewRiskAssessor(testConfig(t).Risk)

	snap := models.IndicatorSnapshot{
		RSI:       floatPtr(15),
		Bollinger: &models.BollingerSnapshot{Position: 0.05},
	}
	got := assessor.Assess(alternatingSeries(25, 100, 150), snap)

	want := []string{FactorHighVolatility, FactorRSIExtreme, FactorPriceDeviation}
	if len(got.Factors) != len(want) {
		t.Fatalf("factors = %v, want %v", got.Factors, want)
	}
	for i := range want {
		if got.Factors[i] != want[i] {
			t.Errorf("factor %d = %q, want %q", i, got.Factors[i], want[i])
		}
	}
	if got.Score != 4 || got.Level != models.RiskHigh {
		t.Errorf("score = %d level = %s, want 4/high", got.Score, got.Level)
	}
}

func TestAssess_FlatSeriesPinsRSI(t *testing.T) {
	cfg := testConfig(t)
	engine := NewSignalEngine(cfg.Analysis)
	assessor := NewRiskAssessor(cfg.Risk)

	// A flat series has no losses, so RSI pins at 100 and reads as an
	// extreme even though nothing is moving. The collapsed bands stay
	// neutral (position 0.5), so it is the only factor.
	series := constantSeries(30, 100, 1000)
	got := assessor.Assess(series, engine.Snapshot(series))

	if len(got.Factors) != 1 || got.Factors[0] != FactorRSIExtreme {
		t.Errorf("factors = %v, want [%s]", got.Factors, FactorRSIExtreme)
	}
	if got.Score != 1 || got.Level != models.RiskLow {
		t.Errorf("score = %d level = %s, want 1/low", got.Score, got.Level)
	}
	if got.Volatility != 0 {
		t.Errorf("volatility = %v, want 0", got.Volatility)
	}
}
