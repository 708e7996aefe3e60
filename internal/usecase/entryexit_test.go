package usecase

import (
	"testing"

	"TradeScope/internal/domain/models"
)

func TestCalculate_BuySide(t *testing.T) {
	calc := NewEntryExitCalculator(testConfig(t).Risk)

	for _, sig := range []models.SignalType{models.SignalBuy, models.SignalStrongBuy} {
		got := calc.Calculate(100, sig)
		if got.Entry != 99.5 {
			t.Errorf("%s entry = %v, want 99.5", sig, got.Entry)
		}
		if got.StopLoss != 95 {
			t.Errorf("%s stop = %v, want 95", sig, got.StopLoss)
		}
		if got.TakeProfit != 115 {
			t.Errorf("%s target = %v, want 115", sig, got.TakeProfit)
		}
		// (115 - 99.5) / (99.5 - 95) = 15.5 / 4.5
		if got.RiskReward != 3.44 {
			t.Errorf("%s risk/reward = %v, want 3.44", sig, got.RiskReward)
		}
	}
}

func TestCalculate_SellSide(t *testing.T) {
	calc := NewEntryExitCalculator(testConfig(t).Risk)

	for _, sig := range []models.SignalType{models.SignalSell, models.SignalStrongSell} {
		got := calc.Calculate(100, sig)
		if got.Entry != 100.5 {
			t.Errorf("%s entry = %v, want 100.5", sig, got.Entry)
		}
		if got.StopLoss != 105 {
			t.Errorf("%s stop = %v, want 105", sig, got.StopLoss)
		}
		if got.TakeProfit != 85 {
			t.Errorf("%s target = %v, want 85", sig, got.TakeProfit)
		}
		if got.RiskReward != 3.44 {
			t.Errorf("%s risk/reward = %v, want 3.44", sig, got.RiskReward)
		}
	}
}

func TestCalculate_Hold(t *testing.T) {
	calc := NewEntryExitCalculator(testConfig(t).Risk)

	got := calc.Calculate(100, models.SignalHold)
	if got.Entry != 100 || got.StopLoss != 95 || got.TakeProfit != 115 {
		t.Errorf("hold plan = %+v, want 100/95/115", got)
	}
	// (115 - 100) / (100 - 95) = 3.
	if got.RiskReward != 3 {
		t.Errorf("hold risk/reward = %v, want 3", got.RiskReward)
	}
}

func TestCalculate_ZeroPrice(t *testing.T) {
	calc := NewEntryExitCalculator(testConfig(t).Risk)

	if got := calc.Calculate(0, models.SignalBuy); got != (models.EntryExit{}) {
		t.Errorf("zero price plan = %+v, want zero value", got)
	}
}

func TestCalculate_RoundsToPrecision(t *testing.T) {
	cfg := testConfig(t)
	cfg.Risk.PricePrecision = 2
	calc := NewEntryExitCalculator(cfg.Risk)

	got := calc.Calculate(123.456789, models.SignalBuy)
	if got.Entry != 122.84 {
		t.Errorf("entry = %v, want 122.84", got.Entry)
	}
	if got.StopLoss != 117.28 {
		t.Errorf("stop = %v, want 117.28", got.StopLoss)
	}
	if got.TakeProfit != 141.98 {
		t.Errorf("target = %v, want 141.98", got.TakeProfit)
	}
	// The ratio is scale invariant for buys: 0.155 / 0.045.
	if got.RiskReward != 3.44 {
		t.Errorf("risk/reward = %v, want 3.44", got.RiskReward)
	}
}
