package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	"TradeScope/internal/domain/models"
	"TradeScope/pkg/config"
)

// EntryExitCalculator derives entry, stop and target prices from the
// composite signal direction.
type EntryExitCalculator struct {
	cfg config.Risk
}

// NewEntryExitCalculator creates a calculator with the given risk parameters.
func NewEntryExitCalculator(cfg config.Risk) *EntryExitCalculator {
	return &EntryExitCalculator{cfg: cfg}
}

// Calculate prices the trade for the given signal. Buys enter slightly
// under the market, sells slightly over; holds keep protective levels on
// the long side. The risk/reward ratio comes from the unrounded levels; a
// zero price yields the zero plan.
func (c *EntryExitCalculator) Calculate(price float64, signal models.SignalType) models.EntryExit {
	if price == 0 {
		return models.EntryExit{}
	}

	var entry, stop, target float64
	switch {
	case signal.BuySide():
		entry = price * 0.995
		stop = price * (1 - c.cfg.StopLossPct)
		target = price * (1 + c.cfg.TakeProfitPct)
	case signal.SellSide():
		entry = price * 1.005
		stop = price * (1 + c.cfg.StopLossPct)
		target = price * (1 - c.cfg.TakeProfitPct)
	default:
		entry = price
		stop = price * (1 - c.cfg.StopLossPct)
		target = price * (1 + c.cfg.TakeProfitPct)
	}

	ratio := 0.0
	if risk := math.Abs(entry - stop); risk > 0 {
		ratio = math.Abs(target-entry) / risk
	}

	return models.EntryExit{
		Entry:      roundTo(entry, c.cfg.PricePrecision),
		StopLoss:   roundTo(stop, c.cfg.PricePrecision),
		TakeProfit: roundTo(target, c.cfg.PricePrecision),
		RiskReward: roundTo(ratio, 2),
	}
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
