package models

// EntryExit holds the suggested entry, protective stop and target for a
// signal, with prices rounded to the configured precision. A zero value
// means no usable price existed.
type EntryExit struct {
	Entry      float64 `json:"entry"`
	StopLoss   float64 `json:"stop_loss"`
	TakeProfit float64 `json:"take_profit"`
	RiskReward float64 `json:"risk_reward"`
}
