package models

import "time"

// Recommendation is the full analytical result for one asset. It is always
// produced: when analysis cannot run, a neutral hold record with an
// explanatory rationale takes its place.
type Recommendation struct {
	ID           string            `json:"id"`
	Asset        AssetInfo         `json:"asset"`
	CurrentPrice float64           `json:"current_price"`
	Signal       CompositeSignal   `json:"signal"`
	Indicators   IndicatorSnapshot `json:"indicators"`
	Prediction   *Prediction       `json:"prediction,omitempty"`
	Risk         RiskAssessment    `json:"risk"`
	EntryExit    EntryExit         `json:"entry_exit"`
	Rationale    string            `json:"rationale"`
	AnalyzedAt   time.Time         `json:"analyzed_at"`
}
