package models

import (
	"encoding/json"
	"strings"
	"time"

	"TradeScope/pkg/util"
)

// Bar represents a single OHLCV record in an asset's price history.
// Quote-derived bars may carry zero fields for values the venue did not
// report (for example crypto tickers have no open).
type Bar struct {
	Timestamp time.Time `json:"timestamp,omitempty"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// UnmarshalJSON accepts timestamps as RFC3339 strings or unix
// seconds/milliseconds, the formats market feeds actually emit. An
// unparseable timestamp leaves the field zero instead of failing the bar;
// timestamps are metadata, not analysis input.
func (b *Bar) UnmarshalJSON(data []byte) error {
	var raw struct {
		Timestamp json.RawMessage `json:"timestamp"`
		Open      float64         `json:"open"`
		High      float64         `json:"high"`
		Low       float64         `json:"low"`
		Close     float64         `json:"close"`
		Volume    float64         `json:"volume"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Bar{Open: raw.Open, High: raw.High, Low: raw.Low, Close: raw.Close, Volume: raw.Volume}
	if len(raw.Timestamp) > 0 {
		if s := strings.Trim(string(raw.Timestamp), `"`); s != "null" {
			if t, ok := util.ParseTime(s); ok {
				b.Timestamp = t
			}
		}
	}
	return nil
}

// Usable reports whether the bar has strictly positive prices and a
// non-negative volume.
func (b Bar) Usable() bool {
	return b.Open > 0 && b.High > 0 && b.Low > 0 && b.Close > 0 && b.Volume >= 0
}

// Series is an ordered price history, oldest bar first.
type Series []Bar

func (s Series) Opens() []float64   { return s.column(func(b Bar) float64 { return b.Open }) }
func (s Series) Highs() []float64   { return s.column(func(b Bar) float64 { return b.High }) }
func (s Series) Lows() []float64    { return s.column(func(b Bar) float64 { return b.Low }) }
func (s Series) Closes() []float64  { return s.column(func(b Bar) float64 { return b.Close }) }
func (s Series) Volumes() []float64 { return s.column(func(b Bar) float64 { return b.Volume }) }

func (s Series) column(get func(Bar) float64) []float64 {
	if len(s) == 0 {
		return nil
	}
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = get(b)
	}
	return out
}

// Last returns the most recent bar.
func (s Series) Last() (Bar, bool) {
	if len(s) == 0 {
		return Bar{}, false
	}
	return s[len(s)-1], true
}

// LastClose returns the most recent close, or 0 for an empty series.
func (s Series) LastClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Close
}
