package models

import "strings"

// AssetClass tags the market an instrument trades in.
type AssetClass string

const (
	ClassCrypto  AssetClass = "crypto"
	ClassEquity  AssetClass = "equity"
	ClassFund    AssetClass = "fund"
	ClassUnknown AssetClass = "unknown"
)

// AssetInfo identifies the instrument a recommendation is about.
type AssetInfo struct {
	Symbol string     `json:"symbol"`
	Name   string     `json:"name,omitempty"`
	Class  AssetClass `json:"class"`
}

// CryptoQuote is a spot ticker snapshot. Crypto venues report no open,
// so the derived bar carries only close, 24h extremes and volume.
type CryptoQuote struct {
	Symbol       string  `json:"symbol" validate:"required"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	High24h      float64 `json:"high_24h"`
	Low24h       float64 `json:"low_24h"`
	TotalVolume  float64 `json:"total_volume"`
}

func (q CryptoQuote) Info() AssetInfo {
	return AssetInfo{Symbol: strings.ToUpper(q.Symbol), Name: q.Name, Class: ClassCrypto}
}

func (q CryptoQuote) Bar() Bar {
	return Bar{Close: q.CurrentPrice, High: q.High24h, Low: q.Low24h, Volume: q.TotalVolume}
}

// EquityQuote is a daily OHLCV snapshot for a listed share.
type EquityQuote struct {
	Code   string  `json:"code" validate:"required"`
	Name   string  `json:"name"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (q EquityQuote) Info() AssetInfo {
	return AssetInfo{Symbol: q.Code, Name: q.Name, Class: ClassEquity}
}

func (q EquityQuote) Bar() Bar {
	return Bar{Open: q.Open, High: q.High, Low: q.Low, Close: q.Close, Volume: q.Volume}
}

// FundQuote carries a fund's latest unit net asset value. Funds trade no
// volume, so the derived bar uses a unit weight to keep ratios defined.
type FundQuote struct {
	Code    string  `json:"code" validate:"required"`
	Name    string  `json:"name"`
	UnitNAV float64 `json:"unit_nav"`
}

func (q FundQuote) Info() AssetInfo {
	return AssetInfo{Symbol: q.Code, Name: q.Name, Class: ClassFund}
}

func (q FundQuote) Bar() Bar {
	return Bar{Close: q.UnitNAV, Volume: 1}
}
