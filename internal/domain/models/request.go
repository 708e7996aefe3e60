package models

// AnalysisRequest is one unit of analysis work. Exactly one quote variant
// should match the class tag; History optionally supplies the real bar
// history the indicators run on. No history is ever synthesized: with only
// a quote the engine sees a single bar and reports what little it can.
type AnalysisRequest struct {
	Class   AssetClass   `json:"class" validate:"omitempty,oneof=crypto equity fund"`
	Crypto  *CryptoQuote `json:"crypto,omitempty" validate:"required_if=Class crypto"`
	Equity  *EquityQuote `json:"equity,omitempty" validate:"required_if=Class equity"`
	Fund    *FundQuote   `json:"fund,omitempty" validate:"required_if=Class fund"`
	History Series       `json:"history,omitempty"`
}

// Extract resolves the tagged variant into the instrument identity and the
// series to analyze. Supplied history wins over the quote-derived bar; a
// missing or mismatched variant yields an empty series, which downstream
// turns into a neutral recommendation rather than an error.
func (r AnalysisRequest) Extract() (AssetInfo, Series) {
	switch r.Class {
	case ClassCrypto:
		if r.Crypto != nil {
			return r.Crypto.Info(), r.series(r.Crypto.Bar())
		}
	case ClassEquity:
		if r.Equity != nil {
			return r.Equity.Info(), r.series(r.Equity.Bar())
		}
	case ClassFund:
		if r.Fund != nil {
			return r.Fund.Info(), r.series(r.Fund.Bar())
		}
	}
	class := r.Class
	switch class {
	case ClassCrypto, ClassEquity, ClassFund:
	default:
		class = ClassUnknown
	}
	return AssetInfo{Class: class}, nil
}

func (r AnalysisRequest) series(quote Bar) Series {
	if len(r.History) > 0 {
		return r.History
	}
	return Series{quote}
}
