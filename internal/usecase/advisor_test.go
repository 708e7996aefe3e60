package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"TradeScope/internal/domain/models"
)

type fakeOracle struct {
	pred   models.Prediction
	err    error
	panics bool

	mu      sync.Mutex
	calls   int
	symbols []string
}

func (f *fakeOracle) Predict(_ context.Context, symbol string, _ models.FeatureVector) (models.Prediction, error) {
	f.mu.Lock()
	f.calls++
	f.symbols = append(f.symbols, symbol)
	f.mu.Unlock()
	if f.panics {
		panic("oracle exploded")
	}
	if f.err != nil {
		return models.Prediction{}, f.err
	}
	return f.pred, nil
}

type fakeMetrics struct {
	mu              sync.Mutex
	recommendations []string
	errorKinds      []string
	scores          map[string]float64
	latencyOps      []string
}

func (f *fakeMetrics) RecordRecommendation(class, signal string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recommendations = append(f.recommendations, class+"/"+signal)
}

func (f *fakeMetrics) RecordError(kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorKinds = append(f.errorKinds, kind)
}

func (f *fakeMetrics) RecordScore(symbol string, score float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scores == nil {
		f.scores = map[string]float64{}
	}
	f.scores[symbol] = score
}

func (f *fakeMetrics) RecordLatency(op string, _ float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latencyOps = append(f.latencyOps, op)
}

func (f *fakeMetrics) sawError(kind string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range f.errorKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func equityRequest(history models.Series) models.AnalysisRequest {
	return models.AnalysisRequest{
		Class:   models.ClassEquity,
		Equity:  &models.EquityQuote{Code: "FPT", Name: "FPT Corp"},
		History: history,
	}
}

func TestAnalyze_FullHistory(t *testing.T) {
	advisor := NewAdvisor(testConfig(t), nil, nil, nil)

	rec := advisor.Analyze(context.Background(), equityRequest(risingSeries(40)))

	if rec.ID == "" {
		t.Error("recommendation should carry an id")
	}
	if rec.Asset.Symbol != "FPT" || rec.Asset.Class != models.ClassEquity {
		t.Errorf("asset = %+v", rec.Asset)
	}
	if rec.CurrentPrice != 139 {
		t.Errorf("price = %v, want 139", rec.CurrentPrice)
	}
	if rec.AnalyzedAt.IsZero() {
		t.Error("analyzed-at should be set")
	}

	// A steady rise fires RSI overbought (-1), the MACD golden cross (+2)
	// and the bullish average alignment (+1).
	if rec.Signal.Type != models.SignalBuy {
		t.Errorf("signal = %s, want buy", rec.Signal.Type)
	}
	if rec.Signal.TotalScore != 2 || rec.Signal.BuyCount != 2 || rec.Signal.SellCount != 1 {
		t.Errorf("signal = %+v, want score 2 from 2 buys / 1 sell", rec.Signal)
	}
	if rec.Signal.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %s, want medium", rec.Signal.Confidence)
	}
	if rec.Prediction != nil {
		t.Errorf("prediction = %+v, want nil without an oracle", rec.Prediction)
	}

	if rec.Risk.Level != models.RiskMedium {
		t.Errorf("risk level = %s, want medium", rec.Risk.Level)
	}
	wantFactors := []string{FactorRSIExtreme, FactorPriceDeviation}
	if len(rec.Risk.Factors) != 2 || rec.Risk.Factors[0] != wantFactors[0] || rec.Risk.Factors[1] != wantFactors[1] {
		t.Errorf("risk factors = %v, want %v", rec.Risk.Factors, wantFactors)
	}

	if rec.EntryExit.Entry != 138.305 || rec.EntryExit.StopLoss != 132.05 || rec.EntryExit.TakeProfit != 159.85 {
		t.Errorf("entry/exit = %+v, want 138.305/132.05/159.85", rec.EntryExit)
	}
	if rec.EntryExit.RiskReward != 3.44 {
		t.Errorf("risk/reward = %v, want 3.44", rec.EntryExit.RiskReward)
	}

	want := "RSI overbought; MACD golden cross; bullish moving average alignment"
	if rec.Rationale != want {
		t.Errorf("rationale = %q, want %q", rec.Rationale, want)
	}
}

func TestAnalyze_QuoteOnly(t *testing.T) {
	advisor := NewAdvisor(testConfig(t), nil, nil, nil)
	req := models.AnalysisRequest{
		Class:  models.ClassEquity,
		Equity: &models.EquityQuote{Code: "VNM", Open: 100, High: 102, Low: 99, Close: 101, Volume: 5_000_000},
	}

	rec := advisor.Analyze(context.Background(), req)

	if rec.Asset.Symbol != "VNM" {
		t.Errorf("symbol = %q, want VNM", rec.Asset.Symbol)
	}
	if rec.CurrentPrice != 101 {
		t.Errorf("price = %v, want 101", rec.CurrentPrice)
	}
	if rec.Signal.Type != models.SignalHold || rec.Signal.Confidence != models.ConfidenceLow {
		t.Errorf("signal = %+v, want low-confidence hold", rec.Signal)
	}
	if rec.Rationale != RationaleNoClearSignal {
		t.Errorf("rationale = %q, want %q", rec.Rationale, RationaleNoClearSignal)
	}
	if rec.Risk.Level != models.RiskLow || rec.Risk.Score != 0 {
		t.Errorf("risk = %+v, want silent low", rec.Risk)
	}
	// Holds still get protective levels around the quote.
	if rec.EntryExit.Entry != 101 {
		t.Errorf("entry = %v, want 101", rec.EntryExit.Entry)
	}
}

func TestAnalyze_EmptyRequest(t *testing.T) {
	m := &fakeMetrics{}
	advisor := NewAdvisor(testConfig(t), nil, m, nil)

	rec := advisor.Analyze(context.Background(), models.AnalysisRequest{})

	if rec.Signal.Type != models.SignalHold || rec.Rationale != RationaleInsufficientData {
		t.Errorf("rec = %+v, want neutral insufficient-data hold", rec)
	}
	if rec.Asset.Class != models.ClassUnknown {
		t.Errorf("class = %s, want unknown", rec.Asset.Class)
	}
	if rec.CurrentPrice != 0 {
		t.Errorf("price = %v, want 0", rec.CurrentPrice)
	}
	if rec.EntryExit != (models.EntryExit{}) {
		t.Errorf("entry/exit = %+v, want zero", rec.EntryExit)
	}

	if len(m.recommendations) != 1 || m.recommendations[0] != "unknown/hold" {
		t.Errorf("recorded recommendations = %v, want [unknown/hold]", m.recommendations)
	}
	if len(m.scores) != 0 {
		t.Errorf("scores = %v, want none without a symbol", m.scores)
	}
	if len(m.latencyOps) != 1 || m.latencyOps[0] != "analyze" {
		t.Errorf("latency ops = %v, want [analyze]", m.latencyOps)
	}
}

func TestAnalyze_OracleContribution(t *testing.T) {
	oracle := &fakeOracle{pred: models.Prediction{Probability: 0.75, Outcome: 1, Confidence: models.ConfidenceHigh}}
	advisor := NewAdvisor(testConfig(t), oracle, nil, nil)

	rec := advisor.Analyze(context.Background(), equityRequest(risingSeries(40)))

	if oracle.calls != 1 || oracle.symbols[0] != "FPT" {
		t.Fatalf("oracle calls = %d %v, want one for FPT", oracle.calls, oracle.symbols)
	}
	if rec.Prediction == nil || rec.Prediction.Probability != 0.75 {
		t.Fatalf("prediction = %+v, want probability 0.75", rec.Prediction)
	}
	if rec.Signal.MLContribution != 2 {
		t.Errorf("ml contribution = %d, want 2", rec.Signal.MLContribution)
	}
	// The model lifts the score from 2 to 4, across the strong band.
	if rec.Signal.Type != models.SignalStrongBuy || rec.Signal.TotalScore != 4 {
		t.Errorf("signal = %+v, want strong_buy with score 4", rec.Signal)
	}
	if rec.Signal.Confidence != models.ConfidenceHigh {
		t.Errorf("confidence = %s, want high", rec.Signal.Confidence)
	}
}

func TestAnalyze_RisingHistoryWithModel(t *testing.T) {
	oracle := &fakeOracle{pred: models.Prediction{Probability: 0.7, Outcome: 1}}
	advisor := NewAdvisor(testConfig(t), oracle, nil, nil)

	// 30 bars is enough for the feature vector but not for a MACD signal
	// line, so the rule table alone nets out to zero (RSI overbought
	// against the bullish alignment). The model decides.
	rec := advisor.Analyze(context.Background(), equityRequest(risingSeries(30)))

	if oracle.calls != 1 {
		t.Fatalf("oracle calls = %d, want 1", oracle.calls)
	}
	if rec.Signal.BuyCount != 1 || rec.Signal.SellCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", rec.Signal.BuyCount, rec.Signal.SellCount)
	}
	if rec.Signal.MLContribution != 2 || rec.Signal.TotalScore != 2 {
		t.Errorf("signal = %+v, want ml 2 lifting the total to 2", rec.Signal)
	}
	if !rec.Signal.Type.BuySide() {
		t.Errorf("type = %s, want buy side", rec.Signal.Type)
	}
	if rec.Indicators.MACD != nil {
		t.Error("MACD section should be absent below 34 bars")
	}

	want := "RSI overbought; bullish moving average alignment; model predicts 70.0% upside probability"
	if rec.Rationale != want {
		t.Errorf("rationale = %q, want %q", rec.Rationale, want)
	}
}

func TestAnalyze_OracleFailure(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("connection refused")}
	m := &fakeMetrics{}
	advisor := NewAdvisor(testConfig(t), oracle, m, nil)

	rec := advisor.Analyze(context.Background(), equityRequest(risingSeries(40)))

	if oracle.calls != 1 {
		t.Errorf("oracle calls = %d, want 1", oracle.calls)
	}
	if rec.Prediction != nil {
		t.Errorf("prediction = %+v, want nil after oracle failure", rec.Prediction)
	}
	// Analysis carries on without the model.
	if rec.Signal.Type != models.SignalBuy || rec.Signal.TotalScore != 2 {
		t.Errorf("signal = %+v, want plain buy with score 2", rec.Signal)
	}
	if !m.sawError("oracle") {
		t.Errorf("errors = %v, want oracle recorded", m.errorKinds)
	}
}

func TestAnalyze_OracleSkippedOnShortHistory(t *testing.T) {
	oracle := &fakeOracle{pred: models.Prediction{Probability: 0.9}}
	advisor := NewAdvisor(testConfig(t), oracle, nil, nil)

	req := models.AnalysisRequest{
		Class:  models.ClassEquity,
		Equity: &models.EquityQuote{Code: "VNM", Close: 101, Volume: 1000},
	}
	rec := advisor.Analyze(context.Background(), req)

	if oracle.calls != 0 {
		t.Errorf("oracle calls = %d, want 0 on a short history", oracle.calls)
	}
	if rec.Prediction != nil {
		t.Errorf("prediction = %+v, want nil", rec.Prediction)
	}
}

func TestAnalyze_PanicRecovery(t *testing.T) {
	oracle := &fakeOracle{panics: true}
	m := &fakeMetrics{}
	advisor := NewAdvisor(testConfig(t), oracle, m, nil)

	rec := advisor.Analyze(context.Background(), equityRequest(risingSeries(40)))

	if rec.Signal.Type != models.SignalHold || rec.Rationale != RationaleInsufficientData {
		t.Errorf("rec = %+v, want neutral fallback after panic", rec)
	}
	if rec.Asset.Symbol != "FPT" {
		t.Errorf("asset = %+v, identity should survive the fallback", rec.Asset)
	}
	if !m.sawError("panic") {
		t.Errorf("errors = %v, want panic recorded", m.errorKinds)
	}
	if len(m.recommendations) != 1 || m.recommendations[0] != "equity/hold" {
		t.Errorf("recorded recommendations = %v, want [equity/hold]", m.recommendations)
	}
	if score, ok := m.scores["FPT"]; !ok || score != 0 {
		t.Errorf("scores = %v, want FPT at 0", m.scores)
	}
}

func TestRationale(t *testing.T) {
	pred := func(p float64) *models.Prediction { return &models.Prediction{Probability: p} }

	tests := []struct {
		name    string
		signals []models.ElementarySignal
		pred    *models.Prediction
		sigType models.SignalType
		want    string
	}{
		{"nothing fired", nil, nil, models.SignalHold, RationaleNoClearSignal},
		{"even model is silent", nil, pred(0.5), models.SignalHold, RationaleNoClearSignal},
		{"undecided model is silent", nil, pred(0.45), models.SignalHold, RationaleNoClearSignal},
		{
			"bullish model",
			nil,
			pred(0.7),
			models.SignalBuy,
			"model predicts 70.0% upside probability; multiple indicators point to a buying opportunity",
		},
		{
			"bearish model",
			nil,
			pred(0.2),
			models.SignalHold,
			"model predicts 80.0% downside probability",
		},
		{
			"rules come first",
			[]models.ElementarySignal{
				buySignal(ReasonRSIOversold, models.StrengthMedium),
				buySignal(ReasonMACDGoldenCross, models.StrengthStrong),
			},
			pred(0.7),
			models.SignalStrongBuy,
			"RSI oversold; MACD golden cross; model predicts 70.0% upside probability",
		},
		{
			"at most three reasons",
			[]models.ElementarySignal{
				buySignal(ReasonRSIOversold, models.StrengthMedium),
				buySignal(ReasonMACDGoldenCross, models.StrengthStrong),
				buySignal(ReasonLowerBandTouch, models.StrengthMedium),
				buySignal(ReasonBullishAlignment, models.StrengthMedium),
			},
			nil,
			models.SignalStrongBuy,
			"RSI oversold; MACD golden cross; price touched lower Bollinger band",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rationale(tt.signals, tt.pred, tt.sigType); got != tt.want {
				t.Errorf("rationale = %q, want %q", got, tt.want)
			}
		})
	}
}
