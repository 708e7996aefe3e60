package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"TradeScope/internal/domain/models"
	drepo "TradeScope/internal/domain/repository"
	domsvc "TradeScope/internal/domain/service"
	"TradeScope/internal/services/features"
	"TradeScope/pkg/config"
	"TradeScope/pkg/logger"
	"TradeScope/pkg/metrics"
)

// Rationale fallbacks.
const (
	RationaleInsufficientData = "insufficient data"
	RationaleNoClearSignal    = "no clear signal"
)

// Advisor builds one Recommendation per analysis request. It never fails:
// degenerate input, oracle outages and even panics inside the analysis
// collapse into a neutral hold record so one bad asset cannot poison a
// batch.
type Advisor struct {
	engine  *SignalEngine
	risk    *RiskAssessor
	exits   *EntryExitCalculator
	oracle  domsvc.PricePredictor
	metrics drepo.Metrics
	log     *logger.Logger

	oracleTimeout time.Duration
}

// NewAdvisor wires the analysis pipeline from configuration. oracle may be
// nil (no model opinion); nil metrics and log degrade to no-ops.
func NewAdvisor(cfg *config.Config, oracle domsvc.PricePredictor, m drepo.Metrics, log *logger.Logger) *Advisor {
	if m == nil {
		m = metrics.Noop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Advisor{
		engine:        NewSignalEngine(cfg.Analysis),
		risk:          NewRiskAssessor(cfg.Risk),
		exits:         NewEntryExitCalculator(cfg.Risk),
		oracle:        oracle,
		metrics:       m,
		log:           log,
		oracleTimeout: cfg.Oracle.Timeout,
	}
}

// Analyze runs the full pipeline for one request and always returns a
// fully-populated Recommendation.
func (a *Advisor) Analyze(ctx context.Context, req models.AnalysisRequest) (rec models.Recommendation) {
	start := time.Now()
	info, series := req.Extract()

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("analysis panicked",
				logger.String("symbol", info.Symbol),
				logger.Any("panic", r))
			a.metrics.RecordError("panic")
			rec = a.neutral(info)
		}
		a.metrics.RecordRecommendation(string(rec.Asset.Class), string(rec.Signal.Type))
		a.metrics.RecordLatency("analyze", time.Since(start).Seconds())
		if rec.Asset.Symbol != "" {
			a.metrics.RecordScore(rec.Asset.Symbol, float64(rec.Signal.TotalScore))
		}
	}()

	price := series.LastClose()
	if price <= 0 {
		a.log.Warn("no usable price data",
			logger.String("symbol", info.Symbol),
			logger.String("class", string(info.Class)))
		return a.neutral(info)
	}

	snap := a.engine.Snapshot(series)

	var pred *models.Prediction
	if a.oracle != nil {
		if vec, ok := features.BuildVector(series); ok {
			octx, cancel := context.WithTimeout(ctx, a.oracleTimeout)
			p, err := a.oracle.Predict(octx, info.Symbol, vec)
			cancel()
			if err != nil {
				a.log.Warn("oracle unavailable, scoring without it",
					logger.String("symbol", info.Symbol),
					logger.Error(err))
				a.metrics.RecordError("oracle")
			} else {
				pred = &p
			}
		}
	}

	elementary := a.engine.Elementary(snap, price)
	composite := a.engine.Compose(elementary, pred)

	rec = models.Recommendation{
		ID:           uuid.NewString(),
		Asset:        info,
		CurrentPrice: price,
		Signal:       composite,
		Indicators:   snap,
		Prediction:   pred,
		Risk:         a.risk.Assess(series, snap),
		EntryExit:    a.exits.Calculate(price, composite.Type),
		Rationale:    rationale(elementary, pred, composite.Type),
		AnalyzedAt:   time.Now().UTC(),
	}
	return rec
}

func (a *Advisor) neutral(info models.AssetInfo) models.Recommendation {
	return models.Recommendation{
		ID:    uuid.NewString(),
		Asset: info,
		Signal: models.CompositeSignal{
			Type:       models.SignalHold,
			Confidence: models.ConfidenceLow,
		},
		Risk:       models.RiskAssessment{Level: models.RiskLow},
		Rationale:  RationaleInsufficientData,
		AnalyzedAt: time.Now().UTC(),
	}
}

// rationale joins the first three reasons behind the recommendation: the
// elementary rules that fired, the model's lean when it is decisive, and
// the composite direction.
func rationale(signals []models.ElementarySignal, pred *models.Prediction, sigType models.SignalType) string {
	var reasons []string
	for _, s := range signals {
		reasons = append(reasons, s.Reason)
	}

	if pred != nil && pred.Probability != 0.5 {
		switch p := pred.Probability; {
		case p > 0.6:
			reasons = append(reasons, fmt.Sprintf("model predicts %.1f%% upside probability", p*100))
		case p < 0.4:
			reasons = append(reasons, fmt.Sprintf("model predicts %.1f%% downside probability", (1-p)*100))
		}
	}

	switch {
	case sigType.BuySide():
		reasons = append(reasons, "multiple indicators point to a buying opportunity")
	case sigType.SellSide():
		reasons = append(reasons, "multiple indicators point to selling pressure")
	}

	if len(reasons) == 0 {
		return RationaleNoClearSignal
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return strings.Join(reasons, "; ")
}
