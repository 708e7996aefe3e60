package predictor

import (
	"context"
	"fmt"

	"TradeScope/internal/domain/models"
	domsvc "TradeScope/internal/domain/service"
	"TradeScope/pkg/config"
)

// HTTPOracle scores feature vectors against an external model service.
type HTTPOracle struct {
	base     *httpBase
	attempts int
}

func NewHTTPOracle(cfg *config.Config) *HTTPOracle {
	attempts := cfg.Oracle.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	return &HTTPOracle{base: newHTTPBase(cfg), attempts: attempts}
}

type predictRequest struct {
	Symbol   string               `json:"symbol"`
	Features models.FeatureVector `json:"features"`
}

type predictResponse struct {
	Probability       float64            `json:"probability"`
	Prediction        int                `json:"prediction"`
	Confidence        string             `json:"confidence"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

func (o *HTTPOracle) Predict(ctx context.Context, symbol string, features models.FeatureVector) (models.Prediction, error) {
	var pr predictResponse
	err := o.base.postJSONWithRetry(ctx, "/predict", predictRequest{Symbol: symbol, Features: features}, &pr, o.attempts)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("post predict: %w", err)
	}
	if pr.Probability < 0 || pr.Probability > 1 {
		return models.Prediction{}, fmt.Errorf("oracle probability %v out of range", pr.Probability)
	}
	return models.Prediction{
		Probability: pr.Probability,
		Outcome:     pr.Prediction,
		Confidence:  models.Confidence(pr.Confidence),
		Weights:     pr.FeatureImportance,
	}, nil
}

// Healthy probes the oracle's health endpoint.
func (o *HTTPOracle) Healthy(ctx context.Context) error {
	return o.base.getJSON(ctx, "/health", nil)
}

var _ domsvc.PricePredictor = (*HTTPOracle)(nil)
