package service

import (
	"context"

	"TradeScope/internal/domain/models"
)

// PricePredictor scores a feature vector into an up/down probability.
// Implementations must honor ctx cancellation; the advisor treats any
// error as "no model opinion" and carries on without it.
type PricePredictor interface {
	Predict(ctx context.Context, symbol string, features models.FeatureVector) (models.Prediction, error)
}
