package repository

import (
	"context"

	"TradeScope/internal/domain/models"
)

// RecommendationSink fans finished recommendations out to downstream
// consumers (alerting, journaling, execution).
type RecommendationSink interface {
	Publish(ctx context.Context, rec *models.Recommendation) error
	PublishBatch(ctx context.Context, recs []*models.Recommendation) error
	Close() error
}

type Metrics interface {
	RecordRecommendation(class, signal string)
	RecordError(kind string)
	RecordScore(symbol string, score float64)
	RecordLatency(op string, seconds float64)
}
