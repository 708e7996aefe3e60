package repository

import (
	"context"

	"TradeScope/internal/domain/models"
	"TradeScope/internal/domain/repository"
	pkgkafka "TradeScope/pkg/kafka"
)

// KafkaSink implements RecommendationSink on top of a Kafka producer.
// Messages are keyed by asset symbol so one asset always lands on one
// partition.
type KafkaSink struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaSink creates a Kafka-backed recommendation sink.
func NewKafkaSink(producer *pkgkafka.Producer, topic string) repository.RecommendationSink {
	return &KafkaSink{producer: producer, topic: topic}
}

func (s *KafkaSink) Publish(ctx context.Context, rec *models.Recommendation) error {
	if rec == nil {
		return nil
	}
	return s.producer.Publish(ctx, s.topic, []byte(messageKey(rec)), rec)
}

func (s *KafkaSink) PublishBatch(ctx context.Context, recs []*models.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, 0, len(recs))
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		msgs = append(msgs, pkgkafka.Message{
			Key:   []byte(messageKey(rec)),
			Value: rec,
		})
	}
	if len(msgs) == 0 {
		return nil
	}
	return s.producer.PublishBatch(ctx, s.topic, msgs)
}

func (s *KafkaSink) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}

// messageKey prefers the asset symbol; records built from unusable input
// have no symbol and fall back to the record ID.
func messageKey(rec *models.Recommendation) string {
	if rec.Asset.Symbol != "" {
		return rec.Asset.Symbol
	}
	return rec.ID
}
