package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"TradeScope/internal/domain/models"
	drepo "TradeScope/internal/domain/repository"
	"TradeScope/pkg/config"
	"TradeScope/pkg/logger"
	"TradeScope/pkg/metrics"
)

// BatchAnalyzer runs many analysis requests through one Advisor with a
// bounded number of workers. Output order matches input order regardless
// of which worker finished first.
type BatchAnalyzer struct {
	advisor *Advisor
	sink    drepo.RecommendationSink
	metrics drepo.Metrics
	log     *logger.Logger

	concurrency int
	topN        int
}

// NewBatchAnalyzer creates a BatchAnalyzer. sink may be nil; publishing is
// then skipped.
func NewBatchAnalyzer(advisor *Advisor, sink drepo.RecommendationSink, m drepo.Metrics, log *logger.Logger, cfg config.Batch) *BatchAnalyzer {
	if m == nil {
		m = metrics.Noop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchAnalyzer{
		advisor:     advisor,
		sink:        sink,
		metrics:     m,
		log:         log,
		concurrency: concurrency,
		topN:        cfg.TopN,
	}
}

// AnalyzeBatch analyzes every request and returns one recommendation per
// request, in input order. Recommendations are published to the sink when
// one is configured; publish failures are logged and do not fail the batch.
func (b *BatchAnalyzer) AnalyzeBatch(ctx context.Context, reqs []models.AnalysisRequest) []models.Recommendation {
	results := make([]models.Recommendation, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i := range reqs {
		g.Go(func() error {
			results[i] = b.advisor.Analyze(gctx, reqs[i])
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()
	b.metrics.RecordLatency("analyze_batch", time.Since(start).Seconds())

	b.publish(ctx, results)
	return results
}

// TopPicks filters buy-side recommendations and returns the strongest
// ones, at most the configured top N. Ties keep batch order.
func (b *BatchAnalyzer) TopPicks(recs []models.Recommendation) []models.Recommendation {
	picks := make([]models.Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.Signal.Type.BuySide() {
			picks = append(picks, r)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Signal.Strength > picks[j].Signal.Strength
	})
	if b.topN > 0 && len(picks) > b.topN {
		picks = picks[:b.topN]
	}
	return picks
}

func (b *BatchAnalyzer) publish(ctx context.Context, recs []models.Recommendation) {
	if b.sink == nil || len(recs) == 0 {
		return
	}
	out := make([]*models.Recommendation, len(recs))
	for i := range recs {
		out[i] = &recs[i]
	}
	if err := b.sink.PublishBatch(ctx, out); err != nil {
		b.log.Warn("publishing recommendations failed", logger.Error(err))
		b.metrics.RecordError("publish")
	}
}
