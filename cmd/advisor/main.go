package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TradeScope/internal/domain/models"
	drepo "TradeScope/internal/domain/repository"
	domsvc "TradeScope/internal/domain/service"
	irepo "TradeScope/internal/repository"
	"TradeScope/internal/services/predictor"
	"TradeScope/internal/usecase"
	"TradeScope/pkg/config"
	pkgkafka "TradeScope/pkg/kafka"
	"TradeScope/pkg/logger"
	"TradeScope/pkg/metrics"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	inputPath := flag.String("input", "-", "analysis requests JSON file, - for stdin")
	top := flag.Int("top", 0, "print only the strongest N buy-side picks")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *top > 0 {
		cfg.Batch.TopN = *top
	}

	lg, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reqs, err := readRequests(*inputPath)
	if err != nil {
		lg.Error("reading input failed", logger.Error(err))
		os.Exit(1)
	}
	// Invalid requests are analyzed anyway; they come back as neutral
	// hold records rather than failing the batch.
	for i := range reqs {
		if err := config.ValidateStruct(&reqs[i]); err != nil {
			lg.Warn("request failed validation, analyzing anyway",
				logger.Int("index", i),
				logger.Error(err))
		}
	}

	m := metrics.New()
	oracle := buildOracle(ctx, cfg, lg)
	sink := buildSink(cfg, lg)

	advisor := usecase.NewAdvisor(cfg, oracle, m, lg)
	batch := usecase.NewBatchAnalyzer(advisor, sink, m, lg, cfg.Batch)

	lg.Info("analyzing",
		logger.String("env", cfg.Environment),
		logger.Int("requests", len(reqs)),
		logger.Bool("oracle", oracle != nil),
		logger.Bool("sink", sink != nil))

	recs := batch.AnalyzeBatch(ctx, reqs)

	// Flush pending publishes before writing the result.
	if sink != nil {
		if err := sink.Close(); err != nil {
			lg.Warn("closing sink failed", logger.Error(err))
		}
	}

	out := recs
	if *top > 0 {
		out = batch.TopPicks(recs)
	}
	if err := writeJSON(os.Stdout, out); err != nil {
		lg.Error("writing output failed", logger.Error(err))
		os.Exit(1)
	}
}

// buildOracle returns nil when no oracle URL is configured; the advisor
// then scores on indicators alone.
func buildOracle(ctx context.Context, cfg *config.Config, lg *logger.Logger) domsvc.PricePredictor {
	if cfg.Oracle.URL == "" {
		return nil
	}
	oracle := predictor.NewHTTPOracle(cfg)
	hctx, cancel := context.WithTimeout(ctx, cfg.Oracle.Timeout)
	defer cancel()
	if err := oracle.Healthy(hctx); err != nil {
		lg.Warn("oracle health check failed",
			logger.String("url", cfg.Oracle.URL),
			logger.Error(err))
	}
	return oracle
}

// buildSink returns nil when the Kafka sink is disabled. A producer init
// failure disables publishing instead of aborting the run.
func buildSink(cfg *config.Config, lg *logger.Logger) drepo.RecommendationSink {
	if !cfg.Kafka.Enabled {
		return nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		lg.Warn("kafka producer init failed, publishing disabled", logger.Error(err))
		return nil
	}
	return irepo.NewKafkaSink(producer, cfg.Kafka.Topic)
}

func readRequests(path string) ([]models.AnalysisRequest, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var reqs []models.AnalysisRequest
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return reqs, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
