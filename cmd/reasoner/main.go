package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/reasoner/internal/config"
	"github.com/kailas-cloud/reasoner/internal/domain/corpus"
	logpkg "github.com/kailas-cloud/reasoner/internal/logger"
	"github.com/kailas-cloud/reasoner/internal/metrics"
	chiTransport "github.com/kailas-cloud/reasoner/internal/transport/chi"
	batchuc "github.com/kailas-cloud/reasoner/internal/usecase/batch"
	healthuc "github.com/kailas-cloud/reasoner/internal/usecase/health"
	planneruc "github.com/kailas-cloud/reasoner/internal/usecase/planner"
	reasoninguc "github.com/kailas-cloud/reasoner/internal/usecase/reasoning"
	searchuc "github.com/kailas-cloud/reasoner/internal/usecase/search"
	"github.com/kailas-cloud/reasoner/internal/version"
)

func main() {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("Server failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1) //nolint:gocritic // logger synced above
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	logger.Info("Starting reasoner API server",
		zap.String("version", version.String()),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("top_k", cfg.Engine.TopK),
		zap.Float64("confidence_threshold", cfg.Engine.ConfidenceThreshold),
		zap.Int("batch_max_size", cfg.Batch.MaxSize),
		zap.Int("batch_workers", cfg.Batch.Workers),
	)

	docs, err := loadCorpus(cfg.Engine.CorpusPath)
	if err != nil {
		return err
	}

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterReasoningMetrics()

	// Rankers build the vocabulary and document vectors once; everything
	// below only reads them.
	semantic := searchuc.NewSemantic(docs)
	keyword := searchuc.NewKeyword(docs)
	logger.Info("Corpus indexed",
		zap.String("source", corpusSource(cfg.Engine.CorpusPath)),
		zap.Int("documents", docs.Len()),
		zap.Int("vocabulary", semantic.Vocabulary().Len()),
	)

	reasoningSvc := reasoninguc.New(semantic, keyword, planneruc.New()).
		WithTopK(cfg.Engine.TopK).
		WithConfidenceThreshold(cfg.Engine.ConfidenceThreshold)
	reasoner := reasoninguc.NewInstrumentedReasoner(reasoningSvc, logger)

	batchSvc, err := batchuc.New(reasoner, cfg.Batch.Workers)
	if err != nil {
		return fmt.Errorf("create batch service: %w", err)
	}
	defer batchSvc.Release()
	batchSvc.WithMaxBatchSize(cfg.Batch.MaxSize)

	server := chiTransport.NewServer(reasoner, batchSvc, healthuc.New(semantic, semantic), logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(cfg.Auth.APIKeys),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr), zap.Bool("auth", len(cfg.Auth.APIKeys) > 0))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// loadCorpus reads the corpus file, or returns the built-in corpus when path is empty.
func loadCorpus(path string) (corpus.Corpus, error) {
	if path == "" {
		return corpus.Default(), nil
	}
	c, err := corpus.LoadFile(path)
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("load corpus: %w", err)
	}
	return c, nil
}

func corpusSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
