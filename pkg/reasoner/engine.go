package reasoner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/reasoner/internal/domain/answer"
	dombatch "github.com/kailas-cloud/reasoner/internal/domain/batch"
	"github.com/kailas-cloud/reasoner/internal/domain/corpus"
	batchuc "github.com/kailas-cloud/reasoner/internal/usecase/batch"
	healthuc "github.com/kailas-cloud/reasoner/internal/usecase/health"
	planneruc "github.com/kailas-cloud/reasoner/internal/usecase/planner"
	reasoninguc "github.com/kailas-cloud/reasoner/internal/usecase/reasoning"
	searchuc "github.com/kailas-cloud/reasoner/internal/usecase/search"
)

// Internal interfaces, replaced by fakes in tests.
type reasonUseCase interface {
	Reason(ctx context.Context, query string) answer.Result
}

type batchUseCase interface {
	Reason(ctx context.Context, items []dombatch.Item) ([]dombatch.Result, error)
	Release()
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Engine is the reasoner entry point.
type Engine struct {
	vocabulary []string
	reasonSvc  reasonUseCase
	batchSvc   batchUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New builds an engine. The corpus is indexed once here; the engine is
// read-only afterwards.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		topK:                reasoninguc.DefaultTopK,
		confidenceThreshold: reasoninguc.DefaultConfidenceThreshold,
		maxBatchSize:        batchuc.MaxBatchSize,
		batchWorkers:        batchuc.DefaultWorkers,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	docs, err := loadCorpus(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return wireEngine(docs, cfg, obs)
}

func (c *engineConfig) validate() error {
	if c.topK < 1 {
		return fmt.Errorf("reasoner: top k must be positive, got %d", c.topK)
	}
	if c.confidenceThreshold <= 0 || c.confidenceThreshold > 1 {
		return fmt.Errorf("reasoner: confidence threshold must be in (0, 1], got %g", c.confidenceThreshold)
	}
	if c.maxBatchSize < 1 {
		return fmt.Errorf("reasoner: max batch size must be positive, got %d", c.maxBatchSize)
	}
	if c.batchWorkers < 1 {
		return fmt.Errorf("reasoner: batch workers must be positive, got %d", c.batchWorkers)
	}
	return nil
}

func loadCorpus(cfg *engineConfig) (corpus.Corpus, error) {
	switch {
	case cfg.corpusFile != "":
		c, err := corpus.LoadFile(cfg.corpusFile)
		if err != nil {
			return corpus.Corpus{}, fmt.Errorf("reasoner: %w", err)
		}
		return c, nil
	case cfg.corpusSet:
		return corpus.New(cfg.corpus), nil
	default:
		return corpus.Default(), nil
	}
}

func wireEngine(docs corpus.Corpus, cfg *engineConfig, obs *observer) (*Engine, error) {
	semantic := searchuc.NewSemantic(docs)
	keyword := searchuc.NewKeyword(docs)

	reasonSvc := reasoninguc.New(semantic, keyword, planneruc.New()).
		WithTopK(cfg.topK).
		WithConfidenceThreshold(cfg.confidenceThreshold)

	batchSvc, err := batchuc.New(reasonSvc, cfg.batchWorkers)
	if err != nil {
		return nil, fmt.Errorf("reasoner: %w", err)
	}
	batchSvc.WithMaxBatchSize(cfg.maxBatchSize)

	return &Engine{
		vocabulary: semantic.Vocabulary().Terms(),
		reasonSvc:  reasonSvc,
		batchSvc:   batchSvc,
		healthSvc:  healthuc.New(semantic, semantic),
		obs:        obs,
	}, nil
}

// Close releases the batch worker pool.
func (e *Engine) Close() {
	if e.batchSvc != nil {
		e.batchSvc.Release()
	}
}

// Reason answers a query. It never fails: when nothing matches, BestMatch
// holds NoResultsText with score 0 and UsedFallback is set.
func (e *Engine) Reason(ctx context.Context, query string) Result {
	start := time.Now()
	res := resultFromDomain(e.reasonSvc.Reason(ctx, query))
	e.obs.observe("reason", start, nil)
	e.obs.observeResult(res)
	return res
}

// ReasonBatch answers queries concurrently and returns one result per query
// in input order. IDs are the query positions. An empty or oversized batch
// fails as a whole; queries longer than the accepted maximum fail
// individually with ErrInvalidQuery.
func (e *Engine) ReasonBatch(ctx context.Context, queries []string) (results []BatchResult, err error) {
	start := time.Now()
	defer func() { e.obs.observe("reason_batch", start, err) }()

	items := make([]dombatch.Item, len(queries))
	for i, q := range queries {
		items[i] = dombatch.Item{ID: strconv.Itoa(i), Query: q}
	}

	out, err := e.batchSvc.Reason(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("reason batch: %w", err)
	}

	results = make([]BatchResult, len(out))
	for i, r := range out {
		results[i] = batchResultFromDomain(r)
		if results[i].OK() {
			e.obs.observeResult(results[i].Result)
		}
	}
	return results, nil
}

// Vocabulary returns the semantic vocabulary in first-seen order.
func (e *Engine) Vocabulary() []string {
	return append([]string(nil), e.vocabulary...)
}

// Health reports the state of the loaded corpus.
func (e *Engine) Health(ctx context.Context) HealthStatus {
	report := e.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:         string(report.Status),
		Checks:         checks,
		Documents:      report.Documents,
		VocabularySize: report.VocabularySize,
	}
}
