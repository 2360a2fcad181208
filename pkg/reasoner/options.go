package reasoner

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Engine.
type Option interface {
	apply(*engineConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*engineConfig)

func (f optionFunc) apply(c *engineConfig) { f(c) }

type engineConfig struct {
	corpus     []string
	corpusSet  bool
	corpusFile string

	topK                int
	confidenceThreshold float64

	maxBatchSize int
	batchWorkers int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCorpus sets the documents to rank, in order.
// Defaults to the built-in twelve-sentence technology corpus.
func WithCorpus(texts []string) Option {
	return optionFunc(func(c *engineConfig) {
		c.corpus = append([]string(nil), texts...)
		c.corpusSet = true
		c.corpusFile = ""
	})
}

// WithCorpusFile loads documents from a YAML file with a top-level
// "documents" list.
func WithCorpusFile(path string) Option {
	return optionFunc(func(c *engineConfig) {
		c.corpusFile = path
		c.corpus = nil
		c.corpusSet = false
	})
}

// WithTopK sets how many hits each ranker returns. Default: 3.
func WithTopK(k int) Option {
	return optionFunc(func(c *engineConfig) {
		c.topK = k
	})
}

// WithConfidenceThreshold sets the score below which the fallback runs.
// Must be in (0, 1]. Default: 0.75.
func WithConfidenceThreshold(threshold float64) Option {
	return optionFunc(func(c *engineConfig) {
		c.confidenceThreshold = threshold
	})
}

// WithMaxBatchSize sets the maximum number of queries per ReasonBatch call.
// Default: 100.
func WithMaxBatchSize(size int) Option {
	return optionFunc(func(c *engineConfig) {
		c.maxBatchSize = size
	})
}

// WithBatchWorkers sets how many batch queries run concurrently. Default: 8.
func WithBatchWorkers(n int) Option {
	return optionFunc(func(c *engineConfig) {
		c.batchWorkers = n
	})
}

// WithLogger enables structured logging for engine operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *engineConfig) {
		c.logger = l
	})
}

// WithMetrics registers engine metrics (operation counts, durations and
// decisions) on the given registerer. Pass nil to disable (default).
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *engineConfig) {
		c.metricsReg = reg
	})
}
