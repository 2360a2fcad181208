// Package batch reasons over many queries concurrently.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/reasoner/internal/domain"
	dombatch "github.com/kailas-cloud/reasoner/internal/domain/batch"
	"github.com/kailas-cloud/reasoner/internal/domain/search/request"
	"github.com/kailas-cloud/reasoner/internal/logger"
	"github.com/kailas-cloud/reasoner/internal/metrics"
)

// MaxBatchSize is the maximum number of items per batch request.
const MaxBatchSize = 100

// DefaultWorkers is the worker pool size used when none is configured.
const DefaultWorkers = 8

// Service handles batch reasoning with per-item error reporting.
// Items run on a bounded worker pool; the reasoner must be safe for
// concurrent use.
type Service struct {
	reasoner     Reasoner
	pool         *ants.Pool
	maxBatchSize int
}

// New creates a batch service with a pool of the given size.
func New(reasoner Reasoner, workers int) (*Service, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Service{
		reasoner:     reasoner,
		pool:         pool,
		maxBatchSize: MaxBatchSize,
	}, nil
}

// WithMaxBatchSize configures the maximum batch size.
func (s *Service) WithMaxBatchSize(size int) *Service {
	if size > 0 {
		s.maxBatchSize = size
	}
	return s
}

// MaxBatchSize returns the configured batch size limit.
func (s *Service) MaxBatchSize() int { return s.maxBatchSize }

// Release stops the worker pool. The service must not be used afterwards.
func (s *Service) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Reason answers every item and returns one result per item in input order.
// Items without an ID get a generated one. An empty batch returns
// ErrEmptyBatch; an oversized batch returns ErrBatchTooLarge together with a
// failed result for every item.
func (s *Service) Reason(ctx context.Context, items []dombatch.Item) ([]dombatch.Result, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	results := make([]dombatch.Result, len(items))

	if len(items) > s.maxBatchSize {
		err := fmt.Errorf("batch size exceeds %d: %w", s.maxBatchSize, domain.ErrBatchTooLarge)
		for i := range items {
			results[i] = dombatch.NewError(itemID(items[i]), err)
		}
		recordOutcomes(results)
		return results, err
	}

	var wg sync.WaitGroup
	for i := range items {
		id := itemID(items[i])
		query := items[i].Query

		if err := ctx.Err(); err != nil {
			results[i] = dombatch.NewError(id, fmt.Errorf("batch canceled: %w", err))
			continue
		}

		wg.Add(1)
		if err := s.pool.Submit(func() {
			defer wg.Done()
			results[i] = s.reasonOne(ctx, id, query)
		}); err != nil {
			wg.Done()
			results[i] = dombatch.NewError(id, fmt.Errorf("submit: %w", err))
		}
	}
	wg.Wait()

	recordOutcomes(results)
	return results, nil
}

func (s *Service) reasonOne(ctx context.Context, id, query string) dombatch.Result {
	req, err := request.New(query, request.ModeAuto)
	if err != nil {
		return dombatch.NewError(id, err)
	}
	ctx = logger.WithFields(ctx, zap.String("batch_item_id", id))
	return dombatch.NewOK(id, s.reasoner.Reason(ctx, req.Query()))
}

func itemID(item dombatch.Item) string {
	if item.ID != "" {
		return item.ID
	}
	return uuid.NewString()
}

func recordOutcomes(results []dombatch.Result) {
	for i := range results {
		metrics.BatchItemsTotal.WithLabelValues(string(results[i].Status())).Inc()
	}
}
