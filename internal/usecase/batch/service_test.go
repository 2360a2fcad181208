package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/reasoner/internal/domain"
	"github.com/kailas-cloud/reasoner/internal/domain/answer"
	dombatch "github.com/kailas-cloud/reasoner/internal/domain/batch"
	"github.com/kailas-cloud/reasoner/internal/domain/search/mode"
	"github.com/kailas-cloud/reasoner/internal/domain/search/request"
	"github.com/kailas-cloud/reasoner/internal/logger"
)

// --- Mocks ---

type mockReasoner struct {
	calls atomic.Int64
	mu    sync.Mutex
	seen  []string
}

func (m *mockReasoner) Reason(_ context.Context, query string) answer.Result {
	m.calls.Add(1)
	m.mu.Lock()
	m.seen = append(m.seen, query)
	m.mu.Unlock()
	return answer.Result{
		Decision:  mode.Hybrid,
		BestMatch: answer.BestMatch{Text: "answer to " + query, Score: 1, Source: answer.SourceLocal},
	}
}

// loggingReasoner logs through the request logger found in ctx.
type loggingReasoner struct{}

func (loggingReasoner) Reason(ctx context.Context, query string) answer.Result {
	logger.FromContext(ctx).Info("reasoned", zap.String("query", query))
	return answer.Result{Decision: mode.Hybrid}
}

func newService(t *testing.T, r Reasoner, workers int) *Service {
	t.Helper()
	svc, err := New(r, workers)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(svc.Release)
	return svc
}

// --- Tests ---

func TestReason_PreservesOrder(t *testing.T) {
	r := &mockReasoner{}
	svc := newService(t, r, 4)

	items := make([]dombatch.Item, 50)
	for i := range items {
		items[i] = dombatch.Item{ID: fmt.Sprintf("item-%d", i), Query: fmt.Sprintf("query %d", i)}
	}

	results, err := svc.Reason(context.Background(), items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}
	for i, res := range results {
		if res.ID() != items[i].ID {
			t.Errorf("result %d: ID = %q, want %q", i, res.ID(), items[i].ID)
		}
		if res.Status() != dombatch.StatusOK {
			t.Errorf("result %d: status = %q, err = %v", i, res.Status(), res.Err())
		}
		if want := "answer to " + items[i].Query; res.Answer().BestMatch.Text != want {
			t.Errorf("result %d: answer = %q, want %q", i, res.Answer().BestMatch.Text, want)
		}
	}
	if got := r.calls.Load(); got != int64(len(items)) {
		t.Errorf("expected %d reasoner calls, got %d", len(items), got)
	}
}

func TestReason_GeneratesMissingIDs(t *testing.T) {
	svc := newService(t, &mockReasoner{}, 2)

	results, err := svc.Reason(context.Background(), []dombatch.Item{
		{Query: "one"},
		{ID: "given", Query: "two"},
		{Query: "three"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[1].ID() != "given" {
		t.Errorf("expected provided ID to be kept, got %q", results[1].ID())
	}
	if results[0].ID() == "" || results[2].ID() == "" {
		t.Fatal("expected generated IDs")
	}
	if results[0].ID() == results[2].ID() {
		t.Error("generated IDs must be unique")
	}
}

func TestReason_EmptyBatch(t *testing.T) {
	svc := newService(t, &mockReasoner{}, 2)

	results, err := svc.Reason(context.Background(), nil)
	if !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results, got %d", len(results))
	}
}

func TestReason_BatchTooLarge(t *testing.T) {
	r := &mockReasoner{}
	svc := newService(t, r, 2).WithMaxBatchSize(2)

	items := []dombatch.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	results, err := svc.Reason(context.Background(), items)
	if !errors.Is(err, domain.ErrBatchTooLarge) {
		t.Fatalf("expected ErrBatchTooLarge, got %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Status() != dombatch.StatusError || !errors.Is(res.Err(), domain.ErrBatchTooLarge) {
			t.Errorf("item %q: expected ErrBatchTooLarge, got %v", res.ID(), res.Err())
		}
	}
	if r.calls.Load() != 0 {
		t.Error("reasoner must not run for an oversized batch")
	}
}

func TestReason_InvalidQueryIsPerItem(t *testing.T) {
	r := &mockReasoner{}
	svc := newService(t, r, 2)

	results, err := svc.Reason(context.Background(), []dombatch.Item{
		{ID: "ok", Query: "machine learning"},
		{ID: "long", Query: strings.Repeat("a", request.MaxQueryLength+1)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Status() != dombatch.StatusOK {
		t.Errorf("expected first item ok, got %v", results[0].Err())
	}
	if !errors.Is(results[1].Err(), domain.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", results[1].Err())
	}
	if r.calls.Load() != 1 {
		t.Errorf("expected 1 reasoner call, got %d", r.calls.Load())
	}
}

func TestReason_CanceledContext(t *testing.T) {
	r := &mockReasoner{}
	svc := newService(t, r, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := svc.Reason(ctx, []dombatch.Item{{ID: "a", Query: "x"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(results[0].Err(), context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results[0].Err())
	}
	if r.calls.Load() != 0 {
		t.Error("reasoner must not run after cancellation")
	}
}

func TestNew_DefaultWorkers(t *testing.T) {
	svc := newService(t, &mockReasoner{}, 0)
	if svc.pool.Cap() != DefaultWorkers {
		t.Errorf("pool cap = %d, want %d", svc.pool.Cap(), DefaultWorkers)
	}
	if svc.MaxBatchSize() != MaxBatchSize {
		t.Errorf("MaxBatchSize = %d, want %d", svc.MaxBatchSize(), MaxBatchSize)
	}
}

func TestWithMaxBatchSize_IgnoresNonPositive(t *testing.T) {
	svc := newService(t, &mockReasoner{}, 1).WithMaxBatchSize(-1)
	if svc.MaxBatchSize() != MaxBatchSize {
		t.Errorf("MaxBatchSize = %d, want %d", svc.MaxBatchSize(), MaxBatchSize)
	}
}

func TestReason_TagsItemLogger(t *testing.T) {
	svc := newService(t, loggingReasoner{}, 2)

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.ContextWithLogger(context.Background(), zap.New(core))

	_, err := svc.Reason(ctx, []dombatch.Item{{ID: "a", Query: "x"}, {ID: "b", Query: "y"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]string{}
	for _, e := range logs.All() {
		fields := e.ContextMap()
		got[fields["query"].(string)] = fields["batch_item_id"].(string)
	}
	if got["x"] != "a" || got["y"] != "b" {
		t.Errorf("batch_item_id by query = %v", got)
	}
}
