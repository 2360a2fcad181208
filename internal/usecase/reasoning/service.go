// Package reasoning runs both rankers, consults the planner and selects the
// best match for a query.
package reasoning

import (
	"context"
	"time"

	"github.com/kailas-cloud/reasoner/internal/domain/answer"
	"github.com/kailas-cloud/reasoner/internal/domain/search/mode"
	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
)

// Defaults used when the service is not configured otherwise.
const (
	DefaultTopK                = 3
	DefaultConfidenceThreshold = 0.75
)

// Service is the reasoning orchestrator. It is read-only after construction
// and safe for concurrent use.
type Service struct {
	semantic  Ranker
	keyword   Ranker
	planner   Planner
	topK      int
	threshold float64
}

// New creates a reasoning service.
func New(semantic, keyword Ranker, planner Planner) *Service {
	return &Service{
		semantic:  semantic,
		keyword:   keyword,
		planner:   planner,
		topK:      DefaultTopK,
		threshold: DefaultConfidenceThreshold,
	}
}

// WithTopK configures how many hits each ranker returns.
func (s *Service) WithTopK(k int) *Service {
	if k > 0 {
		s.topK = k
	}
	return s
}

// WithConfidenceThreshold configures the score below which the fallback runs.
func (s *Service) WithConfidenceThreshold(threshold float64) *Service {
	if threshold > 0 && threshold <= 1 {
		s.threshold = threshold
	}
	return s
}

// TopK returns the configured per-ranker result count.
func (s *Service) TopK() int { return s.topK }

// ConfidenceThreshold returns the configured fallback threshold.
func (s *Service) ConfidenceThreshold() float64 { return s.threshold }

// Reason answers a query. It never fails: weak or empty rankings resolve to
// the fallback match or the no-results sentinel.
func (s *Service) Reason(_ context.Context, query string) answer.Result {
	start := time.Now()

	semantic := s.semantic.Search(query, s.topK)
	keyword := s.keyword.Search(query, s.topK)
	plan := s.planner.Plan(query, semantic, keyword)

	best, ok := selectBest(plan.Decision, semantic, keyword)
	usedFallback := false
	if !ok || best.Score() < s.threshold {
		usedFallback = true
		best, ok = fallbackBest(semantic, keyword)
	}

	bestMatch := answer.BestMatch{Text: answer.NoResultsText, Score: 0, Source: answer.SourceLocal}
	if ok {
		bestMatch = answer.NewBestMatch(best)
	}

	return answer.Result{
		Decision:     plan.Decision,
		UsedFallback: usedFallback,
		BestMatch:    bestMatch,
		Trace: answer.Trace{
			Reasoning:    plan.Reasoning,
			SemanticTopK: answer.NewTraceHits(semantic),
			KeywordTopK:  answer.NewTraceHits(keyword),
			LatencyMs:    latencyMs(time.Since(start)),
		},
	}
}

// selectBest returns the provisional best match for a decision.
// Hybrid prefers the semantic hit on equal scores.
func selectBest(decision mode.Mode, semantic, keyword []result.Result) (result.Result, bool) {
	switch decision {
	case mode.Semantic:
		return result.Best(semantic)
	case mode.Keyword:
		return result.Best(keyword)
	default:
		sem, semOK := result.Best(semantic)
		kw, kwOK := result.Best(keyword)
		if semOK && (!kwOK || sem.Score() >= kw.Score()) {
			return sem, true
		}
		return kw, kwOK
	}
}

// latencyMs reports d in whole milliseconds, rounded to nearest.
func latencyMs(d time.Duration) int64 {
	return d.Round(time.Millisecond).Milliseconds()
}
