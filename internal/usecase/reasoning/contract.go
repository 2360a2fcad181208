package reasoning

import (
	"context"

	"github.com/kailas-cloud/reasoner/internal/domain/answer"
	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
	"github.com/kailas-cloud/reasoner/internal/usecase/planner"
)

// Ranker ranks corpus documents against a query.
type Ranker interface {
	Search(query string, topK int) []result.Result
}

// Planner picks the ranking that answers a query.
type Planner interface {
	Plan(query string, semantic, keyword []result.Result) planner.Plan
}

// Reasoner answers a single query.
type Reasoner interface {
	Reason(ctx context.Context, query string) answer.Result
}
