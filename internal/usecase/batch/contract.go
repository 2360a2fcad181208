package batch

import (
	"context"

	"github.com/kailas-cloud/reasoner/internal/domain/answer"
)

// Reasoner answers a single query.
type Reasoner interface {
	Reason(ctx context.Context, query string) answer.Result
}
