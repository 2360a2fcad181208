package reasoning

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/reasoner/internal/domain/answer"
	"github.com/kailas-cloud/reasoner/internal/logger"
	"github.com/kailas-cloud/reasoner/internal/metrics"
)

// InstrumentedReasoner wraps a Reasoner with metrics and debug logging.
type InstrumentedReasoner struct {
	inner  Reasoner
	logger *zap.Logger
}

// NewInstrumentedReasoner wraps a reasoner with observability.
// A request-scoped logger in ctx takes precedence over log.
func NewInstrumentedReasoner(inner Reasoner, log *zap.Logger) *InstrumentedReasoner {
	if log == nil {
		log = zap.NewNop()
	}
	return &InstrumentedReasoner{inner: inner, logger: log}
}

// Reason delegates to the inner reasoner and records the outcome.
func (r *InstrumentedReasoner) Reason(ctx context.Context, query string) answer.Result {
	start := time.Now()

	res := r.inner.Reason(ctx, query)

	duration := time.Since(start)
	metrics.ReasonTotal.WithLabelValues(string(res.Decision), strconv.FormatBool(res.UsedFallback)).Inc()
	metrics.ReasonDuration.Observe(duration.Seconds())
	metrics.BestMatchScore.Observe(res.BestMatch.Score)

	r.loggerFor(ctx).Debug("Reasoning completed",
		zap.String("decision", string(res.Decision)),
		zap.Bool("used_fallback", res.UsedFallback),
		zap.Float64("best_score", res.BestMatch.Score),
		zap.Int("query_len", len(query)),
		zap.Duration("duration", duration),
	)

	return res
}

// loggerFor returns the request logger from ctx when one is set. Nop
// loggers report every level as disabled.
func (r *InstrumentedReasoner) loggerFor(ctx context.Context) *zap.Logger {
	if l := logger.FromContext(ctx); l.Core().Enabled(zap.FatalLevel) {
		return l
	}
	return r.logger
}
