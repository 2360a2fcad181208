package reasoner

import (
	"github.com/kailas-cloud/reasoner/internal/domain/answer"
	dombatch "github.com/kailas-cloud/reasoner/internal/domain/batch"
)

// Decision is the ranking strategy chosen by the planner.
type Decision string

// Decision values.
const (
	DecisionSemantic Decision = "semantic_search"
	DecisionKeyword  Decision = "keyword_search"
	DecisionHybrid   Decision = "hybrid"
)

// NoResultsText is the best match text returned when nothing matched.
const NoResultsText = answer.NoResultsText

// Result is the answer to one query.
type Result struct {
	Decision     Decision  `json:"planner_decision"`
	UsedFallback bool      `json:"used_fallback_tool"`
	BestMatch    BestMatch `json:"best_match"`
	Trace        Trace     `json:"trace"`
}

// BestMatch is the selected document. Score is rounded to two decimals.
type BestMatch struct {
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

// Trace explains how a result was produced.
type Trace struct {
	Reasoning    string     `json:"reasoning"`
	SemanticTopK []TraceHit `json:"semantic_top_k_scores"`
	KeywordTopK  []TraceHit `json:"keyword_top_k_scores"`
	LatencyMs    int64      `json:"latency_ms"`
}

// TraceHit is a ranked hit with its text shortened.
type TraceHit struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// BatchResult is the outcome of one ReasonBatch query.
type BatchResult struct {
	ID     string
	Result Result
	Err    error
}

// OK reports whether the query was answered.
func (r BatchResult) OK() bool { return r.Err == nil }

// HealthStatus describes the loaded corpus.
type HealthStatus struct {
	Status         string            // "ok", "degraded"
	Checks         map[string]string // component → "ok"/"empty"
	Documents      int
	VocabularySize int
}

func resultFromDomain(a answer.Result) Result {
	return Result{
		Decision:     Decision(a.Decision),
		UsedFallback: a.UsedFallback,
		BestMatch: BestMatch{
			Text:   a.BestMatch.Text,
			Score:  a.BestMatch.Score,
			Source: a.BestMatch.Source,
		},
		Trace: Trace{
			Reasoning:    a.Trace.Reasoning,
			SemanticTopK: traceHitsFromDomain(a.Trace.SemanticTopK),
			KeywordTopK:  traceHitsFromDomain(a.Trace.KeywordTopK),
			LatencyMs:    a.Trace.LatencyMs,
		},
	}
}

func traceHitsFromDomain(hits []answer.TraceHit) []TraceHit {
	out := make([]TraceHit, len(hits))
	for i, h := range hits {
		out[i] = TraceHit{Text: h.Text, Score: h.Score}
	}
	return out
}

func batchResultFromDomain(r dombatch.Result) BatchResult {
	br := BatchResult{ID: r.ID(), Err: r.Err()}
	if r.Status() == dombatch.StatusOK {
		br.Result = resultFromDomain(r.Answer())
	}
	return br
}
