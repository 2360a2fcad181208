// Package answer defines the externally visible outcome of one reasoning call.
package answer

import (
	"github.com/kailas-cloud/reasoner/internal/domain/search/mode"
	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
)

// SourceLocal marks answers produced from the in-memory corpus.
const SourceLocal = "local"

// Sentinel values used when nothing could be ranked.
const (
	NoResultsText = "No results found"
	NoMatchText   = "No match"
)

// TraceTextLimit is the number of characters of a hit kept in the trace.
const TraceTextLimit = 50

// TraceEllipsis is appended to every trace hit text.
const TraceEllipsis = "..."

// Result is the outcome of one reasoning call.
type Result struct {
	Decision     mode.Mode `json:"planner_decision"`
	UsedFallback bool      `json:"used_fallback_tool"`
	BestMatch    BestMatch `json:"best_match"`
	Trace        Trace     `json:"trace"`
}

// BestMatch is the selected answer. Score is rounded to two decimals.
type BestMatch struct {
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

// Trace carries diagnostics for a reasoning call.
type Trace struct {
	Reasoning    string     `json:"reasoning"`
	SemanticTopK []TraceHit `json:"semantic_top_k_scores"`
	KeywordTopK  []TraceHit `json:"keyword_top_k_scores"`
	LatencyMs    int64      `json:"latency_ms"`
}

// TraceHit is a shortened ranked hit.
type TraceHit struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// NewBestMatch builds the best match from a hit, rounding its score to two
// decimals and substituting NoMatchText for an empty text.
func NewBestMatch(hit result.Result) BestMatch {
	text := hit.Text()
	if text == "" {
		text = NoMatchText
	}
	return BestMatch{
		Text:   text,
		Score:  result.Round(result.Clamp(hit.Score()), 2),
		Source: SourceLocal,
	}
}

// NewTraceHits shortens hits for the trace. Never returns nil.
func NewTraceHits(hits []result.Result) []TraceHit {
	out := make([]TraceHit, len(hits))
	for i := range hits {
		out[i] = TraceHit{
			Text:  Shorten(hits[i].Text(), TraceTextLimit) + TraceEllipsis,
			Score: hits[i].Score(),
		}
	}
	return out
}

// Shorten keeps the first limit characters of s.
func Shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
