// Package planner decides which ranking answers a query.
//
// The decision is a fixed chain of rules evaluated in order. Advisory rules
// only append a note to the reasoning; the first decisive rule that matches
// ends the chain. The last rule always matches, so a decision is always made.
package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/kailas-cloud/reasoner/internal/domain/search/mode"
	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
)

// Rule thresholds.
const (
	LongQueryWords     = 5
	StrongKeywordScore = 0.6
	ClearWinScore      = 0.5
	ClearLoseScore     = 0.3
	CloseScoreDiff     = 0.15
	MinHybridSemantic  = 0.2
)

// Signals are the inputs every rule sees.
type Signals struct {
	WordCount    int
	SemanticBest float64
	KeywordBest  float64
}

// Diff returns the absolute gap between the two best scores.
func (s Signals) Diff() float64 { return math.Abs(s.SemanticBest - s.KeywordBest) }

// Plan is a planner outcome.
type Plan struct {
	Decision  mode.Mode
	Reasoning string
}

// Rule is one step of the chain. A Rule with an empty Decision is advisory.
type Rule struct {
	Name     string
	When     func(Signals) bool
	Note     func(Signals) string
	Decision mode.Mode
}

// Planner evaluates an ordered rule chain. It holds no mutable state.
type Planner struct {
	rules []Rule
}

// New creates a planner with the default rule chain.
func New() *Planner {
	return &Planner{rules: DefaultRules()}
}

// NewWithRules creates a planner with a custom chain. Rules without a When
// predicate are dropped. The chain should end with a rule that always
// matches; otherwise Plan falls back to hybrid.
func NewWithRules(rules []Rule) *Planner {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.When != nil {
			kept = append(kept, r)
		}
	}
	return &Planner{rules: kept}
}

// DefaultRules returns the standard rule chain in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "long_query",
			When: func(s Signals) bool { return s.WordCount > LongQueryWords },
			Note: func(s Signals) string {
				return fmt.Sprintf("Query is long (%d words, >%d). Semantic search preferred. ", s.WordCount, LongQueryWords)
			},
		},
		{
			Name: "strong_keyword",
			When: func(s Signals) bool { return s.KeywordBest > StrongKeywordScore },
			Note: func(s Signals) string {
				return fmt.Sprintf("Strong keyword match (score: %.2f). Keyword search is effective. ", twoPlaces(s.KeywordBest))
			},
		},
		{
			Name: "semantic_wins",
			When: func(s Signals) bool {
				return s.SemanticBest > ClearWinScore && s.KeywordBest < ClearLoseScore
			},
			Note: func(s Signals) string {
				return fmt.Sprintf("Semantic clearly wins (%.2f vs %.2f). ", twoPlaces(s.SemanticBest), twoPlaces(s.KeywordBest))
			},
			Decision: mode.Semantic,
		},
		{
			Name: "keyword_wins",
			When: func(s Signals) bool {
				return s.KeywordBest > ClearWinScore && s.SemanticBest < ClearLoseScore
			},
			Note: func(s Signals) string {
				return fmt.Sprintf("Keyword clearly wins (%.2f vs %.2f). ", twoPlaces(s.KeywordBest), twoPlaces(s.SemanticBest))
			},
			Decision: mode.Keyword,
		},
		{
			Name: "scores_close",
			When: func(s Signals) bool {
				return s.Diff() < CloseScoreDiff && s.SemanticBest > MinHybridSemantic
			},
			Note: func(s Signals) string {
				return fmt.Sprintf("Scores are close (diff: %.2f). Running hybrid search. ", twoPlaces(s.Diff()))
			},
			Decision: mode.Hybrid,
		},
		{
			Name:     "default_semantic",
			When:     func(s Signals) bool { return s.WordCount > LongQueryWords },
			Note:     func(Signals) string { return "Defaulting to semantic." },
			Decision: mode.Semantic,
		},
		{
			Name:     "default_hybrid",
			When:     func(Signals) bool { return true },
			Note:     func(Signals) string { return "Defaulting to hybrid for balanced coverage. " },
			Decision: mode.Hybrid,
		},
	}
}

// twoPlaces rounds half away from zero before %.2f formatting, which would
// otherwise round exact halves such as 0.125 to even.
func twoPlaces(v float64) float64 { return result.Round(v, 2) }

// NewSignals derives rule inputs from a query and both rankings.
// A ranking without hits contributes a best score of 0.
func NewSignals(query string, semantic, keyword []result.Result) Signals {
	return Signals{
		WordCount:    len(strings.Fields(query)),
		SemanticBest: result.BestScore(semantic),
		KeywordBest:  result.BestScore(keyword),
	}
}

// Plan runs the rule chain for a query and its rankings.
func (p *Planner) Plan(query string, semantic, keyword []result.Result) Plan {
	return p.Evaluate(NewSignals(query, semantic, keyword))
}

// Evaluate runs the rule chain on precomputed signals.
func (p *Planner) Evaluate(s Signals) Plan {
	var reasoning strings.Builder
	for _, r := range p.rules {
		if r.When == nil || !r.When(s) {
			continue
		}
		if r.Note != nil {
			reasoning.WriteString(r.Note(s))
		}
		if r.Decision != "" {
			return Plan{Decision: r.Decision, Reasoning: reasoning.String()}
		}
	}
	return Plan{Decision: mode.Hybrid, Reasoning: reasoning.String()}
}
