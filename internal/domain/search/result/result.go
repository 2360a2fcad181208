package result

import "math"

// Result is a single ranked hit.
type Result struct {
	index int
	text  string
	score float64
}

// New creates a ranked hit for the corpus document at index.
func New(index int, text string, score float64) Result {
	return Result{index: index, text: text, score: score}
}

// Index returns the corpus position of the document.
func (r *Result) Index() int { return r.index }

// Text returns the document text.
func (r *Result) Text() string { return r.text }

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }

// Rounded returns a copy of r with its score clamped to [0,1] and rounded
// to the given number of decimal places.
func (r *Result) Rounded(places int) Result {
	return Result{index: r.index, text: r.text, score: Round(Clamp(r.score), places)}
}

// Best returns the first hit of a ranked list, if any.
func Best(hits []Result) (Result, bool) {
	if len(hits) == 0 {
		return Result{}, false
	}
	return hits[0], true
}

// BestScore returns the score of the first hit, or 0 for an empty list.
func BestScore(hits []Result) float64 {
	if len(hits) == 0 {
		return 0
	}
	return hits[0].score
}

// Clamp bounds a score to [0,1]. NaN becomes 0.
func Clamp(score float64) float64 {
	switch {
	case math.IsNaN(score), score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
