package reasoning

import (
	"sort"

	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
)

// fallbackBest merges both rankings, semantic first, and returns the highest
// scoring hit. Equal scores keep merge order. Hits scoring 0 carry no signal
// and are never returned.
func fallbackBest(semantic, keyword []result.Result) (result.Result, bool) {
	merged := make([]result.Result, 0, len(semantic)+len(keyword))
	merged = append(merged, semantic...)
	merged = append(merged, keyword...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score() > merged[j].Score()
	})

	best, ok := result.Best(merged)
	if !ok || best.Score() <= 0 {
		return result.Result{}, false
	}
	return best, true
}
