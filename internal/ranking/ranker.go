// Package ranking orders scored hits for one search pass.
package ranking

import (
	"sort"

	"github.com/teejay382/jobtolk-search/internal/tokenizer"
	"github.com/teejay382/jobtolk-search/services"
)

// Rank filters, orders and truncates one pass of scored hits.
//
// For a non-empty query the output contains only score>0 hits, sorted
// by descending score and capped at maxResults. The sort is stable:
// ties keep the order the hits arrived in, since the scorer provides no
// secondary key.
//
// For an empty query scoring is bypassed entirely and the input is
// returned unmodified, preserving server order. An empty query means
// "show the coarse filter result", not "show nothing".
func Rank(q tokenizer.Query, hits []services.Hit, maxResults int) []services.Hit {
	if q.IsEmpty() {
		return hits
	}

	ranked := make([]services.Hit, 0, len(hits))
	for _, hit := range hits {
		if hit.Score > 0 {
			ranked = append(ranked, hit)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}
