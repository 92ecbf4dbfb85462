package analyze

import (
	"math"
	"sort"

	"github.com/seoscope/seoscope/core/score"
)

// rank orders keywords by opportunity score descending. The sort is stable:
// keywords with equal scores keep the order the provider returned them in.
func rank(keywords []score.EnrichedKeyword) {
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].OpportunityScore > keywords[j].OpportunityScore
	})
}

// summarize aggregates totals over the enriched keyword list. An empty list
// yields an all-zero summary; the average CPC in particular is 0 rather than
// a division by zero.
func summarize(keywords []score.EnrichedKeyword) Summary {
	s := Summary{KeywordsAnalyzed: len(keywords)}

	var totalCPC float64
	for _, kw := range keywords {
		s.TotalMonthlySearches += kw.SearchVolume
		totalCPC += kw.CPC
		if kw.OpportunityScore > highOpportunityThreshold {
			s.HighOpportunityKeywords++
		}
	}

	if len(keywords) > 0 {
		s.AverageCPC = math.Round(totalCPC/float64(len(keywords))*100) / 100
	}
	return s
}
