package analyze

import (
	"testing"

	"github.com/seoscope/seoscope/core/enrich"
	"github.com/seoscope/seoscope/core/score"
)

func TestRankIsStable(t *testing.T) {
	// "alpha" and "beta" share identical metrics and therefore identical
	// opportunity scores; their input order must survive the sort.
	keywords := []score.EnrichedKeyword{
		score.Evaluate(enrich.Metric{Keyword: "alpha", SearchVolume: 2000, CompetitionIndex: 40}),
		score.Evaluate(enrich.Metric{Keyword: "beta", SearchVolume: 2000, CompetitionIndex: 40}),
		score.Evaluate(enrich.Metric{Keyword: "gamma", SearchVolume: 10000, CompetitionIndex: 0}),
	}

	rank(keywords)

	wantOrder := []string{"gamma", "alpha", "beta"}
	for i, want := range wantOrder {
		if keywords[i].Keyword != want {
			t.Errorf("rank %d = %s, want %s", i, keywords[i].Keyword, want)
		}
	}
}

func TestSummarizeEmptyList(t *testing.T) {
	s := summarize(nil)

	if s.AverageCPC != 0 {
		t.Errorf("AverageCPC over empty list = %v, want 0", s.AverageCPC)
	}
	if s.TotalMonthlySearches != 0 || s.KeywordsAnalyzed != 0 || s.HighOpportunityKeywords != 0 {
		t.Errorf("expected all-zero summary for empty list, got %+v", s)
	}
}

func TestSummarizeRoundsAverageCPC(t *testing.T) {
	keywords := []score.EnrichedKeyword{
		score.Evaluate(enrich.Metric{Keyword: "a", CPC: 1.005}),
		score.Evaluate(enrich.Metric{Keyword: "b", CPC: 2.004}),
	}

	s := summarize(keywords)

	// (1.005 + 2.004) / 2 = 1.5045 -> 1.5 after rounding to two decimals
	if s.AverageCPC != 1.5 {
		t.Errorf("AverageCPC = %v, want 1.5", s.AverageCPC)
	}
}
