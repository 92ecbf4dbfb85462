package score

import (
	"math"

	"github.com/seoscope/seoscope/core/enrich"
)

// EnrichedKeyword is a keyword metric annotated with derived SEO scores and
// advisory insights.
type EnrichedKeyword struct {
	enrich.Metric

	DifficultyScore  int      `json:"difficulty_score"`
	OpportunityScore float64  `json:"opportunity_score"`
	SEOInsights      []string `json:"seo_insights"`
}

// Evaluate computes all derived scores and insights for a single metric.
func Evaluate(m enrich.Metric) EnrichedKeyword {
	return EnrichedKeyword{
		Metric:           m,
		DifficultyScore:  Difficulty(m.CompetitionIndex, m.SearchVolume),
		OpportunityScore: Opportunity(m.SearchVolume, m.CompetitionIndex),
		SEOInsights:      Insights(m.SearchVolume, m.CompetitionIndex, m.CPC),
	}
}

// Difficulty estimates ranking difficulty on a 0-100 scale (higher = more
// difficult). The base tier comes from the competition index; high search
// volume adds a surcharge since popular keywords attract more competitors.
// The result is clamped at 100.
func Difficulty(competitionIndex, searchVolume int) int {
	var base int
	switch {
	case competitionIndex >= 80:
		base = 85
	case competitionIndex >= 60:
		base = 65
	case competitionIndex >= 40:
		base = 45
	default:
		base = 25
	}

	switch {
	case searchVolume > 10000:
		base += 10
	case searchVolume > 1000:
		base += 5
	}

	return min(100, base)
}

// Opportunity combines search volume and competition into a 0-100 score
// (higher = better opportunity), rounded to one decimal. Volume contributes
// up to 50 points (capped at 10000 monthly searches); low competition
// contributes the other 50.
//
// The competition component is intentionally not clamped: a competition
// index above 100 (outside the provider's documented range) drives the
// component negative rather than being silently corrected.
func Opportunity(searchVolume, competitionIndex int) float64 {
	volumeScore := math.Min(50, float64(searchVolume)/200)
	competitionScore := 50 - float64(competitionIndex)/2

	return math.Round((volumeScore+competitionScore)*10) / 10
}

// Insights returns exactly three advisory strings covering, in order, traffic
// potential, competition, and commercial value.
func Insights(searchVolume, competitionIndex int, cpc float64) []string {
	insights := make([]string, 0, 3)

	switch {
	case searchVolume > 5000:
		insights = append(insights, "High search volume - excellent traffic potential")
	case searchVolume > 1000:
		insights = append(insights, "Good search volume - solid traffic opportunity")
	default:
		insights = append(insights, "Low search volume - niche targeting opportunity")
	}

	switch {
	case competitionIndex < 50:
		insights = append(insights, "Low competition - favorable ranking conditions")
	case competitionIndex < 80:
		insights = append(insights, "Medium competition - moderate SEO effort required")
	default:
		insights = append(insights, "High competition - intensive SEO strategy needed")
	}

	switch {
	case cpc > 5:
		insights = append(insights, "High commercial value - strong monetization potential")
	case cpc > 1:
		insights = append(insights, "Medium commercial value - decent revenue opportunity")
	default:
		insights = append(insights, "Low commercial value - primarily informational intent")
	}

	return insights
}
