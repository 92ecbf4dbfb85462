package score

import (
	"reflect"
	"testing"

	"github.com/seoscope/seoscope/core/enrich"
)

func TestDifficultyBaseTiers(t *testing.T) {
	tests := []struct {
		name             string
		competitionIndex int
		want             int
	}{
		{name: "zero index", competitionIndex: 0, want: 25},
		{name: "just below low tier", competitionIndex: 39, want: 25},
		{name: "low tier boundary", competitionIndex: 40, want: 45},
		{name: "just below medium tier", competitionIndex: 59, want: 45},
		{name: "medium tier boundary", competitionIndex: 60, want: 65},
		{name: "just below high tier", competitionIndex: 79, want: 65},
		{name: "high tier boundary", competitionIndex: 80, want: 85},
		{name: "maximum index", competitionIndex: 100, want: 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// search volume of zero leaves the base tier unadjusted
			got := Difficulty(tt.competitionIndex, 0)
			if got != tt.want {
				t.Errorf("Difficulty(%d, 0) = %d, want %d", tt.competitionIndex, got, tt.want)
			}
		})
	}
}

func TestDifficultyVolumeAdjustment(t *testing.T) {
	tests := []struct {
		name         string
		searchVolume int
		want         int
	}{
		{name: "no adjustment at 1000", searchVolume: 1000, want: 25},
		{name: "small adjustment above 1000", searchVolume: 1001, want: 30},
		{name: "small adjustment at 10000", searchVolume: 10000, want: 30},
		{name: "large adjustment above 10000", searchVolume: 10001, want: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difficulty(0, tt.searchVolume)
			if got != tt.want {
				t.Errorf("Difficulty(0, %d) = %d, want %d", tt.searchVolume, got, tt.want)
			}
		})
	}
}

func TestDifficultyClampedAt100(t *testing.T) {
	// 85 base + 10 volume adjustment would be 95; push base with a huge
	// index and confirm the cap holds anyway.
	if got := Difficulty(100, 20000); got != 95 {
		t.Errorf("Difficulty(100, 20000) = %d, want 95", got)
	}
	if got := Difficulty(100, 20000); got > 100 {
		t.Errorf("Difficulty must never exceed 100, got %d", got)
	}
}

func TestOpportunity(t *testing.T) {
	tests := []struct {
		name             string
		searchVolume     int
		competitionIndex int
		want             float64
	}{
		{name: "best case", searchVolume: 10000, competitionIndex: 0, want: 100.0},
		{name: "worst case", searchVolume: 0, competitionIndex: 100, want: 0.0},
		{name: "volume capped at 50 points", searchVolume: 100000, competitionIndex: 0, want: 100.0},
		{name: "mid range", searchVolume: 12000, competitionIndex: 70, want: 65.0},
		{name: "fractional volume component", searchVolume: 150, competitionIndex: 0, want: 50.8},
		{name: "unclamped negative competition component", searchVolume: 0, competitionIndex: 120, want: -10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Opportunity(tt.searchVolume, tt.competitionIndex)
			if got != tt.want {
				t.Errorf("Opportunity(%d, %d) = %v, want %v", tt.searchVolume, tt.competitionIndex, got, tt.want)
			}
		})
	}
}

func TestInsights(t *testing.T) {
	tests := []struct {
		name             string
		searchVolume     int
		competitionIndex int
		cpc              float64
		want             []string
	}{
		{
			name:         "high volume low competition high value",
			searchVolume: 5001, competitionIndex: 49, cpc: 5.01,
			want: []string{
				"High search volume - excellent traffic potential",
				"Low competition - favorable ranking conditions",
				"High commercial value - strong monetization potential",
			},
		},
		{
			name:         "good volume medium competition medium value",
			searchVolume: 1001, competitionIndex: 50, cpc: 1.01,
			want: []string{
				"Good search volume - solid traffic opportunity",
				"Medium competition - moderate SEO effort required",
				"Medium commercial value - decent revenue opportunity",
			},
		},
		{
			name:         "low volume high competition informational",
			searchVolume: 1000, competitionIndex: 80, cpc: 1,
			want: []string{
				"Low search volume - niche targeting opportunity",
				"High competition - intensive SEO strategy needed",
				"Low commercial value - primarily informational intent",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insights(tt.searchVolume, tt.competitionIndex, tt.cpc)
			if len(got) != 3 {
				t.Fatalf("Insights returned %d strings, want exactly 3", len(got))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Insights(%d, %d, %v) = %v, want %v", tt.searchVolume, tt.competitionIndex, tt.cpc, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	kw := Evaluate(enrich.Metric{
		Keyword:          "running shoes",
		SearchVolume:     12000,
		Competition:      "MEDIUM",
		CompetitionIndex: 70,
		CPC:              3.5,
	})

	if kw.DifficultyScore != 75 {
		t.Errorf("DifficultyScore = %d, want 75", kw.DifficultyScore)
	}
	if kw.OpportunityScore != 65.0 {
		t.Errorf("OpportunityScore = %v, want 65.0", kw.OpportunityScore)
	}
	want := []string{
		"High search volume - excellent traffic potential",
		"Medium competition - moderate SEO effort required",
		"Medium commercial value - decent revenue opportunity",
	}
	if !reflect.DeepEqual(kw.SEOInsights, want) {
		t.Errorf("SEOInsights = %v, want %v", kw.SEOInsights, want)
	}
	if kw.Keyword != "running shoes" || kw.SearchVolume != 12000 {
		t.Errorf("Evaluate must carry the metric through unchanged, got %+v", kw.Metric)
	}
}
