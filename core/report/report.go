package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/seoscope/seoscope/core/analyze"
	"github.com/seoscope/seoscope/core/score"
)

const (
	wideRule   = 80
	narrowRule = 50
)

// Render writes the human-readable analysis report to w. Enhanced results get
// the full per-keyword breakdown with strategic recommendations; basic
// results get the website overview plus the raw keyword list.
func Render(w io.Writer, r *analyze.Result) {
	fmt.Fprintln(w)
	rule(w, "═", wideRule)
	fmt.Fprintln(w, "SEO ANALYSIS REPORT")
	rule(w, "═", wideRule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "WEBSITE OVERVIEW")
	rule(w, "─", narrowRule)
	fmt.Fprintf(w, "Company:     %s\n", orNA(r.Website.Name))
	fmt.Fprintf(w, "Industry:    %s\n", orNA(r.Website.Niche))
	fmt.Fprintf(w, "Description: %s\n", orNA(r.Website.Description))

	if !r.Enhanced {
		renderBasic(w, r)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "KEYWORD OPPORTUNITY ANALYSIS")
	rule(w, "─", narrowRule)
	fmt.Fprintf(w, "Total keywords analyzed:               %d\n", r.Summary.KeywordsAnalyzed)
	fmt.Fprintf(w, "High-opportunity keywords (>70 score): %d\n", r.Summary.HighOpportunityKeywords)
	fmt.Fprintf(w, "Combined monthly search volume:        %d\n", r.Summary.TotalMonthlySearches)
	fmt.Fprintf(w, "Average cost per click:                $%.2f\n", r.Summary.AverageCPC)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "DETAILED KEYWORD ANALYSIS")
	rule(w, "─", wideRule)

	for idx, kw := range r.EnrichedKeywords {
		fmt.Fprintf(w, "\n%s %d. %s\n", statusMarker(kw.OpportunityScore), idx+1, strings.ToUpper(kw.Keyword))
		fmt.Fprintf(w, "   Monthly Searches:  %d\n", kw.SearchVolume)
		fmt.Fprintf(w, "   Cost Per Click:    $%.2f\n", kw.CPC)
		fmt.Fprintf(w, "   Competition:       %s (%d/100)\n", kw.Competition, kw.CompetitionIndex)
		fmt.Fprintf(w, "   Difficulty Score:  %d/100\n", kw.DifficultyScore)
		fmt.Fprintf(w, "   Opportunity Score: %.1f/100\n", kw.OpportunityScore)
		fmt.Fprintln(w, "   Strategic Insights:")
		for _, insight := range kw.SEOInsights {
			fmt.Fprintf(w, "      - %s\n", insight)
		}
	}

	renderRecommendations(w, r.TopRecommendations)

	fmt.Fprintln(w)
	rule(w, "═", wideRule)
	fmt.Fprintln(w, "Analysis completed successfully")
	rule(w, "═", wideRule)
}

// RenderJSON writes the full result as indented JSON, for piping into other
// tooling.
func RenderJSON(w io.Writer, r *analyze.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderBasic(w io.Writer, r *analyze.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "KEYWORD SUGGESTIONS (search volume data unavailable)")
	rule(w, "─", narrowRule)
	if len(r.Keywords) == 0 {
		fmt.Fprintln(w, "No keywords generated.")
	}
	for i, kw := range r.Keywords {
		fmt.Fprintf(w, "%d. %s\n", i+1, kw)
	}
	fmt.Fprintln(w)
	rule(w, "═", wideRule)
}

func renderRecommendations(w io.Writer, top []score.EnrichedKeyword) {
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "TOP %d STRATEGIC RECOMMENDATIONS\n", len(top))
	rule(w, "─", narrowRule)
	for i, kw := range top {
		fmt.Fprintf(w, "%d. %s (Opportunity Score: %.1f/100)\n", i+1, titleCase(kw.Keyword), kw.OpportunityScore)
		fmt.Fprintf(w, "   -> %d monthly searches, $%.2f CPC\n", kw.SearchVolume, kw.CPC)
	}
}

// statusMarker maps an opportunity score to a traffic-light style bullet.
func statusMarker(opportunity float64) string {
	switch {
	case opportunity > 70:
		return "●"
	case opportunity > 50:
		return "◐"
	default:
		return "○"
	}
}

func rule(w io.Writer, glyph string, width int) {
	fmt.Fprintln(w, strings.Repeat(glyph, width))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
