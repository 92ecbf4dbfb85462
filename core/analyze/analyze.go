package analyze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seoscope/seoscope/core/enrich"
	"github.com/seoscope/seoscope/core/insight"
	"github.com/seoscope/seoscope/core/score"
)

// topRecommendations is how many keywords the ranked shortlist holds.
const topRecommendations = 5

// highOpportunityThreshold marks the opportunity score above which a keyword
// counts as high-opportunity in the summary.
const highOpportunityThreshold = 70

// InsightGenerator produces a structured website description with candidate
// keywords.
type InsightGenerator interface {
	Generate(ctx context.Context, content string) (*insight.Insight, error)
}

// KeywordEnricher fetches real search metrics for a keyword batch. The bool
// result reports availability; false means enrichment could not be performed
// and the analysis should continue without it.
type KeywordEnricher interface {
	Enrich(ctx context.Context, keywords []string) ([]enrich.Metric, bool)
}

// Summary aggregates metrics over all enriched keywords of one analysis.
type Summary struct {
	TotalMonthlySearches    int     `json:"total_monthly_searches"`
	AverageCPC              float64 `json:"average_cpc"`
	KeywordsAnalyzed        int     `json:"keywords_analyzed"`
	HighOpportunityKeywords int     `json:"high_opportunity_keywords"`
}

// Result is the complete outcome of one analysis run. Enhanced reports
// whether keyword enrichment succeeded; when it is false, Keywords carries
// the raw AI-suggested list and the enriched fields stay empty.
type Result struct {
	Website            insight.Insight         `json:"website_analysis"`
	Keywords           []string                `json:"keywords,omitempty"`
	EnrichedKeywords   []score.EnrichedKeyword `json:"enriched_keywords"`
	TopRecommendations []score.EnrichedKeyword `json:"top_recommendations"`
	Summary            Summary                 `json:"summary_metrics"`
	Enhanced           bool                    `json:"enhanced_analysis"`
}

// Analyzer runs the analysis pipeline over injected collaborators.
type Analyzer struct {
	insights InsightGenerator
	enricher KeywordEnricher
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEnricher enables search-volume enrichment. Without this option the
// analyzer produces basic (unenhanced) results only.
func WithEnricher(enricher KeywordEnricher) Option {
	return func(a *Analyzer) {
		a.enricher = enricher
	}
}

// WithLogger sets the logger for pipeline progress and degradation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Analyzer around the mandatory insight generator.
func New(insights InsightGenerator, opts ...Option) (*Analyzer, error) {
	if insights == nil {
		return nil, fmt.Errorf("insight generator is required")
	}
	a := &Analyzer{
		insights: insights,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Run executes the pipeline over pre-extracted website content.
//
// The stages are strictly sequential: generate insight, enrich keywords,
// score, rank, summarize. A failed insight call is fatal and returned as an
// error. Everything after that degrades gracefully: zero keywords
// short-circuit to a minimal result without touching the enricher, and a
// missing or unavailable enricher yields a basic result with Enhanced=false.
func (a *Analyzer) Run(ctx context.Context, content string) (*Result, error) {
	ins, err := a.insights.Generate(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	if len(ins.Keywords) == 0 {
		a.logger.Warn("no keywords generated from AI analysis")
		return &Result{
			Website:            *ins,
			EnrichedKeywords:   []score.EnrichedKeyword{},
			TopRecommendations: []score.EnrichedKeyword{},
		}, nil
	}

	if a.enricher == nil {
		a.logger.Info("returning basic analysis - search volume enrichment not configured")
		return a.basicResult(ins), nil
	}

	metrics, ok := a.enricher.Enrich(ctx, ins.Keywords)
	if !ok {
		a.logger.Warn("search volume data unavailable, returning basic analysis")
		return a.basicResult(ins), nil
	}

	enriched := make([]score.EnrichedKeyword, 0, len(metrics))
	for _, m := range metrics {
		enriched = append(enriched, score.Evaluate(m))
	}
	rank(enriched)

	top := enriched
	if len(top) > topRecommendations {
		top = top[:topRecommendations]
	}

	a.logger.Info("analysis completed", "keywords_analyzed", len(enriched))

	return &Result{
		Website:            *ins,
		EnrichedKeywords:   enriched,
		TopRecommendations: top,
		Summary:            summarize(enriched),
		Enhanced:           true,
	}, nil
}

// basicResult builds an unenhanced result carrying only the raw AI keywords.
func (a *Analyzer) basicResult(ins *insight.Insight) *Result {
	return &Result{
		Website:            *ins,
		Keywords:           ins.Keywords,
		EnrichedKeywords:   []score.EnrichedKeyword{},
		TopRecommendations: []score.EnrichedKeyword{},
	}
}
