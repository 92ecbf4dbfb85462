package insight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seoscope/seoscope/core/parse"
	"github.com/seoscope/seoscope/providers/ai"
)

// DefaultModel is the model used when the caller does not pick one.
const DefaultModel = "gpt-4"

// temperature keeps keyword generation mostly deterministic.
const temperature = 0.3

const systemPrompt = "You are a professional SEO analyst with expertise in keyword research " +
	"and content strategy. Analyze websites with precision and provide " +
	"actionable insights."

const userPromptFormat = `Analyze this website content and provide a comprehensive SEO assessment.

Required JSON format:
{
    "Name": "Website/Company name",
    "Description": "Professional description (2-3 sentences)",
    "Niche": "Primary business category/industry",
    "Keywords": ["list", "of", "relevant", "SEO", "keywords"]
}

Focus on:
- High-value commercial keywords
- Long-tail keyword opportunities
- Industry-specific terminology
- User intent alignment

Website content:
%s`

// Insight is the structured description the model produced for a website.
// Keyword order is preserved as returned by the model. Degraded marks
// insights substituted after a parse failure; it is never serialized.
type Insight struct {
	Name        string   `json:"Name"`
	Description string   `json:"Description"`
	Niche       string   `json:"Niche"`
	Keywords    []string `json:"Keywords"`

	Degraded bool `json:"-"`
}

// Generator produces website insights through an injected LLM provider.
type Generator struct {
	provider ai.Provider
	model    string
	logger   *slog.Logger
}

// NewGenerator creates a Generator backed by the given provider, using
// [DefaultModel] until overridden with [Generator.WithModel].
func NewGenerator(provider ai.Provider) *Generator {
	return &Generator{
		provider: provider,
		model:    DefaultModel,
		logger:   slog.Default(),
	}
}

// WithModel sets the model identifier sent to the provider.
func (g *Generator) WithModel(model string) *Generator {
	if model != "" {
		g.model = model
	}
	return g
}

// WithLogger sets the logger used for degraded-path warnings.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// Generate asks the model to analyze the website content and returns the
// structured insight.
//
// Transport-level failures (the provider call itself fails) are returned as
// errors. A reply that cannot be parsed as the expected JSON object is not an
// error: Generate logs a warning and returns a placeholder insight with
// Degraded set and an empty keyword list.
func (g *Generator) Generate(ctx context.Context, content string) (*Insight, error) {
	resp, err := g.provider.SendMessage(ctx, ai.ChatRequest{
		Model:        g.model,
		SystemPrompt: systemPrompt,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: fmt.Sprintf(userPromptFormat, content)},
		},
		GenerationConfig: &ai.GenerationConfig{Temperature: temperature},
	})
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	ins := g.parseResponse(resp.Content)
	if !ins.Degraded {
		g.logger.Info("insight generated", "name", ins.Name, "niche", ins.Niche, "keywords", len(ins.Keywords))
	}
	return ins, nil
}

// parseResponse extracts an Insight from the raw model reply, falling back to
// a degraded placeholder when the reply is not usable JSON.
func (g *Generator) parseResponse(raw string) *Insight {
	clean := parse.StripCodeFence(raw)

	// Some models emit lowercase keys despite the requested format.
	parsed, err := parse.JSONAs[struct {
		Insight
		KeywordsLower []string `json:"keywords"`
	}](clean)
	if err != nil {
		g.logger.Warn("failed to parse model response as JSON, using fallback insight", "error", err.Error())
		return &Insight{
			Name:        "Unknown",
			Description: "Analysis parsing failed",
			Niche:       "Unknown",
			Keywords:    []string{},
			Degraded:    true,
		}
	}

	ins := parsed.Insight
	if len(ins.Keywords) == 0 {
		ins.Keywords = parsed.KeywordsLower
	}
	return &ins
}
