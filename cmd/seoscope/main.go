package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/seoscope/seoscope/core/analyze"
	"github.com/seoscope/seoscope/core/enrich"
	"github.com/seoscope/seoscope/core/insight"
	"github.com/seoscope/seoscope/core/report"
	"github.com/seoscope/seoscope/internal/utils"
	"github.com/seoscope/seoscope/providers/ai/openai"
	"github.com/seoscope/seoscope/providers/dataforseo"
	"github.com/seoscope/seoscope/providers/webfetch"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	urlFlag := flag.String("url", "", "website URL to analyze (overrides SAAS_URL)")
	modelFlag := flag.String("model", insight.DefaultModel, "language model used for insight generation")
	jsonFlag := flag.Bool("json", false, "emit the analysis result as JSON instead of the text report")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(context.Background(), *urlFlag, *modelFlag, *jsonFlag); err != nil {
		slog.Error("SEO analysis failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, url, model string, jsonOut bool) error {
	targetURL := url
	if targetURL == "" {
		targetURL = os.Getenv("SAAS_URL")
	}
	if targetURL == "" {
		return fmt.Errorf("no website URL provided: pass -url or set SAAS_URL")
	}

	// Credential checks happen before any network activity.
	if os.Getenv("OPENAI_API_KEY") == "" {
		return fmt.Errorf("OpenAI API key is required: set OPENAI_API_KEY")
	}

	generator := insight.NewGenerator(openai.NewOpenAIProvider()).WithModel(model)

	opts := []analyze.Option{}
	login, password := os.Getenv("DATAFORSEO_LOGIN"), os.Getenv("DATAFORSEO_PASSWORD")
	if login != "" && password != "" {
		opts = append(opts, analyze.WithEnricher(enrich.NewSearchVolumeEnricher(dataforseo.NewClient(login, password))))
	} else {
		slog.Warn("DataForSEO credentials not provided, search volume data will be unavailable")
	}

	analyzer, err := analyze.New(generator, opts...)
	if err != nil {
		return err
	}

	timer := utils.NewTimer()

	slog.Info("extracting website content", "url", targetURL)
	page, err := webfetch.Fetch(ctx, webfetch.Input{URL: targetURL})
	if err != nil {
		return fmt.Errorf("failed to fetch website content: %w", err)
	}
	slog.Info("content extracted", "url", page.URL, "chars", len(page.Text))

	result, err := analyzer.Run(ctx, page.Text)
	if err != nil {
		return err
	}

	timer.Stop()
	slog.Info("analysis finished", "enhanced", result.Enhanced, "duration", timer.GetDuration())

	if jsonOut {
		return report.RenderJSON(os.Stdout, result)
	}
	report.Render(os.Stdout, result)
	return nil
}
