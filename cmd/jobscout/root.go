package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/treyhall/jobscout/internal/analyzer"
	"github.com/treyhall/jobscout/internal/company"
	"github.com/treyhall/jobscout/internal/config"
	"github.com/treyhall/jobscout/internal/fetch"
	"github.com/treyhall/jobscout/internal/model"
	"github.com/treyhall/jobscout/internal/notifier"
	"github.com/treyhall/jobscout/internal/predict"
	"github.com/treyhall/jobscout/internal/ratelimit"
	"github.com/treyhall/jobscout/internal/retry"
	"github.com/treyhall/jobscout/internal/skills"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "Job analysis and scoring engine",
	Long:  "JobScout fetches job postings, scores them against your profile, and tells you where to apply first.",
	// Default to `watch` so that `jobscout` with no args runs the daemon.
	RunE: runWatch,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBSCOUT_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBSCOUT_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("JOBSCOUT_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Notifier {
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack notifier")
		return notifier.NewSlackNotifier(cfg.Notification.WebhookURL, httpClient, logger)
	default:
		return notifier.NewLogNotifier(logger)
	}
}

// buildFetcher assembles the fetch chain: plain HTTP wrapped with
// per-host rate limiting, wrapped with retries.
func buildFetcher(cfg *config.Config, logger *slog.Logger) model.DocumentFetcher {
	httpClient := &http.Client{Timeout: cfg.Fetch.Timeout}

	var fetcher model.DocumentFetcher = fetch.NewHTTPFetcher(httpClient)
	limiter := ratelimit.NewHostRateLimiter(cfg.Fetch.MinDelay)
	fetcher = ratelimit.NewRateLimitedFetcher(fetcher, limiter)
	fetcher = retry.NewRetryFetcher(fetcher, cfg.Fetch.MaxRetries, cfg.Fetch.RetryDelay, logger)
	return fetcher
}

// buildPredictor returns the advisor-backed predictor when AI is
// enabled, the deterministic formula otherwise.
func buildPredictor(cfg *config.Config, logger *slog.Logger) analyzer.Predictor {
	if !cfg.AI.Enabled {
		return predict.NewDeterministicPredictor(cfg.Profile)
	}

	httpClient := &http.Client{Timeout: cfg.AI.Timeout + 5*time.Second}
	provider := predict.NewOpenAIProvider(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, httpClient)
	logger.Info("using AI success advisor", "model", cfg.AI.Model)
	return predict.NewAdvisorPredictor(provider, cfg.Profile, cfg.AI.Timeout, logger)
}

// buildAnalyzer wires the full pipeline around the given stores.
func buildAnalyzer(cfg *config.Config, companies model.CompanyStore, analyses model.AnalysisStore, logger *slog.Logger) *analyzer.Analyzer {
	return analyzer.New(
		buildFetcher(cfg, logger),
		skills.NewMatcher(cfg.Profile),
		company.NewProfiler(companies, cfg.Profile, logger),
		buildPredictor(cfg, logger),
		analyses,
		cfg.Profile,
		logger,
	)
}
