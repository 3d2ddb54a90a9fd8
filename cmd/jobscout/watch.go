package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/treyhall/jobscout/internal/filter"
	"github.com/treyhall/jobscout/internal/scheduler"
	"github.com/treyhall/jobscout/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch configured URLs for high-rating postings",
	Long:  "Re-checks every watch.urls entry on an interval and notifies on new analyses above the rating threshold; blocks until SIGINT/SIGTERM.",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if len(cfg.Watch.URLs) == 0 {
		logger.Error("no watch.urls configured")
		os.Exit(1)
	}

	logger.Info("config loaded",
		"interval", cfg.Watch.Interval.String(),
		"urls", len(cfg.Watch.URLs),
		"min_rating", cfg.Watch.MinRating,
		"title_keywords", len(cfg.Watch.Filters.TitleKeywords),
		"locations", len(cfg.Watch.Filters.Locations),
	)

	sqlStore, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	httpClient := &http.Client{Timeout: 30 * time.Second}
	n := setupNotifier(cfg, httpClient, logger)
	postingFilter := filter.NewKeywordFilter(
		cfg.Watch.Filters.TitleKeywords,
		cfg.Watch.Filters.Locations,
	)
	a := buildAnalyzer(cfg, sqlStore, sqlStore, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewScheduler(
		a,
		postingFilter,
		sqlStore,
		n,
		cfg.Watch.URLs,
		cfg.Watch.Interval,
		cfg.Watch.MinRating,
		logger,
	)
	if err := sched.Run(ctx); err != nil {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
