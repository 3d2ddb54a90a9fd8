// Package scheduler owns the watch loop: re-check a fixed set of posting
// URLs on an interval and notify on new high-rating matches.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/treyhall/jobscout/internal/analyzer"
	"github.com/treyhall/jobscout/internal/model"
)

// Pause between URLs within one cycle.
const betweenURLs = 1 * time.Second

// Scheduler runs the analysis pipeline over watched URLs on a timer.
type Scheduler struct {
	analyzer  *analyzer.Analyzer
	filter    model.PostingFilter
	store     model.AnalysisStore
	notifier  model.Notifier
	urls      []string
	interval  time.Duration
	minRating float64
	logger    *slog.Logger
}

// NewScheduler creates a scheduler that re-checks all watched URLs at the
// given interval and notifies about analyses rated at or above minRating.
func NewScheduler(
	a *analyzer.Analyzer,
	filter model.PostingFilter,
	store model.AnalysisStore,
	notifier model.Notifier,
	urls []string,
	interval time.Duration,
	minRating float64,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		analyzer:  a,
		filter:    filter,
		store:     store,
		notifier:  notifier,
		urls:      urls,
		interval:  interval,
		minRating: minRating,
		logger:    logger,
	}
}

// Run starts the watch loop. It runs one immediate cycle, then ticks on
// the configured interval. It returns nil when ctx is cancelled (graceful
// shutdown).
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting watch loop",
		"interval", s.interval.String(),
		"urls", len(s.urls),
		"min_rating", s.minRating,
	)

	// Run one immediate cycle.
	s.checkAll(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down watch loop")
			return nil
		case <-time.After(s.interval):
			s.checkAll(ctx)
		}
	}
}

// checkAll runs one watch cycle over every URL sequentially with a small
// pause between them, then notifies about the cycle's matches in one call.
func (s *Scheduler) checkAll(ctx context.Context) {
	var matches []model.JobAnalysis

	for i, url := range s.urls {
		if ctx.Err() != nil {
			return
		}

		analysis, err := s.check(ctx, url)
		if err != nil {
			s.logger.Error("watch check failed", "url", url, "error", err)
		} else if analysis != nil {
			matches = append(matches, *analysis)
		}

		// Small sleep between URLs to be polite, except after the last one.
		if i < len(s.urls)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(betweenURLs):
			}
		}
	}

	if len(matches) == 0 {
		s.logger.Debug("watch cycle complete, no new matches")
		return
	}
	if err := s.notifier.Notify(matches); err != nil {
		s.logger.Error("notification failed", "matches", len(matches), "error", err)
	}
}

// check runs the pipeline for one URL. It returns a non-nil analysis only
// when the posting passes the filter, has not been analyzed before, and
// rates at or above the notification threshold.
func (s *Scheduler) check(ctx context.Context, url string) (*model.JobAnalysis, error) {
	seen, err := s.store.HasAnalysis(model.JobID(url))
	if err != nil {
		return nil, fmt.Errorf("checking history: %w", err)
	}
	if seen {
		s.logger.Debug("already analyzed, skipping", "url", url)
		return nil, nil
	}

	posting := s.analyzer.ExtractPosting(ctx, url)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if !s.filter.Match(posting) {
		s.logger.Debug("posting filtered out", "url", url, "title", posting.Title)
		return nil, nil
	}

	analysis, err := s.analyzer.AnalyzePosting(ctx, url, posting)
	if err != nil && analysis.JobID == "" {
		return nil, err
	}

	if analysis.OverallRating < s.minRating {
		s.logger.Debug("below notification threshold",
			"url", url,
			"overall", fmt.Sprintf("%.1f", analysis.OverallRating),
		)
		return nil, nil
	}
	return &analysis, nil
}
