// Package notifier reports high-rating analyses found in watch mode.
package notifier

import (
	"fmt"
	"log/slog"

	"github.com/treyhall/jobscout/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes matching analyses to the given logger as structured messages.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each analysis via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs each analysis with company, title, overall rating, timing,
// and URL. Returns nil (stdout logging does not fail).
func (n *LogNotifier) Notify(analyses []model.JobAnalysis) error {
	for _, a := range analyses {
		n.logger.Info("high-rating job found",
			"company", a.Company,
			"title", a.Title,
			"overall", fmt.Sprintf("%.1f", a.OverallRating),
			"timing", a.OptimalTiming,
			"url", a.URL,
		)
	}
	return nil
}
