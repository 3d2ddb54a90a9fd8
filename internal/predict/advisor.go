package predict

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"text/template"
	"time"

	"github.com/treyhall/jobscout/internal/model"
)

var firstIntegerRe = regexp.MustCompile(`\d+`)

// AdvisorPredictor asks a language model for the success probability
// and falls back to the deterministic formula whenever the advisor is
// unreachable, times out, or answers with anything non-numeric. It
// never fails: some probability always comes back.
type AdvisorPredictor struct {
	provider  Provider
	fallback  *DeterministicPredictor
	candidate model.CandidateProfile
	tmpl      *template.Template
	timeout   time.Duration
	logger    *slog.Logger
}

// NewAdvisorPredictor creates an advisor-backed predictor with the
// given per-request timeout.
func NewAdvisorPredictor(provider Provider, candidate model.CandidateProfile, timeout time.Duration, logger *slog.Logger) *AdvisorPredictor {
	return &AdvisorPredictor{
		provider:  provider,
		fallback:  NewDeterministicPredictor(candidate),
		candidate: candidate,
		tmpl:      SuccessPredictionTemplate,
		timeout:   timeout,
		logger:    logger,
	}
}

// promptContext is the structured record rendered into the advisor prompt.
type promptContext struct {
	Title           string
	Company         string
	Industry        model.Industry
	JobType         model.JobType
	SkillMatch      float64
	CultureFit      float64
	CurrentRole     string
	TargetRole      string
	ExperienceYears int
	SuccessRate     float64
}

// Predict asks the advisor for a 0-100 probability and parses the first
// integer token from its reply. Any failure falls through to the
// deterministic prediction.
func (p *AdvisorPredictor) Predict(ctx context.Context, posting model.JobPosting, skillMatch, cultureFit float64) float64 {
	prob, err := p.ask(ctx, posting, skillMatch, cultureFit)
	if err != nil {
		p.logger.Warn("advisor prediction failed, using deterministic fallback",
			"company", posting.Company,
			"error", err,
		)
		return p.fallback.Predict(ctx, posting, skillMatch, cultureFit)
	}
	return prob
}

func (p *AdvisorPredictor) ask(ctx context.Context, posting model.JobPosting, skillMatch, cultureFit float64) (float64, error) {
	var promptBuf bytes.Buffer
	err := p.tmpl.Execute(&promptBuf, promptContext{
		Title:           posting.Title,
		Company:         posting.Company,
		Industry:        posting.Industry,
		JobType:         posting.JobType,
		SkillMatch:      skillMatch,
		CultureFit:      cultureFit,
		CurrentRole:     p.candidate.CurrentRole,
		TargetRole:      p.candidate.TargetRole,
		ExperienceYears: p.candidate.ExperienceYears,
		SuccessRate:     p.candidate.SuccessRate * 100,
	})
	if err != nil {
		return 0, fmt.Errorf("render prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return 0, fmt.Errorf("advisor complete: %w", err)
	}

	token := firstIntegerRe.FindString(raw)
	if token == "" {
		return 0, fmt.Errorf("no numeric token in advisor response %q", raw)
	}

	prob, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("parse advisor response %q: %w", raw, err)
	}

	return clamp(clamp(prob, 0, 100), minProbability, 100), nil
}
