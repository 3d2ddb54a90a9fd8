// Package analyzer owns the full analysis pipeline for a posting URL:
// fetch, extract, score, strategize, persist.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/treyhall/jobscout/internal/extract"
	"github.com/treyhall/jobscout/internal/model"
	"github.com/treyhall/jobscout/internal/scoring"
	"github.com/treyhall/jobscout/internal/skills"
	"github.com/treyhall/jobscout/internal/strategy"
)

// Predictor estimates the 0-100 success probability for a posting given
// the other sub-scores. Implementations never fail; the deterministic
// formula is always available as a floor.
type Predictor interface {
	Predict(ctx context.Context, posting model.JobPosting, skillMatch, cultureFit float64) float64
}

// Profiler derives (or loads) the company profile for a posting.
type Profiler interface {
	Profile(companyName, postingText string) model.CompanyProfile
}

// Overall rating blend weights over the four sub-scores.
const (
	skillWeight   = 0.30
	cultureWeight = 0.25
	growthWeight  = 0.25
	successWeight = 0.20
)

// Persisted analyses keep at most this much description text.
const storedDescriptionLen = 500

// pipelineState tracks where a run is; logged at debug level.
type pipelineState string

const (
	stateFetching     pipelineState = "fetching"
	stateExtracting   pipelineState = "extracting"
	stateScoring      pipelineState = "scoring"
	stateStrategizing pipelineState = "strategizing"
	statePersisted    pipelineState = "persisted"
	stateFailed       pipelineState = "failed"
)

// Analyzer sequences the pipeline and persists the result.
type Analyzer struct {
	fetcher   model.DocumentFetcher
	matcher   *skills.Matcher
	profiler  Profiler
	predictor Predictor
	store     model.AnalysisStore
	candidate model.CandidateProfile
	logger    *slog.Logger
}

// New creates an analyzer wired with all its collaborators.
func New(
	fetcher model.DocumentFetcher,
	matcher *skills.Matcher,
	profiler Profiler,
	predictor Predictor,
	store model.AnalysisStore,
	candidate model.CandidateProfile,
	logger *slog.Logger,
) *Analyzer {
	return &Analyzer{
		fetcher:   fetcher,
		matcher:   matcher,
		profiler:  profiler,
		predictor: predictor,
		store:     store,
		candidate: candidate,
		logger:    logger,
	}
}

// Analyze runs the full pipeline for one posting URL. A fetch failure
// degrades to a placeholder posting rather than aborting, so a valid
// JobAnalysis always comes back unless ctx is cancelled. When err is
// non-nil but the analysis is non-zero, the error reports a persistence
// problem only and the in-memory analysis remains valid.
func (a *Analyzer) Analyze(ctx context.Context, url string) (model.JobAnalysis, error) {
	a.logState(url, stateFetching)
	posting := a.fetchPosting(ctx, url)
	return a.AnalyzePosting(ctx, url, posting)
}

// AnalyzePosting scores and persists an already-extracted posting. Watch
// mode uses this to avoid fetching a URL twice (once to filter, once to
// analyze).
func (a *Analyzer) AnalyzePosting(ctx context.Context, url string, posting model.JobPosting) (model.JobAnalysis, error) {
	if ctx.Err() != nil {
		a.logState(url, stateFailed)
		return model.JobAnalysis{}, fmt.Errorf("analysis of %s cancelled: %w", url, ctx.Err())
	}

	a.logState(url, stateScoring)
	// Skill match considers everything the posting asks for; missing
	// skills are derived from the hard requirements only.
	combined := make([]string, 0, len(posting.Requirements)+len(posting.PreferredQualifications))
	combined = append(combined, posting.Requirements...)
	combined = append(combined, posting.PreferredQualifications...)
	skillMatch := a.matcher.Score(combined)

	profile := a.profiler.Profile(posting.Company, posting.DisplayDescription)
	cultureFit := profile.CultureMatchScore
	growth := scoring.GrowthPotential(posting, profile)
	success := a.predictor.Predict(ctx, posting, skillMatch, cultureFit)

	overall := skillMatch*skillWeight + cultureFit*cultureWeight +
		growth*growthWeight + success*successWeight

	a.logState(url, stateStrategizing)
	analysis := model.JobAnalysis{
		JobID:                   model.JobID(url),
		URL:                     url,
		Title:                   posting.Title,
		Company:                 posting.Company,
		Location:                posting.Location,
		Description:             truncate(posting.DisplayDescription, storedDescriptionLen),
		Requirements:            posting.Requirements,
		PreferredQualifications: posting.PreferredQualifications,
		SalaryRange:             posting.SalaryRange,
		JobType:                 posting.JobType,
		CompanySize:             posting.CompanySize,
		Industry:                posting.Industry,
		SkillMatchScore:         skillMatch,
		CultureFitScore:         cultureFit,
		GrowthPotentialScore:    growth,
		SuccessProbability:      success,
		OverallRating:           overall,
		RequiredSkillsMissing:   a.matcher.Missing(posting.Requirements),
		CompetitiveAdvantages:   strategy.CompetitiveAdvantages(a.candidate, posting, skillMatch),
		ApplicationStrategy:     strategy.ApplicationStrategy(skillMatch, cultureFit),
		OptimalTiming:           strategy.OptimalTiming(overall),
		FollowUpStrategy:        strategy.FollowUp(profile, posting.CompanySize),
		AnalyzedAt:              time.Now().UTC(),
	}

	if err := a.store.SaveAnalysis(analysis); err != nil {
		// The analysis stays valid; only the write failed.
		a.logger.Warn("failed to persist analysis", "url", url, "error", err)
		return analysis, fmt.Errorf("persisting analysis of %s: %w", url, err)
	}

	a.logState(url, statePersisted)
	a.logger.Info("analysis complete",
		"company", analysis.Company,
		"title", analysis.Title,
		"overall", fmt.Sprintf("%.1f", analysis.OverallRating),
		"timing", analysis.OptimalTiming,
	)

	return analysis, nil
}

// ExtractPosting fetches and extracts without scoring, for callers that
// only need the structured posting (watch-mode filtering).
func (a *Analyzer) ExtractPosting(ctx context.Context, url string) model.JobPosting {
	return a.fetchPosting(ctx, url)
}

// fetchPosting retrieves and extracts the posting, degrading to a
// placeholder on any fetch error.
func (a *Analyzer) fetchPosting(ctx context.Context, url string) model.JobPosting {
	doc, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		a.logger.Warn("fetch failed, using placeholder posting", "url", url, "error", err)
		return placeholderPosting(url)
	}
	a.logState(url, stateExtracting)
	return extract.Extract(url, doc)
}

// placeholderPosting is the fully-defaulted record substituted when the
// document cannot be retrieved.
func placeholderPosting(url string) model.JobPosting {
	return model.JobPosting{
		URL:                     url,
		Title:                   model.DefaultTitle,
		Company:                 model.DefaultCompany,
		Location:                model.DefaultLocation,
		Description:             "job description could not be retrieved",
		DisplayDescription:      "Job description could not be retrieved",
		JobType:                 model.JobTypeUnknown,
		Requirements:            []string{"experience in relevant technologies"},
		PreferredQualifications: []string{},
		Industry:                model.IndustryTechnology,
		CompanySize:             model.SizeUnknown,
	}
}

func (a *Analyzer) logState(url string, s pipelineState) {
	a.logger.Debug("pipeline state", "url", url, "state", string(s))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
