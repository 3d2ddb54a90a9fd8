// Package company derives CompanyProfile intelligence from posting text
// and caches it in the company store keyed by company name.
package company

import (
	"log/slog"
	"strings"

	"github.com/treyhall/jobscout/internal/model"
	"github.com/treyhall/jobscout/internal/scoring"
)

// Profiler derives and caches company profiles. The derived fields are
// deterministic functions of the posting text; only CultureMatchScore
// depends on the candidate, so it is recomputed on every lookup instead
// of being cached.
type Profiler struct {
	store  model.CompanyStore
	prefs  []string
	logger *slog.Logger
}

// NewProfiler creates a profiler scoring culture match against the
// given candidate's preferences.
func NewProfiler(store model.CompanyStore, candidate model.CandidateProfile, logger *slog.Logger) *Profiler {
	return &Profiler{
		store:  store,
		prefs:  candidate.CulturePreferences,
		logger: logger,
	}
}

// Profile returns the company profile for companyName, deriving it from
// postingText on first encounter and loading it from the store after.
// Store failures are logged, never fatal: a fresh derivation is always
// possible, so profiling cannot fail the pipeline.
func (p *Profiler) Profile(companyName, postingText string) model.CompanyProfile {
	cached, ok, err := p.store.GetCompany(companyName)
	if err != nil {
		p.logger.Warn("company store lookup failed, deriving fresh", "company", companyName, "error", err)
	}
	if ok && err == nil {
		cached.CultureMatchScore = scoring.CultureFit(cached, p.prefs)
		return cached
	}

	profile := Derive(companyName, postingText)
	profile.CultureMatchScore = scoring.CultureFit(profile, p.prefs)

	if err := p.store.PutCompany(profile); err != nil {
		p.logger.Warn("failed to cache company profile", "company", companyName, "error", err)
	}

	return profile
}

// Derive builds a fresh CompanyProfile from posting text. Pure and
// deterministic; CultureMatchScore is left zero for the caller.
func Derive(companyName, postingText string) model.CompanyProfile {
	textLower := strings.ToLower(postingText)

	return model.CompanyProfile{
		Name:            companyName,
		Values:          extractValues(postingText),
		CultureKeywords: presentTerms(textLower, cultureVocabulary),
		WorkEnvironment: classifyEnvironment(textLower),
		GrowthStage:     classifyGrowthStage(textLower),
		TechStack:       presentTerms(textLower, techVocabulary),
		InnovationScore: innovationScore(textLower),
	}
}

// presentTerms returns the vocabulary terms present in the lowercased
// text, in vocabulary order.
func presentTerms(textLower string, vocabulary []string) []string {
	found := make([]string, 0, 4)
	for _, term := range vocabulary {
		if strings.Contains(textLower, term) {
			found = append(found, term)
		}
	}
	return found
}

// innovationScore is the fraction of innovation markers present in the
// text, scaled to 0-100.
func innovationScore(textLower string) float64 {
	hits := 0
	for _, marker := range innovationMarkers {
		if strings.Contains(textLower, marker) {
			hits++
		}
	}
	score := float64(hits) / float64(len(innovationMarkers)) * 100
	if score > 100 {
		score = 100
	}
	return score
}
