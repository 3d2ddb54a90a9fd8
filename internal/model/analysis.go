package model

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Timing is the recommended application window.
type Timing string

const (
	TimingImmediate       Timing = "immediate"
	TimingWithin24Hours   Timing = "within_24_hours"
	TimingWithinWeek      Timing = "within_week"
	TimingAfterSkillDevel Timing = "after_skill_development"
)

// JobAnalysis is the immutable result of one full pipeline run:
// the extracted posting, the four sub-scores, the blended overall
// rating, and the derived strategy artifacts. Persisted append-only,
// one record per run.
type JobAnalysis struct {
	JobID string `json:"job_id"`

	URL                     string      `json:"url"`
	Title                   string      `json:"title"`
	Company                 string      `json:"company"`
	Location                string      `json:"location"`
	Description             string      `json:"description"`
	Requirements            []string    `json:"requirements"`
	PreferredQualifications []string    `json:"preferred_qualifications"`
	SalaryRange             string      `json:"salary_range,omitempty"`
	JobType                 JobType     `json:"job_type"`
	CompanySize             CompanySize `json:"company_size"`
	Industry                Industry    `json:"industry"`

	SkillMatchScore      float64 `json:"skill_match_score"`
	CultureFitScore      float64 `json:"culture_fit_score"`
	GrowthPotentialScore float64 `json:"growth_potential_score"`
	SuccessProbability   float64 `json:"success_probability"`
	OverallRating        float64 `json:"overall_rating"`

	RequiredSkillsMissing []string `json:"required_skills_missing"`
	CompetitiveAdvantages []string `json:"competitive_advantages"`
	ApplicationStrategy   string   `json:"application_strategy"`
	OptimalTiming         Timing   `json:"optimal_timing"`
	FollowUpStrategy      string   `json:"follow_up_strategy"`

	AnalyzedAt time.Time `json:"analyzed_at"`
}

// jobIDLength is the number of hex characters kept from the hash.
const jobIDLength = 12

// JobID derives a stable identifier from the posting source, so the
// same URL always yields the same id.
func JobID(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])[:jobIDLength]
}

// DocumentFetcher retrieves the raw text/markup of a posting.
// Implementations must honor ctx deadlines; the engine treats every
// error identically by substituting a placeholder posting.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// CompanyStore is keyed persistence for derived company profiles.
// Keys are company names, case-sensitive as first seen. Last write
// wins; no deletion path.
type CompanyStore interface {
	GetCompany(name string) (CompanyProfile, bool, error)
	PutCompany(profile CompanyProfile) error
	ListCompanies() ([]CompanyProfile, error)
}

// AnalysisStore is append-only persistence of completed analyses.
type AnalysisStore interface {
	SaveAnalysis(a JobAnalysis) error
	ListAnalyses() ([]JobAnalysis, error)
	HasAnalysis(jobID string) (bool, error)
}

// PostingFilter decides whether a posting is worth a full analysis run
// (watch mode only; direct analyze commands bypass it).
type PostingFilter interface {
	Match(p JobPosting) bool
}

// Notifier reports completed high-rating analyses.
type Notifier interface {
	Notify(analyses []JobAnalysis) error
}
