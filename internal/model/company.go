package model

// WorkEnvironment is chosen by keyword-frequency argmax over the
// environment indicator table, defaulting to collaborative.
type WorkEnvironment string

const (
	EnvCollaborative WorkEnvironment = "collaborative"
	EnvCompetitive   WorkEnvironment = "competitive"
	EnvInnovative    WorkEnvironment = "innovative"
	EnvSupportive    WorkEnvironment = "supportive"
	EnvAutonomous    WorkEnvironment = "autonomous"
)

// GrowthStage buckets a company's maturity.
type GrowthStage string

const (
	StageStartup    GrowthStage = "startup"
	StageScaleUp    GrowthStage = "scale-up"
	StageMature     GrowthStage = "mature"
	StageEnterprise GrowthStage = "enterprise"
)

// CompanyProfile is derived intelligence about a company, cached in the
// company store keyed by name. Entries are immutable once written;
// CultureMatchScore is relative to the current candidate and is
// recomputed on every lookup rather than persisted.
type CompanyProfile struct {
	Name            string          `json:"name"`
	Values          []string        `json:"values"`
	CultureKeywords []string        `json:"culture_keywords"`
	WorkEnvironment WorkEnvironment `json:"work_environment"`
	GrowthStage     GrowthStage     `json:"growth_stage"`
	TechStack       []string        `json:"tech_stack"`
	InnovationScore float64         `json:"innovation_score"`

	CultureMatchScore float64 `json:"-"`
}
