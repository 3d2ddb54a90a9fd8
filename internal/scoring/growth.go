package scoring

import (
	"strings"

	"github.com/treyhall/jobscout/internal/model"
)

// Component weights of the growth-potential blend.
const (
	stageWeight    = 0.3
	industryWeight = 0.3
	roleWeight     = 0.2
	learningWeight = 0.2
)

// unlisted stages/industries fall back to this.
const defaultComponentScore = 70

var stageScores = map[model.GrowthStage]float64{
	model.StageStartup:    85,
	model.StageScaleUp:    90,
	model.StageMature:     70,
	model.StageEnterprise: 60,
}

var industryScores = map[model.Industry]float64{
	model.IndustryTechnology: 85,
	model.IndustryFinance:    80,
	model.IndustryHealthcare: 75,
}

var seniorMarkers = []string{"senior", "lead", "principal"}
var juniorMarkers = []string{"junior", "entry"}
var learningMarkers = []string{"mentorship", "learning", "training", "development"}

// GrowthPotential scores the career-growth opportunity of a posting,
// 0-100, as a weighted blend of company stage, industry trajectory,
// role level, and learning opportunities.
func GrowthPotential(posting model.JobPosting, profile model.CompanyProfile) float64 {
	stageScore, ok := stageScores[profile.GrowthStage]
	if !ok {
		stageScore = defaultComponentScore
	}

	industryScore, ok := industryScores[posting.Industry]
	if !ok {
		industryScore = defaultComponentScore
	}

	descLower := strings.ToLower(posting.Description)

	roleScore := float64(defaultComponentScore)
	if containsAny(descLower, seniorMarkers) {
		roleScore = 85
	} else if containsAny(descLower, juniorMarkers) {
		// Junior roles score highest: the most room to grow.
		roleScore = 90
	}

	learningScore := 80.0
	if containsAny(descLower, learningMarkers) {
		learningScore = 90
	}

	return stageScore*stageWeight + industryScore*industryWeight +
		roleScore*roleWeight + learningScore*learningWeight
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
