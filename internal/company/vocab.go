package company

import (
	"regexp"
	"strings"

	"github.com/treyhall/jobscout/internal/model"
)

// cultureVocabulary is the fixed set of culture keywords looked for in
// posting text.
var cultureVocabulary = []string{
	"collaborative", "innovative", "fast-paced", "dynamic", "flexible",
	"learning", "growth", "mentorship", "autonomous", "independent",
	"team-oriented", "results-driven", "data-driven", "customer-focused",
}

// techVocabulary is the fixed set of technologies recognized as a
// company's tech stack.
var techVocabulary = []string{
	"python", "javascript", "java", "c++", "go", "rust",
	"react", "vue", "angular", "node", "express",
	"aws", "azure", "gcp", "docker", "kubernetes",
	"mysql", "postgresql", "mongodb", "redis",
	"tensorflow", "pytorch", "scikit-learn",
}

// innovationMarkers drive the innovation score.
var innovationMarkers = []string{
	"ai", "machine learning", "cutting-edge", "innovative",
	"research", "r&d", "breakthrough", "disruptive",
	"next-generation", "advanced", "emerging",
}

// environmentTable is argmaxed by keyword-hit count; declaration order
// breaks ties, so collaborative wins when nothing scores.
var environmentTable = []struct {
	env        model.WorkEnvironment
	indicators []string
}{
	{model.EnvCollaborative, []string{"collaborative", "team", "together", "partnership"}},
	{model.EnvCompetitive, []string{"competitive", "fast-paced", "aggressive", "results-driven"}},
	{model.EnvInnovative, []string{"innovative", "creative", "cutting-edge", "experimental"}},
	{model.EnvSupportive, []string{"supportive", "mentorship", "learning", "growth"}},
	{model.EnvAutonomous, []string{"autonomous", "independent", "self-directed", "ownership"}},
}

// growthStageTable is evaluated in order, first keyword hit wins.
var growthStageTable = []struct {
	stage    model.GrowthStage
	keywords []string
}{
	{model.StageStartup, []string{"startup", "early stage", "seed"}},
	{model.StageScaleUp, []string{"scale", "scaling", "rapid growth"}},
	{model.StageMature, []string{"established", "mature", "leader"}},
	{model.StageEnterprise, []string{"enterprise", "fortune", "global"}},
}

// Stated-values section headers; block bounded by blank line,
// capitalized line, or end of text.
var valuesSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?s)(?i:values?):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?s)(?i:culture):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?s)(?i:we believe):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
}

var valueSplitRe = regexp.MustCompile(`[,•\n\-]`)

// Value items must be phrases, not letters or paragraphs.
const (
	minValueLen = 3
	maxValueLen = 50
	maxValues   = 5
)

// extractValues captures text after values:/culture:/we believe:
// headers and splits it into individual value phrases, capped at five.
func extractValues(postingText string) []string {
	values := make([]string, 0, maxValues)
	for _, re := range valuesSectionRes {
		for _, groups := range re.FindAllStringSubmatch(postingText, -1) {
			for _, item := range valueSplitRe.Split(groups[1], -1) {
				item = strings.TrimSpace(item)
				if len(item) >= minValueLen && len(item) < maxValueLen {
					values = append(values, item)
					if len(values) == maxValues {
						return values
					}
				}
			}
		}
	}
	return values
}

// classifyEnvironment argmaxes keyword hits over the environment table.
func classifyEnvironment(textLower string) model.WorkEnvironment {
	best := environmentTable[0].env
	bestHits := -1
	for _, entry := range environmentTable {
		hits := 0
		for _, ind := range entry.indicators {
			if strings.Contains(textLower, ind) {
				hits++
			}
		}
		if hits > bestHits {
			best = entry.env
			bestHits = hits
		}
	}
	return best
}

// classifyGrowthStage returns the first stage whose keyword bucket hits,
// defaulting to mature.
func classifyGrowthStage(textLower string) model.GrowthStage {
	for _, entry := range growthStageTable {
		for _, kw := range entry.keywords {
			if strings.Contains(textLower, kw) {
				return entry.stage
			}
		}
	}
	return model.StageMature
}
