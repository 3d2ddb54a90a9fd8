package analyzer

import "github.com/treyhall/jobscout/internal/model"

// JobRanking is one entry of a ranked batch result.
type JobRanking struct {
	// Position is 1-based after ranking; before ranking it holds the
	// input order and is used for tie-breaking.
	Position int
	Analysis model.JobAnalysis
}
