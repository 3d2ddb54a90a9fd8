// Package predict estimates the probability that an application leads
// to an interview. Two strategies: a deterministic formula over the
// already-computed sub-scores, and an optional language-model advisor
// that falls back to the formula on any failure.
package predict

import (
	"context"

	"github.com/treyhall/jobscout/internal/model"
)

// Success probability never drops below this floor; there is always
// some chance.
const minProbability = 5

// DeterministicPredictor computes success probability from the
// candidate's historical rate adjusted by skill and culture fit. Pure:
// same inputs always yield the same output.
type DeterministicPredictor struct {
	historicalRate float64
}

// NewDeterministicPredictor creates a predictor anchored at the
// candidate's historical application success rate.
func NewDeterministicPredictor(candidate model.CandidateProfile) *DeterministicPredictor {
	return &DeterministicPredictor{historicalRate: candidate.SuccessRate}
}

// Predict returns the success probability in [5,100].
func (p *DeterministicPredictor) Predict(_ context.Context, _ model.JobPosting, skillMatch, cultureFit float64) float64 {
	base := p.historicalRate * 100

	// Skill match swings the base rate by up to ±50%, culture fit by
	// up to ±25%.
	skillMultiplier := 1 + (skillMatch-50)/100
	cultureMultiplier := 1 + (cultureFit-50)/200

	// A credible skill story helps; a weak one actively hurts.
	transitionBonus := 0.9
	if skillMatch > 60 {
		transitionBonus = 1.1
	}

	return clamp(base*skillMultiplier*cultureMultiplier*transitionBonus, minProbability, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
