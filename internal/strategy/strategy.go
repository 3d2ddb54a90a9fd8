// Package strategy turns scores into application guidance: the approach
// text, the timing bucket, the follow-up plan, and the candidate's
// competitive advantages for the role. Everything here is a pure
// function of its inputs.
package strategy

import "github.com/treyhall/jobscout/internal/model"

// Threshold ladder for the application strategy.
const (
	strongFitThreshold = 80
	goodFitThreshold   = 60
	gapFitThreshold    = 40
)

// ApplicationStrategy selects the approach text from the four-tier
// ladder on skill match and culture fit.
func ApplicationStrategy(skillMatch, cultureFit float64) string {
	switch {
	case skillMatch >= strongFitThreshold && cultureFit >= strongFitThreshold:
		return "High-priority immediate application: strong fit across skills and culture. Lead with your proven track record and transition progress."
	case skillMatch >= goodFitThreshold && cultureFit >= goodFitThreshold:
		return "Strategic application: good overall fit. Emphasize transferable skills and learning velocity, backed by specific project examples."
	case skillMatch >= gapFitThreshold:
		return "Development-focused application: address skill gaps through targeted learning before applying. Use the application as a learning goal."
	default:
		return "Research and networking approach: significant skill gaps for this role. Focus on networking and learning the role requirements first."
	}
}

// OptimalTiming buckets the overall rating into an application window.
func OptimalTiming(overallRating float64) model.Timing {
	switch {
	case overallRating >= 85:
		return model.TimingImmediate
	case overallRating >= 70:
		return model.TimingWithin24Hours
	case overallRating >= 55:
		return model.TimingWithinWeek
	default:
		return model.TimingAfterSkillDevel
	}
}

// High culture match warrants a personalized follow-up.
const personalizedFollowUpThreshold = 80

// FollowUp chooses the follow-up plan in fixed priority order: startup
// pace beats big-company process beats culture-driven personalization.
func FollowUp(profile model.CompanyProfile, size model.CompanySize) string {
	switch {
	case profile.GrowthStage == model.StageStartup:
		return "Fast follow-up: reach out to the hiring manager within 3-5 days. Startups move quickly."
	case size == model.SizeLarge || size == model.SizeVeryLarge:
		return "Formal follow-up: follow the standard HR process. Check in after 1 week, then bi-weekly."
	case profile.CultureMatchScore >= personalizedFollowUpThreshold:
		return "Cultural alignment follow-up: reference shared values in your follow-up communications."
	default:
		return "Standard follow-up: professional check-in after 1 week, highlighting key qualifications."
	}
}
