// Package scoring holds the pure score functions: culture fit against
// the candidate's preferences and growth potential of the opportunity.
package scoring

import (
	"strings"

	"github.com/treyhall/jobscout/internal/model"
)

// Culture-fit term weights. Stated company values count more than
// keywords merely present in the posting text.
const (
	valuesWeight  = 50
	keywordWeight = 30
)

// CultureFit scores how well a company profile matches the candidate's
// culture preferences, 0-100.
func CultureFit(profile model.CompanyProfile, preferences []string) float64 {
	prefs := make(map[string]struct{}, len(preferences))
	for _, p := range preferences {
		prefs[strings.ToLower(p)] = struct{}{}
	}

	// Set intersection: a value restated under several headers counts once.
	valuesOverlap := 0
	seen := make(map[string]struct{}, len(profile.Values))
	for _, v := range profile.Values {
		lower := strings.ToLower(v)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		if _, ok := prefs[lower]; ok {
			valuesOverlap++
		}
	}

	keywordOverlap := 0
	for _, kw := range profile.CultureKeywords {
		if _, ok := prefs[kw]; ok {
			keywordOverlap++
		}
	}

	denom := len(preferences)
	if denom < 1 {
		denom = 1
	}

	valuesScore := float64(valuesOverlap) / float64(denom) * valuesWeight
	keywordScore := float64(keywordOverlap) / float64(denom) * keywordWeight

	environmentBonus := 10.0
	if profile.WorkEnvironment == model.EnvCollaborative || profile.WorkEnvironment == model.EnvInnovative {
		environmentBonus = 20
	}

	total := valuesScore + keywordScore + environmentBonus
	if total > 100 {
		total = 100
	}
	return total
}
