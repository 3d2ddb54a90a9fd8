// Package skills scores how well a candidate's skill profile covers a
// posting's requirement strings and names the skills that are missing.
package skills

import (
	"sort"
	"strings"

	"github.com/treyhall/jobscout/internal/model"
)

// Requirements containing any of these markers count double.
var criticalMarkers = []string{"python", "automation", "ai", "ml", "machine learning"}

// synonyms maps a skill name to the substrings that count as a mention
// of it. Skills without an entry match on their own name (with
// underscores read as spaces).
var synonyms = map[string][]string{
	"python":           {"python", "py", "python3"},
	"automation":       {"automation", "automate", "scripting", "scripts"},
	"infrastructure":   {"infrastructure", "infra", "systems", "sysadmin"},
	"machine_learning": {"machine learning", "ml", "ai", "artificial intelligence"},
	"linux":            {"linux", "unix", "ubuntu", "centos", "redhat"},
	"aws":              {"aws", "amazon web services", "ec2", "s3", "cloud"},
	"docker":           {"docker", "containerization", "containers"},
	"kubernetes":       {"kubernetes", "k8s", "container orchestration"},
}

// defaultScore is returned when a posting yields no requirements at all.
const defaultScore = 50

// maxMissing caps the missing-skill list.
const maxMissing = 5

// Matcher matches requirement strings against one candidate's skills.
type Matcher struct {
	// skillNames is sorted so matching is deterministic regardless of
	// map iteration order.
	skillNames []string
	tiers      map[string]model.SkillTier
}

// NewMatcher builds a matcher over the candidate's matchable skills
// (expert, proficient, developing).
func NewMatcher(profile model.CandidateProfile) *Matcher {
	tiers := profile.MatchableSkills()
	names := make([]string, 0, len(tiers))
	for name := range tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Matcher{skillNames: names, tiers: tiers}
}

// Score computes the 0-100 skill-match score over the given requirement
// strings. Each requirement contributes weight 2.0 when it mentions a
// critical marker, 1.0 otherwise; a matched requirement is credited at
// weight x tier multiplier of the strongest matching skill.
func (m *Matcher) Score(requirements []string) float64 {
	var matchedWeight, totalWeight float64

	for _, req := range requirements {
		reqLower := strings.ToLower(req)

		weight := 1.0
		for _, marker := range criticalMarkers {
			if strings.Contains(reqLower, marker) {
				weight = 2.0
				break
			}
		}
		totalWeight += weight

		if mult, ok := m.bestMatch(reqLower); ok {
			matchedWeight += weight * mult
		}
	}

	if totalWeight == 0 {
		return defaultScore
	}

	score := matchedWeight / totalWeight * 100
	if score > 100 {
		score = 100
	}
	return score
}

// Missing returns the skills required by the posting that the candidate
// cannot claim, as short phrases extracted from the unmatched
// requirement strings. Unique, first-seen order, capped at maxMissing.
func (m *Matcher) Missing(requirements []string) []string {
	missing := make([]string, 0, maxMissing)
	seen := make(map[string]struct{})

	for _, req := range requirements {
		reqLower := strings.ToLower(req)
		if _, ok := m.bestMatch(reqLower); ok {
			continue
		}

		skill := extractSkillPhrase(reqLower)
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		missing = append(missing, skill)
		if len(missing) == maxMissing {
			break
		}
	}

	return missing
}

// bestMatch returns the highest tier multiplier among candidate skills
// mentioned in the lowercased requirement, and whether any matched.
func (m *Matcher) bestMatch(reqLower string) (float64, bool) {
	var best float64
	matched := false
	for _, name := range m.skillNames {
		if !mentions(reqLower, name) {
			continue
		}
		matched = true
		if mult := m.tiers[name].TierMultiplier(); mult > best {
			best = mult
		}
	}
	return best, matched
}

// mentions reports whether the requirement text contains the skill name
// or any of its synonyms.
func mentions(reqLower, skill string) bool {
	terms, ok := synonyms[skill]
	if !ok {
		terms = []string{strings.ReplaceAll(skill, "_", " ")}
	}
	for _, term := range terms {
		if strings.Contains(reqLower, term) {
			return true
		}
	}
	return false
}
