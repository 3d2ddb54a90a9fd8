package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/treyhall/jobscout/internal/model"
)

// maxAdvantages caps the competitive-advantage list.
const maxAdvantages = 4

// CompetitiveAdvantages derives the candidate's strongest selling
// points for this posting: expert skills the description asks for, the
// transition story when the skill match supports it, and market timing.
// Capped at four, strongest first.
func CompetitiveAdvantages(candidate model.CandidateProfile, posting model.JobPosting, skillMatch float64) []string {
	advantages := make([]string, 0, maxAdvantages)

	// Expert skills named by the posting, in sorted order so the
	// result is deterministic.
	expert := candidate.ExpertSkills()
	sort.Strings(expert)
	for _, skill := range expert {
		term := strings.ReplaceAll(skill, "_", " ")
		if strings.Contains(posting.Description, term) {
			advantages = append(advantages, fmt.Sprintf("Expert-level %s experience directly matches the role's needs", term))
		}
	}

	if skillMatch > 50 && candidate.CurrentRole != "" && candidate.TargetRole != "" {
		advantages = append(advantages, fmt.Sprintf(
			"Career transition from %s to %s demonstrates adaptability and learning agility",
			candidate.CurrentRole, candidate.TargetRole,
		))
	}

	if posting.Industry == model.IndustryTechnology && candidate.TargetRole != "" {
		advantages = append(advantages, fmt.Sprintf(
			"Strong market timing for %s skills in technology roles",
			candidate.TargetRole,
		))
	}

	advantages = append(advantages, "Documented systematic learning approach and skill development methodology")

	if len(advantages) > maxAdvantages {
		advantages = advantages[:maxAdvantages]
	}
	return advantages
}
