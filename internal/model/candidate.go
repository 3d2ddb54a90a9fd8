package model

// SkillTier is the candidate's proficiency level for one skill.
type SkillTier string

const (
	TierExpert     SkillTier = "expert"
	TierProficient SkillTier = "proficient"
	TierDeveloping SkillTier = "developing"
	TierInterested SkillTier = "interested"
)

// TierMultiplier returns the match weight for a tier. Interested-tier
// skills carry no weight; they are aspirations, not abilities.
func (t SkillTier) TierMultiplier() float64 {
	switch t {
	case TierExpert:
		return 1.0
	case TierProficient:
		return 0.8
	case TierDeveloping:
		return 0.5
	default:
		return 0
	}
}

// CandidateProfile is the static comparison baseline, loaded once at
// startup and read-only to the engine.
type CandidateProfile struct {
	// Skills maps skill name -> proficiency tier. Names are unique.
	Skills map[string]SkillTier

	// CulturePreferences are the value keywords the candidate wants in
	// a workplace (e.g. "innovation", "learning", "collaboration").
	CulturePreferences []string

	// CurrentRole and TargetRole describe the career transition, used
	// for advisor context and competitive-advantage text.
	CurrentRole string
	TargetRole  string

	ExperienceYears int

	// SuccessRate is the historical application success rate in [0,1].
	SuccessRate float64
}

// MatchableSkills returns skill names the candidate can actually claim
// (expert, proficient, developing), excluding interested-only entries.
func (c CandidateProfile) MatchableSkills() map[string]SkillTier {
	out := make(map[string]SkillTier, len(c.Skills))
	for name, tier := range c.Skills {
		if tier.TierMultiplier() > 0 {
			out[name] = tier
		}
	}
	return out
}

// ExpertSkills returns the names of expert-tier skills.
func (c CandidateProfile) ExpertSkills() []string {
	var out []string
	for name, tier := range c.Skills {
		if tier == TierExpert {
			out = append(out, name)
		}
	}
	return out
}
