package skills

import (
	"regexp"
	"strings"
)

// Phrase patterns for pulling a short skill name out of a requirement
// string, tried in order; the first capture of acceptable length wins.
var skillPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`experience\s+(?:with|in)\s+([^,\n]+)`),
	regexp.MustCompile(`knowledge\s+of\s+([^,\n]+)`),
	regexp.MustCompile(`proficient\s+(?:in|with)\s+([^,\n]+)`),
	regexp.MustCompile(`familiar\s+with\s+([^,\n]+)`),
	regexp.MustCompile(`(\w+(?:\s+\w+)?)\s+experience`),
	regexp.MustCompile(`(\w+(?:\s+\w+)?)\s+skills?`),
}

// Extracted phrases must name something, not quote a sentence.
const (
	minPhraseLen = 3
	maxPhraseLen = 30
)

// extractSkillPhrase pulls the core skill out of a lowercased
// requirement string, or "" when no pattern applies.
func extractSkillPhrase(reqLower string) string {
	for _, re := range skillPhraseRes {
		groups := re.FindStringSubmatch(reqLower)
		if groups == nil {
			continue
		}
		skill := strings.TrimSpace(groups[1])
		if len(skill) >= minPhraseLen && len(skill) < maxPhraseLen {
			return skill
		}
	}
	return ""
}
