package extract

import (
	"regexp"
	"strings"
)

// Caps on extracted list sizes.
const (
	maxRequirements = 10
	maxPreferred    = 8
)

// Item length bounds after trimming; shorter items are noise, longer
// ones are whole paragraphs.
const (
	minItemLen = 10
	maxItemLen = 200
)

// Section-header patterns. The header match is case-insensitive; the
// captured block runs to the next blank line, the next capitalized
// line, or end of text.
var requirementSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?s)(?i:requirements?):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?s)(?i:qualifications?):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?s)(?i:must have):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?s)(?i:required skills?):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
}

var preferredSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?s)(?i:preferred):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?s)(?i:nice to have):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?s)(?i:bonus):?\s*(.*?)(?:\n[ \t]*\n|\n[A-Z]|$)`),
}

// Free-standing skill-phrase patterns scanned independently of section
// headers, so postings without a formal requirements block still yield
// requirement entries.
var skillPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`\d+\+?\s*years?\s*(?:of\s*)?experience\s*(?:with\s*)?[\w,][\w\s,]*`),
	regexp.MustCompile(`bachelor'?s?\s*(?:degree)?(?:\s*in\s*[\w\s]+)?`),
	regexp.MustCompile(`master'?s?\s*(?:degree)?(?:\s*in\s*[\w\s]+)?`),
	regexp.MustCompile(`experience\s+(?:with|in)\s+[\w,][\w\s,]*`),
	regexp.MustCompile(`proficien(?:t|cy)\s+(?:with|in)\s+[\w,][\w\s,]*`),
	regexp.MustCompile(`knowledge\s+of\s+[\w,][\w\s,]*`),
}

var bulletSplitRe = regexp.MustCompile(`[•\-*\n]`)

// extractRequirements collects requirement items from section blocks,
// then supplements with skill-phrase matches not already present.
// Deduplicated, first-seen order, capped at maxRequirements.
func extractRequirements(description string) []string {
	items := sectionItems(description, requirementSectionRes)

	descLower := strings.ToLower(description)
	for _, re := range skillPhraseRes {
		for _, match := range re.FindAllString(descLower, -1) {
			match = strings.TrimSpace(match)
			if len(match) > minItemLen {
				items = append(items, match)
			}
		}
	}

	return dedupe(items, maxRequirements)
}

// extractPreferredQualifications collects nice-to-have items from the
// preferred/bonus section blocks, capped at maxPreferred.
func extractPreferredQualifications(description string) []string {
	return dedupe(sectionItems(description, preferredSectionRes), maxPreferred)
}

// sectionItems captures every section block matched by the given
// patterns and splits it into bullet items of acceptable length.
// All item text is lowercased so deduplication is case-insensitive.
func sectionItems(description string, sectionRes []*regexp.Regexp) []string {
	var items []string
	for _, re := range sectionRes {
		for _, groups := range re.FindAllStringSubmatch(description, -1) {
			block := groups[1]
			for _, item := range bulletSplitRe.Split(block, -1) {
				item = strings.ToLower(strings.TrimSpace(item))
				if len(item) >= minItemLen && len(item) < maxItemLen {
					items = append(items, item)
				}
			}
		}
	}
	return items
}

// dedupe removes exact duplicates preserving first-seen order and caps
// the result at limit entries. Always returns a non-nil slice so the
// persisted record has [] rather than null.
func dedupe(items []string, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
