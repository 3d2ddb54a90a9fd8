// Package filter decides which postings are worth a full analysis run
// in watch mode.
package filter

import (
	"strings"

	"github.com/treyhall/jobscout/internal/model"
)

// Ensure KeywordFilter implements model.PostingFilter.
var _ model.PostingFilter = (*KeywordFilter)(nil)

// KeywordFilter matches postings whose title contains any of the title
// keywords and whose location contains any of the location keywords.
// Matching is case-insensitive. Empty keyword lists are treated as
// "match all".
type KeywordFilter struct {
	titleKeywords []string
	locations     []string
}

// NewKeywordFilter returns a filter that requires both a title keyword
// match and a location keyword match (case-insensitive substring).
func NewKeywordFilter(titleKeywords []string, locations []string) *KeywordFilter {
	return &KeywordFilter{
		titleKeywords: titleKeywords,
		locations:     locations,
	}
}

// Match returns true if the posting's title contains any title keyword
// and its location contains any location keyword. Remote postings pass
// the location check regardless: they are workable from anywhere.
func (f *KeywordFilter) Match(p model.JobPosting) bool {
	titleLower := strings.ToLower(p.Title)
	locationLower := strings.ToLower(p.Location)

	if len(f.titleKeywords) > 0 {
		matched := false
		for _, kw := range f.titleKeywords {
			if strings.Contains(titleLower, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.locations) > 0 && p.JobType != model.JobTypeRemote {
		matched := false
		for _, loc := range f.locations {
			if strings.Contains(locationLower, strings.ToLower(loc)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
