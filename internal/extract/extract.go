// Package extract turns raw posting documents (scraped HTML or plain
// text) into structured JobPosting records. Extraction never fails: any
// field that cannot be located gets a documented default, so the rest
// of the pipeline is free of nil-checks.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/treyhall/jobscout/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapseSpaces trims and collapses runs of whitespace to single spaces.
func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Selector cascades, most-specific first. Evaluated top-to-bottom, the
// first selector with a non-empty match wins.
var titleSelectors = []string{
	`h1[data-testid="jobTitle"]`,
	`h1.jobsearch-JobInfoHeader-title`,
	`h1.job-title`,
	`h1[class*="job-title"]`,
	`h1[class*="title"]`,
	`.job-header h1`,
	`h1`,
}

var companySelectors = []string{
	`[data-testid="companyName"]`,
	`.jobsearch-InlineCompanyRating a`,
	`.company-name`,
	`[class*="company"] a`,
	`[class*="company-name"]`,
}

var locationSelectors = []string{
	`[data-testid="jobLocation"]`,
	`[class*="location"]`,
}

var descriptionSelectors = []string{
	`[data-testid="jobDescription"]`,
	`.jobsearch-jobDescriptionText`,
	`#jobDescriptionText`,
	`.job-description`,
	`[class*="description"]`,
}

// Extract parses rawDocument into a JobPosting. It accepts HTML or
// plain text and never returns an error; unlocatable fields fall back
// to defaults. Extraction is deterministic: identical input yields an
// identical record.
func Extract(url, rawDocument string) model.JobPosting {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawDocument))
	if err != nil {
		// The html parser accepts almost anything; treat a parse
		// failure like an empty document.
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}

	fullText := doc.Text()

	description := extractDescription(doc, fullText)
	descLower := strings.ToLower(description)

	posting := model.JobPosting{
		URL:                url,
		Title:              firstSelectorMatch(doc, titleSelectors, model.DefaultTitle),
		Company:            firstSelectorMatch(doc, companySelectors, model.DefaultCompany),
		Location:           firstSelectorMatch(doc, locationSelectors, model.DefaultLocation),
		Description:        descLower,
		DisplayDescription: description,
		SalaryRange:        extractSalary(fullText),
		JobType:            classifyJobType(strings.ToLower(fullText)),
	}

	posting.Requirements = extractRequirements(description)
	posting.PreferredQualifications = extractPreferredQualifications(description)
	posting.Industry = classifyIndustry(descLower, posting.Company)
	posting.CompanySize = classifyCompanySize(strings.ToLower(fullText), posting.Company)

	return posting
}

// firstSelectorMatch walks the selector cascade and returns the first
// non-empty text match, whitespace-collapsed, or fallback.
func firstSelectorMatch(doc *goquery.Document, selectors []string, fallback string) string {
	for _, sel := range selectors {
		text := collapseSpaces(doc.Find(sel).First().Text())
		if text != "" {
			return text
		}
	}
	return fallback
}

// extractDescription prefers a dedicated content region and falls back
// to the full document text when none is found.
func extractDescription(doc *goquery.Document, fullText string) string {
	for _, sel := range descriptionSelectors {
		region := doc.Find(sel).First()
		if region.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(region.Text())
		if text != "" {
			return text
		}
	}
	return strings.TrimSpace(fullText)
}
