package extract

import (
	"regexp"
	"strings"

	"github.com/treyhall/jobscout/internal/model"
)

// Salary patterns, tried in order; the first match wins.
var salaryRes = []*regexp.Regexp{
	regexp.MustCompile(`\$[\d,]+\s*-\s*\$[\d,]+`),
	regexp.MustCompile(`\$[\d,]+[kK]?\s*-\s*\$[\d,]+[kK]?`),
	regexp.MustCompile(`[\d,]+\s*-\s*[\d,]+\s*(?:USD|dollars)`),
}

// extractSalary returns the first currency-range match in the document,
// or "" when none is present.
func extractSalary(text string) string {
	for _, re := range salaryRes {
		if match := re.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

var remoteTerms = []string{"100% remote", "fully remote", "work from home", "remote"}
var hybridTerms = []string{"hybrid", "some remote", "flexible"}

// classifyJobType runs substring search over the lowercased document:
// remote-indicating terms win over hybrid-indicating terms; anything
// else is onsite.
func classifyJobType(textLower string) model.JobType {
	for _, term := range remoteTerms {
		if strings.Contains(textLower, term) {
			return model.JobTypeRemote
		}
	}
	for _, term := range hybridTerms {
		if strings.Contains(textLower, term) {
			return model.JobTypeHybrid
		}
	}
	return model.JobTypeOnsite
}

// industryTable is evaluated in declaration order; the first category
// reaching two keyword hits wins. Order is part of the contract.
var industryTable = []struct {
	industry model.Industry
	keywords []string
}{
	{model.IndustryTechnology, []string{"software", "tech", "saas", "platform", "api", "cloud", "ai", "ml"}},
	{model.IndustryFinance, []string{"bank", "financial", "fintech", "trading", "investment"}},
	{model.IndustryHealthcare, []string{"health", "medical", "hospital", "pharmaceutical"}},
	{model.IndustryEcommerce, []string{"ecommerce", "retail", "marketplace", "shopping"}},
	{model.IndustryEnterprise, []string{"enterprise", "b2b", "corporate", "business solutions"}},
	{model.IndustryStartup, []string{"startup", "early stage", "seed", "venture"}},
	{model.IndustryConsulting, []string{"consulting", "advisory", "professional services"}},
}

// classifyIndustry counts keyword hits in description + company name
// and assigns the first category with at least two hits, defaulting to
// technology.
func classifyIndustry(descLower, company string) model.Industry {
	text := descLower + " " + strings.ToLower(company)
	for _, entry := range industryTable {
		hits := 0
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits >= 2 {
			return entry.industry
		}
	}
	return model.IndustryTechnology
}

// sizeTable is evaluated in declaration order, first hit wins.
var sizeTable = []struct {
	size       model.CompanySize
	indicators []string
}{
	{model.SizeStartup, []string{"startup", "early stage", "1-10 employees", "11-50 employees"}},
	{model.SizeSmall, []string{"51-200 employees", "201-500 employees"}},
	{model.SizeMedium, []string{"501-1000 employees", "1001-5000 employees"}},
	{model.SizeLarge, []string{"5001-10000 employees", "fortune"}},
	{model.SizeVeryLarge, []string{"10000+ employees", "multinational", "global"}},
}

var corporateSuffixes = []string{"inc", "corp", "ltd", "llc"}

// classifyCompanySize scans the document for headcount indicators,
// falling back to a corporate-suffix heuristic on the company name.
func classifyCompanySize(textLower, company string) model.CompanySize {
	for _, entry := range sizeTable {
		for _, ind := range entry.indicators {
			if strings.Contains(textLower, ind) {
				return entry.size
			}
		}
	}

	companyLower := strings.ToLower(company)
	for _, suffix := range corporateSuffixes {
		if strings.Contains(companyLower, suffix) {
			return model.SizeMedium
		}
	}

	return model.SizeUnknown
}
