package model

// JobType classifies where the work happens.
type JobType string

const (
	JobTypeRemote  JobType = "remote"
	JobTypeHybrid  JobType = "hybrid"
	JobTypeOnsite  JobType = "onsite"
	JobTypeUnknown JobType = "unknown"
)

// CompanySize buckets headcount as inferred from the posting text.
type CompanySize string

const (
	SizeStartup   CompanySize = "startup"
	SizeSmall     CompanySize = "small"
	SizeMedium    CompanySize = "medium"
	SizeLarge     CompanySize = "large"
	SizeVeryLarge CompanySize = "very_large"
	SizeUnknown   CompanySize = "unknown"
)

// Industry is assigned by the keyword classifier in extract.
type Industry string

const (
	IndustryTechnology Industry = "technology"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryEcommerce  Industry = "ecommerce"
	IndustryEnterprise Industry = "enterprise"
	IndustryStartup    Industry = "startup"
	IndustryConsulting Industry = "consulting"
)

// Default field values substituted when extraction finds nothing.
const (
	DefaultTitle    = "Job Position"
	DefaultCompany  = "Company"
	DefaultLocation = "Location not specified"
)

// JobPosting is the structured form of a single job advertisement.
// Every field is always populated (with defaults when extraction fails)
// so downstream scoring never has to nil-check.
type JobPosting struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`

	// Description is the full posting text, lowercase-normalized for
	// keyword search. DisplayDescription keeps the original casing for
	// rendering and persistence.
	Description        string `json:"-"`
	DisplayDescription string `json:"description"`

	SalaryRange string  `json:"salary_range,omitempty"`
	JobType     JobType `json:"job_type"`

	// Requirements and PreferredQualifications hold deduplicated
	// free-text items, each 10-199 characters after trimming.
	Requirements            []string `json:"requirements"`
	PreferredQualifications []string `json:"preferred_qualifications"`

	Industry    Industry    `json:"industry"`
	CompanySize CompanySize `json:"company_size"`
}
