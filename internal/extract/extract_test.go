package extract

import (
	"reflect"
	"testing"

	"github.com/treyhall/jobscout/internal/model"
)

const sampleHTML = `<html><body>
<h1 class="job-title">Senior Python Engineer</h1>
<div class="company-name">Initech Inc</div>
<div data-testid="jobLocation">Austin, TX</div>
<div id="jobDescriptionText">We build automation software for cloud platforms. Fully remote team.

Requirements:
` + "•" + ` 5+ years of python experience
` + "•" + ` strong communication abilities

Preferred:
` + "•" + ` familiarity with docker containers

Compensation: $120,000 - $150,000 per year.
</div>
</body></html>`

func TestExtract(t *testing.T) {
	p := Extract("https://example.com/jobs/42", sampleHTML)

	if p.URL != "https://example.com/jobs/42" {
		t.Errorf("URL = %q", p.URL)
	}
	if p.Title != "Senior Python Engineer" {
		t.Errorf("Title = %q, want %q", p.Title, "Senior Python Engineer")
	}
	if p.Company != "Initech Inc" {
		t.Errorf("Company = %q, want %q", p.Company, "Initech Inc")
	}
	if p.Location != "Austin, TX" {
		t.Errorf("Location = %q, want %q", p.Location, "Austin, TX")
	}
	if p.SalaryRange != "$120,000 - $150,000" {
		t.Errorf("SalaryRange = %q", p.SalaryRange)
	}
	if p.JobType != model.JobTypeRemote {
		t.Errorf("JobType = %q, want remote", p.JobType)
	}
	if p.Industry != model.IndustryTechnology {
		t.Errorf("Industry = %q, want technology", p.Industry)
	}
	// "Initech Inc" carries a corporate suffix.
	if p.CompanySize != model.SizeMedium {
		t.Errorf("CompanySize = %q, want medium", p.CompanySize)
	}

	if !containsItem(p.Requirements, "5+ years of python experience") {
		t.Errorf("Requirements = %v, missing python item", p.Requirements)
	}
	if !containsItem(p.Requirements, "strong communication abilities") {
		t.Errorf("Requirements = %v, missing communication item", p.Requirements)
	}
	if !containsItem(p.PreferredQualifications, "familiarity with docker containers") {
		t.Errorf("PreferredQualifications = %v", p.PreferredQualifications)
	}
}

func TestExtractIdempotent(t *testing.T) {
	first := Extract("https://example.com/jobs/42", sampleHTML)
	for i := 0; i < 5; i++ {
		if got := Extract("https://example.com/jobs/42", sampleHTML); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced a different posting:\n%+v\nvs\n%+v", i, got, first)
		}
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	p := Extract("https://example.com/gone", "")

	if p.Title != model.DefaultTitle {
		t.Errorf("Title = %q, want default", p.Title)
	}
	if p.Company != model.DefaultCompany {
		t.Errorf("Company = %q, want default", p.Company)
	}
	if p.Location != model.DefaultLocation {
		t.Errorf("Location = %q, want default", p.Location)
	}
	if p.SalaryRange != "" {
		t.Errorf("SalaryRange = %q, want empty", p.SalaryRange)
	}
	if p.JobType != model.JobTypeOnsite {
		t.Errorf("JobType = %q, want onsite", p.JobType)
	}
	if p.Requirements == nil || len(p.Requirements) != 0 {
		t.Errorf("Requirements = %#v, want empty non-nil slice", p.Requirements)
	}
	if p.PreferredQualifications == nil || len(p.PreferredQualifications) != 0 {
		t.Errorf("PreferredQualifications = %#v, want empty non-nil slice", p.PreferredQualifications)
	}
}

func TestExtractPlainText(t *testing.T) {
	doc := "Platform Engineer at a growing company.\n\nRequirements:\n- experience with linux administration\n- knowledge of networking fundamentals\n"
	p := Extract("https://example.com/jobs/7", doc)

	if !containsItem(p.Requirements, "experience with linux administration") {
		t.Errorf("Requirements = %v, missing linux item", p.Requirements)
	}
	if !containsItem(p.Requirements, "knowledge of networking fundamentals") {
		t.Errorf("Requirements = %v, missing networking item", p.Requirements)
	}
}

func containsItem(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
