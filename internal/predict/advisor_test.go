package predict

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/treyhall/jobscout/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeProvider returns a canned response or error.
type fakeProvider struct {
	response string
	err      error
	prompt   string
}

func (f *fakeProvider) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func advisorCandidate() model.CandidateProfile {
	return model.CandidateProfile{
		CurrentRole:     "Systems Administrator",
		TargetRole:      "Automation Engineer",
		ExperienceYears: 6,
		SuccessRate:     0.20,
	}
}

// fallbackValue is what the deterministic formula yields for the
// candidate above at skill 50 / culture 50.
const fallbackValue = 18.0

func TestAdvisorPredict(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     float64
	}{
		{"bare number", "75", nil, 75},
		{"number in prose", "I estimate around 85 percent.", nil, 85},
		{"percent sign", "60%", nil, 60},
		{"over 100 clamps down", "150", nil, 100},
		{"zero floors at minimum", "0", nil, minProbability},
		{"no number falls back", "N/A - cannot determine", nil, fallbackValue},
		{"provider error falls back", "", errors.New("connection refused"), fallbackValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{response: tt.response, err: tt.err}
			p := NewAdvisorPredictor(provider, advisorCandidate(), time.Second, discardLogger())

			got := p.Predict(context.Background(), model.JobPosting{Company: "Initech"}, 50, 50)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Predict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvisorPromptIncludesContext(t *testing.T) {
	provider := &fakeProvider{response: "50"}
	p := NewAdvisorPredictor(provider, advisorCandidate(), time.Second, discardLogger())

	posting := model.JobPosting{
		Title:    "Automation Engineer",
		Company:  "Initech",
		Industry: model.IndustryTechnology,
		JobType:  model.JobTypeRemote,
	}
	p.Predict(context.Background(), posting, 72, 64)

	for _, want := range []string{"Initech", "Automation Engineer", "Systems Administrator", "72"} {
		if !strings.Contains(provider.prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, provider.prompt)
		}
	}
}
