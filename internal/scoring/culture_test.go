package scoring

import (
	"math"
	"testing"

	"github.com/treyhall/jobscout/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestCultureFit(t *testing.T) {
	tests := []struct {
		name        string
		profile     model.CompanyProfile
		preferences []string
		want        float64
	}{
		{
			name: "values and keywords both overlap",
			profile: model.CompanyProfile{
				Values:          []string{"Learning"},
				CultureKeywords: []string{"growth"},
				WorkEnvironment: model.EnvCollaborative,
			},
			preferences: []string{"learning", "growth", "innovation"},
			// 1/3*50 + 1/3*30 + 20
			want: 46.67,
		},
		{
			name: "no preferences leaves only the environment bonus",
			profile: model.CompanyProfile{
				WorkEnvironment: model.EnvCompetitive,
			},
			preferences: []string{},
			want:        10,
		},
		{
			name: "innovative environment earns the full bonus",
			profile: model.CompanyProfile{
				WorkEnvironment: model.EnvInnovative,
			},
			preferences: []string{"learning"},
			want:        20,
		},
		{
			name: "duplicate stated values count once",
			profile: model.CompanyProfile{
				// As derived when a posting repeats its values under
				// both a Values: and a Culture: header.
				Values:          []string{"learning", "growth", "learning", "growth"},
				CultureKeywords: []string{"learning", "growth"},
				WorkEnvironment: model.EnvSupportive,
			},
			preferences: []string{"learning", "growth", "autonomy", "ownership"},
			// 2/4*50 + 2/4*30 + 10, not 4/4*50 + ...
			want: 50,
		},
		{
			name: "case-insensitive value dedupe",
			profile: model.CompanyProfile{
				Values:          []string{"Learning", "learning"},
				WorkEnvironment: model.EnvCompetitive,
			},
			preferences: []string{"learning", "growth"},
			// 1/2*50 + 10
			want: 35,
		},
		{
			name: "full overlap capped at 100",
			profile: model.CompanyProfile{
				Values:          []string{"learning", "learning and growth", "learning culture"},
				CultureKeywords: []string{"learning"},
				WorkEnvironment: model.EnvCollaborative,
			},
			preferences: []string{"learning"},
			want:        100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CultureFit(tt.profile, tt.preferences)
			if !almostEqual(got, tt.want) {
				t.Errorf("CultureFit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCultureFitBounds(t *testing.T) {
	profiles := []model.CompanyProfile{
		{},
		{WorkEnvironment: model.EnvAutonomous},
		{Values: []string{"speed"}, CultureKeywords: []string{"fast-paced"}},
	}
	for _, p := range profiles {
		got := CultureFit(p, []string{"learning", "growth"})
		if got < 0 || got > 100 {
			t.Errorf("CultureFit(%+v) = %v, out of [0,100]", p, got)
		}
	}
}
