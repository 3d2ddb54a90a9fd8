package store

import (
	"sort"
	"sync"

	"github.com/treyhall/jobscout/internal/model"
)

// Ensure MemoryStore implements both store interfaces.
var (
	_ model.CompanyStore  = (*MemoryStore)(nil)
	_ model.AnalysisStore = (*MemoryStore)(nil)
)

// MemoryStore is an in-memory store used in dry-run mode and tests.
// Nothing survives the process. A single mutex serializes all access;
// the write volume here never justifies anything finer.
type MemoryStore struct {
	mu        sync.Mutex
	companies map[string]model.CompanyProfile
	analyses  []model.JobAnalysis
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{companies: make(map[string]model.CompanyProfile)}
}

func (s *MemoryStore) GetCompany(name string) (model.CompanyProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.companies[name]
	return profile, ok, nil
}

func (s *MemoryStore) PutCompany(profile model.CompanyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[profile.Name] = profile
	return nil
}

func (s *MemoryStore) ListCompanies() ([]model.CompanyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profiles := make([]model.CompanyProfile, 0, len(s.companies))
	for _, p := range s.companies {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

func (s *MemoryStore) SaveAnalysis(a model.JobAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = append(s.analyses, a)
	return nil
}

func (s *MemoryStore) ListAnalyses() ([]model.JobAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.JobAnalysis, len(s.analyses))
	copy(out, s.analyses)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AnalyzedAt.After(out[j].AnalyzedAt) })
	return out, nil
}

func (s *MemoryStore) HasAnalysis(jobID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.analyses {
		if a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}
