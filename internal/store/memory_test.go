package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/treyhall/jobscout/internal/model"
)

func TestMemoryStoreCompanies(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, _ := s.GetCompany("Initech"); ok {
		t.Fatal("found a company in an empty store")
	}

	for _, name := range []string{"Zeta", "Acme"} {
		if err := s.PutCompany(model.CompanyProfile{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	companies, err := s.ListCompanies()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, c := range companies {
		names = append(names, c.Name)
	}
	if want := []string{"Acme", "Zeta"}; !reflect.DeepEqual(names, want) {
		t.Errorf("ListCompanies order = %v, want %v", names, want)
	}
}

func TestMemoryStoreAnalyses(t *testing.T) {
	s := NewMemoryStore()

	older := testAnalysis("aaa", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 60)
	newer := testAnalysis("bbb", time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), 80)
	if err := s.SaveAnalysis(older); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveAnalysis(newer); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListAnalyses()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].JobID != "bbb" {
		t.Errorf("ListAnalyses = %v, want newest first", got)
	}

	if seen, _ := s.HasAnalysis("aaa"); !seen {
		t.Error("HasAnalysis(aaa) = false")
	}
	if seen, _ := s.HasAnalysis("zzz"); seen {
		t.Error("HasAnalysis(zzz) = true")
	}
}
