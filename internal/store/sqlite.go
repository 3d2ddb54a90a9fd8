// Package store persists company profiles and analysis history.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/treyhall/jobscout/internal/model"
)

// Ensure SQLiteStore implements both store interfaces.
var (
	_ model.CompanyStore  = (*SQLiteStore)(nil)
	_ model.AnalysisStore = (*SQLiteStore)(nil)
)

// SQLiteStore keeps company profiles and the append-only analysis
// history in a SQLite database. SQLite serializes writers, which gives
// the per-company last-write-wins behavior concurrent batch runs need.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and
// ensures the tables exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createCompanies := `CREATE TABLE IF NOT EXISTS companies (
		name       TEXT PRIMARY KEY,
		profile    TEXT NOT NULL,
		first_seen DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createCompanies); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating companies table: %w", err)
	}

	createAnalyses := `CREATE TABLE IF NOT EXISTS analyses (
		job_id      TEXT NOT NULL,
		analyzed_at DATETIME NOT NULL,
		analysis    TEXT NOT NULL,
		PRIMARY KEY (job_id, analyzed_at)
	)`
	if _, err := db.Exec(createAnalyses); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating analyses table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// GetCompany loads the cached profile for name. The second return is
// false when the company has not been seen before.
func (s *SQLiteStore) GetCompany(name string) (model.CompanyProfile, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT profile FROM companies WHERE name = ?", name).Scan(&raw)
	if err == sql.ErrNoRows {
		return model.CompanyProfile{}, false, nil
	}
	if err != nil {
		return model.CompanyProfile{}, false, fmt.Errorf("loading company %s: %w", name, err)
	}

	var profile model.CompanyProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return model.CompanyProfile{}, false, fmt.Errorf("decoding company %s: %w", name, err)
	}
	return profile, true, nil
}

// PutCompany stores the profile keyed by its name, replacing any
// existing entry (last write wins).
func (s *SQLiteStore) PutCompany(profile model.CompanyProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding company %s: %w", profile.Name, err)
	}
	_, err = s.db.Exec("INSERT OR REPLACE INTO companies (name, profile) VALUES (?, ?)", profile.Name, string(raw))
	if err != nil {
		return fmt.Errorf("storing company %s: %w", profile.Name, err)
	}
	return nil
}

// ListCompanies returns all cached company profiles ordered by name.
func (s *SQLiteStore) ListCompanies() ([]model.CompanyProfile, error) {
	rows, err := s.db.Query("SELECT profile FROM companies ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var profiles []model.CompanyProfile
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("listing companies: %w", err)
		}
		var profile model.CompanyProfile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			return nil, fmt.Errorf("decoding company row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// SaveAnalysis appends one completed analysis. Records are never
// updated or deleted; re-analyzing the same posting adds a new row
// under the same job_id with a later timestamp.
func (s *SQLiteStore) SaveAnalysis(a model.JobAnalysis) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding analysis %s: %w", a.JobID, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO analyses (job_id, analyzed_at, analysis) VALUES (?, ?, ?)",
		a.JobID, a.AnalyzedAt, string(raw),
	)
	if err != nil {
		return fmt.Errorf("storing analysis %s: %w", a.JobID, err)
	}
	return nil
}

// ListAnalyses returns all stored analyses, newest first.
func (s *SQLiteStore) ListAnalyses() ([]model.JobAnalysis, error) {
	rows, err := s.db.Query("SELECT analysis FROM analyses ORDER BY analyzed_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var analyses []model.JobAnalysis
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("listing analyses: %w", err)
		}
		var a model.JobAnalysis
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return nil, fmt.Errorf("decoding analysis row: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// HasAnalysis returns true if any run for the given job id is stored.
func (s *SQLiteStore) HasAnalysis(jobID string) (bool, error) {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM analyses WHERE job_id = ? LIMIT 1", jobID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking analysis %s: %w", jobID, err)
	}
	return true, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
