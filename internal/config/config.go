package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/treyhall/jobscout/internal/model"
)

// Config is the root configuration for jobscout.
type Config struct {
	Profile      model.CandidateProfile
	AI           AIConfig
	Fetch        FetchConfig
	Store        StoreConfig
	Watch        WatchConfig
	Notification NotificationConfig
}

// AIConfig controls the optional language-model advisor.
type AIConfig struct {
	Enabled bool
	BaseURL string        // defaults to https://api.openai.com/v1
	Model   string        // model identifier, e.g. "gpt-4o-mini"
	APIKey  string        // expanded from env var by Load
	Timeout time.Duration // per-request timeout
}

// FetchConfig controls document retrieval.
type FetchConfig struct {
	Timeout    time.Duration // per-fetch deadline
	MaxRetries int           // additional attempts after the first failure
	RetryDelay time.Duration // delay before the first retry, doubled after
	MinDelay   time.Duration // minimum gap between requests to the same host
}

// StoreConfig locates the SQLite database holding company profiles and
// analysis history.
type StoreConfig struct {
	Path string
}

// WatchConfig controls watch mode: the URL list re-analyzed on an
// interval, the pre-analysis filters, and the notification threshold.
type WatchConfig struct {
	Interval  time.Duration
	URLs      []string
	MinRating float64 // notify only for analyses rated at least this
	Filters   FilterConfig
}

// FilterConfig holds keyword filters applied to postings in watch mode.
type FilterConfig struct {
	TitleKeywords []string
	Locations     []string
}

// NotificationConfig selects the notifier used in watch mode.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
}

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// rawConfig is used for YAML unmarshaling (snake_case fields and
// durations as strings).
type rawConfig struct {
	Profile      rawProfile         `yaml:"profile"`
	AI           rawAIConfig        `yaml:"ai"`
	Fetch        rawFetchConfig     `yaml:"fetch"`
	Store        StoreConfig        `yaml:"store"`
	Watch        rawWatchConfig     `yaml:"watch"`
	Notification NotificationConfig `yaml:"notification"`
}

type rawProfile struct {
	CurrentRole     string            `yaml:"current_role"`
	TargetRole      string            `yaml:"target_role"`
	ExperienceYears int               `yaml:"experience_years"`
	SuccessRate     float64           `yaml:"success_rate"`
	CultureValues   []string          `yaml:"culture_values"`
	Skills          map[string][]string `yaml:"skills"` // tier -> skill names
}

type rawAIConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

type rawFetchConfig struct {
	Timeout    string `yaml:"timeout"`
	MaxRetries *int   `yaml:"max_retries"`
	RetryDelay string `yaml:"retry_delay"`
	MinDelay   string `yaml:"min_delay"`
}

type rawWatchConfig struct {
	Interval  string          `yaml:"interval"`
	URLs      []string        `yaml:"urls"`
	MinRating float64         `yaml:"min_rating"`
	Filters   rawFilterConfig `yaml:"filters"`
}

type rawFilterConfig struct {
	TitleKeywords []string `yaml:"title_keywords"`
	Locations     []string `yaml:"locations"`
}

var skillTiers = map[string]model.SkillTier{
	"expert":     model.TierExpert,
	"proficient": model.TierProficient,
	"developing": model.TierDeveloping,
	"interested": model.TierInterested,
}

// Load reads and parses the YAML config file at path, validates it, and
// returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	profile, err := buildProfile(raw.Profile)
	if err != nil {
		return nil, err
	}

	aiTimeout := 10 * time.Second // default
	if raw.AI.Timeout != "" {
		aiTimeout, err = time.ParseDuration(raw.AI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse ai.timeout %q: %w", raw.AI.Timeout, err)
		}
	}

	aiBaseURL := raw.AI.BaseURL
	if aiBaseURL == "" {
		aiBaseURL = defaultOpenAIBaseURL
	}

	fetchTimeout := 15 * time.Second // default
	if raw.Fetch.Timeout != "" {
		fetchTimeout, err = time.ParseDuration(raw.Fetch.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse fetch.timeout %q: %w", raw.Fetch.Timeout, err)
		}
	}

	maxRetries := 2 // default
	if raw.Fetch.MaxRetries != nil {
		maxRetries = *raw.Fetch.MaxRetries
	}

	retryDelay := 5 * time.Second // default
	if raw.Fetch.RetryDelay != "" {
		retryDelay, err = time.ParseDuration(raw.Fetch.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("parse fetch.retry_delay %q: %w", raw.Fetch.RetryDelay, err)
		}
	}

	minDelay := 2 * time.Second // default
	if raw.Fetch.MinDelay != "" {
		minDelay, err = time.ParseDuration(raw.Fetch.MinDelay)
		if err != nil {
			return nil, fmt.Errorf("parse fetch.min_delay %q: %w", raw.Fetch.MinDelay, err)
		}
	}

	storePath := raw.Store.Path
	if storePath == "" {
		storePath = "jobscout.db"
	}

	watchInterval := 30 * time.Minute // default
	if raw.Watch.Interval != "" {
		watchInterval, err = time.ParseDuration(raw.Watch.Interval)
		if err != nil {
			return nil, fmt.Errorf("parse watch.interval %q: %w", raw.Watch.Interval, err)
		}
	}

	minRating := raw.Watch.MinRating
	if minRating == 0 {
		minRating = 70
	}

	cfg := &Config{
		Profile: profile,
		AI: AIConfig{
			Enabled: raw.AI.Enabled,
			BaseURL: aiBaseURL,
			Model:   raw.AI.Model,
			APIKey:  raw.AI.APIKey,
			Timeout: aiTimeout,
		},
		Fetch: FetchConfig{
			Timeout:    fetchTimeout,
			MaxRetries: maxRetries,
			RetryDelay: retryDelay,
			MinDelay:   minDelay,
		},
		Store: StoreConfig{Path: storePath},
		Watch: WatchConfig{
			Interval:  watchInterval,
			URLs:      raw.Watch.URLs,
			MinRating: minRating,
			Filters: FilterConfig{
				TitleKeywords: raw.Watch.Filters.TitleKeywords,
				Locations:     raw.Watch.Filters.Locations,
			},
		},
		Notification: raw.Notification,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildProfile converts the tier->names YAML shape into the flat
// name->tier map the engine uses, rejecting duplicate skill names.
func buildProfile(raw rawProfile) (model.CandidateProfile, error) {
	skills := make(map[string]model.SkillTier)
	for tierName, names := range raw.Skills {
		tier, ok := skillTiers[tierName]
		if !ok {
			return model.CandidateProfile{}, fmt.Errorf("unknown skill tier %q", tierName)
		}
		for _, name := range names {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if _, dup := skills[name]; dup {
				return model.CandidateProfile{}, fmt.Errorf("skill %q listed in more than one tier", name)
			}
			skills[name] = tier
		}
	}

	prefs := make([]string, 0, len(raw.CultureValues))
	for _, v := range raw.CultureValues {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			prefs = append(prefs, v)
		}
	}

	return model.CandidateProfile{
		Skills:             skills,
		CulturePreferences: prefs,
		CurrentRole:        raw.CurrentRole,
		TargetRole:         raw.TargetRole,
		ExperienceYears:    raw.ExperienceYears,
		SuccessRate:        raw.SuccessRate,
	}, nil
}

func validate(cfg *Config) error {
	if len(cfg.Profile.Skills) == 0 {
		return fmt.Errorf("profile.skills must list at least one skill")
	}

	if cfg.Profile.ExperienceYears < 0 {
		return fmt.Errorf("profile.experience_years must be >= 0, got %d", cfg.Profile.ExperienceYears)
	}

	if cfg.Profile.SuccessRate < 0 || cfg.Profile.SuccessRate > 1 {
		return fmt.Errorf("profile.success_rate must be in [0,1], got %v", cfg.Profile.SuccessRate)
	}

	if cfg.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive, got %v", cfg.Fetch.Timeout)
	}

	if cfg.Fetch.MaxRetries < 0 {
		return fmt.Errorf("fetch.max_retries must be >= 0, got %d", cfg.Fetch.MaxRetries)
	}

	if cfg.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be positive, got %v", cfg.Watch.Interval)
	}

	if cfg.Watch.MinRating < 0 || cfg.Watch.MinRating > 100 {
		return fmt.Errorf("watch.min_rating must be in [0,100], got %v", cfg.Watch.MinRating)
	}

	if cfg.Notification.Type == "slack" {
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if !strings.HasPrefix(cfg.Notification.WebhookURL, "https://hooks.slack.com/") {
			return fmt.Errorf("notification.webhook_url must start with https://hooks.slack.com/")
		}
	}

	if cfg.AI.Enabled {
		if cfg.AI.APIKey == "" {
			return fmt.Errorf("ai.api_key is required when ai.enabled is true")
		}
		if cfg.AI.Model == "" {
			return fmt.Errorf("ai.model is required when ai.enabled is true")
		}
	}

	return nil
}
