package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file at the data directory root.
const FileName = "ledgerline.yaml"

// Config represents the top-level ledgerline.yaml configuration.
type Config struct {
	Business  BusinessConfig  `yaml:"business"`
	Reporting ReportingConfig `yaml:"reporting"`
	Git       GitConfig       `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217 code, display only
}

// ReportingConfig controls how cashflow reports are computed.
type ReportingConfig struct {
	// DefaultGranularity is the period type used when none is given:
	// day, week, month, quarter or year.
	DefaultGranularity string `yaml:"default_granularity"`
	// EnforceDealEndDates stops recurring deal contributions after the
	// deal's end date instead of treating contracts as open-ended.
	EnforceDealEndDates bool `yaml:"enforce_deal_end_dates"`
	// ForecastMonths is the default pipeline forecast horizon.
	ForecastMonths int `yaml:"forecast_months"`
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a ledgerline.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, currency string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: currency,
		},
		Reporting: ReportingConfig{
			DefaultGranularity:  "month",
			EnforceDealEndDates: false,
			ForecastMonths:      6,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Ledgerline",
			AuthorEmail: "bot@ledgerline.dev",
		},
	}
}
