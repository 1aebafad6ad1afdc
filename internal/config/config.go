// Package config loads the pipeline configuration from an optional YAML
// file and Kaggle credentials from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the full pipeline configuration. Every field has a default
// matching the original tool's hard-coded constants, so an absent file
// reproduces its behavior exactly.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Files    FilesConfig    `yaml:"files"`
	Database DatabaseConfig `yaml:"database"`
	Rules    RulesConfig    `yaml:"rules"`
	Report   ReportConfig   `yaml:"report"`
}

type DatasetConfig struct {
	// Slug is the owner/name identifier of the remote dataset.
	Slug string `yaml:"slug"`
	Dir  string `yaml:"dir"`
}

type FilesConfig struct {
	Albums string `yaml:"albums"`
	Tracks string `yaml:"tracks"`
}

type DatabaseConfig struct {
	Path  string `yaml:"path"`
	Table string `yaml:"table"`
}

type RulesConfig struct {
	// RadioMixMaxSec is the longest duration still considered a radio mix.
	RadioMixMaxSec float64 `yaml:"radio_mix_max_sec"`
	// MinPopularity is exclusive: kept rows have popularity strictly above it.
	MinPopularity int64 `yaml:"min_popularity"`
}

type ReportConfig struct {
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	LabelLimit int    `yaml:"label_limit"`
	TrackLimit int    `yaml:"track_limit"`
	LabelChart string `yaml:"label_chart"`
	TrackChart string `yaml:"track_chart"`
	Workbook   string `yaml:"workbook"`
}

// Credentials holds the Kaggle API credentials, read from the
// environment (optionally seeded from a .env file by the caller).
type Credentials struct {
	Username string `envconfig:"KAGGLE_USERNAME"`
	Key      string `envconfig:"KAGGLE_KEY"`
}

// Default returns the configuration matching the original tool.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			Slug: "tonygordonjr/spotify-dataset-2023",
			Dir:  "data",
		},
		Files: FilesConfig{
			Albums: "data/spotify-albums_data_2023.csv",
			Tracks: "data/spotify_tracks_data_2023.csv",
		},
		Database: DatabaseConfig{
			Path:  "spotify.db",
			Table: "spotify_tracks",
		},
		Rules: RulesConfig{
			RadioMixMaxSec: 180,
			MinPopularity:  50,
		},
		Report: ReportConfig{
			From:       "2020-01-01",
			To:         "2023-12-31",
			LabelLimit: 20,
			TrackLimit: 25,
			LabelChart: "top_20_labels_by_track_count.png",
			TrackChart: "top_25_popular_tracks_between_2020_to_2023.png",
			Workbook:   "spotify_report.xlsx",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadCredentials reads Kaggle credentials from the environment. Both
// fields may be empty; acquisition fails (non-fatally) without them.
func LoadCredentials() (Credentials, error) {
	var creds Credentials
	if err := envconfig.Process("", &creds); err != nil {
		return Credentials{}, fmt.Errorf("config: credentials: %w", err)
	}
	return creds, nil
}

func (c Config) validate() error {
	if _, _, err := c.ReportRange(); err != nil {
		return err
	}
	if c.Database.Table == "" {
		return fmt.Errorf("config: database.table must not be empty")
	}
	if c.Report.LabelLimit <= 0 || c.Report.TrackLimit <= 0 {
		return fmt.Errorf("config: report limits must be positive")
	}
	return nil
}

// ReportRange parses the report date bounds.
func (c Config) ReportRange() (from, to time.Time, err error) {
	from, err = time.Parse("2006-01-02", c.Report.From)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("config: report.from: %w", err)
	}
	to, err = time.Parse("2006-01-02", c.Report.To)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("config: report.to: %w", err)
	}
	return from, to, nil
}
