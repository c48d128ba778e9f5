// Package config provides configuration loading and validation for the CLI
// and the API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Tunables are the empirically tuned extraction constants. They are carried
// in configuration rather than hard-coded so they can be recalibrated
// against a real corpus.
type Tunables struct {
	// SimilarityThreshold is the near-duplicate keyword merge ratio.
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty"`
	// RepairMinLength is the shortest token considered by the
	// doubled-glyph PDF repair.
	RepairMinLength int `json:"repair_min_length,omitempty"`
	// MaxKeywords caps the ranked keyword list per analysis.
	MaxKeywords int `json:"max_keywords,omitempty"`
	// JDTopKeywords is how many freshly extracted keywords the JD match
	// sub-score considers.
	JDTopKeywords int `json:"jd_top_keywords,omitempty"`
}

// Config is the application configuration. All fields are optional; missing
// values fall back to defaults, then env, then flags.
type Config struct {
	// Paths
	DataDir     string `json:"data_dir,omitempty"`     // Root for profiles and job records
	ProfilesDir string `json:"profiles_dir,omitempty"` // Domain profile YAML directory
	JobsDir     string `json:"jobs_dir,omitempty"`     // Job store directory
	ResumePath  string `json:"resume_path,omitempty"`  // Default resume JSON path

	// Server
	ServerAddr string `json:"server_addr,omitempty"` // Listen address for serve mode

	// Behavior
	ProfileID string   `json:"profile_id,omitempty"` // Default domain profile
	Verbose   bool     `json:"verbose,omitempty"`    // Print detailed progress boxes
	Tunables  Tunables `json:"tunables,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:     ".cvbuilder",
		ProfilesDir: filepath.Join(".cvbuilder", "profiles"),
		JobsDir:     filepath.Join(".cvbuilder", "jobs"),
		ResumePath:  filepath.Join(".cvbuilder", "resume.json"),
		ServerAddr:  ":8080",
		ProfileID:   "cyber_security",
		Tunables: Tunables{
			SimilarityThreshold: 0.92,
			RepairMinLength:     4,
			MaxKeywords:         50,
			JDTopKeywords:       38,
		},
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv overlays CVBUILDER_* environment variables onto c.
func (c *Config) FromEnv() {
	if v := os.Getenv("CVBUILDER_DATA_DIR"); v != "" {
		c.DataDir = v
		c.ProfilesDir = filepath.Join(v, "profiles")
		c.JobsDir = filepath.Join(v, "jobs")
		c.ResumePath = filepath.Join(v, "resume.json")
	}
	if v := os.Getenv("CVBUILDER_PROFILES_DIR"); v != "" {
		c.ProfilesDir = v
	}
	if v := os.Getenv("CVBUILDER_JOBS_DIR"); v != "" {
		c.JobsDir = v
	}
	if v := os.Getenv("CVBUILDER_SERVER_ADDR"); v != "" {
		c.ServerAddr = v
	}
	if v := os.Getenv("CVBUILDER_PROFILE"); v != "" {
		c.ProfileID = v
	}
	if v := os.Getenv("CVBUILDER_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	t := c.Tunables
	if t.SimilarityThreshold < 0 || t.SimilarityThreshold > 1 {
		return fmt.Errorf("config error: 'similarity_threshold' must be between 0 and 1")
	}
	if t.RepairMinLength < 0 {
		return fmt.Errorf("config error: 'repair_min_length' must be non-negative")
	}
	if t.MaxKeywords < 0 {
		return fmt.Errorf("config error: 'max_keywords' must be non-negative")
	}
	if t.JDTopKeywords < 0 {
		return fmt.Errorf("config error: 'jd_top_keywords' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns c with empty fields filled from defaults.
// Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.ProfilesDir == "" {
		result.ProfilesDir = defaults.ProfilesDir
	}
	if result.JobsDir == "" {
		result.JobsDir = defaults.JobsDir
	}
	if result.ResumePath == "" {
		result.ResumePath = defaults.ResumePath
	}
	if result.ServerAddr == "" {
		result.ServerAddr = defaults.ServerAddr
	}
	if result.ProfileID == "" {
		result.ProfileID = defaults.ProfileID
	}

	if result.Tunables.SimilarityThreshold == 0 {
		result.Tunables.SimilarityThreshold = defaults.Tunables.SimilarityThreshold
	}
	if result.Tunables.RepairMinLength == 0 {
		result.Tunables.RepairMinLength = defaults.Tunables.RepairMinLength
	}
	if result.Tunables.MaxKeywords == 0 {
		result.Tunables.MaxKeywords = defaults.Tunables.MaxKeywords
	}
	if result.Tunables.JDTopKeywords == 0 {
		result.Tunables.JDTopKeywords = defaults.Tunables.JDTopKeywords
	}

	return result
}
