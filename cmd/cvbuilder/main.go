// Package main provides the cvbuilder command line interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coseus/cvbuilder/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cvbuilder",
	Short: "CV authoring and job-targeting toolkit",
	Long:  "cvbuilder analyzes job descriptions, scores a resume against them, autofills resume data from existing PDF/DOCX documents and renders the result to HTML or PDF.",
}

var (
	configPath string
	dataDir    string
	profileID  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Root directory for profiles and job records")
	rootCmd.PersistentFlags().StringVar(&profileID, "profile", "", "Domain profile id")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress boxes")
}

// loadConfig resolves the effective configuration: file, then environment,
// then flags, with defaults filling whatever is left.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()

	if dataDir != "" {
		cfg.DataDir = dataDir
		cfg.ProfilesDir = filepath.Join(dataDir, "profiles")
		cfg.JobsDir = filepath.Join(dataDir, "jobs")
		cfg.ResumePath = filepath.Join(dataDir, "resume.json")
	}
	if profileID != "" {
		cfg.ProfileID = profileID
	}
	if verbose {
		cfg.Verbose = true
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
