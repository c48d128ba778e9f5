package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/coseus/cvbuilder/internal/config"
	"github.com/coseus/cvbuilder/internal/fetchjd"
	"github.com/coseus/cvbuilder/internal/keywords"
	"github.com/coseus/cvbuilder/internal/observability"
	"github.com/coseus/cvbuilder/internal/resume"
)

// loadResume reads a resume document from path, accepting both the native
// flat schema and the bilingual nested schema.
func loadResume(path string) (*resume.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume %s: %w", path, err)
	}
	doc, err := resume.Import(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume %s: %w", path, err)
	}
	return doc, nil
}

// saveResume writes the document back as interchange JSON.
func saveResume(path string, doc *resume.Document, includePhoto bool) error {
	data, err := resume.Export(doc, includePhoto)
	if err != nil {
		return fmt.Errorf("failed to serialize resume: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write resume %s: %w", path, err)
	}
	return nil
}

// jobDescription resolves a job description from a text file or a URL.
// Exactly one of the two must be set.
func jobDescription(ctx context.Context, jobFile, jobURL string) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job-file or --url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job-file and --url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	text, err := fetchjd.Fetch(ctx, jobURL)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no job description text found at %s", jobURL)
	}
	return text, nil
}

// extractor builds the keyword extractor from the configured tunables.
func extractor(cfg config.Config) *keywords.Extractor {
	ex := keywords.NewExtractor()
	if cfg.Tunables.MaxKeywords > 0 {
		ex.MaxKeywords = cfg.Tunables.MaxKeywords
	}
	if cfg.Tunables.SimilarityThreshold > 0 {
		ex.SimilarityThreshold = cfg.Tunables.SimilarityThreshold
	}
	return ex
}

// printer returns the verbose printer, or nil when verbose output is off.
// All Print methods are nil-safe.
func printer(cfg config.Config) *observability.Printer {
	if !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stdout)
}
