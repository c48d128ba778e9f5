package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coseus/cvbuilder/internal/jobstore"
	"github.com/coseus/cvbuilder/internal/resume"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description",
	Long:  "Extract and categorize keywords from a job description, compute coverage against a resume and suggest summary templates. The description comes from a text file or a URL.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile  string
	analyzeURL      string
	analyzeName     string
	analyzeRoleHint string
	analyzeResume   string
	analyzeSave     bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job-file", "j", "", "Path to text file containing the job description")
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVarP(&analyzeName, "name", "n", "", "Name for the saved job record")
	analyzeCmd.Flags().StringVar(&analyzeRoleHint, "role-hint", "", "Role hint for template suggestions (e.g. \"system administrator\")")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Resume JSON to compute keyword coverage against")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis to the job store")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	description, err := jobDescription(cmd.Context(), analyzeJobFile, analyzeURL)
	if err != nil {
		return err
	}

	var doc *resume.Document
	if analyzeResume != "" {
		d, err := loadResume(analyzeResume)
		if err != nil {
			return err
		}
		doc = d
	}

	rec := jobstore.Analyze(description, analyzeName, analyzeRoleHint, doc, extractor(cfg))

	p := printer(cfg)
	p.PrintKeywords(rec.Keywords)
	p.PrintBuckets(rec.Buckets)

	fmt.Fprintf(os.Stdout, "Job id: %s (%d keywords)\n", rec.JobID, len(rec.Keywords))
	if doc != nil {
		fmt.Fprintf(os.Stdout, "Resume coverage: %.0f%% (%d keywords missing)\n", rec.Coverage*100, len(rec.Missing))
	}

	if analyzeSave {
		filename, err := jobstore.NewStore(cfg.JobsDir).Save(rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved job record: %s\n", filename)
	}
	return nil
}
