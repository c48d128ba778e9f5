package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coseus/cvbuilder/internal/profile"
	"github.com/coseus/cvbuilder/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a domain profile and job description",
	Long:  "Compute the ATS readiness score: profile keyword coverage, job description match, metrics coverage, verb variety and completeness.",
	RunE:  runScore,
}

var (
	scoreResume  string
	scoreJobFile string
	scoreURL     string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job-file", "j", "", "Path to text file containing the job description")
	scoreCmd.Flags().StringVarP(&scoreURL, "url", "u", "", "URL to fetch the job description from")

	scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := loadResume(scoreResume)
	if err != nil {
		return err
	}
	doc.EnsureDefaults()

	// The job description is optional; without one the JD match sub-score
	// scores full marks.
	var jdText string
	if scoreJobFile != "" || scoreURL != "" {
		jdText, err = jobDescription(cmd.Context(), scoreJobFile, scoreURL)
		if err != nil {
			return err
		}
	}

	prof, err := profile.LoadFromDir(cfg.ProfilesDir, cfg.ProfileID)
	if err != nil {
		prof = profile.Default()
	}

	engine := scoring.NewEngine()
	if cfg.Tunables.JDTopKeywords > 0 {
		engine.JDTopKeywords = cfg.Tunables.JDTopKeywords
	}
	report := engine.Score(doc, prof.FlattenKeywords(), jdText)

	if cfg.Verbose {
		printer(cfg).PrintScoreReport(report)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Overall: %d/100 (keywords %d%%, jd %d%%, metrics %d%%, verbs %d%%, completeness %d%%)\n",
		report.Overall, report.KeywordCoverage, report.JDMatch,
		report.MetricsCoverage, report.VerbVariety, report.Completeness)
	return nil
}
