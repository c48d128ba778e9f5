package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coseus/cvbuilder/internal/jobstore"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage saved job analyses",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved job analyses, newest first",
	RunE:  runJobsList,
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <filename>",
	Short: "Show one saved job analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a saved job analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsDelete,
}

var jobsApplyCmd = &cobra.Command{
	Use:   "apply <filename>",
	Short: "Apply a saved job analysis to a resume",
	Long:  "Copy the saved analysis onto the resume's job state: keywords, buckets, coverage, suggested templates and the keyword overlay. User content is not modified.",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsApply,
}

var jobsApplyResume string

func init() {
	jobsApplyCmd.Flags().StringVarP(&jobsApplyResume, "resume", "r", "", "Path to resume JSON (required)")
	jobsApplyCmd.MarkFlagRequired("resume")

	jobsCmd.AddCommand(jobsListCmd, jobsShowCmd, jobsDeleteCmd, jobsApplyCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := jobstore.NewStore(cfg.JobsDir).List()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer(cfg).PrintJobRecords(records)
		return nil
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No saved job analyses")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(os.Stdout, "%s  %-12s  %s\n", rec.SavedAt.Format("2006-01-02 15:04"), rec.JobID, rec.Filename)
	}
	return nil
}

func runJobsShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rec, err := jobstore.NewStore(cfg.JobsDir).Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Name:      %s\n", rec.Name)
	fmt.Fprintf(os.Stdout, "Job id:    %s\n", rec.JobID)
	fmt.Fprintf(os.Stdout, "Saved at:  %s\n", rec.SavedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(os.Stdout, "Keywords:  %d\n", len(rec.Keywords))
	if rec.Coverage > 0 {
		fmt.Fprintf(os.Stdout, "Coverage:  %.0f%%\n", rec.Coverage*100)
	}

	p := printer(cfg)
	p.PrintKeywords(rec.Keywords)
	p.PrintBuckets(rec.Buckets)
	return nil
}

func runJobsDelete(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := jobstore.NewStore(cfg.JobsDir).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Deleted job record: %s\n", args[0])
	return nil
}

func runJobsApply(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rec, err := jobstore.NewStore(cfg.JobsDir).Load(args[0])
	if err != nil {
		return err
	}
	doc, err := loadResume(jobsApplyResume)
	if err != nil {
		return err
	}

	jobstore.ApplyOverlay(doc, rec)
	if err := saveResume(jobsApplyResume, doc, false); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Applied job %s to %s\n", rec.JobID, jobsApplyResume)
	return nil
}
