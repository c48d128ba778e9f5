package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coseus/cvbuilder/internal/autofill"
	"github.com/coseus/cvbuilder/internal/resume"
)

var autofillCmd = &cobra.Command{
	Use:   "autofill <document.pdf|document.docx>",
	Short: "Extract resume data from an existing PDF or DOCX",
	Long:  "Parse an existing resume document, extract contact details, summary, experience, education and languages, and merge them into a resume JSON. The merge only fills gaps; existing values are never overwritten.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAutofill,
}

var (
	autofillResume string
	autofillOut    string
)

func init() {
	autofillCmd.Flags().StringVarP(&autofillResume, "resume", "r", "", "Existing resume JSON to merge the extraction into")
	autofillCmd.Flags().StringVarP(&autofillOut, "out", "o", "", "Output path for the resulting resume JSON (required)")

	autofillCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(autofillCmd)
}

func runAutofill(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := autofill.ReadDocumentText(args[0])
	if err != nil {
		return err
	}
	extracted := autofill.ExtractWithRepair(text, cfg.Tunables.RepairMinLength)
	printer(cfg).PrintAutofillSummary(extracted)

	doc := extracted
	if autofillResume != "" {
		target, err := loadResume(autofillResume)
		if err != nil {
			return err
		}
		resume.Merge(target, extracted)
		doc = target
	}
	doc.EnsureDefaults()

	if err := saveResume(autofillOut, doc, false); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote resume: %s\n", autofillOut)
	return nil
}
