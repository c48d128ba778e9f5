package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coseus/cvbuilder/internal/render"
	"github.com/coseus/cvbuilder/internal/resume"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a resume to HTML, PDF or interchange JSON",
	Long:  "Render a resume JSON to one of the available layouts. PDF output prints through headless Chrome; set CHROME_PATH to point at a specific binary.",
	RunE:  runExport,
}

var (
	exportResume       string
	exportFormat       string
	exportLayout       string
	exportOut          string
	exportIncludePhoto bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportResume, "resume", "r", "", "Path to resume JSON (required)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf, html or json")
	exportCmd.Flags().StringVarP(&exportLayout, "layout", "l", "modern", "Layout: modern or europass")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (required)")
	exportCmd.Flags().BoolVar(&exportIncludePhoto, "include-photo", false, "Embed the photo in JSON export")

	exportCmd.MarkFlagRequired("resume")
	exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	doc, err := loadResume(exportResume)
	if err != nil {
		return err
	}

	layout := render.Layout(exportLayout)
	var data []byte
	switch exportFormat {
	case "html":
		html, err := render.HTML(doc, layout)
		if err != nil {
			return err
		}
		data = []byte(html)
	case "pdf":
		data, err = render.PDF(cmd.Context(), doc, layout)
		if err != nil {
			return err
		}
	case "json":
		data, err = resume.Export(doc, exportIncludePhoto)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q: expected pdf, html or json", exportFormat)
	}

	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s (%d bytes)\n", exportOut, len(data))
	return nil
}
