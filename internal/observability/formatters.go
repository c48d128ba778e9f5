// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/coseus/cvbuilder/internal/jobstore"
	"github.com/coseus/cvbuilder/internal/keywords"
	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/scoring"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs the ranked keyword list from a job analysis.
// A nil Printer discards everything, so callers can pass one through
// unconditionally and let verbose mode decide.
func (p *Printer) PrintKeywords(kws []keywords.Keyword) {
	if p == nil || len(kws) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d keywords:\n\n", len(kws)))

	count := min(len(kws), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %-30s %.1f\n", kws[i].Text, kws[i].Score))
	}
	if len(kws) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kws)-count))
	}

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBuckets outputs the categorized keyword buckets.
func (p *Printer) PrintBuckets(buckets keywords.Buckets) {
	if p == nil || len(buckets) == 0 {
		return
	}

	var sb strings.Builder
	for _, cat := range keywords.CategoryOrder {
		items := buckets.Get(cat)
		if len(items) == 0 {
			continue
		}
		shown := items
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("%s:\n", keywords.CategoryLabels[cat]))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(shown, ", ")))
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD BUCKETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the ATS score breakdown with diagnostics.
func (p *Printer) PrintScoreReport(report *scoring.Report) {
	if p == nil || report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score:      %d / 100\n\n", report.Overall))
	sb.WriteString(fmt.Sprintf("Profile keywords:   %d%%\n", report.KeywordCoverage))
	sb.WriteString(fmt.Sprintf("JD match:           %d%%\n", report.JDMatch))
	sb.WriteString(fmt.Sprintf("Metrics coverage:   %d%%\n", report.MetricsCoverage))
	sb.WriteString(fmt.Sprintf("Verb variety:       %d%%\n", report.VerbVariety))
	sb.WriteString(fmt.Sprintf("Completeness:       %d%%\n", report.Completeness))

	if len(report.MissingProfileKeywords) > 0 {
		sb.WriteString("\nMissing profile keywords:\n")
		shown := report.MissingProfileKeywords
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(shown, ", ")))
		if len(report.MissingProfileKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingProfileKeywords)-maxItemsToShow))
		}
	}

	if len(report.RepeatedStartingVerbs) > 0 {
		sb.WriteString("\nRepeated bullet verbs:\n")
		for _, vc := range report.RepeatedStartingVerbs {
			sb.WriteString(fmt.Sprintf("  %s (%d)\n", vc.Verb, vc.Count))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAutofillSummary outputs what the document extractor found.
func (p *Printer) PrintAutofillSummary(d *resume.Document) {
	if p == nil || d == nil {
		return
	}

	var sb strings.Builder
	field := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%-10s %s\n", label+":", value))
		}
	}
	field("Name", d.FullName)
	field("Headline", d.Headline)
	field("Email", d.Email)
	field("Phone", d.Phone)
	field("Location", d.Location)
	sb.WriteString(fmt.Sprintf("\nSummary bullets: %d\n", len(d.SummaryBullets)))
	sb.WriteString(fmt.Sprintf("Experience:      %d\n", len(d.Experience)))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", len(d.Education)))
	sb.WriteString(fmt.Sprintf("Languages:       %d", len(d.Languages)))

	p.printBox("AUTOFILL RESULT", sb.String())
}

// PrintJobRecords outputs the saved job analyses, newest first.
func (p *Printer) PrintJobRecords(records []*jobstore.Record) {
	if p == nil {
		return
	}
	if len(records) == 0 {
		p.printBox("SAVED JOBS", "No saved job analyses")
		return
	}

	var sb strings.Builder
	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := records[i]
		sb.WriteString(fmt.Sprintf("%s  %s\n", rec.SavedAt.Format("2006-01-02"), rec.Name))
		sb.WriteString(fmt.Sprintf("  id %s  coverage %.0f%%  %s\n", rec.JobID, rec.Coverage*100, rec.Filename))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(records)-maxItemsToShow))
	}

	p.printBox("SAVED JOBS", sb.String())
}
