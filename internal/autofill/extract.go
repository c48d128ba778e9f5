// Package autofill parses raw text extracted from uploaded PDF/DOCX résumés
// into a partial structured document. Every sub-extraction is best-effort:
// a miss yields an empty field, never an error.
package autofill

import "github.com/coseus/cvbuilder/internal/resume"

// Extract runs the extraction passes over raw document text and assembles
// their results into a partial document suitable for a fill-gaps merge.
func Extract(rawText string) *resume.Document {
	return ExtractWithRepair(rawText, DefaultRepairMinLength)
}

// ExtractWithRepair is Extract with a caller-chosen doubled-glyph repair
// threshold.
func ExtractWithRepair(rawText string, repairMinLen int) *resume.Document {
	text := RepairDoubledGlyphs(rawText, repairMinLen)

	d := &resume.Document{}
	d.FullName, d.Headline, d.ProfileLine = extractName(text)

	contact := extractContact(text)
	d.Email = contact.Email
	d.Phone = contact.Phone
	d.Location = contact.Location
	d.LinkedIn = contact.LinkedIn
	d.GitHub = contact.GitHub
	d.Website = contact.Website

	d.SummaryBullets = extractSummary(text)
	d.Experience = extractExperience(text)
	d.Education = extractEducation(text)
	d.Languages = extractLanguages(text)
	d.DrivingLicense = extractDrivingLicense(text)
	return d
}

// ExtractFile reads a PDF or DOCX from disk and extracts a partial document
// from its text. Unsupported extensions fail with ErrUnsupportedFormat.
func ExtractFile(path string) (*resume.Document, error) {
	text, err := ReadDocumentText(path)
	if err != nil {
		return nil, err
	}
	return Extract(text), nil
}
