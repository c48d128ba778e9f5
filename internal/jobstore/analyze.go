package jobstore

import (
	"github.com/coseus/cvbuilder/internal/keywords"
	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/scoring"
)

// Analyze runs the full job-description pipeline and assembles an unsaved
// record: keyword extraction, category bucketing, coverage against the
// document (when one is provided), suggested templates and the grouped
// technical-skills lines. A nil extractor means default limits. Re-running
// on the same text yields the same record apart from SavedAt.
func Analyze(description, name, roleHint string, doc *resume.Document, ex *keywords.Extractor) *Record {
	if ex == nil {
		ex = keywords.NewExtractor()
	}
	kws := ex.Extract(description)
	buckets := keywords.Categorize(keywords.Texts(kws))

	rec := &Record{
		JobID:                JobID(description),
		Name:                 name,
		RoleHint:             roleHint,
		Description:          description,
		Keywords:             kws,
		Buckets:              buckets,
		Templates:            keywords.SuggestTemplates(roleHint, buckets),
		TechnicalSkillsLines: keywords.TechnicalSkillsLines(buckets),
	}
	if doc != nil {
		rec.Coverage, rec.Missing = scoring.Coverage(doc, keywords.Texts(kws))
		rec.ProfileID = doc.ProfileID
	}
	rec.Overlay = Overlay{
		KeywordsToAdd: rec.Missing,
		Templates:     rec.Templates,
	}
	return rec
}
