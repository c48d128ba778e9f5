// Package scoring computes the ATS-oriented composite score of a résumé
// against a domain profile's keyword set and a live job description.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/coseus/cvbuilder/internal/keywords"
	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/textutil"
)

// Sub-score weights of the overall composite.
const (
	weightKeywordCoverage = 0.25
	weightJDMatch         = 0.25
	weightMetrics         = 0.20
	weightVerbVariety     = 0.15
	weightCompleteness    = 0.15
)

// Default diagnostic caps and the JD keyword window.
const (
	DefaultJDTopKeywords     = 38
	maxMissingKeywords       = 50
	maxBulletsMissingMetrics = 20
	maxRepeatedVerbs         = 10
	repeatedVerbThreshold    = 3
)

// VerbCount is one repeated bullet-starting verb with its occurrence count.
type VerbCount struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// Report carries the five percentage sub-scores, the weighted overall score
// and the actionable diagnostics.
type Report struct {
	KeywordCoverage int `json:"keyword_coverage"`
	JDMatch         int `json:"jd_match"`
	MetricsCoverage int `json:"metrics_coverage"`
	VerbVariety     int `json:"verb_variety"`
	Completeness    int `json:"completeness"`
	Overall         int `json:"overall"`

	MissingProfileKeywords []string    `json:"missing_profile_keywords,omitempty"`
	MissingJDKeywords      []string    `json:"missing_jd_keywords,omitempty"`
	BulletsMissingMetrics  []string    `json:"bullets_missing_metrics,omitempty"`
	RepeatedStartingVerbs  []VerbCount `json:"repeated_starting_verbs,omitempty"`
}

// Engine scores documents. The zero value is not usable; use NewEngine.
type Engine struct {
	// JDTopKeywords bounds the freshly extracted JD keyword window used
	// for the jd_match sub-score.
	JDTopKeywords int
}

// NewEngine returns an Engine with default limits.
func NewEngine() *Engine {
	return &Engine{JDTopKeywords: DefaultJDTopKeywords}
}

func pct(numerator, denominator int) int {
	if denominator < 1 {
		denominator = 1
	}
	return int(math.Round(100 * float64(numerator) / float64(denominator)))
}

// Score computes the composite report for a document against the flattened
// profile keyword set and the raw job description text. The JD keywords are
// extracted fresh from jdText rather than read from any persisted analysis.
// All ratios are safe on empty documents: zero bullets score zero, never
// NaN.
func (e *Engine) Score(doc *resume.Document, profileKeywords []string, jdText string) *Report {
	blob := textutil.Normalize(doc.TextBlob())

	report := &Report{}

	// Profile keyword coverage: case-insensitive containment in the blob.
	var missingProfile []string
	present := 0
	for _, kw := range profileKeywords {
		if strings.Contains(blob, strings.ToLower(kw)) {
			present++
		} else {
			missingProfile = append(missingProfile, kw)
		}
	}
	report.KeywordCoverage = pct(present, len(profileKeywords))
	report.MissingProfileKeywords = capList(missingProfile, maxMissingKeywords)

	// JD match against the freshly extracted top keywords.
	jdKeywords := keywords.Texts(keywords.Extract(jdText, e.JDTopKeywords))
	var missingJD []string
	matched := 0
	for _, kw := range jdKeywords {
		if strings.Contains(blob, kw) {
			matched++
		} else {
			missingJD = append(missingJD, kw)
		}
	}
	report.JDMatch = pct(matched, len(jdKeywords))
	report.MissingJDKeywords = capList(missingJD, maxMissingKeywords)

	// Bullet-level heuristics.
	bullets := doc.AllBullets()
	if len(bullets) == 0 {
		report.MetricsCoverage = 0
		report.VerbVariety = 0
	} else {
		withMetrics := 0
		var missingMetrics []string
		for _, b := range bullets {
			if BulletHasMetric(b) {
				withMetrics++
			} else {
				missingMetrics = append(missingMetrics, b)
			}
		}
		report.MetricsCoverage = pct(withMetrics, len(bullets))
		report.BulletsMissingMetrics = capList(missingMetrics, maxBulletsMissingMetrics)

		report.VerbVariety, report.RepeatedStartingVerbs = verbVariety(bullets)
	}

	// Completeness: six fixed presence checks.
	checks := []bool{
		doc.FullName != "",
		doc.Email != "",
		doc.Phone != "",
		doc.SummaryText() != "",
		doc.SkillsTools != "" || doc.SkillsHeadline != "" || len(doc.Skills) > 0,
		len(doc.Experience) > 0,
	}
	passing := 0
	for _, c := range checks {
		if c {
			passing++
		}
	}
	report.Completeness = pct(passing, len(checks))

	report.Overall = int(math.Round(
		weightKeywordCoverage*float64(report.KeywordCoverage) +
			weightJDMatch*float64(report.JDMatch) +
			weightMetrics*float64(report.MetricsCoverage) +
			weightVerbVariety*float64(report.VerbVariety) +
			weightCompleteness*float64(report.Completeness)))

	return report
}

// verbVariety computes the distinct-starting-verb ratio and the repeated
// verb diagnostics (count >= 3, sorted by descending count then verb).
func verbVariety(bullets []string) (int, []VerbCount) {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, b := range bullets {
		v := strings.ToLower(StartingVerb(b))
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
		total++
	}
	variety := pct(len(counts), total)

	var repeated []VerbCount
	for _, v := range order {
		if counts[v] >= repeatedVerbThreshold {
			repeated = append(repeated, VerbCount{Verb: v, Count: counts[v]})
		}
	}
	sort.Slice(repeated, func(i, j int) bool {
		if repeated[i].Count != repeated[j].Count {
			return repeated[i].Count > repeated[j].Count
		}
		return repeated[i].Verb < repeated[j].Verb
	})
	if len(repeated) > maxRepeatedVerbs {
		repeated = repeated[:maxRepeatedVerbs]
	}
	return variety, repeated
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// Coverage returns the fraction of jdKeywords found in the résumé blob and
// the missing list, mirroring the JD analyzer's coverage readout.
func Coverage(doc *resume.Document, jdKeywords []string) (float64, []string) {
	blob := textutil.Normalize(doc.TextBlob())
	found := 0
	var missing []string
	for _, kw := range jdKeywords {
		k := keywords.NormalizeKeyword(kw)
		if k == "" {
			continue
		}
		if strings.Contains(blob, k) {
			found++
		} else {
			missing = append(missing, k)
		}
	}
	total := found + len(missing)
	if total < 1 {
		total = 1
	}
	return float64(found) / float64(total), missing
}
