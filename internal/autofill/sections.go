package autofill

import (
	"regexp"
	"strings"

	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/textutil"
)

const (
	nameScanLines     = 25
	maxSummaryBullets = 5
	maxEducation      = 5
	minSummaryLen     = 25
)

var (
	nameLineRe = regexp.MustCompile(`^(?:[A-ZĂÂÎȘȚ][a-zA-ZăâîșțĂÂÎȘȚ'\-]+\s+){1,4}[A-ZĂÂÎȘȚ][a-zA-ZăâîșțĂÂÎȘȚ'\-]+$`)

	summaryHeadingRe  = regexp.MustCompile(`(?i)^\s*(?:about\s+me|despre\s+mine|summary|rezumat|profil(?:e)?)\s*:?\s*$`)
	sectionHeadingRe  = regexp.MustCompile(`(?i)^\s*(?:work\s+experience|experien[țt][aă]|education|educa[țt]ie|skills|competen[țt]e|foreign\s+languages|limbi\s+str[aă]ine|driving\s+licen[cs]e|permis\s+de\s+conducere|certifications?|projects?)\b`)
	educationHeadRe   = regexp.MustCompile(`(?i)^\s*(?:education|educa[țt]ie)\b`)
	languagesHeadRe   = regexp.MustCompile(`(?i)^\s*(?:foreign\s+languages|limbi\s+str[aă]ine|languages?|limbi)\s*:?\s*$`)
	drivingHeadRe     = regexp.MustCompile(`(?i)(?:driving\s+licen[cs]e|permis\s+de\s+conducere)`)
	drivingCategoryRe = regexp.MustCompile(`(?i)categor(?:y|ia)\s*:?\s*([A-Z](?:[12]|E)?(?:\s*,\s*[A-Z](?:[12]|E)?)*)`)

	yearRangeRe    = regexp.MustCompile(`\b((?:19|20)\d{2})\s*[-–]\s*((?:19|20)\d{2}|present|prezent)\b`)
	languageLineRe = regexp.MustCompile(`^([A-ZĂÂÎȘȚ][a-zA-ZăâîșțĂÂÎȘȚ ]{1,30}?)\s*[:\-]\s*([A-C][12]|native|nativ[aă]?|fluent|beginner|intermediate|advanced)\s*$`)

	contactishRe = regexp.MustCompile(`(?i)(?:@|\bhttps?://|\blinkedin\.com|\bgithub\.com|\btel\b|\btelefon\b|\bphone\b|\be-?mail\b|^\+?\d[\d\s().\-]{6,}$)`)
)

// nonEmptyLines returns the trimmed non-empty lines of text.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(l); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// extractName scans the first lines for a "2-5 capitalized words" shape and
// takes up to two following non-contact lines as headline and profile line.
func extractName(text string) (name, headline, profileLine string) {
	lines := nonEmptyLines(text)
	limit := len(lines)
	if limit > nameScanLines {
		limit = nameScanLines
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if !nameLineRe.MatchString(line) || sectionHeadingRe.MatchString(line) {
			continue
		}
		name = line
		// The next meaningful non-contact lines become headline and
		// profile line.
		var following []string
		for j := i + 1; j < len(lines) && len(following) < 2; j++ {
			l := lines[j]
			if contactishRe.MatchString(l) || sectionHeadingRe.MatchString(l) || summaryHeadingRe.MatchString(l) {
				continue
			}
			following = append(following, l)
		}
		if len(following) > 0 {
			headline = following[0]
		}
		if len(following) > 1 {
			profileLine = following[1]
		}
		return name, headline, profileLine
	}
	return "", "", ""
}

// extractSummary takes the text between an "About me" style heading and the
// next major section heading and sentence-splits it into bullets.
func extractSummary(text string) []string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, l := range lines {
		if summaryHeadingRe.MatchString(l) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil
	}
	var block []string
	for _, l := range lines[start:] {
		if sectionHeadingRe.MatchString(l) {
			break
		}
		block = append(block, l)
	}
	var bullets []string
	for _, s := range textutil.SplitSentences(strings.Join(block, " ")) {
		if len(s) >= minSummaryLen {
			bullets = append(bullets, s)
			if len(bullets) == maxSummaryBullets {
				break
			}
		}
	}
	return bullets
}

// extractEducation prefers a dedicated education section and otherwise falls
// back to any YYYY-YYYY line elsewhere that is not a month-year experience
// range. Duplicate (period, title, institution) triples are suppressed.
func extractEducation(text string) []resume.Education {
	lines := strings.Split(text, "\n")

	var candidates []string
	inSection := false
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if educationHeadRe.MatchString(trimmed) {
			inSection = true
			continue
		}
		if inSection && sectionHeadingRe.MatchString(trimmed) {
			inSection = false
		}
		if inSection && trimmed != "" {
			candidates = append(candidates, trimmed)
		}
	}
	if len(candidates) == 0 {
		for _, l := range lines {
			trimmed := strings.TrimSpace(l)
			if yearRangeRe.MatchString(trimmed) && !monthRangeRe.MatchString(trimmed) {
				candidates = append(candidates, trimmed)
			}
		}
	}

	seen := make(map[string]bool)
	var out []resume.Education
	for _, line := range candidates {
		m := yearRangeRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		period := strings.TrimSpace(line[m[0]:m[1]])
		rest := strings.TrimSpace(strings.Trim(line[:m[0]]+" "+line[m[1]:], " -–,"))
		if rest == "" {
			continue
		}
		entry := resume.Education{Period: period, Title: rest}
		if idx := strings.Index(rest, " - "); idx != -1 {
			entry.Title = strings.TrimSpace(rest[:idx])
			entry.Institution = strings.TrimSpace(rest[idx+3:])
		}
		key := strings.ToLower(entry.Period + "|" + entry.Title + "|" + entry.Institution)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, entry)
		if len(out) == maxEducation {
			break
		}
	}
	return out
}

// extractLanguages scans a languages section for "Name: Level" lines. Each
// entry gets all five sub-competences defaulted to the single level.
func extractLanguages(text string) []resume.Language {
	lines := strings.Split(text, "\n")
	start := -1
	for i, l := range lines {
		if languagesHeadRe.MatchString(strings.TrimSpace(l)) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil
	}
	var out []resume.Language
	for _, l := range lines[start:] {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		if sectionHeadingRe.MatchString(trimmed) {
			break
		}
		m := languageLineRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		level := strings.ToUpper(m[2][:1]) + m[2][1:]
		out = append(out, resume.Language{
			Name:        strings.TrimSpace(m[1]),
			Level:       level,
			Listening:   level,
			Reading:     level,
			Interaction: level,
			Speaking:    level,
			Writing:     level,
		})
	}
	return out
}

// extractDrivingLicense finds single-letter category codes following a
// "Category"/"Categoria" marker near a driving-license heading.
func extractDrivingLicense(text string) string {
	if !drivingHeadRe.MatchString(text) {
		return ""
	}
	if m := drivingCategoryRe.FindStringSubmatch(text); m != nil {
		parts := strings.Split(m[1], ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
