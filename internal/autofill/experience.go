package autofill

import (
	"regexp"
	"strings"

	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/textutil"
)

const (
	maxActivityBullets = 7
	minSentenceBullet  = 35
	maxCompanyLineLen  = 60
)

var (
	monthEN = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`
	monthRO = `ian|febr?|mart?|apr|mai|iun|iul|aug|sept?|oct|noi|dec`

	// "Apr 2023 - present", "Ian 2020 - Mar 2022", Romanian "prezent".
	monthRangeRe = regexp.MustCompile(`(?i)\b(?:` + monthEN + `|` + monthRO + `)[a-z]*\.?\s+(?:19|20)\d{2}\s*[-–]\s*(?:present|prezent|(?:` + monthEN + `|` + monthRO + `)[a-z]*\.?\s+(?:19|20)\d{2})\b`)

	acquiredSkillsRe = regexp.MustCompile(`(?i)(?:acquired\s+skills\s+and\s+competen\w*|aptitudini\s+[șs]i\s+competen[țt]e\s+dob[âa]ndite)\s*:?`)

	footerRe = regexp.MustCompile(`(?i)^\s*(?:page\s+\d+|pagina\s+\d+|©|curriculum\s+vitae\b)`)
)

// extractExperience detects month-year date ranges and parses the block
// following each into one work-history entry.
func extractExperience(text string) []resume.Experience {
	lines := strings.Split(text, "\n")

	// Indexes of lines that carry a date range.
	var anchors []int
	for i, l := range lines {
		if monthRangeRe.MatchString(l) {
			anchors = append(anchors, i)
		}
	}

	var out []resume.Experience
	for ai, idx := range anchors {
		end := len(lines)
		if ai+1 < len(anchors) {
			end = anchors[ai+1]
		}
		entry := parseExperienceBlock(lines[idx:end])
		if entry.Role != "" || entry.Employer != "" {
			out = append(out, entry)
		}
	}
	return out
}

func parseExperienceBlock(block []string) resume.Experience {
	entry := resume.Experience{
		Period: strings.TrimSpace(monthRangeRe.FindString(block[0])),
	}

	// The first non-empty line after the range is "Role - Company"; with no
	// dash, the role stands alone and a short following line is guessed as
	// the company.
	body := 1
	for body < len(block) && strings.TrimSpace(block[body]) == "" {
		body++
	}
	if body < len(block) {
		header := strings.TrimSpace(block[body])
		body++
		if idx := strings.Index(header, " - "); idx != -1 {
			entry.Role = strings.TrimSpace(header[:idx])
			entry.Employer = strings.TrimSpace(header[idx+3:])
		} else {
			entry.Role = header
			for body < len(block) && strings.TrimSpace(block[body]) == "" {
				body++
			}
			if body < len(block) {
				next := strings.TrimSpace(block[body])
				if len(next) <= maxCompanyLineLen && !strings.HasSuffix(next, ".") && !strings.HasPrefix(next, "-") && !strings.HasPrefix(next, "•") {
					entry.Employer = next
					body++
				}
			}
		}
	}

	activity := strings.Join(block[body:], "\n")
	if m := acquiredSkillsRe.FindStringIndex(activity); m != nil {
		activity = activity[:m[0]]
	}
	entry.Activities = strings.Join(activityBullets(activity), "\n")
	return entry
}

// activityBullets keeps explicit "-"/"•" lines verbatim; with none present
// it falls back to sentence splitting, keeping long sentences only.
func activityBullets(activity string) []string {
	var bullets []string
	for _, l := range strings.Split(activity, "\n") {
		trimmed := strings.TrimSpace(l)
		if footerRe.MatchString(trimmed) {
			break
		}
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") {
			if b := strings.TrimSpace(strings.TrimLeft(trimmed, "-•")); b != "" {
				bullets = append(bullets, "- "+b)
			}
		}
	}
	if len(bullets) == 0 {
		for _, s := range textutil.SplitSentences(activity) {
			if len(s) >= minSentenceBullet {
				bullets = append(bullets, "- "+s)
			}
			if len(bullets) == maxActivityBullets {
				break
			}
		}
	}
	if len(bullets) > maxActivityBullets {
		bullets = bullets[:maxActivityBullets]
	}
	return bullets
}
