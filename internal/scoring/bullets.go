package scoring

import (
	"regexp"
	"strings"

	"github.com/coseus/cvbuilder/internal/textutil"
)

var (
	digitRe      = regexp.MustCompile(`\d`)
	multiplierRe = regexp.MustCompile(`\b\d+\s*x\b`)
	verbCleanRe  = regexp.MustCompile(`[^A-Za-z]`)

	// metricUnitRe matches standalone unit/currency/time/ops tokens. Units
	// count as quantifiable signals on their own (MTTR, SLA) or next to a
	// digit; matching whole words keeps prose from false-positives.
	metricUnitRe = regexp.MustCompile(`(?:%|€|\$|\b(?:ms|sec|mins?|hrs?|hours?|gb|tb|req/s|rps|users|hosts|assets|endpoints|incidents|tickets|sla|mttr|mttd|mtta|cve|cvss)\b)`)
)

// BulletHasMetric reports whether a bullet line contains a quantifiable
// signal: a digit, a standalone unit/currency/time token, or a multiplier
// like "2x".
func BulletHasMetric(bullet string) bool {
	t := textutil.Normalize(bullet)
	if digitRe.MatchString(t) {
		return true
	}
	if metricUnitRe.MatchString(t) {
		return true
	}
	return multiplierRe.MatchString(t)
}

// StartingVerb returns the first word of a bullet with non-letters
// stripped, or "" for empty bullets.
func StartingVerb(bullet string) string {
	fields := strings.Fields(strings.TrimSpace(bullet))
	if len(fields) == 0 {
		return ""
	}
	return verbCleanRe.ReplaceAllString(fields[0], "")
}
