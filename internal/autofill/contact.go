package autofill

import (
	"regexp"
	"strings"
)

var (
	labeledEmailRe = regexp.MustCompile(`(?i)e-?mail\s*:\s*(\S+@\S+)`)
	bareEmailRe    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	labeledPhoneRe = regexp.MustCompile(`(?i)(?:tel|telefon|phone|mobile?)\s*:\s*([+\d][\d\s().\-]+)`)
	phoneCleanRe   = regexp.MustCompile(`[^+\d ]`)

	labeledLocationRe = regexp.MustCompile(`(?i)(?:city|oraș|oras|location|address|adres[aă])\s*:\s*([^\n]+)`)

	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(linkedin\.com/[A-Za-z0-9_%/.\-]+)`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(github\.com/[A-Za-z0-9_%/.\-]+)`)

	domainTokenRe = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?((?:[a-z0-9\-]+\.)+[a-z]{2,})(/\S*)?`)
)

// websiteBlocklist holds domains that must never be guessed as a personal
// website: CV platforms, mail providers and the social domains handled by
// their own extractors.
var websiteBlocklist = map[string]bool{
	"ejobs.ro":     true,
	"bestjobs.eu":  true,
	"europass.eu":  true,
	"europa.eu":    true,
	"gmail.com":    true,
	"yahoo.com":    true,
	"outlook.com":  true,
	"hotmail.com":  true,
	"linkedin.com": true,
	"github.com":   true,
}

// Contact is the result of the contact-block extraction pass.
type Contact struct {
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
	Website  string
}

// extractContact pulls the contact block out of raw text. Every field is
// independently best-effort and empty on no-match.
func extractContact(text string) Contact {
	var c Contact

	if m := labeledEmailRe.FindStringSubmatch(text); m != nil {
		c.Email = strings.Trim(m[1], ".,;")
	} else if m := bareEmailRe.FindString(text); m != "" {
		c.Email = m
	}

	if m := labeledPhoneRe.FindStringSubmatch(text); m != nil {
		phone := phoneCleanRe.ReplaceAllString(m[1], "")
		c.Phone = strings.Join(strings.Fields(phone), " ")
	}

	if m := labeledLocationRe.FindStringSubmatch(text); m != nil {
		c.Location = strings.TrimSpace(m[1])
	}

	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		c.LinkedIn = strings.TrimRight(m[1], "/")
	}
	if m := githubRe.FindStringSubmatch(text); m != nil {
		c.GitHub = strings.TrimRight(m[1], "/")
	}

	c.Website = guessWebsite(text, c)
	return c
}

// guessWebsite returns the first domain-shaped token that is not an email
// domain, not linkedin/github and not a blocklisted CV-platform or mail
// provider.
func guessWebsite(text string, c Contact) string {
	emailDomain := ""
	if at := strings.LastIndex(c.Email, "@"); at != -1 {
		emailDomain = strings.ToLower(c.Email[at+1:])
	}

	for _, m := range domainTokenRe.FindAllStringSubmatch(text, -1) {
		domain := strings.ToLower(strings.TrimRight(m[1], "."))
		if domain == emailDomain || websiteBlocklist[domain] {
			continue
		}
		if blocked := rootDomain(domain); websiteBlocklist[blocked] {
			continue
		}
		// Skip anything that is part of an email address.
		if strings.Contains(text, "@"+domain) {
			continue
		}
		site := domain
		if path := strings.TrimRight(m[2], "/"); path != "" {
			site += path
		}
		return site
	}
	return ""
}

// rootDomain reduces "sub.example.com" to "example.com" for blocklist
// checks.
func rootDomain(domain string) string {
	parts := strings.Split(domain, ".")
	if len(parts) <= 2 {
		return domain
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
