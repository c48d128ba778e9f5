package keywords

import (
	"fmt"
	"strings"
	"unicode"
)

const maxItemsPerSkillLine = 12

// TechnicalSkillsLines renders buckets into "Label: item, item" lines in
// CategoryOrder, capping each group and upcasing known acronyms. Empty
// buckets produce no line.
func TechnicalSkillsLines(buckets Buckets) []string {
	var lines []string
	for _, cat := range CategoryOrder {
		items := buckets.Get(cat)
		if len(items) == 0 {
			continue
		}
		if len(items) > maxItemsPerSkillLine {
			items = items[:maxItemsPerSkillLine]
		}
		pretty := make([]string, len(items))
		for i, it := range items {
			pretty[i] = prettifyKeyword(it)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", CategoryLabels[cat], strings.Join(pretty, ", ")))
	}
	return lines
}

// prettifyKeyword title-cases a lowercase keyword for display, keeping known
// acronyms fully upcased and mixed-case spellings untouched.
func prettifyKeyword(s string) string {
	if knownAcronyms[strings.ToUpper(s)] {
		return strings.ToUpper(s)
	}
	if s != strings.ToLower(s) {
		return s
	}
	return titleCase(s)
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// pickFirst returns the first bucket item, or the fallback when empty.
func pickFirst(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}

// SuggestTemplates returns offline bullet-rewrite templates tuned to the
// role hint (pentest, soc/analyst, engineer, otherwise general), with
// representative bucket keywords injected. "(X)" placeholders mark metrics
// the user should fill in.
func SuggestTemplates(roleHint string, buckets Buckets) []string {
	rh := strings.ToLower(roleHint)

	sec := buckets.Get(CategorySecurity)
	cloud := buckets.Get(CategoryCloudIdentity)
	net := buckets.Get(CategoryNetworking)
	tools := buckets.Get(CategoryTools)
	osSrv := buckets.Get(CategoryOSServers)
	scr := buckets.Get(CategoryScripting)

	tool := pickFirst(tools, "monitoring tools")
	secTerm := pickFirst(sec, "incident response")
	cloudTerm := pickFirst(cloud, "entra id")
	netTerm := pickFirst(net, "vpn")
	script := pickFirst(scr, "powershell")
	server := pickFirst(osSrv, "windows server")

	switch {
	case strings.Contains(rh, "pentest"):
		return []string{
			fmt.Sprintf("Performed reconnaissance and vulnerability validation aligned to %s; documented findings and remediation guidance.", pickFirst(sec, "vulnerability management")),
			fmt.Sprintf("Validated security controls and misconfigurations across %s/%s and network surfaces; prioritized fixes by risk.", server, pickFirst(osSrv, "linux")),
			fmt.Sprintf("Automated repeatable checks using %s; improved consistency and reduced manual effort by (X)%%.", script),
		}
	case strings.Contains(rh, "soc") || strings.Contains(rh, "analyst"):
		return []string{
			fmt.Sprintf("Triaged alerts in %s and investigated suspicious activity; escalated incidents using a structured %s workflow.", tool, secTerm),
			fmt.Sprintf("Improved detection coverage by tuning rules for %s and mapping to MITRE ATT&CK; reduced false positives by (X)%%.", pickFirst(sec, "log analysis")),
			fmt.Sprintf("Supported identity security in %s (MFA/Conditional Access); improved account hygiene and access control.", cloudTerm),
		}
	case strings.Contains(rh, "engineer"):
		return []string{
			fmt.Sprintf("Implemented security controls (e.g., %s, MFA, hardening) across hybrid environments; improved compliance and reduced risk exposure.", secTerm),
			fmt.Sprintf("Built and maintained secure identity and access configurations in %s; enforced least privilege and access reviews.", cloudTerm),
			fmt.Sprintf("Automated operational tasks using %s/%s; reduced provisioning time by (X)%%.", script, pickFirst(scr, "automation")),
		}
	default:
		return []string{
			fmt.Sprintf("Administered hybrid environments and improved security posture using %s practices; documented SOPs and operational runbooks.", secTerm),
			fmt.Sprintf("Strengthened identity and access in %s; implemented MFA and access hygiene improvements.", cloudTerm),
			fmt.Sprintf("Supported network reliability and security across %s; improved monitoring and troubleshooting workflows using %s.", netTerm, tool),
		}
	}
}
