package autofill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairDoubledGlyphs_CollapsesDoubledTokens(t *testing.T) {
	in := "JJoohhnn SSmmiitthh worked here"
	assert.Equal(t, "John Smith worked here", RepairDoubledGlyphs(in, 0))
}

func TestRepairDoubledGlyphs_LeavesNormalTextAlone(t *testing.T) {
	in := "Implemented MFA across 200 endpoints"
	assert.Equal(t, in, RepairDoubledGlyphs(in, 0))
	// Short and all-same-character tokens stay untouched.
	assert.Equal(t, "oo aaaa", RepairDoubledGlyphs("oo aaaa", 0))
}

func TestExtractContact_EmailLinkedInWebsiteExclusion(t *testing.T) {
	text := "John Smith\nEmail: john@x.com\nlinkedin.com/in/johnsmith\n"
	c := extractContact(text)
	assert.Equal(t, "john@x.com", c.Email)
	assert.Equal(t, "linkedin.com/in/johnsmith", c.LinkedIn)
	// The email domain must never be guessed as the personal website.
	assert.NotEqual(t, "x.com", c.Website)
	assert.Empty(t, c.Website)
}

func TestExtractContact_PhoneLocationGitHubWebsite(t *testing.T) {
	text := "Phone: +40 (700) 123-456\nCity: Bucharest\nhttps://www.github.com/jsmith/\nhttps://jsmith.dev/blog\n"
	c := extractContact(text)
	assert.Equal(t, "+40 700 123456", c.Phone)
	assert.Equal(t, "Bucharest", c.Location)
	assert.Equal(t, "github.com/jsmith", c.GitHub)
	assert.Equal(t, "jsmith.dev/blog", c.Website)
}

func TestExtractContact_BareEmailFallback(t *testing.T) {
	c := extractContact("reach me at jane.doe@example.org for details")
	assert.Equal(t, "jane.doe@example.org", c.Email)
}

func TestExtractContact_BlocklistedDomainsSkipped(t *testing.T) {
	c := extractContact("profile on ejobs.ro and backup mail on gmail.com")
	assert.Empty(t, c.Website)
}

func TestExtractName_HeadlineAndProfileLine(t *testing.T) {
	text := "John Smith\nEmail: john@x.com\nSecurity Engineer\nHands-on defender with blue team focus\n"
	name, headline, profile := extractName(text)
	assert.Equal(t, "John Smith", name)
	assert.Equal(t, "Security Engineer", headline)
	assert.Equal(t, "Hands-on defender with blue team focus", profile)
}

func TestExtractName_NoCandidateYieldsEmpty(t *testing.T) {
	name, headline, profile := extractName("email: a@b.com\n+40 700 000 000\n")
	assert.Empty(t, name)
	assert.Empty(t, headline)
	assert.Empty(t, profile)
}

func TestExtractSummary_BetweenHeadings(t *testing.T) {
	text := "About me\n" +
		"Seasoned administrator with a decade of infrastructure work. " +
		"Led patching and hardening programs across hybrid estates. Ok.\n" +
		"Work experience\nApr 2023 - present\n"
	bullets := extractSummary(text)
	require.Len(t, bullets, 2)
	assert.Contains(t, bullets[0], "Seasoned administrator")
	assert.Contains(t, bullets[1], "hardening programs")
}

func TestExtractSummary_MissingHeadingYieldsNil(t *testing.T) {
	assert.Nil(t, extractSummary("no headings anywhere in this text"))
}

func TestExtractExperience_DateRoleCompanyBullets(t *testing.T) {
	text := "Apr 2023 - present\nSystem Administrator - Acme Corp\n- Managed 200 endpoints\n- Implemented MFA across the org"
	entries := extractExperience(text)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Apr 2023 - present", e.Period)
	assert.Equal(t, "System Administrator", e.Role)
	assert.Equal(t, "Acme Corp", e.Employer)
	assert.Equal(t, "- Managed 200 endpoints\n- Implemented MFA across the org", e.Activities)
}

func TestExtractExperience_NoDashRoleWithShortCompanyLine(t *testing.T) {
	text := "Ian 2020 - Mar 2022\nNetwork Engineer\nContoso SRL\n- Operated the campus VLAN fabric"
	entries := extractExperience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Network Engineer", entries[0].Role)
	assert.Equal(t, "Contoso SRL", entries[0].Employer)
}

func TestExtractExperience_SentenceFallbackAndAcquiredSkillsStripped(t *testing.T) {
	text := "Feb 2018 - Dec 2019\nHelpdesk Technician - Initech\n" +
		"Resolved several hundred tickets per month across two office sites. " +
		"Maintained the imaging pipeline for workstation rollouts. Short one.\n" +
		"Acquired skills and competencies: teamwork, patience\n"
	entries := extractExperience(text)
	require.Len(t, entries, 1)
	act := entries[0].Activities
	assert.Contains(t, act, "- Resolved several hundred tickets")
	assert.Contains(t, act, "- Maintained the imaging pipeline")
	assert.NotContains(t, act, "teamwork")
	assert.NotContains(t, act, "Short one")
}

func TestExtractExperience_MultipleRanges(t *testing.T) {
	text := "Apr 2023 - present\nSRE - Globex\n- Ran the on-call rotation\n" +
		"Mai 2019 - Mar 2023\nSysadmin - Umbrella\n- Patched the server estate\n"
	entries := extractExperience(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "Globex", entries[0].Employer)
	assert.Equal(t, "Umbrella", entries[1].Employer)
}

func TestExtractEducation_SectionAndSplit(t *testing.T) {
	text := "Education\n2015-2019 BSc Computer Science - Politehnica Bucharest\n2019-2021 MSc Security - UPB\nSkills\n"
	entries := extractEducation(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "2015-2019", entries[0].Period)
	assert.Equal(t, "BSc Computer Science", entries[0].Title)
	assert.Equal(t, "Politehnica Bucharest", entries[0].Institution)
}

func TestExtractEducation_FallbackYearRangeAndDedup(t *testing.T) {
	text := "stuff\n2010-2014 BSc Math - UB\nother lines\n2010-2014 BSc Math - UB\n"
	entries := extractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "BSc Math", entries[0].Title)
}

func TestExtractEducation_MonthRangesExcludedFromFallback(t *testing.T) {
	text := "Apr 2023 - present worked somewhere\n"
	assert.Empty(t, extractEducation(text))
}

func TestExtractLanguages_SubCompetencesDefaulted(t *testing.T) {
	text := "Foreign languages\nEnglish: C1\nFrench: B2\nDriving license\n"
	langs := extractLanguages(text)
	require.Len(t, langs, 2)
	assert.Equal(t, "English", langs[0].Name)
	assert.Equal(t, "C1", langs[0].Level)
	assert.Equal(t, "C1", langs[0].Listening)
	assert.Equal(t, "C1", langs[0].Writing)
	assert.Equal(t, "B2", langs[1].Level)
}

func TestExtractDrivingLicense_CategoryCodes(t *testing.T) {
	assert.Equal(t, "B", extractDrivingLicense("Driving license\nCategory: B\n"))
	assert.Equal(t, "B, BE", extractDrivingLicense("Permis de conducere\nCategoria: B, BE\n"))
	assert.Empty(t, extractDrivingLicense("no license here"))
}

func TestExtract_AssemblesPartialDocument(t *testing.T) {
	text := "John Smith\nEmail: john@x.com\nSecurity Engineer\n" +
		"About me\nExperienced defender who automates the boring parts away.\n" +
		"Work experience\nApr 2023 - present\nSystem Administrator - Acme Corp\n- Managed 200 endpoints\n" +
		"Education\n2015-2019 BSc Computer Science - UPB\n" +
		"Foreign languages\nEnglish: C1\n"
	d := Extract(text)
	assert.Equal(t, "John Smith", d.FullName)
	assert.Equal(t, "john@x.com", d.Email)
	require.Len(t, d.Experience, 1)
	assert.Equal(t, "Acme Corp", d.Experience[0].Employer)
	require.Len(t, d.Education, 1)
	require.Len(t, d.Languages, 1)
	assert.NotEmpty(t, d.SummaryBullets)
}

func TestReadDocumentText_UnsupportedExtension(t *testing.T) {
	_, err := ReadDocumentText("resume.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
