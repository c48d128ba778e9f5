package render

import (
	"strings"
	"testing"

	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedDocument() *resume.Document {
	d := resume.New()
	d.FullName = "John Smith"
	d.Headline = "Security Engineer"
	d.Email = "john@x.com"
	d.Phone = "+40 700 000 000"
	d.SummaryBullets = []string{"Reduced incident response time by 35%"}
	d.Skills = []resume.SkillGroup{{Category: "Security", Items: []string{"SIEM", "MFA"}}}
	d.Experience = []resume.Experience{{
		Role:       "System Administrator",
		Employer:   "Acme Corp",
		Period:     "Apr 2023 - present",
		Activities: "- Managed 200 endpoints\n- Implemented MFA across the org",
	}}
	d.Education = []resume.Education{{Period: "2015-2019", Title: "BSc Computer Science", Institution: "UPB"}}
	d.Languages = []resume.Language{{Name: "English", Level: "C1", Listening: "C1", Reading: "C1", Interaction: "C1", Speaking: "C1", Writing: "C1"}}
	d.MotherTongue = "Romanian"
	d.DrivingLicense = "B"
	return d
}

func TestHTML_ModernLayout(t *testing.T) {
	html, err := HTML(renderedDocument(), LayoutModern)
	require.NoError(t, err)

	assert.Contains(t, html, "John Smith")
	assert.Contains(t, html, "Security Engineer")
	assert.Contains(t, html, "john@x.com")
	assert.Contains(t, html, "Managed 200 endpoints")
	assert.Contains(t, html, "Security: SIEM, MFA")
	assert.Contains(t, html, "BSc Computer Science")
	// Activity bullet markers are stripped by the bullets helper.
	assert.NotContains(t, html, "<li>- Managed")
}

func TestHTML_EuropassLayout(t *testing.T) {
	html, err := HTML(renderedDocument(), LayoutEuropass)
	require.NoError(t, err)

	assert.Contains(t, html, "Curriculum Vitae")
	assert.Contains(t, html, "Mother tongue")
	assert.Contains(t, html, "Romanian")
	assert.Contains(t, html, "Driving licence")
	assert.Contains(t, html, ">B<")
	assert.Contains(t, html, "Listening")
	assert.Contains(t, html, "English")
}

func TestHTML_JobSkillsLinesPreferred(t *testing.T) {
	d := renderedDocument()
	d.Job.TechnicalSkillsLines = []string{"Security: MFA, SIEM, EDR"}
	html, err := HTML(d, LayoutModern)
	require.NoError(t, err)
	assert.Contains(t, html, "Security: MFA, SIEM, EDR")
	assert.NotContains(t, html, "Security: SIEM, MFA")
}

func TestHTML_UnknownLayout(t *testing.T) {
	_, err := HTML(resume.New(), Layout("docx"))
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
}

func TestHTML_EscapesUserContent(t *testing.T) {
	d := resume.New()
	d.FullName = "<script>alert(1)</script>"
	html, err := HTML(d, LayoutModern)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert"))
}

func TestHTML_Deterministic(t *testing.T) {
	first, err := HTML(renderedDocument(), LayoutEuropass)
	require.NoError(t, err)
	second, err := HTML(renderedDocument(), LayoutEuropass)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
