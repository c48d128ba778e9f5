package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureDefaults_BuildsBulletsFromLegacySummary(t *testing.T) {
	d := &Document{Summary: "- First point\n• Second point\nplain line"}
	d.EnsureDefaults()
	assert.Equal(t, []string{"First point", "Second point", "plain line"}, d.SummaryBullets)
	assert.Equal(t, DefaultProfileID, d.ProfileID)
}

func TestSyncContactFields_DoesNotOverwrite(t *testing.T) {
	d := New()
	d.Email = "primary@example.com"
	d.ContactItems = []ContactItem{
		{Type: "email", Value: "other@example.com"},
		{Type: "github", Value: "github.com/johnsmith"},
	}
	d.SyncContactFields()
	assert.Equal(t, "primary@example.com", d.Email)
	assert.Equal(t, "github.com/johnsmith", d.GitHub)
}

func TestAllBullets_CollectsSummaryAndExperience(t *testing.T) {
	d := New()
	d.SummaryBullets = []string{"Summary bullet"}
	d.Experience = []Experience{{Activities: "- Managed 200 endpoints\n- Implemented MFA"}}
	assert.Equal(t,
		[]string{"Summary bullet", "Managed 200 endpoints", "Implemented MFA"},
		d.AllBullets())
}

func TestTextBlob_IncludesSearchableFields(t *testing.T) {
	d := sampleDocument()
	blob := d.TextBlob()
	assert.Contains(t, blob, "Security Engineer")
	assert.Contains(t, blob, "System Administrator")
	assert.Contains(t, blob, "Acme Corp")
	assert.Contains(t, blob, "BSc Computer Science")
	assert.Contains(t, blob, "Tech University")
}

func TestSwapAdjacentExperience(t *testing.T) {
	d := New()
	d.Experience = []Experience{{Role: "A"}, {Role: "B"}, {Role: "C"}}

	d.SwapAdjacentExperience(0)
	assert.Equal(t, "B", d.Experience[0].Role)
	assert.Equal(t, "A", d.Experience[1].Role)

	// Out of range is ignored.
	d.SwapAdjacentExperience(2)
	d.SwapAdjacentExperience(-1)
	assert.Equal(t, "C", d.Experience[2].Role)
}

func TestResetJobState_KeepsUserContent(t *testing.T) {
	d := sampleDocument()
	d.Job.Description = "some JD"
	d.Job.Coverage = 0.5

	d.ResetJobState()

	assert.Equal(t, JobAnalysis{}, d.Job)
	assert.NotEmpty(t, d.Experience)
	assert.Equal(t, "John Smith", d.FullName)
}
