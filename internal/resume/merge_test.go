package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_FillsEmptyScalars(t *testing.T) {
	target := New()
	patch := &Document{FullName: "John Smith", Email: "john@x.com"}

	Merge(target, patch)

	assert.Equal(t, "John Smith", target.FullName)
	assert.Equal(t, "john@x.com", target.Email)
}

func TestMerge_NeverOverwritesNonEmptyScalars(t *testing.T) {
	target := New()
	target.FullName = "X"
	patch := &Document{FullName: "Y"}

	Merge(target, patch)

	assert.Equal(t, "X", target.FullName)
}

func TestMerge_ExperienceDedupByRoleEmployerPeriod(t *testing.T) {
	target := New()
	target.Experience = []Experience{
		{Role: "System Administrator", Employer: "Acme Corp", Period: "Apr 2023 - present", Activities: "- user edited"},
	}
	patch := &Document{Experience: []Experience{
		{Role: "System Administrator", Employer: "Acme Corp", Period: "Apr 2023 - present", Activities: "- autofill version"},
		{Role: "Helpdesk Technician", Employer: "Initech", Period: "Jan 2020 - Mar 2023"},
	}}

	Merge(target, patch)

	require.Len(t, target.Experience, 2)
	// The user-edited entry survives untouched, order preserved.
	assert.Equal(t, "- user edited", target.Experience[0].Activities)
	assert.Equal(t, "Helpdesk Technician", target.Experience[1].Role)
}

func TestMerge_LanguagesDedupByName(t *testing.T) {
	target := New()
	target.Languages = []Language{{Name: "English", Level: "C1"}}
	patch := &Document{Languages: []Language{
		{Name: "english", Level: "B2"},
		{Name: "Italian", Level: "B1"},
	}}

	Merge(target, patch)

	require.Len(t, target.Languages, 2)
	assert.Equal(t, "C1", target.Languages[0].Level)
	assert.Equal(t, "Italian", target.Languages[1].Name)
}

func TestMerge_ContactItemsDedupByTypeAndValue(t *testing.T) {
	target := New()
	target.ContactItems = []ContactItem{{Type: "email", Value: "john@x.com"}}
	patch := &Document{ContactItems: []ContactItem{
		{Type: "email", Value: "john@x.com"},
		{Type: "phone", Value: "+40 700 000 000"},
	}}

	Merge(target, patch)

	require.Len(t, target.ContactItems, 2)
}

func TestMerge_StringListsDedupCaseInsensitive(t *testing.T) {
	target := New()
	target.SummaryBullets = []string{"Led migrations"}
	patch := &Document{SummaryBullets: []string{"led migrations", "Automated onboarding"}}

	Merge(target, patch)

	assert.Equal(t, []string{"Led migrations", "Automated onboarding"}, target.SummaryBullets)
}

func TestMerge_SkillGroupsFillMissingItemsOnly(t *testing.T) {
	target := New()
	target.Skills = []SkillGroup{{Category: "Security", Items: []string{"SIEM"}}}
	patch := &Document{Skills: []SkillGroup{
		{Category: "security", Items: []string{"siem", "EDR"}},
		{Category: "Networking", Items: []string{"VPN"}},
	}}

	Merge(target, patch)

	require.Len(t, target.Skills, 2)
	assert.Equal(t, []string{"SIEM", "EDR"}, target.Skills[0].Items)
	assert.Equal(t, "Networking", target.Skills[1].Category)
}

func TestMerge_Idempotent(t *testing.T) {
	target := New()
	target.FullName = "John Smith"
	patch := &Document{
		Email: "john@x.com",
		Experience: []Experience{
			{Role: "System Administrator", Employer: "Acme Corp", Period: "Apr 2023 - present"},
		},
		SummaryBullets: []string{"Managed 200 endpoints"},
	}

	Merge(target, patch)
	once := *target
	onceExp := append([]Experience(nil), target.Experience...)

	Merge(target, patch)

	assert.Equal(t, once.Email, target.Email)
	assert.Equal(t, onceExp, target.Experience)
	assert.Len(t, target.SummaryBullets, 1)
}

func TestMerge_NilInputsAreNoOps(t *testing.T) {
	target := New()
	Merge(target, nil)
	Merge(nil, &Document{FullName: "X"})
	assert.Empty(t, target.FullName)
}
