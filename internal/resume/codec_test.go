package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	d := New()
	d.FullName = "John Smith"
	d.Headline = "Security Engineer"
	d.Email = "john@x.com"
	d.Phone = "+40 700 000 000"
	d.SummaryBullets = []string{"Reduced incident response time by 35%"}
	d.Experience = []Experience{{
		Title:      "Acme Corp",
		Period:     "Apr 2023 - present",
		Role:       "System Administrator",
		Employer:   "Acme Corp",
		Activities: "- Managed 200 endpoints\n- Implemented MFA across the org",
	}}
	d.Education = []Education{{
		Period:      "2015 - 2019",
		Title:       "BSc Computer Science",
		Institution: "Tech University",
	}}
	d.Languages = []Language{{Name: "English", Level: "C1"}}
	return d
}

func TestExportImport_RoundTripWithoutPhoto(t *testing.T) {
	original := sampleDocument()
	original.Photo = []byte{0xFF, 0xD8, 0xFF} // dropped by default

	data, err := Export(original, false)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "photo")

	imported, err := Import(data)
	require.NoError(t, err)

	// Equal minus the photo field.
	original.Photo = nil
	assert.Equal(t, original, imported)
}

func TestExportImport_PhotoBase64WhenRequested(t *testing.T) {
	original := sampleDocument()
	original.Photo = []byte{1, 2, 3, 4}

	data, err := Export(original, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bytes_base64")

	imported, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, original.Photo, imported.Photo)
}

func TestImport_BilingualSchemaNormalized(t *testing.T) {
	payload := `{
	  "personal_info": {
	    "full_name": "Ion Popescu",
	    "headline": {"en": "System Administrator", "ro": "Administrator de sistem"},
	    "contact": {"email": "ion@example.com", "phone": "+40 711 222 333"},
	    "location": {"city": "Cluj-Napoca", "country": "Romania"},
	    "links": {"linkedin": "linkedin.com/in/ionpopescu"}
	  },
	  "summary": {"bullets": {"en": ["Ten years of infrastructure work"], "ro": []}},
	  "experience": [{
	    "role": {"en": "System Administrator"},
	    "company": "E-Infra",
	    "start": "Apr 2023",
	    "end": null,
	    "highlights": {"en": ["Managed 200 endpoints"]}
	  }],
	  "education": [{
	    "degree": {"en": "Bachelor's degree"},
	    "institution": "Universitatea de Nord",
	    "start_year": "2002",
	    "end_year": "2005"
	  }],
	  "languages": [{"language": {"en": "English"}, "level": {"en": "Intermediate"}}],
	  "other": {"driving_license": ["B"]}
	}`

	doc, err := Import([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "Ion Popescu", doc.FullName)
	assert.Equal(t, "System Administrator", doc.Headline)
	assert.Equal(t, "ion@example.com", doc.Email)
	assert.Equal(t, "Cluj-Napoca, Romania", doc.Location)
	assert.Equal(t, "linkedin.com/in/ionpopescu", doc.LinkedIn)
	assert.Equal(t, []string{"Ten years of infrastructure work"}, doc.SummaryBullets)

	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "System Administrator", doc.Experience[0].Role)
	assert.Equal(t, "E-Infra", doc.Experience[0].Employer)
	assert.Equal(t, "Apr 2023 - Present", doc.Experience[0].Period)
	assert.Equal(t, "- Managed 200 endpoints", doc.Experience[0].Activities)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "2002 - 2005", doc.Education[0].Period)
	assert.Equal(t, "Bachelor's degree", doc.Education[0].Title)
	assert.Equal(t, "Universitatea de Nord", doc.Education[0].Institution)

	require.Len(t, doc.Languages, 1)
	assert.Equal(t, "English", doc.Languages[0].Name)
	assert.Equal(t, "B", doc.DrivingLicense)
	assert.Equal(t, DefaultProfileID, doc.ProfileID)
}

func TestImport_RejectsNonObjectRoot(t *testing.T) {
	_, err := Import([]byte(`["not", "an", "object"]`))
	require.Error(t, err)
	var impErr *ImportError
	assert.ErrorAs(t, err, &impErr)
}

func TestImport_RejectsEmptyInput(t *testing.T) {
	_, err := Import([]byte("  "))
	assert.Error(t, err)
}

func TestImport_SyncsPrimaryContactFromContactItems(t *testing.T) {
	doc := New()
	doc.ContactItems = []ContactItem{{Type: "email", Value: "sync@example.com"}}
	data, err := Export(doc, false)
	require.NoError(t, err)

	imported, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, "sync@example.com", imported.Email)
}

func TestExport_OutputIsValidJSON(t *testing.T) {
	data, err := Export(sampleDocument(), false)
	require.NoError(t, err)
	var m map[string]any
	assert.NoError(t, json.Unmarshal(data, &m))
}
