// Package resume defines the canonical mutable résumé document, the
// fill-gaps-only merge used by autofill, and the JSON import/export codec.
package resume

import (
	"strings"

	"github.com/coseus/cvbuilder/internal/keywords"
)

// DefaultProfileID is the domain profile selected for fresh documents.
const DefaultProfileID = "cyber_security"

// ContactItem is one typed contact entry (email, phone, location, linkedin,
// github, website).
type ContactItem struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SkillGroup is one categorized skills row.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Experience is one work-history entry. Activities holds bullet lines
// separated by newlines, each usually prefixed with "- ".
type Experience struct {
	Title        string `json:"title,omitempty"`
	Period       string `json:"period"`
	Role         string `json:"role"`
	Employer     string `json:"employer"`
	Location     string `json:"location,omitempty"`
	Activities   string `json:"activities,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
}

// Education is one education entry.
type Education struct {
	Period      string `json:"period"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Language is one foreign-language entry with the five Europass
// sub-competences.
type Language struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Listening   string `json:"listening,omitempty"`
	Reading     string `json:"reading,omitempty"`
	Interaction string `json:"interaction,omitempty"`
	Speaking    string `json:"speaking,omitempty"`
	Writing     string `json:"writing,omitempty"`
}

// ExtraField is one free-form label/value row in the personal-info block.
type ExtraField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// JobAnalysis is the per-job analysis state carried on the document. It is
// derived data: recomputed on demand, never hand-edited.
type JobAnalysis struct {
	RoleHint             string             `json:"role_hint,omitempty"`
	Description          string             `json:"description,omitempty"`
	Keywords             []keywords.Keyword `json:"keywords,omitempty"`
	Buckets              keywords.Buckets   `json:"buckets,omitempty"`
	Coverage             float64            `json:"coverage,omitempty"`
	Missing              []string           `json:"missing,omitempty"`
	Templates            []string           `json:"templates,omitempty"`
	TechnicalSkillsLines []string           `json:"technical_skills_lines,omitempty"`
	ActiveTemplates      []string           `json:"active_templates,omitempty"`
}

// Document is the canonical mutable résumé shared by every component. List
// fields preserve insertion order as the user-visible order; reordering is
// an explicit SwapAdjacent call.
type Document struct {
	// Identity
	FullName    string `json:"full_name,omitempty"`
	Headline    string `json:"headline,omitempty"`
	ProfileLine string `json:"profile_line,omitempty"`

	// Primary contact fields (renderers read these)
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`

	ContactItems []ContactItem `json:"contact_items,omitempty"`
	ExtraFields  []ExtraField  `json:"extra_fields,omitempty"`

	// Summary: bullet list preferred, single blob kept for legacy imports.
	Summary        string   `json:"summary,omitempty"`
	SummaryBullets []string `json:"summary_bullets,omitempty"`

	// Photo bytes are never serialized directly; the codec wraps them in a
	// base64 envelope only on request.
	Photo        []byte `json:"-"`
	IncludePhoto bool   `json:"include_photo,omitempty"`

	// Skills
	Skills         []SkillGroup `json:"skills,omitempty"`
	SkillsHeadline string       `json:"skills_headline,omitempty"`
	SkillsTools    string       `json:"skills_tools,omitempty"`
	SkillsCerts    string       `json:"skills_certifications,omitempty"`
	SkillsExtra    string       `json:"skills_extra_keywords,omitempty"`

	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`

	// Languages (Europass)
	MotherTongue string     `json:"mother_tongue,omitempty"`
	Languages    []Language `json:"languages,omitempty"`

	// Europass competence fields
	SocialSkills         string `json:"social_skills,omitempty"`
	OrganizationalSkills string `json:"organizational_skills,omitempty"`
	TechnicalSkills      string `json:"technical_skills,omitempty"`
	ComputerSkills       string `json:"computer_skills,omitempty"`
	ArtisticSkills       string `json:"artistic_skills,omitempty"`
	OtherSkills          string `json:"other_skills,omitempty"`
	DrivingLicense       string `json:"driving_license,omitempty"`

	// Europass extras
	Nationality    string `json:"nationality,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	Gender         string `json:"gender,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	Annexes        string `json:"annexes,omitempty"`

	// Analysis state
	ProfileID string      `json:"profile_id,omitempty"`
	Job       JobAnalysis `json:"job,omitempty"`
}

// New returns an empty document with defaults applied.
func New() *Document {
	d := &Document{}
	d.EnsureDefaults()
	return d
}

// EnsureDefaults fills derived fields so downstream code never branches on
// absence: the default profile id, and summary bullets built from a legacy
// summary blob.
func (d *Document) EnsureDefaults() {
	if d.ProfileID == "" {
		d.ProfileID = DefaultProfileID
	}
	if len(d.SummaryBullets) == 0 && d.Summary != "" {
		d.SummaryBullets = splitSummaryBullets(d.Summary)
	}
	d.SyncContactFields()
}

func splitSummaryBullets(blob string) []string {
	var bullets []string
	for _, line := range strings.Split(blob, "\n") {
		s := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•* "))
		if s != "" {
			bullets = append(bullets, s)
		}
	}
	return bullets
}

// SyncContactFields backfills empty primary contact fields from the typed
// contact-items list.
func (d *Document) SyncContactFields() {
	targets := map[string]*string{
		"email":    &d.Email,
		"phone":    &d.Phone,
		"location": &d.Location,
		"linkedin": &d.LinkedIn,
		"github":   &d.GitHub,
		"website":  &d.Website,
	}
	for typ, field := range targets {
		if strings.TrimSpace(*field) != "" {
			continue
		}
		for _, it := range d.ContactItems {
			if it.Type == typ && strings.TrimSpace(it.Value) != "" {
				*field = strings.TrimSpace(it.Value)
				break
			}
		}
	}
}

// SummaryText joins the summary bullets, falling back to the legacy blob.
func (d *Document) SummaryText() string {
	if len(d.SummaryBullets) > 0 {
		return strings.Join(d.SummaryBullets, "\n")
	}
	return d.Summary
}

// AllBullets collects the summary bullets plus every experience entry's
// activity bullets, in document order.
func (d *Document) AllBullets() []string {
	var bullets []string
	bullets = append(bullets, d.SummaryBullets...)
	if len(d.SummaryBullets) == 0 && d.Summary != "" {
		bullets = append(bullets, splitSummaryBullets(d.Summary)...)
	}
	for _, e := range d.Experience {
		for _, line := range strings.Split(e.Activities, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•*"))
			if line != "" {
				bullets = append(bullets, line)
			}
		}
	}
	return bullets
}

// TextBlob concatenates the searchable résumé text: headline, summary,
// skills fields, experience role/employer/activities and education
// title/institution. Used for keyword containment checks.
func (d *Document) TextBlob() string {
	var sb strings.Builder
	push := func(parts ...string) {
		for _, p := range parts {
			if p != "" {
				sb.WriteString(p)
				sb.WriteString("\n")
			}
		}
	}
	push(d.Headline, d.SummaryText(), d.SkillsHeadline, d.SkillsTools, d.SkillsCerts, d.SkillsExtra)
	for _, g := range d.Skills {
		push(g.Category, strings.Join(g.Items, " "))
	}
	for _, e := range d.Experience {
		push(e.Role, e.Employer, e.Technologies, e.Activities)
	}
	for _, ed := range d.Education {
		push(ed.Title, ed.Institution)
	}
	return sb.String()
}

// SwapAdjacentExperience swaps the experience entries at i and i+1. Out of
// range indices are ignored; reordering is always an explicit user action.
func (d *Document) SwapAdjacentExperience(i int) {
	if i < 0 || i+1 >= len(d.Experience) {
		return
	}
	d.Experience[i], d.Experience[i+1] = d.Experience[i+1], d.Experience[i]
}

// SwapAdjacentEducation swaps the education entries at i and i+1.
func (d *Document) SwapAdjacentEducation(i int) {
	if i < 0 || i+1 >= len(d.Education) {
		return
	}
	d.Education[i], d.Education[i+1] = d.Education[i+1], d.Education[i]
}

// ResetJobState clears the per-job analysis fields without touching user
// content.
func (d *Document) ResetJobState() {
	d.Job = JobAnalysis{}
}
