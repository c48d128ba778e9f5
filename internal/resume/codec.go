package resume

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// photoEnvelope wraps binary photo data for JSON transport.
type photoEnvelope struct {
	Type string `json:"__type__"`
	Data string `json:"data"`
}

const photoEnvelopeType = "bytes_base64"

// Export serializes the document to indented JSON in the native flat
// schema. The photo is dropped unless includePhoto is set, in which case it
// is base64-encoded under a typed envelope.
func Export(d *Document, includePhoto bool) ([]byte, error) {
	d.SyncContactFields()

	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to round-trip document: %w", err)
	}

	if includePhoto && len(d.Photo) > 0 {
		m["photo"] = photoEnvelope{
			Type: photoEnvelopeType,
			Data: base64.StdEncoding.EncodeToString(d.Photo),
		}
	}

	return json.MarshalIndent(m, "", "  ")
}

// resumeSchema is the permissive JSON schema imports are checked against
// before normalization. It types the fields both accepted schemas share and
// rejects non-object roots; unknown keys pass through untouched.
const resumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "full_name": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "summary_bullets": {"type": "array", "items": {"type": "string"}},
    "experience": {"type": "array"},
    "education": {"type": "array"},
    "languages": {"type": "array"},
    "contact_items": {"type": "array"},
    "extra_fields": {"type": "array"},
    "personal_info": {"type": "object"},
    "skills": {},
    "other": {"type": "object"}
  }
}`

// Import parses JSON in either the native flat schema or the bilingual
// nested schema and returns a normalized document with defaults ensured.
func Import(data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &ImportError{Message: "empty JSON input"}
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &ImportError{Message: "JSON root must be an object", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &ImportError{Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &ImportError{Message: "invalid resume JSON: " + strings.Join(msgs, "; ")}
	}

	var doc *Document
	if isNativeSchema(root) {
		doc, err = importNative(data, root)
	} else {
		doc, err = importBilingual(data)
	}
	if err != nil {
		return nil, err
	}

	doc.EnsureDefaults()
	return doc, nil
}

// isNativeSchema detects the document's own flat schema by its marker keys.
func isNativeSchema(root map[string]json.RawMessage) bool {
	for _, key := range []string{"full_name", "headline", "summary_bullets", "contact_items", "profile_id"} {
		if _, ok := root[key]; ok {
			return true
		}
	}
	// Flat experience entries carry "role" as a plain string; bilingual
	// entries tag it by language.
	if raw, ok := root["experience"]; ok {
		var entries []map[string]json.RawMessage
		if json.Unmarshal(raw, &entries) == nil && len(entries) > 0 {
			var role string
			if rawRole, ok := entries[0]["role"]; ok && json.Unmarshal(rawRole, &role) == nil {
				return true
			}
		}
	}
	_, hasPI := root["personal_info"]
	return !hasPI
}

func importNative(data []byte, root map[string]json.RawMessage) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ImportError{Message: "failed to parse native schema", Cause: err}
	}
	if raw, ok := root["photo"]; ok {
		var env photoEnvelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Type == photoEnvelopeType {
			if b, err := base64.StdEncoding.DecodeString(env.Data); err == nil {
				doc.Photo = b
			}
		}
	}
	return &doc, nil
}

// bilingualString resolves a possibly language-tagged value to a plain
// string, preferring English, then Romanian, then any value.
func bilingualString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		for _, lang := range []string{"en", "ro"} {
			if s, ok := t[lang].(string); ok && s != "" {
				return s
			}
		}
		for _, val := range t {
			if s, ok := val.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// bilingualList resolves a possibly language-tagged list value.
func bilingualList(v any) []string {
	toStrings := func(items []any) []string {
		var out []string
		for _, it := range items {
			if s := bilingualString(it); strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	switch t := v.(type) {
	case []any:
		return toStrings(t)
	case map[string]any:
		for _, lang := range []string{"en", "ro"} {
			if items, ok := t[lang].([]any); ok && len(items) > 0 {
				return toStrings(items)
			}
		}
	case string:
		if strings.TrimSpace(t) != "" {
			return []string{strings.TrimSpace(t)}
		}
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// importBilingual normalizes the alternate nested schema
// (personal_info/summary/skills/experience/education/languages/other) into
// the native document.
func importBilingual(data []byte) (*Document, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &ImportError{Message: "failed to parse bilingual schema", Cause: err}
	}

	doc := &Document{}
	if pid := asString(root["profile_id"]); pid != "" {
		doc.ProfileID = pid
	}

	if pi, ok := root["personal_info"].(map[string]any); ok {
		doc.FullName = asString(pi["full_name"])
		doc.Headline = bilingualString(pi["headline"])
		doc.ProfileLine = bilingualString(pi["profile_line"])

		if contact, ok := pi["contact"].(map[string]any); ok {
			doc.Email = asString(contact["email"])
			doc.Phone = asString(contact["phone"])
		}
		if loc, ok := pi["location"].(map[string]any); ok {
			city := strings.TrimSpace(asString(loc["city"]))
			country := strings.TrimSpace(asString(loc["country"]))
			parts := make([]string, 0, 2)
			if city != "" {
				parts = append(parts, city)
			}
			if country != "" {
				parts = append(parts, country)
			}
			doc.Location = strings.Join(parts, ", ")
		}
		if links, ok := pi["links"].(map[string]any); ok {
			doc.LinkedIn = asString(links["linkedin"])
			doc.GitHub = asString(links["github"])
			doc.Website = asString(links["website"])
		}
		if extras, ok := pi["extra_fields"].([]any); ok {
			for _, raw := range extras {
				item, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				label := bilingualString(item["label"])
				value := asString(item["value"])
				if label != "" && value != "" {
					doc.ExtraFields = append(doc.ExtraFields, ExtraField{Label: label, Value: value})
				}
			}
		}
	}

	if summ, ok := root["summary"].(map[string]any); ok {
		doc.SummaryBullets = bilingualList(summ["bullets"])
	}

	if skills, ok := root["skills"].(map[string]any); ok {
		if modern, ok := skills["modern_ats_friendly"].(map[string]any); ok {
			doc.SkillsHeadline = asString(modern["headline"])
			doc.SkillsTools = strings.Join(bilingualList(modern["tools"]), "\n")
			doc.SkillsCerts = strings.Join(bilingualList(modern["certifications"]), "\n")
			doc.SkillsExtra = strings.Join(bilingualList(modern["extra_keywords"]), "\n")
		}
		if euro, ok := skills["europass"].(map[string]any); ok {
			if general := bilingualList(euro["general_skills"]); len(general) > 0 {
				doc.Skills = append(doc.Skills, SkillGroup{Category: "General skills", Items: general})
			}
			if tech := bilingualList(euro["technical_skills"]); len(tech) > 0 {
				doc.TechnicalSkills = strings.Join(tech, ", ")
			}
		}
	}

	if exp, ok := root["experience"].([]any); ok {
		for _, raw := range exp {
			e, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			role := bilingualString(e["role"])
			company := asString(e["company"])
			start := strings.TrimSpace(asString(e["start"]))
			end := strings.TrimSpace(asString(e["end"]))
			if end == "" || end == "null" {
				end = "Present"
			}
			highlights := bilingualList(e["highlights"])
			var activities strings.Builder
			for _, h := range highlights {
				activities.WriteString("- ")
				activities.WriteString(h)
				activities.WriteString("\n")
			}
			title := company
			if title == "" {
				title = role
			}
			doc.Experience = append(doc.Experience, Experience{
				Title:      title,
				Period:     strings.TrimSpace(start + " - " + end),
				Role:       role,
				Employer:   company,
				Location:   asString(e["location"]),
				Activities: strings.TrimRight(activities.String(), "\n"),
			})
		}
	}

	if edu, ok := root["education"].([]any); ok {
		for _, raw := range edu {
			e, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			start := strings.TrimSpace(asString(e["start_year"]))
			end := strings.TrimSpace(asString(e["end_year"]))
			parts := make([]string, 0, 2)
			if start != "" {
				parts = append(parts, start)
			}
			if end != "" {
				parts = append(parts, end)
			}
			doc.Education = append(doc.Education, Education{
				Period:      strings.Join(parts, " - "),
				Title:       bilingualString(e["degree"]),
				Institution: asString(e["institution"]),
				Location:    asString(e["location"]),
			})
		}
	}

	if langs, ok := root["languages"].([]any); ok {
		for _, raw := range langs {
			l, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			name := bilingualString(l["language"])
			level := bilingualString(l["level"])
			if name != "" {
				doc.Languages = append(doc.Languages, Language{Name: name, Level: level})
			}
		}
	}

	if other, ok := root["other"].(map[string]any); ok {
		if dl := bilingualList(other["driving_license"]); len(dl) > 0 {
			doc.DrivingLicense = strings.Join(dl, ", ")
		}
	}

	return doc, nil
}
