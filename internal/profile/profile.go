// Package profile loads and saves domain profiles: per-field keyword sets,
// action verbs, metric hints and bullet templates used by the scoring
// engine. Profiles are YAML files under a profiles directory.
package profile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// keywordGroups is the canonical group order for flattening and
// serialization.
var keywordGroups = []string{
	"core", "technologies", "tools", "certifications", "frameworks", "soft_skills",
}

// legacyGroups are keyword group names from older profile files; their
// items fold into "technologies" on load.
var legacyGroups = []string{"services", "platforms", "languages", "concepts"}

// defaultBulletTemplates pads profiles that ship fewer than two templates.
var defaultBulletTemplates = []string{
	"Implemented {keyword} improving {metric} by {value}",
	"Automated {task} using {tool}, reducing manual effort by {value}",
}

// defaultSectionPriority is the section ordering applied when a profile
// does not declare one.
var defaultSectionPriority = []string{
	"summary", "skills", "experience", "education", "languages",
}

// Profile is one immutable-per-load domain profile. Mutation happens only
// through an explicit Save; scoring never writes back.
type Profile struct {
	ID              string              `yaml:"id"`
	Title           string              `yaml:"title"`
	JobTitles       []string            `yaml:"job_titles"`
	Keywords        map[string][]string `yaml:"keywords"`
	ActionVerbs     []string            `yaml:"action_verbs"`
	Metrics         yaml.Node           `yaml:"metrics,omitempty"`
	BulletTemplates []string            `yaml:"bullet_templates"`
	SectionPriority []string            `yaml:"section_priority"`

	// metrics holds the flattened Metrics value after normalization.
	metrics []string
}

// Load reads and normalizes a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read profile", Cause: err}
	}
	return Parse(data, path)
}

// LoadFromDir loads "<id>.yaml" from dir.
func LoadFromDir(dir, id string) (*Profile, error) {
	return Load(filepath.Join(dir, id+".yaml"))
}

// List returns the profile ids available in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "failed to list profiles", Cause: err}
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Parse decodes profile YAML and applies normalization. path is used for
// error reporting only.
func Parse(data []byte, path string) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Path: path, Message: "malformed profile YAML", Cause: err}
	}
	p.normalize()
	return &p, nil
}

// Save writes the profile in normalized form. The serialized bytes are
// parsed back before the write so a profile that does not round-trip never
// reaches disk.
func Save(path string, p *Profile) error {
	p.normalize()
	out := struct {
		ID              string              `yaml:"id"`
		Title           string              `yaml:"title"`
		JobTitles       []string            `yaml:"job_titles"`
		Keywords        map[string][]string `yaml:"keywords"`
		ActionVerbs     []string            `yaml:"action_verbs"`
		Metrics         []string            `yaml:"metrics"`
		BulletTemplates []string            `yaml:"bullet_templates"`
		SectionPriority []string            `yaml:"section_priority"`
	}{p.ID, p.Title, p.JobTitles, p.Keywords, p.ActionVerbs, p.metrics, p.BulletTemplates, p.SectionPriority}

	data, err := yaml.Marshal(out)
	if err != nil {
		return &SaveError{Path: path, Message: "failed to serialize profile", Cause: err}
	}
	if _, err := Parse(data, path); err != nil {
		return &SaveError{Path: path, Message: "profile does not round-trip", Cause: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &SaveError{Path: path, Message: "failed to create profiles directory", Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &SaveError{Path: path, Message: "failed to write profile", Cause: err}
	}
	return nil
}

// normalize fills missing sub-keys with empty defaults so callers never
// branch on absence, folds legacy keyword groups into technologies,
// deduplicates case-insensitively and flattens the metrics value.
func (p *Profile) normalize() {
	if p.Keywords == nil {
		p.Keywords = make(map[string][]string)
	}
	for _, g := range legacyGroups {
		if items, ok := p.Keywords[g]; ok {
			p.Keywords["technologies"] = append(p.Keywords["technologies"], items...)
			delete(p.Keywords, g)
		}
	}
	for _, g := range keywordGroups {
		p.Keywords[g] = dedupeFold(p.Keywords[g])
	}
	p.JobTitles = dedupeFold(p.JobTitles)
	p.ActionVerbs = dedupeFold(p.ActionVerbs)

	if m := flattenMetrics(&p.Metrics); len(m) > 0 {
		p.metrics = m
	}
	p.metrics = dedupeFold(p.metrics)

	p.BulletTemplates = dedupeFold(p.BulletTemplates)
	for _, t := range defaultBulletTemplates {
		if len(p.BulletTemplates) >= 2 {
			break
		}
		p.BulletTemplates = append(p.BulletTemplates, t)
	}

	p.SectionPriority = normalizeSections(p.SectionPriority)
}

// FlattenKeywords returns every keyword across all groups, deduplicated
// case-insensitively, group order then insertion order.
func (p *Profile) FlattenKeywords() []string {
	var all []string
	for _, g := range keywordGroups {
		all = append(all, p.Keywords[g]...)
	}
	return dedupeFold(all)
}

// MetricHints returns the flattened metrics value.
func (p *Profile) MetricHints() []string {
	return p.metrics
}

// flattenMetrics accepts either a plain list of strings or a nested map of
// lists and flattens to a single string list.
func flattenMetrics(n *yaml.Node) []string {
	var out []string
	switch n.Kind {
	case yaml.SequenceNode:
		for _, item := range n.Content {
			if item.Kind == yaml.ScalarNode && strings.TrimSpace(item.Value) != "" {
				out = append(out, strings.TrimSpace(item.Value))
			} else {
				out = append(out, flattenMetrics(item)...)
			}
		}
	case yaml.MappingNode:
		// Content alternates key, value; only values are flattened.
		for i := 1; i < len(n.Content); i += 2 {
			out = append(out, flattenMetrics(n.Content[i])...)
		}
	case yaml.ScalarNode:
		if v := strings.TrimSpace(n.Value); v != "" {
			out = append(out, v)
		}
	}
	return dedupeFold(out)
}

// normalizeSections lowercases and deduplicates the declared priority and
// appends any canonical section the profile omitted.
func normalizeSections(sections []string) []string {
	var out []string
	seen := make(map[string]bool)
	push := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range sections {
		push(s)
	}
	for _, s := range defaultSectionPriority {
		push(s)
	}
	return out
}

// dedupeFold deduplicates case-insensitively while keeping first-seen order
// and spelling. Blank entries are dropped.
func dedupeFold(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, it := range items {
		it = strings.TrimSpace(it)
		key := strings.ToLower(it)
		if it == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
