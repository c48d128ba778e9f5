package resume

import "strings"

// Merge applies patch onto target with the fill-gaps-only policy: a field
// already set on target is never overwritten, list fields are appended with
// per-field composite dedup keys, and nested records only fill empty
// sub-keys. Autofill output must never destroy user-entered content, so
// this is deliberately not a replace-on-conflict merge. Merging the same
// patch twice is a no-op the second time.
func Merge(target, patch *Document) {
	if target == nil || patch == nil {
		return
	}

	mergeScalar(&target.FullName, patch.FullName)
	mergeScalar(&target.Headline, patch.Headline)
	mergeScalar(&target.ProfileLine, patch.ProfileLine)
	mergeScalar(&target.Email, patch.Email)
	mergeScalar(&target.Phone, patch.Phone)
	mergeScalar(&target.Location, patch.Location)
	mergeScalar(&target.LinkedIn, patch.LinkedIn)
	mergeScalar(&target.GitHub, patch.GitHub)
	mergeScalar(&target.Website, patch.Website)
	mergeScalar(&target.Summary, patch.Summary)
	mergeScalar(&target.SkillsHeadline, patch.SkillsHeadline)
	mergeScalar(&target.SkillsTools, patch.SkillsTools)
	mergeScalar(&target.SkillsCerts, patch.SkillsCerts)
	mergeScalar(&target.SkillsExtra, patch.SkillsExtra)
	mergeScalar(&target.MotherTongue, patch.MotherTongue)
	mergeScalar(&target.SocialSkills, patch.SocialSkills)
	mergeScalar(&target.OrganizationalSkills, patch.OrganizationalSkills)
	mergeScalar(&target.TechnicalSkills, patch.TechnicalSkills)
	mergeScalar(&target.ComputerSkills, patch.ComputerSkills)
	mergeScalar(&target.ArtisticSkills, patch.ArtisticSkills)
	mergeScalar(&target.OtherSkills, patch.OtherSkills)
	mergeScalar(&target.DrivingLicense, patch.DrivingLicense)
	mergeScalar(&target.Nationality, patch.Nationality)
	mergeScalar(&target.BirthDate, patch.BirthDate)
	mergeScalar(&target.Gender, patch.Gender)
	mergeScalar(&target.AdditionalInfo, patch.AdditionalInfo)
	mergeScalar(&target.Annexes, patch.Annexes)

	target.SummaryBullets = mergeStringList(target.SummaryBullets, patch.SummaryBullets)

	target.Experience = mergeExperience(target.Experience, patch.Experience)
	target.Education = mergeEducation(target.Education, patch.Education)
	target.Languages = mergeLanguages(target.Languages, patch.Languages)
	target.ContactItems = mergeContactItems(target.ContactItems, patch.ContactItems)
	target.ExtraFields = mergeExtraFields(target.ExtraFields, patch.ExtraFields)
	target.Skills = mergeSkillGroups(target.Skills, patch.Skills)

	if len(target.Photo) == 0 && len(patch.Photo) > 0 {
		target.Photo = patch.Photo
	}

	target.EnsureDefaults()
}

// mergeScalar adopts the patch value only when the target value is empty.
func mergeScalar(target *string, patch string) {
	if strings.TrimSpace(*target) == "" && strings.TrimSpace(patch) != "" {
		*target = patch
	}
}

// mergeStringList appends patch entries whose case-insensitive value is not
// already present, preserving target order first.
func mergeStringList(target, patch []string) []string {
	seen := make(map[string]bool, len(target))
	for _, s := range target {
		seen[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, s := range patch {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		target = append(target, s)
	}
	return target
}

func compositeKey(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// Experience dedups by {role, employer, period}.
func mergeExperience(target, patch []Experience) []Experience {
	seen := make(map[string]bool, len(target))
	for _, e := range target {
		seen[compositeKey(e.Role, e.Employer, e.Period)] = true
	}
	for _, e := range patch {
		key := compositeKey(e.Role, e.Employer, e.Period)
		if seen[key] {
			continue
		}
		seen[key] = true
		target = append(target, e)
	}
	return target
}

// Education dedups by {title, institution, period}.
func mergeEducation(target, patch []Education) []Education {
	seen := make(map[string]bool, len(target))
	for _, e := range target {
		seen[compositeKey(e.Title, e.Institution, e.Period)] = true
	}
	for _, e := range patch {
		key := compositeKey(e.Title, e.Institution, e.Period)
		if seen[key] {
			continue
		}
		seen[key] = true
		target = append(target, e)
	}
	return target
}

// Languages dedup by {name} alone: a second level for the same language is
// a conflict the existing entry wins.
func mergeLanguages(target, patch []Language) []Language {
	seen := make(map[string]bool, len(target))
	for _, l := range target {
		seen[compositeKey(l.Name)] = true
	}
	for _, l := range patch {
		key := compositeKey(l.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		target = append(target, l)
	}
	return target
}

// Contact items dedup by {type, value}.
func mergeContactItems(target, patch []ContactItem) []ContactItem {
	seen := make(map[string]bool, len(target))
	for _, c := range target {
		seen[compositeKey(c.Type, c.Value)] = true
	}
	for _, c := range patch {
		key := compositeKey(c.Type, c.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		target = append(target, c)
	}
	return target
}

// Extra fields dedup by {label, value}.
func mergeExtraFields(target, patch []ExtraField) []ExtraField {
	seen := make(map[string]bool, len(target))
	for _, f := range target {
		seen[compositeKey(f.Label, f.Value)] = true
	}
	for _, f := range patch {
		key := compositeKey(f.Label, f.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		target = append(target, f)
	}
	return target
}

// Skill groups merge by category: new categories append, existing ones
// fill in missing items only.
func mergeSkillGroups(target, patch []SkillGroup) []SkillGroup {
	index := make(map[string]int, len(target))
	for i, g := range target {
		index[compositeKey(g.Category)] = i
	}
	for _, g := range patch {
		key := compositeKey(g.Category)
		if i, ok := index[key]; ok {
			target[i].Items = mergeStringList(target[i].Items, g.Items)
			continue
		}
		index[key] = len(target)
		target = append(target, g)
	}
	return target
}
