// Package jobstore persists per-job analysis results as one JSON file per
// record. Records are addressable by filename, listable and deletable; a
// content-derived job id makes re-analysis of the same posting idempotent.
package jobstore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/coseus/cvbuilder/internal/keywords"
	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/textutil"
)

// recordVersion tags the on-disk format.
const recordVersion = 1

const jobIDLength = 12

// Overlay is the set of keyword/template additions derived from one job
// analysis, applied on top of a document without altering user content.
type Overlay struct {
	KeywordsToAdd []string `json:"keywords_to_add,omitempty"`
	Templates     []string `json:"templates,omitempty"`
}

// Record is one persisted job analysis. Derived data only: recomputed on
// demand, never hand-edited.
type Record struct {
	Version              int                `json:"version"`
	JobID                string             `json:"job_id"`
	Name                 string             `json:"name"`
	SavedAt              time.Time          `json:"saved_at"`
	ProfileID            string             `json:"profile_id,omitempty"`
	RoleHint             string             `json:"role_hint,omitempty"`
	Description          string             `json:"description"`
	Keywords             []keywords.Keyword `json:"keywords,omitempty"`
	Buckets              keywords.Buckets   `json:"buckets,omitempty"`
	Coverage             float64            `json:"coverage"`
	Missing              []string           `json:"missing,omitempty"`
	Templates            []string           `json:"templates,omitempty"`
	TechnicalSkillsLines []string           `json:"technical_skills_lines,omitempty"`
	Overlay              Overlay            `json:"overlay,omitempty"`

	// Filename is set on load/list, never serialized.
	Filename string `json:"-"`
}

// JobID derives the stable identifier for a job description: the first 12
// hex characters of the SHA-256 of its normalized text. Same text, same id.
func JobID(description string) string {
	sum := sha256.Sum256([]byte(textutil.Normalize(description)))
	return hex.EncodeToString(sum[:])[:jobIDLength]
}

// Store is a file-per-record job store rooted at Dir.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify reduces a record name to a filename-safe slug.
func slugify(name string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "job"
	}
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}

// Save persists the record as "<timestamp>__<slug>.json" and returns the
// filename. A record for the same job id overwrites the prior file so
// re-analyzing unchanged text stays idempotent.
func (s *Store) Save(rec *Record) (string, error) {
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now().UTC()
	}
	rec.Version = recordVersion
	if rec.JobID == "" {
		rec.JobID = JobID(rec.Description)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", &StoreError{Op: "save", Message: "failed to create job store directory", Cause: err}
	}

	filename := rec.Filename
	if filename == "" {
		if prior, err := s.findByJobID(rec.JobID); err == nil && prior != "" {
			filename = prior
		} else {
			filename = rec.SavedAt.Format("20060102-150405") + "__" + slugify(rec.Name) + ".json"
		}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", &StoreError{Op: "save", Message: "failed to serialize job record", Cause: err}
	}
	if err := os.WriteFile(filepath.Join(s.Dir, filename), data, 0o644); err != nil {
		return "", &StoreError{Op: "save", Message: "failed to write job record", Cause: err}
	}
	rec.Filename = filename
	return filename, nil
}

// findByJobID returns the filename of an existing record with the given job
// id, or "" when none exists.
func (s *Store) findByJobID(jobID string) (string, error) {
	records, err := s.List()
	if err != nil {
		return "", err
	}
	for _, r := range records {
		if r.JobID == jobID {
			return r.Filename, nil
		}
	}
	return "", nil
}

// Load reads one record by filename.
func (s *Store) Load(filename string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.Base(filename)))
	if err != nil {
		return nil, &StoreError{Op: "load", Message: "failed to read job record", Cause: err}
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &StoreError{Op: "load", Message: "malformed job record", Cause: err}
	}
	rec.Filename = filepath.Base(filename)
	return &rec, nil
}

// Delete removes one record by filename.
func (s *Store) Delete(filename string) error {
	if err := os.Remove(filepath.Join(s.Dir, filepath.Base(filename))); err != nil {
		return &StoreError{Op: "delete", Message: "failed to delete job record", Cause: err}
	}
	return nil
}

// List returns all readable records sorted by saved_at descending.
// Unreadable or malformed files are skipped, never fatal.
func (s *Store) List() ([]*Record, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StoreError{Op: "list", Message: "failed to list job store", Cause: err}
	}
	var records []*Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SavedAt.After(records[j].SavedAt)
	})
	return records, nil
}

// ApplyOverlay copies the record's analysis state and overlay onto the
// document's job-analysis fields. User content is never touched.
func ApplyOverlay(d *resume.Document, rec *Record) {
	d.Job = resume.JobAnalysis{
		RoleHint:             rec.RoleHint,
		Description:          rec.Description,
		Keywords:             rec.Keywords,
		Buckets:              rec.Buckets,
		Coverage:             rec.Coverage,
		Missing:              rec.Missing,
		Templates:            rec.Templates,
		TechnicalSkillsLines: rec.TechnicalSkillsLines,
		ActiveTemplates:      rec.Overlay.Templates,
	}
	if rec.ProfileID != "" {
		d.ProfileID = rec.ProfileID
	}
}
