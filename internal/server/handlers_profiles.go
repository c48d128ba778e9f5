package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/coseus/cvbuilder/internal/profile"
)

// profileIDRe keeps profile ids filesystem safe.
var profileIDRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// handleListProfiles lists the profile ids available on disk. The built-in
// default is always present even with an empty profiles directory.
func (s *Server) handleListProfiles(w http.ResponseWriter, _ *http.Request) {
	ids, err := profile.List(s.cfg.ProfilesDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	def := profile.Default()
	found := false
	for _, id := range ids {
		if id == def.ID {
			found = true
			break
		}
	}
	if !found {
		ids = append([]string{def.ID}, ids...)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"profiles": ids})
}

// handleGetProfile returns one profile as JSON. An id matching the built-in
// default that has no file on disk resolves to the built-in.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !profileIDRe.MatchString(id) {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}
	p, err := profile.LoadFromDir(s.cfg.ProfilesDir, id)
	if err != nil {
		if def := profile.Default(); id == def.ID && errors.Is(err, os.ErrNotExist) {
			s.jsonResponse(w, http.StatusOK, profileResponse(def))
			return
		}
		if errors.Is(err, os.ErrNotExist) {
			s.errorResponse(w, http.StatusNotFound, "profile not found: "+id)
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profileResponse(p))
}

// handleSaveProfile stores a profile from a YAML request body. The id in the
// URL wins over any id inside the document.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !profileIDRe.MatchString(id) {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	p, err := profile.Parse(body, id+".yaml")
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	p.ID = id
	path := filepath.Join(s.cfg.ProfilesDir, id+".yaml")
	if err := profile.Save(path, p); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"id": id, "path": path})
}

// profileResponse shapes a profile for the JSON API; the YAML struct has no
// JSON tags and its metrics live in an unexported field.
func profileResponse(p *profile.Profile) map[string]any {
	return map[string]any{
		"id":               p.ID,
		"title":            p.Title,
		"job_titles":       p.JobTitles,
		"keywords":         p.Keywords,
		"action_verbs":     p.ActionVerbs,
		"metrics":          p.MetricHints(),
		"bullet_templates": p.BulletTemplates,
		"section_priority": p.SectionPriority,
	}
}
