package server

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/coseus/cvbuilder/internal/jobstore"
)

// handleListJobs returns the saved job records, newest first.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	records, err := s.store.List()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []*jobstore.Record{}
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleGetJob returns one saved record by filename.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	rec, err := s.store.Load(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.errorResponse(w, http.StatusNotFound, "job record not found: "+filename)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteJob removes one saved record by filename.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if !strings.HasSuffix(filename, ".json") {
		s.errorResponse(w, http.StatusBadRequest, "invalid job record filename")
		return
	}
	if err := s.store.Delete(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.errorResponse(w, http.StatusNotFound, "job record not found: "+filename)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": filename})
}
