package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/coseus/cvbuilder/internal/autofill"
	"github.com/coseus/cvbuilder/internal/fetchjd"
	"github.com/coseus/cvbuilder/internal/jobstore"
	"github.com/coseus/cvbuilder/internal/keywords"
	"github.com/coseus/cvbuilder/internal/profile"
	"github.com/coseus/cvbuilder/internal/render"
	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/scoring"
)

// maxUploadBytes bounds autofill document uploads.
const maxUploadBytes = 20 << 20

// analyzeRequest is the POST /api/analyze payload. Description and URL are
// mutually exclusive; exactly one must be set.
type analyzeRequest struct {
	Description string           `json:"description" validate:"required_without=URL,excluded_with=URL"`
	URL         string           `json:"url" validate:"omitempty,url"`
	Name        string           `json:"name" validate:"max=200"`
	RoleHint    string           `json:"role_hint" validate:"max=100"`
	Resume      *resume.Document `json:"resume"`
	Save        bool             `json:"save"`
}

// handleAnalyze runs the keyword pipeline on a job description, optionally
// fetched from a URL and optionally persisted to the job store.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	description := req.Description
	if req.URL != "" {
		text, err := fetchjd.Fetch(r.Context(), req.URL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, err.Error())
			return
		}
		description = text
	}
	if strings.TrimSpace(description) == "" {
		s.errorResponse(w, http.StatusBadRequest, "job description is empty")
		return
	}

	rec := jobstore.Analyze(description, req.Name, req.RoleHint, req.Resume, s.extractor())
	if req.Save {
		if _, err := s.store.Save(rec); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// scoreRequest is the POST /api/score payload.
type scoreRequest struct {
	Resume         *resume.Document `json:"resume" validate:"required"`
	ProfileID      string           `json:"profile_id" validate:"max=100"`
	JobDescription string           `json:"job_description"`
}

// handleScore scores a resume against a domain profile and a job
// description. A missing or unreadable profile falls back to the built-in
// default instead of failing the request.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	req.Resume.EnsureDefaults()

	prof := s.loadProfile(req.ProfileID, req.Resume.ProfileID)
	engine := scoring.NewEngine()
	if s.cfg.Tunables.JDTopKeywords > 0 {
		engine.JDTopKeywords = s.cfg.Tunables.JDTopKeywords
	}
	report := engine.Score(req.Resume, prof.FlattenKeywords(), req.JobDescription)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleAutofill extracts a partial resume from an uploaded PDF/DOCX. When a
// "resume" form field carries an existing document, the extraction is merged
// into it gaps-only and the merged document is returned.
func (s *Server) handleAutofill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' upload")
		return
	}
	defer func() { _ = file.Close() }()

	// The parsers are path based; stage the upload in a temp file with the
	// original extension preserved.
	tmp, err := os.CreateTemp("", "autofill-*"+strings.ToLower(filepath.Ext(header.Filename)))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = tmp.Close()

	text, err := autofill.ReadDocumentText(tmp.Name())
	if err != nil {
		if errors.Is(err, autofill.ErrUnsupportedFormat) {
			s.errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	extracted := autofill.ExtractWithRepair(text, s.cfg.Tunables.RepairMinLength)

	if existing := r.FormValue("resume"); existing != "" {
		target, err := resume.Import([]byte(existing))
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid 'resume' field: "+err.Error())
			return
		}
		resume.Merge(target, extracted)
		s.jsonResponse(w, http.StatusOK, target)
		return
	}
	s.jsonResponse(w, http.StatusOK, extracted)
}

// handleResumeImport accepts either the native flat schema or the bilingual
// nested schema and returns the normalized document.
func (s *Server) handleResumeImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	doc, err := resume.Import(body)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// exportRequest is the POST /api/resume/export payload.
type exportRequest struct {
	Resume       *resume.Document `json:"resume" validate:"required"`
	IncludePhoto bool             `json:"include_photo"`
}

// handleResumeExport serializes a document to the interchange JSON.
func (s *Server) handleResumeExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	data, err := resume.Export(req.Resume, req.IncludePhoto)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// renderRequest is the payload for the HTML and PDF export endpoints.
type renderRequest struct {
	Resume *resume.Document `json:"resume" validate:"required"`
	Layout string           `json:"layout" validate:"omitempty,oneof=modern europass"`
}

func (r *renderRequest) layout() render.Layout {
	if r.Layout == "" {
		return render.LayoutModern
	}
	return render.Layout(r.Layout)
}

// handleExportHTML renders the document to one of the two HTML layouts.
func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	html, err := render.HTML(req.Resume, req.layout())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleExportPDF prints the document to PDF via headless Chrome.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	pdf, err := render.PDF(r.Context(), req.Resume, req.layout())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing the 400 response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUploadBytes)).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}
	return true
}

// extractor builds the keyword extractor from the configured tunables.
func (s *Server) extractor() *keywords.Extractor {
	ex := keywords.NewExtractor()
	if s.cfg.Tunables.MaxKeywords > 0 {
		ex.MaxKeywords = s.cfg.Tunables.MaxKeywords
	}
	if s.cfg.Tunables.SimilarityThreshold > 0 {
		ex.SimilarityThreshold = s.cfg.Tunables.SimilarityThreshold
	}
	return ex
}

// loadProfile resolves the requested profile, falling back to the resume's
// own profile id and finally the built-in default.
func (s *Server) loadProfile(ids ...string) *profile.Profile {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if p, err := profile.LoadFromDir(s.cfg.ProfilesDir, id); err == nil {
			return p
		}
	}
	return profile.Default()
}
