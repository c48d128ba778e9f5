package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coseus/cvbuilder/internal/config"
	"github.com/coseus/cvbuilder/internal/jobstore"
	"github.com/coseus/cvbuilder/internal/resume"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.ProfilesDir = filepath.Join(cfg.DataDir, "profiles")
	cfg.JobsDir = filepath.Join(cfg.DataDir, "jobs")

	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

const testJD = `We are looking for a Security Analyst.
Requirements:
- Experience with SIEM and incident response
- Knowledge of Azure AD and MFA
- Scripting in Python or PowerShell`

func testResume() *resume.Document {
	return &resume.Document{
		FullName: "Jane Doe",
		Headline: "Security Analyst",
		Email:    "jane@example.com",
		SummaryBullets: []string{
			"Managed SIEM alerts for a 500 endpoint estate",
			"Reduced incident response time by 40%",
		},
		Experience: []resume.Experience{
			{
				Period:     "Jan 2022 - present",
				Role:       "SOC Analyst",
				Employer:   "Acme Corp",
				Activities: "- Triaged incidents in the SIEM\n- Rolled out MFA to 300 users",
			},
		},
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeBody(t, rr)["status"])
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]any{
		"description": testJD,
		"name":        "Security Analyst at Acme",
		"role_hint":   "security analyst",
	})

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	assert.Len(t, body["job_id"], 12)
	assert.NotEmpty(t, body["keywords"])
	assert.NotEmpty(t, body["buckets"])
}

func TestAnalyze_WithResumeCoverage(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]any{
		"description": testJD,
		"resume":      testResume(),
	})

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	assert.Greater(t, body["coverage"].(float64), 0.0)
}

func TestAnalyze_SavePersistsRecord(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]any{
		"description": testJD,
		"name":        "Security Analyst at Acme",
		"save":        true,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	records, err := jobstore.NewStore(s.cfg.JobsDir).List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Security Analyst at Acme", records[0].Name)
}

func TestAnalyze_EmptyDescription(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]any{
		"description": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScore(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/score", map[string]any{
		"resume":          testResume(),
		"job_description": testJD,
	})

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	overall := body["overall"].(float64)
	assert.Greater(t, overall, 0.0)
	assert.LessOrEqual(t, overall, 100.0)
	assert.Contains(t, body, "keyword_coverage")
	assert.Contains(t, body, "jd_match")
}

func TestScore_MissingResume(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/score", map[string]any{
		"job_description": testJD,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAutofill_UnsupportedFormat(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("plain text resume"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/autofill", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

func TestAutofill_MissingFile(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("resume", "{}"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/autofill", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResumeImportExportRoundTrip(t *testing.T) {
	s := newTestServer(t)
	doc := testResume()

	exported := doJSON(t, s, http.MethodPost, "/api/resume/export", map[string]any{"resume": doc})
	require.Equal(t, http.StatusOK, exported.Code, exported.Body.String())
	assert.Contains(t, exported.Header().Get("Content-Disposition"), "resume.json")

	req := httptest.NewRequest(http.MethodPost, "/api/resume/import", bytes.NewReader(exported.Body.Bytes()))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	body := decodeBody(t, rr)
	assert.Equal(t, "Jane Doe", body["full_name"])
	assert.Equal(t, "jane@example.com", body["email"])
}

func TestResumeImport_Malformed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/resume/import", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestExportHTML(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/export/html", map[string]any{
		"resume": testResume(),
		"layout": "modern",
	})

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Jane Doe")
}

func TestExportHTML_BadLayout(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/export/html", map[string]any{
		"resume": testResume(),
		"layout": "fancy",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestJobsLifecycle(t *testing.T) {
	s := newTestServer(t)

	rr := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]any{
		"description": testJD,
		"name":        "Acme SOC",
		"save":        true,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	list := doJSON(t, s, http.MethodGet, "/api/jobs", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var records []*jobstore.Record
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &records))
	require.Len(t, records, 1)

	entries, err := os.ReadDir(s.cfg.JobsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	filename := entries[0].Name()

	get := doJSON(t, s, http.MethodGet, "/api/jobs/"+filename, nil)
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "Acme SOC", decodeBody(t, get)["name"])

	del := doJSON(t, s, http.MethodDelete, "/api/jobs/"+filename, nil)
	require.Equal(t, http.StatusOK, del.Code)

	missing := doJSON(t, s, http.MethodGet, "/api/jobs/"+filename, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestListJobs_Empty(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodGet, "/api/jobs", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestProfiles_ListIncludesBuiltIn(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodGet, "/api/profiles", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "cyber_security")
}

func TestProfiles_GetBuiltInDefault(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodGet, "/api/profiles/cyber_security", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	assert.Equal(t, "cyber_security", body["id"])
	assert.NotEmpty(t, body["keywords"])
}

func TestProfiles_SaveAndGet(t *testing.T) {
	s := newTestServer(t)
	yamlBody := `title: DevOps Engineer
keywords:
  core: [kubernetes, terraform]
action_verbs: [automated, deployed]
`
	req := httptest.NewRequest(http.MethodPut, "/api/profiles/devops", strings.NewReader(yamlBody))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	get := doJSON(t, s, http.MethodGet, "/api/profiles/devops", nil)
	require.Equal(t, http.StatusOK, get.Code, get.Body.String())
	body := decodeBody(t, get)
	assert.Equal(t, "devops", body["id"])
	assert.Equal(t, "DevOps Engineer", body["title"])
}

func TestProfiles_GetUnknown(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodGet, "/api/profiles/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProfiles_InvalidID(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodGet, "/api/profiles/Bad%20Id", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer(t)
	rr := doJSON(t, s, http.MethodPost, "/api/export/pdf", map[string]any{})
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Limit"))
}
