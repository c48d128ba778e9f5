package fetchjd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html><head><script>var x=1;</script></head><body>
<nav>Home | Jobs</nav>
<div class="job-description">
  <h1>Security Engineer</h1>
  <p>Experience with SIEM and incident response required.</p>
</div>
<footer>© Acme Jobs</footer>
</body></html>`

func TestExtractText_PrefersJobDescriptionSelector(t *testing.T) {
	text, err := ExtractText(postingHTML)
	require.NoError(t, err)
	assert.Contains(t, text, "Security Engineer")
	assert.Contains(t, text, "SIEM and incident response")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Acme Jobs")
	assert.NotContains(t, text, "var x=1")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := ExtractText("<html><body><p>Plain posting text here.</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text here.", text)
}

func TestFetch_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	text, err := Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Security Engineer")
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := Fetch(context.Background(), "not-a-url")
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}
