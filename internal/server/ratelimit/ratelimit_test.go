package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/export/pdf", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
			{Path: "/api/jobs/", Method: "DELETE", Limit: 3, Window: time.Hour, Burst: 3},
		},
	}
}

func TestAllow_BurstThenLimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	ok1, _ := l.Allow("1.2.3.4", "/api/export/pdf", "POST")
	ok2, _ := l.Allow("1.2.3.4", "/api/export/pdf", "POST")
	ok3, info := l.Allow("1.2.3.4", "/api/export/pdf", "POST")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3)
	assert.Equal(t, 2, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		ok, _ := l.Allow("1.1.1.1", "/api/export/pdf", "POST")
		require.True(t, ok)
	}
	ok, _ := l.Allow("2.2.2.2", "/api/export/pdf", "POST")
	assert.True(t, ok)
}

func TestAllow_PrefixMatch(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("c", "/api/jobs/some-record.json", "DELETE")
		require.True(t, ok)
	}
	ok, _ := l.Allow("c", "/api/jobs/another.json", "DELETE")
	assert.False(t, ok)
}

func TestAllow_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		ok, info := l.Allow("c", "/health", "GET")
		require.True(t, ok)
		require.Equal(t, 0, info.Limit)
	}
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()
	for i := 0; i < 100; i++ {
		ok, _ := l.Allow("c", "/api/export/pdf", "POST")
		require.True(t, ok)
	}
}

func TestAllow_DefaultLimitForUnmatchedPaths(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	ok, info := l.Allow("c", "/api/resume/export", "GET")
	assert.True(t, ok)
	assert.Equal(t, 100, info.Limit)
}

func TestRemoveStale(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("c", "/api/export/pdf", "POST")
	require.Len(t, l.buckets, 1)

	l.removeStale(time.Now().Add(time.Minute))
	assert.Empty(t, l.buckets)
}
