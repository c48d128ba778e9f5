package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coseus/cvbuilder/internal/config"
)

func resetFlags() {
	configPath = ""
	dataDir = ""
	profileID = ""
	verbose = false
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetFlags()
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Default().ServerAddr, cfg.ServerAddr)
	assert.Equal(t, "cyber_security", cfg.ProfileID)
	assert.Equal(t, 0.92, cfg.Tunables.SimilarityThreshold)
}

func TestLoadConfig_DataDirFlagDerivesChildPaths(t *testing.T) {
	resetFlags()
	dataDir = filepath.Join(t.TempDir(), "cvdata")
	defer resetFlags()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "profiles"), cfg.ProfilesDir)
	assert.Equal(t, filepath.Join(dataDir, "jobs"), cfg.JobsDir)
	assert.Equal(t, filepath.Join(dataDir, "resume.json"), cfg.ResumePath)
}

func TestLoadConfig_ProfileFlagWins(t *testing.T) {
	resetFlags()
	profileID = "devops"
	defer resetFlags()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "devops", cfg.ProfileID)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	resetFlags()
	defer resetFlags()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile_id": "netadmin", "server_addr": ":9090"}`), 0o644))
	configPath = path

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "netadmin", cfg.ProfileID)
	assert.Equal(t, ":9090", cfg.ServerAddr)

	profileID = "devops"
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "devops", cfg.ProfileID)
}

func TestJobDescription_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("We need a SOC analyst."), 0o644))

	text, err := jobDescription(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "We need a SOC analyst.", text)
}

func TestJobDescription_RequiresExactlyOneSource(t *testing.T) {
	_, err := jobDescription(context.Background(), "", "")
	assert.Error(t, err)

	_, err = jobDescription(context.Background(), "jd.txt", "https://example.com/job")
	assert.Error(t, err)
}

func TestLoadResume_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"full_name": "Jane Doe", "email": "jane@example.com"}`), 0o644))

	doc, err := loadResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.FullName)

	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, saveResume(out, doc, false))

	again, err := loadResume(out)
	require.NoError(t, err)
	assert.Equal(t, doc.FullName, again.FullName)
	assert.Equal(t, doc.Email, again.Email)
}
