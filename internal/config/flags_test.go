package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newTestFlagSet(t,
		"-c", "/etc/qb.json",
		"--github-token", "ghp_flag",
		"--github-user", "alice",
		"--api-url", "http://localhost:9999",
		"--request-timeout", "5s",
		"--retry-count", "2",
		"--secret-repo", "secrets",
		"--secret-file", "vault.json",
		"--secret-branch", "main",
		"--log-level", "info",
		"--log-file", "qb.log",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/etc/qb.json", cfg.JSONFilePath)
	assert.Equal(t, "ghp_flag", cfg.GitHub.Token)
	assert.Equal(t, "alice", cfg.GitHub.User)
	assert.Equal(t, "http://localhost:9999", cfg.GitHub.APIURL)
	assert.Equal(t, 5*time.Second, cfg.GitHub.RequestTimeout)
	assert.Equal(t, 2, cfg.GitHub.RetryCount)
	assert.Equal(t, "secrets", cfg.Vault.RepoName)
	assert.Equal(t, "vault.json", cfg.Vault.FileName)
	assert.Equal(t, "main", cfg.Vault.Branch)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "qb.log", cfg.Log.File)
}

func TestParseFlags_NoFlagsGivesZeroConfig(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	err := fs.Parse([]string{"--request-timeout", "later"})
	assert.Error(t, err)
}
