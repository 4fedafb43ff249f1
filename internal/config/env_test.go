// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"GITHUB_TOKEN",
	"GITHUB_USER",
	"GITHUB_API_URL",
	"GITHUB_API_VERSION",
	"GITHUB_ACCEPT",
	"GITHUB_REQUEST_TIMEOUT",
	"GITHUB_RETRY_COUNT",
	"SECRET_REPO_NAME",
	"SECRET_FILE_NAME",
	"SECRET_BRANCH",
	"AUTOMATE_OWNER",
	"AUTOMATE_REPO",
	"AUTOMATE_FILE",
	"AUTOMATE_BRANCH",
	"LOG_LEVEL",
	"LOG_FILE",
}

// clearEnvVars blanks every variable read by the config; caarlos0/env treats
// an empty value as unset.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"GITHUB_TOKEN":           "ghp_secret",
		"GITHUB_USER":            "alice",
		"GITHUB_API_URL":         "https://ghe.example.com/api/v3",
		"GITHUB_API_VERSION":     "2022-11-28",
		"GITHUB_ACCEPT":          "application/vnd.github+json",
		"GITHUB_REQUEST_TIMEOUT": "15s",
		"GITHUB_RETRY_COUNT":     "5",

		"SECRET_REPO_NAME": "secrets",
		"SECRET_FILE_NAME": "passwords.json",
		"SECRET_BRANCH":    "vault",

		"AUTOMATE_OWNER":  "bob",
		"AUTOMATE_REPO":   "automation",
		"AUTOMATE_FILE":   "log.txt",
		"AUTOMATE_BRANCH": "dev",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/tmp/qb.log",
	})

	cfg, err := parseEnv(nil)
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "ghp_secret", cfg.GitHub.Token)
	assert.Equal(t, "alice", cfg.GitHub.User)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.GitHub.APIURL)
	assert.Equal(t, "2022-11-28", cfg.GitHub.APIVersion)
	assert.Equal(t, "application/vnd.github+json", cfg.GitHub.Accept)
	assert.Equal(t, 15*time.Second, cfg.GitHub.RequestTimeout)
	assert.Equal(t, 5, cfg.GitHub.RetryCount)

	assert.Equal(t, "secrets", cfg.Vault.RepoName)
	assert.Equal(t, "passwords.json", cfg.Vault.FileName)
	assert.Equal(t, "vault", cfg.Vault.Branch)

	assert.Equal(t, "bob", cfg.Automate.Owner)
	assert.Equal(t, "automation", cfg.Automate.Repo)
	assert.Equal(t, "log.txt", cfg.Automate.File)
	assert.Equal(t, "dev", cfg.Automate.Branch)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/qb.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GITHUB_TOKEN":     "ghp_secret",
		"SECRET_FILE_NAME": "passwords.json",
	})

	cfg, err := parseEnv(nil)
	require.NoError(t, err)

	assert.Equal(t, "ghp_secret", cfg.GitHub.Token)
	assert.Empty(t, cfg.GitHub.User)
	assert.Zero(t, cfg.GitHub.RetryCount)
	assert.Empty(t, cfg.Vault.RepoName)
	assert.Equal(t, "passwords.json", cfg.Vault.FileName)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"GITHUB_REQUEST_TIMEOUT": "soon"})

	cfg, err := parseEnv(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidRetryCount(t *testing.T) {
	setEnvVars(t, map[string]string{"GITHUB_RETRY_COUNT": "many"})

	_, err := parseEnv(nil)
	assert.Error(t, err)
}

func TestParseEnv_ExplicitEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"GITHUB_USER": "from-process"})

	cfg, err := parseEnv(map[string]string{
		"GITHUB_USER":      "carol",
		"SECRET_REPO_NAME": "vault",
	})
	require.NoError(t, err)

	assert.Equal(t, "carol", cfg.GitHub.User)
	assert.Equal(t, "vault", cfg.Vault.RepoName)
	assert.Empty(t, cfg.GitHub.Token)
}
