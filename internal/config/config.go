// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the qb CLI.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// GitHub holds API credentials and transport settings.
	GitHub GitHub `envPrefix:"GITHUB_"`

	// Vault locates the password document inside a repository.
	Vault Vault `envPrefix:"SECRET_"`

	// Automate locates the file touched by the auto-commit command.
	Automate Automate `envPrefix:"AUTOMATE_"`

	// Log controls diagnostic logging.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// GitHub holds the access token, the authenticated user and the REST API
// request metadata.
type GitHub struct {
	// Token is the personal access token sent as a bearer credential.
	Token string `env:"TOKEN"`

	// User is the login of the authenticated user; it owns the vault
	// repository.
	User string `env:"USER"`

	APIURL     string `env:"API_URL"`
	APIVersion string `env:"API_VERSION"`
	Accept     string `env:"ACCEPT"`

	// RequestTimeout bounds a single HTTP request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the total number of attempts per request.
	RetryCount int `env:"RETRY_COUNT"`
}

// Vault identifies the password document.
type Vault struct {
	RepoName string `env:"REPO_NAME"`
	FileName string `env:"FILE_NAME"`
	Branch   string `env:"BRANCH"`
}

// Automate identifies the file appended to by the auto-commit command.
// An empty Owner falls back to GitHub.User.
type Automate struct {
	Owner  string `env:"OWNER"`
	Repo   string `env:"REPO"`
	File   string `env:"FILE"`
	Branch string `env:"BRANCH"`
}

// Log controls diagnostic logging.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `env:"LEVEL"`

	// File, when set, receives JSON log lines instead of stderr.
	File string `env:"FILE"`
}

// Default values applied when no source sets a field.
const (
	DefaultAPIURL         = "https://api.github.com"
	DefaultAPIVersion     = "2022-11-28"
	DefaultAccept         = "application/vnd.github.v3+json"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryCount     = 3
	DefaultBranch         = "main"
	DefaultAutomateRepo   = "automation"
	DefaultAutomateFile   = "my_generated_commit.txt"
	DefaultLogLevel       = "warn"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		GitHub: GitHub{
			APIURL:         DefaultAPIURL,
			APIVersion:     DefaultAPIVersion,
			Accept:         DefaultAccept,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
		},
		Vault: Vault{
			Branch: DefaultBranch,
		},
		Automate: Automate{
			Repo:   DefaultAutomateRepo,
			File:   DefaultAutomateFile,
			Branch: DefaultBranch,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig builds the merged configuration. fs must already be
// parsed (cobra does this before running a command); kr is consulted for
// the GitHub token only when no other source provides one.
func GetStructuredConfig(fs *pflag.FlagSet, kr Keyring) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withKeyring(kr).
		withDefaults().
		build()
}
