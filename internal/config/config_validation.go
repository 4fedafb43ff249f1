// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the transport settings of the merged config. Missing
// vault identifiers are not an error here: commands that do not touch the
// vault (password generation) must keep working without them.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(cfg.GitHub.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api url %q", ErrInvalidGitHubConfig, cfg.GitHub.APIURL)
	}

	if cfg.GitHub.RetryCount < 1 {
		return fmt.Errorf("%w: retry count must be positive, got %d", ErrInvalidGitHubConfig, cfg.GitHub.RetryCount)
	}

	if cfg.GitHub.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidGitHubConfig)
	}

	return nil
}

// MissingFields returns the environment variable names of the required
// identifiers that are empty, in a fixed order.
func (c VaultConfig) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.Token) == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}
	if strings.TrimSpace(c.Owner) == "" {
		missing = append(missing, "GITHUB_USER")
	}
	if strings.TrimSpace(c.Repo) == "" {
		missing = append(missing, "SECRET_REPO_NAME")
	}
	if strings.TrimSpace(c.File) == "" {
		missing = append(missing, "SECRET_FILE_NAME")
	}
	return missing
}

// Validate returns a [*MissingConfigError] when any required identifier is
// empty.
func (c VaultConfig) Validate() error {
	if missing := c.MissingFields(); len(missing) > 0 {
		return &MissingConfigError{Fields: missing}
	}
	return nil
}

// Validate returns [ErrInvalidGitHubConfig] when the view cannot be used to
// build a client.
func (c GitHubConfig) Validate() error {
	if c.APIURL == "" || c.RetryCount < 1 {
		return ErrInvalidGitHubConfig
	}
	return nil
}
