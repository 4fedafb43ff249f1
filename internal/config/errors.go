// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingConfiguration indicates that a required identifier (token,
	// owner, repository, file) is absent from every source.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrInvalidGitHubConfig indicates invalid API transport settings
	// (for example, a malformed API URL or a non-positive retry count).
	ErrInvalidGitHubConfig = errors.New("invalid github configuration")

	// ErrTokenNotFound indicates the OS keyring holds no GitHub token.
	ErrTokenNotFound = errors.New("github token not found in keyring")
)

// MissingConfigError lists the environment variable names of the absent
// identifiers. It wraps [ErrMissingConfiguration].
type MissingConfigError struct {
	Fields []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s: %s is not set", ErrMissingConfiguration, strings.Join(e.Fields, ", "))
}

func (e *MissingConfigError) Unwrap() error {
	return ErrMissingConfiguration
}
