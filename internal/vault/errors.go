// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreLoad indicates the stored document is not a valid
	// domain -> username -> password object.
	ErrStoreLoad = errors.New("failed to load password store")

	// ErrUsernameAlreadyExists indicates a password is already stored for the
	// username and overwrite was not requested.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidRequest indicates an empty domain, username or password.
	ErrInvalidRequest = errors.New("invalid vault request")
)

// CredentialExistsError names the credential a protected set collided with.
// It wraps [ErrUsernameAlreadyExists].
type CredentialExistsError struct {
	Domain   string
	Username string
}

func (e *CredentialExistsError) Error() string {
	return fmt.Sprintf("username %q already exists for domain %q, use overwrite to replace it", e.Username, e.Domain)
}

func (e *CredentialExistsError) Unwrap() error {
	return ErrUsernameAlreadyExists
}
