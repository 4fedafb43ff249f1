// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package github

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested file does not exist at the given
	// path and branch.
	ErrNotFound = errors.New("github file not found")

	// ErrRemote is matched by every [*RemoteError].
	ErrRemote = errors.New("github api error")

	// ErrMalformedContent indicates content that is not valid base64, or a
	// contents response that does not describe a single file.
	ErrMalformedContent = errors.New("malformed github content")
)

// RemoteError is a failed GitHub request after retries were exhausted.
// StatusCode is zero when no response was received, in which case Err holds
// the transport failure.
type RemoteError struct {
	Op         string
	StatusCode int

	// Body is the raw response body of the last attempt.
	Body string

	// Message is the API error message, or the status text when the body
	// carries none.
	Message string

	Err error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s: %v", ErrRemote, e.Op, e.Err)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s: %s: status %d", ErrRemote, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: status %d: %s", ErrRemote, e.Op, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemote}
	}
	return []error{ErrRemote, e.Err}
}
