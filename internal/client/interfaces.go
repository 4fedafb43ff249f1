// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one invocation and returns its error, which has already
	// been reported to the user.
	Run(ctx context.Context) error
}
