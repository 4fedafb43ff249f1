// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the qb process lifecycle.
//
// It binds the command tree to the process streams and to the real
// clipboard, keyring and GitHub client, and runs a single invocation.
package client
