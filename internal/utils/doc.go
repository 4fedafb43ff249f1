// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the qb packages:
// the resty based HTTP client wrapper, the bounded retry combinator used by
// the GitHub client and the UUID generator behind invocation trace ids.
package utils
