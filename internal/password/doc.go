// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package password generates random passwords and throwaway tokens.
//
// A generated password is built in three passes: a shuffled string of
// letters from the enabled letter classes, an optional pass that overwrites
// a random set of positions with digits, and an optional pass that
// overwrites a disjoint random set of positions with special characters.
// All randomness comes from a cryptographically secure source.
package password
