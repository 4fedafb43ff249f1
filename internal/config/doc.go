// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the qb CLI.
//
// Configuration is assembled from multiple sources. Earlier sources win:
// a field set by a higher-priority source is never overwritten by a later one.
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (--config / CONFIG)
//  4. OS keyring (GitHub token only)
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. Consumers take narrow views
// of the result: [StructuredConfig.GitHubConfig], [StructuredConfig.VaultConfig]
// and [StructuredConfig.AutomateConfig].
package config
