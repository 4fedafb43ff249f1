// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// UnknownBuildValue replaces build metadata that was not injected.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the release metadata of the qb binary, injected into
// cmd/qb with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the linker values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// Version returns the release version or [UnknownBuildValue].
func (a AppBuildInfo) Version() string { return orUnknown(a.version) }

// Date returns the build timestamp or [UnknownBuildValue].
func (a AppBuildInfo) Date() string { return orUnknown(a.date) }

// Commit returns the source commit or [UnknownBuildValue].
func (a AppBuildInfo) Commit() string { return orUnknown(a.commit) }

// String is the text printed by qb --version.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", a.Version(), a.Commit(), a.Date())
}

func orUnknown(v string) string {
	if v == "" {
		return UnknownBuildValue
	}
	return v
}
