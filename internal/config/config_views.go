package config

import "time"

// GitHubConfig holds what the REST client needs.
type GitHubConfig struct {
	Token          string
	APIURL         string
	APIVersion     string
	Accept         string
	RequestTimeout time.Duration
	RetryCount     int
}

// VaultConfig holds the four identifiers the vault requires plus the branch.
type VaultConfig struct {
	// Token is the access token; the vault only checks its presence.
	Token string
	// Owner is the user owning the vault repository.
	Owner string
	// Repo is the vault repository name.
	Repo string
	// File is the path of the password document inside Repo.
	File string
	// Branch is the branch holding the document.
	Branch string
}

// AutomateConfig locates the auto-commit file.
type AutomateConfig struct {
	Owner  string
	Repo   string
	File   string
	Branch string
}

// GitHubConfig returns the REST client view of cfg.
func (cfg *StructuredConfig) GitHubConfig() GitHubConfig {
	return GitHubConfig{
		Token:          cfg.GitHub.Token,
		APIURL:         cfg.GitHub.APIURL,
		APIVersion:     cfg.GitHub.APIVersion,
		Accept:         cfg.GitHub.Accept,
		RequestTimeout: cfg.GitHub.RequestTimeout,
		RetryCount:     cfg.GitHub.RetryCount,
	}
}

// VaultConfig returns the vault view of cfg. It is not validated here; the
// vault checks it on construction and before every operation.
func (cfg *StructuredConfig) VaultConfig() VaultConfig {
	return VaultConfig{
		Token:  cfg.GitHub.Token,
		Owner:  cfg.GitHub.User,
		Repo:   cfg.Vault.RepoName,
		File:   cfg.Vault.FileName,
		Branch: cfg.Vault.Branch,
	}
}

// AutomateConfig returns the auto-commit view of cfg. The owner defaults to
// the authenticated user.
func (cfg *StructuredConfig) AutomateConfig() AutomateConfig {
	owner := cfg.Automate.Owner
	if owner == "" {
		owner = cfg.GitHub.User
	}

	return AutomateConfig{
		Owner:  owner,
		Repo:   cfg.Automate.Repo,
		File:   cfg.Automate.File,
		Branch: cfg.Automate.Branch,
	}
}
