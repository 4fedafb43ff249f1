package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig         = "config"
	FlagGitHubToken    = "github-token"
	FlagGitHubUser     = "github-user"
	FlagAPIURL         = "api-url"
	FlagRequestTimeout = "request-timeout"
	FlagRetryCount     = "retry-count"
	FlagSecretRepo     = "secret-repo"
	FlagSecretFile     = "secret-file"
	FlagSecretBranch   = "secret-branch"
	FlagLogLevel       = "log-level"
	FlagLogFile        = "log-file"
)

// RegisterFlags defines every configuration flag on fs. The flags carry
// zero defaults so that unset flags never shadow env or file values.
//
// Flags:
//
//	-c/--config json file path with configs
//	--github-token personal access token
//	--github-user authenticated user login
//	--api-url GitHub REST API base URL
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--retry-count attempts per request
//	--secret-repo vault repository name
//	--secret-file vault file path
//	--secret-branch vault branch
//	--log-level zerolog level name
//	--log-file log file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagGitHubToken, "", "GitHub personal access token")
	fs.String(FlagGitHubUser, "", "GitHub user owning the vault repository")
	fs.String(FlagAPIURL, "", "GitHub REST API base URL")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int(FlagRetryCount, 0, "Attempts per GitHub request")
	fs.String(FlagSecretRepo, "", "Vault repository name")
	fs.String(FlagSecretFile, "", "Vault file path inside the repository")
	fs.String(FlagSecretBranch, "", "Vault branch")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Write JSON logs to this file instead of stderr")
}

// parseFlags reads the values registered by [RegisterFlags] from an already
// parsed flag set. Flags that were not registered on fs are treated as unset.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var (
		cfg StructuredConfig
		err error
	)

	str := func(name string, dst *string) {
		if err != nil || fs.Lookup(name) == nil {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagGitHubToken, &cfg.GitHub.Token)
	str(FlagGitHubUser, &cfg.GitHub.User)
	str(FlagAPIURL, &cfg.GitHub.APIURL)
	str(FlagSecretRepo, &cfg.Vault.RepoName)
	str(FlagSecretFile, &cfg.Vault.FileName)
	str(FlagSecretBranch, &cfg.Vault.Branch)
	str(FlagLogLevel, &cfg.Log.Level)
	str(FlagLogFile, &cfg.Log.File)

	if err == nil && fs.Lookup(FlagRequestTimeout) != nil {
		var timeout time.Duration
		timeout, err = fs.GetDuration(FlagRequestTimeout)
		cfg.GitHub.RequestTimeout = timeout
	}

	if err == nil && fs.Lookup(FlagRetryCount) != nil {
		cfg.GitHub.RetryCount, err = fs.GetInt(FlagRetryCount)
	}

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return &cfg, nil
}
