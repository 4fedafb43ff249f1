package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
type StructuredJSONConfig struct {
	GitHub struct {
		Token          string   `json:"token"`
		User           string   `json:"user"`
		APIURL         string   `json:"api_url"`
		APIVersion     string   `json:"api_version"`
		Accept         string   `json:"accept"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
	} `json:"github,omitempty"`

	Vault struct {
		RepoName string `json:"repo_name"`
		FileName string `json:"file_name"`
		Branch   string `json:"branch"`
	} `json:"vault,omitempty"`

	Automate struct {
		Owner  string `json:"owner"`
		Repo   string `json:"repo"`
		File   string `json:"file"`
		Branch string `json:"branch"`
	} `json:"automate,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		GitHub: GitHub{
			Token:          jsonCfg.GitHub.Token,
			User:           jsonCfg.GitHub.User,
			APIURL:         jsonCfg.GitHub.APIURL,
			APIVersion:     jsonCfg.GitHub.APIVersion,
			Accept:         jsonCfg.GitHub.Accept,
			RequestTimeout: time.Duration(jsonCfg.GitHub.RequestTimeout),
			RetryCount:     jsonCfg.GitHub.RetryCount,
		},
		Vault: Vault{
			RepoName: jsonCfg.Vault.RepoName,
			FileName: jsonCfg.Vault.FileName,
			Branch:   jsonCfg.Vault.Branch,
		},
		Automate: Automate{
			Owner:  jsonCfg.Automate.Owner,
			Repo:   jsonCfg.Automate.Repo,
			File:   jsonCfg.Automate.File,
			Branch: jsonCfg.Automate.Branch,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
