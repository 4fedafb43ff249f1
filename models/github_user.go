package models

// GitHubUser is the subset of GET /user shown by `qb auth status`.
type GitHubUser struct {
	Login   string `json:"login"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}
