// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FileContent is the body of GET /repos/{owner}/{repo}/contents/{path} for a
// single file.
type FileContent struct {
	// Type is "file" for regular files.
	Type string `json:"type"`

	// Encoding is always "base64" for files below the API size limit.
	Encoding string `json:"encoding"`

	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`

	// Content is base64 text, wrapped with newlines every 60 characters.
	Content string `json:"content"`

	// SHA is the blob hash the next update must present.
	SHA string `json:"sha"`
}

// PutFileRequest is the body of PUT /repos/{owner}/{repo}/contents/{path}.
type PutFileRequest struct {
	// Message is the commit message.
	Message string `json:"message"`

	// Content is the new file content, base64 encoded.
	Content string `json:"content"`

	// Branch defaults to the repository default branch when empty.
	Branch string `json:"branch,omitempty"`

	// SHA is the blob hash being replaced. It must be omitted to create a
	// file and present to update one.
	SHA string `json:"sha,omitempty"`
}

// PutFileResponse is the body returned by a successful create (201) or
// update (200).
type PutFileResponse struct {
	Content struct {
		Name string `json:"name"`
		Path string `json:"path"`
		SHA  string `json:"sha"`
	} `json:"content"`

	Commit Commit `json:"commit"`
}

// Commit describes the commit produced by a contents write.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	HTMLURL string `json:"html_url"`
}

// APIError is the error body returned by the GitHub REST API.
type APIError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}
