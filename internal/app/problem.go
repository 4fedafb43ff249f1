// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app maps the errors produced by the qb packages to stable
// problem codes shown to the user.
//
// Every error that reaches the command layer is passed through [Describe].
// The resulting [Problem] is rendered either as a styled panel or, in JSON
// output mode, as {"message": ..., "code": ...}. Codes are part of the
// command line contract and never change meaning.
package app

import (
	"errors"

	"github.com/nhqb1010/qb-cli/internal/clipboard"
	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/github"
	"github.com/nhqb1010/qb-cli/internal/password"
	"github.com/nhqb1010/qb-cli/internal/vault"
)

var (
	// ErrCredentialNotFound indicates the vault holds no password for the
	// requested domain and username.
	ErrCredentialNotFound = errors.New("password not found")

	// ErrUnsupportedFormat indicates an unknown --output value. Package ui
	// returns it from format parsing.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Problem codes.
const (
	CodeGeneric        = 1010
	CodeRemote         = 1011
	CodeNotFound       = 1012
	CodeBadFormat      = 1013
	CodeInvalidLength  = 2000
	CodeInvalidOptions = 2001
	CodeMissingConfig  = 2100
	CodeStoreLoad      = 2101
	CodeUsernameExists = 2102
	CodeInvalidRequest = 2103
	CodeClipboard      = 3000
)

// Titles shown above the message in the error panel.
const (
	TitleGeneric        = "Something went wrong"
	TitleRemote         = "GitHub request failed"
	TitleNotFound       = "Not found on GitHub"
	TitleNoCredential   = "Password not found"
	TitleInvalidLength  = "Invalid password length"
	TitleInvalidOptions = "Invalid password options"
	TitleMissingConfig  = "Missing configuration"
	TitleStoreLoad      = "Password store is corrupted"
	TitleUsernameExists = "Username already exists"
	TitleInvalidRequest = "Invalid vault request"
	TitleBadFormat      = "Unsupported output format"
	TitleClipboard      = "Clipboard unavailable"
)

// Problem is the user facing form of an error.
type Problem struct {
	Title   string `json:"-" yaml:"-"`
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code" yaml:"code"`
}

// Describe classifies err. The most specific kind wins: a clipboard failure
// is reported as such even when it wraps another error.
func Describe(err error) Problem {
	if err == nil {
		return Problem{}
	}

	p := Problem{Message: err.Error()}

	switch {
	case errors.Is(err, clipboard.ErrClipboard):
		p.Code, p.Title = CodeClipboard, TitleClipboard
	case errors.Is(err, password.ErrInvalidOptions):
		p.Code, p.Title = CodeInvalidOptions, TitleInvalidOptions
	case errors.Is(err, password.ErrInvalidLength):
		p.Code, p.Title = CodeInvalidLength, TitleInvalidLength
	case errors.Is(err, config.ErrMissingConfiguration), errors.Is(err, config.ErrTokenNotFound):
		p.Code, p.Title = CodeMissingConfig, TitleMissingConfig
	case errors.Is(err, vault.ErrStoreLoad):
		p.Code, p.Title = CodeStoreLoad, TitleStoreLoad
	case errors.Is(err, vault.ErrUsernameAlreadyExists):
		p.Code, p.Title = CodeUsernameExists, TitleUsernameExists
	case errors.Is(err, vault.ErrInvalidRequest):
		p.Code, p.Title = CodeInvalidRequest, TitleInvalidRequest
	case errors.Is(err, ErrUnsupportedFormat):
		p.Code, p.Title = CodeBadFormat, TitleBadFormat
	case errors.Is(err, ErrCredentialNotFound):
		p.Code, p.Title = CodeNotFound, TitleNoCredential
	case errors.Is(err, github.ErrNotFound):
		p.Code, p.Title = CodeNotFound, TitleNotFound
	case errors.Is(err, github.ErrRemote):
		p.Code, p.Title = CodeRemote, TitleRemote
	default:
		p.Code, p.Title = CodeGeneric, TitleGeneric
	}

	return p
}
