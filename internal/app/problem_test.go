package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhqb1010/qb-cli/internal/clipboard"
	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/github"
	"github.com/nhqb1010/qb-cli/internal/password"
	"github.com/nhqb1010/qb-cli/internal/vault"
)

func TestDescribe_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "generic", err: errors.New("boom"), code: CodeGeneric},
		{name: "remote", err: &github.RemoteError{Op: "fetch", StatusCode: 500}, code: CodeRemote},
		{name: "not a file", err: &github.RemoteError{Op: "fetch", StatusCode: 200, Err: github.ErrMalformedContent}, code: CodeRemote},
		{name: "not found", err: fmt.Errorf("%w: fetch x", github.ErrNotFound), code: CodeNotFound},
		{name: "no credential", err: fmt.Errorf("%w: alice at github.com", ErrCredentialNotFound), code: CodeNotFound},
		{name: "length", err: &password.LengthError{Length: 8, Options: []string{"with_number"}}, code: CodeInvalidLength},
		{name: "short", err: password.ErrInvalidLength, code: CodeInvalidLength},
		{name: "options", err: password.ErrInvalidOptions, code: CodeInvalidOptions},
		{name: "missing config", err: &config.MissingConfigError{Fields: []string{"GITHUB_TOKEN"}}, code: CodeMissingConfig},
		{name: "no token", err: config.ErrTokenNotFound, code: CodeMissingConfig},
		{name: "store load", err: fmt.Errorf("%w: bad json", vault.ErrStoreLoad), code: CodeStoreLoad},
		{name: "username exists", err: &vault.CredentialExistsError{Domain: "d", Username: "u"}, code: CodeUsernameExists},
		{name: "invalid request", err: fmt.Errorf("%w: domain must not be empty", vault.ErrInvalidRequest), code: CodeInvalidRequest},
		{name: "output format", err: fmt.Errorf("%w \"xml\"", ErrUnsupportedFormat), code: CodeBadFormat},
		{name: "clipboard", err: clipboard.Copy(failingClipboard{}, "x"), code: CodeClipboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Describe(tt.err)
			assert.Equal(t, tt.code, p.Code)
			assert.Equal(t, tt.err.Error(), p.Message)
			assert.NotEmpty(t, p.Title)
		})
	}
}

func TestDescribe_Nil(t *testing.T) {
	assert.Equal(t, Problem{}, Describe(nil))
}

func TestProblem_JSON(t *testing.T) {
	out, err := json.Marshal(Describe(password.ErrInvalidOptions))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message": "password must contain at least one of the following: lowercase, uppercase", "code": 2001}`, string(out))
}

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error { return errors.New("no display") }
