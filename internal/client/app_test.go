package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/nhqb1010/qb-cli/internal/cli"
	"github.com/nhqb1010/qb-cli/models"
)

func TestApp_RunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := NewApp([]string{"--version"}, models.NewAppBuildInfo("0.9.0", "2026-02-03", "deadbeef"),
		WithCLIOptions(cli.Options{Stdout: &stdout, Stderr: &stderr}))

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, stdout.String(), "0.9.0 (commit: deadbeef, built: 2026-02-03)")
	assert.Empty(t, stderr.String())
}

func TestApp_RunReportsError(t *testing.T) {
	keyring.MockInit()
	t.Setenv("CONFIG", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	var stdout, stderr bytes.Buffer
	app := NewApp([]string{"password", "generate", "-l", "2"}, models.AppBuildInfo{},
		WithCLIOptions(cli.Options{Stdout: &stdout, Stderr: &stderr}))

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "2000")
	assert.Empty(t, stdout.String())
}
