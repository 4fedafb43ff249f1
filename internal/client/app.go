package client

import (
	"context"

	"github.com/nhqb1010/qb-cli/internal/cli"
	"github.com/nhqb1010/qb-cli/models"
)

// App runs the qb command tree with the process arguments.
type App struct {
	args []string
	opts cli.Options
}

var _ Client = (*App)(nil)

// Option customizes an [App].
type Option func(a *App)

// WithCLIOptions replaces the command tree dependencies. Zero fields keep
// the process defaults.
func WithCLIOptions(opts cli.Options) Option {
	return func(a *App) {
		buildInfo := a.opts.BuildInfo
		a.opts = opts
		a.opts.BuildInfo = buildInfo
	}
}

// NewApp returns an App for args (without the program name).
func NewApp(args []string, buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		args: args,
		opts: cli.Options{BuildInfo: buildInfo},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the invocation. The error has already been rendered for the
// user; callers only decide the exit status.
func (a *App) Run(ctx context.Context) error {
	return cli.Execute(ctx, a.args, a.opts)
}
