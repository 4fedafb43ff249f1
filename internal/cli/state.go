package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhqb1010/qb-cli/internal/app"
	"github.com/nhqb1010/qb-cli/internal/automate"
	"github.com/nhqb1010/qb-cli/internal/clipboard"
	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/github"
	"github.com/nhqb1010/qb-cli/internal/logger"
	"github.com/nhqb1010/qb-cli/internal/password"
	"github.com/nhqb1010/qb-cli/internal/ui"
	"github.com/nhqb1010/qb-cli/internal/utils"
	"github.com/nhqb1010/qb-cli/internal/vault"
	"github.com/nhqb1010/qb-cli/models"
)

// LoggerRole is the role field of every log entry written by the CLI.
const LoggerRole = "qb"

// TraceIDGenerator produces the per-invocation trace id.
type TraceIDGenerator interface {
	Generate() string
}

// APIFactory builds the GitHub client for a resolved configuration.
type APIFactory func(cfg config.GitHubConfig, log *logger.Logger) (github.API, error)

// Options holds the process dependencies of the command tree. Zero fields
// are replaced with the real implementations by [Execute].
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	Prompter  ui.Prompter
	Keyring   config.Keyring
	Clipboard clipboard.Writer
	Generator *password.Generator
	TraceIDs  TraceIDGenerator

	NewGitHubAPI    APIFactory
	AutomateOptions []automate.Option

	BuildInfo models.AppBuildInfo
}

func (o *Options) setDefaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Prompter == nil {
		o.Prompter = ui.NewTermPrompter(os.Stdin, o.Stderr)
	}
	if o.Keyring == nil {
		o.Keyring = config.NewOSKeyring()
	}
	if o.Clipboard == nil {
		o.Clipboard = clipboard.New()
	}
	if o.Generator == nil {
		o.Generator = password.NewGenerator(nil)
	}
	if o.TraceIDs == nil {
		o.TraceIDs = utils.NewUUIDGenerator()
	}
	if o.NewGitHubAPI == nil {
		o.NewGitHubAPI = func(cfg config.GitHubConfig, log *logger.Logger) (github.API, error) {
			return github.NewClient(cfg, log)
		}
	}
}

// state is shared by all commands of one invocation. It is filled by the
// root PersistentPreRunE.
type state struct {
	opts  Options
	debug bool

	cfg    *config.StructuredConfig
	logger *logger.Logger
	closer io.Closer
	api    github.API
}

func newState(opts Options) *state {
	opts.setDefaults()
	return &state{
		opts:   opts,
		logger: logger.Nop(),
	}
}

func (s *state) init(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags(), s.opts.Keyring)
	if err != nil {
		return err
	}

	log, closer, err := logger.NewCLILogger(LoggerRole, logger.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Debug:  s.debug,
		Stderr: s.opts.Stderr,
	})
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.closer = closer
	s.logger = log.WithTraceID(s.opts.TraceIDs.Generate())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(s.logger.WithContext(ctx))

	s.logger.Debug().Str("command", cmd.CommandPath()).Msg("command started")
	return nil
}

func (s *state) close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}

func (s *state) githubAPI() (github.API, error) {
	if s.api != nil {
		return s.api, nil
	}

	api, err := s.opts.NewGitHubAPI(s.cfg.GitHubConfig(), s.logger)
	if err != nil {
		return nil, err
	}
	s.api = api
	return api, nil
}

// vaultService checks the vault configuration before the client is built
// so a missing repository is reported as such rather than as a token error.
func (s *state) vaultService() (*vault.Service, error) {
	vcfg := s.cfg.VaultConfig()
	if err := vcfg.Validate(); err != nil {
		return nil, err
	}

	api, err := s.githubAPI()
	if err != nil {
		return nil, err
	}
	return vault.NewService(vcfg, api, s.logger)
}

func (s *state) automateService() (*automate.Service, error) {
	api, err := s.githubAPI()
	if err != nil {
		return nil, err
	}
	return automate.NewService(s.cfg.AutomateConfig(), api, s.logger, s.opts.AutomateOptions...)
}

func (s *state) startStatus(message string) *ui.Status {
	return ui.StartStatus(s.opts.Stderr, message, !s.debug && ui.IsTerminal(s.opts.Stderr))
}

func (s *state) println(a ...any) {
	fmt.Fprintln(s.opts.Stdout, a...)
}

// printSecret prints label and secret, masking the secret when hide is set.
func (s *state) printSecret(label, secret string, hide bool) {
	if hide {
		s.println(fmt.Sprintf("%s (hidden): %s", label, ui.Mask(secret)))
		return
	}
	s.println(fmt.Sprintf("%s: %s", label, ui.Highlight(secret)))
}

// copySecret copies secret to the clipboard. A failure is shown as a
// warning panel and never fails the command.
func (s *state) copySecret(secret string) {
	if err := clipboard.Copy(s.opts.Clipboard, secret); err != nil {
		s.logger.Warn().Err(err).Msg("clipboard copy failed")
		_ = ui.WriteProblem(s.opts.Stderr, ui.FormatTable, app.Describe(err))
		return
	}
	s.println(ui.Success("Password copied to clipboard"))
}
