// Package cli defines the qb command tree.
//
// Commands share one state per invocation: the root PersistentPreRunE
// resolves the configuration, builds the logger and attaches it to the
// command context. Errors are never printed by cobra; [Execute] renders
// them as problems (see package app) and returns them so the caller can
// exit with status 1.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nhqb1010/qb-cli/internal/app"
	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/ui"
)

const (
	flagDebug  = "debug"
	flagOutput = "output"
)

// Execute runs the command line args with the dependencies in opts. A
// failing command has its problem written before the error is returned:
// as JSON on stdout when the command was asked for JSON output, as a panel
// on stderr otherwise.
func Execute(ctx context.Context, args []string, opts Options) error {
	s := newState(opts)
	defer s.close()

	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(s.opts.Stdout)
	root.SetErr(s.opts.Stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	s.report(cmd, err)
	return err
}

// NewRootCommand returns the command tree wired to opts. It is used for
// documentation and completion generation; [Execute] is the entry point.
func NewRootCommand(opts Options) *cobra.Command {
	return newRootCommand(newState(opts))
}

func newRootCommand(s *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "qb",
		Short: "Password generator, GitHub password vault and GitHub helpers",
		Long: `qb generates passwords, keeps them in a JSON document inside a private
GitHub repository and automates small GitHub chores.

Configuration is read from flags, environment variables, a JSON file
(--config) and the system keyring, in that order of priority.`,
		Version:       s.opts.BuildInfo.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init(cmd)
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&s.debug, flagDebug, false, "Enable debug logging")

	root.AddCommand(
		newPasswordCommand(s),
		newVaultCommand(s),
		newGitHubCommand(s),
		newAuthCommand(s),
	)

	return root
}

func (s *state) report(cmd *cobra.Command, err error) {
	problem := app.Describe(err)
	s.logger.Debug().Err(err).Int("code", problem.Code).Msg("command failed")

	format := ui.FormatTable
	if cmd != nil {
		if f := cmd.Flags().Lookup(flagOutput); f != nil {
			if parsed, parseErr := ui.ParseFormat(f.Value.String()); parseErr == nil {
				format = parsed
			}
		}
	}

	if format == ui.FormatJSON {
		_ = ui.WriteProblem(s.opts.Stdout, format, problem)
		return
	}
	_ = ui.WriteProblem(s.opts.Stderr, ui.FormatTable, problem)
}

// addOutputFlag registers --output/-o with def as default and returns a
// pointer to the raw value; parse it with [ui.ParseFormat].
func addOutputFlag(cmd *cobra.Command, def ui.Format) *string {
	var out string
	cmd.Flags().StringVarP(&out, flagOutput, "o", string(def), "Output format (json, table, csv, yaml)")
	return &out
}
