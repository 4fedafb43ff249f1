package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/ui"
)

const tokenPrompt = "GitHub token: "

func newAuthCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the GitHub token stored in the system keyring",
	}
	cmd.AddCommand(newLoginCommand(s), newLogoutCommand(s), newStatusCommand(s))
	return cmd
}

func newLoginCommand(s *state) *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a GitHub token in the system keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := s.opts.Prompter.ReadSecret(tokenPrompt)
			if err != nil {
				return err
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return &config.MissingConfigError{Fields: []string{"GITHUB_TOKEN"}}
			}

			if !skipVerify {
				gcfg := s.cfg.GitHubConfig()
				gcfg.Token = token

				api, err := s.opts.NewGitHubAPI(gcfg, s.logger)
				if err != nil {
					return err
				}

				st := s.startStatus("Verifying token")
				user, err := api.AuthenticatedUser(cmd.Context())
				st.Stop("")
				if err != nil {
					return err
				}
				s.println(ui.Success("Authenticated as " + ui.Highlight(user.Login)))
			}

			if err := config.SaveToken(s.opts.Keyring, token); err != nil {
				return err
			}
			s.println(ui.Success("Token stored in the system keyring"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "Store the token without calling GitHub")
	return cmd
}

func newLogoutCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the GitHub token from the system keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := config.DeleteToken(s.opts.Keyring)
			if errors.Is(err, config.ErrTokenNotFound) {
				s.println(ui.Warning("No token stored in the system keyring"))
				return nil
			}
			if err != nil {
				return err
			}

			s.println(ui.Success("Token removed from the system keyring"))
			return nil
		},
	}
}

func newStatusCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which token is used and who it belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored := "no"
			if _, err := config.LoadToken(s.opts.Keyring); err == nil {
				stored = "yes"
			} else if !errors.Is(err, config.ErrTokenNotFound) {
				s.logger.Warn().Err(err).Msg("keyring lookup failed")
				stored = "unavailable"
			}
			s.println(fmt.Sprintf("Token in keyring: %s", stored))

			if s.cfg.GitHub.Token == "" {
				return &config.MissingConfigError{Fields: []string{"GITHUB_TOKEN"}}
			}

			api, err := s.githubAPI()
			if err != nil {
				return err
			}

			st := s.startStatus("Checking token")
			user, err := api.AuthenticatedUser(cmd.Context())
			st.Stop("")
			if err != nil {
				return err
			}

			s.println(ui.Success(fmt.Sprintf("Logged in to %s as %s", s.cfg.GitHub.APIURL, ui.Highlight(user.Login))))
			return nil
		},
	}
}
