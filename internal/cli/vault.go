package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhqb1010/qb-cli/internal/app"
	"github.com/nhqb1010/qb-cli/internal/ui"
	"github.com/nhqb1010/qb-cli/internal/vault"
)

const (
	passwordPrompt        = "Password: "
	confirmPasswordPrompt = "Confirm password: "
)

func newVaultCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Store and read passwords kept in a GitHub repository",
		Long: `The vault is a JSON document {domain: {username: password}} stored in
SECRET_FILE_NAME of the repository GITHUB_USER/SECRET_REPO_NAME.`,
	}
	cmd.AddCommand(
		newVaultCheckCommand(s),
		newVaultSetCommand(s),
		newVaultGetCommand(s),
		newVaultSummaryCommand(s),
	)
	return cmd
}

func newVaultCheckCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the connection to the vault, creating it when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.vaultService()
			if err != nil {
				return err
			}

			st := s.startStatus("Checking connection to the vault")
			_, created, err := svc.CheckConnection(cmd.Context())
			st.Stop("")
			if err != nil {
				return err
			}

			s.println(ui.Success("Connection to the vault is successful"))
			if created {
				vcfg := s.cfg.VaultConfig()
				s.println(ui.Muted(fmt.Sprintf("Created an empty vault at %s/%s/%s", vcfg.Owner, vcfg.Repo, vcfg.File)))
			}
			return nil
		},
	}
}

func newVaultSetCommand(s *state) *cobra.Command {
	var (
		domain, username, pw string
		overwrite, generate  bool
		copyFlag, hide       bool
		gen                  generateFlags
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a password for a username at a domain",
		Example: `  qb vault set -d github.com -u alice
  qb vault set -d github.com -u alice --generate -l 24 --copy
  qb vault set -d github.com -u alice -p 's3cret' --overwrite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.vaultService()
			if err != nil {
				return err
			}

			switch {
			case generate:
				pw, err = s.opts.Generator.Generate(gen.options())
			case !cmd.Flags().Changed("password"):
				pw, err = ui.ReadConfirmedSecret(s.opts.Prompter, passwordPrompt, confirmPasswordPrompt)
			}
			if err != nil {
				return err
			}

			st := s.startStatus("Saving password")
			err = svc.SetPassword(cmd.Context(), vault.SetRequest{
				Domain:    domain,
				Username:  username,
				Password:  pw,
				Overwrite: overwrite,
			})
			st.Stop("")
			if err != nil {
				return err
			}

			s.println(ui.Success(fmt.Sprintf("Password for %s at %s saved", ui.Highlight(username), ui.Highlight(domain))))
			if generate {
				s.printSecret("Generated password", pw, hide)
			}
			if copyFlag {
				s.copySecret(pw)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "Domain the account belongs to")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&pw, "password", "p", "", "Password to store (prompted when omitted)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing password")
	cmd.Flags().BoolVar(&generate, "generate", false, "Generate the password instead of reading it")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the password to the clipboard")
	cmd.Flags().BoolVar(&hide, "hide", false, "Mask a generated password in the output")
	gen.register(cmd)

	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("username")
	cmd.MarkFlagsMutuallyExclusive("password", "generate")
	return cmd
}

func newVaultGetCommand(s *state) *cobra.Command {
	var (
		domain, username string
		copyFlag, hide   bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the password stored for a username at a domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.vaultService()
			if err != nil {
				return err
			}

			st := s.startStatus("Fetching password")
			pw, found, err := svc.GetPassword(cmd.Context(), username, domain)
			st.Stop("")
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w for %s at %s", app.ErrCredentialNotFound, username, domain)
			}

			s.printSecret("Password", pw, hide)
			if copyFlag {
				s.copySecret(pw)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "Domain the account belongs to")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the password to the clipboard")
	cmd.Flags().BoolVar(&hide, "hide", false, "Mask the password in the output")

	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newVaultSummaryCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "List domains and account counts without revealing passwords",
		Args:  cobra.NoArgs,
	}
	output := addOutputFlag(cmd, ui.FormatTable)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		format, err := ui.ParseFormat(*output)
		if err != nil {
			return err
		}

		svc, err := s.vaultService()
		if err != nil {
			return err
		}

		st := s.startStatus("Loading vault")
		summaries, err := svc.Summary(cmd.Context())
		st.Stop("")
		if err != nil {
			return err
		}

		if format == ui.FormatTable {
			s.println(ui.Title(fmt.Sprintf("Total domains: %d", len(summaries))))
		}
		return ui.Render(s.opts.Stdout, format, summaries)
	}
	return cmd
}
