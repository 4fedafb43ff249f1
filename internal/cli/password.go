package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhqb1010/qb-cli/internal/password"
)

// DefaultPasswordLength is the --length default of the generating commands.
const DefaultPasswordLength = 20

func newPasswordCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate passwords",
	}
	cmd.AddCommand(newQuickGenerateCommand(s), newGenerateCommand(s))
	return cmd
}

func newQuickGenerateCommand(s *state) *cobra.Command {
	var copyFlag bool

	cmd := &cobra.Command{
		Use:   "qgenerate",
		Short: "Generate a short URL-safe token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := s.opts.Generator.QuickToken(password.QuickTokenLength)
			if err != nil {
				return err
			}

			s.printSecret("Generated password", token, false)
			if copyFlag {
				s.copySecret(token)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the password to the clipboard")
	return cmd
}

// generateFlags are the character class switches shared by password
// generate and vault set --generate.
type generateFlags struct {
	length         int
	excludeLower   bool
	excludeUpper   bool
	excludeNumbers bool
	excludeSpecial bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.length, "length", "l", DefaultPasswordLength, "Password length")
	cmd.Flags().BoolVar(&f.excludeLower, "exclude-lowercase", false, "Do not use lowercase letters")
	cmd.Flags().BoolVar(&f.excludeUpper, "exclude-uppercase", false, "Do not use uppercase letters")
	cmd.Flags().BoolVar(&f.excludeNumbers, "exclude-numbers", false, "Do not use digits")
	cmd.Flags().BoolVar(&f.excludeSpecial, "exclude-special", false, "Do not use special characters")
}

func (f *generateFlags) options() password.Options {
	return password.Options{
		Length:        f.length,
		WithLowercase: !f.excludeLower,
		WithUppercase: !f.excludeUpper,
		WithNumber:    !f.excludeNumbers,
		WithSpecial:   !f.excludeSpecial,
	}
}

func newGenerateCommand(s *state) *cobra.Command {
	var (
		gen      generateFlags
		copyFlag bool
		hide     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password",
		Example: `  qb password generate
  qb password generate -l 32 --exclude-special --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := s.opts.Generator.Generate(gen.options())
			if err != nil {
				return err
			}

			s.printSecret("Generated password", pw, hide)
			if copyFlag {
				s.copySecret(pw)
			}
			return nil
		},
	}

	gen.register(cmd)
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the password to the clipboard")
	cmd.Flags().BoolVar(&hide, "hide", false, "Mask the password in the output")
	return cmd
}
