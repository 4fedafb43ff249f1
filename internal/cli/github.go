package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhqb1010/qb-cli/internal/github"
	"github.com/nhqb1010/qb-cli/internal/ui"
)

func newGitHubCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github",
		Short: "GitHub helpers",
	}
	cmd.AddCommand(newListReposCommand(s), newCommitCommand(s))
	return cmd
}

func newListReposCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-repos",
		Short: "List the repositories of the authenticated user",
		Args:  cobra.NoArgs,
	}
	output := addOutputFlag(cmd, ui.FormatJSON)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		format, err := ui.ParseFormat(*output)
		if err != nil {
			return err
		}

		api, err := s.githubAPI()
		if err != nil {
			return err
		}

		st := s.startStatus("Fetching repositories")
		repos, err := api.ListRepos(cmd.Context())
		st.Stop("")
		if err != nil {
			return err
		}

		return ui.Render(s.opts.Stdout, format, repos)
	}
	return cmd
}

func newCommitCommand(s *state) *cobra.Command {
	var newFile, verbose bool

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Append a timestamped line to the automation file and commit it",
		Long: `Appends "- {icon} Auto commit at {time} by QB CLI" to AUTOMATE_FILE in
AUTOMATE_OWNER/AUTOMATE_REPO. With --new a fresh timestamped file is
created when the configured one does not exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.automateService()
			if err != nil {
				return err
			}

			st := s.startStatus("Committing")
			res, err := svc.Commit(cmd.Context(), newFile)
			st.Stop("")
			if errors.Is(err, github.ErrNotFound) && !newFile {
				return fmt.Errorf("%w (run with --new to create it)", err)
			}
			if err != nil {
				return err
			}

			if res.Created {
				s.println(ui.Success("Created " + ui.Highlight(res.Path)))
			} else {
				s.println(ui.Success("Updated " + ui.Highlight(res.Path)))
			}
			s.println(ui.Muted(res.Message))

			if verbose {
				if !res.Created {
					s.println(ui.Title("Previous content:"))
					s.println(res.Previous)
				}
				s.println(ui.Title("New content:"))
				s.println(res.Content)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&newFile, "new", false, "Create a new timestamped file when the configured one is missing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the file content before and after the commit")
	return cmd
}
