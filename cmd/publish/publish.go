// Package publish implements the root command that publishes a document as a GitHub issue.
package publish

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alan/gmeek-pub/cmd"
	"github.com/alan/gmeek-pub/internal/commands"
	"github.com/alan/gmeek-pub/internal/github"
	"github.com/alan/gmeek-pub/internal/prompt"
	pub "github.com/alan/gmeek-pub/internal/publish"
	"github.com/spf13/cobra"
)

// Usage is printed when the document argument is missing
const Usage = "Usage: gmeek-pub <file>"

// tokenURL is where users create a personal access token
const tokenURL = "https://github.com/settings/tokens"

// Options holds the publish flags
type Options struct {
	Overrides cmd.Config
	DryRun    bool
}

// NewPublishCmd creates the publish command. It takes the document path as its only argument.
func NewPublishCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), prompter prompt.Prompter) *cobra.Command {
	var opts Options

	cobraCmd := &cobra.Command{
		Use:   "gmeek-pub <file>",
		Short: "Publish a Markdown document as a GitHub issue",
		Long: `gmeek-pub publishes a local Markdown file to GitHub Issues for Gmeek blogs.

The document needs a front matter block with at least a title:

  ---
  title: My first post
  labels: [blog, go]
  ---

The first run creates an issue and writes its number back into the front
matter as issue_number. Later runs update that issue.

The API token is read from the GITHUB_TOKEN environment variable. The
repository is detected from the git remote, or can be set with --repo.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			path, err := commands.ParseFileArg(args)
			if err != nil {
				return err
			}

			bc := &commands.BaseCommand{
				ConfigFile: globalConfigFile,
				LoadConfig: loadConfig,
				Overrides:  opts.Overrides,
			}
			if err := bc.Init(c.Context()); err != nil {
				return err
			}

			repo, err := bc.Repo()
			if err != nil {
				return err
			}

			settings := pub.Settings{
				Token:    bc.Token,
				TokenEnv: bc.Config.TokenEnv,
				Repo:     repo,
				DryRun:   opts.DryRun,
			}
			publisher := pub.New(settings, bc.GitHubClient, bc.Resolver("."), prompter, c.OutOrStdout())

			result, err := publisher.Run(bc.Context, path)
			if err != nil {
				return err
			}

			slog.Debug("Publish finished", "action", result.Action, "repo", result.Repo.String(), "issue", result.Number, "url", result.URL)
			return nil
		},
	}

	addPublishFlags(cobraCmd, &opts)
	return cobraCmd
}

// addPublishFlags adds the local flags of the publish command
func addPublishFlags(cobraCmd *cobra.Command, opts *Options) {
	cobraCmd.Flags().StringVarP(&opts.Overrides.Repo, "repo", "r", "", "GitHub repository as owner/repo (skips git detection)")
	cobraCmd.Flags().StringVar(&opts.Overrides.Remote, "remote", "", "Git remote used for detection (default \"origin\")")
	cobraCmd.Flags().StringVar(&opts.Overrides.APIURL, "api-url", "", "GitHub API URL, for GitHub Enterprise")
	cobraCmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Show what would be published without calling GitHub")
}

// ReportError prints err the way users expect to see each failure
func ReportError(w io.Writer, err error) {
	var (
		tokenErr   *pub.MissingTokenError
		updateErr  *pub.UpdateError
		persistErr *pub.PersistError
		apiErr     *github.APIError
	)

	switch {
	case errors.Is(err, commands.ErrUsage):
		fmt.Fprintln(w, Usage)
	case errors.Is(err, pub.ErrFileNotFound):
		commands.DisplayError(w, "Error: %v", err)
		fmt.Fprintln(w, Usage)
	case errors.As(err, &tokenErr):
		commands.DisplayError(w, "Error: %s environment variable not set.", tokenErr.Env)
		fmt.Fprintf(w, "Please export %s=your_token_here\n", tokenErr.Env)
		fmt.Fprintf(w, "You can generate one at %s with 'repo' scope.\n", tokenURL)
	case errors.As(err, &updateErr):
		slog.Debug("Issue update failed", "issue", updateErr.Number, "error", updateErr.Err)
		commands.DisplayError(w, "Failed to update. Please check if the issue exists and you have permission.")
	case errors.As(err, &persistErr):
		commands.DisplayError(w, "Error: %v", persistErr)
		fmt.Fprintf(w, "Add \"%s: %d\" to the front matter manually.\n", pub.KeyIssueNumber, persistErr.Number)
	case errors.As(err, &apiErr):
		commands.DisplayError(w, "GitHub API Error: %d %s", apiErr.StatusCode, apiErr.Reason)
		if apiErr.JSON {
			fmt.Fprintf(w, "Message: %s\n", apiErr.Message)
		} else {
			fmt.Fprintf(w, "Response: %s\n", apiErr.Body)
		}
	default:
		commands.DisplayError(w, "Error: %v", err)
	}
}
